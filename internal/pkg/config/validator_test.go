package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateCronSchedule(t *testing.T) {
	valid := []string{"*/10 * * * *", "30 5 * * *", "0 */6 * * 1-5", "@hourly", "@every 15m"}
	for _, s := range valid {
		assert.NoError(t, ValidateCronSchedule(s), s)
	}
	invalid := []string{"", "* * *", "61 * * * *", "every minute", "0 0 0 * * *"}
	for _, s := range invalid {
		assert.Error(t, ValidateCronSchedule(s), s)
	}
}

func TestValidateTimezone(t *testing.T) {
	for _, tz := range []string{"UTC", "Asia/Shanghai", "Asia/Tokyo", "America/New_York"} {
		assert.NoError(t, ValidateTimezone(tz), tz)
	}
	for _, tz := range []string{"", "Local", "Invalid/Zone", "CST+8"} {
		assert.Error(t, ValidateTimezone(tz), tz)
	}
}

func TestValidateDuration(t *testing.T) {
	assert.NoError(t, ValidateDuration(time.Second, time.Second, time.Minute))
	assert.NoError(t, ValidateDuration(time.Minute, time.Second, time.Minute))
	assert.ErrorContains(t, ValidateDuration(time.Millisecond, time.Second, time.Minute), "below minimum")
	assert.ErrorContains(t, ValidateDuration(time.Hour, time.Second, time.Minute), "exceeds maximum")
	assert.ErrorContains(t, ValidateDuration(time.Second, time.Minute, time.Second), "invalid range")
}

func TestValidatePositiveDuration(t *testing.T) {
	assert.NoError(t, ValidatePositiveDuration(time.Nanosecond))
	assert.Error(t, ValidatePositiveDuration(0))
	assert.Error(t, ValidatePositiveDuration(-time.Second))
}

func TestValidateIntRange(t *testing.T) {
	assert.NoError(t, ValidateIntRange(1, 1, 10))
	assert.NoError(t, ValidateIntRange(10, 1, 10))
	assert.ErrorContains(t, ValidateIntRange(0, 1, 10), "below minimum")
	assert.ErrorContains(t, ValidateIntRange(11, 1, 10), "exceeds maximum")
	assert.ErrorContains(t, ValidateIntRange(5, 10, 1), "invalid range")
}

func TestValidateRatio(t *testing.T) {
	for _, v := range []float64{0, 0.5, 1} {
		assert.NoError(t, ValidateRatio(v))
	}
	for _, v := range []float64{-0.1, 1.01} {
		assert.Error(t, ValidateRatio(v))
	}
}

func TestValidateListenAddr(t *testing.T) {
	for _, addr := range []string{":8080", "0.0.0.0:8080", "localhost:9091", "[::1]:80"} {
		assert.NoError(t, ValidateListenAddr(addr), addr)
	}
	for _, addr := range []string{"", "8080", ":http", ":0", ":70000"} {
		assert.Error(t, ValidateListenAddr(addr), addr)
	}
}
