package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvString(t *testing.T) {
	t.Setenv("TEST_STRING", "value")
	assert.Equal(t, "value", LoadEnvString("TEST_STRING", "default"))
	assert.Equal(t, "default", LoadEnvString("TEST_STRING_UNSET", "default"))
}

func TestLoadEnvWithFallback(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		want         string
		wantFallback bool
	}{
		{name: "未設定ならデフォルト", value: "", want: "UTC"},
		{name: "有効な値", value: "Asia/Shanghai", want: "Asia/Shanghai"},
		{name: "前後の空白は除去", value: "  Asia/Tokyo ", want: "Asia/Tokyo"},
		{name: "不正な値はフォールバック", value: "Mars/Olympus", want: "UTC", wantFallback: true},
		{name: "Localは拒否", value: "Local", want: "UTC", wantFallback: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_TZ", tt.value)
			r := LoadEnvWithFallback("TEST_TZ", "UTC", ValidateTimezone)
			assert.Equal(t, tt.want, r.Value)
			assert.Equal(t, tt.wantFallback, r.FallbackApplied)
			assert.Equal(t, "TEST_TZ", r.Key)
			if tt.wantFallback {
				assert.Contains(t, r.Warning, "TEST_TZ")
				assert.Contains(t, r.Warning, "falling back to default UTC")
			} else {
				assert.Empty(t, r.Warning)
			}
		})
	}
}

func TestLoadEnvWithFallback_NilValidator(t *testing.T) {
	t.Setenv("TEST_ANY", "anything goes")
	r := LoadEnvWithFallback("TEST_ANY", "x", nil)
	assert.Equal(t, "anything goes", r.Value)
	assert.False(t, r.FallbackApplied)
}

func TestLoadEnvDuration(t *testing.T) {
	within := func(d time.Duration) error { return ValidateDuration(d, time.Second, time.Minute) }
	tests := []struct {
		name         string
		value        string
		want         time.Duration
		wantFallback bool
	}{
		{name: "未設定", value: "", want: 30 * time.Second},
		{name: "有効", value: "45s", want: 45 * time.Second},
		{name: "複合表記", value: "1m0s", want: time.Minute},
		{name: "書式エラー", value: "soon", want: 30 * time.Second, wantFallback: true},
		{name: "範囲外", value: "2h", want: 30 * time.Second, wantFallback: true},
		{name: "負の値", value: "-5s", want: 30 * time.Second, wantFallback: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION", tt.value)
			r := LoadEnvDuration("TEST_DURATION", 30*time.Second, within)
			assert.Equal(t, tt.want, r.Value)
			assert.Equal(t, tt.wantFallback, r.FallbackApplied)
		})
	}
}

func TestLoadEnvInt(t *testing.T) {
	port := func(v int) error { return ValidateIntRange(v, 1024, 65535) }
	tests := []struct {
		name         string
		value        string
		want         int
		wantFallback bool
	}{
		{name: "未設定", value: "", want: 9091},
		{name: "有効", value: "8081", want: 8081},
		{name: "小数", value: "80.5", want: 9091, wantFallback: true},
		{name: "文字列", value: "eighty", want: 9091, wantFallback: true},
		{name: "下限未満", value: "80", want: 9091, wantFallback: true},
		{name: "上限超過", value: "70000", want: 9091, wantFallback: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("TEST_INT", tt.value)
			r := LoadEnvInt("TEST_INT", 9091, port)
			assert.Equal(t, tt.want, r.Value)
			assert.Equal(t, tt.wantFallback, r.FallbackApplied)
		})
	}
}

func TestLoadEnvFloat(t *testing.T) {
	t.Setenv("TEST_RATIO", "0.25")
	r := LoadEnvFloat("TEST_RATIO", 1, ValidateRatio)
	assert.Equal(t, 0.25, r.Value)
	assert.False(t, r.FallbackApplied)

	t.Setenv("TEST_RATIO", "1.5")
	r = LoadEnvFloat("TEST_RATIO", 1, ValidateRatio)
	assert.Equal(t, 1.0, r.Value)
	assert.True(t, r.FallbackApplied)

	t.Setenv("TEST_RATIO", "half")
	r = LoadEnvFloat("TEST_RATIO", 1, ValidateRatio)
	assert.True(t, r.FallbackApplied)
	assert.Contains(t, r.Warning, "invalid number format")
}

func TestLoadEnvBool(t *testing.T) {
	for _, v := range []string{"1", "t", "true", "TRUE", "True"} {
		t.Setenv("TEST_BOOL", v)
		assert.True(t, LoadEnvBool("TEST_BOOL", false).Value, v)
	}
	for _, v := range []string{"0", "f", "false", "FALSE"} {
		t.Setenv("TEST_BOOL", v)
		assert.False(t, LoadEnvBool("TEST_BOOL", true).Value, v)
	}

	t.Setenv("TEST_BOOL", "yes")
	r := LoadEnvBool("TEST_BOOL", true)
	assert.True(t, r.Value)
	assert.True(t, r.FallbackApplied)
}
