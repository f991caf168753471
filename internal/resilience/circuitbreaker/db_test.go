package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sony/gobreaker"
)

// fastDBConfig trips after three straight failures and probes after 50ms.
func fastDBConfig() Config {
	cfg := DBConfig()
	cfg.Name = "test-db"
	cfg.MinRequests = 3
	cfg.Timeout = 50 * time.Millisecond
	return cfg
}

func newMockBreaker(t *testing.T, cfg Config) (*DBBreaker, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewDBBreaker(db, cfg), mock
}

func TestDBBreaker_QueryBytes(t *testing.T) {
	b, mock := newMockBreaker(t, fastDBConfig())
	ctx := context.Background()

	mock.ExpectQuery("SELECT value FROM cache_entries").
		WithArgs("newtab:movie").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte(`{"v":1}`)))
	mock.ExpectQuery("SELECT value FROM cache_entries").
		WithArgs("newtab:missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	value, found, err := b.QueryBytes(ctx, "SELECT value FROM cache_entries WHERE key = $1", "newtab:movie")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !found || string(value) != `{"v":1}` {
		t.Errorf("expected hit with stored value, got found=%v value=%q", found, value)
	}

	value, found, err = b.QueryBytes(ctx, "SELECT value FROM cache_entries WHERE key = $1", "newtab:missing")
	if err != nil {
		t.Fatalf("expected no error on miss, got %v", err)
	}
	if found || value != nil {
		t.Errorf("expected miss, got found=%v value=%q", found, value)
	}

	if b.State() != gobreaker.StateClosed {
		t.Errorf("expected state Closed, got %s", b.State())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDBBreaker_Exec(t *testing.T) {
	b, mock := newMockBreaker(t, fastDBConfig())

	mock.ExpectExec("DELETE FROM cache_entries").WillReturnResult(sqlmock.NewResult(0, 4))

	n, err := b.Exec(context.Background(), "DELETE FROM cache_entries WHERE updated_at < $1", time.Now())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4 rows affected, got %d", n)
	}
}

func TestDBBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	b, mock := newMockBreaker(t, fastDBConfig())
	ctx := context.Background()

	down := errors.New("connection refused")
	for i := 0; i < 3; i++ {
		mock.ExpectQuery("SELECT").WillReturnError(down)
	}
	for i := 0; i < 3; i++ {
		if _, _, err := b.QueryBytes(ctx, "SELECT value FROM cache_entries"); !errors.Is(err, down) {
			t.Errorf("attempt %d: expected %v, got %v", i+1, down, err)
		}
	}
	if !b.IsOpen() {
		t.Fatalf("expected circuit to be open, state: %s", b.State())
	}

	// 開状態ではDBに触れずに即失敗
	if _, err := b.Exec(ctx, "UPDATE cache_entries SET value = $1", []byte("x")); !errors.Is(err, gobreaker.ErrOpenState) {
		t.Errorf("expected ErrOpenState, got %v", err)
	}
	if err := b.Ping(ctx); !errors.Is(err, ErrOpenState) {
		t.Errorf("expected ErrOpenState from Ping, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDBBreaker_HalfOpenRecovers(t *testing.T) {
	cfg := fastDBConfig()
	cfg.MaxRequests = 1
	b, mock := newMockBreaker(t, cfg)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		mock.ExpectPing().WillReturnError(errors.New("down"))
		_ = b.Ping(ctx)
	}
	if !b.IsOpen() {
		t.Fatal("expected circuit to be open")
	}

	time.Sleep(80 * time.Millisecond)
	mock.ExpectPing()
	if err := b.Ping(ctx); err != nil {
		t.Fatalf("expected probe to succeed, got %v", err)
	}
	if b.State() != gobreaker.StateClosed {
		t.Errorf("expected Closed after a successful probe, got %s", b.State())
	}
}

func TestDBBreaker_CancelledCallsDoNotTrip(t *testing.T) {
	b, mock := newMockBreaker(t, fastDBConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for i := 0; i < 5; i++ {
		mock.ExpectQuery("SELECT").WillReturnError(context.Canceled)
		_, _, _ = b.QueryBytes(ctx, "SELECT value FROM cache_entries")
	}

	if b.IsOpen() {
		t.Error("caller cancellations must not open the circuit")
	}
}

func TestDBConfig(t *testing.T) {
	cfg := DBConfig()

	if cfg.Name != "database" {
		t.Errorf("expected Name=database, got %s", cfg.Name)
	}
	if cfg.MinRequests != 5 {
		t.Errorf("expected MinRequests=5, got %d", cfg.MinRequests)
	}
	if cfg.FailureThreshold != 1.0 {
		t.Errorf("expected FailureThreshold=1.0, got %f", cfg.FailureThreshold)
	}
	if cfg.IsSuccessful == nil {
		t.Fatal("expected IsSuccessful to be set")
	}
	if !cfg.IsSuccessful(nil) || !cfg.IsSuccessful(context.Canceled) {
		t.Error("expected nil and context.Canceled to count as success")
	}
	if cfg.IsSuccessful(errors.New("boom")) {
		t.Error("expected a database error to count as failure")
	}
}
