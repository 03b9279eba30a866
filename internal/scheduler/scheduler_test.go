package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/muhammadhamzagova666/tourism-management-system/internal/domain"
	"github.com/muhammadhamzagova666/tourism-management-system/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_ExpiresIdleSession(t *testing.T) {
	expirer := mocks.NewMockSessionExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 50*time.Millisecond, log)

	expired := &domain.Session{ID: "s1", Username: "alice"}
	expirer.EXPECT().ExpireIdle(mock.Anything).Return(expired, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	expirer := mocks.NewMockSessionExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 50*time.Millisecond, log)

	expirer.EXPECT().ExpireIdle(mock.Anything).Return(nil, errors.New("boom"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	expirer := mocks.NewMockSessionExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	expirer := mocks.NewMockSessionExpirer(t)
	log := newTestLogger(t)

	s := New(expirer, 30*time.Millisecond, log)

	expirer.EXPECT().ExpireIdle(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(expirer.Calls), 3)
}
