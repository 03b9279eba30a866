package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionService_BeginAndCurrent(t *testing.T) {
	svc := NewSessionService(15*time.Minute, newTestLogger(t))

	_, ok := svc.Current()
	assert.False(t, ok)

	started := svc.Begin("alice")
	assert.NotEmpty(t, started.ID)
	assert.Equal(t, "alice", started.Username)

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, started.ID, current.ID)
	assert.Equal(t, "alice", current.Username)
}

func TestSessionService_Begin_ReplacesExisting(t *testing.T) {
	svc := NewSessionService(15*time.Minute, newTestLogger(t))

	first := svc.Begin("alice")
	second := svc.Begin("bob")

	current, ok := svc.Current()
	require.True(t, ok)
	assert.Equal(t, "bob", current.Username)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSessionService_End(t *testing.T) {
	svc := NewSessionService(15*time.Minute, newTestLogger(t))

	assert.False(t, svc.End())

	svc.Begin("alice")
	assert.True(t, svc.End())

	_, ok := svc.Current()
	assert.False(t, ok)
	assert.False(t, svc.End())
}

func TestSessionService_ExpireIdle(t *testing.T) {
	svc := NewSessionService(10*time.Minute, newTestLogger(t))

	now := time.Now()
	svc.now = func() time.Time { return now }
	svc.Begin("alice")

	// still fresh
	expired, err := svc.ExpireIdle(context.Background())
	require.NoError(t, err)
	assert.Nil(t, expired)

	// idle past the timeout
	svc.now = func() time.Time { return now.Add(11 * time.Minute) }
	expired, err = svc.ExpireIdle(context.Background())
	require.NoError(t, err)
	require.NotNil(t, expired)
	assert.Equal(t, "alice", expired.Username)

	_, ok := svc.Current()
	assert.False(t, ok)
}

func TestSessionService_Touch_KeepsSessionAlive(t *testing.T) {
	svc := NewSessionService(10*time.Minute, newTestLogger(t))

	now := time.Now()
	svc.now = func() time.Time { return now }
	svc.Begin("alice")

	svc.now = func() time.Time { return now.Add(9 * time.Minute) }
	svc.Touch()

	svc.now = func() time.Time { return now.Add(15 * time.Minute) }
	expired, err := svc.ExpireIdle(context.Background())
	require.NoError(t, err)
	assert.Nil(t, expired)
}

func TestSessionService_ExpireIdle_Anonymous(t *testing.T) {
	svc := NewSessionService(10*time.Minute, newTestLogger(t))

	expired, err := svc.ExpireIdle(context.Background())
	require.NoError(t, err)
	assert.Nil(t, expired)
}
