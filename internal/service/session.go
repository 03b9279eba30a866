package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/muhammadhamzagova666/tourism-management-system/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// SessionService tracks the single authenticated session of the process.
// A nil current session means anonymous mode.
type SessionService struct {
	mu          sync.Mutex
	current     *domain.Session
	idleTimeout time.Duration
	logger      logger.Logger
	now         func() time.Time
}

func NewSessionService(idleTimeout time.Duration, logger logger.Logger) *SessionService {
	return &SessionService{
		idleTimeout: idleTimeout,
		logger:      logger,
		now:         time.Now,
	}
}

// Begin starts a session for username, replacing any existing one.
func (s *SessionService) Begin(username string) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.current = &domain.Session{
		ID:        uuid.New().String(),
		Username:  username,
		StartedAt: now,
		LastSeen:  now,
	}

	s.logger.Info("session started",
		logger.String("session_id", s.current.ID),
		logger.String("username", username),
	)

	sess := *s.current
	return &sess
}

// Current returns a copy of the active session, or false in anonymous mode.
func (s *SessionService) Current() (*domain.Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil, false
	}
	sess := *s.current
	return &sess, true
}

// Touch marks activity on the active session.
func (s *SessionService) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.current.LastSeen = s.now()
	}
}

// End resets to anonymous mode. Returns false if nobody was logged in.
func (s *SessionService) End() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return false
	}

	s.logger.Info("session ended",
		logger.String("session_id", s.current.ID),
		logger.String("username", s.current.Username),
	)
	s.current = nil
	return true
}

// ExpireIdle ends the active session when it has been idle longer than the
// configured timeout. Returns the expired session, nil when nothing expired.
func (s *SessionService) ExpireIdle(ctx context.Context) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.idleTimeout <= 0 {
		return nil, nil
	}
	if s.now().Sub(s.current.LastSeen) <= s.idleTimeout {
		return nil, nil
	}

	expired := *s.current
	s.current = nil

	s.logger.Info("idle session expired",
		logger.String("session_id", expired.ID),
		logger.String("username", expired.Username),
	)

	return &expired, nil
}
