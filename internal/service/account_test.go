package service

import (
	"context"
	"errors"
	"testing"

	"github.com/muhammadhamzagova666/tourism-management-system/internal/domain"
	"github.com/muhammadhamzagova666/tourism-management-system/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
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

func TestAccountService_Register_Success(t *testing.T) {
	repo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	account, err := svc.Register(context.Background(), domain.CreateAccountInput{
		Username: "alice",
		Password: "p1",
	})

	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
	assert.Equal(t, "p1", account.Password)
	assert.Nil(t, account.Booking)
}

func TestAccountService_Register_EmptyUsername(t *testing.T) {
	svc := NewAccountService(nil, newTestLogger(t))

	_, err := svc.Register(context.Background(), domain.CreateAccountInput{Password: "p1"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAccountService_Register_EmptyPassword(t *testing.T) {
	svc := NewAccountService(nil, newTestLogger(t))

	_, err := svc.Register(context.Background(), domain.CreateAccountInput{Username: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAccountService_Register_SpacesRejected(t *testing.T) {
	svc := NewAccountService(nil, newTestLogger(t))

	_, err := svc.Register(context.Background(), domain.CreateAccountInput{
		Username: "bad name",
		Password: "p1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAccountService_Register_UsernameTaken(t *testing.T) {
	repo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrUsernameTaken)

	_, err := svc.Register(context.Background(), domain.CreateAccountInput{
		Username: "taken",
		Password: "p1",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestAccountService_Authenticate_Success(t *testing.T) {
	repo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(repo, newTestLogger(t))

	repo.EXPECT().GetByUsername(mock.Anything, "alice").
		Return(&domain.Account{Username: "alice", Password: "p1"}, nil)

	account, err := svc.Authenticate(context.Background(), "alice", "p1")

	require.NoError(t, err)
	assert.Equal(t, "alice", account.Username)
}

func TestAccountService_Authenticate_WrongPassword(t *testing.T) {
	repo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(repo, newTestLogger(t))

	repo.EXPECT().GetByUsername(mock.Anything, "alice").
		Return(&domain.Account{Username: "alice", Password: "p1"}, nil)

	_, err := svc.Authenticate(context.Background(), "alice", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWrongPassword)
}

func TestAccountService_Authenticate_UserNotFound(t *testing.T) {
	repo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(repo, newTestLogger(t))

	repo.EXPECT().GetByUsername(mock.Anything, "missing").
		Return(nil, domain.ErrUserNotFound)

	_, err := svc.Authenticate(context.Background(), "missing", "p1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAccountService_ChangePassword_Success(t *testing.T) {
	repo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(repo, newTestLogger(t))

	repo.EXPECT().GetByUsername(mock.Anything, "alice").
		Return(&domain.Account{Username: "alice", Password: "old"}, nil)
	repo.EXPECT().SetPassword(mock.Anything, "alice", "new").Return(nil)

	err := svc.ChangePassword(context.Background(), "alice", "old", "new")

	require.NoError(t, err)
}

func TestAccountService_ChangePassword_WrongCurrent(t *testing.T) {
	repo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(repo, newTestLogger(t))

	repo.EXPECT().GetByUsername(mock.Anything, "alice").
		Return(&domain.Account{Username: "alice", Password: "old"}, nil)

	// no SetPassword expectation: the stored password must stay untouched
	err := svc.ChangePassword(context.Background(), "alice", "nope", "new")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrWrongPassword)
}

func TestAccountService_ChangePassword_EmptyNew(t *testing.T) {
	svc := NewAccountService(nil, newTestLogger(t))

	err := svc.ChangePassword(context.Background(), "alice", "old", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAccountService_ChangePassword_RepoError(t *testing.T) {
	repo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(repo, newTestLogger(t))

	repoErr := errors.New("disk full")
	repo.EXPECT().GetByUsername(mock.Anything, "alice").
		Return(&domain.Account{Username: "alice", Password: "old"}, nil)
	repo.EXPECT().SetPassword(mock.Anything, "alice", "new").Return(repoErr)

	err := svc.ChangePassword(context.Background(), "alice", "old", "new")

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestAccountService_List(t *testing.T) {
	repo := mocks.NewMockAccountRepo(t)
	svc := NewAccountService(repo, newTestLogger(t))

	repo.EXPECT().List(mock.Anything).
		Return([]*domain.Account{{Username: "a"}, {Username: "b"}}, nil)

	accounts, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, accounts, 2)
}
