package ports

import (
	"context"

	"github.com/muhammadhamzagova666/tourism-management-system/internal/domain"
)

type AccountRepo interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	SetBooking(ctx context.Context, username string, booking *domain.Booking) error
	SetPassword(ctx context.Context, username, password string) error
}
