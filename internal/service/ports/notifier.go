package ports

import (
	"context"

	"github.com/muhammadhamzagova666/tourism-management-system/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, account *domain.Account, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, account *domain.Account, refund *domain.Refund)
}
