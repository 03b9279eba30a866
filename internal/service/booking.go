package service

import (
	"context"
	"fmt"

	"github.com/muhammadhamzagova666/tourism-management-system/internal/domain"
	"github.com/muhammadhamzagova666/tourism-management-system/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	repo     ports.AccountRepo
	notifier ports.BookingNotifier
	logger   logger.Logger
}

func NewBookingService(
	repo ports.AccountRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *BookingService) Book(ctx context.Context, username string, packageCode, tickets int) (*domain.Booking, error) {
	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check account: %w", err)
	}

	if account.HasBooking() {
		return nil, domain.ErrAlreadyBooked
	}

	pkg, err := domain.PackageByCode(packageCode)
	if err != nil {
		return nil, err
	}

	if tickets < 1 {
		return nil, domain.ErrZeroTickets
	}

	booking := &domain.Booking{
		PackageCode: pkg.Code,
		Destination: pkg.Destination,
		UnitPrice:   pkg.UnitPrice,
		Tickets:     tickets,
	}
	if err = s.repo.SetBooking(ctx, username, booking); err != nil {
		return nil, fmt.Errorf("store booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("username", username),
		logger.String("destination", booking.Destination),
		logger.Int("tickets", booking.Tickets),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), account, booking)

	return booking, nil
}

func (s *BookingService) Cancel(ctx context.Context, username string) (*domain.Refund, error) {
	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check account: %w", err)
	}

	if !account.HasBooking() {
		return nil, domain.ErrNoActiveBooking
	}

	refund := &domain.Refund{
		Destination: account.Booking.Destination,
		Tickets:     account.Booking.Tickets,
		Amount:      account.Booking.Total(),
	}

	if err = s.repo.SetBooking(ctx, username, nil); err != nil {
		return nil, fmt.Errorf("clear booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("username", username),
		logger.String("destination", refund.Destination),
		logger.Any("refund", refund.Amount),
	)

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), account, refund)

	return refund, nil
}

func (s *BookingService) Check(ctx context.Context, username string) (*domain.BookingSummary, error) {
	account, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("check account: %w", err)
	}

	if !account.HasBooking() {
		return nil, domain.ErrNoActiveBooking
	}

	return &domain.BookingSummary{
		Destination: account.Booking.Destination,
		Tickets:     account.Booking.Tickets,
		Total:       account.Booking.Total(),
	}, nil
}
