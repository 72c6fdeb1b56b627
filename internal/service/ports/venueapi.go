package ports

import (
	"context"

	"github.com/adnanhb/MarqueeBooker/internal/domain"
)

type VenueAPI interface {
	FetchHalls(ctx context.Context) ([]domain.Hall, error)
	FetchMenuItems(ctx context.Context) ([]domain.MenuItem, error)
	CreateBooking(ctx context.Context, req domain.BookingRequest) (*domain.BookingConfirmation, error)
}
