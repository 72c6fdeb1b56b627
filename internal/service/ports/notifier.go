package ports

import (
	"context"

	"github.com/adnanhb/MarqueeBooker/internal/domain"
)

type SubmissionNotifier interface {
	NotifyBookingSubmitted(ctx context.Context, draft *domain.BookingDraft, conf *domain.BookingConfirmation)
}
