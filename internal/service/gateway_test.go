package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/adnanhb/MarqueeBooker/internal/domain"
	"github.com/adnanhb/MarqueeBooker/internal/service/ports/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func reviewedDraft() *domain.BookingDraft {
	d := domain.NewBookingDraft()
	d.HallID = 1
	d.EventDate = time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	d.EventTime = "18:00"
	d.EventType = domain.EventTypeWedding
	d.GuestCount = 50
	d.CustomerName = "Aisha Khan"
	d.CustomerEmail = "aisha@example.com"
	d.CustomerPhone = "+92-300-1234567"
	d.MenuItemIDs[11] = struct{}{}
	d.MenuItemIDs[10] = struct{}{}
	d.SpecialRequests = "stage decoration in white"
	return d
}

func reviewedPricing() domain.PriceBreakdown {
	return domain.PriceBreakdown{
		HallPrice:        decimal.NewFromInt(25000),
		PerGuestMenuUnit: decimal.NewFromInt(1250),
		MenuTotal:        decimal.NewFromInt(62500),
		GrandTotal:       decimal.NewFromInt(87500),
	}
}

func TestSubmissionGateway_Submit_Success(t *testing.T) {
	api := mocks.NewMockVenueAPI(t)
	notifier := mocks.NewMockSubmissionNotifier(t)
	log := newTestLogger(t)

	g := NewSubmissionGateway(api, notifier, 5*time.Second, log)

	draft := reviewedDraft()
	conf := &domain.BookingConfirmation{BookingID: "42", Status: "pending"}

	var sent domain.BookingRequest
	api.EXPECT().CreateBooking(mock.Anything, mock.Anything).
		Run(func(_ context.Context, req domain.BookingRequest) {
			sent = req
		}).
		Return(conf, nil)
	notifier.EXPECT().NotifyBookingSubmitted(mock.Anything, draft, conf).Return()

	got, err := g.Submit(context.Background(), draft, reviewedPricing())

	require.NoError(t, err)
	assert.Equal(t, conf, got)

	assert.Equal(t, 1, sent.Hall)
	assert.Equal(t, "2026-10-15", sent.EventDate)
	assert.Equal(t, "18:00", sent.EventTime)
	assert.Equal(t, 50, sent.GuestCount)
	assert.Equal(t, "wedding", sent.EventType)
	assert.Equal(t, []int{10, 11}, sent.MenuItems)
	assert.Equal(t, "87500.00", sent.TotalPrice)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestSubmissionGateway_Submit_RejectedPassesThrough(t *testing.T) {
	api := mocks.NewMockVenueAPI(t)
	notifier := mocks.NewMockSubmissionNotifier(t)
	log := newTestLogger(t)

	g := NewSubmissionGateway(api, notifier, 5*time.Second, log)

	api.EXPECT().CreateBooking(mock.Anything, mock.Anything).Return(nil, domain.ErrSubmissionRejected)

	_, err := g.Submit(context.Background(), reviewedDraft(), reviewedPricing())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSubmissionRejected)
}

func TestSubmissionGateway_Submit_TimeoutIsNetworkFailure(t *testing.T) {
	api := mocks.NewMockVenueAPI(t)
	notifier := mocks.NewMockSubmissionNotifier(t)
	log := newTestLogger(t)

	g := NewSubmissionGateway(api, notifier, 5*time.Second, log)

	api.EXPECT().CreateBooking(mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded)

	_, err := g.Submit(context.Background(), reviewedDraft(), reviewedPricing())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNetworkFailure)
}

func TestSubmissionGateway_Submit_UnknownErrorIsServerFailure(t *testing.T) {
	api := mocks.NewMockVenueAPI(t)
	notifier := mocks.NewMockSubmissionNotifier(t)
	log := newTestLogger(t)

	g := NewSubmissionGateway(api, notifier, 5*time.Second, log)

	api.EXPECT().CreateBooking(mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

	_, err := g.Submit(context.Background(), reviewedDraft(), reviewedPricing())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServerFailure)
}
