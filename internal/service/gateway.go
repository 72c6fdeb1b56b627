package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/adnanhb/MarqueeBooker/internal/domain"
	"github.com/adnanhb/MarqueeBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// SubmissionGateway turns a reviewed draft into the external create-booking
// call. It invokes the venue API exactly once per Submit; the in-flight guard
// that keeps a draft from submitting twice lives on the workflow.
type SubmissionGateway struct {
	api      ports.VenueAPI
	notifier ports.SubmissionNotifier
	timeout  time.Duration
	log      logger.Logger
}

func NewSubmissionGateway(
	api ports.VenueAPI,
	notifier ports.SubmissionNotifier,
	timeout time.Duration,
	log logger.Logger,
) *SubmissionGateway {
	return &SubmissionGateway{
		api:      api,
		notifier: notifier,
		timeout:  timeout,
		log:      log,
	}
}

func (g *SubmissionGateway) Submit(ctx context.Context, draft *domain.BookingDraft, pricing domain.PriceBreakdown) (*domain.BookingConfirmation, error) {
	req := buildBookingRequest(draft, pricing)

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	conf, err := g.api.CreateBooking(callCtx, req)
	if err != nil {
		err = classifySubmitError(err)
		g.log.Error("booking submission failed",
			logger.String("hall_id", fmt.Sprint(req.Hall)),
			logger.String("error", err.Error()),
		)
		return nil, err
	}

	g.log.Info("booking submitted",
		logger.String("booking_id", conf.BookingID),
		logger.String("event_date", req.EventDate),
		logger.Int("guest_count", req.GuestCount),
	)

	go g.notifier.NotifyBookingSubmitted(context.WithoutCancel(ctx), draft, conf)

	return conf, nil
}

func buildBookingRequest(d *domain.BookingDraft, pricing domain.PriceBreakdown) domain.BookingRequest {
	return domain.BookingRequest{
		Hall:            d.HallID,
		EventDate:       d.EventDate.Format("2006-01-02"),
		EventTime:       d.EventTime,
		GuestCount:      d.GuestCount,
		EventType:       string(d.EventType),
		CustomerName:    d.CustomerName,
		CustomerEmail:   d.CustomerEmail,
		CustomerPhone:   d.CustomerPhone,
		MenuItems:       d.SelectedMenuItems(),
		SpecialRequests: d.SpecialRequests,
		TotalPrice:      pricing.GrandTotal.StringFixed(2),
	}
}

// classifySubmitError folds everything into the three submission outcomes.
// Timeouts count as network failures: no booking was confirmed, so the user
// may safely resubmit. Anything unclassified is treated as a server error
// because the booking may in fact exist.
func classifySubmitError(err error) error {
	switch {
	case errors.Is(err, domain.ErrSubmissionRejected),
		errors.Is(err, domain.ErrNetworkFailure),
		errors.Is(err, domain.ErrServerFailure):
		return err
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %v", domain.ErrNetworkFailure, err)
	default:
		return fmt.Errorf("%w: %v", domain.ErrServerFailure, err)
	}
}
