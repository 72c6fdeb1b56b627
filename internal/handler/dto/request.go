package dto

import (
	"fmt"
	"time"

	"github.com/adnanhb/MarqueeBooker/internal/domain"
)

// UpdateDraftRequest is a partial patch; absent fields stay untouched.
type UpdateDraftRequest struct {
	Hall              *int    `json:"hall"`
	EventDate         *string `json:"event_date"` // YYYY-MM-DD
	EventTime         *string `json:"event_time"` // HH:MM
	EventType         *string `json:"event_type"`
	GuestCount        *int    `json:"guest_count"`
	CustomerName      *string `json:"customer_name"`
	CustomerEmail     *string `json:"customer_email"`
	CustomerPhone     *string `json:"customer_phone"`
	SelectMenuItems   []int   `json:"select_menu_items"`
	DeselectMenuItems []int   `json:"deselect_menu_items"`
	SpecialRequests   *string `json:"special_requests"`
}

func (r UpdateDraftRequest) ToDomain() (domain.DraftUpdate, error) {
	upd := domain.DraftUpdate{
		HallID:            r.Hall,
		GuestCount:        r.GuestCount,
		CustomerName:      r.CustomerName,
		CustomerEmail:     r.CustomerEmail,
		CustomerPhone:     r.CustomerPhone,
		SelectMenuItems:   r.SelectMenuItems,
		DeselectMenuItems: r.DeselectMenuItems,
		SpecialRequests:   r.SpecialRequests,
	}

	if r.EventDate != nil {
		d, err := time.Parse("2006-01-02", *r.EventDate)
		if err != nil {
			return domain.DraftUpdate{}, fmt.Errorf("invalid event_date, expected YYYY-MM-DD")
		}
		upd.EventDate = &d
	}

	if r.EventTime != nil {
		if _, err := time.Parse("15:04", *r.EventTime); err != nil {
			return domain.DraftUpdate{}, fmt.Errorf("invalid event_time, expected HH:MM")
		}
		upd.EventTime = r.EventTime
	}

	if r.EventType != nil {
		et, ok := domain.ParseEventType(*r.EventType)
		if !ok {
			return domain.DraftUpdate{}, fmt.Errorf("invalid event_type %q", *r.EventType)
		}
		upd.EventType = &et
	}

	return upd, nil
}
