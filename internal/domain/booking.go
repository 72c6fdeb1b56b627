package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceBreakdown keeps every component separate so callers can render or
// assert on them independently. Values stay unrounded; fixing to two digits
// happens only at serialization.
type PriceBreakdown struct {
	HallPrice        decimal.Decimal
	PerGuestMenuUnit decimal.Decimal
	MenuTotal        decimal.Decimal
	GrandTotal       decimal.Decimal
}

// BookingRequest is the create-booking payload of the venue API.
type BookingRequest struct {
	Hall            int    `json:"hall"`
	EventDate       string `json:"event_date"`
	EventTime       string `json:"event_time"`
	GuestCount      int    `json:"guest_count"`
	EventType       string `json:"event_type"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	MenuItems       []int  `json:"menu_items"`
	SpecialRequests string `json:"special_requests"`
	TotalPrice      string `json:"total_price"`
}

type BookingConfirmation struct {
	BookingID string `json:"booking_id"`
	Status    string `json:"status"`
}

// WorkflowState is a point-in-time snapshot of one booking session; the draft
// inside it is a copy, safe to hand out.
type WorkflowState struct {
	SessionID       string
	Step            Step
	Draft           BookingDraft
	Pricing         PriceBreakdown
	SubmitStatus    SubmitStatus
	BookingID       string
	CatalogDegraded bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
