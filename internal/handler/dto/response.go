package dto

import (
	"time"

	"github.com/adnanhb/MarqueeBooker/internal/domain"
)

type HallResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int    `json:"capacity"`
	BasePrice   string `json:"base_price"`
	IsActive    bool   `json:"is_active"`
}

type MenuItemResponse struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Price        string `json:"price"`
	Category     int    `json:"category"`
	IsVegetarian bool   `json:"is_vegetarian"`
	IsAvailable  bool   `json:"is_available"`
}

type DraftResponse struct {
	Hall            int    `json:"hall"`
	EventDate       string `json:"event_date,omitempty"`
	EventTime       string `json:"event_time,omitempty"`
	EventType       string `json:"event_type,omitempty"`
	GuestCount      int    `json:"guest_count"`
	CustomerName    string `json:"customer_name"`
	CustomerEmail   string `json:"customer_email"`
	CustomerPhone   string `json:"customer_phone"`
	MenuItems       []int  `json:"menu_items"`
	SpecialRequests string `json:"special_requests"`
}

// PricingResponse is where monetary values get their two-digit fixing; the
// engine itself never rounds.
type PricingResponse struct {
	HallPrice        string `json:"hall_price"`
	PerGuestMenuUnit string `json:"per_guest_menu_unit"`
	MenuTotal        string `json:"menu_total"`
	GrandTotal       string `json:"grand_total"`
}

type SessionResponse struct {
	SessionID       string          `json:"session_id"`
	Step            int             `json:"step"`
	StepName        string          `json:"step_name"`
	Draft           DraftResponse   `json:"draft"`
	Pricing         PricingResponse `json:"pricing"`
	SubmitStatus    string          `json:"submit_status"`
	BookingID       string          `json:"booking_id,omitempty"`
	CatalogDegraded bool            `json:"catalog_degraded"`
	CreatedAt       string          `json:"created_at"`
	UpdatedAt       string          `json:"updated_at"`
}

type ErrorResponse struct {
	Error   string              `json:"error"`
	Reasons []domain.FieldError `json:"reasons,omitempty"`
}

func ToHallResponse(h *domain.Hall) HallResponse {
	return HallResponse{
		ID:          h.ID,
		Name:        h.Name,
		Description: h.Description,
		Capacity:    h.Capacity,
		BasePrice:   h.BasePrice.StringFixed(2),
		IsActive:    h.IsActive,
	}
}

func ToMenuItemResponse(it *domain.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:           it.ID,
		Name:         it.Name,
		Description:  it.Description,
		Price:        it.Price.StringFixed(2),
		Category:     it.Category,
		IsVegetarian: it.IsVegetarian,
		IsAvailable:  it.IsAvailable,
	}
}

func ToSessionResponse(s *domain.WorkflowState) SessionResponse {
	eventDate := ""
	if !s.Draft.EventDate.IsZero() {
		eventDate = s.Draft.EventDate.Format("2006-01-02")
	}

	return SessionResponse{
		SessionID: s.SessionID,
		Step:      int(s.Step),
		StepName:  s.Step.String(),
		Draft: DraftResponse{
			Hall:            s.Draft.HallID,
			EventDate:       eventDate,
			EventTime:       s.Draft.EventTime,
			EventType:       string(s.Draft.EventType),
			GuestCount:      s.Draft.GuestCount,
			CustomerName:    s.Draft.CustomerName,
			CustomerEmail:   s.Draft.CustomerEmail,
			CustomerPhone:   s.Draft.CustomerPhone,
			MenuItems:       s.Draft.SelectedMenuItems(),
			SpecialRequests: s.Draft.SpecialRequests,
		},
		Pricing: PricingResponse{
			HallPrice:        s.Pricing.HallPrice.StringFixed(2),
			PerGuestMenuUnit: s.Pricing.PerGuestMenuUnit.StringFixed(2),
			MenuTotal:        s.Pricing.MenuTotal.StringFixed(2),
			GrandTotal:       s.Pricing.GrandTotal.StringFixed(2),
		},
		SubmitStatus:    string(s.SubmitStatus),
		BookingID:       s.BookingID,
		CatalogDegraded: s.CatalogDegraded,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       s.UpdatedAt.Format(time.RFC3339),
	}
}
