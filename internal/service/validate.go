package service

import (
	"fmt"
	"time"

	"github.com/adnanhb/MarqueeBooker/internal/domain"
	"github.com/go-playground/validator/v10"
)

// Policy holds the configurable validation rules. Requiring a non-empty menu
// selection is inherited from the venue's booking flow and can be switched
// off per deployment.
type Policy struct {
	RequireMenuSelection bool
}

var fieldValidate = validator.New()

// ValidateStep runs the checks for one wizard step against the draft. Pure:
// no state is touched, reasons come back in check order.
func ValidateStep(step domain.Step, d *domain.BookingDraft, cat Catalog, policy Policy) domain.CheckResult {
	switch step {
	case domain.StepEvent:
		return validateEventDetails(d, cat)
	case domain.StepContact:
		return validateContact(d)
	case domain.StepMenu:
		return validateMenu(d, policy)
	default:
		// review and anything past it: gating already happened
		return domain.CheckResult{Valid: true}
	}
}

func validateEventDetails(d *domain.BookingDraft, cat Catalog) domain.CheckResult {
	var reasons []domain.FieldError

	var hall *domain.Hall
	if d.HallID == 0 {
		reasons = append(reasons, domain.FieldError{Field: "hall", Message: "hall is required"})
	} else {
		h, err := cat.HallByID(d.HallID)
		if err != nil {
			reasons = append(reasons, domain.FieldError{Field: "hall", Message: "selected hall is unknown or inactive"})
		} else {
			hall = h
		}
	}

	switch {
	case d.EventDate.IsZero():
		reasons = append(reasons, domain.FieldError{Field: "event_date", Message: "event date is required"})
	case dateOnly(d.EventDate).Before(dateOnly(time.Now())):
		// date-only comparison: today always passes regardless of time of day
		reasons = append(reasons, domain.FieldError{Field: "event_date", Message: "event date cannot be in the past"})
	}

	if d.EventTime == "" {
		reasons = append(reasons, domain.FieldError{Field: "event_time", Message: "event time is required"})
	} else if _, err := time.Parse("15:04", d.EventTime); err != nil {
		reasons = append(reasons, domain.FieldError{Field: "event_time", Message: "event time must be HH:MM"})
	}

	if d.GuestCount < 1 {
		reasons = append(reasons, domain.FieldError{Field: "guest_count", Message: "guest count must be at least 1"})
	} else if hall != nil && d.GuestCount > hall.Capacity {
		reasons = append(reasons, domain.FieldError{
			Field:   "guest_count",
			Message: fmt.Sprintf("guest count exceeds hall capacity (%d)", hall.Capacity),
		})
	}

	if d.EventType == "" {
		reasons = append(reasons, domain.FieldError{Field: "event_type", Message: "event type is required"})
	}

	return domain.CheckResult{Valid: len(reasons) == 0, Reasons: reasons}
}

func validateContact(d *domain.BookingDraft) domain.CheckResult {
	var reasons []domain.FieldError

	if d.CustomerName == "" {
		reasons = append(reasons, domain.FieldError{Field: "customer_name", Message: "name is required"})
	}
	if err := fieldValidate.Var(d.CustomerEmail, "required,email"); err != nil {
		reasons = append(reasons, domain.FieldError{Field: "customer_email", Message: "a valid email address is required"})
	}
	if d.CustomerPhone == "" {
		reasons = append(reasons, domain.FieldError{Field: "customer_phone", Message: "phone number is required"})
	}

	return domain.CheckResult{Valid: len(reasons) == 0, Reasons: reasons}
}

func validateMenu(d *domain.BookingDraft, policy Policy) domain.CheckResult {
	if policy.RequireMenuSelection && len(d.MenuItemIDs) == 0 {
		return domain.CheckResult{
			Reasons: []domain.FieldError{{Field: "menu_items", Message: "select at least one menu item"}},
		}
	}
	return domain.CheckResult{Valid: true}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
