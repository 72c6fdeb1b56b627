package domain

import (
	"sort"
	"time"
)

type EventType string

const (
	EventTypeWedding     EventType = "wedding"
	EventTypeBirthday    EventType = "birthday"
	EventTypeCorporate   EventType = "corporate"
	EventTypeAnniversary EventType = "anniversary"
	EventTypeGraduation  EventType = "graduation"
	EventTypeOther       EventType = "other"
)

func ParseEventType(s string) (EventType, bool) {
	switch EventType(s) {
	case EventTypeWedding, EventTypeBirthday, EventTypeCorporate,
		EventTypeAnniversary, EventTypeGraduation, EventTypeOther:
		return EventType(s), true
	}
	return "", false
}

type Step int

const (
	StepEvent   Step = 1
	StepContact Step = 2
	StepMenu    Step = 3
	StepReview  Step = 4
)

func (s Step) String() string {
	switch s {
	case StepEvent:
		return "event"
	case StepContact:
		return "contact"
	case StepMenu:
		return "menu"
	case StepReview:
		return "review"
	}
	return "unknown"
}

type SubmitStatus string

const (
	SubmitIdle    SubmitStatus = "idle"
	SubmitLoading SubmitStatus = "loading"
	SubmitError   SubmitStatus = "error"
	SubmitSuccess SubmitStatus = "success"
)

// BookingDraft is the in-progress booking for a single session. It is owned
// exclusively by the workflow that created it and is never persisted.
type BookingDraft struct {
	HallID          int       // 0 = no hall selected
	EventDate       time.Time // date-only, zero = unset
	EventTime       string    // "15:04", empty = unset
	EventType       EventType
	GuestCount      int
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	MenuItemIDs     map[int]struct{}
	SpecialRequests string
}

func NewBookingDraft() *BookingDraft {
	return &BookingDraft{
		MenuItemIDs: make(map[int]struct{}),
	}
}

// SelectedMenuItems returns the selection as a sorted slice; the draft itself
// keeps a set so duplicates collapse and order never matters.
func (d *BookingDraft) SelectedMenuItems() []int {
	ids := make([]int, 0, len(d.MenuItemIDs))
	for id := range d.MenuItemIDs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func (d *BookingDraft) Clone() *BookingDraft {
	c := *d
	c.MenuItemIDs = make(map[int]struct{}, len(d.MenuItemIDs))
	for id := range d.MenuItemIDs {
		c.MenuItemIDs[id] = struct{}{}
	}
	return &c
}

// DraftUpdate is a partial patch: nil pointers leave the field untouched.
type DraftUpdate struct {
	HallID            *int
	EventDate         *time.Time
	EventTime         *string
	EventType         *EventType
	GuestCount        *int
	CustomerName      *string
	CustomerEmail     *string
	CustomerPhone     *string
	SelectMenuItems   []int
	DeselectMenuItems []int
	SpecialRequests   *string
}

func (d *BookingDraft) Apply(u DraftUpdate) {
	if u.HallID != nil {
		d.HallID = *u.HallID
	}
	if u.EventDate != nil {
		d.EventDate = *u.EventDate
	}
	if u.EventTime != nil {
		d.EventTime = *u.EventTime
	}
	if u.EventType != nil {
		d.EventType = *u.EventType
	}
	if u.GuestCount != nil {
		d.GuestCount = *u.GuestCount
	}
	if u.CustomerName != nil {
		d.CustomerName = *u.CustomerName
	}
	if u.CustomerEmail != nil {
		d.CustomerEmail = *u.CustomerEmail
	}
	if u.CustomerPhone != nil {
		d.CustomerPhone = *u.CustomerPhone
	}
	if u.SpecialRequests != nil {
		d.SpecialRequests = *u.SpecialRequests
	}
	for _, id := range u.SelectMenuItems {
		d.MenuItemIDs[id] = struct{}{}
	}
	for _, id := range u.DeselectMenuItems {
		delete(d.MenuItemIDs, id)
	}
}
