package service

import (
	"testing"
	"time"

	"github.com/adnanhb/MarqueeBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEventDraft() *domain.BookingDraft {
	d := domain.NewBookingDraft()
	d.HallID = 1
	d.EventDate = time.Now().AddDate(0, 0, 7)
	d.EventTime = "18:00"
	d.EventType = domain.EventTypeWedding
	d.GuestCount = 50
	return d
}

func reasonFields(res domain.CheckResult) []string {
	fields := make([]string, 0, len(res.Reasons))
	for _, r := range res.Reasons {
		fields = append(fields, r.Field)
	}
	return fields
}

func TestValidateStep_Event_Valid(t *testing.T) {
	cat := newTestCatalog(t, testHalls(), testMenuItems())

	res := ValidateStep(domain.StepEvent, validEventDraft(), cat, Policy{})

	assert.True(t, res.Valid)
	assert.Empty(t, res.Reasons)
}

func TestValidateStep_Event_EmptyDraft(t *testing.T) {
	cat := newTestCatalog(t, testHalls(), testMenuItems())

	res := ValidateStep(domain.StepEvent, domain.NewBookingDraft(), cat, Policy{})

	assert.False(t, res.Valid)
	fields := reasonFields(res)
	assert.Contains(t, fields, "hall")
	assert.Contains(t, fields, "event_date")
	assert.Contains(t, fields, "event_time")
	assert.Contains(t, fields, "guest_count")
	assert.Contains(t, fields, "event_type")
}

func TestValidateStep_Event_GuestCountAtCapacity(t *testing.T) {
	cat := newTestCatalog(t, testHalls(), testMenuItems())

	d := validEventDraft()
	d.GuestCount = 100 // Grand Hall capacity, boundary is inclusive

	res := ValidateStep(domain.StepEvent, d, cat, Policy{})

	assert.True(t, res.Valid)
}

func TestValidateStep_Event_GuestCountExceedsCapacity(t *testing.T) {
	cat := newTestCatalog(t, testHalls(), testMenuItems())

	d := validEventDraft()
	d.GuestCount = 101

	res := ValidateStep(domain.StepEvent, d, cat, Policy{})

	require.False(t, res.Valid)
	require.Len(t, res.Reasons, 1)
	assert.Equal(t, "guest_count", res.Reasons[0].Field)
	assert.Equal(t, "guest count exceeds hall capacity (100)", res.Reasons[0].Message)
}

func TestValidateStep_Event_PastDate(t *testing.T) {
	cat := newTestCatalog(t, testHalls(), testMenuItems())

	d := validEventDraft()
	d.EventDate = time.Now().AddDate(0, 0, -1)

	res := ValidateStep(domain.StepEvent, d, cat, Policy{})

	require.False(t, res.Valid)
	assert.Contains(t, reasonFields(res), "event_date")
}

func TestValidateStep_Event_TodayIsAllowed(t *testing.T) {
	cat := newTestCatalog(t, testHalls(), testMenuItems())

	d := validEventDraft()
	d.EventDate = time.Now()

	res := ValidateStep(domain.StepEvent, d, cat, Policy{})

	assert.True(t, res.Valid)
}

func TestValidateStep_Event_UnknownHall(t *testing.T) {
	cat := newTestCatalog(t, testHalls(), testMenuItems())

	d := validEventDraft()
	d.HallID = 3 // inactive, filtered out of the catalog

	res := ValidateStep(domain.StepEvent, d, cat, Policy{})

	require.False(t, res.Valid)
	assert.Contains(t, reasonFields(res), "hall")
}

func TestValidateStep_Event_BadTimeFormat(t *testing.T) {
	cat := newTestCatalog(t, testHalls(), testMenuItems())

	d := validEventDraft()
	d.EventTime = "6pm"

	res := ValidateStep(domain.StepEvent, d, cat, Policy{})

	require.False(t, res.Valid)
	assert.Contains(t, reasonFields(res), "event_time")
}

func TestValidateStep_Contact_Valid(t *testing.T) {
	cat := newTestCatalog(t, testHalls(), testMenuItems())

	d := domain.NewBookingDraft()
	d.CustomerName = "Aisha Khan"
	d.CustomerEmail = "aisha@example.com"
	d.CustomerPhone = "+92-300-1234567"

	res := ValidateStep(domain.StepContact, d, cat, Policy{})

	assert.True(t, res.Valid)
}

func TestValidateStep_Contact_BadEmail(t *testing.T) {
	cat := newTestCatalog(t, testHalls(), testMenuItems())

	d := domain.NewBookingDraft()
	d.CustomerName = "Aisha Khan"
	d.CustomerEmail = "not-an-email"
	d.CustomerPhone = "+92-300-1234567"

	res := ValidateStep(domain.StepContact, d, cat, Policy{})

	require.False(t, res.Valid)
	require.Len(t, res.Reasons, 1)
	assert.Equal(t, "customer_email", res.Reasons[0].Field)
}

func TestValidateStep_Menu_RequiredByPolicy(t *testing.T) {
	cat := newTestCatalog(t, testHalls(), testMenuItems())
	d := domain.NewBookingDraft()

	res := ValidateStep(domain.StepMenu, d, cat, Policy{RequireMenuSelection: true})
	require.False(t, res.Valid)
	assert.Equal(t, "menu_items", res.Reasons[0].Field)

	d.MenuItemIDs[10] = struct{}{}
	res = ValidateStep(domain.StepMenu, d, cat, Policy{RequireMenuSelection: true})
	assert.True(t, res.Valid)
}

func TestValidateStep_Menu_OptionalByPolicy(t *testing.T) {
	cat := newTestCatalog(t, testHalls(), testMenuItems())

	res := ValidateStep(domain.StepMenu, domain.NewBookingDraft(), cat, Policy{RequireMenuSelection: false})

	assert.True(t, res.Valid)
}

func TestValidateStep_Review_AlwaysValid(t *testing.T) {
	cat := newTestCatalog(t, testHalls(), testMenuItems())

	res := ValidateStep(domain.StepReview, domain.NewBookingDraft(), cat, Policy{RequireMenuSelection: true})

	assert.True(t, res.Valid)
}
