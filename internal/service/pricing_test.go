package service

import (
	"testing"

	"github.com/adnanhb/MarqueeBooker/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestComputeTotal_HallAndMenu(t *testing.T) {
	cat := newTestCatalog(t, testHalls(), testMenuItems())

	d := domain.NewBookingDraft()
	d.HallID = 1 // base price 25000
	d.GuestCount = 50
	d.MenuItemIDs[10] = struct{}{} // 500
	d.MenuItemIDs[11] = struct{}{} // 750

	b := ComputeTotal(d, cat)

	assert.Equal(t, "25000.00", b.HallPrice.StringFixed(2))
	assert.Equal(t, "1250.00", b.PerGuestMenuUnit.StringFixed(2))
	assert.Equal(t, "62500.00", b.MenuTotal.StringFixed(2))
	assert.Equal(t, "87500.00", b.GrandTotal.StringFixed(2))
}

func TestComputeTotal_EmptyDraft(t *testing.T) {
	cat := newTestCatalog(t, testHalls(), testMenuItems())

	b := ComputeTotal(domain.NewBookingDraft(), cat)

	assert.True(t, b.HallPrice.IsZero())
	assert.True(t, b.PerGuestMenuUnit.IsZero())
	assert.True(t, b.MenuTotal.IsZero())
	assert.True(t, b.GrandTotal.IsZero())
}

func TestComputeTotal_UnknownItemsContributeZero(t *testing.T) {
	cat := newTestCatalog(t, testHalls(), testMenuItems())

	d := domain.NewBookingDraft()
	d.HallID = 2 // 15000
	d.GuestCount = 10
	d.MenuItemIDs[10] = struct{}{}  // 500
	d.MenuItemIDs[12] = struct{}{}  // unavailable, not in catalog
	d.MenuItemIDs[999] = struct{}{} // never existed

	b := ComputeTotal(d, cat)

	assert.Equal(t, "500.00", b.PerGuestMenuUnit.StringFixed(2))
	assert.Equal(t, "5000.00", b.MenuTotal.StringFixed(2))
	assert.Equal(t, "20000.00", b.GrandTotal.StringFixed(2))
}

func TestComputeTotal_MenuWithoutGuests(t *testing.T) {
	cat := newTestCatalog(t, testHalls(), testMenuItems())

	d := domain.NewBookingDraft()
	d.MenuItemIDs[10] = struct{}{}

	b := ComputeTotal(d, cat)

	assert.Equal(t, "500.00", b.PerGuestMenuUnit.StringFixed(2))
	assert.True(t, b.MenuTotal.IsZero())
	assert.True(t, b.GrandTotal.IsZero())
}

func TestComputeTotal_UnknownHallPricesZero(t *testing.T) {
	cat := newTestCatalog(t, testHalls(), testMenuItems())

	d := domain.NewBookingDraft()
	d.HallID = 999
	d.GuestCount = 20

	b := ComputeTotal(d, cat)

	assert.True(t, b.HallPrice.IsZero())
	assert.True(t, b.GrandTotal.IsZero())
}
