package service

import (
	"github.com/adnanhb/MarqueeBooker/internal/domain"
	"github.com/shopspring/decimal"
)

// ComputeTotal aggregates hall price plus per-guest menu cost. All arithmetic
// stays in decimals; nothing is rounded until serialization. Unknown or
// deselected-from-catalog ids contribute zero instead of failing, mirroring
// how a stale selection prices out on the review screen.
func ComputeTotal(d *domain.BookingDraft, cat Catalog) domain.PriceBreakdown {
	var b domain.PriceBreakdown

	if d.HallID != 0 {
		if hall, err := cat.HallByID(d.HallID); err == nil {
			b.HallPrice = hall.BasePrice
		}
	}

	for _, id := range d.SelectedMenuItems() {
		item, err := cat.MenuItemByID(id)
		if err != nil {
			continue
		}
		b.PerGuestMenuUnit = b.PerGuestMenuUnit.Add(item.Price)
	}

	if d.GuestCount > 0 {
		b.MenuTotal = b.PerGuestMenuUnit.Mul(decimal.NewFromInt(int64(d.GuestCount)))
	}

	b.GrandTotal = b.HallPrice.Add(b.MenuTotal)
	return b
}
