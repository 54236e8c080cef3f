package booking

import (
	"math"
	"strconv"
	"time"

	"venuedesk/models"
)

// Pricing holds the monetary figures derived from a booking payload.
type Pricing struct {
	TotalAmount     float64
	DiscountAmount  float64
	AdvancePaid     float64
	FinalPrice      float64
	AdditionalTotal float64
	// RemainingAmount is a fixed-point string rounded to 2 decimals.
	RemainingAmount string
	Charges         []models.AdditionalCharge
}

// CalculatePricing derives the booking's monetary block. It never fails:
// malformed numeric input has already been coerced to 0 by the payload
// types, and a charge without a date is stamped with now.
func CalculatePricing(in *models.BookingInput, now time.Time) Pricing {
	charges := make([]models.AdditionalCharge, 0, len(in.AdditionalAmounts))
	additionalTotal := 0.0
	for _, c := range in.AdditionalAmounts {
		date := now
		if c.Date != nil {
			date = *c.Date
		}
		charges = append(charges, models.AdditionalCharge{
			Amount: c.Amount.Float64(),
			Date:   date,
		})
		additionalTotal += c.Amount.Float64()
	}

	total := in.TotalAmount.Float64()
	discount := in.DiscountAmount.Float64()
	advance := in.AdvancePaid.Float64()

	finalPrice := total - discount
	remaining := finalPrice - advance - additionalTotal

	return Pricing{
		TotalAmount:     total,
		DiscountAmount:  discount,
		AdvancePaid:     advance,
		FinalPrice:      finalPrice,
		AdditionalTotal: additionalTotal,
		RemainingAmount: formatFixed(remaining),
		Charges:         charges,
	}
}

// gateItems keeps an attached item list only when its selection flag is
// "yes"; otherwise the list is stored empty regardless of what was sent.
func gateItems(option string, items []models.LineItem) []models.LineItem {
	if option != models.OptionYes || items == nil {
		return []models.LineItem{}
	}
	return items
}

// formatFixed renders a monetary value as a fixed-point string with two
// decimals, avoiding floating-point display drift.
func formatFixed(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', 2, 64)
}
