package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Amount is a lenient monetary value. The booking form has historically sent
// amounts as numbers, numeric strings, or nothing at all; anything that does
// not parse coerces to 0 instead of failing the request.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		*a = Amount(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			*a = Amount(v)
			return nil
		}
	}
	*a = 0
	return nil
}

// Float64 returns the coerced numeric value.
func (a Amount) Float64() float64 { return float64(a) }

// ChargeInput is one incidental payment as sent by the client.
type ChargeInput struct {
	Amount Amount     `json:"amount"`
	Date   *time.Time `json:"date,omitempty"`
}

// ChargeList accepts either a list of charges, a single charge object, or a
// bare scalar amount, which older clients send instead of a list.
type ChargeList []ChargeInput

func (cl *ChargeList) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*cl = nil
		return nil
	}
	switch trimmed[0] {
	case '[':
		var items []ChargeInput
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return err
		}
		*cl = items
	case '{':
		var item ChargeInput
		if err := json.Unmarshal(trimmed, &item); err != nil {
			return err
		}
		*cl = ChargeList{item}
	default:
		var a Amount
		if err := a.UnmarshalJSON(trimmed); err != nil {
			return err
		}
		*cl = ChargeList{{Amount: a}}
	}
	return nil
}

// BookingInput is the full booking payload accepted by the create operation.
// Dates arrive as "YYYY-MM-DD" strings and monetary fields through the
// lenient Amount type.
type BookingInput struct {
	VenueType       string `json:"venueType"`
	EventType       string `json:"eventType"`
	Groom           string `json:"groom"`
	Bride           string `json:"bride"`
	CustomerName    string `json:"customerName"`
	CustomerAddress string `json:"customerAddress"`
	CustomerNumber  string `json:"customerNumber"`
	CustomerNumber2 string `json:"customerNumber2"`

	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	PackageType string     `json:"packageType"`
	Items       []LineItem `json:"items"`

	TotalAmount       Amount     `json:"totalAmount"`
	DiscountAmount    Amount     `json:"discountAmount"`
	AdvancePaid       Amount     `json:"advancePaid"`
	AdditionalAmounts ChargeList `json:"additionalAmounts"`

	PaymentStatus string `json:"paymentStatus"`

	CateringOption     string     `json:"cateringOption"`
	CateringItems      []LineItem `json:"cateringItems"`
	PackageAddonOption string     `json:"packageAddonOption"`
	PackageAddonItems  []LineItem `json:"packageAddonItems"`

	CheckDetails *CheckDetails `json:"checkDetails"`

	Notes string `json:"notes"`
}

// BookingUpdate is the partial payload accepted by the update operation.
// Nil fields keep the stored value.
type BookingUpdate struct {
	VenueType       *string `json:"venueType"`
	EventType       *string `json:"eventType"`
	Groom           *string `json:"groom"`
	Bride           *string `json:"bride"`
	CustomerName    *string `json:"customerName"`
	CustomerAddress *string `json:"customerAddress"`
	CustomerNumber  *string `json:"customerNumber"`
	CustomerNumber2 *string `json:"customerNumber2"`

	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`

	PackageType *string     `json:"packageType"`
	Items       *[]LineItem `json:"items"`

	TotalAmount       *Amount     `json:"totalAmount"`
	DiscountAmount    *Amount     `json:"discountAmount"`
	AdvancePaid       *Amount     `json:"advancePaid"`
	AdditionalAmounts *ChargeList `json:"additionalAmounts"`

	PaymentStatus *string `json:"paymentStatus"`

	CateringOption     *string     `json:"cateringOption"`
	CateringItems      *[]LineItem `json:"cateringItems"`
	PackageAddonOption *string     `json:"packageAddonOption"`
	PackageAddonItems  *[]LineItem `json:"packageAddonItems"`

	CheckDetails *CheckDetails `json:"checkDetails"`

	Notes *string `json:"notes"`
}

// AsInput converts a stored booking back into payload form so a partial
// update can be overlaid and the result re-validated like a fresh request.
func (b *Booking) AsInput() BookingInput {
	in := BookingInput{
		VenueType:       b.VenueType,
		EventType:       b.EventType,
		Groom:           b.Groom,
		Bride:           b.Bride,
		CustomerName:    b.CustomerName,
		CustomerAddress: b.CustomerAddress,
		CustomerNumber:  b.CustomerNumber,
		CustomerNumber2: b.CustomerNumber2,
		PackageType:     b.PackageType,
		Items:           b.Items,
		TotalAmount:     Amount(b.TotalAmount),
		DiscountAmount:  Amount(b.DiscountAmount),
		AdvancePaid:     Amount(b.AdvancePaid),
		PaymentStatus:   b.PaymentStatus,

		CateringOption:     b.CateringOption,
		CateringItems:      b.CateringItems,
		PackageAddonOption: b.PackageAddonOption,
		PackageAddonItems:  b.PackageAddonItems,

		CheckDetails: b.CheckDetails,
		Notes:        b.Notes,
	}
	if !b.StartDate.IsZero() {
		in.StartDate = b.StartDate.Format(DateLayout)
	}
	if !b.EndDate.IsZero() {
		in.EndDate = b.EndDate.Format(DateLayout)
	}
	for _, c := range b.AdditionalAmounts {
		date := c.Date
		in.AdditionalAmounts = append(in.AdditionalAmounts, ChargeInput{
			Amount: Amount(c.Amount),
			Date:   &date,
		})
	}
	return in
}

// Apply overlays the update's non-nil fields onto the payload.
func (u *BookingUpdate) Apply(in *BookingInput) {
	if u.VenueType != nil {
		in.VenueType = *u.VenueType
	}
	if u.EventType != nil {
		in.EventType = *u.EventType
	}
	if u.Groom != nil {
		in.Groom = *u.Groom
	}
	if u.Bride != nil {
		in.Bride = *u.Bride
	}
	if u.CustomerName != nil {
		in.CustomerName = *u.CustomerName
	}
	if u.CustomerAddress != nil {
		in.CustomerAddress = *u.CustomerAddress
	}
	if u.CustomerNumber != nil {
		in.CustomerNumber = *u.CustomerNumber
	}
	if u.CustomerNumber2 != nil {
		in.CustomerNumber2 = *u.CustomerNumber2
	}
	if u.StartDate != nil {
		in.StartDate = *u.StartDate
	}
	if u.EndDate != nil {
		in.EndDate = *u.EndDate
	}
	if u.PackageType != nil {
		in.PackageType = *u.PackageType
	}
	if u.Items != nil {
		in.Items = *u.Items
	}
	if u.TotalAmount != nil {
		in.TotalAmount = *u.TotalAmount
	}
	if u.DiscountAmount != nil {
		in.DiscountAmount = *u.DiscountAmount
	}
	if u.AdvancePaid != nil {
		in.AdvancePaid = *u.AdvancePaid
	}
	if u.AdditionalAmounts != nil {
		in.AdditionalAmounts = *u.AdditionalAmounts
	}
	if u.PaymentStatus != nil {
		in.PaymentStatus = *u.PaymentStatus
	}
	if u.CateringOption != nil {
		in.CateringOption = *u.CateringOption
	}
	if u.CateringItems != nil {
		in.CateringItems = *u.CateringItems
	}
	if u.PackageAddonOption != nil {
		in.PackageAddonOption = *u.PackageAddonOption
	}
	if u.PackageAddonItems != nil {
		in.PackageAddonItems = *u.PackageAddonItems
	}
	if u.CheckDetails != nil {
		in.CheckDetails = u.CheckDetails
	}
	if u.Notes != nil {
		in.Notes = *u.Notes
	}
}
