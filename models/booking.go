package models

import "time"

// Venue categories. "Both" takes the lawn and the banquet hall together
// for the whole date range.
const (
	VenueLawn    = "Lawn"
	VenueBanquet = "Banquet"
	VenueBoth    = "Both"
)

// Event types offered on the booking form.
const (
	EventMarriage  = "Marriage"
	EventBirthday  = "Birthday"
	EventCorporate = "Corporate Party"
	EventOther     = "Other"
)

// Payment states. Enquiry records are provisional holds; they never block
// another booking's dates and are never conflict-checked themselves.
const (
	PaymentBooked  = "Booked"
	PaymentEnquiry = "Enquiry"
)

// Yes/no selection flags used by the catering and package add-on sections.
const (
	OptionYes = "yes"
	OptionNo  = "no"
)

// VenueTypes lists the accepted venue categories.
var VenueTypes = []string{VenueLawn, VenueBanquet, VenueBoth}

// EventTypes lists the accepted event categories.
var EventTypes = []string{EventMarriage, EventBirthday, EventCorporate, EventOther}

// PackageTypes lists the packages offered on the booking form.
var PackageTypes = []string{"Afternoon", "Classic", "Deluxe", "Signature", "Elite", "Custom"}

// LineItem is a single entry on one of the attached item lists
// (general items, catering, package add-ons).
type LineItem struct {
	Name     string `bson:"name" json:"name"`
	Quantity int    `bson:"quantity" json:"quantity"`
	Remarks  string `bson:"remarks,omitempty" json:"remarks,omitempty"`
}

// AdditionalCharge is an incidental payment logged after the initial booking.
type AdditionalCharge struct {
	Amount float64   `bson:"amount" json:"amount"`
	Date   time.Time `bson:"date" json:"date"`
}

// CheckDetails carries bank check information when the customer pays by check.
// BankName, CheckNumber and Remark are required exactly when IsRequired is set.
type CheckDetails struct {
	IsRequired  bool   `bson:"is_required" json:"isRequired"`
	BankName    string `bson:"bank_name" json:"bankName"`
	CheckNumber string `bson:"check_number" json:"checkNumber"`
	Remark      string `bson:"remark" json:"remark"`
}

// Booking is a reservation of the lawn and/or banquet hall for a date range.
type Booking struct {
	ID              string `bson:"id" json:"id"`
	VenueType       string `bson:"venue_type" json:"venueType"`
	EventType       string `bson:"event_type" json:"eventType"`
	Groom           string `bson:"groom,omitempty" json:"groom,omitempty"`
	Bride           string `bson:"bride,omitempty" json:"bride,omitempty"`
	CustomerName    string `bson:"customer_name" json:"customerName"`
	CustomerAddress string `bson:"customer_address" json:"customerAddress"`
	CustomerNumber  string `bson:"customer_number" json:"customerNumber"`
	CustomerNumber2 string `bson:"customer_number2,omitempty" json:"customerNumber2,omitempty"`

	// Calendar dates, stored as UTC midnight; the range is inclusive on
	// both ends and EndDate is never before StartDate.
	StartDate time.Time `bson:"start_date" json:"startDate"`
	EndDate   time.Time `bson:"end_date" json:"endDate"`

	PackageType string     `bson:"package_type" json:"packageType"`
	Items       []LineItem `bson:"items" json:"items"`

	TotalAmount       float64            `bson:"total_amount" json:"totalAmount"`
	DiscountAmount    float64            `bson:"discount_amount" json:"discountAmount"`
	FinalPrice        float64            `bson:"final_price" json:"finalPrice"`
	AdvancePaid       float64            `bson:"advance_paid" json:"advancePaid"`
	AdditionalAmounts []AdditionalCharge `bson:"additional_amounts" json:"additionalAmounts"`
	// RemainingAmount is kept as a fixed-point string ("6500.00") so the
	// client never sees floating-point display drift.
	RemainingAmount string `bson:"remaining_amount" json:"remainingAmount"`

	PaymentStatus string `bson:"payment_status" json:"paymentStatus"`

	CateringOption     string     `bson:"catering_option" json:"cateringOption"`
	CateringItems      []LineItem `bson:"catering_items" json:"cateringItems"`
	PackageAddonOption string     `bson:"package_addon_option" json:"packageAddonOption"`
	PackageAddonItems  []LineItem `bson:"package_addon_items" json:"packageAddonItems"`

	CheckDetails *CheckDetails `bson:"check_details,omitempty" json:"checkDetails,omitempty"`

	Notes string `bson:"notes,omitempty" json:"notes,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date from its wire format, also accepting a
// full RFC 3339 timestamp, and truncates it to UTC midnight.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
