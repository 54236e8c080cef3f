package booking

import (
	"fmt"
	"regexp"
	"slices"

	"venuedesk/models"
)

var phoneNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)

// ValidateInput checks a booking payload before any conflict check, pricing
// step or write runs. The first failing check wins; a nil result means the
// payload is valid.
func ValidateInput(in *models.BookingInput) error {
	// Marriage events must name both parties.
	if in.EventType == models.EventMarriage && (in.Groom == "" || in.Bride == "") {
		return &ValidationError{
			Code:    CodeMissingMarriageParties,
			Field:   "groom",
			Message: "Groom and Bride names are required for Marriage events.",
		}
	}

	// Date range: same-day bookings are allowed. A missing date is reported
	// by the required-field check below, not here.
	if in.StartDate != "" && in.EndDate != "" {
		start, errStart := models.ParseDate(in.StartDate)
		end, errEnd := models.ParseDate(in.EndDate)
		if errStart != nil {
			return &ValidationError{
				Code:    CodeInvalidDateRange,
				Field:   "startDate",
				Message: "Invalid start date format.",
			}
		}
		if errEnd != nil {
			return &ValidationError{
				Code:    CodeInvalidDateRange,
				Field:   "endDate",
				Message: "Invalid end date format.",
			}
		}
		if end.Before(start) {
			return &ValidationError{
				Code:    CodeInvalidDateRange,
				Field:   "endDate",
				Message: "Start date must be the same or before the end date.",
			}
		}
	}

	required := []struct {
		field string
		value string
	}{
		{"venueType", in.VenueType},
		{"eventType", in.EventType},
		{"customerName", in.CustomerName},
		{"customerNumber", in.CustomerNumber},
		{"startDate", in.StartDate},
		{"endDate", in.EndDate},
		{"packageType", in.PackageType},
	}
	for _, req := range required {
		if req.value == "" {
			return &ValidationError{
				Code:    CodeMissingRequiredField,
				Field:   req.field,
				Message: fmt.Sprintf("Required field %q is missing.", req.field),
			}
		}
	}

	// Bank details are required exactly when the check-payment flag is set.
	if cd := in.CheckDetails; cd != nil && cd.IsRequired {
		if cd.BankName == "" || cd.CheckNumber == "" || cd.Remark == "" {
			return &ValidationError{
				Code:    CodeIncompleteCheckDetails,
				Field:   "checkDetails",
				Message: "Bank name, check number and remark are required when paying by check.",
			}
		}
	}

	if !phoneNumberPattern.MatchString(in.CustomerNumber) {
		return &ValidationError{
			Code:    CodeInvalidCustomerNumber,
			Field:   "customerNumber",
			Message: "Customer number must be a 10-digit phone number.",
		}
	}
	if in.CustomerNumber2 != "" && !phoneNumberPattern.MatchString(in.CustomerNumber2) {
		return &ValidationError{
			Code:    CodeInvalidCustomerNumber,
			Field:   "customerNumber2",
			Message: "Customer number must be a 10-digit phone number.",
		}
	}

	return validateEnums(in)
}

func validateEnums(in *models.BookingInput) error {
	checks := []struct {
		field   string
		value   string
		allowed []string
	}{
		{"venueType", in.VenueType, models.VenueTypes},
		{"eventType", in.EventType, models.EventTypes},
		{"packageType", in.PackageType, models.PackageTypes},
	}
	for _, chk := range checks {
		if !slices.Contains(chk.allowed, chk.value) {
			return &ValidationError{
				Code:    CodeInvalidFieldValue,
				Field:   chk.field,
				Message: fmt.Sprintf("Invalid value %q for field %q.", chk.value, chk.field),
			}
		}
	}

	optional := []struct {
		field   string
		value   string
		allowed []string
	}{
		{"paymentStatus", in.PaymentStatus, []string{models.PaymentBooked, models.PaymentEnquiry}},
		{"cateringOption", in.CateringOption, []string{models.OptionYes, models.OptionNo}},
		{"packageAddonOption", in.PackageAddonOption, []string{models.OptionYes, models.OptionNo}},
	}
	for _, chk := range optional {
		if chk.value != "" && !slices.Contains(chk.allowed, chk.value) {
			return &ValidationError{
				Code:    CodeInvalidFieldValue,
				Field:   chk.field,
				Message: fmt.Sprintf("Invalid value %q for field %q.", chk.value, chk.field),
			}
		}
	}
	return nil
}
