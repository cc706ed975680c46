// Package validation is the single validation module shared by the
// capture layer and the submission gateway, so the two cannot drift.
package validation

import (
	"strings"
	"time"

	"brekkie/internal/domain"
	apperrors "brekkie/internal/errors"
)

// Advisory per-flavor caps enforced by the form UI only; the gateway
// deliberately does not re-check them.
const (
	PreorderMaxPerFlavor  = 20
	WholesaleMaxPerFlavor = 100
)

// ValidatePayload applies the gateway-side rules in order: recognized
// form type, then email. Quantities are normalized to zero when negative;
// no upper bound is enforced server-side.
func ValidatePayload(p *domain.OrderPayload) error {
	if !p.IsDelivery() && !p.IsWholesale() {
		return apperrors.NewValidationError("Invalid form type", apperrors.ValidationDetail{
			Field:   "formType",
			Message: "formType must be delivery, preorder, or wholesale",
		})
	}

	if !strings.Contains(p.Email, "@") {
		return apperrors.NewValidationError("Invalid email", apperrors.ValidationDetail{
			Field:   "email",
			Message: "email must contain @",
		})
	}

	if p.ClassicQty < 0 {
		p.ClassicQty = 0
	}
	if p.BlueberryQty < 0 {
		p.BlueberryQty = 0
	}
	if p.WalnutQty < 0 {
		p.WalnutQty = 0
	}

	return nil
}

// ValidateQuantities enforces the at-least-one-flavor rule. Only the
// capture layer calls it, before any network call is made.
func ValidateQuantities(classic, blueberry, walnut int) error {
	if classic <= 0 && blueberry <= 0 && walnut <= 0 {
		return apperrors.NewValidationError("Please select at least one flavor.", apperrors.ValidationDetail{
			Field:   "quantities",
			Message: "at least one flavor quantity must be positive",
		})
	}
	return nil
}

// ValidateDeliveryDate enforces that the requested delivery day is
// strictly after the submission day. Like the empty-order rule it is
// capture-side only; the gateway does not re-check it.
func ValidateDeliveryDate(date string, now time.Time) error {
	if date == "" {
		return apperrors.NewValidationError("Please choose a delivery date.", apperrors.ValidationDetail{
			Field:   "deliveryDate",
			Message: "deliveryDate is required",
		})
	}

	day, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return apperrors.NewValidationError("Delivery date must be a valid date.", apperrors.ValidationDetail{
			Field:   "deliveryDate",
			Message: "deliveryDate must be formatted YYYY-MM-DD",
		})
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if !day.After(today) {
		return apperrors.NewValidationError("Delivery date must be after today.", apperrors.ValidationDetail{
			Field:   "deliveryDate",
			Message: "deliveryDate must be strictly after the submission day",
		})
	}

	return nil
}
