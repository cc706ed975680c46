package domain

import (
	"strings"
	"time"
)

const (
	FormTypeDelivery  = "delivery"
	FormTypeWholesale = "wholesale"
	// FormTypePreorder is the legacy tag for the delivery variant; older
	// clients still send it and it must keep working.
	FormTypePreorder = "preorder"
)

var BusinessTypes = []string{"Bodega", "Cafe", "Gym", "Office", "Restaurant", "Other"}

const (
	FrequencyOneTime  = "one-time"
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
)

var Frequencies = []string{FrequencyOneTime, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly}

// Address is the structured form the capture layer collects. On the wire
// the payload carries only the flattened string.
type Address struct {
	Street string `json:"street"`
	Apt    string `json:"apt"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    string `json:"zip"`
}

// Format flattens the address to "street[, apt], city, state zip".
func (a Address) Format() string {
	var b strings.Builder
	b.WriteString(a.Street)
	if a.Apt != "" {
		b.WriteString(", ")
		b.WriteString(a.Apt)
	}
	b.WriteString(", ")
	b.WriteString(a.City)
	b.WriteString(", ")
	b.WriteString(a.State)
	b.WriteString(" ")
	b.WriteString(a.Zip)
	return b.String()
}

// OrderPayload is the wire shape submitted by the order form. The two
// variants (delivery and wholesale) share one flat structure tagged by
// FormType; variant-specific fields are empty on the other variant.
type OrderPayload struct {
	FormType string `json:"formType"`

	Email               string `json:"email"`
	Phone               string `json:"phone"`
	ClassicQty          int    `json:"classicQty"`
	BlueberryQty        int    `json:"blueberryQty"`
	WalnutQty           int    `json:"walnutQty"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`

	// Delivery variant.
	Name         string `json:"name,omitempty"`
	DeliveryDate string `json:"deliveryDate,omitempty"`

	// Wholesale variant.
	BusinessName string `json:"businessName,omitempty"`
	ContactName  string `json:"contactName,omitempty"`
	BusinessType string `json:"businessType,omitempty"`
	Frequency    string `json:"frequency,omitempty"`

	// Both variants submit a flattened address.
	DeliveryAddress string `json:"deliveryAddress,omitempty"`

	// SubmittedAt is assigned by the gateway; any client-supplied value
	// is overwritten before forwarding.
	SubmittedAt time.Time `json:"submittedAt,omitempty"`
}

// IsDelivery reports whether the payload is the delivery/preorder variant.
func (p OrderPayload) IsDelivery() bool {
	return p.FormType == FormTypeDelivery || p.FormType == FormTypePreorder
}

func (p OrderPayload) IsWholesale() bool {
	return p.FormType == FormTypeWholesale
}

// TotalUnits is the sum of the three flavor quantities.
func (p OrderPayload) TotalUnits() int {
	return p.ClassicQty + p.BlueberryQty + p.WalnutQty
}
