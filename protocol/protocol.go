package protocol

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Resource kinds and message kinds carried in metadata. IDs are formed as
// "<kind>_<uuid>" so a raw id is attributable without fetching the record.
const (
	KindOffering = "offering"
	KindRFQ      = "rfq"
)

// ResourceMetadata describes a published negotiation resource such as an
// Offering. Resources have an author but no addressee.
type ResourceMetadata struct {
	From      string    `json:"from"`
	Kind      string    `json:"kind"`
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessageMetadata describes a directed negotiation message such as an RFQ.
type MessageMetadata struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Kind      string    `json:"kind"`
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// PaymentMethod is one way of moving money on either side of an Offering.
// RequiredPaymentDetails is an opaque schema blob; this package never
// validates it.
type PaymentMethod struct {
	Kind                   string          `json:"kind"`
	RequiredPaymentDetails json.RawMessage `json:"requiredPaymentDetails,omitempty"`
}

// PayinDetails describes the currency and accepted methods on the payin side.
type PayinDetails struct {
	CurrencyCode string          `json:"currencyCode"`
	Methods      []PaymentMethod `json:"methods"`
}

// PayoutDetails mirrors PayinDetails for the payout side.
type PayoutDetails struct {
	CurrencyCode string          `json:"currencyCode"`
	Methods      []PaymentMethod `json:"methods"`
}

// OfferingData is the liquidity provider's advertised exchange terms.
type OfferingData struct {
	Description             string        `json:"description"`
	PayoutUnitsPerPayinUnit string        `json:"payoutUnitsPerPayinUnit"`
	Payin                   PayinDetails  `json:"payin"`
	Payout                  PayoutDetails `json:"payout"`
	RequiredClaims          []string      `json:"requiredClaims,omitempty"`
}

// Offering is a published resource advertising exchange terms.
type Offering struct {
	Metadata ResourceMetadata `json:"metadata"`
	Data     OfferingData     `json:"data"`
}

// SelectedMethod names the payment method an RFQ picks from an Offering,
// with caller-supplied details matching that method's requirements.
type SelectedMethod struct {
	Kind           string          `json:"kind"`
	PaymentDetails json.RawMessage `json:"paymentDetails,omitempty"`
}

// RFQData is a request for a firm quote against a specific Offering. Claims
// carries compact signed tokens satisfying the Offering's required claims.
type RFQData struct {
	OfferingID  string         `json:"offeringId"`
	PayinAmount string         `json:"payinAmount"`
	Payin       SelectedMethod `json:"payinMethod"`
	Payout      SelectedMethod `json:"payoutMethod"`
	Claims      []string       `json:"claims,omitempty"`
}

// RFQ is a directed message from a wallet to an Offering's author.
type RFQ struct {
	Metadata MessageMetadata `json:"metadata"`
	Data     RFQData         `json:"data"`
}

func newID(kind string) string {
	return kind + "_" + uuid.NewString()
}
