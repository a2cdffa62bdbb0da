package protocol

import (
	"encoding/json"
	"time"

	"github.com/quotedex/didjws"
	"github.com/quotedex/didjws/did"
)

// Fixture factories. These are static example data for tests and local
// development, not production offer construction.

var debitCardDetails = json.RawMessage(`{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "cardNumber": {"type": "string"},
    "expiryDate": {"type": "string"},
    "cardHolderName": {"type": "string"},
    "cvv": {"type": "string"}
  },
  "required": ["cardNumber", "expiryDate", "cardHolderName", "cvv"],
  "additionalProperties": false
}`)

var btcAddressDetails = json.RawMessage(`{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "btcAddress": {"type": "string"}
  },
  "required": ["btcAddress"],
  "additionalProperties": false
}`)

// DevOffering builds a USD→BTC example Offering authored by issuer.
func DevOffering(issuer did.Identity) Offering {
	return Offering{
		Metadata: ResourceMetadata{
			From:      issuer.URI,
			Kind:      KindOffering,
			ID:        newID(KindOffering),
			CreatedAt: time.Now().UTC(),
		},
		Data: OfferingData{
			Description:             "Selling BTC for USD",
			PayoutUnitsPerPayinUnit: "0.00003826",
			Payin: PayinDetails{
				CurrencyCode: "USD",
				Methods: []PaymentMethod{{
					Kind:                   "DEBIT_CARD",
					RequiredPaymentDetails: debitCardDetails,
				}},
			},
			Payout: PayoutDetails{
				CurrencyCode: "BTC",
				Methods: []PaymentMethod{{
					Kind:                   "BTC_ADDRESS",
					RequiredPaymentDetails: btcAddressDetails,
				}},
			},
			RequiredClaims: []string{"sanctions_screening"},
		},
	}
}

// DevRFQ builds an RFQ from wallet against offering, addressed to the
// offering's author. One compact claim token per required claim is signed
// with the wallet's primary key.
func DevRFQ(wallet did.Identity, offering Offering) (RFQ, error) {
	claims := make([]string, 0, len(offering.Data.RequiredClaims))
	for _, name := range offering.Data.RequiredClaims {
		token, err := didjws.Sign(wallet, offering.Metadata.From, map[string]any{
			"claim": name,
		})
		if err != nil {
			return RFQ{}, err
		}
		claims = append(claims, token)
	}

	return RFQ{
		Metadata: MessageMetadata{
			From:      wallet.URI,
			To:        offering.Metadata.From,
			Kind:      KindRFQ,
			ID:        newID(KindRFQ),
			CreatedAt: time.Now().UTC(),
		},
		Data: RFQData{
			OfferingID:  offering.Metadata.ID,
			PayinAmount: "100.00",
			Payin: SelectedMethod{
				Kind:           "DEBIT_CARD",
				PaymentDetails: json.RawMessage(`{"cardNumber":"4111111111111111","expiryDate":"12/30","cardHolderName":"Ephraim Bartholomew Winthrop","cvv":"123"}`),
			},
			Payout: SelectedMethod{
				Kind:           "BTC_ADDRESS",
				PaymentDetails: json.RawMessage(`{"btcAddress":"bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh"}`),
			},
			Claims: claims,
		},
	}, nil
}
