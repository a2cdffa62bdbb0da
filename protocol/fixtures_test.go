package protocol

import (
	"context"
	"strings"
	"testing"

	"github.com/quotedex/didjws"
	"github.com/quotedex/didjws/did"
)

func newIdentity(t *testing.T, alg did.Algorithm) did.Identity {
	t.Helper()
	id, err := did.NewJWK(alg)
	if err != nil {
		t.Fatalf("new identity: %v", err)
	}
	return id
}

func TestDevOfferingShape(t *testing.T) {
	pfi := newIdentity(t, did.AlgorithmES256K)
	offering := DevOffering(pfi)

	if offering.Metadata.From != pfi.URI || offering.Metadata.Kind != KindOffering {
		t.Fatalf("unexpected metadata %+v", offering.Metadata)
	}
	if !strings.HasPrefix(offering.Metadata.ID, KindOffering+"_") {
		t.Fatalf("id %q lacks kind prefix", offering.Metadata.ID)
	}
	if offering.Data.Payin.CurrencyCode != "USD" || offering.Data.Payout.CurrencyCode != "BTC" {
		t.Fatalf("unexpected currency pair %+v", offering.Data)
	}
	if len(offering.Data.Payin.Methods) == 0 || offering.Data.Payin.Methods[0].RequiredPaymentDetails == nil {
		t.Fatal("payin method must carry a required-details blob")
	}

	second := DevOffering(pfi)
	if second.Metadata.ID == offering.Metadata.ID {
		t.Fatal("offering ids must be unique per factory call")
	}
}

func TestDevRFQClaimsAreSignedTokens(t *testing.T) {
	pfi := newIdentity(t, did.AlgorithmES256K)
	wallet := newIdentity(t, did.AlgorithmEdDSA)

	offering := DevOffering(pfi)
	rfq, err := DevRFQ(wallet, offering)
	if err != nil {
		t.Fatalf("dev rfq: %v", err)
	}

	if rfq.Metadata.From != wallet.URI || rfq.Metadata.To != pfi.URI {
		t.Fatalf("rfq misaddressed: %+v", rfq.Metadata)
	}
	if rfq.Data.OfferingID != offering.Metadata.ID {
		t.Fatalf("rfq points at %q, offering is %q", rfq.Data.OfferingID, offering.Metadata.ID)
	}
	if len(rfq.Data.Claims) != len(offering.Data.RequiredClaims) {
		t.Fatalf("expected %d claim tokens, got %d", len(offering.Data.RequiredClaims), len(rfq.Data.Claims))
	}

	for _, token := range rfq.Data.Claims {
		decoded, err := didjws.Verify(context.Background(), token)
		if err != nil {
			t.Fatalf("claim token fails verification: %v", err)
		}
		if decoded.Payload["iss"] != wallet.URI || decoded.Payload["sub"] != pfi.URI {
			t.Fatalf("claim token misattributed: %#v", decoded.Payload)
		}
		if decoded.Payload["claim"] != "sanctions_screening" {
			t.Fatalf("unexpected claim body %#v", decoded.Payload)
		}
	}
}

func TestDevRFQFailsWithKeylessWallet(t *testing.T) {
	pfi := newIdentity(t, did.AlgorithmES256K)
	offering := DevOffering(pfi)

	if _, err := DevRFQ(did.Identity{URI: "did:example:empty"}, offering); err == nil {
		t.Fatal("expected keyless wallet to fail claim signing")
	}
}
