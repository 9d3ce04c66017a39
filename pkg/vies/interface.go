// Package vies defines the abstraction used to ask the EU VAT Information
// Exchange System whether a VAT number is registered.
package vies

import (
	"context"
	"vatcheck/pkg/domain"
)

// DefaultEndpoint is the public checkVat SOAP endpoint of the European Commission.
const DefaultEndpoint = "https://ec.europa.eu/taxation_customs/vies/services/checkVatService"

// Client is the abstraction for VIES backends.
//
//go:generate mockgen -package mockvies -source=interface.go -destination=mock/mockvies.go *
type Client interface {
	// CheckVat performs exactly one checkVat call for the inquiry. Failures are
	// returned as *serrors.Error values whose message is fit for end users; a
	// SOAP Fault is reported with kind serrors.ErrFault.
	CheckVat(ctx context.Context, inquiry domain.VatInquiry) (*domain.CheckResult, error)
}
