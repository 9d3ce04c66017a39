// Package checker runs the VAT check pipeline: normalize the input, ask VIES,
// map every outcome to a domain.CheckResult and pace consecutive calls.
package checker

import (
	"context"
	"vatcheck/pkg/domain"
)

// Checker validates VAT numbers. Check never fails: every problem, including a
// panic further down the pipeline, is reported in the result's Error field.
//
//go:generate mockgen -package mockchecker -source=interface.go -destination=mock/mockchecker.go *
type Checker interface {
	// Check validates one raw VAT number. raw is expected to be a string;
	// anything else yields an invalid-input result.
	Check(ctx context.Context, raw any) domain.CheckResult
	// Rows is Check rendered as a sequence holding exactly one row of
	// [requestDate, valid, name, address, error].
	Rows(ctx context.Context, raw any) [][]any
}
