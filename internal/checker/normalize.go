package checker

import (
	"strings"
	"vatcheck/pkg/domain"
	"vatcheck/pkg/serrors"
)

const (
	countryCodeLen = 2
	minVatLen      = countryCodeLen + 1
)

// Normalize turns raw user input into a VatInquiry.
//
// The input must be a string. It is uppercased and every character outside
// [A-Z0-9] is dropped; the first two remaining characters form the country
// code and the rest the national number. Anything shorter than three
// characters after normalization is rejected. Whether the country code
// belongs to a member state is left to VIES.
func Normalize(raw any) (domain.VatInquiry, error) {
	s, ok := raw.(string)
	if !ok {
		return domain.VatInquiry{}, serrors.With(serrors.ErrBadRequest, "Invalid input: VAT number is required")
	}

	var b strings.Builder
	for _, r := range strings.ToUpper(s) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	normalized := b.String()

	if len(normalized) < minVatLen {
		return domain.VatInquiry{}, serrors.With(serrors.ErrBadRequest, "Invalid VAT number: too short")
	}

	return domain.VatInquiry{
		CountryCode: normalized[:countryCodeLen],
		VatNumber:   normalized[countryCodeLen:],
	}, nil
}
