package domain

// VatInquiry is a normalized VAT number split into its country prefix and the
// national part. It only lives for the duration of one check.
type VatInquiry struct {
	// CountryCode is the two-letter prefix, e.g. "DE". It is not validated
	// against the list of member states; VIES decides.
	CountryCode string `json:"countryCode"`
	// VatNumber is everything after the country prefix.
	VatNumber string `json:"vatNumber"`
}

// String returns the inquiry in its compact form, e.g. "DE123456789".
func (v VatInquiry) String() string { return v.CountryCode + v.VatNumber }

// CheckResult is the outcome of one VAT check. Either the data fields are set
// and Error is empty, or Error is set and every other field holds its zero
// value. Name and Address may legitimately be empty on success.
type CheckResult struct {
	// RequestDate is the date VIES reports for the request, as sent by the service.
	RequestDate string `json:"requestDate"`
	// Valid reports whether VIES considers the number valid.
	Valid bool `json:"valid"`
	// Name of the registered trader, when disclosed.
	Name string `json:"name"`
	// Address of the registered trader, when disclosed.
	Address string `json:"address"`
	// Error is the human-readable failure, empty on success.
	Error string `json:"error"`
}

// ErrorResult returns a result carrying only the given error message.
func ErrorResult(msg string) CheckResult {
	return CheckResult{Error: msg}
}

// Failed reports whether the result is error-shaped.
func (r CheckResult) Failed() bool { return r.Error != "" }

// Row renders the result as the fixed-arity ordered row
// [requestDate, valid, name, address, error].
func (r CheckResult) Row() []any {
	return []any{r.RequestDate, r.Valid, r.Name, r.Address, r.Error}
}
