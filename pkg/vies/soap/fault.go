package soap

// defaultFaultString is reported when a Fault carries no usable faultstring.
const defaultFaultString = "SOAP Fault received"

// Fault is a SOAP 1.1 Fault returned by VIES, e.g. faultstring
// "INVALID_INPUT" or "MS_UNAVAILABLE".
type Fault struct {
	// Code is the faultcode element text, e.g. "soap:Server".
	Code string
	// Message is the faultstring element text.
	Message string
}

// Error returns the faultstring, or a generic message when it is missing.
func (f *Fault) Error() string {
	if f.Message == "" {
		return defaultFaultString
	}

	return f.Message
}
