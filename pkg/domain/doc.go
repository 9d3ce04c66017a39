// Package domain contains the value types shared across the VAT checker:
// the normalized inquiry sent to VIES and the fixed-shape result returned to
// callers. They carry no transport or presentation concerns.
package domain
