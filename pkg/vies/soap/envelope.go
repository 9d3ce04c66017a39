package soap

import (
	"encoding/xml"
	"fmt"
	"vatcheck/pkg/domain"
)

const (
	// EnvelopeNamespace is the SOAP 1.1 envelope namespace.
	EnvelopeNamespace = "http://schemas.xmlsoap.org/soap/envelope/"
	// TypesNamespace is the namespace of the checkVat request and response types.
	TypesNamespace = "urn:ec.europa.eu:taxud:vies:services:checkVat:types"
	// ContentType is sent with every request.
	ContentType = "text/xml; charset=utf-8"
)

// Element names carry their prefixes literally; the matching xmlns attributes
// are declared on the envelope.
type requestEnvelope struct {
	XMLName    xml.Name       `xml:"soapenv:Envelope"`
	EnvelopeNS string         `xml:"xmlns:soapenv,attr"`
	TypesNS    string         `xml:"xmlns:tns,attr"`
	Header     struct{}       `xml:"soapenv:Header"`
	Body       requestPayload `xml:"soapenv:Body"`
}

type requestPayload struct {
	CheckVat checkVatRequest `xml:"tns:checkVat"`
}

type checkVatRequest struct {
	CountryCode string `xml:"tns:countryCode"`
	VatNumber   string `xml:"tns:vatNumber"`
}

// BuildEnvelope renders the checkVat request for the inquiry. Values are
// escaped by the encoder, so any string yields a well-formed document.
func BuildEnvelope(inquiry domain.VatInquiry) ([]byte, error) {
	out, err := xml.Marshal(requestEnvelope{
		EnvelopeNS: EnvelopeNamespace,
		TypesNS:    TypesNamespace,
		Body: requestPayload{
			CheckVat: checkVatRequest{
				CountryCode: inquiry.CountryCode,
				VatNumber:   inquiry.VatNumber,
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("could not marshal envelope: %w", err)
	}

	return append([]byte(xml.Header), out...), nil
}
