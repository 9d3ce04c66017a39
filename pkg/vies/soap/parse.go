package soap

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"strings"
	"vatcheck/pkg/domain"
	"vatcheck/pkg/serrors"

	"golang.org/x/net/html/charset"
)

// element is a minimal XML tree node: resolved name, direct character data
// and element children in document order.
type element struct {
	name     xml.Name
	text     []byte
	children []*element
}

// is reports whether the element's local name equals local, ignoring case and
// any namespace prefix.
func (e *element) is(local string) bool {
	return strings.EqualFold(e.name.Local, local)
}

// child returns the first direct child whose local name matches local,
// ignoring case.
func (e *element) child(local string) *element {
	for _, c := range e.children {
		if c.is(local) {
			return c
		}
	}

	return nil
}

// readTree decodes the whole document and returns its root element, or nil
// when the document has no element at all.
func readTree(body []byte) (*element, error) {
	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.CharsetReader = charset.NewReaderLabel

	var (
		root  *element
		stack []*element
	)
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return root, nil
		}
		if err != nil {
			return nil, err //nolint: wrapcheck
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &element{name: t.Name}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.children = append(parent.children, el)
			} else if root == nil {
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.text = append(top.text, t...)
			}
		}
	}
}

// ParseResponse maps a checkVat response document to a result.
//
// The Body is looked up among the root's children by local name regardless of
// prefix and case. A Fault as first Body child is returned as an error of kind
// serrors.ErrFault wrapping a *Fault; any other first child is read as the
// checkVatResponse payload. Structural problems are reported with kind
// serrors.ErrMalformedResponse.
func ParseResponse(body []byte) (*domain.CheckResult, error) {
	root, err := readTree(body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrMalformedResponse, err, "XML parsing error")
	}
	if root == nil {
		return nil, serrors.With(serrors.ErrMalformedResponse, "Invalid XML response: no root element")
	}

	soapBody := root.child("body")
	if soapBody == nil {
		return nil, serrors.With(serrors.ErrMalformedResponse, "Invalid XML response: no body element found")
	}
	if len(soapBody.children) == 0 {
		return nil, serrors.With(serrors.ErrMalformedResponse, "Invalid XML response: empty body element")
	}

	payload := soapBody.children[0]
	if payload.is("fault") {
		return nil, serrors.Wrap(serrors.ErrFault, parseFault(payload), "")
	}

	return parseCheckVatResponse(payload), nil
}

func parseFault(el *element) *Fault {
	f := &Fault{}
	if code := el.child("faultcode"); code != nil {
		f.Code = string(code.text)
	}
	if msg := el.child("faultstring"); msg != nil {
		f.Message = string(msg.text)
	}

	return f
}

// parseCheckVatResponse matches field names exactly, as declared by the
// checkVat types schema.
func parseCheckVatResponse(el *element) *domain.CheckResult {
	res := &domain.CheckResult{}
	for _, c := range el.children {
		switch c.name.Local {
		case "requestDate":
			res.RequestDate = string(c.text)
		case "valid":
			res.Valid = parseBool(string(c.text))
		case "name":
			res.Name = string(c.text)
		case "address":
			res.Address = string(c.text)
		}
	}

	return res
}

// parseBool accepts the xsd:boolean true literals; everything else is false.
func parseBool(s string) bool {
	s = strings.TrimSpace(s)

	return strings.EqualFold(s, "true") || s == "1"
}
