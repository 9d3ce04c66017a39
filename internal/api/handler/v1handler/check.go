package v1handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"vatcheck/pkg/domain"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/jx"
)

// maxBodyBytes bounds POST /check payloads.
const maxBodyBytes = 64 << 10

// EncodeCheckResult writes res as a JSON object with all five fields present.
func EncodeCheckResult(e *jx.Encoder, res domain.CheckResult) {
	e.ObjStart()
	e.FieldStart("requestDate")
	e.Str(res.RequestDate)
	e.FieldStart("valid")
	e.Bool(res.Valid)
	e.FieldStart("name")
	e.Str(res.Name)
	e.FieldStart("address")
	e.Str(res.Address)
	e.FieldStart("error")
	e.Str(res.Error)
	e.ObjEnd()
}

// DecodeCheckRequest reads {"vatNumber": ...}. A missing or null vatNumber
// yields nil; any other non-string JSON value is returned as jx.Raw so the
// checker can reject it as invalid input.
func DecodeCheckRequest(b []byte) (any, error) {
	var raw any
	err := jx.DecodeBytes(b).Obj(func(d *jx.Decoder, key string) error {
		if key != "vatNumber" {
			return d.Skip() //nolint: wrapcheck
		}

		switch d.Next() {
		case jx.String:
			s, err := d.Str()
			raw = s

			return err //nolint: wrapcheck
		case jx.Null:
			raw = nil

			return d.Null() //nolint: wrapcheck
		default:
			v, err := d.Raw()
			raw = v

			return err //nolint: wrapcheck
		}
	})
	if err != nil {
		return nil, fmt.Errorf("could not decode request: %w", err)
	}

	return raw, nil
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, raw any) {
	var e jx.Encoder
	EncodeCheckResult(&e, h.deps.Checker.Check(r.Context(), raw))

	// check failures are data, not HTTP errors
	writeJSON(r.Context(), w, http.StatusOK, &e)
}

// GetCheck checks the VAT number given as path segment.
func (h *Handler) GetCheck(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, chi.URLParam(r, "vat"))
}

// GetCheckQuery checks the VAT number given as the vat query parameter. A
// missing parameter is reported as missing input.
func (h *Handler) GetCheckQuery(w http.ResponseWriter, r *http.Request) {
	var raw any
	if q := r.URL.Query(); q.Has("vat") {
		raw = q.Get("vat")
	}

	h.respond(w, r, raw)
}

// PostCheck checks the vatNumber member of a JSON body.
func (h *Handler) PostCheck(w http.ResponseWriter, r *http.Request) {
	b, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(r.Context(), w, http.StatusRequestEntityTooLarge, "request body too large")

			return
		}
		writeError(r.Context(), w, http.StatusBadRequest, "could not read request body")

		return
	}

	raw, err := DecodeCheckRequest(b)
	if err != nil {
		writeError(r.Context(), w, http.StatusBadRequest, err.Error())

		return
	}

	h.respond(w, r, raw)
}
