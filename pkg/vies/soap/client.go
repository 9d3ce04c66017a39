// Package soap provides a vies.Client implementation speaking SOAP 1.1 to the
// VIES checkVat service.
package soap

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"vatcheck/pkg/domain"
	"vatcheck/pkg/serrors"
	"vatcheck/pkg/vies"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "vatcheck/pkg/vies/soap"

// Client posts checkVat envelopes to a VIES endpoint. Each call makes exactly
// one HTTP attempt. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs the POST; its defaults apply
	endpoint   string       // endpoint is the checkVat service URL
}

// CheckVat sends one checkVat request for the inquiry and maps the answer.
//
// Errors, all *serrors.Error:
//   - ErrNetwork: no HTTP response ("Network error: <cause>")
//   - ErrUnavailable: status other than 200, body ignored
//   - ErrEmptyResponse: 200 with a blank body
//   - ErrMalformedResponse, ErrFault: see ParseResponse
//   - ErrInternal: the request could not be built
func (c *Client) CheckVat(ctx context.Context, inquiry domain.VatInquiry) (*domain.CheckResult, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "vies.checkVat",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("vies.country_code", inquiry.CountryCode)))
	defer span.End()

	res, err := c.checkVat(ctx, inquiry)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		return nil, err
	}
	span.SetAttributes(attribute.Bool("vies.valid", res.Valid))

	return res, nil
}

func (c *Client) checkVat(ctx context.Context, inquiry domain.VatInquiry) (*domain.CheckResult, error) {
	payload, err := BuildEnvelope(inquiry)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not build request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrInternal, err, "could not create request")
	}
	req.Header.Set("Content-Type", ContentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrNetwork, err, "Network error")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, serrors.With(serrors.ErrUnavailable, "HTTP error %d: Service unavailable", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrNetwork, err, "Network error")
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, serrors.With(serrors.ErrEmptyResponse, "Empty response from service")
	}

	return ParseResponse(b)
}

// Ensure Client conforms to the vies.Client interface at compile time.
var _ vies.Client = (*Client)(nil)

// New constructs a Client posting to endpoint with httpClient. A nil
// httpClient or empty endpoint fall back to a zero http.Client and
// vies.DefaultEndpoint.
func New(httpClient *http.Client, endpoint string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	if endpoint == "" {
		endpoint = vies.DefaultEndpoint
	}

	return &Client{
		httpClient: httpClient,
		endpoint:   endpoint,
	}
}
