package checker_test

import (
	"context"
	"errors"
	"testing"
	"vatcheck/internal/checker"
	"vatcheck/pkg/domain"
	"vatcheck/pkg/logger"
	"vatcheck/pkg/serrors"
	"vatcheck/pkg/vies/soap"

	mockvies "vatcheck/pkg/vies/mock"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

// countingPacer records how often the checker paused.
type countingPacer struct{ waits int }

func (p *countingPacer) Wait(context.Context) { p.waits++ }

var inquiry = domain.VatInquiry{CountryCode: "DE", VatNumber: "123456789"} //nolint: gochecknoglobals

func newTestChecker(t *testing.T) (*mockvies.MockClient, *countingPacer, checker.Checker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	client := mockvies.NewMockClient(ctrl)
	pacer := &countingPacer{}
	c, err := checker.New(client, checker.Options{Pacer: pacer})
	require.NoError(t, err)

	return client, pacer, c
}

func TestChecker_Check_Success(t *testing.T) {
	client, pacer, c := newTestChecker(t)

	client.EXPECT().CheckVat(gomock.Any(), inquiry).Return(&domain.CheckResult{
		RequestDate: "2024-05-01+02:00",
		Valid:       true,
		Name:        "ACME GMBH",
		Address:     "MAIN STREET 1",
	}, nil)

	rows := c.Rows(context.Background(), "de 123 456 789")
	require.Equal(t, [][]any{{"2024-05-01+02:00", true, "ACME GMBH", "MAIN STREET 1", ""}}, rows)
	require.Equal(t, 1, pacer.waits)
}

func TestChecker_Check_InputErrorsSkipClientAndPacer(t *testing.T) {
	_, pacer, c := newTestChecker(t)

	cases := map[string]any{
		"Invalid VAT number: too short":          "",
		"Invalid input: VAT number is required": nil,
	}
	for msg, in := range cases {
		require.Equal(t, []any{"", false, "", "", msg}, c.Check(context.Background(), in).Row())
	}
	require.Equal(t, [][]any{{"", false, "", "", "Invalid VAT number: too short"}}, c.Rows(context.Background(), " x "))
	require.Equal(t, [][]any{{"", false, "", "", "Invalid input: VAT number is required"}}, c.Rows(context.Background(), 42))
	require.Equal(t, 0, pacer.waits)
}

func TestChecker_Check_EarlyExitErrorsSkipPacer(t *testing.T) {
	errs := []error{
		serrors.Wrap(serrors.ErrNetwork, errors.New("connection refused"), "Network error"),
		serrors.With(serrors.ErrUnavailable, "HTTP error 500: Service unavailable"),
		serrors.With(serrors.ErrEmptyResponse, "Empty response from service"),
		serrors.With(serrors.ErrMalformedResponse, "Invalid XML response: no body element found"),
	}

	for _, clientErr := range errs {
		client, pacer, c := newTestChecker(t)
		client.EXPECT().CheckVat(gomock.Any(), inquiry).Return(nil, clientErr)

		res := c.Check(context.Background(), "DE123456789")
		require.Equal(t, domain.ErrorResult(clientErr.Error()), res)
		require.Equal(t, 0, pacer.waits, clientErr.Error())
	}
}

func TestChecker_Check_FaultIsPaced(t *testing.T) {
	client, pacer, c := newTestChecker(t)
	client.EXPECT().CheckVat(gomock.Any(), inquiry).
		Return(nil, serrors.Wrap(serrors.ErrFault, &soap.Fault{Message: "INVALID_INPUT"}, ""))

	rows := c.Rows(context.Background(), "DE123456789")
	require.Equal(t, [][]any{{"", false, "", "", "INVALID_INPUT"}}, rows)
	require.Equal(t, 1, pacer.waits)
}

func TestChecker_Check_UnexpectedErrors(t *testing.T) {
	client, pacer, c := newTestChecker(t)

	client.EXPECT().CheckVat(gomock.Any(), inquiry).Return(nil, errors.New("boom"))
	require.Equal(t, domain.ErrorResult("Unexpected error: boom"), c.Check(context.Background(), "DE123456789"))

	client.EXPECT().CheckVat(gomock.Any(), inquiry).
		Return(nil, serrors.Wrap(serrors.ErrInternal, errors.New("bad url"), "could not create request"))
	require.Equal(t,
		domain.ErrorResult("Unexpected error: could not create request: bad url"),
		c.Check(context.Background(), "DE123456789"))

	client.EXPECT().CheckVat(gomock.Any(), inquiry).Return(nil, nil)
	require.Equal(t,
		domain.ErrorResult("Unexpected error: empty result from client"),
		c.Check(context.Background(), "DE123456789"))

	require.Equal(t, 0, pacer.waits)
}

func TestChecker_Check_RecoversPanic(t *testing.T) {
	client, pacer, c := newTestChecker(t)
	client.EXPECT().CheckVat(gomock.Any(), inquiry).DoAndReturn(
		func(context.Context, domain.VatInquiry) (*domain.CheckResult, error) {
			panic("nil map write")
		})

	var res domain.CheckResult
	require.NotPanics(t, func() {
		res = c.Check(context.Background(), "DE123456789")
	})
	require.Equal(t, domain.ErrorResult("Unexpected error: nil map write"), res)
	require.Equal(t, 0, pacer.waits)
}

func TestChecker_Check_Idempotent(t *testing.T) {
	client, _, c := newTestChecker(t)
	answer := domain.CheckResult{RequestDate: "2024-05-01", Valid: true, Name: "---", Address: "---"}
	client.EXPECT().CheckVat(gomock.Any(), inquiry).DoAndReturn(
		func(context.Context, domain.VatInquiry) (*domain.CheckResult, error) {
			res := answer

			return &res, nil
		}).Times(2)

	first := c.Rows(context.Background(), "DE123456789")
	second := c.Rows(context.Background(), "DE123456789")
	require.Equal(t, first, second)
}

func TestChecker_Check_RecordsOutcome(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	ctrl := gomock.NewController(t)
	client := mockvies.NewMockClient(ctrl)
	c, err := checker.New(client, checker.Options{Meter: mp.Meter("test")})
	require.NoError(t, err)

	client.EXPECT().CheckVat(gomock.Any(), inquiry).Return(&domain.CheckResult{Valid: true}, nil)
	c.Check(context.Background(), "DE123456789")
	c.Check(context.Background(), "x")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	outcomes := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "vatcheck.checks" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				v, _ := dp.Attributes.Value("outcome")
				outcomes[v.AsString()] += dp.Value
			}
		}
	}
	require.Equal(t, map[string]int64{"ok": 1, "BAD_REQUEST": 1}, outcomes)
}
