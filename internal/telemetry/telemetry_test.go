package telemetry

import (
	"context"
	"errors"
	"testing"

	"connectrpc.com/connect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestSetupNoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := Setup(context.Background(), "test-service", "")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetupCreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address so no actual export happens.
	shutdown, err := Setup(context.Background(), "test-service", "http://192.0.2.1:4318")
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestInterceptorRecordsSpans(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	interceptor := InterceptorWithProvider(tp)

	var sawSpan bool
	ok := interceptor(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		sawSpan = trace.SpanContextFromContext(ctx).IsValid()
		return nil, nil
	})
	fail := interceptor(func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
		return nil, connect.NewError(connect.CodePermissionDenied, errors.New("not a member"))
	})

	req := connect.NewRequest(&struct{}{})
	_, err := ok(context.Background(), req)
	require.NoError(t, err)
	_, err = fail(context.Background(), req)
	require.Error(t, err)

	assert.True(t, sawSpan)
	spans := recorder.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, "permission_denied", spans[1].Status().Description)
}
