package tracing

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

// installRecorder swaps in a tracer provider backed by an in-memory
// span recorder for the duration of the test.
func installRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	otel.SetTracerProvider(tp)
	tracer = tp.Tracer("weatherapp")
	t.Cleanup(func() {
		otel.SetTracerProvider(sdktrace.NewTracerProvider())
		tracer = otel.Tracer("weatherapp")
	})
	return recorder
}

func TestMiddleware_CreatesServerSpan(t *testing.T) {
	recorder := installRecorder(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/weatherforecast", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /weatherforecast", spans[0].Name())
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())
}

func TestMiddleware_SetsTraceIDHeader(t *testing.T) {
	installRecorder(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/weatherforecast", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.NotEmpty(t, rr.Header().Get("X-Trace-Id"))
}

func TestMiddleware_RecordsStatusCode(t *testing.T) {
	recorder := installRecorder(t)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	req := httptest.NewRequest(http.MethodGet, "/weatherforecast", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	attrs := spans[0].Attributes()
	var gotStatus int64
	var gotError bool
	for _, attr := range attrs {
		switch string(attr.Key) {
		case "http.status_code":
			gotStatus = attr.Value.AsInt64()
		case "error":
			gotError = attr.Value.AsBool()
		}
	}
	assert.Equal(t, int64(http.StatusInternalServerError), gotStatus)
	assert.True(t, gotError, "5xx responses mark the span as error")
}

func TestNewProvider_SampleRatioValidation(t *testing.T) {
	t.Setenv("TRACE_SAMPLE_RATIO", "1.5")

	_, err := NewProvider()
	assert.Error(t, err)
}

func TestNewProvider_Defaults(t *testing.T) {
	t.Setenv("TRACE_SAMPLE_RATIO", "")

	tp, err := NewProvider()
	require.NoError(t, err)
	t.Cleanup(func() {
		otel.SetTracerProvider(sdktrace.NewTracerProvider())
	})
	assert.NotNil(t, tp)
}
