package tracing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInitTracer(t *testing.T) {
	// exporter惰性连接，没有Collector也能初始化成功
	shutdown, err := InitTracer("test-service", "")
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	assert.NotNil(t, otel.Tracer("test"))
	assert.NoError(t, shutdown(context.Background()))
}

func newRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	shutdown, err := InitWithProcessor("test-service", sr)
	require.NoError(t, err)
	t.Cleanup(func() { _ = shutdown(context.Background()) })
	return sr
}

func TestStartSpan(t *testing.T) {
	sr := newRecorder(t)

	t.Run("根Span与子Span共享TraceID", func(t *testing.T) {
		ctx, root := StartSpan(context.Background(), "test-service", "Root")
		_, child := StartSpan(ctx, "test-service", "Child")

		assert.True(t, root.SpanContext().IsValid())
		assert.Equal(t, root.SpanContext().TraceID(), child.SpanContext().TraceID())
		assert.NotEqual(t, root.SpanContext().SpanID(), child.SpanContext().SpanID())

		child.End()
		root.End()

		ended := sr.Ended()
		require.Len(t, ended, 2)
		assert.Equal(t, "Child", ended[0].Name())
		assert.Equal(t, root.SpanContext().SpanID(), ended[0].Parent().SpanID())
	})
}

func TestRecordError(t *testing.T) {
	sr := newRecorder(t)

	_, span := StartSpan(context.Background(), "test-service", "Failing")
	RecordError(span, nil)
	RecordError(span, errors.New("库存不足"))
	span.End()

	ended := sr.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Equal(t, "库存不足", ended[0].Status().Description)
	assert.Len(t, ended[0].Events(), 1)
}

func TestExtractIDs(t *testing.T) {
	newRecorder(t)

	assert.Empty(t, ExtractTraceID(context.Background()))
	assert.Empty(t, ExtractSpanID(context.Background()))

	ctx, span := StartSpan(context.Background(), "test-service", "Op")
	defer span.End()

	assert.Equal(t, span.SpanContext().TraceID().String(), ExtractTraceID(ctx))
	assert.Len(t, ExtractTraceID(ctx), 32)
	assert.Len(t, ExtractSpanID(ctx), 16)
}
