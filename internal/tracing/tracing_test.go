package tracing

import (
	"context"
	"testing"

	"github.com/aaravmahajanofficial/ecommerce-cart-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func TestInit(t *testing.T) {
	t.Run("Success - Disabled", func(t *testing.T) {
		// Act
		shutdown, err := Init(context.Background(), "test", config.Tracing{Enabled: false})

		// Assert
		require.NoError(t, err)
		assert.NoError(t, shutdown(context.Background()))
		_, isSDK := otel.GetTracerProvider().(*sdktrace.TracerProvider)
		assert.False(t, isSDK)
	})

	t.Run("Success - Enabled", func(t *testing.T) {
		// Arrange
		previous := otel.GetTracerProvider()
		t.Cleanup(func() { otel.SetTracerProvider(previous) })

		cfg := config.Tracing{
			Enabled:      true,
			OTLPEndpoint: "localhost:4318",
			ServiceName:  "cart-test",
			SampleRatio:  0.5,
		}

		// Act
		shutdown, err := Init(context.Background(), "test", cfg)

		// Assert
		require.NoError(t, err)
		_, isSDK := otel.GetTracerProvider().(*sdktrace.TracerProvider)
		assert.True(t, isSDK)
		assert.NoError(t, shutdown(context.Background()))
	})
}
