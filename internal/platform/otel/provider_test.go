package otel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sparsecalc/internal/platform/otel"
)

func TestSettingsActive(t *testing.T) {
	require.False(t, otel.Settings{Enabled: true}.Active())
	require.False(t, otel.Settings{Endpoint: "http://localhost:4318"}.Active())
	require.True(t, otel.Settings{Endpoint: "http://localhost:4318", Enabled: true}.Active())
}

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		enabled  string
		wantErr  bool
	}{
		{name: "no endpoint"},
		{name: "disabled", endpoint: "http://localhost:4318", enabled: "false"},
		// Non-routable address; nothing is recorded so nothing is exported.
		{name: "exporting", endpoint: "http://192.0.2.1:4318"},
		{name: "bad flag", endpoint: "http://localhost:4318", enabled: "sometimes", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(otel.EnvEndpoint, tc.endpoint)
			t.Setenv(otel.EnvEnabled, tc.enabled)

			shutdown, err := otel.Setup(context.Background(), "sparsecalc-test")
			require.NotNil(t, shutdown)
			if tc.wantErr {
				require.ErrorContains(t, err, "parse env")
				return
			}
			require.NoError(t, err)
			require.NoError(t, shutdown(context.Background()))
		})
	}
}
