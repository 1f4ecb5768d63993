package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/linemk/product-lookup/internal/lib/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger_Levels(t *testing.T) {
	cases := []struct {
		env   string
		debug bool
	}{
		{env: logger.EnvLocal, debug: true},
		{env: logger.EnvDev, debug: true},
		{env: logger.EnvProd, debug: false},
		{env: "development", debug: false},
	}

	for _, tc := range cases {
		t.Run(tc.env, func(t *testing.T) {
			log := logger.SetupLogger(tc.env, &bytes.Buffer{})
			assert.Equal(t, tc.debug, log.Enabled(context.Background(), slog.LevelDebug))
			assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
		})
	}
}

func TestSetupLogger_ProdWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := logger.SetupLogger(logger.EnvProd, &buf)

	log.Info("products found", slog.Int("found", 3))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "products found", record["msg"])
	assert.Equal(t, float64(3), record["found"])
}
