// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHandlerProdWritesJSON(t *testing.T) {
	var dev, prod bytes.Buffer
	log := slog.New(buildHandler(ModeProd, &dev, &prod))

	log.Debug("hidden")
	log.Info("schema created", "tables", 9)

	assert.Empty(t, dev.String())

	var line map[string]any
	require.NoError(t, json.Unmarshal(prod.Bytes(), &line))
	assert.Equal(t, "schema created", line["msg"])
	assert.EqualValues(t, 9, line["tables"])
}

func TestBuildHandlerDevIncludesDebug(t *testing.T) {
	var dev, prod bytes.Buffer
	log := slog.New(buildHandler(ModeDev, &dev, &prod))

	log.Debug("probe written")

	assert.Contains(t, dev.String(), "probe written")
	assert.Empty(t, prod.String())
}

func TestBuildHandlerSilent(t *testing.T) {
	h := buildHandler(ModeSilent, nil, nil)
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
}

func TestNewUnknownModeFallsBackToDev(t *testing.T) {
	var dev bytes.Buffer
	log := slog.New(buildHandler("verbose", &dev, nil))
	log.Debug("still logged")
	assert.Contains(t, dev.String(), "still logged")
}
