package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJSONComponent(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	t.Cleanup(func() { Init(Config{}) })

	logger := Component("convert")
	logger.Debug().Str("palette", "brand").Msg("converting palette")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "convert", line["component"])
	assert.Equal(t, "brand", line["palette"])
	assert.Equal(t, "debug", line["level"])
}

func TestInitUnknownLevelDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	logger := Init(Config{Level: "chatty", Format: "json", Output: &buf})
	t.Cleanup(func() { Init(Config{}) })

	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())
}
