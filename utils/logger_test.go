package utils

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureLogger(t *testing.T) {
	InitLogger()
	t.Cleanup(InitLogger)

	ConfigureLogger("debug", true)
	assert.Equal(t, logrus.DebugLevel, InfoLogger.GetLevel())

	var buf bytes.Buffer
	InfoLogger.SetOutput(&buf)
	InfoLogger.WithField("order_id", 7).Info("Order created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Order created", entry["msg"])
	assert.EqualValues(t, 7, entry["order_id"])
}

func TestConfigureLoggerUnknownLevel(t *testing.T) {
	InitLogger()
	t.Cleanup(InitLogger)

	ConfigureLogger("chatty", false)
	assert.Equal(t, logrus.InfoLevel, InfoLogger.GetLevel())
}
