package main

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	require.Equal(t, log.DebugLevel, parseLevel("debug"))
	require.Equal(t, log.WarnLevel, parseLevel(" WARN "))
	require.Equal(t, log.InfoLevel, parseLevel(""))
	require.Equal(t, log.InfoLevel, parseLevel("loud"))
}

func TestSetupLogger_JSON(t *testing.T) {
	t.Cleanup(func() {
		log.SetFormatter(&log.TextFormatter{})
		log.SetLevel(log.InfoLevel)
	})

	setupLogger("json", "error")
	require.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)
	require.Equal(t, log.ErrorLevel, log.GetLevel())
}
