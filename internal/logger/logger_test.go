package logger_test

import (
	"testing"

	"github.com/nais/person-gateway/internal/config"
	"github.com/nais/person-gateway/internal/logger"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("invalid format", func(t *testing.T) {
		_, err := logger.New(config.Logger{Format: "xml", Level: "info"})
		assert.EqualError(t, err, `invalid log format: "xml"`)
	})

	t.Run("invalid level", func(t *testing.T) {
		_, err := logger.New(config.Logger{Format: "json", Level: "loud"})
		assert.Error(t, err)
	})

	t.Run("text format with debug level", func(t *testing.T) {
		log, err := logger.New(config.Logger{Format: "TEXT", Level: "debug"})
		assert.NoError(t, err)
		assert.Equal(t, logrus.DebugLevel, log.GetLevel())
		assert.IsType(t, &logrus.TextFormatter{}, log.Formatter)
	})
}

func TestNeo4jLogger(t *testing.T) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	driverLog := logger.NewNeo4jLogger(log)

	t.Run("error", func(t *testing.T) {
		defer hook.Reset()

		driverLog.Error("pool", "p1", assert.AnError)
		assert.Len(t, hook.Entries, 1)
		assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
		assert.Equal(t, "pool", hook.LastEntry().Data["driver_component"])
		assert.Equal(t, "p1", hook.LastEntry().Data["driver_id"])
		assert.Equal(t, assert.AnError, hook.LastEntry().Data[logrus.ErrorKey])
	})

	t.Run("formatted levels", func(t *testing.T) {
		defer hook.Reset()

		driverLog.Warnf("router", "r1", "retrying %d", 2)
		driverLog.Infof("router", "r1", "connected")
		driverLog.Debugf("bolt", "b1", "sent %s", "HELLO")
		assert.Len(t, hook.Entries, 3)
		assert.Equal(t, logrus.WarnLevel, hook.Entries[0].Level)
		assert.Equal(t, "retrying 2", hook.Entries[0].Message)
		assert.Equal(t, logrus.InfoLevel, hook.Entries[1].Level)
		assert.Equal(t, "sent HELLO", hook.Entries[2].Message)
	})
}
