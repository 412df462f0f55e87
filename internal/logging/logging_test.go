package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockLoggerCapturesEntries(t *testing.T) {
	mock := &MockLogger{}

	mock.Info("validation finished", Field{Key: FieldMessageType, Value: "pacs.008"})
	mock.Warn("field rejected", Field{Key: FieldCode, Value: 1005})

	require.Len(t, mock.Entries, 2)
	assert.True(t, mock.HasEntry("INFO", "validation finished"))
	assert.True(t, mock.HasEntry("WARN", "field rejected"))
	assert.False(t, mock.HasEntry("ERROR", "validation finished"))
}

func TestMockLoggerGetEntriesByLevel(t *testing.T) {
	mock := &MockLogger{}

	mock.Debug("first")
	mock.Debug("second")
	mock.Error("boom")

	assert.Len(t, mock.GetEntriesByLevel("DEBUG"), 2)
	assert.Len(t, mock.GetEntriesByLevel("ERROR"), 1)
	assert.Empty(t, mock.GetEntriesByLevel("WARN"))
}

func TestMockLoggerWithFieldsAndError(t *testing.T) {
	mock := &MockLogger{}
	cause := errors.New("disk full")

	derived := mock.WithError(cause).WithField(FieldFile, "payment.xml")
	derived.Error("write failed")

	derivedMock, ok := derived.(*MockLogger)
	require.True(t, ok)
	require.Len(t, derivedMock.Entries, 1)

	entry := derivedMock.Entries[0]
	assert.Equal(t, cause, entry.Error)
	require.Len(t, entry.Fields, 1)
	assert.Equal(t, FieldFile, entry.Fields[0].Key)
	assert.Equal(t, "payment.xml", entry.Fields[0].Value)
}

func TestLogrusAdapterWritesStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	underlying := logrus.New()
	underlying.SetOutput(&buf)
	underlying.SetFormatter(&logrus.JSONFormatter{})

	logger := NewLogrusAdapterFromLogger(underlying)
	logger.WithField(FieldMessageType, "camt.057").Info("detected message type")

	output := buf.String()
	assert.Contains(t, output, `"msg":"detected message type"`)
	assert.Contains(t, output, `"message_type":"camt.057"`)
}

func TestLogrusAdapterInvalidLevelFallsBack(t *testing.T) {
	logger := NewLogrusAdapter("not-a-level", "text")

	adapter, ok := logger.(*LogrusAdapter)
	require.True(t, ok)
	assert.Equal(t, logrus.InfoLevel, adapter.logger.GetLevel())
}

func TestSetAllLogLevels(t *testing.T) {
	first := GetLogger()
	second := GetLogger()

	SetAllLogLevels(logrus.DebugLevel)

	assert.Equal(t, logrus.DebugLevel, first.GetLevel())
	assert.Equal(t, logrus.DebugLevel, second.GetLevel())
}
