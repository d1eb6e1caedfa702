package parser

import (
	"testing"

	"fjacquet/camt-report/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBaseParser(t *testing.T) {
	t.Run("with logger", func(t *testing.T) {
		logger := &logging.MockLogger{}
		base := NewBaseParser(logger)

		assert.Same(t, logger, base.GetLogger())
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		base := NewBaseParser(nil)

		require.NotNil(t, base.GetLogger())
	})
}

func TestBaseParser_SetLogger(t *testing.T) {
	first := &logging.MockLogger{}
	second := &logging.MockLogger{}
	base := NewBaseParser(first)

	base.SetLogger(second)
	assert.Same(t, second, base.GetLogger())

	base.SetLogger(nil)
	assert.Same(t, second, base.GetLogger(), "nil logger must be ignored")
}

func TestBaseParser_LoggerConfigurable(t *testing.T) {
	base := NewBaseParser(nil)
	var _ LoggerConfigurable = &base

	mock := &logging.MockLogger{}
	base.SetLogger(mock)
	base.GetLogger().Info("decoding", logging.Field{Key: logging.FieldFile, Value: "a.xml"})

	entries := mock.GetEntriesByLevel("INFO")
	require.Len(t, entries, 1)
	assert.Equal(t, "decoding", entries[0].Message)
}
