package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glockbender/kvalidity/pkg/logger"
)

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("g", slog.String("a", "b"))
	assert.Equal(t, "g", attr.Key)
	assert.Equal(t, slog.KindGroup, attr.Value.Kind())
	assert.Len(t, attr.Value.Group(), 1)
}

func TestError(t *testing.T) {
	t.Parallel()
	assert.Equal(t, slog.Attr{}, logger.Error(nil))

	attr := logger.Error(errors.New("boom"))
	assert.Equal(t, "error", attr.Key)
}

func TestLocale(t *testing.T) {
	t.Parallel()
	assert.Equal(t, slog.Attr{}, logger.Locale(""))
	assert.Equal(t, slog.String("locale", "es"), logger.Locale("es"))
}

func TestSimpleAttrs(t *testing.T) {
	t.Parallel()
	assert.Equal(t, slog.String("component", "validator"), logger.Component("validator"))
	assert.Equal(t, slog.String("message_key", "validation.null"), logger.MessageKey("validation.null"))
	assert.Equal(t, "panic", logger.Panic("oops").Key)
}
