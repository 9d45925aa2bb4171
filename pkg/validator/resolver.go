package validator

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"github.com/davecgh/go-spew/spew"

	"github.com/glockbender/kvalidity/pkg/i18n"
	"github.com/glockbender/kvalidity/pkg/logger"
)

// MessageResolver renders the message of a constraint in a locale.
// It reports false when it has no message for the constraint.
type MessageResolver interface {
	Resolve(ctx context.Context, c Constraint, locale string) (string, bool)
}

// MessageResolverFunc adapts a function to MessageResolver.
type MessageResolverFunc func(ctx context.Context, c Constraint, locale string) (string, bool)

func (f MessageResolverFunc) Resolve(ctx context.Context, c Constraint, locale string) (string, bool) {
	return f(ctx, c, locale)
}

// TranslatorResolver resolves messages from an i18n.Translator. The message key of a
// constraint is the translation key and its params fill the template placeholders.
type TranslatorResolver struct {
	translator *i18n.Translator
	logMissing bool
	logger     *slog.Logger
}

// ResolverOption configures a TranslatorResolver.
type ResolverOption func(*TranslatorResolver)

// WithMissingMessageLogging logs a warning for every constraint without a message.
func WithMissingMessageLogging(enabled bool) ResolverOption {
	return func(r *TranslatorResolver) { r.logMissing = enabled }
}

// WithResolverLogger sets the logger used for missing-message warnings.
func WithResolverLogger(l *slog.Logger) ResolverOption {
	return func(r *TranslatorResolver) {
		if l != nil {
			r.logger = l
		}
	}
}

func NewTranslatorResolver(t *i18n.Translator, opts ...ResolverOption) *TranslatorResolver {
	r := &TranslatorResolver{translator: t, logger: pkgLogger()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve negotiates locale against the translator languages (exact tag, then closest
// variant, then the translator default) and renders the template. A key missing from the
// negotiated language is looked up in the default language as well.
func (r *TranslatorResolver) Resolve(ctx context.Context, c Constraint, locale string) (string, bool) {
	if c == nil || r.translator == nil {
		return "", false
	}

	def := r.translator.DefaultLanguage()
	lang := i18n.MatchLanguage(locale, r.translator.SupportedLanguages(), def)
	args := formatParams(c.Params())

	if msg, ok := r.translator.Lookup(lang, c.MessageKey(), args...); ok {
		return msg, true
	}
	if lang != def {
		if msg, ok := r.translator.Lookup(def, c.MessageKey(), args...); ok {
			return msg, true
		}
	}

	if r.logMissing {
		r.logger.WarnContext(ctx, "no message for constraint",
			logger.MessageKey(c.MessageKey()),
			slog.String("requested_locale", locale),
			slog.String("matched_locale", lang),
		)
	}
	return "", false
}

func formatParams(params []Param) []string {
	args := make([]string, 0, len(params)*2)
	for _, p := range params {
		args = append(args, p.Name, formatParam(p.Value))
	}
	return args
}

// formatParam renders a template argument. Slices and arrays are joined with ", ".
func formatParam(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case []byte:
		return string(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		parts := make([]string, rv.Len())
		for i := range parts {
			parts[i] = formatParam(rv.Index(i).Interface())
		}
		return strings.Join(parts, ", ")
	case reflect.Pointer:
		if rv.IsNil() {
			return "null"
		}
		return formatParam(rv.Elem().Interface())
	default:
		return fmt.Sprint(v)
	}
}

var spewConfig = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// fallbackMessage identifies the constraint and the rejected value when no message is available.
// Output is deterministic: map keys are sorted and pointer addresses omitted.
func fallbackMessage(v Violation) string {
	var b strings.Builder
	if v.Constraint == nil {
		b.WriteString("<nil constraint>")
	} else {
		b.WriteString(v.Constraint.MessageKey())
		if params := v.Constraint.Params(); len(params) > 0 {
			b.WriteByte('[')
			for i, p := range params {
				if i > 0 {
					b.WriteString(", ")
				}
				b.WriteString(p.Name)
				b.WriteByte('=')
				b.WriteString(spewConfig.Sprint(p.Value))
			}
			b.WriteByte(']')
		}
	}
	b.WriteString(": rejected value ")
	b.WriteString(spewConfig.Sprint(v.Value))
	return b.String()
}

// resolveMessage never fails: a missing message or a panicking resolver yields the fallback.
func resolveMessage(ctx context.Context, r MessageResolver, v Violation, locale string) (msg string) {
	defer func() {
		if rec := recover(); rec != nil {
			key := "<nil constraint>"
			if v.Constraint != nil {
				key = v.Constraint.MessageKey()
			}
			pkgLogger().WarnContext(ctx, "message resolution panicked",
				logger.MessageKey(key),
				logger.Panic(rec),
			)
			msg = fallbackMessage(v)
		}
	}()

	if r != nil && v.Constraint != nil {
		if m, ok := r.Resolve(ctx, v.Constraint, locale); ok {
			return m
		}
	}
	return fallbackMessage(v)
}

// Message renders the message of a single violation.
func Message(v Violation, opts ...Option) string {
	o := newRenderOptions(opts)
	return resolveMessage(o.ctx, o.resolver, v, o.locale)
}

var defaultResolver struct {
	once     sync.Once
	resolver MessageResolver
}

// DefaultResolver returns the process-wide resolver: the bundled English and Spanish messages
// merged with the files of VALIDATOR_MESSAGES_DIR when set. It is built on first use.
func DefaultResolver() MessageResolver {
	defaultResolver.once.Do(func() {
		defaultResolver.resolver = buildDefaultResolver(context.Background(), settings())
	})
	return defaultResolver.resolver
}

func buildDefaultResolver(ctx context.Context, cfg Config) MessageResolver {
	opts := []ResolverOption{WithMissingMessageLogging(cfg.LogMissingMessages)}

	if cfg.MessagesDir != "" {
		r, err := NewResolver(ctx, []i18n.TranslationAdapter{i18n.NewDirectoryAdapter(nil, cfg.MessagesDir)}, opts...)
		if err == nil {
			return r
		}
		pkgLogger().WarnContext(ctx, "ignoring message override directory",
			slog.String("dir", cfg.MessagesDir),
			logger.Error(err),
		)
	}

	r, err := NewResolver(ctx, nil, opts...)
	if err != nil {
		pkgLogger().ErrorContext(ctx, "bundled messages failed to load", logger.Error(err))
		return MessageResolverFunc(func(context.Context, Constraint, string) (string, bool) { return "", false })
	}
	return r
}

// NewResolver builds a TranslatorResolver over the bundled messages followed by overrides.
// Later adapters override keys of earlier ones.
func NewResolver(ctx context.Context, overrides []i18n.TranslationAdapter, opts ...ResolverOption) (*TranslatorResolver, error) {
	adapters := append([]i18n.TranslationAdapter{bundleAdapter()}, overrides...)
	translator, err := i18n.NewTranslator(ctx, i18n.NewMultiAdapter(adapters...),
		i18n.WithDefaultLanguage(i18n.DefaultLanguage),
		i18n.WithFallbackToKey(false),
		i18n.WithLogger(pkgLogger()),
	)
	if err != nil {
		return nil, err
	}
	return NewTranslatorResolver(translator, opts...), nil
}
