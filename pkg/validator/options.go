package validator

import (
	"context"

	"github.com/glockbender/kvalidity/pkg/i18n"
)

// Option configures how violation messages are rendered.
type Option func(*renderOptions)

type renderOptions struct {
	ctx      context.Context
	locale   string
	resolver MessageResolver
}

// WithLocale renders messages in locale. It wins over a locale carried by WithContext.
func WithLocale(locale string) Option {
	return func(o *renderOptions) { o.locale = locale }
}

// WithResolver replaces DefaultResolver for this call.
func WithResolver(r MessageResolver) Option {
	return func(o *renderOptions) {
		if r != nil {
			o.resolver = r
		}
	}
}

// WithContext passes ctx to the resolver. A locale stored with i18n.SetLocale is used when
// WithLocale is not given.
func WithContext(ctx context.Context) Option {
	return func(o *renderOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

func newRenderOptions(opts []Option) renderOptions {
	o := renderOptions{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.locale == "" {
		if locale, ok := i18n.LocaleFromContext(o.ctx); ok {
			o.locale = locale
		} else {
			o.locale = DefaultLocale()
		}
	}
	if o.resolver == nil {
		o.resolver = DefaultResolver()
	}
	return o
}
