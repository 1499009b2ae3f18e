package request

import (
	"github.com/google/uuid"

	"github.com/kbukum/pkgbridge/errors"
	"github.com/kbukum/pkgbridge/logger"
)

// Context is the caller-supplied capability object for one logical
// operation. Providers call back into it for user-facing output and for
// interactive decisions.
type Context interface {
	// Message emits an informational message formatted with fmt substitution.
	Message(format string, args ...any)
	// Verbose emits a diagnostic message.
	Verbose(format string, args ...any)
	// Warning emits a warning message.
	Warning(format string, args ...any)
	// ShouldContinueWithUntrustedPackageSource asks whether an install may
	// proceed even though the package's source is not trusted. The
	// predicate itself may fail, e.g. when no interactive channel exists.
	ShouldContinueWithUntrustedPackageSource(pkg, source string) (bool, error)
}

// TrustPrompt answers the untrusted-source question for a request.
type TrustPrompt func(pkg, source string) (bool, error)

// hostContext is the standard logger-backed Context implementation.
type hostContext struct {
	log           *logger.Logger
	correlationID string
	trust         TrustPrompt
}

// Option configures a Context built by New.
type Option func(*hostContext)

// WithLogger sets the logger messages are written to.
func WithLogger(l *logger.Logger) Option {
	return func(c *hostContext) { c.log = l }
}

// WithTrustPrompt sets the predicate answering the untrusted-source question.
func WithTrustPrompt(fn TrustPrompt) Option {
	return func(c *hostContext) { c.trust = fn }
}

// New creates a logger-backed request context. Every message carries a
// fresh correlation id so one logical operation can be traced across the
// host and the provider.
func New(opts ...Option) Context {
	c := &hostContext{
		correlationID: uuid.NewString(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Get("request")
	}
	c.log = c.log.WithFields(map[string]interface{}{
		logger.FieldCorrelationID: c.correlationID,
	})
	return c
}

// Default returns the context used when a caller supplies none. It logs
// through the host logger and declines every trust question with a
// NOT_INTERACTIVE error, so a defaulted context can never silently wave
// an untrusted install through.
func Default() Context {
	return New(WithTrustPrompt(func(pkg, source string) (bool, error) {
		return false, errors.NotInteractive("untrusted package source")
	}))
}

func (c *hostContext) Message(format string, args ...any) {
	c.log.Info(sprintf(format, args...))
}

func (c *hostContext) Verbose(format string, args ...any) {
	c.log.Debug(sprintf(format, args...))
}

func (c *hostContext) Warning(format string, args ...any) {
	c.log.Warn(sprintf(format, args...))
}

func (c *hostContext) ShouldContinueWithUntrustedPackageSource(pkg, source string) (bool, error) {
	if c.trust == nil {
		return false, errors.NotInteractive("untrusted package source")
	}
	return c.trust(pkg, source)
}
