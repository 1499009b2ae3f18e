package adapter

import (
	"context"
	"strings"

	"github.com/kbukum/pkgbridge/errors"
	"github.com/kbukum/pkgbridge/request"
	"github.com/kbukum/pkgbridge/stream"
)

// ExecuteElevatedAction runs a provider-declared privileged action to
// completion, blocking the caller until it finishes. The payload is an
// opaque string interpreted only by the provider. No intermediate results
// are exposed and no retry is attempted: one call, one outcome.
func (f *Facade) ExecuteElevatedAction(ctx context.Context, req request.Context, payload string) error {
	req = f.defaultRequest(req)
	if strings.TrimSpace(payload) == "" {
		return errors.MissingArgument("payload")
	}

	return stream.Await(ctx, func(ctx context.Context) error {
		ctx, done, _ := f.observe(ctx, "execute_elevated_action")
		err := f.p.ExecuteElevatedAction(ctx, req, payload)
		done(err)
		return err
	})
}
