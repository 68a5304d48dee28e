package helper

import (
	"context"

	errwrap "github.com/pkg/errors"
)

// CheckDeadline fails fast when the request context is already done.
func CheckDeadline(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return errwrap.Wrap(ctx.Err(), "context done")
	default:
		return nil
	}
}
