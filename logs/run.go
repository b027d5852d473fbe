package logs

import (
	"context"

	"github.com/google/uuid"
)

type RunID string

type runIDKey struct{}

var RunIDKey runIDKey

func RunIDFrom(ctx context.Context) RunID {
	if v := ctx.Value(RunIDKey); v != nil {
		return v.(RunID)
	}
	return ""
}

// NewRun tags ctx with a fresh run id. Records logged with the returned context
// carry it as the "run" attribute.
type NewRun func(ctx context.Context) (context.Context, RunID)

func (Module) NewRun(
	logger Logger,
) NewRun {
	return func(ctx context.Context) (context.Context, RunID) {
		parent := RunIDFrom(ctx)
		id := RunID(uuid.NewString())
		ctx = context.WithValue(ctx, RunIDKey, id)
		var args []any
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.InfoContext(ctx, "new run", args...)
		return ctx, id
	}
}
