package compare

import (
	"context"

	"github.com/poiesic/retort/core"
)

// Func scores the similarity of two statements.
// Implementations must return a value in [0, 1] and must be safe for
// concurrent use. The context is for comparators that reach external
// services; pure comparators ignore it.
type Func func(ctx context.Context, a, b *core.Statement) (float64, error)
