package reviewing

import (
	"context"
	"fmt"

	"github.com/gaqzi/park-reviewer/internal/platform/action"
	"github.com/gaqzi/park-reviewer/internal/platform/validate"
)

// saveAction checks a review right before it's written.
type saveAction = func(ctx context.Context, r Review) (Review, error)

// reviewServiceActions provides the hooks Service runs before it writes.
// Keeping the rules here keeps Service to loading, changing and saving.
func reviewServiceActions() *action.Mapper {
	m := &action.Mapper{}

	m.Add("Save", func(ctx context.Context, r Review) (Review, error) {
		if err := validate.Struct(ctx, r); err != nil {
			return r, fmt.Errorf("failed to validate review: %w", err)
		}

		return r, nil
	})

	return m
}
