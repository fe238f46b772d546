package reviewing

import (
	"errors"
	"fmt"
)

// NoReviewError is returned when no review has the requested ID.
type NoReviewError struct {
	ID int64
}

func (e *NoReviewError) Error() string {
	return fmt.Sprintf("review not found by id: %d", e.ID)
}

var (
	// ErrFileUnavailable is returned by operations that need an existing reviews file.
	ErrFileUnavailable = errors.New("reviews file unavailable")

	// ErrCancelled is returned when the user backs out of a change; nothing was written.
	ErrCancelled = errors.New("cancelled by user")
)
