package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/gaqzi/park-reviewer/internal/platform/logging"
	"github.com/gaqzi/park-reviewer/internal/platform/validate"
	"github.com/gaqzi/park-reviewer/internal/reviewing"
	"github.com/gaqzi/park-reviewer/internal/reviewing/storage"
)

// inputError is an answer that couldn't be used, with the message to show for it.
type inputError struct {
	msg string
}

func (e *inputError) Error() string {
	return e.msg
}

const unexpectedMessage = "Something unexpected went wrong, please try again."

// report prints what went wrong in terms the user can act on. Failures the
// user can't fix from the menu are also logged with the technical error.
func (c *Console) report(ctx context.Context, err error) {
	msg := userMessage(err)

	var we *storage.WriteError
	if errors.As(err, &we) || msg == unexpectedMessage {
		logging.FromContext(ctx).Error("operation failed", "error", err)
	} else {
		logging.FromContext(ctx).Debug("operation stopped", "error", err)
	}

	c.printf("%s\n", msg)
}

func userMessage(err error) string {
	var (
		ie  *inputError
		ve  validator.ValidationErrors
		nre *reviewing.NoReviewError
		mre *storage.MalformedRecordError
		we  *storage.WriteError
	)

	switch {
	case errors.Is(err, reviewing.ErrCancelled):
		return "Cancelled, nothing was changed."
	case errors.As(err, &ie):
		return ie.msg
	case errors.As(err, &ve):
		return "The review was not saved:\n  - " + strings.Join(validate.Messages(err), "\n  - ")
	case errors.As(err, &nre):
		return fmt.Sprintf("No review found with ID %d.", nre.ID)
	case errors.As(err, &mre):
		return fmt.Sprintf("The reviews file couldn't be read (%s). Fix the file and try again.", mre)
	case errors.As(err, &we):
		return "The reviews couldn't be saved. The file was left as it was before."
	case errors.Is(err, reviewing.ErrFileUnavailable):
		return "There is no reviews file yet. Add a review to create one."
	default:
		return unexpectedMessage
	}
}
