// Package console is the interactive menu for managing the reviews file.
// Every choice runs one operation from start to finish: it asks for what it
// needs, calls the reviewing service, and prints the outcome.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gaqzi/park-reviewer/internal/platform/validate"
	"github.com/gaqzi/park-reviewer/internal/reviewing"
	"github.com/gaqzi/park-reviewer/internal/reviewing/table"
)

type reviewService interface {
	All(ctx context.Context, key reviewing.SortKey) (reviewing.Reviews, error)
	Add(ctx context.Context, review reviewing.Review) (reviewing.Review, error)
	Delete(ctx context.Context, reviewID int64, confirm reviewing.ConfirmFunc) (reviewing.Review, error)
	Edit(ctx context.Context, reviewID int64, edit reviewing.EditFunc) (reviewing.Review, error)
}

type Console struct {
	service   reviewService
	in        *bufio.Reader
	out       io.Writer
	textWidth int
}

type Option func(c *Console)

// WithTextWidth sets how wide the review text column is drawn before wrapping.
func WithTextWidth(width int) Option {
	return func(c *Console) {
		if width > 0 {
			c.textWidth = width
		}
	}
}

func New(service reviewService, in io.Reader, out io.Writer, opts ...Option) *Console {
	c := &Console{
		service:   service,
		in:        bufio.NewReader(in),
		out:       out,
		textWidth: table.DefaultTextWidth,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

var menu = []string{"1 Display Reviews", "2 Add Review", "3 Delete Review", "4 Edit Review", "5 Exit"}

// Run shows the menu until the user picks exit or the input ends.
// Errors from an operation are reported and the menu is shown again.
func (c *Console) Run(ctx context.Context) error {
	c.printf("****** Welcome to our Disneyland Reviewing System! ******\n\n")

	for {
		c.printf("Please choose one option to continue by entering a number:\n\n%s\n\n", strings.Join(menu, "\n"))

		choice, err := c.readLine("Option: ")
		if err != nil {
			return c.stop(err)
		}

		var opErr error
		switch choice {
		case "1":
			opErr = c.View(ctx)
		case "2":
			opErr = c.Add(ctx)
		case "3":
			opErr = c.Delete(ctx)
		case "4":
			opErr = c.Edit(ctx)
		case "5":
			c.printf("Goodbye!\n")
			return nil
		default:
			c.printf("%q is not an option, please enter a number from 1 to 5.\n\n", choice)
			continue
		}

		if errors.Is(opErr, io.EOF) {
			return c.stop(opErr)
		}
		if opErr != nil {
			c.report(ctx, opErr)
		}
		c.printf("\n")
	}
}

// stop ends the session quietly when the input has run out.
func (c *Console) stop(err error) error {
	if errors.Is(err, io.EOF) {
		c.printf("\nGoodbye!\n")
		return nil
	}

	return err
}

// View asks how to sort and prints the table.
func (c *Console) View(ctx context.Context) error {
	key, err := c.chooseSort()
	if err != nil {
		return err
	}

	return c.List(ctx, key)
}

// List prints every review as a table in the order of key.
func (c *Console) List(ctx context.Context, key reviewing.SortKey) error {
	reviews, err := c.service.All(ctx, key)
	if err != nil && !errors.Is(err, reviewing.ErrFileUnavailable) {
		return err
	}

	if len(reviews) == 0 {
		c.printf("No reviews found.\n")
		return nil
	}

	c.printf("%s", table.Render(reviews, table.ComputeColumnWidths(reviews, c.textWidth)))
	c.printf("%d review(s).\n", len(reviews))

	return nil
}

func (c *Console) chooseSort() (reviewing.SortKey, error) {
	keys := map[string]reviewing.SortKey{
		"":  reviewing.SortNone,
		"1": reviewing.SortNone,
		"2": reviewing.SortRating,
		"3": reviewing.SortBranch,
	}

	for {
		choice, err := c.readLine("Sort by: 1 File order, 2 Rating (highest first), 3 Branch (A-Z): ")
		if err != nil {
			return "", err
		}

		if key, ok := keys[choice]; ok {
			return key, nil
		}
		c.printf("Please enter 1, 2 or 3.\n")
	}
}

// Add asks for each field once and stores the review. Anything invalid
// abandons the review without writing it.
func (c *Console) Add(ctx context.Context) error {
	c.printf("Enter the details of the new review.\n")

	var r reviewing.Review
	for _, f := range fields {
		v, err := c.readLine(f.prompt)
		if err != nil {
			return err
		}
		if err := f.set(&r, v); err != nil {
			return err
		}
	}

	added, err := c.service.Add(ctx, r)
	if err != nil {
		return err
	}

	c.printf("Review added with ID %d.\n", added.ID)

	return nil
}

// Delete asks for an ID until it matches a review, then asks twice before deleting it.
func (c *Console) Delete(ctx context.Context) error {
	for {
		id, err := c.readID("Enter the ID of the review to delete (or 'cancel'): ")
		if err != nil {
			return err
		}

		deleted, err := c.service.Delete(ctx, id, c.confirmDelete)
		var nre *reviewing.NoReviewError
		if errors.As(err, &nre) {
			c.printf("No review found with ID %d, please try again.\n", nre.ID)
			continue
		}
		if err != nil {
			return err
		}

		c.printf("Review %d deleted.\n", deleted.ID)
		return nil
	}
}

func (c *Console) confirmDelete(r reviewing.Review, step reviewing.ConfirmStep) (bool, error) {
	switch step {
	case reviewing.ConfirmIntent:
		c.show(r)
		return c.confirm("Delete this review? (y/n): ")
	default:
		return c.confirm("This can't be undone. Are you absolutely sure? (y/n): ")
	}
}

// Edit asks for an ID until it matches a review, shows it, and on confirmation
// asks for a new value for every field.
func (c *Console) Edit(ctx context.Context) error {
	for {
		id, err := c.readID("Enter the ID of the review to edit (or 'cancel'): ")
		if err != nil {
			return err
		}

		updated, err := c.service.Edit(ctx, id, func(current reviewing.Review) (reviewing.Review, error) {
			return c.editReview(ctx, current)
		})
		var nre *reviewing.NoReviewError
		if errors.As(err, &nre) {
			c.printf("No review found with ID %d, please try again.\n", nre.ID)
			continue
		}
		if err != nil {
			return err
		}

		c.printf("Review %d updated.\n", updated.ID)
		return nil
	}
}

func (c *Console) editReview(ctx context.Context, current reviewing.Review) (reviewing.Review, error) {
	c.show(current)

	ok, err := c.confirm("Edit this review? (y/n): ")
	if err != nil {
		return reviewing.Review{}, err
	}
	if !ok {
		return reviewing.Review{}, reviewing.ErrCancelled
	}

	c.printf("Enter the new values, every field is replaced.\n")

	r := reviewing.Review{ID: current.ID}
	for _, f := range fields {
		if err := c.promptUntilValid(ctx, &r, f); err != nil {
			return reviewing.Review{}, err
		}
	}

	return r, nil
}

// promptUntilValid asks for f until the answer passes f's validation.
func (c *Console) promptUntilValid(ctx context.Context, r *reviewing.Review, f field) error {
	for {
		v, err := c.readLine(f.prompt)
		if err != nil {
			return err
		}

		if err := f.set(r, v); err != nil {
			c.printf("%s, please try again.\n", userMessage(err))
			continue
		}

		if err := validate.Partial(ctx, *r, f.name); err != nil {
			for _, msg := range validate.Messages(err) {
				c.printf("The %s, please try again.\n", msg)
			}
			continue
		}

		return nil
	}
}

func (c *Console) show(r reviewing.Review) {
	reviews := reviewing.Reviews{r}
	c.printf("%s", table.Render(reviews, table.ComputeColumnWidths(reviews, c.textWidth)))
}

// readID asks until it gets a positive number. "cancel" returns ErrCancelled.
func (c *Console) readID(prompt string) (int64, error) {
	for {
		v, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}

		if strings.EqualFold(v, "cancel") {
			return 0, reviewing.ErrCancelled
		}

		id, err := strconv.ParseInt(v, 10, 64)
		if err == nil && id > 0 {
			return id, nil
		}
		c.printf("%q is not a review ID, please enter a number.\n", v)
	}
}

// confirm asks a yes/no question until it gets an answer.
func (c *Console) confirm(prompt string) (bool, error) {
	for {
		v, err := c.readLine(prompt)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(v) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		c.printf("Please answer y or n.\n")
	}
}

// readLine prints the prompt and returns the next line without surrounding space.
// A last line without a newline is still returned; after that it's io.EOF.
func (c *Console) readLine(prompt string) (string, error) {
	c.printf("%s", prompt)

	line, err := c.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}
