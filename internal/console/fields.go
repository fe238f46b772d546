package console

import (
	"strconv"

	"github.com/gaqzi/park-reviewer/internal/reviewing"
)

// field is one value asked for when adding or editing a review.
type field struct {
	name   string // struct field, for validation
	prompt string
	set    func(r *reviewing.Review, v string) error
}

var fields = []field{
	{
		name:   "Rating",
		prompt: "Rating (1-5): ",
		set: func(r *reviewing.Review, v string) error {
			rating, err := strconv.Atoi(v)
			if err != nil {
				return &inputError{msg: "The rating must be a whole number from 1 to 5"}
			}
			r.Rating = rating
			return nil
		},
	},
	{
		name:   "Month",
		prompt: "Month of visit (e.g. January): ",
		set:    func(r *reviewing.Review, v string) error { r.Month = v; return nil },
	},
	{
		name:   "Location",
		prompt: "Reviewer location (e.g. United Kingdom): ",
		set:    func(r *reviewing.Review, v string) error { r.Location = v; return nil },
	},
	{
		name:   "Text",
		prompt: "Review text: ",
		set:    func(r *reviewing.Review, v string) error { r.Text = v; return nil },
	},
	{
		name:   "Branch",
		prompt: "Branch (e.g. Disneyland_Paris): ",
		set:    func(r *reviewing.Review, v string) error { r.Branch = v; return nil },
	},
}
