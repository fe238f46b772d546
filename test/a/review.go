// Package a happily stolen from Working Effectively with Unit Tests.
package a

import (
	"github.com/gaqzi/park-reviewer/internal/reviewing"
)

type BuilderReview struct {
	r reviewing.Review
}

// Review prepares a reviewing.Review that is valid and saved by default but allows for customization.
func Review() BuilderReview {
	r := BuilderReview{}

	return r.IsValid().IsSaved()
}

// Build returns the prepared reviewing.Review.
func (b BuilderReview) Build() reviewing.Review {
	return b.r
}

// IsInvalid prepares a reviewing.Review that will fail validation.
func (b BuilderReview) IsInvalid() BuilderReview {
	b.r = reviewing.Review{}

	return b
}

// IsValid prepares a reviewing.Review that will pass validation.
func (b BuilderReview) IsValid() BuilderReview {
	b.r.Rating = 4
	b.r.Month = "April"
	b.r.Location = "United Kingdom"
	b.r.Text = "Queues were long, but the parade made up for it."
	b.r.Branch = "Disneyland_Paris"

	return b
}

// IsSaved prepares a reviewing.Review that has been given an ID.
func (b BuilderReview) IsSaved() BuilderReview {
	b.r.ID = 1

	return b
}

// IsNotSaved prepares a reviewing.Review that has not been stored yet.
func (b BuilderReview) IsNotSaved() BuilderReview {
	b.r.ID = 0

	return b
}

// WithID prepares the reviewing.Review with the passed in id.
func (b BuilderReview) WithID(id int64) BuilderReview {
	b.r.ID = id

	return b
}

func (b BuilderReview) WithRating(rating int) BuilderReview {
	b.r.Rating = rating

	return b
}

func (b BuilderReview) WithMonth(month string) BuilderReview {
	b.r.Month = month

	return b
}

func (b BuilderReview) WithLocation(location string) BuilderReview {
	b.r.Location = location

	return b
}

func (b BuilderReview) WithText(text string) BuilderReview {
	b.r.Text = text

	return b
}

func (b BuilderReview) WithBranch(branch string) BuilderReview {
	b.r.Branch = branch

	return b
}

// Modify allows you to specify a custom override while preparing.
// Note: consider naming your pattern and adding it to the builder.
func (b BuilderReview) Modify(mods ...func(r *reviewing.Review)) BuilderReview {
	for _, mod := range mods {
		mod(&b.r)
	}

	return b
}

// Reviews builds each review in order.
func Reviews(bs ...BuilderReview) reviewing.Reviews {
	ret := make(reviewing.Reviews, 0, len(bs))
	for _, b := range bs {
		ret = append(ret, b.Build())
	}

	return ret
}

// ReviewsWithIDs prepares valid reviews with the ids, in order.
func ReviewsWithIDs(ids ...int64) reviewing.Reviews {
	bs := make([]BuilderReview, 0, len(ids))
	for _, id := range ids {
		bs = append(bs, Review().WithID(id))
	}

	return Reviews(bs...)
}
