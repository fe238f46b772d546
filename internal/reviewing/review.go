package reviewing

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"

	"github.com/gaqzi/park-reviewer/internal/platform/validate"
)

// Months are the accepted values for Review.Month, matched exactly.
var Months = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func init() {
	if err := validate.Register("month", func(fl validator.FieldLevel) bool {
		return slices.Contains(Months, fl.Field().String())
	}); err != nil {
		panic("failed to register month validation: " + err.Error())
	}
}

// Review is one visitor's review of a park, a row in the reviews file.
type Review struct {
	ID       int64
	Rating   int    `validate:"min=1,max=5" label:"rating"`
	Month    string `validate:"month" label:"month"`
	Location string `validate:"required,max=199,nodigits" label:"location"`
	Text     string `validate:"nocr" label:"review text"`
	Branch   string `validate:"nodigits" label:"branch"`
}

// Update takes every editable value from o, which is all of them except the ID.
// There is no partial edit: fields left empty in o are stored empty.
func (r Review) Update(o Review) Review {
	r.Rating = o.Rating
	r.Month = o.Month
	r.Location = o.Location
	r.Text = o.Text
	r.Branch = o.Branch

	return r
}

func (r Review) String() string {
	return fmt.Sprintf("#%d %d/5 %s, %s visiting %s", r.ID, r.Rating, r.Month, r.Location, r.Branch)
}
