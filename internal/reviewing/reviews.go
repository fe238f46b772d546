package reviewing

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Reviews is every review in the file, in file order.
type Reviews []Review

// NextID returns one more than the highest ID in use, or 1 when there are none.
func (rs Reviews) NextID() int64 {
	var highest int64
	for _, r := range rs {
		highest = max(highest, r.ID)
	}

	return highest + 1
}

// FindByID returns the position of the first review with id or NoReviewError.
func (rs Reviews) FindByID(id int64) (int, error) {
	i := slices.IndexFunc(rs, func(r Review) bool { return r.ID == id })
	if i < 0 {
		return -1, &NoReviewError{ID: id}
	}

	return i, nil
}

// Without returns a copy of the reviews with the review at i removed.
func (rs Reviews) Without(i int) Reviews {
	return slices.Delete(slices.Clone(rs), i, i+1)
}

// SortKey selects the order reviews are displayed in.
type SortKey string

const (
	SortNone   SortKey = "none"
	SortRating SortKey = "rating"
	SortBranch SortKey = "branch"
)

// ParseSortKey accepts the names of the sort keys, case-insensitively; empty means SortNone.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case "":
		return SortNone, nil
	case SortNone, SortRating, SortBranch:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sort order %q, expected one of: none, rating, branch", s)
	}
}

// Sorted returns a sorted copy, leaving rs in file order.
// Rating sorts highest first and branch sorts A-Z; ties keep their file order.
func (rs Reviews) Sorted(key SortKey) Reviews {
	ret := slices.Clone(rs)

	switch key {
	case SortRating:
		slices.SortStableFunc(ret, func(a, b Review) int { return cmp.Compare(b.Rating, a.Rating) })
	case SortBranch:
		slices.SortStableFunc(ret, func(a, b Review) int { return strings.Compare(a.Branch, b.Branch) })
	}

	return ret
}
