package reviewing

import "context"

type Storage interface {
	// Exists reports whether there is a reviews file to read from.
	Exists(ctx context.Context) (bool, error)

	// Load returns every stored review in file order, or no reviews when there is no file yet.
	Load(ctx context.Context) (Reviews, error)

	// NextID returns the ID for a new review: one more than the highest stored,
	// counting reviews Load left out because of a limit.
	NextID(ctx context.Context) (int64, error)

	// Save replaces what Load returned with reviews, or returns an error and leaves what was there.
	// Reviews Load left out because of a limit are kept after them.
	Save(ctx context.Context, reviews Reviews) error

	// Append stores one review after the existing ones, creating the file if needed.
	Append(ctx context.Context, review Review) error
}
