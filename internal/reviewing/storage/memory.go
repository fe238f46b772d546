package storage

import (
	"context"
	"slices"

	"github.com/gaqzi/park-reviewer/internal/reviewing"
)

// MemoryStore keeps reviews in memory. A new MemoryStore behaves like a missing file until
// something is written to it.
type MemoryStore struct {
	data   reviewing.Reviews
	exists bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	return s.exists, nil
}

func (s *MemoryStore) Load(ctx context.Context) (reviewing.Reviews, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ret := make(reviewing.Reviews, len(s.data))
	copy(ret, s.data)

	return ret, nil
}

func (s *MemoryStore) NextID(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	return s.data.NextID(), nil
}

func (s *MemoryStore) Save(ctx context.Context, reviews reviewing.Reviews) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.data = slices.Clone(reviews)
	s.exists = true

	return nil
}

func (s *MemoryStore) Append(ctx context.Context, review reviewing.Review) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.data = append(s.data, review)
	s.exists = true

	return nil
}
