package reviewing

import (
	"context"
	"errors"
	"fmt"

	"github.com/gaqzi/park-reviewer/internal/platform/action"
	"github.com/gaqzi/park-reviewer/internal/platform/logging"
)

// ConfirmStep is which of the two confirmations a deletion is asking for.
type ConfirmStep int

const (
	// ConfirmIntent asks whether this is the review to delete.
	ConfirmIntent ConfirmStep = iota + 1
	// ConfirmFinal asks once more since a deletion can't be undone.
	ConfirmFinal
)

// ConfirmFunc answers a delete confirmation for r. An error stops the deletion.
type ConfirmFunc func(r Review, step ConfirmStep) (bool, error)

// EditFunc is given the current review and returns the values to store instead.
// Returning ErrCancelled leaves the review as it was.
type EditFunc func(current Review) (Review, error)

type Service struct {
	reviewStore Storage
	actions     *action.Mapper
}

type ServiceOption func(s *Service)

// WithActionMapper replaces the default actions with the ones set in m.
func WithActionMapper(m *action.Mapper) ServiceOption {
	return func(s *Service) {
		s.actions.Merge(m)
	}
}

func NewService(reviewStore Storage, opts ...ServiceOption) *Service {
	s := &Service{
		reviewStore: reviewStore,
		actions:     reviewServiceActions(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// All returns every review ordered by key. There must be a reviews file to list.
func (s *Service) All(ctx context.Context, key SortKey) (Reviews, error) {
	ctx, log := logging.WithOperation(ctx, "view", "sort", key)

	reviews, err := s.loadExisting(ctx)
	if err != nil {
		return nil, err
	}

	log.Debug("reviews loaded", "count", len(reviews))

	return reviews.Sorted(key), nil
}

// Get returns the review with the ID.
func (s *Service) Get(ctx context.Context, reviewID int64) (Review, error) {
	reviews, err := s.loadExisting(ctx)
	if err != nil {
		return Review{}, err
	}

	i, err := reviews.FindByID(reviewID)
	if err != nil {
		return Review{}, fmt.Errorf("failed to get review: %w", err)
	}

	return reviews[i], nil
}

// Add validates the review, gives it the next free ID and stores it after the others.
// A review that fails validation is not written.
func (s *Service) Add(ctx context.Context, review Review) (Review, error) {
	ctx, log := logging.WithOperation(ctx, "add")

	review, err := s.beforeSave(ctx, review)
	if err != nil {
		log.Debug("review rejected", "error", err)
		return Review{}, err
	}

	id, err := s.reviewStore.NextID(ctx)
	if err != nil {
		return Review{}, fmt.Errorf("failed to find the next review id: %w", err)
	}

	review.ID = id
	if err := s.reviewStore.Append(ctx, review); err != nil {
		log.Error("failed to store review", "error", err)
		return Review{}, fmt.Errorf("failed to save review in storage: %w", err)
	}

	log.Info("review added", "review_id", review.ID)

	return review, nil
}

// Delete removes the review with the ID once confirm has approved both steps.
// Declining either step returns ErrCancelled without writing anything.
func (s *Service) Delete(ctx context.Context, reviewID int64, confirm ConfirmFunc) (Review, error) {
	ctx, log := logging.WithOperation(ctx, "delete", "review_id", reviewID)

	reviews, err := s.loadExisting(ctx)
	if err != nil {
		return Review{}, err
	}

	i, err := reviews.FindByID(reviewID)
	if err != nil {
		log.Debug("no review to delete")
		return Review{}, fmt.Errorf("failed to delete review: %w", err)
	}

	for _, step := range []ConfirmStep{ConfirmIntent, ConfirmFinal} {
		ok, err := confirm(reviews[i], step)
		if err != nil {
			return Review{}, fmt.Errorf("failed to confirm deletion: %w", err)
		}
		if !ok {
			log.Debug("deletion declined", "step", step)
			return Review{}, ErrCancelled
		}
	}

	if err := s.reviewStore.Save(ctx, reviews.Without(i)); err != nil {
		log.Error("failed to store reviews", "error", err)
		return Review{}, fmt.Errorf("failed to save reviews in storage: %w", err)
	}

	log.Info("review deleted")

	return reviews[i], nil
}

// Edit replaces every field but the ID of the review with what edit returns,
// keeping it at its position in the file.
func (s *Service) Edit(ctx context.Context, reviewID int64, edit EditFunc) (Review, error) {
	ctx, log := logging.WithOperation(ctx, "edit", "review_id", reviewID)

	reviews, err := s.loadExisting(ctx)
	if err != nil {
		return Review{}, err
	}

	i, err := reviews.FindByID(reviewID)
	if err != nil {
		log.Debug("no review to edit")
		return Review{}, fmt.Errorf("failed to edit review: %w", err)
	}

	replacement, err := edit(reviews[i])
	if err != nil {
		if errors.Is(err, ErrCancelled) {
			log.Debug("edit declined")
			return Review{}, ErrCancelled
		}
		return Review{}, fmt.Errorf("failed to get edited review: %w", err)
	}

	updated, err := s.beforeSave(ctx, reviews[i].Update(replacement))
	if err != nil {
		log.Debug("edit rejected", "error", err)
		return Review{}, err
	}

	reviews[i] = updated
	if err := s.reviewStore.Save(ctx, reviews); err != nil {
		log.Error("failed to store reviews", "error", err)
		return Review{}, fmt.Errorf("failed to save reviews in storage: %w", err)
	}

	log.Info("review edited")

	return updated, nil
}

func (s *Service) beforeSave(ctx context.Context, r Review) (Review, error) {
	save, err := action.Lookup[saveAction](s.actions, "Save")
	if err != nil {
		return Review{}, fmt.Errorf("failed to find save action: %w", err)
	}

	return save(ctx, r)
}

// loadExisting loads the reviews for operations that can't start from an empty file.
func (s *Service) loadExisting(ctx context.Context) (Reviews, error) {
	ok, err := s.reviewStore.Exists(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check for reviews file: %w", err)
	}
	if !ok {
		return nil, ErrFileUnavailable
	}

	reviews, err := s.reviewStore.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load reviews: %w", err)
	}

	return reviews, nil
}
