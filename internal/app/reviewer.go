package app

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/gaqzi/park-reviewer/internal/console"
	"github.com/gaqzi/park-reviewer/internal/platform/config"
	"github.com/gaqzi/park-reviewer/internal/reviewing"
	reviewstorage "github.com/gaqzi/park-reviewer/internal/reviewing/storage"
	"github.com/gaqzi/park-reviewer/internal/reviewing/table"
)

type Config struct {
	File       string
	MaxRecords int
	TextWidth  int
}

func NewConfig() Config {
	return Config{
		File:       "disneyland_reviews.csv",
		MaxRecords: reviewstorage.DefaultMaxRecords,
		TextWidth:  table.DefaultTextWidth,
	}
}

// ConfigFrom takes the reviews settings out of the loaded configuration.
func ConfigFrom(cfg config.ReviewsConfig) Config {
	return Config{
		File:       cfg.File,
		MaxRecords: cfg.MaxRecords,
		TextWidth:  cfg.TextWidth,
	}
}

type Reviewer struct {
	Config  Config
	Console *console.Console
}

// Run shows the menu until the user exits.
func (r *Reviewer) Run(ctx context.Context) error {
	return r.Console.Run(ctx)
}

// List prints every review in the order of key.
func (r *Reviewer) List(ctx context.Context, key reviewing.SortKey) error {
	return r.Console.List(ctx, key)
}

// Start wires up the reviews file, the service and the console reading from in and drawing on out.
func Start(cfg Config, in io.Reader, out io.Writer) (*Reviewer, error) {
	if cfg.File == "" {
		return nil, errors.New("no reviews file configured")
	}

	reviewStore := reviewstorage.NewCSVStore(cfg.File, reviewstorage.WithMaxRecords(cfg.MaxRecords))
	service := reviewing.NewService(reviewStore)

	slog.Debug("reviewer started", "file", cfg.File, "max_records", cfg.MaxRecords)

	return &Reviewer{
		Config:  cfg,
		Console: console.New(service, in, out, console.WithTextWidth(cfg.TextWidth)),
	}, nil
}
