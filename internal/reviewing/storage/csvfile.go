package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gaqzi/park-reviewer/internal/platform/logging"
	"github.com/gaqzi/park-reviewer/internal/reviewing"
)

// DefaultMaxRecords is how many reviews are read from a file unless told otherwise.
const DefaultMaxRecords = 1000

// CSVStore keeps reviews in a CSV file. Nothing is cached: every call reads or
// writes the file, and writes go through a temporary file that's renamed over
// the original so the file is never left half written.
type CSVStore struct {
	path       string
	maxRecords int
}

type CSVOption func(s *CSVStore)

// WithMaxRecords caps how many reviews Load reads; the rest are skipped.
func WithMaxRecords(n int) CSVOption {
	return func(s *CSVStore) {
		if n > 0 {
			s.maxRecords = n
		}
	}
}

func NewCSVStore(path string, opts ...CSVOption) *CSVStore {
	s := &CSVStore{
		path:       path,
		maxRecords: DefaultMaxRecords,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *CSVStore) Path() string {
	return s.path
}

func (s *CSVStore) Exists(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	info, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %w", reviewing.ErrFileUnavailable, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("%w: %s is a directory", reviewing.ErrFileUnavailable, s.path)
	}

	return true, nil
}

// Load returns the reviews in file order, up to the maximum number of records.
// The rest stay in the file untouched and are kept by Save.
func (s *CSVStore) Load(ctx context.Context) (reviewing.Reviews, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	log := logging.FromContext(ctx)

	recs, err := s.readRecords()
	if err != nil {
		return nil, err
	}
	if len(recs) > s.maxRecords {
		log.Warn("reviews file has more records than will be loaded",
			"path", s.path, "max_records", s.maxRecords, "skipped", len(recs)-s.maxRecords)
		recs = recs[:s.maxRecords]
	}

	reviews := make(reviewing.Reviews, 0, len(recs))
	seen := make(map[int64]int)
	for _, rec := range recs {
		r, err := s.decode(rec)
		if err != nil {
			return nil, err
		}

		if line, ok := seen[r.ID]; ok {
			log.Warn("duplicate review id in file", "review_id", r.ID, "line", rec.Line, "first_line", line)
		} else {
			seen[r.ID] = rec.Line
		}

		reviews = append(reviews, r)
	}

	return reviews, nil
}

// NextID looks at every record in the file, also those past the maximum Load reads.
func (s *CSVStore) NextID(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	recs, err := s.readRecords()
	if err != nil {
		return 0, err
	}

	reviews := make(reviewing.Reviews, 0, len(recs))
	for _, rec := range recs {
		r, err := s.decode(rec)
		if err != nil {
			return 0, err
		}
		reviews = append(reviews, r)
	}

	return reviews.NextID(), nil
}

// Save writes reviews followed, as they are, by the records past the maximum Load reads.
func (s *CSVStore) Save(ctx context.Context, reviews reviewing.Reviews) error {
	unloaded, err := s.unloaded()
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(Header + "\n")
	for _, r := range reviews {
		b.WriteString(Encode(r))
	}
	for _, rec := range unloaded {
		b.WriteString(rec.Text)
		if !strings.HasSuffix(rec.Text, "\n") {
			b.WriteByte('\n')
		}
	}

	return s.replace(ctx, b.String())
}

// Append keeps the existing file content as it is and adds the review at the end.
// A file with nothing but blank lines is started over with the header.
func (s *CSVStore) Append(ctx context.Context, review reviewing.Review) error {
	existing, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %w", reviewing.ErrFileUnavailable, err)
	}

	var b strings.Builder
	if strings.TrimSpace(string(existing)) == "" {
		b.WriteString(Header + "\n")
	} else {
		b.Write(existing)
		if existing[len(existing)-1] != '\n' {
			b.WriteByte('\n')
		}
	}
	b.WriteString(Encode(review))

	return s.replace(ctx, b.String())
}

// readRecords returns the records after the header. A missing or empty file has none.
func (s *CSVStore) readRecords() ([]rawRecord, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", reviewing.ErrFileUnavailable, err)
	}
	defer f.Close()

	var (
		recs       []rawRecord
		headerRead bool
	)
	for rec, err := range records(f) {
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", s.path, err)
		}

		if !headerRead {
			if strings.TrimRight(rec.Text, "\r\n") != Header {
				return nil, &MalformedRecordError{Line: rec.Line, Reason: "expected the header " + Header}
			}
			headerRead = true
			continue
		}

		recs = append(recs, rec)
	}

	return recs, nil
}

// unloaded returns the records past the maximum Load reads.
func (s *CSVStore) unloaded() ([]rawRecord, error) {
	// A directory has no records; replacing it fails with a WriteError.
	if info, err := os.Stat(s.path); err == nil && info.IsDir() {
		return nil, nil
	}

	recs, err := s.readRecords()
	if err != nil {
		return nil, fmt.Errorf("failed to keep the records past the first %d: %w", s.maxRecords, err)
	}
	if len(recs) <= s.maxRecords {
		return nil, nil
	}

	return recs[s.maxRecords:], nil
}

func (s *CSVStore) decode(rec rawRecord) (reviewing.Review, error) {
	r, err := Decode(rec.Text)
	if err != nil {
		var mre *MalformedRecordError
		if errors.As(err, &mre) {
			mre.Line = rec.Line
		}
		return reviewing.Review{}, fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	return r, nil
}

// replace writes content to a temporary file next to the destination and
// renames it into place. On failure the temporary file is removed and the
// destination is untouched.
func (s *CSVStore) replace(ctx context.Context, content string) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return &WriteError{Path: s.path, Op: "create temporary file", Err: err}
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := tmp.WriteString(content); err != nil {
		return &WriteError{Path: s.path, Op: "write temporary file", Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return &WriteError{Path: s.path, Op: "sync temporary file", Err: err}
	}
	if err := tmp.Chmod(s.fileMode()); err != nil {
		return &WriteError{Path: s.path, Op: "set permissions on temporary file", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &WriteError{Path: s.path, Op: "close temporary file", Err: err}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return &WriteError{Path: s.path, Op: "replace file", Err: err}
	}

	logging.FromContext(ctx).Debug("reviews file written", slog.String("path", s.path), slog.Int("bytes", len(content)))

	return nil
}

// fileMode keeps the permissions of the file being replaced.
func (s *CSVStore) fileMode() fs.FileMode {
	if info, err := os.Stat(s.path); err == nil {
		return info.Mode().Perm()
	}

	return 0o644
}
