package csvsource

import (
	"context"
	"errors"
	"fmt"
	"os"

	"kitchen-order-service/internal/domain"
	"kitchen-order-service/internal/platform/obs"
)

// FileSource loads restaurant groups from a CSV file on disk.
// It implements ports.OrderSource.
type FileSource struct {
	Path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (s *FileSource) LoadRestaurants(ctx context.Context) (_ []*domain.Restaurant, err error) {
	defer obs.Time(ctx, "csvsource.LoadRestaurants")(&err)

	if s.Path == "" {
		return nil, errors.New("load restaurants: path must not be empty")
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("load restaurants: open %q: %w", s.Path, err)
	}
	defer f.Close()

	rests, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("load restaurants: %q: %w", s.Path, err)
	}
	return rests, nil
}
