package speakers

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"venue-manager/feature/rooms/models"

	"go.uber.org/zap"
)

// Service manages speakers.
type Service struct {
	repo   *Repository
	logger *zap.Logger
}

// NewService creates a speakers service.
func NewService(repo *Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

func (s *Service) List(ctx context.Context) ([]models.Speaker, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id uint) (*models.Speaker, error) {
	return s.repo.Find(ctx, id)
}

func (s *Service) Create(ctx context.Context, in models.SpeakerCreate) (*models.Speaker, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	speaker := in.Speaker()
	if err := s.repo.Create(ctx, speaker); err != nil {
		return nil, err
	}
	return speaker, nil
}

func (s *Service) Update(ctx context.Context, id uint, in models.SpeakerUpdate) (*models.Speaker, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, in)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// Import reads a CSV roster with a header row naming full_name and optionally
// title and bio, and stores every row. A single bad row rejects the whole file.
func (s *Service) Import(ctx context.Context, r io.Reader) (int, error) {
	rows, err := parseRoster(r)
	if err != nil {
		return 0, err
	}
	if err := s.repo.CreateAll(ctx, rows); err != nil {
		return 0, err
	}
	s.logger.Info("Speakers imported", zap.Int("count", len(rows)))
	return len(rows), nil
}

func parseRoster(r io.Reader) ([]models.Speaker, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: empty roster", models.ErrInvalid)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", models.ErrInvalid, err)
	}

	cols := map[string]int{}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		cols[name] = i
	}
	if _, ok := cols["full_name"]; !ok {
		return nil, fmt.Errorf("%w: roster has no full_name column", models.ErrInvalid)
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var speakers []models.Speaker
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", models.ErrInvalid, err)
		}
		in := models.SpeakerCreate{
			FullName: field(record, "full_name"),
			Title:    field(record, "title"),
			Bio:      field(record, "bio"),
		}
		if err := in.Validate(); err != nil {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		speakers = append(speakers, *in.Speaker())
	}
	return speakers, nil
}
