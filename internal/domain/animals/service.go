package animals

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInvalidID    = errors.New("invalid animal id")
	ErrNotFound     = errors.New("animal not found")
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name         string
	Breed        string
	FeedingHabit string
}

// UpdateInput usa punteros para PATCH real: nil = no tocar.
type UpdateInput struct {
	Name         *string
	Breed        *string
	FeedingHabit *string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	now := s.timestamp()
	a := Animal{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(in.Name),
		Breed:        strings.TrimSpace(in.Breed),
		FeedingHabit: strings.TrimSpace(in.FeedingHabit),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := validate(a); err != nil {
		return Animal{}, err
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, fmt.Errorf("create animal: %w", err)
	}
	return a, nil
}

// Update busca el registro, aplica solo los campos presentes y persiste.
// Last-write-wins: no hay control de concurrencia sobre el mismo id.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (Animal, error) {
	a, err := s.GetByID(ctx, id)
	if err != nil {
		return Animal{}, err
	}

	if in.Name != nil {
		a.Name = strings.TrimSpace(*in.Name)
	}
	if in.Breed != nil {
		a.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.FeedingHabit != nil {
		a.FeedingHabit = strings.TrimSpace(*in.FeedingHabit)
	}
	if err := validate(a); err != nil {
		return Animal{}, err
	}

	a.UpdatedAt = s.timestamp()
	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, fmt.Errorf("update animal: %w", err)
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id, err := normalizeID(id)
	if err != nil {
		return Animal{}, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list animals: %w", err)
	}
	if items == nil {
		items = []Animal{}
	}
	return items, nil
}

// Delete devuelve ErrNotFound si no existía; el handler decide si eso es error.
func (s *Service) Delete(ctx context.Context, id string) error {
	id, err := normalizeID(id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func normalizeID(id string) (string, error) {
	id = strings.TrimSpace(id)
	parsed, err := uuid.Parse(id)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return parsed.String(), nil
}

func validate(a Animal) error {
	switch {
	case a.Name == "":
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, FieldName)
	case a.Breed == "":
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, FieldBreed)
	case a.FeedingHabit == "":
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, FieldFeedingHabit)
	}
	return nil
}

// timestamp trunca a microsegundos, la precisión de timestamptz en postgres,
// para que todos los stores devuelvan exactamente lo mismo.
func (s *Service) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}
