package studio

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Service handles studio business logic
type Service struct {
	repo      Repository
	equipment EquipmentLookup
	newID     func() string
}

// NewService creates studio service
func NewService(repo Repository, equipment EquipmentLookup) *Service {
	return &Service{
		repo:      repo,
		equipment: equipment,
		newID:     func() string { return "studio-" + uuid.NewString() },
	}
}

// List returns every studio, newest first, with equipment names resolved.
func (s *Service) List(ctx context.Context) ([]*StudioResponse, error) {
	studios, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list studios: %w", err)
	}

	names, err := s.equipment.NamesByIDs(ctx, referencedIDs(studios...))
	if err != nil {
		return nil, fmt.Errorf("resolve equipment names: %w", err)
	}

	out := make([]*StudioResponse, len(studios))
	for i, st := range studios {
		out[i] = ToResponse(st, names)
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*StudioResponse, error) {
	st, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get studio %s: %w", id, err)
	}
	if st == nil {
		return nil, ErrStudioNotFound
	}
	return s.resolve(ctx, st)
}

func (s *Service) Create(ctx context.Context, req *StudioRequest) (*StudioResponse, error) {
	req.normalize()
	st := &Studio{
		ID:          s.newID(),
		Name:        req.Name,
		Area:        req.Area,
		Category:    req.Category,
		Description: req.Description,
		Images:      pq.StringArray(req.images()),
		Equipment:   pq.StringArray(req.equipmentRefs()),
		Price:       float64(*req.Price),
	}
	if err := s.repo.Create(ctx, st); err != nil {
		return nil, fmt.Errorf("create studio: %w", err)
	}
	return s.resolve(ctx, st)
}

// Update replaces every mutable field of the studio. Last write wins.
func (s *Service) Update(ctx context.Context, id string, req *StudioRequest) (*StudioResponse, error) {
	req.normalize()
	st := &Studio{
		ID:          id,
		Name:        req.Name,
		Area:        req.Area,
		Category:    req.Category,
		Description: req.Description,
		Images:      pq.StringArray(req.images()),
		Equipment:   pq.StringArray(req.equipmentRefs()),
		Price:       float64(*req.Price),
	}
	if err := s.repo.Update(ctx, st); err != nil {
		if errors.Is(err, ErrStudioNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update studio %s: %w", id, err)
	}
	return s.resolve(ctx, st)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrStudioNotFound) {
			return err
		}
		return fmt.Errorf("delete studio %s: %w", id, err)
	}
	return nil
}

func (s *Service) resolve(ctx context.Context, st *Studio) (*StudioResponse, error) {
	names, err := s.equipment.NamesByIDs(ctx, referencedIDs(st))
	if err != nil {
		return nil, fmt.Errorf("resolve equipment names: %w", err)
	}
	return ToResponse(st, names), nil
}
