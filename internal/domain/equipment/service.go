package equipment

import (
	"context"
	"fmt"
)

// Service handles equipment business logic
type Service struct {
	repo Repository
}

// NewService creates equipment service
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Equipment, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list equipments: %w", err)
	}
	return items, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Equipment, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get equipment %d: %w", id, err)
	}
	if e == nil {
		return nil, ErrEquipmentNotFound
	}
	return e, nil
}

func (s *Service) Create(ctx context.Context, req *EquipmentRequest) (*Equipment, error) {
	req.normalize()
	e := &Equipment{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.description(),
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create equipment: %w", err)
	}
	return e, nil
}

// Update replaces every mutable field of the equipment.
func (s *Service) Update(ctx context.Context, id int64, req *EquipmentRequest) (*Equipment, error) {
	req.normalize()
	e := &Equipment{
		ID:          id,
		Name:        req.Name,
		Type:        req.Type,
		Description: req.description(),
	}
	if err := s.repo.Update(ctx, e); err != nil {
		if err == ErrEquipmentNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("update equipment %d: %w", id, err)
	}
	return e, nil
}

// Delete removes the row. Studios keep the dangling id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if err == ErrEquipmentNotFound {
			return err
		}
		return fmt.Errorf("delete equipment %d: %w", id, err)
	}
	return nil
}

// NamesByIDs resolves equipment ids to names; unknown ids are absent from the map.
func (s *Service) NamesByIDs(ctx context.Context, ids []int64) (map[int64]string, error) {
	return s.repo.NamesByIDs(ctx, ids)
}
