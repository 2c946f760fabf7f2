package table

import (
	"context"
	"strings"
)

type CreateRequest struct {
	TableNumber string
	Capacity    int
	Location    string
	Features    []string
}

type UpdateRequest struct {
	TableNumber *string
	Capacity    *int
	Location    *string
	Features    []string // nil means unchanged, empty slice clears
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Table, error)
	GetByID(ctx context.Context, id string) (*Table, error)
	List(ctx context.Context, filter Filter) ([]*Table, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Table, error)
	Delete(ctx context.Context, id string) error

	// SetAvailability flips the denormalized availability hint.
	// Called by the booking module, never directly by handlers.
	SetAvailability(ctx context.Context, id string, available bool) error

	// AttachPhoto links an uploaded file to the table.
	AttachPhoto(ctx context.Context, id string, fileID string) (*Table, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// validate enforces the table invariants before anything is persisted,
// independent of any save hook.
func validate(t *Table) error {
	if strings.TrimSpace(t.TableNumber) == "" {
		return ErrNumberRequired
	}
	if strings.TrimSpace(t.Location) == "" {
		return ErrLocationRequired
	}
	if t.Capacity < 1 {
		return ErrInvalidCapacity
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Table, error) {
	features, err := ParseFeatures(req.Features)
	if err != nil {
		return nil, err
	}

	t := &Table{
		TableNumber: strings.TrimSpace(req.TableNumber),
		Capacity:    req.Capacity,
		Location:    strings.TrimSpace(req.Location),
		Features:    features,
	}
	if err := validate(t); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Table, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Table, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Table, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TableNumber != nil {
		t.TableNumber = strings.TrimSpace(*req.TableNumber)
	}
	if req.Capacity != nil {
		t.Capacity = *req.Capacity
	}
	if req.Location != nil {
		t.Location = strings.TrimSpace(*req.Location)
	}
	if req.Features != nil {
		features, err := ParseFeatures(req.Features)
		if err != nil {
			return nil, err
		}
		t.Features = features
	}

	if err := validate(t); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) SetAvailability(ctx context.Context, id string, available bool) error {
	return s.repo.SetAvailability(ctx, id, available)
}

func (s *service) AttachPhoto(ctx context.Context, id string, fileID string) (*Table, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	t.PhotoFileID = &fileID
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}
