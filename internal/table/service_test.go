package table

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	mu     sync.Mutex
	tables map[string]*Table
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{tables: make(map[string]*Table)}
}

func (r *fakeRepository) Create(ctx context.Context, t *Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.tables {
		if existing.TableNumber == t.TableNumber {
			return ErrNumberTaken
		}
	}
	r.nextID++
	t.ID = fmt.Sprintf("table-%d", r.nextID)
	t.IsAvailable = true
	stored := *t
	r.tables[t.ID] = &stored
	return nil
}

func (r *fakeRepository) GetByID(ctx context.Context, id string) (*Table, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tables[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func (r *fakeRepository) List(ctx context.Context, filter Filter) ([]*Table, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Table
	for _, t := range r.tables {
		if filter.CapacityFloor > 0 && t.Capacity < filter.CapacityFloor {
			continue
		}
		if filter.Location != "" && t.Location != filter.Location {
			continue
		}
		if filter.AvailableOnly && !t.IsAvailable {
			continue
		}
		if !hasAllFeatures(t.Features, filter.Features) {
			continue
		}
		copied := *t
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func hasAllFeatures(have, want []Feature) bool {
	for _, w := range want {
		found := false
		for _, h := range have {
			if h == w {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *fakeRepository) Update(ctx context.Context, t *Table) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tables[t.ID]; !ok {
		return ErrNotFound
	}
	stored := *t
	r.tables[t.ID] = &stored
	return nil
}

func (r *fakeRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tables[id]; !ok {
		return ErrNotFound
	}
	delete(r.tables, id)
	return nil
}

func (r *fakeRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tables[id]
	if !ok {
		return ErrNotFound
	}
	t.IsAvailable = available
	return nil
}

func TestParseFeatures(t *testing.T) {
	t.Run("accepts the full vocabulary", func(t *testing.T) {
		features, err := ParseFeatures([]string{"power_outlet", "window_view", "quiet_zone", "group_study"})
		require.NoError(t, err)
		assert.Len(t, features, 4)
	})

	t.Run("empty input", func(t *testing.T) {
		features, err := ParseFeatures(nil)
		require.NoError(t, err)
		assert.Empty(t, features)
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		for _, raw := range []string{"wifi", "POWER_OUTLET", "power outlet", ""} {
			_, err := ParseFeatures([]string{raw})
			assert.ErrorIs(t, err, ErrInvalidFeature, "input %q", raw)
		}
	})

	t.Run("rejects one bad value among good ones", func(t *testing.T) {
		_, err := ParseFeatures([]string{"quiet_zone", "jacuzzi"})
		assert.ErrorIs(t, err, ErrInvalidFeature)
	})
}

func TestServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("valid table", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		created, err := svc.Create(ctx, CreateRequest{
			TableNumber: "A-12",
			Capacity:    6,
			Location:    "second_floor",
			Features:    []string{"power_outlet", "group_study"},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.True(t, created.IsAvailable)
		assert.Equal(t, []Feature{FeaturePowerOutlet, FeatureGroupStudy}, created.Features)
	})

	t.Run("number required", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		_, err := svc.Create(ctx, CreateRequest{TableNumber: "  ", Capacity: 4, Location: "l"})
		assert.ErrorIs(t, err, ErrNumberRequired)
	})

	t.Run("location required", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		_, err := svc.Create(ctx, CreateRequest{TableNumber: "A-1", Capacity: 4, Location: " "})
		assert.ErrorIs(t, err, ErrLocationRequired)
	})

	t.Run("capacity floor", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		_, err := svc.Create(ctx, CreateRequest{TableNumber: "A-1", Capacity: 0, Location: "l"})
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	})

	t.Run("duplicate number", func(t *testing.T) {
		svc := NewService(newFakeRepository())
		_, err := svc.Create(ctx, CreateRequest{TableNumber: "A-1", Capacity: 4, Location: "l"})
		require.NoError(t, err)
		_, err = svc.Create(ctx, CreateRequest{TableNumber: "A-1", Capacity: 2, Location: "l"})
		assert.ErrorIs(t, err, ErrNumberTaken)
	})

	t.Run("bad feature rejected before persisting", func(t *testing.T) {
		repo := newFakeRepository()
		svc := NewService(repo)
		_, err := svc.Create(ctx, CreateRequest{
			TableNumber: "A-1", Capacity: 4, Location: "l",
			Features: []string{"jacuzzi"},
		})
		assert.ErrorIs(t, err, ErrInvalidFeature)
		assert.Empty(t, repo.tables)
	})
}

func TestServiceUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := NewService(repo)

	created, err := svc.Create(ctx, CreateRequest{
		TableNumber: "A-1", Capacity: 4, Location: "first_floor",
		Features: []string{"quiet_zone"},
	})
	require.NoError(t, err)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		capacity := 8
		updated, err := svc.Update(ctx, created.ID, UpdateRequest{Capacity: &capacity})
		require.NoError(t, err)
		assert.Equal(t, 8, updated.Capacity)
		assert.Equal(t, "A-1", updated.TableNumber)
		assert.Equal(t, []Feature{FeatureQuietZone}, updated.Features)
	})

	t.Run("nil features unchanged, empty slice clears", func(t *testing.T) {
		updated, err := svc.Update(ctx, created.ID, UpdateRequest{})
		require.NoError(t, err)
		assert.Equal(t, []Feature{FeatureQuietZone}, updated.Features)

		updated, err = svc.Update(ctx, created.ID, UpdateRequest{Features: []string{}})
		require.NoError(t, err)
		assert.Empty(t, updated.Features)
	})

	t.Run("invalid update rejected", func(t *testing.T) {
		zero := 0
		_, err := svc.Update(ctx, created.ID, UpdateRequest{Capacity: &zero})
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	})

	t.Run("unknown table", func(t *testing.T) {
		_, err := svc.Update(ctx, "missing", UpdateRequest{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestServiceListFilters(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	svc := NewService(repo)

	seed := []CreateRequest{
		{TableNumber: "A-1", Capacity: 2, Location: "first_floor", Features: []string{"power_outlet"}},
		{TableNumber: "A-2", Capacity: 6, Location: "first_floor", Features: []string{"power_outlet", "group_study"}},
		{TableNumber: "B-1", Capacity: 4, Location: "second_floor", Features: []string{"window_view"}},
	}
	ids := make([]string, 0, len(seed))
	for _, req := range seed {
		created, err := svc.Create(ctx, req)
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	t.Run("capacity floor", func(t *testing.T) {
		got, total, err := svc.List(ctx, Filter{CapacityFloor: 4})
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		assert.Len(t, got, 2)
	})

	t.Run("all features must be present", func(t *testing.T) {
		got, _, err := svc.List(ctx, Filter{Features: []Feature{FeaturePowerOutlet, FeatureGroupStudy}})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "A-2", got[0].TableNumber)
	})

	t.Run("available only", func(t *testing.T) {
		require.NoError(t, svc.SetAvailability(ctx, ids[0], false))
		got, _, err := svc.List(ctx, Filter{AvailableOnly: true, Location: "first_floor"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "A-2", got[0].TableNumber)
	})
}

func TestServiceAttachPhoto(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository())

	created, err := svc.Create(ctx, CreateRequest{TableNumber: "A-1", Capacity: 4, Location: "l"})
	require.NoError(t, err)

	updated, err := svc.AttachPhoto(ctx, created.ID, "file-123")
	require.NoError(t, err)
	require.NotNil(t, updated.PhotoFileID)
	assert.Equal(t, "file-123", *updated.PhotoFileID)

	_, err = svc.AttachPhoto(ctx, "missing", "file-123")
	assert.ErrorIs(t, err, ErrNotFound)
}
