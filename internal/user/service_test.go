package user

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JadissEL/table-booking-backend/internal/auth"
)

type fakeRepository struct {
	users  map[string]*User // keyed by id
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: make(map[string]*User)}
}

func (r *fakeRepository) Create(ctx context.Context, u *User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return ErrEmailAlreadyUsed
		}
	}
	r.nextID++
	u.ID = fmt.Sprintf("user-%d", r.nextID)
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *fakeRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepository) GetByID(ctx context.Context, id string) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeRepository) Update(ctx context.Context, u *User) error {
	if _, ok := r.users[u.ID]; !ok {
		return ErrNotFound
	}
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *fakeRepository) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	var out []*User
	for _, u := range r.users {
		if filter.Email != "" && !strings.Contains(u.Email, filter.Email) {
			continue
		}
		copied := *u
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func newTestService() Service {
	return NewService(newFakeRepository(), auth.NewBcryptPasswordHasherWithCost(4))
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("success normalizes email and trims name", func(t *testing.T) {
		svc := newTestService()
		u, err := svc.Register(ctx, "  Reader@Library.Org ", "password123", "  Ada  ")
		require.NoError(t, err)
		assert.Equal(t, "reader@library.org", u.Email)
		assert.Equal(t, "Ada", u.Name)
		assert.NotEmpty(t, u.ID)
		assert.NotEqual(t, "password123", u.PasswordHash)
	})

	t.Run("email required", func(t *testing.T) {
		svc := newTestService()
		_, err := svc.Register(ctx, "   ", "password123", "Ada")
		assert.ErrorIs(t, err, ErrEmailRequired)
	})

	t.Run("name required", func(t *testing.T) {
		svc := newTestService()
		_, err := svc.Register(ctx, "a@b.c", "password123", " ")
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("short password rejected", func(t *testing.T) {
		svc := newTestService()
		_, err := svc.Register(ctx, "a@b.c", "short", "Ada")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("duplicate email rejected case insensitively", func(t *testing.T) {
		svc := newTestService()
		_, err := svc.Register(ctx, "a@b.c", "password123", "Ada")
		require.NoError(t, err)
		_, err = svc.Register(ctx, "A@B.C", "password456", "Grace")
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	registered, err := svc.Register(ctx, "a@b.c", "password123", "Ada")
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		u, err := svc.Login(ctx, "a@b.c", "password123")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, u.ID)
	})

	t.Run("email is normalized", func(t *testing.T) {
		_, err := svc.Login(ctx, " A@B.C ", "password123")
		assert.NoError(t, err)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "a@b.c", "wrong-password")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown email maps to invalid credentials", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@b.c", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	registered, err := svc.Register(ctx, "a@b.c", "password123", "Ada")
	require.NoError(t, err)

	t.Run("rename", func(t *testing.T) {
		name := "Ada L."
		u, err := svc.UpdateProfile(ctx, registered.ID, UpdateProfileRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, "Ada L.", u.Name)
	})

	t.Run("password change takes effect", func(t *testing.T) {
		newPassword := "password456"
		_, err := svc.UpdateProfile(ctx, registered.ID, UpdateProfileRequest{Password: &newPassword})
		require.NoError(t, err)

		_, err = svc.Login(ctx, "a@b.c", "password456")
		assert.NoError(t, err)
		_, err = svc.Login(ctx, "a@b.c", "password123")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("short password rejected", func(t *testing.T) {
		short := "tiny"
		_, err := svc.UpdateProfile(ctx, registered.ID, UpdateProfileRequest{Password: &short})
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		blank := "  "
		_, err := svc.UpdateProfile(ctx, registered.ID, UpdateProfileRequest{Name: &blank})
		assert.ErrorIs(t, err, ErrNameRequired)
	})
}
