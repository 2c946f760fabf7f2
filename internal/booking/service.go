package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/JadissEL/table-booking-backend/internal/table"
)

type CreateRequest struct {
	UserID          string
	TableID         string
	StartTime       time.Time
	EndTime         time.Time
	Purpose         string
	PartySize       int
	SpecialRequests *string
}

// TableRegistry is the slice of the table service the booking core depends on.
type TableRegistry interface {
	GetByID(ctx context.Context, id string) (*table.Table, error)
	SetAvailability(ctx context.Context, id string, available bool) error
}

type Service interface {
	// Create admits a new booking if its interval does not overlap any
	// active booking on the same table. The check and the write are
	// serialized per table.
	Create(ctx context.Context, req CreateRequest) (*Booking, error)

	GetByID(ctx context.Context, id string, callerID string, callerIsAdmin bool) (*Booking, error)
	ListUserBookings(ctx context.Context, userID string, page, pageSize int) ([]*Booking, int, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)

	// UpdateStatus moves a booking through its lifecycle. Admin only.
	UpdateStatus(ctx context.Context, id string, newStatus string, callerIsAdmin bool) (*Booking, error)

	// Cancel cancels a booking on behalf of its owner or an admin.
	// Cancelling an already-cancelled booking succeeds with changed=false.
	Cancel(ctx context.Context, id string, callerID string, callerIsAdmin bool) (*Booking, bool, error)
}

type service struct {
	repo   Repository
	tables TableRegistry
	locks  *tableLocks
}

func NewService(repo Repository, tables TableRegistry) Service {
	return &service{
		repo:   repo,
		tables: tables,
		locks:  newTableLocks(),
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	// 1. Validate the candidate before touching any state.
	if req.EndTime.Before(req.StartTime) || req.EndTime.Equal(req.StartTime) {
		return nil, ErrInvalidTimeRange
	}
	if req.PartySize < MinPartySize || req.PartySize > MaxPartySize {
		return nil, ErrInvalidPartySize
	}
	if strings.TrimSpace(req.Purpose) == "" {
		return nil, ErrPurposeRequired
	}

	// 2. Serialize check-then-write per table. Bookings for other tables
	// are not blocked.
	unlock := s.locks.lock(req.TableID)
	defer unlock()

	// 3. The table must exist. Its availability flag is a denormalized
	// hint for list filtering and is deliberately not consulted here:
	// only the ledger decides whether the slot is free.
	if _, err := s.tables.GetByID(ctx, req.TableID); err != nil {
		if errors.Is(err, table.ErrNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	// 4. Conflict check against the active bookings of this table.
	active, err := s.repo.ListActiveByTable(ctx, req.TableID)
	if err != nil {
		return nil, err
	}
	if conflict := FindConflict(req.StartTime, req.EndTime, active); conflict != nil {
		return nil, ErrTimeConflict
	}

	// 5. Persist the booking as pending.
	b := &Booking{
		TableID:         req.TableID,
		UserID:          req.UserID,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		Status:          StatusPending,
		Purpose:         strings.TrimSpace(req.Purpose),
		PartySize:       req.PartySize,
		SpecialRequests: req.SpecialRequests,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// 6. Flip the availability hint. If this write fails the booking is
	// rolled back so the caller can retry the whole operation.
	if err := s.tables.SetAvailability(ctx, req.TableID, false); err != nil {
		if delErr := s.repo.Delete(ctx, b.ID); delErr != nil {
			// Phantom pending booking remains; surface it distinctly
			// for operator reconciliation.
			return nil, ErrCompensationFailed.WithCause(fmt.Errorf("availability update: %w; rollback delete: %w", err, delErr))
		}
		return nil, ErrAvailabilityUpdate.WithCause(err)
	}

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string, callerID string, callerIsAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !callerIsAdmin && b.UserID != callerID {
		return nil, ErrPermissionDenied
	}

	return b, nil
}

func (s *service) ListUserBookings(ctx context.Context, userID string, page, pageSize int) ([]*Booking, int, error) {
	return s.repo.List(ctx, Filter{
		UserID:   userID,
		Page:     page,
		PageSize: pageSize,
	})
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateStatus(ctx context.Context, id string, newStatus string, callerIsAdmin bool) (*Booking, error) {
	if !callerIsAdmin {
		return nil, ErrPermissionDenied
	}

	next, err := ParseStatus(newStatus)
	if err != nil {
		return nil, err
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.lock(b.TableID)
	defer unlock()

	// Re-read inside the critical section so the transition decision is
	// not based on a stale status.
	b, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !b.Status.CanTransition(next) {
		return nil, ErrInvalidTransition
	}

	// Flag side effect before the status write: if it fails the status row
	// is untouched and the transition can simply be retried.
	if err := s.applyFlagSideEffect(ctx, b.TableID, next); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateStatus(ctx, id, next); err != nil {
		return nil, err
	}

	b.Status = next
	return b, nil
}

func (s *service) Cancel(ctx context.Context, id string, callerID string, callerIsAdmin bool) (*Booking, bool, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	if !callerIsAdmin && b.UserID != callerID {
		return nil, false, ErrPermissionDenied
	}

	unlock := s.locks.lock(b.TableID)
	defer unlock()

	b, err = s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, false, err
	}

	// Idempotent: a second cancel succeeds without side effects.
	if b.Status == StatusCancelled {
		return b, false, nil
	}

	if !b.Status.CanTransition(StatusCancelled) {
		return nil, false, ErrInvalidTransition
	}

	if err := s.applyFlagSideEffect(ctx, b.TableID, StatusCancelled); err != nil {
		return nil, false, err
	}

	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return nil, false, err
	}

	b.Status = StatusCancelled
	return b, true, nil
}

// applyFlagSideEffect resets the table's availability hint when a booking
// leaves the active set. The reset is unconditional even if other active
// bookings remain; the flag is a coarse signal, not the source of truth.
func (s *service) applyFlagSideEffect(ctx context.Context, tableID string, next Status) error {
	if next != StatusCancelled && next != StatusCompleted {
		return nil
	}
	if err := s.tables.SetAvailability(ctx, tableID, true); err != nil {
		return fmt.Errorf("reset table availability failed: %w", err)
	}
	return nil
}
