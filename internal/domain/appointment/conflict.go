package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// LookbackSafetyMargin pads the candidate window beyond the longest possible
// appointment.
const LookbackSafetyMargin = time.Hour

// Lookback bounds how far before a candidate start an existing appointment
// may begin and still reach into the candidate. It must stay larger than the
// maximum duration or long appointments are silently missed.
const Lookback = time.Duration(MaxDurationMinutes)*time.Minute + LookbackSafetyMargin

const conflictTimeLayout = "3:04 PM"

// Booking is the slice of an existing appointment the checker compares
// against.
type Booking struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	PetID           uuid.UUID
	PetName         string
	Start           time.Time
	DurationMinutes int
	Status          Status
}

func (b Booking) End() time.Time {
	return b.Start.Add(time.Duration(b.DurationMinutes) * time.Minute)
}

func (b Booking) Interval() Interval {
	return NewInterval(b.Start, b.DurationMinutes)
}

type ConflictQuery struct {
	OwnerID         uuid.UUID
	Start           time.Time
	DurationMinutes int
	// ExcludeID is set on update so an appointment never conflicts with itself.
	ExcludeID *uuid.UUID
}

func (q ConflictQuery) Interval() Interval {
	return NewInterval(q.Start, q.DurationMinutes)
}

// WindowStart is the earliest start an existing appointment may have and
// still overlap the query.
func (q ConflictQuery) WindowStart() time.Time {
	return q.Start.Add(-Lookback)
}

func (q ConflictQuery) excludes(id uuid.UUID) bool {
	return q.ExcludeID != nil && *q.ExcludeID == id
}

// CandidateSource returns the scheduled appointments of one owner starting at
// or after from, minus excludeID.
type CandidateSource interface {
	ScheduledSince(ctx context.Context, ownerID uuid.UUID, from time.Time, excludeID *uuid.UUID) ([]Booking, error)
}

const (
	CheckResultClear    = "clear"
	CheckResultConflict = "conflict"
	CheckResultError    = "error"
)

type CheckObserver interface {
	ObserveConflictCheck(result string, candidates int)
}

type noopObserver struct{}

func (noopObserver) ObserveConflictCheck(string, int) {}

type ConflictChecker struct {
	source   CandidateSource
	observer CheckObserver
}

func NewConflictChecker(source CandidateSource, observer CheckObserver) *ConflictChecker {
	if observer == nil {
		observer = noopObserver{}
	}
	return &ConflictChecker{source: source, observer: observer}
}

// Check returns the first scheduled appointment of q.OwnerID overlapping the
// query interval, or nil. A failed candidate read is returned unchanged.
func (c *ConflictChecker) Check(ctx context.Context, q ConflictQuery) (*Booking, error) {
	if q.Interval().IsEmpty() {
		c.observer.ObserveConflictCheck(CheckResultClear, 0)
		return nil, nil
	}

	candidates, err := c.source.ScheduledSince(ctx, q.OwnerID, q.WindowStart(), q.ExcludeID)
	if err != nil {
		c.observer.ObserveConflictCheck(CheckResultError, 0)
		return nil, err
	}

	found := FindConflict(q, candidates)
	if found == nil {
		c.observer.ObserveConflictCheck(CheckResultClear, len(candidates))
		return nil, nil
	}
	c.observer.ObserveConflictCheck(CheckResultConflict, len(candidates))
	return found, nil
}

// FindConflict is the in-memory half of Check. It re-applies the owner,
// status and exclusion filters so any candidate slice can be passed in.
func FindConflict(q ConflictQuery, candidates []Booking) *Booking {
	want := q.Interval()
	if want.IsEmpty() {
		return nil
	}
	for i := range candidates {
		b := candidates[i]
		if b.OwnerID != q.OwnerID || !b.Status.Blocks() || q.excludes(b.ID) {
			continue
		}
		if want.Overlaps(b.Interval()) {
			return &b
		}
	}
	return nil
}

type ConflictError struct {
	Conflict Booking
	location *time.Location
}

func NewConflictError(conflict Booking, loc *time.Location) *ConflictError {
	if loc == nil {
		loc = time.UTC
	}
	return &ConflictError{Conflict: conflict, location: loc}
}

func (e *ConflictError) LocalStart() time.Time {
	return e.Conflict.Start.In(e.location)
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("This time slot conflicts with %s's appointment at %s",
		e.Conflict.PetName, e.LocalStart().Format(conflictTimeLayout))
}
