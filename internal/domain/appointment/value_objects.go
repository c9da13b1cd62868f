package appointment

import (
	"strings"
	"time"
)

const (
	MinDurationMinutes     = 15
	MaxDurationMinutes     = 480
	DefaultDurationMinutes = 60

	MaxServiceLength = 100
	MaxNotesLength   = 1000
)

type Duration struct {
	minutes int
}

func NewDuration(minutes int) (Duration, error) {
	if minutes < MinDurationMinutes || minutes > MaxDurationMinutes {
		return Duration{}, ErrInvalidDuration
	}
	return Duration{minutes: minutes}, nil
}

func (d Duration) Minutes() int { return d.minutes }

func (d Duration) Std() time.Duration {
	return time.Duration(d.minutes) * time.Minute
}

// Interval is a half-open [start, end) span of time.
type Interval struct {
	start time.Time
	end   time.Time
}

func NewInterval(start time.Time, durationMinutes int) Interval {
	return Interval{start: start, end: start.Add(time.Duration(durationMinutes) * time.Minute)}
}

func (i Interval) Start() time.Time { return i.start }
func (i Interval) End() time.Time   { return i.end }

func (i Interval) IsEmpty() bool {
	return !i.end.After(i.start)
}

// Overlaps is the half-open intersection test. Touching endpoints do not
// overlap. An empty interval strictly inside the other one does.
func (i Interval) Overlaps(o Interval) bool {
	return i.start.Before(o.end) && i.end.After(o.start)
}

type ServiceLabel struct {
	value string
}

func NewServiceLabel(s string) (ServiceLabel, error) {
	t := strings.TrimSpace(s)
	if len([]rune(t)) > MaxServiceLength {
		return ServiceLabel{}, ErrServiceTooLong
	}
	return ServiceLabel{value: t}, nil
}

func (l ServiceLabel) String() string { return l.value }
func (l ServiceLabel) IsEmpty() bool  { return l.value == "" }

type Notes struct {
	value string
}

func NewNotes(s string) (Notes, error) {
	t := strings.TrimSpace(s)
	if len([]rune(t)) > MaxNotesLength {
		return Notes{}, ErrNotesTooLong
	}
	return Notes{value: t}, nil
}

func (n Notes) String() string { return n.value }
func (n Notes) IsEmpty() bool  { return n.value == "" }
