package availability

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"travel-booking/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrDateUnavailable   = errors.New("selected date is not available")
	ErrStaleAvailability = errors.New("slots filled since you selected, please choose another date")
	ErrNoAvailableDates  = fmt.Errorf("%w: item has no open dates", ErrDateUnavailable)
	ErrInvalidSlots      = errors.New("available slots must be between 0 and total slots")
	ErrDateInPast        = errors.New("date is in the past")
)

const DateLayout = "2006-01-02"

func DateKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

func dayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// Map is a read-only snapshot of remaining slots keyed by ISO date.
type Map map[string]int

func (m Map) Slots(date time.Time) (int, bool) {
	slots, ok := m[DateKey(date)]
	return slots, ok
}

// IsDateBookable reports whether the date has remaining slots and is not
// before now's calendar day (UTC).
func IsDateBookable(date time.Time, m Map, now time.Time) bool {
	if dayOf(date).Before(dayOf(now)) {
		return false
	}
	slots, ok := m.Slots(date)
	return ok && slots > 0
}

func (m Map) Check(date time.Time, now time.Time) error {
	if !IsDateBookable(date, m, now) {
		return ErrDateUnavailable
	}
	return nil
}

type AvailableDate struct {
	itemID         uuid.UUID
	packageType    *booking.PackageType
	date           time.Time
	availableSlots int
	totalSlots     int
}

func NewAvailableDate(
	itemID uuid.UUID,
	packageType *booking.PackageType,
	date time.Time,
	totalSlots, availableSlots int,
	today time.Time,
) (*AvailableDate, error) {
	if packageType != nil && !packageType.IsValid() {
		return nil, booking.ErrInvalidPackageType
	}
	if totalSlots < 0 || availableSlots < 0 || availableSlots > totalSlots {
		return nil, ErrInvalidSlots
	}
	day := dayOf(date)
	if day.Before(dayOf(today)) {
		return nil, ErrDateInPast
	}

	return &AvailableDate{
		itemID:         itemID,
		packageType:    packageType,
		date:           day,
		availableSlots: availableSlots,
		totalSlots:     totalSlots,
	}, nil
}

func ReconstructAvailableDate(
	itemID uuid.UUID,
	packageType *booking.PackageType,
	date time.Time,
	availableSlots, totalSlots int,
) *AvailableDate {
	return &AvailableDate{
		itemID:         itemID,
		packageType:    packageType,
		date:           dayOf(date),
		availableSlots: availableSlots,
		totalSlots:     totalSlots,
	}
}

// Reserve takes one slot. A zero count at booking time means the caller's
// snapshot was stale.
func (a *AvailableDate) Reserve() error {
	if a.availableSlots <= 0 {
		return ErrStaleAvailability
	}
	a.availableSlots--
	return nil
}

func (a *AvailableDate) Release() {
	if a.availableSlots < a.totalSlots {
		a.availableSlots++
	}
}

func (a *AvailableDate) ItemID() uuid.UUID                 { return a.itemID }
func (a *AvailableDate) PackageType() *booking.PackageType { return a.packageType }
func (a *AvailableDate) Date() time.Time                   { return a.date }
func (a *AvailableDate) AvailableSlots() int               { return a.availableSlots }
func (a *AvailableDate) TotalSlots() int                   { return a.totalSlots }

// Resolve picks the effective row per date, ordered by date. Rows for the
// requested package win over rows that apply to any package on the same date.
// With a nil package only any-package rows are considered.
func Resolve(dates []*AvailableDate, pt *booking.PackageType) []*AvailableDate {
	byDate := make(map[string]*AvailableDate, len(dates))
	for _, d := range dates {
		key := DateKey(d.date)
		switch {
		case d.packageType == nil:
			if cur, ok := byDate[key]; !ok || cur.packageType == nil {
				byDate[key] = d
			}
		case pt != nil && *d.packageType == *pt:
			byDate[key] = d
		}
	}

	out := make([]*AvailableDate, 0, len(byDate))
	for _, d := range byDate {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].date.Before(out[j].date) })
	return out
}

func BuildMap(dates []*AvailableDate, pt *booking.PackageType) Map {
	resolved := Resolve(dates, pt)
	m := make(Map, len(resolved))
	for _, d := range resolved {
		m[DateKey(d.date)] = d.availableSlots
	}
	return m
}
