package discount

import (
	"errors"
	"time"

	"travel-booking/internal/domain/booking"

	"github.com/google/uuid"
)

var (
	ErrInvalidPercentage = errors.New("discount percentage must be between 1 and 90")
)

const (
	MinPercentage = 1
	MaxPercentage = 90
)

// Source tells which rule produced the effective discount rate.
type Source string

const (
	SourcePackage Source = "package"
	SourceItem    Source = "item"
	SourceVariant Source = "variant"
)

// Discount is attached to an item, or to one package variant of it when
// packageType is set.
type Discount struct {
	id          uuid.UUID
	itemID      uuid.UUID
	packageType *booking.PackageType
	percentage  int
	validUntil  time.Time
}

func NewDiscount(
	id, itemID uuid.UUID,
	packageType *booking.PackageType,
	percentage int,
	validUntil time.Time,
) (*Discount, error) {
	if percentage < MinPercentage || percentage > MaxPercentage {
		return nil, ErrInvalidPercentage
	}
	if packageType != nil && !packageType.IsValid() {
		return nil, booking.ErrInvalidPackageType
	}

	return &Discount{
		id:          id,
		itemID:      itemID,
		packageType: packageType,
		percentage:  percentage,
		validUntil:  validUntil,
	}, nil
}

// IsActiveAt holds through the whole validUntil day (UTC).
func (d *Discount) IsActiveAt(t time.Time) bool {
	u := t.UTC()
	today := time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	v := d.validUntil.UTC()
	until := time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC)
	return !today.After(until)
}

func (d *Discount) Rate() float64 {
	return float64(d.percentage) / 100.0
}

func (d *Discount) appliesTo(pt booking.PackageType) bool {
	return d.packageType != nil && *d.packageType == pt
}

func (d *Discount) ID() uuid.UUID                     { return d.id }
func (d *Discount) ItemID() uuid.UUID                 { return d.itemID }
func (d *Discount) PackageType() *booking.PackageType { return d.packageType }
func (d *Discount) Percentage() int                   { return d.percentage }
func (d *Discount) ValidUntil() time.Time             { return d.validUntil }

// EffectiveRate resolves the discount rate for one package. An active
// variant discount beats an active item-wide one, and either replaces the
// package's built-in rate. Ties at the same level take the larger percentage.
func EffectiveRate(pt booking.PackageType, discounts []*Discount, now time.Time) (float64, Source, error) {
	cfg, err := booking.ConfigFor(pt)
	if err != nil {
		return 0, "", err
	}

	var variant, itemWide *Discount
	for _, d := range discounts {
		if !d.IsActiveAt(now) {
			continue
		}
		switch {
		case d.appliesTo(pt):
			if variant == nil || d.percentage > variant.percentage {
				variant = d
			}
		case d.packageType == nil:
			if itemWide == nil || d.percentage > itemWide.percentage {
				itemWide = d
			}
		}
	}

	switch {
	case variant != nil:
		return variant.Rate(), SourceVariant, nil
	case itemWide != nil:
		return itemWide.Rate(), SourceItem, nil
	default:
		return cfg.DiscountRate, SourcePackage, nil
	}
}
