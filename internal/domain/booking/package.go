package booking

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPackageType  = errors.New("invalid package type")
	ErrInvalidBookingInput = errors.New("invalid booking input")

	ErrPartyComposition = fmt.Errorf("%w: party does not fit the package", ErrInvalidBookingInput)
	ErrEmptyParty       = fmt.Errorf("%w: party must include at least one person", ErrInvalidBookingInput)
	ErrRoomsOutOfRange  = fmt.Errorf("%w: room count outside the allowed range", ErrInvalidBookingInput)
	ErrInvalidDateRange = fmt.Errorf("%w: end date must not be before start date", ErrInvalidBookingInput)
)

type PackageType string

const (
	PackageSolo    PackageType = "solo"
	PackageFamily  PackageType = "family"
	PackagePrivate PackageType = "private"
	PackageGroup   PackageType = "group"
)

func NewPackageType(s string) (PackageType, error) {
	pt := PackageType(s)
	if !pt.IsValid() {
		return "", ErrInvalidPackageType
	}
	return pt, nil
}

func (p PackageType) String() string {
	return string(p)
}

func (p PackageType) IsValid() bool {
	_, ok := packageConfigs[p]
	return ok
}

func AllPackageTypes() []PackageType {
	return []PackageType{PackageSolo, PackageFamily, PackagePrivate, PackageGroup}
}

type PackageConfig struct {
	MinAdults     int
	MaxAdults     int
	AllowChildren bool
	// DiscountRate is in [0,1).
	DiscountRate float64
}

var packageConfigs = map[PackageType]PackageConfig{
	PackageSolo:    {MinAdults: 1, MaxAdults: 1, AllowChildren: false, DiscountRate: 0},
	PackageFamily:  {MinAdults: 1, MaxAdults: 6, AllowChildren: true, DiscountRate: 0.10},
	PackagePrivate: {MinAdults: 1, MaxAdults: 12, AllowChildren: false, DiscountRate: 0.05},
	PackageGroup:   {MinAdults: 2, MaxAdults: 30, AllowChildren: true, DiscountRate: 0.15},
}

func ConfigFor(pt PackageType) (PackageConfig, error) {
	cfg, ok := packageConfigs[pt]
	if !ok {
		return PackageConfig{}, ErrInvalidPackageType
	}
	return cfg, nil
}

// ValidateParty checks the party against the package's adult range and child policy.
func (c PackageConfig) ValidateParty(p Party) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.Adults < c.MinAdults || p.Adults > c.MaxAdults {
		return fmt.Errorf("%w: adults must be between %d and %d", ErrPartyComposition, c.MinAdults, c.MaxAdults)
	}
	if p.Children > 0 && !c.AllowChildren {
		return fmt.Errorf("%w: children are not allowed for this package", ErrPartyComposition)
	}
	return nil
}
