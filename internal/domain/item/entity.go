package item

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyItemName   = errors.New("item name cannot be empty")
	ErrItemNameTooLong = errors.New("item name is too long (max 255 characters)")
	ErrInvalidSlug     = errors.New("invalid item slug")
	ErrInvalidKind     = errors.New("invalid item kind")
	ErrNegativePrice   = errors.New("base price cannot be negative")
	ErrItemInactive    = errors.New("item is not bookable")
)

const (
	MaxItemNameLength = 255
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type Kind string

const (
	KindDestination Kind = "destination"
	KindActivity    Kind = "activity"
)

func NewKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindDestination, KindActivity:
		return Kind(s), nil
	default:
		return "", ErrInvalidKind
	}
}

func (k Kind) String() string { return string(k) }

// Item is a bookable destination package or activity.
type Item struct {
	id          uuid.UUID
	kind        Kind
	slug        string
	name        string
	description string
	location    string
	basePrice   int64
	isActive    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewItem(kind Kind, slug, name, description, location string, basePrice int64) (*Item, error) {
	if _, err := NewKind(kind.String()); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !slugRegex.MatchString(slug) {
		return nil, ErrInvalidSlug
	}
	if basePrice < 0 {
		return nil, ErrNegativePrice
	}

	return &Item{
		id:          uuid.New(),
		kind:        kind,
		slug:        slug,
		name:        strings.TrimSpace(name),
		description: description,
		location:    location,
		basePrice:   basePrice,
		isActive:    true,
	}, nil
}

func ReconstructItem(
	id uuid.UUID,
	kind Kind,
	slug, name, description, location string,
	basePrice int64,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Item {
	return &Item{
		id:          id,
		kind:        kind,
		slug:        slug,
		name:        name,
		description: description,
		location:    location,
		basePrice:   basePrice,
		isActive:    isActive,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (i *Item) EnsureBookable() error {
	if !i.isActive {
		return ErrItemInactive
	}
	return nil
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyItemName
	}
	if len(name) > MaxItemNameLength {
		return ErrItemNameTooLong
	}
	return nil
}

func (i *Item) ID() uuid.UUID        { return i.id }
func (i *Item) Kind() Kind           { return i.kind }
func (i *Item) Slug() string         { return i.slug }
func (i *Item) Name() string         { return i.name }
func (i *Item) Description() string  { return i.description }
func (i *Item) Location() string     { return i.location }
func (i *Item) BasePrice() int64     { return i.basePrice }
func (i *Item) IsActive() bool       { return i.isActive }
func (i *Item) CreatedAt() time.Time { return i.createdAt }
func (i *Item) UpdatedAt() time.Time { return i.updatedAt }
