package response

import (
	"time"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	ItemID         uuid.UUID `json:"item_id"`
	ItemName       string    `json:"item_name"`
	ItemSlug       string    `json:"item_slug"`
	PackageType    string    `json:"package_type"`
	Adults         int32     `json:"adults"`
	Children       int32     `json:"children"`
	Rooms          int32     `json:"rooms"`
	StartDate      string    `json:"start_date" copier:"-"`
	EndDate        string    `json:"end_date" copier:"-"`
	PricePerPerson int64     `json:"price_per_person"`
	PeopleTotal    int64     `json:"people_total"`
	RoomCost       int64     `json:"room_cost"`
	Subtotal       int64     `json:"subtotal"`
	Discount       int64     `json:"discount"`
	Total          int64     `json:"total"`
	DiscountRate   float64   `json:"discount_rate"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type BookingListItemResponse struct {
	ID          uuid.UUID `json:"id"`
	ItemID      uuid.UUID `json:"item_id"`
	ItemName    string    `json:"item_name"`
	PackageType string    `json:"package_type"`
	StartDate   string    `json:"start_date" copier:"-"`
	EndDate     string    `json:"end_date" copier:"-"`
	Total       int64     `json:"total"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type BookingListResponse struct {
	Bookings   []BookingListItemResponse `json:"bookings"`
	NextCursor *string                   `json:"next_cursor"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, errs.Wrap(err, "map booking view")
	}
	res.StartDate = availability.DateKey(v.StartDate)
	res.EndDate = availability.DateKey(v.EndDate)
	return &res, nil
}

func FromBookingPage(page queries.Page[*queries.BookingListItem]) (*BookingListResponse, error) {
	bookings := make([]BookingListItemResponse, 0, len(page.Items))
	for _, b := range page.Items {
		var item BookingListItemResponse
		if err := copier.Copy(&item, b); err != nil {
			return nil, errs.Wrapf(err, "map booking %s", b.ID)
		}
		item.StartDate = availability.DateKey(b.StartDate)
		item.EndDate = availability.DateKey(b.EndDate)
		bookings = append(bookings, item)
	}
	return &BookingListResponse{
		Bookings:   bookings,
		NextCursor: nextCursor(page.Next),
	}, nil
}
