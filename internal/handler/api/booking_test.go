//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/user"
	"travel-booking/internal/handler/api"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/pkg/errs"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"
	"travel-booking/tests/common/builder"
	"travel-booking/tests/common/httptest"
	"travel-booking/tests/common/testutil"
	commandsmock "travel-booking/tests/mock/commands"
	queriesmock "travel-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.userID = uuid.New()
	handler := api.NewBookingHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", user.RoleCustomer)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, handler.Create)
	s.router.GET("/bookings", authMiddleware, handler.List)
	s.router.GET("/bookings/:id", authMiddleware, handler.Get)
	s.router.POST("/bookings/:id/cancel", authMiddleware, handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateDTO()
	view := b.BuildView()
	expectedCmd := commands.CreateBookingRequest{
		ItemID:      b.ItemID,
		PackageType: b.PackageType,
		StartDate:   b.StartDate,
		EndDate:     b.EndDate,
		Adults:      b.Adults,
		Children:    b.Children,
		Rooms:       b.Rooms,
	}

	s.Run("success: 201 Created for a new booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), expectedCmd, s.userID, (*uuid.UUID)(nil)).
			Return(&commands.CreateBookingResult{Booking: view}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal("2030-08-10", response.StartDate)
		s.Equal("2030-08-12", response.EndDate)
		s.Equal(view.Total, response.Total)
		s.Empty(rec.Header().Get("Idempotent-Replayed"))
	})

	s.Run("success: 200 OK with replay header for a repeated key", func() {
		key := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), expectedCmd, s.userID, &key).
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: true}, nil)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, map[string]string{
			"Authorization":   "Bearer bearer-token",
			"Idempotency-Key": key.String(),
		})

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Idempotent-Replayed": "true"})
	})

	s.Run("success: end date defaults to the start date", func() {
		single := expectedCmd
		single.EndDate = single.StartDate
		s.mockCommands.EXPECT().Create(gomock.Any(), single, s.userID, (*uuid.UUID)(nil)).
			Return(&commands.CreateBookingResult{Booking: view}, nil)

		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("end_date", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 Bad Request on malformed input", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "client-supplied total is rejected", mutate: testutil.Field("total", 1)},
			{name: "missing field: item_id", mutate: testutil.Field("item_id", nil)},
			{name: "missing field: package_type", mutate: testutil.Field("package_type", nil)},
			{name: "missing field: start_date", mutate: testutil.Field("start_date", nil)},
			{name: "start_date not a calendar day", mutate: testutil.Field("start_date", "10/08/2030")},
			{name: "negative adults", mutate: testutil.Field("adults", -1)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 Bad Request for a non-UUID idempotency key", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, map[string]string{
			"Authorization":   "Bearer bearer-token",
			"Idempotency-Key": "not-a-uuid",
		})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Idempotency-Key")
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name          string
			err           error
			expectCode    int
			expectMessage string
		}{
			{"stale availability", availability.ErrStaleAvailability, http.StatusConflict, "slots filled since you selected"},
			{"idempotency mismatch", errs.ErrIdempotencyMismatch, http.StatusConflict, "different request"},
			{"idempotency in progress", errs.ErrIdempotencyInProgress, http.StatusConflict, "still being processed"},
			{"item not found", commands.ErrItemNotFound, http.StatusNotFound, "Item not found"},
			{"date unavailable", availability.ErrDateUnavailable, http.StatusUnprocessableEntity, ""},
			{"party does not fit", booking.ErrPartyComposition, http.StatusBadRequest, ""},
			{"too many nights", commands.ErrTooManyNights, http.StatusBadRequest, ""},
			{"unknown package", booking.ErrInvalidPackageType, http.StatusBadRequest, ""},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.expectMessage)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestList() {
	b := builder.NewBookingBuilder()
	next := queries.NewCursor(queries.EncodeAfterCursor(time.Now(), uuid.New()))

	s.Run("success: returns bookings with the next cursor", func() {
		page := queries.Page[*queries.BookingListItem]{
			Items: []*queries.BookingListItem{b.BuildListItem(), b.BuildListItem()},
			Next:  next,
		}
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, (*queries.Cursor)(nil), 2).Return(page, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=2", nil, "bearer-token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Bookings, 2)
		s.Require().NotNil(response.NextCursor)
		s.Equal(next.After, *response.NextCursor)
		s.Equal("2030-08-10", response.Bookings[0].StartDate)
	})

	s.Run("success: passes the cursor through", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, &queries.Cursor{After: "abc"}, 0).
			Return(queries.Page[*queries.BookingListItem]{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?cursor=abc", nil, "bearer-token")

		var response resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Bookings)
		s.Nil(response.NextCursor)
	})

	s.Run("error: 400 for a broken cursor", func() {
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).
			Return(queries.Page[*queries.BookingListItem]{}, errs.Mark(errs.New("bad base64"), queries.ErrInvalidCursor))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?cursor=zzz", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 for a limit above the maximum", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?limit=500", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()

	s.Run("success: owner reads the booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, user.RoleCustomer, view.ID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 404 for another customer's booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, user.RoleCustomer, view.ID).
			Return(nil, errs.Mark(queries.ErrBookingAccess, queries.ErrBookingNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/bookings/" + id.String() + "/cancel"

	s.Run("success: 204 No Content", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.userID, user.RoleCustomer).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"already canceled", booking.ErrBookingCanceled, http.StatusUnprocessableEntity},
			{"start day reached", booking.ErrCancellationClosed, http.StatusUnprocessableEntity},
			{"not found", commands.ErrBookingNotFound, http.StatusNotFound},
			{"not the owner", errs.Mark(commands.ErrBookingAccess, commands.ErrBookingNotFound), http.StatusNotFound},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Cancel(gomock.Any(), id, s.userID, user.RoleCustomer).Return(tc.err)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}
