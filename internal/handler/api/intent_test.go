//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	"travel-booking/internal/domain/discount"
	"travel-booking/internal/domain/intent"
	"travel-booking/internal/handler/api"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/infra/cache"
	"travel-booking/internal/usecase/commands"
	"travel-booking/tests/common/httptest"
	commandsmock "travel-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type IntentHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockIntents *commandsmock.MockIntentCommands
	mockQuotes  *commandsmock.MockQuoteCommands
	userID      uuid.UUID
	itemID      uuid.UUID
	day         time.Time
}

func (s *IntentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockIntents = commandsmock.NewMockIntentCommands(s.mockCtrl)
	s.mockQuotes = commandsmock.NewMockQuoteCommands(s.mockCtrl)
	s.userID = uuid.New()
	s.itemID = uuid.New()
	s.day = time.Date(2030, 8, 10, 0, 0, 0, 0, time.UTC)

	// stands in for OptionalAuth/RequireAuth
	identity := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		c.Next()
	}

	intents := api.NewIntentHandler(s.mockIntents)
	quotes := api.NewQuoteHandler(s.mockQuotes)
	s.router.POST("/booking-intents", identity, intents.Submit)
	s.router.POST("/booking-intents/:id/resume", identity, intents.Resume)
	s.router.POST("/quotes", quotes.Quote)
}

func (s *IntentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestIntentHandlerSuite(t *testing.T) {
	suite.Run(t, new(IntentHandlerTestSuite))
}

func (s *IntentHandlerTestSuite) intentBody() map[string]any {
	return map[string]any{
		"item_id":      s.itemID.String(),
		"package_type": "family",
		"start_date":   "2030-08-10",
		"adults":       2,
		"children":     1,
		"rooms":        1,
	}
}

func (s *IntentHandlerTestSuite) result(stage intent.Stage, expiresAt *time.Time) *commands.IntentResult {
	return &commands.IntentResult{
		ID:          uuid.New(),
		Stage:       stage,
		ItemID:      s.itemID,
		PackageType: booking.PackageFamily,
		StartDate:   s.day,
		Party:       booking.Party{Adults: 2, Children: 1},
		Rooms:       1,
		Pricing:     booking.PricingResult{PricePerPerson: 1000, PeopleTotal: 2500, Subtotal: 2500, Total: 2500},
		ExpiresAt:   expiresAt,
	}
}

func (s *IntentHandlerTestSuite) TestSubmit() {
	expectedCmd := commands.SubmitIntentRequest{
		ItemID:      s.itemID,
		PackageType: "family",
		StartDate:   s.day,
		Adults:      2,
		Children:    1,
		Rooms:       1,
	}

	s.Run("success: signed-in buyer is sent to confirmation", func() {
		uid := s.userID
		s.mockIntents.EXPECT().Submit(gomock.Any(), expectedCmd, &uid).
			Return(s.result(intent.StageRedirectToConfirm, nil), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/booking-intents", s.intentBody(), "token")

		var response resdto.IntentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("redirect_to_confirm", response.Stage)
		s.Equal("2030-08-10", response.StartDate)
		s.Equal(int64(2500), response.Pricing.Total)
		s.Nil(response.ExpiresAt)
	})

	s.Run("success: anonymous buyer gets a stored intent", func() {
		expires := time.Now().Add(30 * time.Minute).UTC().Truncate(time.Second)
		s.mockIntents.EXPECT().Submit(gomock.Any(), expectedCmd, (*uuid.UUID)(nil)).
			Return(s.result(intent.StageStoredIntentPendingLogin, &expires), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/booking-intents", s.intentBody(), "")

		var response resdto.IntentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusAccepted, &response)
		s.Equal("stored_intent_pending_login", response.Stage)
		s.Require().NotNil(response.ExpiresAt)
		s.True(expires.Equal(*response.ExpiresAt))
	})

	s.Run("error: maps failures to proper statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"date unavailable", availability.ErrDateUnavailable, http.StatusUnprocessableEntity},
			{"date in the past", availability.ErrDateInPast, http.StatusBadRequest},
			{"party does not fit", booking.ErrPartyComposition, http.StatusBadRequest},
			{"intent store down", cache.ErrUnavailable, http.StatusServiceUnavailable},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockIntents.EXPECT().Submit(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/booking-intents", s.intentBody(), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 400 without a start date", func() {
		body := s.intentBody()
		delete(body, "start_date")
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/booking-intents", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *IntentHandlerTestSuite) TestResume() {
	id := uuid.New()
	url := "/booking-intents/" + id.String() + "/resume"

	s.Run("success: resumes to confirmation", func() {
		s.mockIntents.EXPECT().Resume(gomock.Any(), id, s.userID).
			Return(s.result(intent.StageRedirectToConfirm, nil), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var response resdto.IntentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("redirect_to_confirm", response.Stage)
	})

	s.Run("error: 409 when the date filled up meanwhile", func() {
		s.mockIntents.EXPECT().Resume(gomock.Any(), id, s.userID).Return(nil, availability.ErrStaleAvailability)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "slots filled")
	})

	s.Run("error: 404 for an expired intent", func() {
		s.mockIntents.EXPECT().Resume(gomock.Any(), id, s.userID).Return(nil, intent.ErrNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "expired")
	})

	s.Run("error: 401 without identity", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}

func (s *IntentHandlerTestSuite) TestQuote() {
	body := map[string]any{
		"item_id":      s.itemID.String(),
		"package_type": "private",
		"adults":       4,
		"children":     0,
		"rooms":        2,
	}

	s.Run("success: prices without a date", func() {
		expected := commands.QuoteRequest{ItemID: s.itemID, PackageType: "private", Adults: 4, Rooms: 2}
		s.mockQuotes.EXPECT().Quote(gomock.Any(), expected).Return(&commands.QuoteResult{
			ItemID:         s.itemID,
			PackageType:    booking.PackagePrivate,
			RoomLimits:     booking.RoomLimits{Min: 1, Max: 4},
			Pricing:        booking.PricingResult{PricePerPerson: 1000, PeopleTotal: 4000, RoomCost: 600, Subtotal: 4600, Discount: 460, Total: 4140},
			DiscountRate:   0.1,
			DiscountSource: discount.SourcePackage,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", body, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(4140), response.Pricing.Total)
		s.Equal(booking.RoomLimits{Min: 1, Max: 4}, response.RoomLimits)
		s.Equal("package", response.DiscountSource)
		s.Nil(response.Bookable)
	})

	s.Run("success: reports bookability for a date", func() {
		bookable, slots := false, 0
		day := s.day
		expected := commands.QuoteRequest{ItemID: s.itemID, PackageType: "private", Adults: 4, Rooms: 2, Date: &day}
		s.mockQuotes.EXPECT().Quote(gomock.Any(), expected).Return(&commands.QuoteResult{
			ItemID:         s.itemID,
			PackageType:    booking.PackagePrivate,
			Bookable:       &bookable,
			AvailableSlots: &slots,
		}, nil)

		withDate := map[string]any{}
		for k, v := range body {
			withDate[k] = v
		}
		withDate["date"] = "2030-08-10"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", withDate, "")

		var response resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.Bookable)
		s.False(*response.Bookable)
	})

	s.Run("error: 400 when rooms are out of range", func() {
		s.mockQuotes.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, booking.ErrRoomsOutOfRange)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: 404 for an unknown item", func() {
		s.mockQuotes.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, commands.ErrItemNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/quotes", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Item not found")
	})
}
