//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"stay-booking/internal/domain/reservation"
	"stay-booking/internal/domain/user"
	"stay-booking/internal/handler/api"
	resdto "stay-booking/internal/handler/dto/response"
	"stay-booking/internal/pkg/errs"
	"stay-booking/internal/usecase/queries"
	"stay-booking/tests/common/builder"
	"stay-booking/tests/common/httptest"
	queriesmock "stay-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PropertyHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockCtrl         *gomock.Controller
	mockProperties   *queriesmock.MockPropertyQueries
	mockReservations *queriesmock.MockReservationQueries
	mockAccess       *queriesmock.MockAccessPolicy
	handler          *api.PropertyHandler

	ownerID    uuid.UUID
	propertyID uuid.UUID
}

func (s *PropertyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockProperties = queriesmock.NewMockPropertyQueries(s.mockCtrl)
	s.mockReservations = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.mockAccess = queriesmock.NewMockAccessPolicy(s.mockCtrl)
	s.handler = api.NewPropertyHandler(s.mockProperties, s.mockReservations, s.mockAccess)

	s.ownerID = uuid.New()
	s.propertyID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.ownerID)
		c.Set("user_role", user.RoleHost)
		c.Next()
	}

	s.router.GET("/properties/:id/availability", s.handler.Availability)
	s.router.GET("/properties/:id/quote", s.handler.Quote)
	s.router.GET("/properties/:id/reservations", authMiddleware, s.handler.ListReservations)
	s.router.GET("/properties/:id/calendar", authMiddleware, s.handler.Calendar)
	s.router.GET("/properties/:id/current-count", authMiddleware, s.handler.CurrentCount)
}

func (s *PropertyHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPropertyHandlerSuite(t *testing.T) {
	suite.Run(t, new(PropertyHandlerTestSuite))
}

func (s *PropertyHandlerTestSuite) path(suffix string) string {
	return "/properties/" + s.propertyID.String() + suffix
}

func (s *PropertyHandlerTestSuite) allowOwner() {
	s.mockAccess.EXPECT().ResolvePropertyAccess(gomock.Any(), s.propertyID, s.ownerID, user.RoleHost).
		Return(queries.Access{IsPropertyOwner: true}, nil).Times(1)
}

// ================================================================================
// TestAvailability
// ================================================================================

func (s *PropertyHandlerTestSuite) TestAvailability() {
	checkIn := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)

	s.Run("success: reports availability without authentication", func() {
		s.mockProperties.EXPECT().IsAvailable(gomock.Any(), s.propertyID, reservation.NewStayPeriod(checkIn, checkOut)).
			Return(&queries.AvailabilityView{PropertyID: s.propertyID, CheckIn: checkIn, CheckOut: checkOut, Available: false}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/availability?check_in=2024-07-01&check_out=2024-07-04"), nil, "")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Available)
		s.Equal("2024-07-01", body.CheckInDate)
		s.Equal("2024-07-04", body.CheckOutDate)
	})

	s.Run("error: 400 on bad input", func() {
		testCases := []struct {
			name string
			path string
			msg  string
		}{
			{name: "bad property id", path: "/properties/xyz/availability?check_in=2024-07-01&check_out=2024-07-04", msg: "Invalid property ID format"},
			{name: "missing check_out", path: s.path("/availability?check_in=2024-07-01"), msg: "check_in and check_out are required"},
			{name: "unparseable date", path: s.path("/availability?check_in=July&check_out=2024-07-04"), msg: "Invalid request"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, tc.path, nil, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, tc.msg)
			})
		}
	})
}

// ================================================================================
// TestQuote
// ================================================================================

func (s *PropertyHandlerTestSuite) TestQuote() {
	b := builder.NewReservationBuilder().With(func(b *builder.ReservationBuilder) {
		b.PropertyID = s.propertyID
		b.CheckIn = time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
		b.CheckOut = time.Date(2024, 7, 4, 0, 0, 0, 0, time.UTC)
	})
	breakdown := b.Quote()

	s.Run("success: returns the breakdown", func() {
		s.mockProperties.EXPECT().Quote(gomock.Any(), s.propertyID, b.Period()).
			Return(&queries.QuoteView{PropertyID: s.propertyID, CheckIn: b.CheckIn, CheckOut: b.CheckOut, Breakdown: breakdown}, nil).
			Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/quote?check_in=2024-07-01&check_out=2024-07-04"), nil, "")

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(3, body.NumberOfDays)
		s.Equal(breakdown.Total.Cents(), body.TotalCents)
		s.Equal(breakdown.Subtotal.String(), body.Subtotal)
	})

	s.Run("error: maps query errors", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "unknown property", err: errs.ErrPropertyNotFound, expectedStatus: http.StatusNotFound, expectedMsg: "Property not found"},
			{name: "past check-in", err: &reservation.ValidationError{Kind: reservation.KindPastDate}, expectedStatus: http.StatusBadRequest, expectedMsg: "in the past"},
			{name: "reversed range", err: &reservation.ValidationError{Kind: reservation.KindInvalidDateRange}, expectedStatus: http.StatusBadRequest, expectedMsg: "check-out date must be after"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockProperties.EXPECT().Quote(gomock.Any(), s.propertyID, gomock.Any()).Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/quote?check_in=2024-07-01&check_out=2024-07-04"), nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestListReservations
// ================================================================================

func (s *PropertyHandlerTestSuite) TestListReservations() {
	view := builder.NewReservationBuilder().WithPropertyID(s.propertyID).BuildView()

	s.Run("success: owner lists reservations", func() {
		s.allowOwner()
		s.mockReservations.EXPECT().ListByProperty(gomock.Any(), s.propertyID, "", 25).
			Return(&queries.Page{Items: []*queries.ReservationView{view}}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/reservations?limit=25"), nil, "bearer-token")

		var body resdto.ReservationPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Nil(body.NextCursor)
	})

	s.Run("error: 403 for a host who does not own the property", func() {
		s.mockAccess.EXPECT().ResolvePropertyAccess(gomock.Any(), s.propertyID, s.ownerID, user.RoleHost).
			Return(queries.Access{}, errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/reservations"), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Forbidden")
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/reservations"), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestCalendar
// ================================================================================

func (s *PropertyHandlerTestSuite) TestCalendar() {
	s.Run("success: returns the month", func() {
		view := builder.NewReservationBuilder().WithPropertyID(s.propertyID).BuildView()
		s.allowOwner()
		s.mockReservations.EXPECT().MonthlyCalendar(gomock.Any(), s.propertyID, 2024, time.August).
			Return(&queries.CalendarView{
				PropertyID:   s.propertyID,
				Year:         2024,
				Month:        time.August,
				Reservations: []*queries.ReservationView{view},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/calendar?year=2024&month=8"), nil, "bearer-token")

		var body resdto.CalendarResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(8, body.Month)
		s.Len(body.Reservations, 1)
	})

	s.Run("error: 400 on month out of range", func() {
		for _, q := range []string{"year=2024&month=13", "year=2024", "month=5"} {
			s.allowOwner()
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/calendar?"+q), nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid query parameters")
		}
	})
}

// ================================================================================
// TestCurrentCount
// ================================================================================

func (s *PropertyHandlerTestSuite) TestCurrentCount() {
	s.allowOwner()
	s.mockReservations.EXPECT().CountCurrent(gomock.Any(), s.propertyID).Return(int64(2), nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, s.path("/current-count"), nil, "bearer-token")

	var body resdto.CurrentCountResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(s.propertyID, body.PropertyID)
	s.Equal(int64(2), body.Count)
}
