//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	"shareit/tests/common/testutil"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const (
	ownerHeader  = "1"
	bookerHeader = "2"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)

	s.router.Use(middleware.ErrorHandler())
	bookings := s.router.Group("/bookings", middleware.RequireSharerUserID())
	bookings.POST("", s.handler.Create)
	bookings.GET("", s.handler.ListByBooker)
	bookings.GET("/owner", s.handler.ListByOwner)
	bookings.GET("/:bookingId", s.handler.Get)
	bookings.PATCH("/:bookingId", s.handler.Decide)
	bookings.PATCH("/:bookingId/cancel", s.handler.Cancel)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	fixture := builder.NewBookingBuilder().WithParties(1, 2)
	reqBody := fixture.BuildCreateRequestDTO()
	returnView := fixture.BuildView()
	expectedResult := &commands.CreateBookingResult{BookingID: returnView.ID}

	s.Run("success: returns 201 Created with booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), int64(2)).
			DoAndReturn(func(_ any, in commands.CreateBookingInput, _ int64) (*commands.CreateBookingResult, error) {
				s.Equal(fixture.ItemID, in.ItemID)
				s.True(in.Start.Equal(fixture.Start))
				s.True(in.End.Equal(fixture.End))
				return expectedResult, nil
			}).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID, int64(2)).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bookerHeader)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal("WAITING", body.Status)
		s.Equal(fixture.ItemName, body.Item.Name)
		s.Equal(int64(2), body.Booker.ID)
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": "/bookings/1"})
	})

	s.Run("error: 400 Bad Request on malformed body", func() {
		cases := []testCaseBooking{
			{name: "missing field: itemId", mutate: testutil.Field("itemId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: start", mutate: testutil.Field("start", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: end", mutate: testutil.Field("end", nil), expectCode: http.StatusBadRequest},
			{name: "itemId zero", mutate: testutil.Field("itemId", 0), expectCode: http.StatusBadRequest},
			{name: "start not a timestamp", mutate: testutil.Field("start", "tomorrow"), expectCode: http.StatusBadRequest},
			{name: "end equals start", mutate: testutil.Field("end", fixture.Start.Format(time.RFC3339)), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, bookerHeader)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "Invalid request")
			})
		}
	})

	s.Run("error: inverted interval is refused before the use case", func() {
		// no Create expectation: the mock fails the test if the handler reaches it
		body := map[string]any{
			"itemId": 999,
			"start":  "2030-01-01T12:00:00Z",
			"end":    "2030-01-01T10:00:00Z",
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, bookerHeader)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")

		var resp struct {
			Detail []struct {
				Field string `json:"field"`
				Rule  string `json:"rule"`
			} `json:"detail"`
		}
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
		s.Require().Len(resp.Detail, 1)
		s.Equal("End", resp.Detail[0].Field)
		s.Equal("gtfield", resp.Detail[0].Rule)
	})

	s.Run("error: 400 Bad Request on bad sharer header", func() {
		for _, header := range []string{"", "abc", "0", "-3"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, header)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid X-Sharer-User-Id header")
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{"item missing", booking.ErrItemNotFound, http.StatusNotFound, "item not found"},
			{"booker missing", booking.ErrUserNotFound, http.StatusNotFound, "user not found"},
			{"item unavailable", booking.ErrItemUnavailable, http.StatusBadRequest, "item not available"},
			{"end not after start", booking.ErrInvalidInterval, http.StatusBadRequest, "invalid interval"},
			{"own item", booking.ErrSelfBooking, http.StatusForbidden, "cannot book own item"},
			{"overlap", booking.ErrOverlap, http.StatusForbidden, "overlapping booking"},
			{"unexpected failure", errors.New("pq: connection refused"), http.StatusInternalServerError, "Internal server error"},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any(), int64(2)).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, bookerHeader)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
				s.NotContains(rec.Body.String(), "connection refused")
			})
		}
	})
}

// ================================================================================
// TestDecide / TestCancel
// ================================================================================

func (s *BookingHandlerTestSuite) TestDecide() {
	approvedView := builder.NewBookingBuilder().WithID(7).WithStatus(booking.StatusApproved).BuildView()

	s.Run("success: owner approves", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), int64(7), true, int64(1)).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(7), int64(1)).Return(approvedView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/7?approved=true", nil, ownerHeader)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("APPROVED", body.Status)
	})

	s.Run("success: owner rejects", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), int64(7), false, int64(1)).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(7), int64(1)).Return(approvedView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/7?approved=false", nil, ownerHeader)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: approved parameter missing or malformed", func() {
		for _, url := range []string{"/bookings/7", "/bookings/7?approved=maybe"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, ownerHeader)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "approved must be true or false")
		}
	})

	s.Run("error: invalid booking id", func() {
		for _, url := range []string{"/bookings/abc?approved=true", "/bookings/0?approved=true"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, nil, ownerHeader)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid booking id")
		}
	})

	s.Run("error: repeated decision is forbidden", func() {
		resolved := builder.NewBookingBuilder().WithStatus(booking.StatusApproved).BuildDomain()
		alreadyResolved := resolved.Decide(resolved.OwnerID(), booking.DecisionReject)
		s.Require().Error(alreadyResolved)

		s.mockCommands.EXPECT().Decide(gomock.Any(), int64(7), false, int64(1)).Return(alreadyResolved).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/7?approved=false", nil, ownerHeader)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "booking already resolved: APPROVED")
	})

	s.Run("error: non-owner is forbidden", func() {
		s.mockCommands.EXPECT().Decide(gomock.Any(), int64(7), true, int64(2)).Return(booking.ErrNotItemOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/7?approved=true", nil, bookerHeader)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not item owner")
	})
}

func (s *BookingHandlerTestSuite) TestCancel() {
	canceledView := builder.NewBookingBuilder().WithID(7).WithStatus(booking.StatusCanceled).BuildView()

	s.Run("success: booker cancels", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(7), int64(2)).Return(nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(7), int64(2)).Return(canceledView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/7/cancel", nil, bookerHeader)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("CANCELED", body.Status)
	})

	s.Run("error: owner cannot cancel", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), int64(7), int64(1)).Return(booking.ErrNotBooker).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/7/cancel", nil, ownerHeader)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "not booker")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().WithID(5).BuildView()

	s.Run("success: returns 200 OK with booking", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(5), int64(2)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/5", nil, bookerHeader)

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(5), body.ID)
		s.True(body.Start.Equal(view.Start))
	})

	s.Run("error: 404 when not visible", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(5), int64(3)).Return(nil, booking.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/5", nil, "3")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "booking not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	s.Run("success: booker list passes state and page through", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in queries.ListBookingsInput) ([]*queries.BookingView, error) {
				s.Equal(booking.ViewpointBooker, in.Viewpoint)
				s.Equal("PAST", in.State)
				s.Equal(int64(2), in.SubjectID)
				s.Require().NotNil(in.From)
				s.Require().NotNil(in.Size)
				s.Equal(10, *in.From)
				s.Equal(5, *in.Size)
				return []*queries.BookingView{builder.NewBookingBuilder().BuildView()}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=PAST&from=10&size=5", nil, bookerHeader)

		var body []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
	})

	s.Run("success: owner list defaults", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in queries.ListBookingsInput) ([]*queries.BookingView, error) {
				s.Equal(booking.ViewpointOwner, in.Viewpoint)
				s.Empty(in.State)
				s.Nil(in.From)
				s.Nil(in.Size)
				return []*queries.BookingView{}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner", nil, ownerHeader)

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		s.JSONEq("[]", rec.Body.String())
	})

	s.Run("error: unknown state", func() {
		_, parseErr := booking.ParseStateFilter("BOGUS")
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, parseErr).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=BOGUS", nil, bookerHeader)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "unknown state: BOGUS")
	})

	s.Run("error: non-numeric size", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner?size=ten", nil, ownerHeader)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
