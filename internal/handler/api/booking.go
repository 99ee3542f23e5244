package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"shareit/internal/domain/booking"
	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var (
	errInvalidBookingID = errs.BadRequest("invalid booking id")
	errInvalidApproved  = errs.BadRequest("approved must be true or false")
	errMissingUser      = errs.New("sharer user id missing from context")
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Request an item for a time interval. The booking starts in WAITING.
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Booker id"
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	bookerID, ok := h.userID(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", validationDetail(err))
		return
	}

	result, err := h.cmds.Create(c.Request.Context(), req.ToInput(), bookerID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), result.BookingID, bookerID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/bookings/%d", result.BookingID))
	h.writeOne(c, http.StatusCreated, view)
}

// @Summary Approve or reject booking
// @Description The item owner resolves a WAITING booking.
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Item owner id"
// @Param bookingId path int true "Booking ID"
// @Param approved query bool true "true to approve, false to reject"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [patch]
func (h *BookingHandler) Decide(c *gin.Context) {
	actorID, ok := h.userID(c)
	if !ok {
		return
	}
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}
	var q reqdto.DecideBookingQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Mark(err, errInvalidApproved), errInvalidApproved.Error(), nil)
		return
	}

	if err := h.cmds.Decide(c.Request.Context(), bookingID, *q.Approved, actorID); err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.respondWithBooking(c, bookingID, actorID)
}

// @Summary Cancel booking
// @Description The booker withdraws a booking that is still WAITING.
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Booker id"
// @Param bookingId path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId}/cancel [patch]
func (h *BookingHandler) Cancel(c *gin.Context) {
	actorID, ok := h.userID(c)
	if !ok {
		return
	}
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}

	if err := h.cmds.Cancel(c.Request.Context(), bookingID, actorID); err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.respondWithBooking(c, bookingID, actorID)
}

// @Summary Get booking
// @Description Visible to the booker and the item owner only.
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Requester id"
// @Param bookingId path int true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	requesterID, ok := h.userID(c)
	if !ok {
		return
	}
	bookingID, ok := bookingIDParam(c)
	if !ok {
		return
	}
	h.respondWithBooking(c, bookingID, requesterID)
}

// @Summary List bookings made by the caller
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Booker id"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListByBooker(c *gin.Context) {
	h.list(c, booking.ViewpointBooker)
}

// @Summary List bookings of the caller's items
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Owner id"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Offset" default(0)
// @Param size query int false "Page size" default(20)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListByOwner(c *gin.Context) {
	h.list(c, booking.ViewpointOwner)
}

func (h *BookingHandler) list(c *gin.Context, viewpoint booking.Viewpoint) {
	subjectID, ok := h.userID(c)
	if !ok {
		return
	}
	var q reqdto.ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	views, err := h.q.List(c.Request.Context(), queries.ListBookingsInput{
		Viewpoint: viewpoint,
		State:     q.State,
		SubjectID: subjectID,
		From:      q.From,
		Size:      q.Size,
	})
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	res, err := resdto.FromBookingViews(views)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *BookingHandler) respondWithBooking(c *gin.Context, bookingID, requesterID int64) {
	view, err := h.q.GetByID(c.Request.Context(), bookingID, requesterID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	h.writeOne(c, http.StatusOK, view)
}

func (h *BookingHandler) writeOne(c *gin.Context, status int, view *queries.BookingView) {
	res, err := resdto.FromBookingView(view)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}
	c.JSON(status, res)
}

func (h *BookingHandler) userID(c *gin.Context) (int64, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		// RequireSharerUserID was not mounted on this route
		httperr.AbortWithError(c, http.StatusInternalServerError, errMissingUser, "Internal server error", nil)
	}
	return id, ok
}

func bookingIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("bookingId"), 10, 64)
	if err != nil || id <= 0 {
		if err == nil {
			err = errInvalidBookingID
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, errInvalidBookingID.Error(), nil)
		return 0, false
	}
	return id, true
}

// abortWithDomainError maps error categories to status codes. Anything
// uncategorized is reported as a 500 without its message.
func abortWithDomainError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, err.Error(), nil)
	case errs.Is(err, errs.ErrBadRequest):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, err.Error(), nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func validationDetail(err error) any {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	details := make([]fieldError, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, fieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return details
}
