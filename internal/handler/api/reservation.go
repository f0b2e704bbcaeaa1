package api

import (
	"net/http"

	reqdto "stay-booking/internal/handler/dto/request"
	resdto "stay-booking/internal/handler/dto/response"
	"stay-booking/internal/handler/httperr"
	"stay-booking/internal/handler/middleware"
	"stay-booking/internal/usecase/commands"
	"stay-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	commands commands.BookingCommands
	queries  queries.ReservationQueries
	access   queries.AccessPolicy
}

func NewReservationHandler(cmd commands.BookingCommands, q queries.ReservationQueries, access queries.AccessPolicy) *ReservationHandler {
	return &ReservationHandler{
		commands: cmd,
		queries:  q,
		access:   access,
	}
}

// @Summary Create reservation
// @Description Book a property for a stay. Dates are calendar days (YYYY-MM-DD).
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, _, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	input, err := req.ToInput(userID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	res, err := h.commands.CreateReservation(c.Request.Context(), input)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	c.Header("Location", "/api/reservations/"+res.ID().String())
	c.JSON(http.StatusCreated, resdto.FromReservation(res))
}

// @Summary List my reservations
// @Description Keyset-paginated reservations of the caller
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param filter query string false "all, upcoming or past" default(all)
// @Param cursor query string false "Cursor returned as nextCursor"
// @Param limit query int false "Page size (1-200)" default(50)
// @Success 200 {object} resdto.ReservationPageResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID, _, ok := middleware.MustPrincipal(c)
	if !ok {
		return
	}

	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	page, err := h.queries.ListMine(c.Request.Context(), userID, queries.ListFilter(q.Filter), q.Cursor, q.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPage(page))
}

// @Summary Get reservation
// @Description Visible to the guest, the property owner and admins
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid reservation ID format")
	if !ok {
		return
	}
	if _, ok := h.resolveActor(c, id); !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Update reservation status
// @Description Owners and admins may set any status; guests may only cancel
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateStatusRequest true "Target status"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/status [patch]
func (h *ReservationHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid reservation ID format")
	if !ok {
		return
	}

	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}
	status, err := req.ToStatus()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	actor, ok := h.resolveActor(c, id)
	if !ok {
		return
	}

	res, err := h.commands.UpdateStatus(c.Request.Context(), id, status, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Cancel reservation
// @Description Guests must cancel before the cancellation window closes
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid reservation ID format")
	if !ok {
		return
	}
	actor, ok := h.resolveActor(c, id)
	if !ok {
		return
	}

	res, err := h.commands.CancelReservation(c.Request.Context(), id, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Record payment
// @Description Marks the reservation paid; a PENDING reservation is confirmed
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RecordPaymentRequest true "Payment details"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /reservations/{id}/payment [post]
func (h *ReservationHandler) RecordPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id", "Invalid reservation ID format")
	if !ok {
		return
	}

	var req reqdto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	actor, ok := h.resolveActor(c, id)
	if !ok {
		return
	}

	res, err := h.commands.RecordPayment(c.Request.Context(), id, req.PaymentMethod, req.PaymentReference, actor)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary Complete elapsed reservations
// @Description Moves confirmed reservations whose check-out has passed to COMPLETED
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CompleteElapsedResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/complete-elapsed [post]
func (h *ReservationHandler) CompleteElapsed(c *gin.Context) {
	n, err := h.commands.CompleteElapsed(c.Request.Context())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CompleteElapsedResponse{Completed: n})
}

func (h *ReservationHandler) resolveActor(c *gin.Context, reservationID uuid.UUID) (commands.Actor, bool) {
	userID, role, ok := middleware.MustPrincipal(c)
	if !ok {
		return commands.Actor{}, false
	}

	access, err := h.access.ResolveAccess(c.Request.Context(), reservationID, userID, role)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return commands.Actor{}, false
	}
	return commands.Actor{UserID: userID, Privileged: access.Privileged(), Admin: access.IsAdmin}, true
}

func parseIDParam(c *gin.Context, name, msg string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
		return uuid.Nil, false
	}
	return id, true
}
