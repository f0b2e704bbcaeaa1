package api

import (
	"net/http"
	"time"

	reqdto "stay-booking/internal/handler/dto/request"
	resdto "stay-booking/internal/handler/dto/response"
	"stay-booking/internal/handler/httperr"
	"stay-booking/internal/handler/middleware"
	"stay-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PropertyHandler struct {
	properties   queries.PropertyQueries
	reservations queries.ReservationQueries
	access       queries.AccessPolicy
}

func NewPropertyHandler(properties queries.PropertyQueries, reservations queries.ReservationQueries, access queries.AccessPolicy) *PropertyHandler {
	return &PropertyHandler{
		properties:   properties,
		reservations: reservations,
		access:       access,
	}
}

// @Summary Check availability
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Router /properties/{id}/availability [get]
func (h *PropertyHandler) Availability(c *gin.Context) {
	propertyID, q, ok := bindStay(c)
	if !ok {
		return
	}
	period, err := q.Period()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	view, err := h.properties.IsAvailable(c.Request.Context(), propertyID, period)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailability(view))
}

// @Summary Quote a stay
// @Description Price breakdown for the given dates. Length-of-stay and capacity rules are applied at booking time.
// @Tags properties
// @Produce json
// @Param id path string true "Property ID"
// @Param check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/quote [get]
func (h *PropertyHandler) Quote(c *gin.Context) {
	propertyID, q, ok := bindStay(c)
	if !ok {
		return
	}
	period, err := q.Period()
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}

	view, err := h.properties.Quote(c.Request.Context(), propertyID, period)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(view))
}

// @Summary List property reservations
// @Description Owner or admin only, newest check-in first
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param cursor query string false "Cursor returned as nextCursor"
// @Param limit query int false "Page size (1-200)" default(50)
// @Success 200 {object} resdto.ReservationPageResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /properties/{id}/reservations [get]
func (h *PropertyHandler) ListReservations(c *gin.Context) {
	propertyID, ok := h.authorizeProperty(c)
	if !ok {
		return
	}

	var q reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	page, err := h.reservations.ListByProperty(c.Request.Context(), propertyID, q.Cursor, q.Limit)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPage(page))
}

// @Summary Monthly calendar
// @Description Active reservations whose check-in falls in the month. Owner or admin only.
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} resdto.CalendarResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /properties/{id}/calendar [get]
func (h *PropertyHandler) Calendar(c *gin.Context) {
	propertyID, ok := h.authorizeProperty(c)
	if !ok {
		return
	}

	var q reqdto.CalendarQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query parameters", nil)
		return
	}

	view, err := h.reservations.MonthlyCalendar(c.Request.Context(), propertyID, q.Year, time.Month(q.Month))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCalendar(view))
}

// @Summary Current reservation count
// @Description Non-cancelled reservations spanning today. Owner or admin only.
// @Tags properties
// @Produce json
// @Security BearerAuth
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.CurrentCountResponse
// @Failure 403 {object} httperr.Response
// @Router /properties/{id}/current-count [get]
func (h *PropertyHandler) CurrentCount(c *gin.Context) {
	propertyID, ok := h.authorizeProperty(c)
	if !ok {
		return
	}

	n, err := h.reservations.CountCurrent(c.Request.Context(), propertyID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CurrentCountResponse{PropertyID: propertyID, Count: n})
}

func (h *PropertyHandler) authorizeProperty(c *gin.Context) (uuid.UUID, bool) {
	propertyID, ok := parseIDParam(c, "id", "Invalid property ID format")
	if !ok {
		return uuid.Nil, false
	}
	userID, role, ok := middleware.MustPrincipal(c)
	if !ok {
		return uuid.Nil, false
	}
	if _, err := h.access.ResolvePropertyAccess(c.Request.Context(), propertyID, userID, role); err != nil {
		httperr.AbortWithDomainError(c, err)
		return uuid.Nil, false
	}
	return propertyID, true
}

func bindStay(c *gin.Context) (uuid.UUID, reqdto.StayQuery, bool) {
	var q reqdto.StayQuery
	propertyID, ok := parseIDParam(c, "id", "Invalid property ID format")
	if !ok {
		return uuid.Nil, q, false
	}
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "check_in and check_out are required", nil)
		return uuid.Nil, q, false
	}
	return propertyID, q, true
}
