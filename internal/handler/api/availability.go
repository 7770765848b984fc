package api

import (
	"net/http"

	"travel-booking/internal/domain/availability"
	"travel-booking/internal/domain/booking"
	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/usecase/commands"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// itemParam is shared by /items/:item and /items/:item/availability; it holds
// a slug on the first route and an id on the second.
const itemParam = "item"

type AvailabilityHandler struct {
	cmds commands.AvailabilityCommands
	q    queries.AvailabilityQueries
}

func NewAvailabilityHandler(cmds commands.AvailabilityCommands, q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{cmds: cmds, q: q}
}

// @Summary List available dates
// @Description Open dates from today onward. Without packageType every row is returned.
// @Tags availability
// @Produce json
// @Param item path string true "Item ID"
// @Param packageType query string false "solo, family, private or group"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{item}/availability [get]
func (h *AvailabilityHandler) List(c *gin.Context) {
	itemID, ok := pathUUID(c, itemParam)
	if !ok {
		return
	}

	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	var pt *booking.PackageType
	if query.PackageType != "" {
		parsed, err := booking.NewPackageType(query.PackageType)
		if err != nil {
			httperr.Abort(c, err)
			return
		}
		pt = &parsed
	}

	dates, err := h.q.ListForItem(c.Request.Context(), itemID, pt)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.AvailabilityResponse{ItemID: itemID, Dates: dates})
}

// @Summary Upsert available dates
// @Description Bulk create or replace open dates for an item
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param request body reqdto.UpsertAvailabilityRequest true "Dates"
// @Success 200 {object} resdto.UpsertAvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/items/{id}/availability [put]
func (h *AvailabilityHandler) Upsert(c *gin.Context) {
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpsertAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	inputs, err := req.ToInputs()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	n, err := h.cmds.Upsert(c.Request.Context(), itemID, inputs)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.UpsertAvailabilityResponse{Upserted: n})
}

// @Summary Delete an available date
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param packageType query string false "Package the row belongs to; empty for the shared row"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/items/{id}/availability/{date} [delete]
func (h *AvailabilityHandler) Delete(c *gin.Context) {
	itemID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	date, err := availability.ParseDate(c.Param("date"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	var query reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	if err := h.cmds.Delete(c.Request.Context(), itemID, query.PackageType, date); err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
