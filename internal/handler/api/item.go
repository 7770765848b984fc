package api

import (
	"net/http"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ItemHandler struct {
	q queries.ItemQueries
}

func NewItemHandler(q queries.ItemQueries) *ItemHandler {
	return &ItemHandler{q: q}
}

// @Summary List items
// @Description List active destinations and activities with keyset pagination
// @Tags items
// @Produce json
// @Param kind query string false "destination or activity"
// @Param limit query int false "Max items (default 20, max 200)"
// @Param cursor query string false "Cursor from the previous page"
// @Success 200 {object} resdto.ItemListResponse
// @Failure 400 {object} httperr.Response
// @Router /items [get]
func (h *ItemHandler) List(c *gin.Context) {
	var query reqdto.ListItemsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}

	filters, err := query.Filters()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid kind", nil)
		return
	}

	page, err := h.q.List(c.Request.Context(), filters, queries.NewCursor(query.Cursor), query.Limit)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	res, err := resdto.FromItemPage(page)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get item
// @Description Item detail with its currently active discounts
// @Tags items
// @Produce json
// @Param slug path string true "Item slug"
// @Success 200 {object} resdto.ItemResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{slug} [get]
func (h *ItemHandler) GetBySlug(c *gin.Context) {
	view, err := h.q.GetBySlug(c.Request.Context(), c.Param(itemParam))
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	res, err := resdto.FromItemView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
