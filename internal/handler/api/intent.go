package api

import (
	"net/http"

	reqdto "travel-booking/internal/handler/dto/request"
	resdto "travel-booking/internal/handler/dto/response"
	"travel-booking/internal/handler/httperr"
	"travel-booking/internal/handler/middleware"
	"travel-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type IntentHandler struct {
	cmds commands.IntentCommands
}

func NewIntentHandler(cmds commands.IntentCommands) *IntentHandler {
	return &IntentHandler{cmds: cmds}
}

// @Summary Submit booking intent
// @Description Signed-in buyers are sent to confirmation. Anonymous buyers get a stored intent id to resume after login.
// @Tags booking-intents
// @Accept json
// @Produce json
// @Param request body reqdto.SubmitIntentRequest true "Intent"
// @Success 200 {object} resdto.IntentResponse "redirect_to_confirm"
// @Success 202 {object} resdto.IntentResponse "stored_intent_pending_login"
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /booking-intents [post]
func (h *IntentHandler) Submit(c *gin.Context) {
	var req reqdto.SubmitIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	cmd, err := req.ToCommand()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date", nil)
		return
	}

	var userID *uuid.UUID
	if id, ok := middleware.GetUserID(c); ok {
		userID = &id
	}

	result, err := h.cmds.Submit(c.Request.Context(), cmd, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	status := http.StatusOK
	if result.ExpiresAt != nil {
		status = http.StatusAccepted
	}
	c.JSON(status, resdto.FromIntentResult(result))
}

// @Summary Resume stored intent
// @Description Re-checks the stored date after login. A date that filled up meanwhile returns 409.
// @Tags booking-intents
// @Produce json
// @Security BearerAuth
// @Param id path string true "Intent ID"
// @Success 200 {object} resdto.IntentResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /booking-intents/{id}/resume [post]
func (h *IntentHandler) Resume(c *gin.Context) {
	userID, _, ok := requireIdentity(c)
	if !ok {
		return
	}
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	result, err := h.cmds.Resume(c.Request.Context(), id, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromIntentResult(result))
}
