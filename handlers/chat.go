package handlers

import (
	"errors"
	"net/http"

	"clinicdesk/models"
	chatSvc "clinicdesk/services/chat"
	"clinicdesk/utils"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the conversation endpoint.
type ChatHandler struct {
	Service chatSvc.ChatService
}

func NewChatHandler(service chatSvc.ChatService) *ChatHandler {
	return &ChatHandler{Service: service}
}

// HandleChat is the main chat endpoint for the multi-clinic receptionist.
func (h *ChatHandler) HandleChat(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid chat request", err.Error())
		return
	}

	resp, err := h.Service.HandleMessage(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, chatSvc.ErrClinicNotFound) {
			utils.JSONError(c, http.StatusNotFound, "clinic not found", req.ClinicID)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to process chat message", err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}
