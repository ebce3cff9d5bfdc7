package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"travo/internal/models/request_models"
	"travo/internal/services"
	"travo/pkg/utils"
)

type ChatController struct {
	assistantService services.AssistantServiceInterface
}

func NewChatController(assistantService services.AssistantServiceInterface) *ChatController {
	return &ChatController{
		assistantService: assistantService,
	}
}

// PostMessage godoc
// @Summary Send a chat message
// @Description Route a free-text message through the travel assistant
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatMessageRequest true "Chat message payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /chat/message [post]
func (ct *ChatController) PostMessage(c *gin.Context) {
	var req request_models.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if req.SessionID == "" {
		req.SessionID = uuid.New().String()
	}

	messages, err := ct.assistantService.HandleMessage(c.Request.Context(), req.SessionID, req.UserName, req.Message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"session_id": req.SessionID,
		"messages":   messages,
	}, "Message processed")
}

// PostOption godoc
// @Summary Select a quick-reply option
// @Description Resolve a quick-reply choice shown by the assistant
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatOptionRequest true "Option payload"
// @Success 200 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Router /chat/option [post]
func (ct *ChatController) PostOption(c *gin.Context) {
	var req request_models.ChatOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.SessionID == "" || req.Option == "" {
		utils.RespondError(c, http.StatusBadRequest, "session_id and option are required")
		return
	}

	message, err := ct.assistantService.SelectOption(req.SessionID, req.Option)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{
		"session_id": req.SessionID,
		"messages":   []interface{}{message},
	}, "Option processed")
}
