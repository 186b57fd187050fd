package controllers

import (
	"net/http"

	"github.com/findjobsyria/api/internal/app/models/dto"
	"github.com/findjobsyria/api/internal/app/services"
	"github.com/findjobsyria/api/internal/middleware"
	"github.com/gin-gonic/gin"
)

// MessageController handles direct messages between users
type MessageController struct {
	messageService services.MessageService
}

// NewMessageController creates a new MessageController
func NewMessageController(messageService services.MessageService) *MessageController {
	return &MessageController{messageService: messageService}
}

// ListConversations lists one entry per counterpart with the newest message
// @Summary List conversations
// @Tags messages
// @Produce json
// @Security SessionCookie
// @Success 200 {object} dto.APIResponse{data=[]models.Conversation} "Conversations, newest first"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/conversations [get]
func (c *MessageController) ListConversations(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	conversations, err := c.messageService.ListConversations(ctx.Request.Context(), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(conversations))
}

// GetHistory returns the messages exchanged with a partner
// @Summary Conversation history
// @Tags messages
// @Produce json
// @Security SessionCookie
// @Param partnerId path string true "Counterpart user ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Message} "Messages, oldest first"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/{partnerId} [get]
func (c *MessageController) GetHistory(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	messages, err := c.messageService.GetHistory(ctx.Request.Context(), ctx.Param("partnerId"), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(messages))
}

// SendMessage sends a message from the caller
// @Summary Send message
// @Description Stores the message and pushes it to the receiver's open websocket connections
// @Tags messages
// @Accept json
// @Produce json
// @Security SessionCookie
// @Param request body dto.SendMessageRequest true "Message"
// @Success 201 {object} dto.APIResponse{data=models.Message} "Message sent"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 404 {object} dto.ErrorResponse "Receiver not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages [post]
func (c *MessageController) SendMessage(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	var req dto.SendMessageRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	message, err := c.messageService.SendMessage(ctx.Request.Context(), &req, identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(message))
}

// MarkRead marks a received message as read
// @Summary Mark message read
// @Tags messages
// @Produce json
// @Security SessionCookie
// @Param id path string true "Message ID"
// @Success 200 {object} dto.APIResponse{data=models.Message} "Message"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not the receiver"
// @Failure 404 {object} dto.ErrorResponse "Message not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /messages/{id}/read [patch]
func (c *MessageController) MarkRead(ctx *gin.Context) {
	identity, ok := middleware.MustIdentity(ctx)
	if !ok {
		return
	}

	message, err := c.messageService.MarkRead(ctx.Request.Context(), ctx.Param("id"), identity)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(message))
}
