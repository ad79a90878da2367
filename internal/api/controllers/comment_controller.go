package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"prodfeedback/internal/models/request_models"
	"prodfeedback/internal/models/response_models"
	"prodfeedback/internal/services"
	"prodfeedback/pkg/utils"
)

type CommentController struct {
	commentService services.CommentServiceInterface
	logger         *zap.Logger
}

func NewCommentController(commentService services.CommentServiceInterface, logger *zap.Logger) *CommentController {
	return &CommentController{commentService: commentService, logger: logger}
}

// GetComments serves the moderation view. The page parameter is lenient:
// absent or non-numeric means page 1. A store fault degrades to the
// empty-page shape so the admin UI keeps rendering.
func (cc *CommentController) GetComments(c *gin.Context) {
	productID := c.Query("productId")

	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	result, err := cc.commentService.GetPage(c.Request.Context(), productID, page)
	if err != nil {
		cc.logger.Error("fetching comment page failed",
			zap.String("productId", productID), zap.Error(err))
		c.JSON(http.StatusOK, response_models.EmptyCommentPage())
		return
	}

	c.JSON(http.StatusOK, result)
}

// ModerateComment handles the form posts the admin UI sends:
// action=delete or action=edit, keyed by commentId.
func (cc *CommentController) ModerateComment(c *gin.Context) {
	var req request_models.ModerateCommentRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, response_models.ModerationResult{
			Success: false,
			Message: "Invalid request format",
		})
		return
	}

	commentID, err := strconv.ParseInt(req.CommentID, 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, response_models.ModerationResult{
			Success: false,
			Message: "commentId must be a number",
		})
		return
	}

	switch req.Action {
	case "delete":
		if err := cc.commentService.DeleteComment(c.Request.Context(), commentID); err != nil {
			c.JSON(http.StatusOK, moderationFailure(err))
			return
		}
		c.JSON(http.StatusOK, response_models.ModerationResult{
			Success: true,
			Message: "Comment deleted successfully",
		})

	case "edit":
		if _, err := cc.commentService.EditComment(c.Request.Context(), commentID, req.Name, req.Email, req.Comment); err != nil {
			c.JSON(http.StatusOK, moderationFailure(err))
			return
		}
		c.JSON(http.StatusOK, response_models.ModerationResult{
			Success: true,
			Message: "Comment updated successfully",
		})

	default:
		c.JSON(http.StatusOK, response_models.ModerationResult{
			Success: false,
			Message: "Invalid action",
		})
	}
}

func moderationFailure(err error) response_models.ModerationResult {
	message := "An error occurred"
	switch {
	case errors.Is(err, utils.ErrCommentNotFound):
		message = "Comment not found"
	case errors.Is(err, utils.ErrValidation):
		message = err.Error()
	}
	return response_models.ModerationResult{Success: false, Message: message}
}
