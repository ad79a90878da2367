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
	"prodfeedback/pkg/middleware"
	"prodfeedback/pkg/utils"
)

// ProxyController is the public storefront surface. Every stage of the
// intake pipeline fails closed with a typed {success:false, error} body.
type ProxyController struct {
	commentService services.CommentServiceInterface
	captcha        services.CaptchaVerifier
	logger         *zap.Logger
}

func NewProxyController(commentService services.CommentServiceInterface, captcha services.CaptchaVerifier, logger *zap.Logger) *ProxyController {
	return &ProxyController{
		commentService: commentService,
		captcha:        captcha,
		logger:         logger,
	}
}

// SubmitFeedback runs the intake pipeline: shop domain, required fields,
// email shape, captcha when configured, then the store write. The
// session stage already happened in middleware.
func (pc *ProxyController) SubmitFeedback(c *gin.Context) {
	shopDomain := middleware.ResolveShopDomain(c)
	if shopDomain == "" {
		proxyError(c, http.StatusBadRequest, "Invalid request - missing shop domain")
		return
	}

	var req request_models.SubmitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		proxyError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if req.ProductID == "" || req.Name == "" || req.Email == "" || req.Comment == "" {
		proxyError(c, http.StatusBadRequest, "All fields are required")
		return
	}

	if pc.captcha.Enabled() {
		if req.RecaptchaResponse == "" {
			proxyError(c, http.StatusBadRequest, "Captcha token is required")
			return
		}
		if err := pc.captcha.Verify(c.Request.Context(), req.RecaptchaResponse); err != nil {
			pc.logger.Warn("captcha verification failed",
				zap.String("shop", shopDomain), zap.Error(err))
			proxyError(c, http.StatusBadRequest, "Captcha verification failed, please try again")
			return
		}
	}

	feedback, err := pc.commentService.CreateComment(c.Request.Context(), req.ProductID, req.Name, req.Email, req.Comment)
	if err != nil {
		if errors.Is(err, utils.ErrValidation) {
			proxyError(c, http.StatusBadRequest, "Invalid email format")
			return
		}
		pc.logger.Error("persisting feedback failed",
			zap.String("shop", shopDomain), zap.String("productId", req.ProductID), zap.Error(err))
		proxyError(c, http.StatusInternalServerError, "An error occurred")
		return
	}

	c.JSON(http.StatusOK, response_models.ProxySubmitResponse{
		Success:  true,
		Feedback: feedback,
	})
}

// ListFeedback serves the storefront widget's read path. Store faults
// are logged with their real cause but surface as a generic error so
// internals never leak to the storefront.
func (pc *ProxyController) ListFeedback(c *gin.Context) {
	shopDomain := middleware.ResolveShopDomain(c)
	if shopDomain == "" {
		proxyError(c, http.StatusBadRequest, "Invalid request - missing shop domain")
		return
	}

	productID := c.Query("productId")
	if productID == "" {
		proxyError(c, http.StatusBadRequest, "productId is required")
		return
	}

	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = 1
	}

	result, err := pc.commentService.GetPage(c.Request.Context(), productID, page)
	if err != nil {
		pc.logger.Error("listing feedback failed",
			zap.String("shop", shopDomain), zap.String("productId", productID), zap.Error(err))
		proxyError(c, http.StatusInternalServerError, "An error occurred")
		return
	}

	c.JSON(http.StatusOK, response_models.ProxyListResponse{
		Success:       true,
		Feedback:      result.Comments,
		TotalPages:    result.TotalPages,
		CurrentPage:   result.CurrentPage,
		TotalComments: result.TotalComments,
	})
}

func proxyError(c *gin.Context, code int, message string) {
	c.JSON(code, response_models.ProxySubmitResponse{
		Success: false,
		Error:   message,
	})
}
