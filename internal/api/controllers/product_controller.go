package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"prodfeedback/internal/services"
	"prodfeedback/pkg/utils"
)

// productPickerLimit matches the admin picker's fixed fetch size.
const productPickerLimit = 25

type ProductController struct {
	catalogService services.CatalogServiceInterface
	logger         *zap.Logger
}

func NewProductController(catalogService services.CatalogServiceInterface, logger *zap.Logger) *ProductController {
	return &ProductController{catalogService: catalogService, logger: logger}
}

func (pc *ProductController) ListProducts(c *gin.Context) {
	products, err := pc.catalogService.ListProducts(c.Request.Context(), productPickerLimit)
	if err != nil {
		pc.logger.Error("listing products failed", zap.Error(err))
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"products": products, "count": len(products)}, "Products fetched successfully")
}
