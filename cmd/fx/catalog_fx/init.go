package catalog_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"prodfeedback/internal/api/controllers"
	"prodfeedback/internal/services"
	mem "prodfeedback/pkg/memcache"
)

var Module = fx.Provide(
	provideProductCache, provideCatalogService, provideProductController,
)

func provideProductCache() mem.ProductCache {
	return mem.NewProductCache()
}

func provideCatalogService(cache mem.ProductCache, logger *zap.Logger) services.CatalogServiceInterface {
	return services.NewShopifyCatalogClient(cache, logger)
}

func provideProductController(catalogService services.CatalogServiceInterface, logger *zap.Logger) *controllers.ProductController {
	return controllers.NewProductController(catalogService, logger)
}
