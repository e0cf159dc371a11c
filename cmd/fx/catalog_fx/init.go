package catalogfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"homestead/internal/api/controllers"
	"homestead/internal/repositories"
	"homestead/internal/services"
)

var Module = fx.Provide(
	providePropertyRepo, provideCatalogService, controllers.NewPropertyController)

func providePropertyRepo(db *gorm.DB) repositories.PropertyRepository {
	return repositories.NewPropertyRepository(db)
}

func provideCatalogService(propertyRepo repositories.PropertyRepository, logger *zap.Logger) services.CatalogServiceInterface {
	return services.NewCatalogService(propertyRepo, logger)
}
