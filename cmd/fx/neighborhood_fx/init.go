package neighborhoodfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"homestead/internal/api/controllers"
	"homestead/internal/repositories"
	"homestead/internal/services"
)

var Module = fx.Provide(
	provideNeighborhoodRepo, provideNeighborhoodService, controllers.NewNeighborhoodController)

func provideNeighborhoodRepo(db *gorm.DB) repositories.NeighborhoodRepository {
	return repositories.NewNeighborhoodRepository(db)
}

func provideNeighborhoodService(neighborhoodRepo repositories.NeighborhoodRepository, propertyRepo repositories.PropertyRepository) services.NeighborhoodServiceInterface {
	return services.NewNeighborhoodService(neighborhoodRepo, propertyRepo)
}
