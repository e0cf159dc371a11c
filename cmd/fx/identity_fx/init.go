package identityfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"homestead/internal/api/controllers"
	"homestead/internal/repositories"
	"homestead/internal/services"
)

var Module = fx.Provide(
	provideUserRepo, provideIdentityService, controllers.NewAuthController)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideIdentityService(userRepo repositories.UserRepository, logger *zap.Logger) services.IdentityServiceInterface {
	return services.NewIdentityService(userRepo, logger)
}
