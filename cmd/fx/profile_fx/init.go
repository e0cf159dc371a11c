package profilefx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"homestead/internal/api/controllers"
	"homestead/internal/repositories"
	"homestead/internal/services"
)

var Module = fx.Provide(
	provideProfileRepo, provideProfileService, controllers.NewUserController)

func provideProfileRepo(db *gorm.DB) repositories.ProfileRepository {
	return repositories.NewProfileRepository(db)
}

func provideProfileService(profileRepo repositories.ProfileRepository, userRepo repositories.UserRepository) services.ProfileServiceInterface {
	return services.NewProfileService(profileRepo, userRepo)
}
