package bookingfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"homestead/internal/api/controllers"
	"homestead/internal/repositories"
	"homestead/internal/services"
)

var Module = fx.Provide(
	provideBookingRepo, provideBookingService, controllers.NewBookingController)

func provideBookingRepo(db *gorm.DB) repositories.BookingRepository {
	return repositories.NewBookingRepository(db)
}

func provideBookingService(
	bookingRepo repositories.BookingRepository,
	propertyRepo repositories.PropertyRepository,
	profileRepo repositories.ProfileRepository,
	rewardRepo repositories.RewardRepository,
	logger *zap.Logger,
) services.BookingServiceInterface {
	return services.NewBookingService(bookingRepo, propertyRepo, profileRepo, rewardRepo, logger)
}
