package loyaltyfx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"homestead/internal/api/controllers"
	"homestead/internal/repositories"
	"homestead/internal/services"
)

var Module = fx.Provide(
	provideRewardRepo, provideLoyaltyService, controllers.NewRewardController)

func provideRewardRepo(db *gorm.DB) repositories.RewardRepository {
	return repositories.NewRewardRepository(db)
}

func provideLoyaltyService(rewardRepo repositories.RewardRepository, bookingRepo repositories.BookingRepository, logger *zap.Logger) services.LoyaltyServiceInterface {
	return services.NewLoyaltyService(rewardRepo, bookingRepo, logger)
}
