package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"homestead/internal/models/db_models"
)

type RewardRepository interface {
	ListPrograms(ctx context.Context) ([]db_models.RewardProgram, error)
	FindProgramByID(ctx context.Context, id uuid.UUID) (*db_models.RewardProgram, error)
	FindEnrollmentByUser(ctx context.Context, userID uuid.UUID) (*db_models.RewardEnrollment, error)
	CreateEnrollment(ctx context.Context, enrollment *db_models.RewardEnrollment) error
	DeleteEnrollmentByUser(ctx context.Context, userID uuid.UUID) error
	CreateRedemption(ctx context.Context, redemption *db_models.PointRedemption) error
	CountRedemptions(ctx context.Context, enrollmentID uuid.UUID) (int64, error)
	FindRedemption(ctx context.Context, enrollmentID, propertyID uuid.UUID) (*db_models.PointRedemption, error)
}

type rewardRepository struct {
	db *gorm.DB
}

func NewRewardRepository(db *gorm.DB) RewardRepository {
	return &rewardRepository{db: db}
}

func (r *rewardRepository) ListPrograms(ctx context.Context) ([]db_models.RewardProgram, error) {
	var programs []db_models.RewardProgram
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&programs).Error
	return programs, err
}

func (r *rewardRepository) FindProgramByID(ctx context.Context, id uuid.UUID) (*db_models.RewardProgram, error) {
	var program db_models.RewardProgram
	err := r.db.WithContext(ctx).First(&program, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &program, nil
}

func (r *rewardRepository) FindEnrollmentByUser(ctx context.Context, userID uuid.UUID) (*db_models.RewardEnrollment, error) {
	var enrollment db_models.RewardEnrollment
	err := r.db.WithContext(ctx).Preload("Program").First(&enrollment, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &enrollment, nil
}

func (r *rewardRepository) CreateEnrollment(ctx context.Context, enrollment *db_models.RewardEnrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

// Enrollment carries a unique index on user_id; leaving has to remove the
// row for real so a later re-join does not collide with a soft-deleted one.
func (r *rewardRepository) DeleteEnrollmentByUser(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Unscoped().
		Where("user_id = ?", userID).
		Delete(&db_models.RewardEnrollment{}).Error
}

func (r *rewardRepository) CreateRedemption(ctx context.Context, redemption *db_models.PointRedemption) error {
	return r.db.WithContext(ctx).Create(redemption).Error
}

func (r *rewardRepository) CountRedemptions(ctx context.Context, enrollmentID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.PointRedemption{}).
		Where("enrollment_id = ?", enrollmentID).
		Count(&count).Error
	return count, err
}

func (r *rewardRepository) FindRedemption(ctx context.Context, enrollmentID, propertyID uuid.UUID) (*db_models.PointRedemption, error) {
	var redemption db_models.PointRedemption
	err := r.db.WithContext(ctx).
		First(&redemption, "enrollment_id = ? AND property_id = ?", enrollmentID, propertyID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &redemption, nil
}

