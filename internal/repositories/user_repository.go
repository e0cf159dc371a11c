package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"homestead/internal/models/db_models"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*db_models.User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	// CreateWithProfile inserts the user row and its role extension row in
	// one transaction. The profile builder receives the generated user id.
	CreateWithProfile(ctx context.Context, user *db_models.User, profile func(userID uuid.UUID) interface{}) error
	FindAgentProfile(ctx context.Context, userID uuid.UUID) (*db_models.AgentProfile, error)
	FindRenterProfile(ctx context.Context, userID uuid.UUID) (*db_models.RenterProfile, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	var user db_models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) CreateWithProfile(ctx context.Context, user *db_models.User, profile func(userID uuid.UUID) interface{}) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		if profile == nil {
			return nil
		}
		if row := profile(user.ID); row != nil {
			return tx.Create(row).Error
		}
		return nil
	})
}

func (r *userRepository) FindAgentProfile(ctx context.Context, userID uuid.UUID) (*db_models.AgentProfile, error) {
	var profile db_models.AgentProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (r *userRepository) FindRenterProfile(ctx context.Context, userID uuid.UUID) (*db_models.RenterProfile, error) {
	var profile db_models.RenterProfile
	err := r.db.WithContext(ctx).First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}
