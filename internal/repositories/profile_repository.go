package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"homestead/internal/models/db_models"
)

type ProfileRepository interface {
	CreateAddress(ctx context.Context, address *db_models.Address) error
	ListAddresses(ctx context.Context, userID uuid.UUID) ([]db_models.Address, error)
	FindAddress(ctx context.Context, id, userID uuid.UUID) (*db_models.Address, error)
	DeleteAddress(ctx context.Context, id, userID uuid.UUID) error
	CountCardsByAddress(ctx context.Context, addressID, userID uuid.UUID) (int64, error)

	CreateCard(ctx context.Context, card *db_models.Card) error
	ListCards(ctx context.Context, userID uuid.UUID) ([]db_models.Card, error)
	FindCard(ctx context.Context, id, userID uuid.UUID) (*db_models.Card, error)
	DeleteCard(ctx context.Context, id, userID uuid.UUID) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) CreateAddress(ctx context.Context, address *db_models.Address) error {
	return r.db.WithContext(ctx).Create(address).Error
}

func (r *profileRepository) ListAddresses(ctx context.Context, userID uuid.UUID) ([]db_models.Address, error) {
	var addresses []db_models.Address
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&addresses).Error
	return addresses, err
}

func (r *profileRepository) FindAddress(ctx context.Context, id, userID uuid.UUID) (*db_models.Address, error) {
	var address db_models.Address
	err := r.db.WithContext(ctx).First(&address, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &address, nil
}

func (r *profileRepository) DeleteAddress(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&db_models.Address{}).Error
}

func (r *profileRepository) CountCardsByAddress(ctx context.Context, addressID, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db_models.Card{}).
		Where("billing_address_id = ? AND user_id = ?", addressID, userID).
		Count(&count).Error
	return count, err
}

func (r *profileRepository) CreateCard(ctx context.Context, card *db_models.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

func (r *profileRepository) ListCards(ctx context.Context, userID uuid.UUID) ([]db_models.Card, error) {
	var cards []db_models.Card
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&cards).Error
	return cards, err
}

func (r *profileRepository) FindCard(ctx context.Context, id, userID uuid.UUID) (*db_models.Card, error) {
	var card db_models.Card
	err := r.db.WithContext(ctx).First(&card, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &card, nil
}

func (r *profileRepository) DeleteCard(ctx context.Context, id, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&db_models.Card{}).Error
}
