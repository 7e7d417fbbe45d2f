package services

import (
	"github.com/hineshmeraka/epharmacy-api/models"
	"gorm.io/gorm"
)

type gormIntentStore struct {
	db *gorm.DB
}

func (s *gormIntentStore) LatestOpen(userID uint) (models.CheckoutIntent, error) {
	var intent models.CheckoutIntent
	err := s.db.
		Where("user_id = ? AND status = ?", userID, models.IntentStatusOpen).
		Order("created_at DESC").
		First(&intent).Error
	return intent, err
}

func (s *gormIntentStore) Supersede(userID uint) error {
	return s.db.Model(&models.CheckoutIntent{}).
		Where("user_id = ? AND status = ?", userID, models.IntentStatusOpen).
		Update("status", models.IntentStatusSuperseded).Error
}

func (s *gormIntentStore) Save(intent *models.CheckoutIntent) error {
	return s.db.Create(intent).Error
}

func (s *gormIntentStore) FindBySecret(userID uint, clientSecret string) (models.CheckoutIntent, error) {
	var intent models.CheckoutIntent
	err := s.db.
		Where("user_id = ? AND client_secret = ?", userID, clientSecret).
		First(&intent).Error
	return intent, err
}

func (s *gormIntentStore) SetStatus(id uint, status string) error {
	return s.db.Model(&models.CheckoutIntent{}).
		Where("id = ?", id).
		Update("status", status).Error
}
