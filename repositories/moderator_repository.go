package repositories

import (
	"github.com/Brahim-Amzil/3arida-sub000/models"

	"gorm.io/gorm"
)

type ModeratorRepository interface {
	Create(moderator *models.Moderator) error
	GetByUserID(userID uint) (*models.Moderator, error)
	GetAll() ([]models.Moderator, error)
	Update(moderator *models.Moderator) error
	DeleteByUserID(userID uint) error
}

type moderatorRepository struct {
	db *gorm.DB
}

func NewModeratorRepository(db *gorm.DB) ModeratorRepository {
	return &moderatorRepository{db: db}
}

func (r *moderatorRepository) Create(moderator *models.Moderator) error {
	return r.db.Create(moderator).Error
}

func (r *moderatorRepository) GetByUserID(userID uint) (*models.Moderator, error) {
	var moderator models.Moderator
	err := r.db.Preload("User").Where("user_id = ?", userID).First(&moderator).Error
	return &moderator, err
}

func (r *moderatorRepository) GetAll() ([]models.Moderator, error) {
	var moderators []models.Moderator
	err := r.db.Preload("User").Order("created_at desc").Find(&moderators).Error
	return moderators, err
}

func (r *moderatorRepository) Update(moderator *models.Moderator) error {
	return r.db.Save(moderator).Error
}

func (r *moderatorRepository) DeleteByUserID(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&models.Moderator{}).Error
}
