package repositories

import (
	"fmt"
	"time"

	"github.com/Brahim-Amzil/3arida-sub000/models"

	"gorm.io/gorm"
)

type PetitionRepository interface {
	Create(petition *models.Petition) error
	GetByID(id uint) (*models.Petition, error)
	GetByShareCode(code string) (*models.Petition, error)
	GetList(params models.PetitionListParams, visibleOnly bool) ([]models.Petition, int64, error)
	Update(petition *models.Petition) error
	ReplaceTags(petition *models.Petition, tags []models.Tag) error
	CountByStatus() (map[models.PetitionStatus]int64, error)
}

type petitionRepository struct {
	db *gorm.DB
}

func NewPetitionRepository(db *gorm.DB) PetitionRepository {
	return &petitionRepository{db: db}
}

func (r *petitionRepository) Create(petition *models.Petition) error {
	return r.db.Create(petition).Error
}

func (r *petitionRepository) GetByID(id uint) (*models.Petition, error) {
	var petition models.Petition
	err := r.db.Preload("Creator").Preload("Tags").First(&petition, id).Error
	return &petition, err
}

func (r *petitionRepository) GetByShareCode(code string) (*models.Petition, error) {
	var petition models.Petition
	err := r.db.Preload("Creator").Preload("Tags").
		Where("share_code = ?", code).First(&petition).Error
	return &petition, err
}

func (r *petitionRepository) GetList(params models.PetitionListParams, visibleOnly bool) ([]models.Petition, int64, error) {
	var petitions []models.Petition
	var total int64

	query := r.db.Model(&models.Petition{}).Preload("Creator").Preload("Tags")

	if visibleOnly {
		query = query.Where("petitions.status IN ?", []models.PetitionStatus{
			models.StatusApproved, models.StatusActive, models.StatusPaused, models.StatusArchived,
		})
	}

	if params.Status != "" {
		query = query.Where("petitions.status = ?", params.Status)
	}
	if params.Category != "" {
		query = query.Where("petitions.category = ?", params.Category)
	}
	if params.CreatorID > 0 {
		query = query.Where("petitions.creator_id = ?", params.CreatorID)
	}
	if params.Country != "" {
		query = query.Where("petitions.country = ?", params.Country)
	}
	if params.MinSignatures > 0 {
		query = query.Where("petitions.current_signatures >= ?", params.MinSignatures)
	}
	if params.MaxSignatures > 0 {
		query = query.Where("petitions.current_signatures <= ?", params.MaxSignatures)
	}
	if params.Search != "" {
		query = query.Where("petitions.title ILIKE ?", fmt.Sprintf("%%%s%%", params.Search))
	}
	if params.TagID > 0 {
		query = query.Joins("JOIN petition_tags ON petitions.id = petition_tags.petition_id").
			Where("petition_tags.tag_id = ?", params.TagID)
	}
	if params.CreatedAfter != "" {
		if t, err := time.Parse("2006-01-02", params.CreatedAfter); err == nil {
			query = query.Where("petitions.created_at >= ?", t)
		}
	}
	if params.CreatedBefore != "" {
		if t, err := time.Parse("2006-01-02", params.CreatedBefore); err == nil {
			query = query.Where("petitions.created_at < ?", t.AddDate(0, 0, 1))
		}
	}

	query.Count(&total)

	sortBy := params.SortBy
	switch sortBy {
	case "created_at", "current_signatures", "target_signatures", "title":
	default:
		sortBy = "created_at"
	}
	sortOrder := params.SortOrder
	if sortOrder != "asc" {
		sortOrder = "desc"
	}
	query = query.Order(fmt.Sprintf("petitions.%s %s", sortBy, sortOrder))

	offset := (params.Page - 1) * params.Limit
	err := query.Offset(offset).Limit(params.Limit).Find(&petitions).Error

	return petitions, total, err
}

func (r *petitionRepository) Update(petition *models.Petition) error {
	return r.db.Save(petition).Error
}

func (r *petitionRepository) ReplaceTags(petition *models.Petition, tags []models.Tag) error {
	return r.db.Model(petition).Association("Tags").Replace(tags)
}

func (r *petitionRepository) CountByStatus() (map[models.PetitionStatus]int64, error) {
	var results []struct {
		Status models.PetitionStatus
		Count  int64
	}

	err := r.db.Model(&models.Petition{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[models.PetitionStatus]int64)
	for _, result := range results {
		counts[result.Status] = result.Count
	}

	return counts, nil
}
