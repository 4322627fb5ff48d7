package repositories

import (
	"errors"

	"github.com/Brahim-Amzil/3arida-sub000/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SignatureRepository interface {
	Sign(sig *models.Signature) (*models.Petition, error)
	ExistsForPhone(petitionID uint, phone string) (bool, error)
	GetByPetition(petitionID uint, params models.SignatureListParams) ([]models.Signature, int64, error)
	GetAllByPetition(petitionID uint) ([]models.Signature, error)
	DeleteByPetition(petitionID uint) error
}

type signatureRepository struct {
	db *gorm.DB
}

func NewSignatureRepository(db *gorm.DB) SignatureRepository {
	return &signatureRepository{db: db}
}

// Sign inserts the signature and increments the petition counter inside one
// transaction holding a row lock on the petition. The eligibility re-checks
// run under the lock so concurrent signers cannot duplicate a phone number
// or push the counter past the target.
func (r *signatureRepository) Sign(sig *models.Signature) (*models.Petition, error) {
	var petition models.Petition

	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&petition, sig.PetitionID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrPetitionNotFound
			}
			return err
		}

		if petition.Status != models.StatusApproved {
			return models.ErrPetitionNotSignable
		}
		if petition.CurrentSignatures >= petition.TargetSignatures {
			return models.ErrTargetReached
		}

		var count int64
		if err := tx.Model(&models.Signature{}).
			Where("petition_id = ? AND signer_phone = ?", sig.PetitionID, sig.SignerPhone).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return models.ErrAlreadySigned
		}

		if err := tx.Create(sig).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Petition{}).
			Where("id = ?", petition.ID).
			UpdateColumn("current_signatures", gorm.Expr("current_signatures + 1")).Error; err != nil {
			return err
		}

		return tx.First(&petition, petition.ID).Error
	})
	if err != nil {
		return nil, err
	}

	return &petition, nil
}

func (r *signatureRepository) ExistsForPhone(petitionID uint, phone string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Signature{}).
		Where("petition_id = ? AND signer_phone = ?", petitionID, phone).
		Count(&count).Error
	return count > 0, err
}

func (r *signatureRepository) GetByPetition(petitionID uint, params models.SignatureListParams) ([]models.Signature, int64, error) {
	var signatures []models.Signature
	var total int64

	query := r.db.Model(&models.Signature{}).Where("petition_id = ?", petitionID)
	if !params.IncludeAnonymous {
		query = query.Where("anonymous = ?", false)
	}

	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at desc").Offset(offset).Limit(params.Limit).Find(&signatures).Error

	return signatures, total, err
}

func (r *signatureRepository) GetAllByPetition(petitionID uint) ([]models.Signature, error) {
	var signatures []models.Signature
	err := r.db.Where("petition_id = ?", petitionID).
		Order("created_at desc").
		Find(&signatures).Error
	return signatures, err
}

func (r *signatureRepository) DeleteByPetition(petitionID uint) error {
	return r.db.Where("petition_id = ?", petitionID).Delete(&models.Signature{}).Error
}
