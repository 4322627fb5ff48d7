package services

import (
	"errors"
	"time"

	"github.com/Brahim-Amzil/3arida-sub000/models"
	"github.com/Brahim-Amzil/3arida-sub000/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PetitionService interface {
	CreatePetition(req models.CreatePetitionRequest, auth *models.AuthContext) (*models.Petition, error)
	GetPetition(id uint, auth *models.AuthContext) (*models.Petition, error)
	GetPetitions(params models.PetitionListParams, auth *models.AuthContext) ([]models.Petition, int64, error)
	UpdatePetition(id uint, req models.UpdatePetitionRequest, auth *models.AuthContext) (*models.Petition, error)
	DeletePetition(id uint, reason string, auth *models.AuthContext) error
	SubmitPetition(id uint, auth *models.AuthContext) (*models.Petition, error)
	UpdatePetitionStatus(id uint, status models.PetitionStatus, actorID uint, reason string) (*models.Petition, error)
}

type petitionService struct {
	petitionRepo repositories.PetitionRepository
	tagRepo      repositories.TagRepository
	now          func() time.Time
}

func NewPetitionService(petitionRepo repositories.PetitionRepository, tagRepo repositories.TagRepository) PetitionService {
	return &petitionService{
		petitionRepo: petitionRepo,
		tagRepo:      tagRepo,
		now:          time.Now,
	}
}

func (s *petitionService) CreatePetition(req models.CreatePetitionRequest, auth *models.AuthContext) (*models.Petition, error) {
	if !auth.VerifiedEmail {
		return nil, models.ErrEmailVerificationRequired
	}

	tags, err := s.processTags(req.Tags)
	if err != nil {
		return nil, err
	}

	pricing := CalculatePricingTier(req.TargetSignatures)

	// Status is forced to draft regardless of anything the client sent.
	petition := &models.Petition{
		CreatorID:        auth.UserID,
		Title:            req.Title,
		Description:      req.Description,
		Category:         req.Category,
		Tags:             tags,
		MediaURLs:        req.MediaURLs,
		TargetSignatures: req.TargetSignatures,
		Status:           models.StatusDraft,
		PricingTier:      pricing.Tier,
		Price:            pricing.Price,
		ShareCode:        uuid.NewString(),
		City:             req.City,
		Country:          req.Country,
	}

	if err := s.petitionRepo.Create(petition); err != nil {
		return nil, err
	}

	s.updateTagUsageCounts()

	return s.petitionRepo.GetByID(petition.ID)
}

func (s *petitionService) GetPetition(id uint, auth *models.AuthContext) (*models.Petition, error) {
	petition, err := s.petitionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPetitionNotFound
		}
		return nil, err
	}

	// Hidden statuses read as absent for everyone but the creator and
	// privileged roles.
	if !petition.Status.PubliclyVisible() && !auth.Owns(petition.CreatorID) && !auth.IsModerator() {
		return nil, models.ErrPetitionNotFound
	}

	return petition, nil
}

func (s *petitionService) GetPetitions(params models.PetitionListParams, auth *models.AuthContext) ([]models.Petition, int64, error) {
	visibleOnly := !auth.IsModerator()
	if visibleOnly && auth != nil && params.CreatorID == auth.UserID && params.CreatorID > 0 {
		// Creators can list their own drafts and pending petitions.
		visibleOnly = false
	}
	return s.petitionRepo.GetList(params, visibleOnly)
}

func (s *petitionService) UpdatePetition(id uint, req models.UpdatePetitionRequest, auth *models.AuthContext) (*models.Petition, error) {
	petition, err := s.petitionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPetitionNotFound
		}
		return nil, err
	}

	if !auth.IsModerator() {
		if !auth.Owns(petition.CreatorID) {
			return nil, models.ErrUnauthorizedUpdate
		}
		if petition.Status != models.StatusDraft {
			return nil, models.ErrOnlyDraftUpdatable
		}
	}

	if req.Title != nil {
		petition.Title = *req.Title
	}
	if req.Description != nil {
		petition.Description = *req.Description
	}
	if req.Category != nil {
		petition.Category = *req.Category
	}
	if req.MediaURLs != nil {
		petition.MediaURLs = *req.MediaURLs
	}
	if req.City != nil {
		petition.City = *req.City
	}
	if req.Country != nil {
		petition.Country = *req.Country
	}
	if req.TargetSignatures != nil {
		petition.TargetSignatures = *req.TargetSignatures
		pricing := CalculatePricingTier(petition.TargetSignatures)
		petition.PricingTier = pricing.Tier
		petition.Price = pricing.Price
	}

	if req.Tags != nil {
		tags, err := s.processTags(*req.Tags)
		if err != nil {
			return nil, err
		}
		if err := s.petitionRepo.ReplaceTags(petition, tags); err != nil {
			return nil, err
		}
	}

	if err := s.petitionRepo.Update(petition); err != nil {
		return nil, err
	}

	s.updateTagUsageCounts()

	return s.petitionRepo.GetByID(petition.ID)
}

func (s *petitionService) DeletePetition(id uint, reason string, auth *models.AuthContext) error {
	petition, err := s.petitionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrPetitionNotFound
		}
		return err
	}

	if petition.Status == models.StatusDeleted {
		return models.ErrPetitionNotFound
	}

	if !auth.IsModerator() {
		if !auth.Owns(petition.CreatorID) || petition.Status != models.StatusDraft {
			return models.ErrUnauthorizedDelete
		}
	}

	now := s.now()
	actorID := auth.UserID
	petition.Status = models.StatusDeleted
	petition.DeletedAt = &now
	petition.DeletedBy = &actorID
	petition.DeleteReason = reason

	return s.petitionRepo.Update(petition)
}

func (s *petitionService) SubmitPetition(id uint, auth *models.AuthContext) (*models.Petition, error) {
	petition, err := s.petitionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPetitionNotFound
		}
		return nil, err
	}

	if !auth.Owns(petition.CreatorID) && !auth.IsModerator() {
		return nil, models.ErrUnauthorizedUpdate
	}
	if petition.Status != models.StatusDraft {
		return nil, models.ErrInvalidTransition
	}

	petition.Status = models.StatusPending
	if err := s.petitionRepo.Update(petition); err != nil {
		return nil, err
	}

	return petition, nil
}

func (s *petitionService) UpdatePetitionStatus(id uint, status models.PetitionStatus, actorID uint, reason string) (*models.Petition, error) {
	petition, err := s.petitionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPetitionNotFound
		}
		return nil, err
	}

	if !models.CanTransition(petition.Status, status) {
		return nil, models.ErrInvalidTransition
	}

	now := s.now()
	switch status {
	case models.StatusApproved:
		petition.ApprovedAt = &now
		petition.ApprovedBy = &actorID
		petition.PausedReason = ""
	case models.StatusRejected:
		petition.RejectedAt = &now
		petition.RejectedBy = &actorID
	case models.StatusPaused:
		if reason == "" {
			return nil, models.ErrPauseReasonRequired
		}
		petition.PausedAt = &now
		petition.PausedBy = &actorID
		petition.PausedReason = reason
	case models.StatusArchived:
		petition.ArchivedAt = &now
		petition.ArchivedBy = &actorID
	case models.StatusDeleted:
		petition.DeletedAt = &now
		petition.DeletedBy = &actorID
		petition.DeleteReason = reason
	}

	petition.Status = status
	if err := s.petitionRepo.Update(petition); err != nil {
		return nil, err
	}

	return petition, nil
}

func (s *petitionService) processTags(tagNames []string) ([]models.Tag, error) {
	var tags []models.Tag

	for _, name := range tagNames {
		tag, err := s.tagRepo.GetByName(name)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				newTag := &models.Tag{Name: name}
				if err := s.tagRepo.Create(newTag); err != nil {
					return nil, err
				}
				tags = append(tags, *newTag)
			} else {
				return nil, err
			}
		} else {
			tags = append(tags, *tag)
		}
	}

	return tags, nil
}

func (s *petitionService) updateTagUsageCounts() {
	tagCounts, err := s.tagRepo.CountPetitionsByTag()
	if err != nil {
		return
	}

	allTags, err := s.tagRepo.GetAll()
	if err != nil {
		return
	}

	for i := range allTags {
		allTags[i].UsageCount = tagCounts[allTags[i].ID]
	}

	s.tagRepo.BulkUpdate(allTags)
}
