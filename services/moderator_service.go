package services

import (
	"errors"

	"github.com/Brahim-Amzil/3arida-sub000/models"
	"github.com/Brahim-Amzil/3arida-sub000/repositories"

	"gorm.io/gorm"
)

type ModeratorService interface {
	ModeratePetition(req models.ModeratePetitionRequest, auth *models.AuthContext) (*models.Petition, error)
	HasPermission(auth *models.AuthContext, perm models.ModeratorPermission) bool
	AssignModerator(req models.AssignModeratorRequest, auth *models.AuthContext) (*models.Moderator, error)
	RevokeModerator(userID uint) error
	GetModerators() ([]models.Moderator, error)
	GetUsers(params models.UserListParams) ([]models.User, int64, error)
	UpdateUser(id uint, req models.UpdateUserRequest) (*models.User, error)
}

type moderatorService struct {
	moderatorRepo   repositories.ModeratorRepository
	userRepo        repositories.UserRepository
	petitionService PetitionService
}

func NewModeratorService(
	moderatorRepo repositories.ModeratorRepository,
	userRepo repositories.UserRepository,
	petitionService PetitionService,
) ModeratorService {
	return &moderatorService{
		moderatorRepo:   moderatorRepo,
		userRepo:        userRepo,
		petitionService: petitionService,
	}
}

// moderationActions maps the requested action to the target status and the
// permission that gates it.
var moderationActions = map[string]struct {
	status models.PetitionStatus
	perm   models.ModeratorPermission
}{
	"approve": {models.StatusApproved, models.PermApprove},
	"reject":  {models.StatusRejected, models.PermApprove},
	"pause":   {models.StatusPaused, models.PermPause},
	"resume":  {models.StatusApproved, models.PermPause},
	"archive": {models.StatusArchived, models.PermPause},
	"delete":  {models.StatusDeleted, models.PermDelete},
}

func (s *moderatorService) ModeratePetition(req models.ModeratePetitionRequest, auth *models.AuthContext) (*models.Petition, error) {
	action, ok := moderationActions[req.Action]
	if !ok {
		return nil, errors.New("unknown moderation action")
	}

	if !s.HasPermission(auth, action.perm) {
		return nil, models.ErrMissingPermission
	}

	return s.petitionService.UpdatePetitionStatus(req.PetitionID, action.status, auth.UserID, req.Reason)
}

// HasPermission resolves the capability check: admins hold every permission
// implicitly, everyone else needs a moderator record granting it.
func (s *moderatorService) HasPermission(auth *models.AuthContext, perm models.ModeratorPermission) bool {
	if auth == nil {
		return false
	}
	if auth.IsAdmin() {
		return true
	}

	moderator, err := s.moderatorRepo.GetByUserID(auth.UserID)
	if err != nil {
		return false
	}
	return moderator.Has(perm)
}

func (s *moderatorService) AssignModerator(req models.AssignModeratorRequest, auth *models.AuthContext) (*models.Moderator, error) {
	if _, err := s.userRepo.GetByID(req.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}

	// Re-assignment updates the existing grant in place.
	moderator, err := s.moderatorRepo.GetByUserID(req.UserID)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		moderator = &models.Moderator{UserID: req.UserID}
	}

	moderator.CanApprove = req.CanApprove
	moderator.CanPause = req.CanPause
	moderator.CanDelete = req.CanDelete
	moderator.StatsAccess = req.StatsAccess
	moderator.AssignedBy = auth.UserID

	if moderator.ID == 0 {
		err = s.moderatorRepo.Create(moderator)
	} else {
		err = s.moderatorRepo.Update(moderator)
	}
	if err != nil {
		return nil, err
	}

	return s.moderatorRepo.GetByUserID(req.UserID)
}

func (s *moderatorService) RevokeModerator(userID uint) error {
	if _, err := s.moderatorRepo.GetByUserID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrUserNotFound
		}
		return err
	}
	return s.moderatorRepo.DeleteByUserID(userID)
}

func (s *moderatorService) GetModerators() ([]models.Moderator, error) {
	return s.moderatorRepo.GetAll()
}

func (s *moderatorService) GetUsers(params models.UserListParams) ([]models.User, int64, error) {
	return s.userRepo.GetList(params)
}

func (s *moderatorService) UpdateUser(id uint, req models.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrUserNotFound
		}
		return nil, err
	}

	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Active != nil {
		user.Active = *req.Active
	}
	if req.VerifiedEmail != nil {
		user.VerifiedEmail = *req.VerifiedEmail
	}
	if req.VerifiedPhone != nil {
		user.VerifiedPhone = *req.VerifiedPhone
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}
