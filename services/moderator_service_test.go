package services

import (
	"testing"

	"github.com/Brahim-Amzil/3arida-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newModeratorServiceForTest() (ModeratorService, *fakePetitionRepo, *fakeModeratorRepo, *fakeUserRepo) {
	petitionRepo := newFakePetitionRepo()
	moderatorRepo := newFakeModeratorRepo()
	userRepo := newFakeUserRepo()
	petitionSvc := NewPetitionService(petitionRepo, newFakeTagRepo())
	svc := NewModeratorService(moderatorRepo, userRepo, petitionSvc)
	return svc, petitionRepo, moderatorRepo, userRepo
}

func seedPendingPetition(repo *fakePetitionRepo) *models.Petition {
	petition := &models.Petition{
		CreatorID:        1,
		Title:            "Repair the coastal road",
		TargetSignatures: 500,
		Status:           models.StatusPending,
	}
	repo.Create(petition)
	return petition
}

func TestModeratePetitionPermissionMap(t *testing.T) {
	svc, petitionRepo, moderatorRepo, _ := newModeratorServiceForTest()
	petition := seedPendingPetition(petitionRepo)

	mod := &models.AuthContext{UserID: 9, Role: models.RoleModerator}

	// No grant at all.
	_, err := svc.ModeratePetition(models.ModeratePetitionRequest{PetitionID: petition.ID, Action: "approve"}, mod)
	assert.ErrorIs(t, err, models.ErrMissingPermission)

	// A pause-only grant does not cover approval.
	moderatorRepo.Create(&models.Moderator{UserID: 9, CanPause: true})
	_, err = svc.ModeratePetition(models.ModeratePetitionRequest{PetitionID: petition.ID, Action: "approve"}, mod)
	assert.ErrorIs(t, err, models.ErrMissingPermission)

	moderatorRepo.moderators[9].CanApprove = true
	approved, err := svc.ModeratePetition(models.ModeratePetitionRequest{PetitionID: petition.ID, Action: "approve"}, mod)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, approved.Status)
	require.NotNil(t, approved.ApprovedBy)
	assert.Equal(t, mod.UserID, *approved.ApprovedBy)

	// pause/resume ride on the pause grant.
	paused, err := svc.ModeratePetition(models.ModeratePetitionRequest{PetitionID: petition.ID, Action: "pause", Reason: "verifying claims"}, mod)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaused, paused.Status)

	resumed, err := svc.ModeratePetition(models.ModeratePetitionRequest{PetitionID: petition.ID, Action: "resume"}, mod)
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, resumed.Status)

	// Deletion needs its own grant.
	_, err = svc.ModeratePetition(models.ModeratePetitionRequest{PetitionID: petition.ID, Action: "delete", Reason: "spam"}, mod)
	assert.ErrorIs(t, err, models.ErrMissingPermission)
}

func TestModeratePetitionAdminImplicitPermissions(t *testing.T) {
	svc, petitionRepo, _, _ := newModeratorServiceForTest()
	petition := seedPendingPetition(petitionRepo)

	admin := &models.AuthContext{UserID: 100, Role: models.RoleAdmin}

	rejected, err := svc.ModeratePetition(models.ModeratePetitionRequest{PetitionID: petition.ID, Action: "reject"}, admin)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, rejected.Status)
	assert.NotNil(t, rejected.RejectedAt)
}

func TestAssignAndRevokeModerator(t *testing.T) {
	svc, _, _, userRepo := newModeratorServiceForTest()
	admin := &models.AuthContext{UserID: 100, Role: models.RoleAdmin}

	_, err := svc.AssignModerator(models.AssignModeratorRequest{UserID: 7, CanApprove: true}, admin)
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	userRepo.Create(&models.User{Name: "Yassine", Email: "yassine@example.com"})

	moderator, err := svc.AssignModerator(models.AssignModeratorRequest{UserID: 1, CanApprove: true, StatsAccess: true}, admin)
	require.NoError(t, err)
	assert.True(t, moderator.CanApprove)
	assert.True(t, moderator.StatsAccess)
	assert.False(t, moderator.CanDelete)
	assert.Equal(t, admin.UserID, moderator.AssignedBy)

	// Re-assignment updates the grant in place.
	moderator, err = svc.AssignModerator(models.AssignModeratorRequest{UserID: 1, CanDelete: true}, admin)
	require.NoError(t, err)
	assert.True(t, moderator.CanDelete)
	assert.False(t, moderator.CanApprove)

	require.NoError(t, svc.RevokeModerator(1))
	assert.ErrorIs(t, svc.RevokeModerator(1), models.ErrUserNotFound)
}

func TestUpdateUserFlags(t *testing.T) {
	svc, _, _, userRepo := newModeratorServiceForTest()
	userRepo.Create(&models.User{Name: "Amina", Email: "amina@example.com", Role: models.RoleUser})

	verified := true
	role := models.RoleModerator
	user, err := svc.UpdateUser(1, models.UpdateUserRequest{Role: &role, VerifiedEmail: &verified})
	require.NoError(t, err)
	assert.Equal(t, models.RoleModerator, user.Role)
	assert.True(t, user.VerifiedEmail)
	assert.False(t, user.VerifiedPhone)

	inactive := false
	user, err = svc.UpdateUser(1, models.UpdateUserRequest{Active: &inactive})
	require.NoError(t, err)
	assert.False(t, user.Active)

	_, err = svc.UpdateUser(999, models.UpdateUserRequest{})
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}
