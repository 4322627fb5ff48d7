package services

import (
	"strings"

	"github.com/Brahim-Amzil/3arida-sub000/models"

	"gorm.io/gorm"
)

// In-memory repository fakes. They hand out copies so services cannot
// mutate stored state without going through Update.

type fakePetitionRepo struct {
	petitions map[uint]*models.Petition
	nextID    uint
}

func newFakePetitionRepo() *fakePetitionRepo {
	return &fakePetitionRepo{petitions: make(map[uint]*models.Petition), nextID: 1}
}

func (r *fakePetitionRepo) Create(p *models.Petition) error {
	p.ID = r.nextID
	r.nextID++
	stored := *p
	r.petitions[p.ID] = &stored
	return nil
}

func (r *fakePetitionRepo) GetByID(id uint) (*models.Petition, error) {
	p, ok := r.petitions[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakePetitionRepo) GetByShareCode(code string) (*models.Petition, error) {
	for _, p := range r.petitions {
		if p.ShareCode == code {
			copied := *p
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakePetitionRepo) GetList(params models.PetitionListParams, visibleOnly bool) ([]models.Petition, int64, error) {
	var out []models.Petition
	for _, p := range r.petitions {
		if visibleOnly && !p.Status.PubliclyVisible() {
			continue
		}
		if params.Category != "" && p.Category != params.Category {
			continue
		}
		if params.Status != "" && string(p.Status) != params.Status {
			continue
		}
		if params.CreatorID > 0 && p.CreatorID != params.CreatorID {
			continue
		}
		if params.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(params.Search)) {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (r *fakePetitionRepo) Update(p *models.Petition) error {
	if _, ok := r.petitions[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *p
	r.petitions[p.ID] = &stored
	return nil
}

func (r *fakePetitionRepo) ReplaceTags(p *models.Petition, tags []models.Tag) error {
	stored, ok := r.petitions[p.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Tags = tags
	p.Tags = tags
	return nil
}

func (r *fakePetitionRepo) CountByStatus() (map[models.PetitionStatus]int64, error) {
	counts := make(map[models.PetitionStatus]int64)
	for _, p := range r.petitions {
		counts[p.Status]++
	}
	return counts, nil
}

type fakeTagRepo struct {
	tags   map[string]*models.Tag
	nextID uint
}

func newFakeTagRepo() *fakeTagRepo {
	return &fakeTagRepo{tags: make(map[string]*models.Tag), nextID: 1}
}

func (r *fakeTagRepo) Create(tag *models.Tag) error {
	tag.ID = r.nextID
	r.nextID++
	stored := *tag
	r.tags[tag.Name] = &stored
	return nil
}

func (r *fakeTagRepo) GetByName(name string) (*models.Tag, error) {
	tag, ok := r.tags[name]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *tag
	return &copied, nil
}

func (r *fakeTagRepo) GetByID(id uint) (*models.Tag, error) {
	for _, tag := range r.tags {
		if tag.ID == id {
			copied := *tag
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTagRepo) GetAll() ([]models.Tag, error) {
	var out []models.Tag
	for _, tag := range r.tags {
		out = append(out, *tag)
	}
	return out, nil
}

func (r *fakeTagRepo) BulkUpdate(tags []models.Tag) error {
	for _, tag := range tags {
		stored := tag
		r.tags[tag.Name] = &stored
	}
	return nil
}

func (r *fakeTagRepo) CountPetitionsByTag() (map[uint]int, error) {
	return map[uint]int{}, nil
}

type fakeSignatureRepo struct {
	petitionRepo *fakePetitionRepo
	signatures   []models.Signature
	nextID       uint
}

func newFakeSignatureRepo(petitionRepo *fakePetitionRepo) *fakeSignatureRepo {
	return &fakeSignatureRepo{petitionRepo: petitionRepo, nextID: 1}
}

func (r *fakeSignatureRepo) Sign(sig *models.Signature) (*models.Petition, error) {
	petition, ok := r.petitionRepo.petitions[sig.PetitionID]
	if !ok {
		return nil, models.ErrPetitionNotFound
	}
	if petition.Status != models.StatusApproved {
		return nil, models.ErrPetitionNotSignable
	}
	if petition.CurrentSignatures >= petition.TargetSignatures {
		return nil, models.ErrTargetReached
	}
	for _, existing := range r.signatures {
		if existing.PetitionID == sig.PetitionID && existing.SignerPhone == sig.SignerPhone {
			return nil, models.ErrAlreadySigned
		}
	}

	sig.ID = r.nextID
	r.nextID++
	r.signatures = append(r.signatures, *sig)
	petition.CurrentSignatures++

	copied := *petition
	return &copied, nil
}

func (r *fakeSignatureRepo) ExistsForPhone(petitionID uint, phone string) (bool, error) {
	for _, sig := range r.signatures {
		if sig.PetitionID == petitionID && sig.SignerPhone == phone {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeSignatureRepo) GetByPetition(petitionID uint, params models.SignatureListParams) ([]models.Signature, int64, error) {
	var out []models.Signature
	for _, sig := range r.signatures {
		if sig.PetitionID != petitionID {
			continue
		}
		if !params.IncludeAnonymous && sig.Anonymous {
			continue
		}
		out = append(out, sig)
	}
	return out, int64(len(out)), nil
}

func (r *fakeSignatureRepo) GetAllByPetition(petitionID uint) ([]models.Signature, error) {
	var out []models.Signature
	// Newest first, matching the real repository's ordering.
	for i := len(r.signatures) - 1; i >= 0; i-- {
		if r.signatures[i].PetitionID == petitionID {
			out = append(out, r.signatures[i])
		}
	}
	return out, nil
}

func (r *fakeSignatureRepo) DeleteByPetition(petitionID uint) error {
	var kept []models.Signature
	for _, sig := range r.signatures {
		if sig.PetitionID != petitionID {
			kept = append(kept, sig)
		}
	}
	r.signatures = kept
	return nil
}

type fakeModeratorRepo struct {
	moderators map[uint]*models.Moderator
	nextID     uint
}

func newFakeModeratorRepo() *fakeModeratorRepo {
	return &fakeModeratorRepo{moderators: make(map[uint]*models.Moderator), nextID: 1}
}

func (r *fakeModeratorRepo) Create(m *models.Moderator) error {
	m.ID = r.nextID
	r.nextID++
	stored := *m
	r.moderators[m.UserID] = &stored
	return nil
}

func (r *fakeModeratorRepo) GetByUserID(userID uint) (*models.Moderator, error) {
	m, ok := r.moderators[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *m
	return &copied, nil
}

func (r *fakeModeratorRepo) GetAll() ([]models.Moderator, error) {
	var out []models.Moderator
	for _, m := range r.moderators {
		out = append(out, *m)
	}
	return out, nil
}

func (r *fakeModeratorRepo) Update(m *models.Moderator) error {
	stored := *m
	r.moderators[m.UserID] = &stored
	return nil
}

func (r *fakeModeratorRepo) DeleteByUserID(userID uint) error {
	delete(r.moderators, userID)
	return nil
}

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(u *models.User) error {
	u.ID = r.nextID
	r.nextID++
	stored := *u
	r.users[u.ID] = &stored
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetList(params models.UserListParams) ([]models.User, int64, error) {
	var out []models.User
	for _, u := range r.users {
		if params.Role != "" && string(u.Role) != params.Role {
			continue
		}
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) Update(u *models.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *u
	r.users[u.ID] = &stored
	return nil
}
