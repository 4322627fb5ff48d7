package services

import (
	"errors"
	"strings"

	"github.com/Brahim-Amzil/3arida-sub000/cache"
	"github.com/Brahim-Amzil/3arida-sub000/models"
	"github.com/Brahim-Amzil/3arida-sub000/repositories"

	"gorm.io/gorm"
)

type SignatureService interface {
	SignPetition(req models.SignPetitionRequest, auth *models.AuthContext, ipAddress, userAgent string) (*models.Signature, *models.Petition, error)
	GetPetitionSignatures(petitionID uint, params models.SignatureListParams, auth *models.AuthContext) ([]models.Signature, int64, error)
	GetPetitionStats(petitionID uint, auth *models.AuthContext) (*models.PetitionStats, error)
}

type signatureService struct {
	signatureRepo repositories.SignatureRepository
	petitionRepo  repositories.PetitionRepository
	moderatorRepo repositories.ModeratorRepository
	statsCache    *cache.StatsCache
}

func NewSignatureService(
	signatureRepo repositories.SignatureRepository,
	petitionRepo repositories.PetitionRepository,
	moderatorRepo repositories.ModeratorRepository,
	statsCache *cache.StatsCache,
) SignatureService {
	return &signatureService{
		signatureRepo: signatureRepo,
		petitionRepo:  petitionRepo,
		moderatorRepo: moderatorRepo,
		statsCache:    statsCache,
	}
}

// SignPetition runs the eligibility chain in a fixed order, short-circuiting
// on the first failure. The phone-verification check deliberately precedes
// the petition lookup. The repository re-checks everything under a row lock
// before writing.
func (s *signatureService) SignPetition(req models.SignPetitionRequest, auth *models.AuthContext, ipAddress, userAgent string) (*models.Signature, *models.Petition, error) {
	if auth == nil || !auth.VerifiedPhone {
		return nil, nil, models.ErrPhoneVerificationRequired
	}

	petition, err := s.petitionRepo.GetByID(req.PetitionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, models.ErrPetitionNotFound
		}
		return nil, nil, err
	}

	if petition.Status != models.StatusApproved {
		return nil, nil, models.ErrPetitionNotSignable
	}
	if petition.CurrentSignatures >= petition.TargetSignatures {
		return nil, nil, models.ErrTargetReached
	}

	exists, err := s.signatureRepo.ExistsForPhone(req.PetitionID, req.SignerPhone)
	if err != nil {
		return nil, nil, err
	}
	if exists {
		return nil, nil, models.ErrAlreadySigned
	}

	signerID := auth.UserID
	signature := &models.Signature{
		PetitionID:  req.PetitionID,
		SignerID:    &signerID,
		SignerName:  req.SignerName,
		SignerPhone: req.SignerPhone,
		City:        req.City,
		Country:     req.Country,
		IPAddress:   ipAddress,
		UserAgent:   userAgent,
		Anonymous:   req.Anonymous,
	}

	updated, err := s.signatureRepo.Sign(signature)
	if err != nil {
		return nil, nil, err
	}

	s.statsCache.Invalidate(req.PetitionID)

	return signature, updated, nil
}

func (s *signatureService) GetPetitionSignatures(petitionID uint, params models.SignatureListParams, auth *models.AuthContext) ([]models.Signature, int64, error) {
	petition, err := s.petitionRepo.GetByID(petitionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, models.ErrPetitionNotFound
		}
		return nil, 0, err
	}

	privileged := auth.Owns(petition.CreatorID) || auth.IsModerator()
	if !petition.Status.PubliclyVisible() && !privileged {
		return nil, 0, models.ErrPetitionNotFound
	}

	signatures, total, err := s.signatureRepo.GetByPetition(petitionID, params)
	if err != nil {
		return nil, 0, err
	}

	if !privileged {
		for i := range signatures {
			signatures[i] = MaskSignature(signatures[i])
		}
	}

	return signatures, total, nil
}

func (s *signatureService) GetPetitionStats(petitionID uint, auth *models.AuthContext) (*models.PetitionStats, error) {
	petition, err := s.petitionRepo.GetByID(petitionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrPetitionNotFound
		}
		return nil, err
	}

	if !s.canViewStats(petition, auth) {
		return nil, models.ErrUnauthorizedStats
	}

	if stats, ok := s.statsCache.Get(petitionID); ok {
		return stats, nil
	}

	signatures, err := s.signatureRepo.GetAllByPetition(petitionID)
	if err != nil {
		return nil, err
	}

	stats := &models.PetitionStats{
		PetitionID:       petitionID,
		TotalSignatures:  uint(len(signatures)),
		TargetSignatures: petition.TargetSignatures,
		ByLocation:       make(map[string]int),
		ByDay:            make(map[string]int),
	}
	if petition.TargetSignatures > 0 {
		stats.ProgressPercent = float64(len(signatures)) / float64(petition.TargetSignatures) * 100
	}

	for i := range signatures {
		sig := &signatures[i]
		stats.ByLocation[sig.LocationKey()]++
		stats.ByDay[sig.CreatedAt.Format("2006-01-02")]++
		if sig.Anonymous {
			stats.AnonymousCount++
		}
	}

	// Signatures arrive newest-first from the repository.
	recent := signatures
	if len(recent) > 10 {
		recent = recent[:10]
	}
	stats.RecentSignatures = make([]models.Signature, len(recent))
	for i, sig := range recent {
		stats.RecentSignatures[i] = MaskSignature(sig)
	}

	s.statsCache.Set(petitionID, stats)

	return stats, nil
}

func (s *signatureService) canViewStats(petition *models.Petition, auth *models.AuthContext) bool {
	if auth == nil {
		return false
	}
	if auth.Owns(petition.CreatorID) || auth.IsAdmin() {
		return true
	}
	moderator, err := s.moderatorRepo.GetByUserID(auth.UserID)
	if err != nil {
		return false
	}
	return moderator.Has(models.PermStatsAccess)
}

// MaskSignature returns a privacy-safe copy for unprivileged viewers: phone
// reduced to +CCC****NN, IP replaced with a sentinel, anonymous names hidden.
func MaskSignature(sig models.Signature) models.Signature {
	sig.SignerPhone = MaskPhone(sig.SignerPhone)
	sig.IPAddress = "Hidden"
	sig.UserAgent = ""
	sig.SignerID = nil
	if sig.Anonymous {
		sig.SignerName = "Anonymous"
	}
	return sig
}

// MaskPhone masks an E.164 number to the +CCC****NN pattern.
func MaskPhone(phone string) string {
	digits := strings.TrimPrefix(phone, "+")
	if len(digits) < 5 {
		return "+***"
	}
	return "+" + digits[:3] + "****" + digits[len(digits)-2:]
}
