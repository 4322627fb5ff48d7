package models

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"omitempty,e164"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name" validate:"omitempty,min=2,max=100"`
	Phone string `json:"phone" validate:"omitempty,e164"`
}

type CreatePetitionRequest struct {
	Title            string   `json:"title" validate:"required,min=10,max=200"`
	Description      string   `json:"description" validate:"required,min=50,max=10000"`
	Category         string   `json:"category" validate:"required,min=2,max=50"`
	Tags             []string `json:"tags" validate:"max=10,dive,min=1,max=50"`
	MediaURLs        []string `json:"media_urls" validate:"max=5,dive,url"`
	TargetSignatures uint     `json:"target_signatures" validate:"required,min=1"`
	City             string   `json:"city" validate:"omitempty,max=100"`
	Country          string   `json:"country" validate:"omitempty,max=100"`
}

// UpdatePetitionRequest uses pointers so absent fields stay untouched.
type UpdatePetitionRequest struct {
	Title            *string   `json:"title" validate:"omitempty,min=10,max=200"`
	Description      *string   `json:"description" validate:"omitempty,min=50,max=10000"`
	Category         *string   `json:"category" validate:"omitempty,min=2,max=50"`
	Tags             *[]string `json:"tags" validate:"omitempty,max=10,dive,min=1,max=50"`
	MediaURLs        *[]string `json:"media_urls" validate:"omitempty,max=5,dive,url"`
	TargetSignatures *uint     `json:"target_signatures" validate:"omitempty,min=1"`
	City             *string   `json:"city" validate:"omitempty,max=100"`
	Country          *string   `json:"country" validate:"omitempty,max=100"`
}

type SignPetitionRequest struct {
	PetitionID  uint   `json:"petition_id" validate:"required"`
	SignerName  string `json:"signer_name" validate:"required,min=2,max=100"`
	SignerPhone string `json:"signer_phone" validate:"required,e164"`
	City        string `json:"city" validate:"omitempty,max=100"`
	Country     string `json:"country" validate:"omitempty,max=100"`
	Anonymous   bool   `json:"anonymous"`
}

type ModeratePetitionRequest struct {
	PetitionID uint   `json:"petition_id" validate:"required"`
	Action     string `json:"action" validate:"required,oneof=approve reject pause resume archive delete"`
	Reason     string `json:"reason" validate:"omitempty,max=500"`
}

type UpdateUserRequest struct {
	Role          *UserRole `json:"role" validate:"omitempty,oneof=user moderator admin"`
	Active        *bool     `json:"active"`
	VerifiedEmail *bool     `json:"verified_email"`
	VerifiedPhone *bool     `json:"verified_phone"`
}

type AssignModeratorRequest struct {
	UserID      uint `json:"user_id" validate:"required"`
	CanApprove  bool `json:"can_approve"`
	CanPause    bool `json:"can_pause"`
	CanDelete   bool `json:"can_delete"`
	StatsAccess bool `json:"stats_access"`
}

type PetitionListParams struct {
	Category      string `form:"category"`
	Status        string `form:"status"`
	TagID         uint   `form:"tag_id"`
	CreatorID     uint   `form:"creator_id"`
	Country       string `form:"country"`
	MinSignatures uint   `form:"min_signatures"`
	MaxSignatures uint   `form:"max_signatures"`
	CreatedAfter  string `form:"created_after"`
	CreatedBefore string `form:"created_before"`
	Search        string `form:"search"`
	Page          int    `form:"page,default=1"`
	Limit         int    `form:"limit,default=10"`
	SortBy        string `form:"sort_by,default=created_at"`
	SortOrder     string `form:"sort_order,default=desc"`
}

type SignatureListParams struct {
	Page             int  `form:"page,default=1"`
	Limit            int  `form:"limit,default=20"`
	IncludeAnonymous bool `form:"include_anonymous,default=true"`
}

type UserListParams struct {
	Role   string `form:"role"`
	Search string `form:"search"`
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=20"`
}

// PricingInfo is the derived tier/price pair for a signature target.
type PricingInfo struct {
	Tier  string `json:"tier"`
	Price int    `json:"price"`
}

// PetitionStats aggregates a petition's signatures for its creator and
// privileged viewers.
type PetitionStats struct {
	PetitionID       uint           `json:"petition_id"`
	TotalSignatures  uint           `json:"total_signatures"`
	TargetSignatures uint           `json:"target_signatures"`
	ProgressPercent  float64        `json:"progress_percent"`
	ByLocation       map[string]int `json:"by_location"`
	ByDay            map[string]int `json:"by_day"`
	RecentSignatures []Signature    `json:"recent_signatures"`
	AnonymousCount   uint           `json:"anonymous_count"`
}
