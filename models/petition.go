package models

import (
	"time"

	"github.com/lib/pq"
)

type PetitionStatus string

const (
	StatusDraft    PetitionStatus = "draft"
	StatusPending  PetitionStatus = "pending"
	StatusApproved PetitionStatus = "approved"
	StatusActive   PetitionStatus = "active"
	StatusPaused   PetitionStatus = "paused"
	StatusArchived PetitionStatus = "archived"
	StatusRejected PetitionStatus = "rejected"
	StatusDeleted  PetitionStatus = "deleted"
)

// allowedTransitions lists the moderator-driven status moves. "deleted" is
// reachable from every non-deleted status and handled separately.
var allowedTransitions = map[PetitionStatus][]PetitionStatus{
	StatusPending:  {StatusApproved, StatusRejected},
	StatusApproved: {StatusPaused, StatusArchived},
	StatusPaused:   {StatusApproved, StatusArchived},
	StatusArchived: {StatusApproved},
}

// CanTransition reports whether a moderator may move a petition from one
// status to another.
func CanTransition(from, to PetitionStatus) bool {
	if from == StatusDeleted {
		return false
	}
	if to == StatusDeleted {
		return true
	}
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// PubliclyVisible reports whether a petition can be seen without the
// creator/moderator privilege.
func (s PetitionStatus) PubliclyVisible() bool {
	switch s {
	case StatusApproved, StatusActive, StatusPaused, StatusArchived:
		return true
	}
	return false
}

type Petition struct {
	ID                uint           `json:"id" gorm:"primarykey"`
	CreatorID         uint           `json:"creator_id" gorm:"not null;index"`
	Creator           User           `json:"creator" gorm:"foreignKey:CreatorID"`
	Title             string         `json:"title" gorm:"not null"`
	Description       string         `json:"description" gorm:"type:text"`
	Category          string         `json:"category" gorm:"index"`
	Tags              []Tag          `json:"tags" gorm:"many2many:petition_tags;"`
	MediaURLs         pq.StringArray `json:"media_urls" gorm:"type:text[]"`
	TargetSignatures  uint           `json:"target_signatures" gorm:"not null"`
	CurrentSignatures uint           `json:"current_signatures" gorm:"default:0"`
	Status            PetitionStatus `json:"status" gorm:"default:'draft';index"`
	PricingTier       string         `json:"pricing_tier"`
	Price             int            `json:"price"`
	ShareCode         string         `json:"share_code" gorm:"uniqueIndex"`
	City              string         `json:"city"`
	Country           string         `json:"country"`

	ApprovedAt   *time.Time `json:"approved_at,omitempty"`
	ApprovedBy   *uint      `json:"approved_by,omitempty"`
	RejectedAt   *time.Time `json:"rejected_at,omitempty"`
	RejectedBy   *uint      `json:"rejected_by,omitempty"`
	PausedAt     *time.Time `json:"paused_at,omitempty"`
	PausedBy     *uint      `json:"paused_by,omitempty"`
	PausedReason string     `json:"paused_reason,omitempty"`
	ArchivedAt   *time.Time `json:"archived_at,omitempty"`
	ArchivedBy   *uint      `json:"archived_by,omitempty"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	DeletedBy    *uint      `json:"deleted_by,omitempty"`
	DeleteReason string     `json:"delete_reason,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
