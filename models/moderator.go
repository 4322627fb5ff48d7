package models

import "time"

type ModeratorPermission string

const (
	PermApprove     ModeratorPermission = "approve"
	PermPause       ModeratorPermission = "pause"
	PermDelete      ModeratorPermission = "delete"
	PermStatsAccess ModeratorPermission = "statsAccess"
)

type Moderator struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	UserID      uint      `json:"user_id" gorm:"uniqueIndex;not null"`
	User        User      `json:"user" gorm:"foreignKey:UserID"`
	CanApprove  bool      `json:"can_approve" gorm:"default:false"`
	CanPause    bool      `json:"can_pause" gorm:"default:false"`
	CanDelete   bool      `json:"can_delete" gorm:"default:false"`
	StatsAccess bool      `json:"stats_access" gorm:"default:false"`
	AssignedBy  uint      `json:"assigned_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Has reports whether the moderator record grants the given permission.
func (m *Moderator) Has(perm ModeratorPermission) bool {
	switch perm {
	case PermApprove:
		return m.CanApprove
	case PermPause:
		return m.CanPause
	case PermDelete:
		return m.CanDelete
	case PermStatsAccess:
		return m.StatsAccess
	}
	return false
}
