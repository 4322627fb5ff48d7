package models

import "time"

// Signature is immutable once created: there is no update path, only
// creation and reads.
type Signature struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	PetitionID  uint      `json:"petition_id" gorm:"not null;index:idx_signatures_petition_phone,unique"`
	SignerID    *uint     `json:"signer_id,omitempty"`
	SignerName  string    `json:"signer_name" gorm:"not null"`
	SignerPhone string    `json:"signer_phone" gorm:"not null;index:idx_signatures_petition_phone,unique"`
	City        string    `json:"city"`
	Country     string    `json:"country"`
	IPAddress   string    `json:"ip_address"`
	UserAgent   string    `json:"user_agent"`
	Anonymous   bool      `json:"anonymous" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
}

// LocationKey groups signatures for statistics, "City, Country" or "Unknown".
func (s *Signature) LocationKey() string {
	if s.City == "" && s.Country == "" {
		return "Unknown"
	}
	if s.City == "" {
		return s.Country
	}
	if s.Country == "" {
		return s.City
	}
	return s.City + ", " + s.Country
}
