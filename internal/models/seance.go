package models

import "time"

// Seance is a coaching session between a client and a coach. The record is
// never hard-deleted: terminal statuses plus the note form its own history.
type Seance struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	ClientID uint `gorm:"index" json:"client_id"`
	Client   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	CoachID uint `gorm:"uniqueIndex:idx_coach_slot" json:"coach_id"`
	Coach   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"coach"`

	// Date and StartTime are separate on purpose: uniqueness and the
	// buffer-window check both key on the (date, start_time, coach) triple.
	Date      time.Time `gorm:"type:date;uniqueIndex:idx_coach_slot" json:"date"`
	StartTime string    `gorm:"size:5;uniqueIndex:idx_coach_slot" json:"start_time"`

	Subject string `gorm:"size:100;not null" json:"subject"`

	Status int `gorm:"default:0" json:"status"`

	Note       string     `gorm:"type:text" json:"note"`
	ResolvedAt *time.Time `json:"resolved_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
