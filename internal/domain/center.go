package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AdoptionCenter struct {
	ID        uuid.UUID                   `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name      string                      `json:"name" gorm:"not null"`
	Address   string                      `json:"address" gorm:"not null"`
	City      string                      `json:"city" gorm:"not null;index"`
	State     string                      `json:"state" gorm:"not null;index"`
	Phone     string                      `json:"phone" gorm:"not null"`
	Breeds    datatypes.JSONSlice[string] `json:"breeds"`
	AddedBy   uuid.UUID                   `json:"addedBy" gorm:"type:uuid;not null"`
	CreatedAt time.Time                   `json:"createdAt"`
}
