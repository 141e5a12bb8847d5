package domain

import (
	"time"

	"github.com/google/uuid"
)

// Comment belongs to a breed discussion thread. BreedID is an opaque
// identifier owned by the frontend's breed catalog, not a foreign key.
type Comment struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	BreedID string    `json:"breedId" gorm:"not null;index"`
	Content string    `json:"content" gorm:"not null"`
	UserID  uuid.UUID `json:"userId" gorm:"type:uuid;not null"`
	// UserName is copied from the author at posting time so later name
	// changes never rewrite displayed authorship.
	UserName  string    `json:"userName" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}
