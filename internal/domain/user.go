package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	FirstName    string    `json:"firstName" gorm:"not null"`
	LastName     string    `json:"lastName" gorm:"not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	JoinedAt     time.Time `json:"joinedAt"`
}

// FullName is the display form snapshotted onto comments at posting time.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
