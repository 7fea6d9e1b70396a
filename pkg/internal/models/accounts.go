package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Account struct {
	BaseModel

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" gorm:"uniqueIndex"`
	Password  string `json:"-"`
	Role      string `json:"role" gorm:"default:'user'"`
	Avatar    string `json:"avatar"`

	Provider     string            `json:"provider"`
	ProviderID   string            `json:"provider_id"`
	ProviderInfo datatypes.JSONMap `json:"provider_info"`

	Posts   []Post   `json:"posts" gorm:"foreignKey:AccountID"`
	Groups  []Group  `json:"groups" gorm:"foreignKey:OwnerID"`
	Folders []Folder `json:"folders" gorm:"foreignKey:AccountID"`
}

func (v Account) Name() string {
	return v.FirstName + " " + v.LastName
}

// AuthTicket is created per login and referenced by the jwt subject,
// so individual sessions can be revoked without touching the others.
type AuthTicket struct {
	BaseModel

	AccountID uint      `json:"account_id"`
	ExpiredAt time.Time `json:"expired_at"`

	Account Account `json:"account"`
}

type PasswordResetToken struct {
	BaseModel

	Email     string    `json:"email" gorm:"index"`
	Token     string    `json:"token" gorm:"uniqueIndex"`
	ExpiredAt time.Time `json:"expired_at"`
}
