package models

// Follower is a directed edge: FollowerID follows AccountID.
type Follower struct {
	BaseModel

	AccountID  uint `json:"account_id" gorm:"uniqueIndex:idx_follow_account_follower"`
	FollowerID uint `json:"follower_id" gorm:"uniqueIndex:idx_follow_account_follower"`

	Account  Account `json:"account" gorm:"foreignKey:AccountID"`
	Follower Account `json:"follower" gorm:"foreignKey:FollowerID"`
}

func (Follower) TableName() string {
	return "user_followers"
}
