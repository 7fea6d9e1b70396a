package models

const (
	GroupStatusPublic  = "public"
	GroupStatusPrivate = "private"
)

const (
	GroupRoleMember = "member"
	GroupRoleAdmin  = "admin"
)

type Group struct {
	BaseModel

	Title  string `json:"title"`
	Avatar string `json:"avatar"`
	Status string `json:"status" gorm:"default:'public'"`

	OwnerID uint    `json:"owner_id"`
	Owner   Account `json:"owner" gorm:"foreignKey:OwnerID"`

	Members []GroupMember `json:"members" gorm:"foreignKey:GroupID"`
	Posts   []Post        `json:"posts" gorm:"foreignKey:GroupID"`
}

type GroupMember struct {
	BaseModel

	GroupID   uint   `json:"group_id" gorm:"uniqueIndex:idx_group_account"`
	AccountID uint   `json:"account_id" gorm:"uniqueIndex:idx_group_account"`
	Role      string `json:"role" gorm:"default:'member'"`

	Group   Group   `json:"group"`
	Account Account `json:"account"`
}

type GroupInvite struct {
	BaseModel

	GroupID   uint `json:"group_id" gorm:"uniqueIndex:idx_invite_group_account"`
	AccountID uint `json:"account_id" gorm:"uniqueIndex:idx_invite_group_account"`

	Group   Group   `json:"group"`
	Account Account `json:"account"`
}

type GroupRequest struct {
	BaseModel

	GroupID   uint `json:"group_id" gorm:"uniqueIndex:idx_request_group_account"`
	AccountID uint `json:"account_id" gorm:"uniqueIndex:idx_request_group_account"`

	Group   Group   `json:"group"`
	Account Account `json:"account"`
}
