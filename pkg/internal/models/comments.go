package models

type Comment struct {
	BaseModel

	Content string `json:"content"`

	PostID    uint    `json:"post_id"`
	AccountID uint    `json:"account_id"`
	Account   Account `json:"account"`

	ReplyID *uint     `json:"reply_id"`
	Replies []Comment `json:"replies" gorm:"foreignKey:ReplyID"`
}
