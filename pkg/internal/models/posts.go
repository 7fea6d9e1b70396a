package models

const (
	PostStatusPublic  = "public"
	PostStatusPrivate = "private"
)

type Post struct {
	BaseModel

	Title       string `json:"title"`
	Description string `json:"description"`
	Language    string `json:"language"`
	ImageURL    string `json:"image_url"`
	Status      string `json:"status" gorm:"default:'public'"`

	AccountID uint    `json:"account_id"`
	Account   Account `json:"account"`

	GroupID *uint  `json:"group_id"`
	Group   *Group `json:"group"`

	Tags     []Tag      `json:"tags" gorm:"many2many:post_tags"`
	Likes    []PostLike `json:"likes" gorm:"foreignKey:PostID"`
	Comments []Comment  `json:"comments" gorm:"foreignKey:PostID"`

	// Filled by list queries, not stored.
	LikeCount int64 `json:"like_count" gorm:"-"`
	IsLiked   bool  `json:"is_liked" gorm:"-"`
}

type Tag struct {
	BaseModel

	Name string `json:"name" gorm:"uniqueIndex"`

	Posts []Post `json:"posts" gorm:"many2many:post_tags"`
}

type PostLike struct {
	BaseModel

	PostID    uint `json:"post_id" gorm:"uniqueIndex:idx_like_post_account"`
	AccountID uint `json:"account_id" gorm:"uniqueIndex:idx_like_post_account"`

	Account Account `json:"account"`
}

type Report struct {
	BaseModel

	Reason string `json:"reason"`

	PostID    uint `json:"post_id"`
	AccountID uint `json:"account_id"`

	Post    Post    `json:"post"`
	Account Account `json:"account"`
}
