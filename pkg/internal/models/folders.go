package models

const (
	FolderStatusPublic  = "public"
	FolderStatusPrivate = "private"
)

type Folder struct {
	BaseModel

	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status" gorm:"default:'public'"`

	AccountID uint    `json:"account_id"`
	Account   Account `json:"account"`

	SavedPosts []SavedPost `json:"saved_posts" gorm:"foreignKey:FolderID"`

	IsSaved bool `json:"is_saved" gorm:"-"`
}

type SavedPost struct {
	BaseModel

	AccountID uint `json:"account_id" gorm:"uniqueIndex:idx_saved_account_folder_post"`
	FolderID  uint `json:"folder_id" gorm:"uniqueIndex:idx_saved_account_folder_post"`
	PostID    uint `json:"post_id" gorm:"uniqueIndex:idx_saved_account_folder_post"`

	Folder Folder `json:"folder"`
	Post   Post   `json:"post"`
}
