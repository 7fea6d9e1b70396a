package services_test

import (
	"testing"

	"github.com/meraki-social/meraki/pkg/internal/database"
	"github.com/meraki-social/meraki/pkg/internal/models"
	"github.com/meraki-social/meraki/pkg/internal/services"
)

func savedFolderIdx(t *testing.T, user models.Account, post models.Post) map[uint]bool {
	t.Helper()

	folders, err := services.ListFoldersForPost(user, post)
	if err != nil {
		t.Fatalf("unable to list folders for post: %v", err)
	}

	out := map[uint]bool{}
	for _, folder := range folders {
		out[folder.ID] = folder.IsSaved
	}
	return out
}

func TestSavePostTogglesPerFolder(t *testing.T) {
	user := newTestAccount(t)

	post, err := services.NewPost(user, nil, "Hello", "World", "")
	if err != nil {
		t.Fatalf("unable to create post: %v", err)
	}

	reading, err := services.NewFolder(user, "Reading", "", models.FolderStatusPublic)
	if err != nil {
		t.Fatalf("unable to create folder: %v", err)
	}
	later, err := services.NewFolder(user, "Later", "", models.FolderStatusPrivate)
	if err != nil {
		t.Fatalf("unable to create folder: %v", err)
	}

	if err := services.SavePostToFolders(user, post, []uint{reading.ID, later.ID}); err != nil {
		t.Fatalf("unable to save post: %v", err)
	}
	saved := savedFolderIdx(t, user, post)
	if !saved[reading.ID] || !saved[later.ID] {
		t.Error("post should be saved in both folders")
	}

	// Repeating with one folder flips it off and leaves the other.
	if err := services.SavePostToFolders(user, post, []uint{reading.ID}); err != nil {
		t.Fatalf("unable to save post: %v", err)
	}
	saved = savedFolderIdx(t, user, post)
	if saved[reading.ID] {
		t.Error("post should have been unsaved from the first folder")
	}
	if !saved[later.ID] {
		t.Error("post should stay saved in the untouched folder")
	}

	stranger := newTestAccount(t)
	if err := services.SavePostToFolders(stranger, post, []uint{reading.ID}); err == nil {
		t.Error("saving into someone else's folder should fail")
	}
}

func TestDeleteFolderCascadesSavedPosts(t *testing.T) {
	user := newTestAccount(t)

	post, err := services.NewPost(user, nil, "Hello", "World", "")
	if err != nil {
		t.Fatalf("unable to create post: %v", err)
	}
	folder, err := services.NewFolder(user, "Reading", "", models.FolderStatusPublic)
	if err != nil {
		t.Fatalf("unable to create folder: %v", err)
	}
	if err := services.SavePostToFolders(user, post, []uint{folder.ID}); err != nil {
		t.Fatalf("unable to save post: %v", err)
	}

	if err := services.DeleteFolder(folder); err != nil {
		t.Fatalf("unable to delete folder: %v", err)
	}

	var count int64
	database.C.Model(&models.SavedPost{}).Where("folder_id = ?", folder.ID).Count(&count)
	if count != 0 {
		t.Error("saved posts should be gone with the folder")
	}
	if _, err := services.GetPost(database.C, post.ID); err != nil {
		t.Error("the post itself should survive the folder deletion")
	}
}
