package services_test

import (
	"testing"

	"github.com/meraki-social/meraki/pkg/internal/services"
)

func TestCommentThreading(t *testing.T) {
	author := newTestAccount(t)
	reader := newTestAccount(t)

	post, err := services.NewPost(author, nil, "Hello", "World", "")
	if err != nil {
		t.Fatalf("unable to create post: %v", err)
	}

	first, err := services.NewComment(reader, post, "first", nil)
	if err != nil {
		t.Fatalf("unable to comment: %v", err)
	}
	second, err := services.NewComment(author, post, "second", nil)
	if err != nil {
		t.Fatalf("unable to comment: %v", err)
	}
	reply, err := services.NewComment(author, post, "a reply", &first.ID)
	if err != nil {
		t.Fatalf("unable to reply: %v", err)
	}
	// Replying to a reply is stored but never rendered.
	if _, err := services.NewComment(reader, post, "deep reply", &reply.ID); err != nil {
		t.Fatalf("unable to reply to a reply: %v", err)
	}

	comments, err := services.ListPostComments(post)
	if err != nil {
		t.Fatalf("unable to list comments: %v", err)
	}

	if len(comments) != 2 {
		t.Fatalf("expected 2 top-level comments, got %d", len(comments))
	}
	if comments[0].ID != second.ID {
		t.Error("top-level comments should be newest first")
	}

	var replies int
	for _, comment := range comments {
		for _, item := range comment.Replies {
			replies++
			if item.ID != reply.ID {
				t.Errorf("unexpected reply %d surfaced in the thread", item.ID)
			}
		}
	}
	if replies != 1 {
		t.Errorf("expected exactly 1 visible reply, got %d", replies)
	}

	if services.CountPostComments(post) != 4 {
		t.Error("all four rows should still be counted in storage")
	}
}

func TestRedactCommentKeepsReplies(t *testing.T) {
	author := newTestAccount(t)

	post, err := services.NewPost(author, nil, "Hello", "World", "")
	if err != nil {
		t.Fatalf("unable to create post: %v", err)
	}
	parent, err := services.NewComment(author, post, "parent", nil)
	if err != nil {
		t.Fatalf("unable to comment: %v", err)
	}
	if _, err := services.NewComment(author, post, "child", &parent.ID); err != nil {
		t.Fatalf("unable to reply: %v", err)
	}

	if err := services.RedactComment(parent); err != nil {
		t.Fatalf("unable to redact comment: %v", err)
	}

	reloaded, err := services.GetComment(parent.ID)
	if err != nil {
		t.Fatalf("redacted comment should still exist: %v", err)
	}
	if reloaded.Content != "" {
		t.Errorf("redacted comment should have blank content, got %q", reloaded.Content)
	}

	comments, err := services.ListPostComments(post)
	if err != nil {
		t.Fatalf("unable to list comments: %v", err)
	}
	if len(comments) != 1 || len(comments[0].Replies) != 1 {
		t.Error("replies should stay anchored to the redacted comment")
	}
}

func TestDeleteCommentPermanently(t *testing.T) {
	author := newTestAccount(t)

	post, err := services.NewPost(author, nil, "Hello", "World", "")
	if err != nil {
		t.Fatalf("unable to create post: %v", err)
	}
	parent, err := services.NewComment(author, post, "parent", nil)
	if err != nil {
		t.Fatalf("unable to comment: %v", err)
	}
	child, err := services.NewComment(author, post, "child", &parent.ID)
	if err != nil {
		t.Fatalf("unable to reply: %v", err)
	}

	if err := services.DeleteCommentPermanently(parent); err != nil {
		t.Fatalf("unable to hard delete comment: %v", err)
	}

	if _, err := services.GetComment(parent.ID); err == nil {
		t.Error("hard deleted comment should be gone")
	}
	if _, err := services.GetComment(child.ID); err == nil {
		t.Error("replies should be gone with the hard deleted comment")
	}
}
