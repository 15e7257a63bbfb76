package services

import (
	"encoding/json"
	"strings"
	"testing"

	"backend/models"
)

func TestPostViewMasksAnonymousAuthor(t *testing.T) {
	post := &models.ForumPost{
		AuthorID:    42,
		Title:       "Patch test results",
		Body:        "Reacted to MI after two days.",
		IsAnonymous: true,
	}

	v := postView(post, "jane", 3)

	if v.Author != "Anonymous" {
		t.Errorf("Author = %q, want Anonymous", v.Author)
	}
	if v.AuthorID != 0 {
		t.Errorf("AuthorID = %d, want 0 (masked)", v.AuthorID)
	}

	// The author id must not survive serialization either.
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(raw), "author_id") {
		t.Errorf("anonymous post JSON leaks author_id: %s", raw)
	}
}

func TestPostViewNamedAuthor(t *testing.T) {
	post := &models.ForumPost{
		AuthorID: 42,
		Title:    "Fragrance-free moisturizers",
		Body:     "What has worked for you?",
	}

	v := postView(post, "jane", 0)

	if v.Author != "jane" || v.AuthorID != 42 {
		t.Errorf("postView = author %q id %d, want jane/42", v.Author, v.AuthorID)
	}
	if v.CommentCount != 0 || v.Closed {
		t.Errorf("postView = %+v, want open post with no comments", v)
	}
}
