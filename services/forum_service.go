package services

import (
	"errors"
	"strings"
	"time"

	"backend/config"
	"backend/models"
)

// PostView is the serialized form of a forum post. Anonymous posts
// carry no author id and show the anonymous display name.
type PostView struct {
	ID           uint      `json:"id"`
	AuthorID     uint      `json:"author_id,omitempty"`
	Author       string    `json:"author"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	IsAnonymous  bool      `json:"is_anonymous"`
	Closed       bool      `json:"closed"`
	CommentCount int       `json:"comment_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type CommentView struct {
	ID        uint      `json:"id"`
	AuthorID  uint      `json:"author_id,omitempty"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// postView masks the author of anonymous posts. The author id stays
// in the database for moderation but never leaves the server.
func postView(post *models.ForumPost, authorName string, commentCount int) PostView {
	v := PostView{
		ID:           post.ID,
		Title:        post.Title,
		Body:         post.Body,
		IsAnonymous:  post.IsAnonymous,
		Closed:       post.Closed,
		CommentCount: commentCount,
		CreatedAt:    post.CreatedAt,
	}
	if post.IsAnonymous {
		v.Author = "Anonymous"
	} else {
		v.AuthorID = post.AuthorID
		v.Author = authorName
	}
	return v
}

// CreateForumPost publishes a new discussion post, optionally
// anonymous.
func CreateForumPost(authorID uint, title, body string, anonymous bool) (*models.ForumPost, error) {
	if strings.TrimSpace(body) == "" {
		return nil, errors.New("post body is required")
	}
	if len(title) > 200 {
		return nil, errors.New("title must be at most 200 characters")
	}
	post := &models.ForumPost{
		AuthorID:    authorID,
		Title:       strings.TrimSpace(title),
		Body:        body,
		IsAnonymous: anonymous,
	}
	return post, config.DB.Create(post).Error
}

// ListForumPosts returns the newest posts with their author names
// resolved, anonymous ones masked.
func ListForumPosts(limit int) ([]PostView, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	var posts []models.ForumPost
	if err := config.DB.Order("created_at DESC").Limit(limit).Find(&posts).Error; err != nil {
		return nil, err
	}

	views := make([]PostView, 0, len(posts))
	for i := range posts {
		p := &posts[i]
		var count int64
		config.DB.Model(&models.ForumComment{}).Where("post_id = ?", p.ID).Count(&count)
		views = append(views, postView(p, authorName(p.AuthorID), int(count)))
	}
	return views, nil
}

// GetForumPost returns one post with its comments, oldest first.
func GetForumPost(postID uint) (*PostView, []CommentView, error) {
	var post models.ForumPost
	if err := config.DB.First(&post, postID).Error; err != nil {
		return nil, nil, errors.New("post not found")
	}

	var comments []models.ForumComment
	if err := config.DB.Where("post_id = ?", postID).
		Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, nil, err
	}

	view := postView(&post, authorName(post.AuthorID), len(comments))

	commentViews := make([]CommentView, 0, len(comments))
	for _, c := range comments {
		commentViews = append(commentViews, CommentView{
			ID:        c.ID,
			AuthorID:  c.AuthorID,
			Author:    authorName(c.AuthorID),
			Body:      c.Body,
			CreatedAt: c.CreatedAt,
		})
	}
	return &view, commentViews, nil
}

// AddForumComment appends a comment to an open post.
func AddForumComment(authorID, postID uint, body string) (*models.ForumComment, error) {
	if strings.TrimSpace(body) == "" {
		return nil, errors.New("comment body is required")
	}
	var post models.ForumPost
	if err := config.DB.First(&post, postID).Error; err != nil {
		return nil, errors.New("post not found")
	}
	if post.Closed {
		return nil, errors.New("post is closed")
	}
	comment := &models.ForumComment{
		PostID:   postID,
		AuthorID: authorID,
		Body:     body,
	}
	return comment, config.DB.Create(comment).Error
}

// CloseForumPost stops further comments; only the author may close.
func CloseForumPost(userID, postID uint) error {
	var post models.ForumPost
	if err := config.DB.First(&post, postID).Error; err != nil {
		return errors.New("post not found")
	}
	if post.AuthorID != userID {
		return errors.New("unauthorized")
	}
	post.Closed = true
	return config.DB.Save(&post).Error
}

// ReportContent files a moderation report against a post or comment.
func ReportContent(reporterID uint, contentType string, contentID uint, reason string) (*models.ContentReport, error) {
	if contentType != "post" && contentType != "comment" {
		return nil, errors.New("content_type must be post or comment")
	}
	switch contentType {
	case "post":
		var post models.ForumPost
		if err := config.DB.First(&post, contentID).Error; err != nil {
			return nil, errors.New("post not found")
		}
	case "comment":
		var comment models.ForumComment
		if err := config.DB.First(&comment, contentID).Error; err != nil {
			return nil, errors.New("comment not found")
		}
	}
	report := &models.ContentReport{
		ContentType: contentType,
		ContentID:   contentID,
		ReporterID:  reporterID,
		Reason:      reason,
		Status:      "open",
	}
	return report, config.DB.Create(report).Error
}

func authorName(userID uint) string {
	var user models.User
	if err := config.DB.Select("username").First(&user, userID).Error; err != nil {
		return "Unknown"
	}
	return user.Username
}
