package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/devconnect/backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrNotPostOwner     = errors.New("user not authorized")
	ErrAlreadyLiked     = errors.New("post already liked")
	ErrNotLiked         = errors.New("post has not yet been liked")
	ErrCommentNotFound  = errors.New("comment does not exist")
	ErrNotCommentAuthor = errors.New("user not authorized")
)

type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// Create stamps the post with a snapshot of the author's name and
// avatar so the feed renders without joins.
func (s *PostService) Create(userID uuid.UUID, text string) (*models.Post, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	post := models.Post{
		ID:       uuid.New(),
		UserID:   user.ID,
		Text:     text,
		Name:     user.Name,
		Avatar:   user.Avatar,
		Likes:    datatypes.NewJSONSlice([]models.Like{}),
		Comments: datatypes.NewJSONSlice([]models.Comment{}),
	}

	if err := s.db.Create(&post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return &post, nil
}

// List returns all posts, newest first.
func (s *PostService) List() ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (s *PostService) Get(postID uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to load post: %w", err)
	}
	return &post, nil
}

// Delete removes a post if the caller owns it.
func (s *PostService) Delete(userID, postID uuid.UUID) error {
	post, err := s.Get(postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return ErrNotPostOwner
	}
	if err := s.db.Delete(post).Error; err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}

// Like adds the caller to the likes array, once.
func (s *PostService) Like(userID, postID uuid.UUID) (*models.Post, error) {
	post, err := s.Get(postID)
	if err != nil {
		return nil, err
	}
	if post.LikedBy(userID) {
		return nil, ErrAlreadyLiked
	}

	post.Likes = append(datatypes.JSONSlice[models.Like]{{UserID: userID}}, post.Likes...)
	if err := s.saveEngagement(post); err != nil {
		return nil, err
	}
	return post, nil
}

// Unlike removes the caller from the likes array.
func (s *PostService) Unlike(userID, postID uuid.UUID) (*models.Post, error) {
	post, err := s.Get(postID)
	if err != nil {
		return nil, err
	}
	if !post.LikedBy(userID) {
		return nil, ErrNotLiked
	}

	for i, l := range post.Likes {
		if l.UserID == userID {
			post.Likes = append(post.Likes[:i], post.Likes[i+1:]...)
			break
		}
	}
	if err := s.saveEngagement(post); err != nil {
		return nil, err
	}
	return post, nil
}

// AddComment prepends a comment with a server-assigned identifier and
// an author snapshot.
func (s *PostService) AddComment(userID, postID uuid.UUID, text string) (*models.Post, error) {
	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	post, err := s.Get(postID)
	if err != nil {
		return nil, err
	}

	comment := models.Comment{
		ID:        uuid.New(),
		UserID:    user.ID,
		Text:      text,
		Name:      user.Name,
		Avatar:    user.Avatar,
		CreatedAt: time.Now().UTC(),
	}
	post.Comments = append(datatypes.JSONSlice[models.Comment]{comment}, post.Comments...)

	if err := s.saveEngagement(post); err != nil {
		return nil, err
	}
	return post, nil
}

// RemoveComment deletes a comment by identifier if the caller wrote it.
func (s *PostService) RemoveComment(userID, postID, commentID uuid.UUID) (*models.Post, error) {
	post, err := s.Get(postID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i, c := range post.Comments {
		if c.ID == commentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, ErrCommentNotFound
	}
	if post.Comments[idx].UserID != userID {
		return nil, ErrNotCommentAuthor
	}

	post.Comments = append(post.Comments[:idx], post.Comments[idx+1:]...)
	if err := s.saveEngagement(post); err != nil {
		return nil, err
	}
	return post, nil
}

// saveEngagement writes likes and comments back as a whole-document
// update, same last-write-wins contract as profile entries.
func (s *PostService) saveEngagement(post *models.Post) error {
	err := s.db.Model(&models.Post{}).
		Where("id = ?", post.ID).
		Updates(map[string]interface{}{
			"likes":    post.Likes,
			"comments": post.Comments,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to save post engagement: %w", err)
	}
	return nil
}
