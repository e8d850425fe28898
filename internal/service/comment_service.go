package service

import (
	"context"
	"time"

	"github.com/gesscam/community-portal/internal/dto"
	"github.com/gesscam/community-portal/internal/model"
	"github.com/gesscam/community-portal/internal/repository"
	"github.com/gesscam/community-portal/pkg/apperror"
	"github.com/gesscam/community-portal/pkg/sanitize"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type CommentService interface {
	ListForPost(ctx context.Context, postID uuid.UUID) ([]dto.CommentResponse, error)
	Create(ctx context.Context, userID, postID uuid.UUID, req dto.CreateCommentRequest) (*dto.CommentResponse, error)
	// Update and Delete require the caller to be the comment's author or an
	// admin.
	Update(ctx context.Context, userID, commentID uuid.UUID, req dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	Delete(ctx context.Context, userID, commentID uuid.UUID) error
}

type commentService struct {
	commentRepo     repository.CommentRepository
	newsRepo        repository.NewsRepository
	userRepo        repository.UserRepository
	redisClient     *redis.Client
	commentCooldown time.Duration
}

func NewCommentService(commentRepo repository.CommentRepository, newsRepo repository.NewsRepository, userRepo repository.UserRepository, redisClient *redis.Client, commentCooldown time.Duration) CommentService {
	return &commentService{
		commentRepo:     commentRepo,
		newsRepo:        newsRepo,
		userRepo:        userRepo,
		redisClient:     redisClient,
		commentCooldown: commentCooldown,
	}
}

func (s *commentService) ListForPost(ctx context.Context, postID uuid.UUID) ([]dto.CommentResponse, error) {
	if _, err := s.newsRepo.FindByID(ctx, postID); err != nil {
		return nil, notFoundOr(err, "Post not found")
	}

	comments, err := s.commentRepo.FindByPostID(ctx, postID)
	if err != nil {
		return nil, internal(err)
	}
	return toCommentResponses(comments), nil
}

func (s *commentService) Create(ctx context.Context, userID, postID uuid.UUID, req dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if err := validateRequired(requiredField{"content", req.Content}); err != nil {
		return nil, err
	}

	if _, err := s.newsRepo.FindByID(ctx, postID); err != nil {
		return nil, notFoundOr(err, "Post not found")
	}

	allowed, err := checkAndSetCooldown(ctx, s.redisClient, userID.String(), "comment", s.commentCooldown)
	if err != nil {
		return nil, internal(err)
	}
	if !allowed {
		return nil, apperror.New(apperror.ErrRateLimitExceeded, "you are commenting too fast, try again shortly")
	}

	comment := &model.Comment{
		Content:  sanitize.HTML(req.Content),
		PostID:   postID,
		AuthorID: userID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		_ = clearCooldown(ctx, s.redisClient, userID.String(), "comment")
		return nil, internal(err)
	}

	created, err := s.commentRepo.FindByID(ctx, comment.ID)
	if err != nil {
		return nil, internal(err)
	}
	resp := toCommentResponse(*created)
	return &resp, nil
}

func (s *commentService) Update(ctx context.Context, userID, commentID uuid.UUID, req dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	if err := validateRequired(requiredField{"content", req.Content}); err != nil {
		return nil, err
	}

	comment, err := s.authorize(ctx, userID, commentID)
	if err != nil {
		return nil, err
	}

	comment.Content = sanitize.HTML(req.Content)
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, internal(err)
	}

	updated, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, internal(err)
	}
	resp := toCommentResponse(*updated)
	return &resp, nil
}

func (s *commentService) Delete(ctx context.Context, userID, commentID uuid.UUID) error {
	if _, err := s.authorize(ctx, userID, commentID); err != nil {
		return err
	}
	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		return internal(err)
	}
	return nil
}

// authorize loads the comment and verifies the caller is its author or an
// admin.
func (s *commentService) authorize(ctx context.Context, userID, commentID uuid.UUID) (*model.Comment, error) {
	comment, err := s.commentRepo.FindByID(ctx, commentID)
	if err != nil {
		return nil, notFoundOr(err, "Comment not found")
	}

	if comment.AuthorID == userID {
		return comment, nil
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, notFoundOr(err, "user not found")
	}
	if !user.IsAdmin() {
		return nil, apperror.Forbidden("you can only modify your own comments")
	}
	return comment, nil
}
