package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"prodfeedback/internal/models/db_models"
	"prodfeedback/internal/models/response_models"
	"prodfeedback/internal/repositories"
	"prodfeedback/pkg/utils"
)

// commentPageSize is moderation policy, not caller input.
const commentPageSize = 3

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type CommentServiceInterface interface {
	GetPage(ctx context.Context, productID string, page int) (*response_models.CommentPage, error)
	CreateComment(ctx context.Context, productID, name, email, comment string) (*db_models.Feedback, error)
	EditComment(ctx context.Context, commentID int64, name, email, comment string) (*db_models.Feedback, error)
	DeleteComment(ctx context.Context, commentID int64) error
}

type CommentService struct {
	feedbackRepo repositories.FeedbackRepositoryInterface
	logger       *zap.Logger
}

func NewCommentService(feedbackRepo repositories.FeedbackRepositoryInterface, logger *zap.Logger) CommentServiceInterface {
	return &CommentService{feedbackRepo: feedbackRepo, logger: logger}
}

// GetPage returns one fixed-size window of comments for a product,
// newest first. An empty productID short-circuits to an empty page
// without touching the store. Pages past the end come back empty rather
// than failing.
func (s *CommentService) GetPage(ctx context.Context, productID string, page int) (*response_models.CommentPage, error) {
	if productID == "" {
		return response_models.EmptyCommentPage(), nil
	}

	if page < 1 {
		page = 1
	}

	totalComments, err := s.feedbackRepo.CountByProduct(ctx, productID)
	if err != nil {
		s.logger.Error("counting comments failed",
			zap.String("productId", productID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	totalPages := int((totalComments + commentPageSize - 1) / commentPageSize)
	offset := (page - 1) * commentPageSize

	comments, err := s.feedbackRepo.ListByProduct(ctx, productID, offset, commentPageSize)
	if err != nil {
		s.logger.Error("listing comments failed",
			zap.String("productId", productID), zap.Int("page", page), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	if comments == nil {
		comments = []db_models.Feedback{}
	}

	return &response_models.CommentPage{
		Comments:      comments,
		TotalPages:    totalPages,
		CurrentPage:   page,
		TotalComments: totalComments,
	}, nil
}

func (s *CommentService) CreateComment(ctx context.Context, productID, name, email, comment string) (*db_models.Feedback, error) {
	if err := validateSubmission(productID, name, email, comment); err != nil {
		return nil, err
	}

	feedback := &db_models.Feedback{
		ProductID: productID,
		Name:      name,
		Email:     email,
		Comment:   comment,
	}

	if err := s.feedbackRepo.Create(ctx, feedback); err != nil {
		s.logger.Error("creating comment failed",
			zap.String("productId", productID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}

	return feedback, nil
}

func (s *CommentService) EditComment(ctx context.Context, commentID int64, name, email, comment string) (*db_models.Feedback, error) {
	updated, err := s.feedbackRepo.Update(ctx, commentID, name, email, comment)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.ErrCommentNotFound
		}
		s.logger.Error("updating comment failed",
			zap.Int64("commentId", commentID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return updated, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, commentID int64) error {
	if err := s.feedbackRepo.Delete(ctx, commentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrCommentNotFound
		}
		s.logger.Error("deleting comment failed",
			zap.Int64("commentId", commentID), zap.Error(err))
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

func validateSubmission(productID, name, email, comment string) error {
	switch {
	case productID == "":
		return fmt.Errorf("%w: productId is required", utils.ErrValidation)
	case name == "":
		return fmt.Errorf("%w: name is required", utils.ErrValidation)
	case email == "":
		return fmt.Errorf("%w: email is required", utils.ErrValidation)
	case comment == "":
		return fmt.Errorf("%w: comment is required", utils.ErrValidation)
	case !emailPattern.MatchString(email):
		return fmt.Errorf("%w: invalid email format", utils.ErrValidation)
	}
	return nil
}
