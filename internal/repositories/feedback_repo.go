package repositories

import (
	"context"

	"gorm.io/gorm"
	"prodfeedback/internal/models/db_models"
)

type FeedbackRepositoryInterface interface {
	CountByProduct(ctx context.Context, productID string) (int64, error)
	ListByProduct(ctx context.Context, productID string, offset, limit int) ([]db_models.Feedback, error)
	Create(ctx context.Context, feedback *db_models.Feedback) error
	Update(ctx context.Context, id int64, name, email, comment string) (*db_models.Feedback, error)
	Delete(ctx context.Context, id int64) error
}

type FeedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{db: db}
}

func (r *FeedbackRepository) CountByProduct(ctx context.Context, productID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Feedback{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}

// ListByProduct orders newest first; the id tiebreak keeps the ordering
// deterministic when timestamps collide.
func (r *FeedbackRepository) ListByProduct(ctx context.Context, productID string, offset, limit int) ([]db_models.Feedback, error) {
	var feedbacks []db_models.Feedback
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&feedbacks).Error
	return feedbacks, err
}

func (r *FeedbackRepository) Create(ctx context.Context, feedback *db_models.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

// Update touches only the three mutable columns; id and created_at are
// immutable after creation.
func (r *FeedbackRepository) Update(ctx context.Context, id int64, name, email, comment string) (*db_models.Feedback, error) {
	var feedback db_models.Feedback
	if err := r.db.WithContext(ctx).First(&feedback, id).Error; err != nil {
		return nil, err
	}

	err := r.db.WithContext(ctx).
		Model(&feedback).
		Updates(map[string]interface{}{
			"name":    name,
			"email":   email,
			"comment": comment,
		}).Error
	if err != nil {
		return nil, err
	}

	return &feedback, nil
}

func (r *FeedbackRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&db_models.Feedback{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
