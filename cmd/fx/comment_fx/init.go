package comment_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"prodfeedback/internal/api/controllers"
	"prodfeedback/internal/repositories"
	"prodfeedback/internal/services"
)

var Module = fx.Provide(
	provideFeedbackRepo, provideCommentService, provideCommentController,
)

func provideFeedbackRepo(db *gorm.DB) repositories.FeedbackRepositoryInterface {
	return repositories.NewFeedbackRepository(db)
}

func provideCommentService(feedbackRepo repositories.FeedbackRepositoryInterface, logger *zap.Logger) services.CommentServiceInterface {
	return services.NewCommentService(feedbackRepo, logger)
}

func provideCommentController(commentService services.CommentServiceInterface, logger *zap.Logger) *controllers.CommentController {
	return controllers.NewCommentController(commentService, logger)
}
