package response_models

import "prodfeedback/internal/models/db_models"

// CommentPage is the paginated moderation view: a fixed-size window of
// comments plus the totals the picker needs to render page controls.
type CommentPage struct {
	Comments      []db_models.Feedback `json:"comments"`
	TotalPages    int                  `json:"totalPages"`
	CurrentPage   int                  `json:"currentPage"`
	TotalComments int64                `json:"totalComments"`
}

func EmptyCommentPage() *CommentPage {
	return &CommentPage{
		Comments:    []db_models.Feedback{},
		TotalPages:  0,
		CurrentPage: 1,
	}
}

type ModerationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
