package response_models

import "prodfeedback/internal/models/db_models"

type ProxySubmitResponse struct {
	Success  bool                `json:"success"`
	Feedback *db_models.Feedback `json:"feedback,omitempty"`
	Error    string              `json:"error,omitempty"`
}

type ProxyListResponse struct {
	Success       bool                 `json:"success"`
	Feedback      []db_models.Feedback `json:"feedback"`
	TotalPages    int                  `json:"totalPages"`
	CurrentPage   int                  `json:"currentPage"`
	TotalComments int64                `json:"totalComments"`
}
