package request_models

type SubmitFeedbackRequest struct {
	ProductID         string `json:"productId"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Comment           string `json:"comment"`
	RecaptchaResponse string `json:"recaptchaResponse"`
}

type ModerateCommentRequest struct {
	Action    string `form:"action"`
	CommentID string `form:"commentId"`
	Name      string `form:"name"`
	Email     string `form:"email"`
	Comment   string `form:"comment"`
}
