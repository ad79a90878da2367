package captcha_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"prodfeedback/internal/api/controllers"
	"prodfeedback/internal/services"
)

var Module = fx.Provide(
	provideCaptchaVerifier, provideProxyController,
)

func provideCaptchaVerifier() services.CaptchaVerifier {
	return services.NewCaptchaVerifier()
}

func provideProxyController(commentService services.CommentServiceInterface, captcha services.CaptchaVerifier, logger *zap.Logger) *controllers.ProxyController {
	return controllers.NewProxyController(commentService, captcha, logger)
}
