package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"prodfeedback/cmd/fx/captcha_fx"
	"prodfeedback/cmd/fx/catalog_fx"
	"prodfeedback/cmd/fx/comment_fx"
	"prodfeedback/cmd/fx/db_fx"
	"prodfeedback/cmd/fx/logger_fx"
	"prodfeedback/cmd/fx/session_fx"
	"prodfeedback/internal/api/controllers"
	"prodfeedback/pkg/middleware"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		logger_fx.Module,
		db_fx.Module,
		session_fx.Module,
		comment_fx.Module,
		catalog_fx.Module,
		captcha_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),

		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	resolver middleware.SessionResolver,
	commentController *controllers.CommentController,
	productController *controllers.ProductController,
	proxyController *controllers.ProxyController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, resolver, commentController, productController, proxyController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	resolver middleware.SessionResolver,
	commentController *controllers.CommentController,
	productController *controllers.ProductController,
	proxyController *controllers.ProxyController) {

	admin := r.Group("/", middleware.SessionMiddleware(resolver))
	admin.GET("/products", productController.ListProducts)
	admin.GET("/comments", commentController.GetComments)
	admin.POST("/comments", commentController.ModerateComment)

	proxy := r.Group("/proxy", middleware.SessionMiddleware(resolver))
	proxy.POST("/intake", proxyController.SubmitFeedback)
	proxy.GET("/intake", proxyController.ListFeedback)
}
