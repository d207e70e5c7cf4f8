package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vnkhanh/e-learning-backend/controllers"
	"github.com/vnkhanh/e-learning-backend/middleware"
)

func SetupRouter(r *gin.Engine, db *gorm.DB) *gin.Engine {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
	r.GET("/health", middleware.DBMiddleware(db), controllers.HealthCheck)

	api := r.Group("/api")

	chapters := api.Group("/chapters")
	{
		chapters.Use(middleware.DBMiddleware(db))

		chapters.POST("/register", controllers.Register)
		chapters.POST("/login", controllers.Login)
		chapters.GET("/chapterdata/:chapterId", controllers.GetChapterData)
		chapters.POST("/totalscore/:userId", controllers.UpdateUserTotalScore)
		chapters.POST("/:chapterId", controllers.SubmitChapterScore)
	}

	return r
}
