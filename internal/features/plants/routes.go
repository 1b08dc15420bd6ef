package plants

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agnesk/plantcare/internal/config"
	"github.com/agnesk/plantcare/internal/pkg/cloudinary"
)

// RegisterRoutes registers plant routes and initializes dependencies
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database, cfg *config.Config) {
	repo := NewRepository(db)

	var uploader Uploader
	cld, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryUploadFolder)
	if err != nil {
		// Image-less plant creation still works; uploads will be rejected.
		log.Printf("Failed to initialize cloudinary service for plants: %v", err)
	} else {
		uploader = cld
	}

	handler := NewHandler(repo, uploader)

	plantRoutes := router.Group("/plants")
	{
		plantRoutes.GET("", handler.List)
		plantRoutes.POST("", handler.Create)
		plantRoutes.GET("/:id", handler.Get)
		plantRoutes.PUT("/:id", handler.Update)
		plantRoutes.DELETE("/:id", handler.Delete)
	}
}
