package routes

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/agnesk/plantcare/internal/config"
	"github.com/agnesk/plantcare/internal/features/plants"
	"github.com/agnesk/plantcare/internal/features/users"
)

// SetupRoutes wires every feature onto the router. The legacy API lives at
// the root path, so no version prefix is used.
func SetupRoutes(router *gin.Engine, db *mongo.Database, cfg *config.Config) {
	root := router.Group("")

	users.RegisterRoutes(root, db)
	plants.RegisterRoutes(root, db, cfg)
}
