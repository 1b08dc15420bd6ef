package users

import (
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// RegisterRoutes registers user routes and initializes dependencies
func RegisterRoutes(router *gin.RouterGroup, db *mongo.Database) {
	repo := NewRepository(db)
	handler := NewHandler(repo)

	router.POST("/users", handler.Register)
	router.POST("/login", handler.Login)
	// Kept as an alias for clients that use the sessions vocabulary
	router.POST("/sessions", handler.Login)

	// Authentication is part of the route chain, never a separate
	// registration of the same path.
	router.GET("/secrets", Authenticate(repo), handler.Secrets)
}
