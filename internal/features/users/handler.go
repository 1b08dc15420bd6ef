package users

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/agnesk/plantcare/internal/pkg/password"
	"github.com/agnesk/plantcare/internal/pkg/response"
	"github.com/agnesk/plantcare/internal/pkg/token"
)

// Store is the credential store contract the handlers depend on
type Store interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByToken(ctx context.Context, accessToken string) (*User, error)
}

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// Register godoc
// @Summary Register a new user
// @Description Create an account and return its id and access token
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "User registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorResponse
// @Failure 409 {object} response.ErrorResponse
// @Router /users [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateRegister(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	digest, err := password.Hash(req.Password)
	if err != nil {
		response.InternalServerError(c, "Failed to process password")
		return
	}

	accessToken, err := token.Issue()
	if err != nil {
		response.InternalServerError(c, "Failed to issue access token")
		return
	}

	user := &User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    digest,
		AccessToken: accessToken,
	}

	if err := h.store.Create(c.Request.Context(), user); err != nil {
		if errors.Is(err, ErrDuplicateUser) {
			response.Conflict(c, err.Error(), "DUPLICATE_KEY")
			return
		}
		response.DatabaseError(c, "Could not create user")
		return
	}

	response.Created(c, gin.H{
		"id":          user.ID.Hex(),
		"accessToken": user.AccessToken,
	})
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and return the access token issued at registration
// @Tags users
// @Accept json
// @Produce json
// @Param request body LoginRequest true "User login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorResponse
// @Router /login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateLogin(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	user, err := h.store.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		response.DatabaseError(c, "Could not find user")
		return
	}

	// Wrong email and wrong password are indistinguishable to the client;
	// both produce the legacy notFound body rather than a 401.
	if user == nil || !password.Verify(req.Password, user.Password) {
		c.JSON(http.StatusOK, gin.H{"notFound": true})
		return
	}

	response.Success(c, gin.H{
		"name":        user.Name,
		"userId":      user.ID.Hex(),
		"accessToken": user.AccessToken,
	})
}

// Secrets godoc
// @Summary Protected demo content
// @Description Return a fixed payload, only for authenticated users
// @Tags users
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]bool
// @Router /secrets [get]
func (h *Handler) Secrets(c *gin.Context) {
	response.Success(c, gin.H{"secret": "This is a top secret message!"})
}
