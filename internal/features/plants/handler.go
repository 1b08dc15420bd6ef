package plants

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/agnesk/plantcare/internal/pkg/cloudinary"
	"github.com/agnesk/plantcare/internal/pkg/response"
)

// Store is the plant store contract the handlers depend on
type Store interface {
	Create(ctx context.Context, plant *Plant) error
	List(ctx context.Context) ([]Plant, error)
	GetByID(ctx context.Context, id string) (*Plant, error)
	UpdateByID(ctx context.Context, id string, updates bson.M) (*Plant, error)
	DeleteByID(ctx context.Context, id string) error
}

// Uploader stores image binaries externally and returns a reference URL
type Uploader interface {
	UploadImage(ctx context.Context, file multipart.File, filename string) (*cloudinary.UploadResult, error)
}

type Handler struct {
	store    Store
	uploader Uploader
}

func NewHandler(store Store, uploader Uploader) *Handler {
	return &Handler{store: store, uploader: uploader}
}

// Create godoc
// @Summary Create a plant profile
// @Description Create a plant, optionally with an image upload (multipart)
// @Tags plants
// @Accept json,mpfd
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorResponse
// @Router /plants [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePlantRequest
	var imageURL string

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		var ok bool
		req, ok = h.bindMultipart(c)
		if !ok {
			return
		}

		url, ok := h.uploadImage(c)
		if !ok {
			return
		}
		imageURL = url
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BindJSONError(c, err)
			return
		}
	}

	if err := ValidateCreatePlant(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	plant := &Plant{
		Name:     strings.TrimSpace(req.Name),
		Location: strings.TrimSpace(req.Location),
		Type:     req.Type,
		Notes:    req.Notes,
		Image:    imageURL,
	}
	if req.AcquiredAt != nil {
		plant.AcquiredAt = *req.AcquiredAt
	}
	if req.WaterAt != nil {
		plant.WaterAt = *req.WaterAt
	}

	if err := h.store.Create(c.Request.Context(), plant); err != nil {
		response.DatabaseError(c, "Could not create plant profile")
		return
	}

	response.Created(c, plant)
}

// bindMultipart reads plant fields from a multipart form
func (h *Handler) bindMultipart(c *gin.Context) (CreatePlantRequest, bool) {
	req := CreatePlantRequest{
		Name:     c.PostForm("name"),
		Location: c.PostForm("location"),
		Type:     c.PostForm("type"),
		Notes:    c.PostForm("notes"),
	}

	for _, field := range []struct {
		name string
		dst  **time.Time
	}{
		{"acquiredAt", &req.AcquiredAt},
		{"waterAt", &req.WaterAt},
	} {
		value := c.PostForm(field.name)
		if value == "" {
			continue
		}
		parsed, err := parseDate(value)
		if err != nil {
			response.ValidationFailed(c, field.name+" must be an RFC 3339 or YYYY-MM-DD date")
			return req, false
		}
		*field.dst = parsed
	}

	return req, true
}

// uploadImage stores an attached image, if any, and returns its URL. Upload
// failures are surfaced distinctly from plant field validation.
func (h *Handler) uploadImage(c *gin.Context) (string, bool) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", true
		}
		response.BadRequest(c, "Could not read image upload", "INVALID_FILE")
		return "", false
	}
	defer file.Close()

	if err := cloudinary.ValidateImageFile(header); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_FILE")
		return "", false
	}

	if h.uploader == nil {
		response.InternalServerError(c, "Image storage is not configured", "UPLOAD_FAILED")
		return "", false
	}

	result, err := h.uploader.UploadImage(c.Request.Context(), file, header.Filename)
	if err != nil {
		response.InternalServerError(c, "Failed to upload image", "UPLOAD_FAILED")
		return "", false
	}

	return result.URL, true
}

// Get godoc
// @Summary Get a plant by ID
// @Tags plants
// @Produce json
// @Param id path string true "Plant ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.ErrorResponse
// @Router /plants/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	plant, err := h.store.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.DatabaseError(c, "Could not fetch plant profile")
		return
	}
	if plant == nil {
		response.NotFound(c, "Plant not found")
		return
	}

	response.Success(c, plant)
}

// List godoc
// @Summary List all plants
// @Tags plants
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /plants [get]
func (h *Handler) List(c *gin.Context) {
	plants, err := h.store.List(c.Request.Context())
	if err != nil {
		response.DatabaseError(c, "Could not list plants")
		return
	}

	response.Success(c, plants)
}

// Update godoc
// @Summary Update a plant
// @Description Replace only the provided fields and return the updated plant
// @Tags plants
// @Accept json
// @Produce json
// @Param id path string true "Plant ID"
// @Param request body UpdatePlantRequest true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorResponse
// @Failure 404 {object} response.ErrorResponse
// @Router /plants/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdatePlantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	if err := ValidateUpdatePlant(&req); err != nil {
		response.ValidationFailed(c, err.Error())
		return
	}

	updates := bson.M{}
	if req.Name != nil {
		updates["name"] = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		updates["location"] = strings.TrimSpace(*req.Location)
	}
	if req.AcquiredAt != nil {
		updates["acquiredAt"] = *req.AcquiredAt
	}
	if req.Type != nil {
		updates["type"] = *req.Type
	}
	if req.Notes != nil {
		updates["notes"] = *req.Notes
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.WaterAt != nil {
		updates["waterAt"] = *req.WaterAt
	}

	if len(updates) == 0 {
		response.BadRequest(c, "No fields to update", "VALIDATION_FAILED")
		return
	}

	plant, err := h.store.UpdateByID(c.Request.Context(), c.Param("id"), updates)
	if err != nil {
		response.DatabaseError(c, "Could not update plant profile")
		return
	}
	if plant == nil {
		response.NotFound(c, "Plant not found")
		return
	}

	response.Success(c, plant)
}

// Delete godoc
// @Summary Delete a plant
// @Tags plants
// @Produce json
// @Param id path string true "Plant ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} response.ErrorResponse
// @Router /plants/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.DeleteByID(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.NotFound(c, "Plant not found")
			return
		}
		response.DatabaseError(c, "Could not delete plant profile")
		return
	}

	response.Success(c, map[string]string{"message": "Plant deleted successfully"})
}

func parseDate(value string) (*time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, errors.New("unrecognized date format")
}
