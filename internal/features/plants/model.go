package plants

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Plant represents a plant profile. Plants are a shared collection: no
// ownership relation to a user exists.
type Plant struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Location   string             `bson:"location" json:"location"`
	AcquiredAt time.Time          `bson:"acquiredAt" json:"acquiredAt"`
	Type       string             `bson:"type" json:"type"`
	Notes      string             `bson:"notes" json:"notes"`
	Image      string             `bson:"image,omitempty" json:"image,omitempty"`
	WaterAt    time.Time          `bson:"waterAt" json:"waterAt"`
}

// CreatePlantRequest represents plant creation data. Dates default to the
// creation time when omitted.
type CreatePlantRequest struct {
	Name       string     `json:"name"`
	Location   string     `json:"location"`
	AcquiredAt *time.Time `json:"acquiredAt"`
	Type       string     `json:"type"`
	Notes      string     `json:"notes"`
	WaterAt    *time.Time `json:"waterAt"`
}

// UpdatePlantRequest represents a partial or full plant update. Only fields
// present in the payload are written.
type UpdatePlantRequest struct {
	Name       *string    `json:"name"`
	Location   *string    `json:"location"`
	AcquiredAt *time.Time `json:"acquiredAt"`
	Type       *string    `json:"type"`
	Notes      *string    `json:"notes"`
	Image      *string    `json:"image"`
	WaterAt    *time.Time `json:"waterAt"`
}
