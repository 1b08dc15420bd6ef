package plants

import (
	"errors"
	"strings"
)

const (
	nameMinLen  = 3
	nameMaxLen  = 20
	notesMaxLen = 150
)

func validateName(name string) error {
	if name == "" {
		return errors.New("name is required")
	}
	if len(name) < nameMinLen || len(name) > nameMaxLen {
		return errors.New("name must be between 3 and 20 characters")
	}
	return nil
}

// ValidateCreatePlant checks a creation payload before it reaches the store
func ValidateCreatePlant(req *CreatePlantRequest) error {
	if err := validateName(strings.TrimSpace(req.Name)); err != nil {
		return err
	}
	if strings.TrimSpace(req.Location) == "" {
		return errors.New("location is required")
	}
	if len(req.Notes) > notesMaxLen {
		return errors.New("notes cannot exceed 150 characters")
	}
	return nil
}

// ValidateUpdatePlant checks only the fields present in an update payload
func ValidateUpdatePlant(req *UpdatePlantRequest) error {
	if req.Name != nil {
		if err := validateName(strings.TrimSpace(*req.Name)); err != nil {
			return err
		}
	}
	if req.Location != nil && strings.TrimSpace(*req.Location) == "" {
		return errors.New("location cannot be empty")
	}
	if req.Notes != nil && len(*req.Notes) > notesMaxLen {
		return errors.New("notes cannot exceed 150 characters")
	}
	return nil
}
