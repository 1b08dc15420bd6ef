package plants

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestValidateCreatePlant(t *testing.T) {
	cases := []struct {
		name    string
		req     CreatePlantRequest
		wantErr string
	}{
		{
			name: "valid",
			req:  CreatePlantRequest{Name: "Fern", Location: "Kitchen", Type: "tropical", Notes: "Likes humidity"},
		},
		{
			name: "three character name succeeds",
			req:  CreatePlantRequest{Name: "Ivy", Location: "Hall"},
		},
		{
			name:    "two character name fails",
			req:     CreatePlantRequest{Name: "Iv", Location: "Hall"},
			wantErr: "name must be between 3 and 20 characters",
		},
		{
			name:    "twenty one character name fails",
			req:     CreatePlantRequest{Name: strings.Repeat("a", 21), Location: "Hall"},
			wantErr: "name must be between 3 and 20 characters",
		},
		{
			name:    "missing name",
			req:     CreatePlantRequest{Location: "Hall"},
			wantErr: "name is required",
		},
		{
			name:    "missing location",
			req:     CreatePlantRequest{Name: "Fern"},
			wantErr: "location is required",
		},
		{
			name:    "notes too long",
			req:     CreatePlantRequest{Name: "Fern", Location: "Hall", Notes: strings.Repeat("n", 151)},
			wantErr: "notes cannot exceed 150 characters",
		},
		{
			name: "notes at limit",
			req:  CreatePlantRequest{Name: "Fern", Location: "Hall", Notes: strings.Repeat("n", 150)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCreatePlant(&tc.req)
			if tc.wantErr == "" {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidateUpdatePlant(t *testing.T) {
	require.NoError(t, ValidateUpdatePlant(&UpdatePlantRequest{}))
	require.NoError(t, ValidateUpdatePlant(&UpdatePlantRequest{Location: strPtr("Bedroom")}))
	require.Error(t, ValidateUpdatePlant(&UpdatePlantRequest{Name: strPtr("Iv")}))
	require.Error(t, ValidateUpdatePlant(&UpdatePlantRequest{Location: strPtr("  ")}))

	longNotes := strings.Repeat("n", 151)
	require.Error(t, ValidateUpdatePlant(&UpdatePlantRequest{Notes: &longNotes}))
}
