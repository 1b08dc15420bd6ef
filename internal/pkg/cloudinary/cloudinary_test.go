package cloudinary

import (
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateImageFile(t *testing.T) {
	cases := []struct {
		name     string
		filename string
		size     int64
		wantErr  bool
	}{
		{name: "jpg allowed", filename: "fern.jpg", size: 1024, wantErr: false},
		{name: "jpeg allowed", filename: "fern.JPEG", size: 1024, wantErr: false},
		{name: "png allowed", filename: "monstera.png", size: 1024, wantErr: false},
		{name: "gif rejected", filename: "cactus.gif", size: 1024, wantErr: true},
		{name: "no extension rejected", filename: "plant", size: 1024, wantErr: true},
		{name: "too large", filename: "big.jpg", size: MaxImageSize + 1, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			header := &multipart.FileHeader{Filename: tc.filename, Size: tc.size}
			err := ValidateImageFile(header)
			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewServiceRequiresCredentials(t *testing.T) {
	_, err := NewService("", "key", "secret", "plant-project")
	require.Error(t, err)

	_, err = NewService("cloud", "", "secret", "plant-project")
	require.Error(t, err)
}
