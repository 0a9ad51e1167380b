package service

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"foodgram/internal/config"
	"foodgram/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeTestPNG(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 100, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestSaveRecipeImage(t *testing.T) {
	mediaDir := t.TempDir()
	svc := NewImageService(&config.Config{MediaDir: mediaDir})

	url, err := svc.SaveRecipeImage(encodeTestPNG(t, 64, 48))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/media/recipes/"))
	assert.True(t, strings.HasSuffix(url, ".jpg"))

	// Both the original and the thumbnail exist on disk
	rel := strings.TrimPrefix(url, "/media/")
	if _, err := os.Stat(filepath.Join(mediaDir, rel)); err != nil {
		t.Fatalf("stored original missing: %v", err)
	}
	thumbRel := strings.TrimSuffix(rel, ".jpg") + "_thumb.webp"
	if _, err := os.Stat(filepath.Join(mediaDir, thumbRel)); err != nil {
		t.Fatalf("stored thumbnail missing: %v", err)
	}
}

func TestSaveRecipeImageDataURI(t *testing.T) {
	svc := NewImageService(&config.Config{MediaDir: t.TempDir()})

	payload := "data:image/png;base64," + encodeTestPNG(t, 16, 16)
	url, err := svc.SaveRecipeImage(payload)
	require.NoError(t, err)
	assert.NotEmpty(t, url)
}

func TestSaveRecipeImageDeterministicName(t *testing.T) {
	svc := NewImageService(&config.Config{MediaDir: t.TempDir()})
	payload := encodeTestPNG(t, 16, 16)

	first, err := svc.SaveRecipeImage(payload)
	require.NoError(t, err)
	second, err := svc.SaveRecipeImage(payload)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSaveRecipeImageInvalidPayload(t *testing.T) {
	svc := NewImageService(&config.Config{MediaDir: t.TempDir()})

	tests := []struct {
		name    string
		payload string
	}{
		{"empty", ""},
		{"not base64", "!!!not-base64!!!"},
		{"valid base64, not an image", base64.StdEncoding.EncodeToString([]byte("just text"))},
		{"data URI without comma", "data:image/png;base64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SaveRecipeImage(tt.payload)
			require.Error(t, err)

			var appErr *models.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
		})
	}
}

func TestResizeToFit(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4000, 2000))

	resized := resizeToFit(src, 2048, 2048)
	bounds := resized.Bounds()
	assert.Equal(t, 2048, bounds.Dx())
	assert.Equal(t, 1024, bounds.Dy())

	// Images already within bounds are returned as-is
	small := image.NewRGBA(image.Rect(0, 0, 100, 50))
	assert.Equal(t, small, resizeToFit(small, 2048, 2048))
}
