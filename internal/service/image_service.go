package service

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"image"
	_ "image/gif" // register GIF decoder
	"image/jpeg"
	_ "image/png" // register PNG decoder
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"foodgram/internal/config"
	"foodgram/internal/models"

	"github.com/chai2010/webp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // register WebP decoder
)

const (
	RecipeImageMaxSize   = 2048
	RecipeThumbnailSize  = 256
	recipeJPEGQuality    = 82
	recipeWebPQuality    = 70
	maxImagePayloadBytes = 10 * 1024 * 1024
)

// ImageService persists recipe images submitted as base64 payloads. The
// original is stored as JPEG alongside a WebP thumbnail; both live under the
// media directory and are served as static files.
type ImageService struct {
	mediaDir string
}

func NewImageService(cfg *config.Config) *ImageService {
	mediaDir := "./media"
	if cfg != nil && cfg.MediaDir != "" {
		mediaDir = cfg.MediaDir
	}
	return &ImageService{mediaDir: mediaDir}
}

// SaveRecipeImage decodes a base64 image payload, normalizes it and writes it
// to disk. It returns the public URL path of the stored original.
func (s *ImageService) SaveRecipeImage(data string) (string, error) {
	raw, err := decodeBase64Image(data)
	if err != nil {
		return "", err
	}
	if len(raw) > maxImagePayloadBytes {
		return "", models.NewValidationError(fmt.Sprintf("Image too large (max %dMB)", maxImagePayloadBytes/(1024*1024)))
	}

	if !isAllowedImageMIME(http.DetectContentType(raw)) {
		return "", models.NewValidationError("Invalid image type")
	}
	decoded, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return "", models.NewValidationError("Invalid image file")
	}

	original := resizeToFit(decoded, RecipeImageMaxSize, RecipeImageMaxSize)
	encodedJPG, err := encodeJPEG(original, recipeJPEGQuality)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	thumb := resizeToFit(decoded, RecipeThumbnailSize, RecipeThumbnailSize)
	encodedWebP, err := encodeWebP(thumb, recipeWebPQuality)
	if err != nil {
		return "", models.NewInternalError(err)
	}

	hash := imageContentHash(raw)
	originalRel := filepath.ToSlash(filepath.Join("recipes", hash+".jpg"))
	thumbRel := filepath.ToSlash(filepath.Join("recipes", hash+"_thumb.webp"))

	if err := writeBytesToFile(filepath.Join(s.mediaDir, originalRel), encodedJPG); err != nil {
		return "", models.NewInternalError(err)
	}
	if err := writeBytesToFile(filepath.Join(s.mediaDir, thumbRel), encodedWebP); err != nil {
		_ = os.Remove(filepath.Join(s.mediaDir, originalRel))
		return "", models.NewInternalError(err)
	}

	return "/media/" + originalRel, nil
}

// MediaDir returns the root directory the service writes images under.
func (s *ImageService) MediaDir() string {
	return s.mediaDir
}

// decodeBase64Image accepts both a raw base64 string and a data URI
// ("data:image/png;base64,...").
func decodeBase64Image(data string) ([]byte, error) {
	payload := strings.TrimSpace(data)
	if payload == "" {
		return nil, models.NewValidationError("Image payload is empty")
	}
	if strings.HasPrefix(payload, "data:") {
		idx := strings.Index(payload, ",")
		if idx < 0 {
			return nil, models.NewValidationError("Invalid image data URI")
		}
		payload = payload[idx+1:]
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, models.NewValidationError("Invalid base64 image payload")
	}
	if len(raw) == 0 {
		return nil, models.NewValidationError("Image payload is empty")
	}
	return raw, nil
}

func resizeToFit(src image.Image, maxWidth, maxHeight int) image.Image {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()
	if w <= 0 || h <= 0 {
		return src
	}
	if w <= maxWidth && h <= maxHeight {
		return src
	}

	scaleW := float64(maxWidth) / float64(w)
	scaleH := float64(maxHeight) / float64(h)
	scale := scaleW
	if scaleH < scale {
		scale = scaleH
	}
	newW := int(float64(w) * scale)
	newH := int(float64(h) * scale)
	if newW < 1 {
		newW = 1
	}
	if newH < 1 {
		newH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, newW, newH))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, xdraw.Over, nil)
	return dst
}

func encodeJPEG(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeWebP(img image.Image, quality int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := webp.Encode(buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func isAllowedImageMIME(contentType string) bool {
	switch strings.ToLower(strings.TrimSpace(contentType)) {
	case "image/jpeg", "image/jpg", "image/png", "image/gif", "image/webp":
		return true
	default:
		return false
	}
}

func imageContentHash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

func writeBytesToFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
