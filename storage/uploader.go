package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

var ErrUnsupportedContentType = errors.New("unsupported file content type")

type UploadResult struct {
	Key      string
	Location string
	ETag     string
}

type FileUploader interface {
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	GetPublicURL(key string) string
}

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Документы игроков можно присылать и сканом в PDF.
var documentExtensions = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

// ImageExtension проверяет тип изображения и возвращает расширение для ключа.
func ImageExtension(contentType string) (string, error) {
	return extensionFor(imageExtensions, contentType)
}

func DocumentExtension(contentType string) (string, error) {
	return extensionFor(documentExtensions, contentType)
}

func extensionFor(allowed map[string]string, contentType string) (string, error) {
	ct := strings.ToLower(strings.TrimSpace(strings.Split(contentType, ";")[0]))
	ext, ok := allowed[ct]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedContentType, contentType)
	}
	return ext, nil
}

func TeamLogoKey(teamID, ext string) string {
	return path.Join("teams", teamID, "logo-"+uuid.NewString()+ext)
}

func PlayerDocumentKey(teamID, playerID, docType, ext string) string {
	return path.Join("teams", teamID, "players", playerID, docType+"-"+uuid.NewString()+ext)
}

func MatchReportKey(matchID, ext string) string {
	return path.Join("matches", matchID, "acta-"+uuid.NewString()+ext)
}

func joinPublicURL(base, key string) string {
	if base == "" || key == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
