package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/vitrine/internal/logger"
	"github.com/MKhiriev/vitrine/internal/store"
	"github.com/MKhiriev/vitrine/models"
)

// allowedExtensions lists the accepted file extensions per upload kind.
var allowedExtensions = map[models.UploadKind][]string{
	models.UploadDocument: {".pdf", ".doc", ".docx", ".xls", ".xlsx", ".ppt", ".pptx", ".txt", ".csv", ".odt"},
	models.UploadImage:    {".jpg", ".jpeg", ".png", ".gif", ".webp", ".svg"},
	models.UploadVideo:    {".mp4", ".webm", ".mov", ".m4v", ".ogv"},
	models.UploadPodcast:  {".mp3", ".wav", ".m4a", ".ogg", ".aac"},
	models.UploadLogo:     {".png", ".jpg", ".jpeg", ".svg", ".webp", ".ico"},
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

type uploadService struct {
	files   store.FileStorage
	maxSize int64
	now     func() time.Time

	logger *logger.Logger
}

func NewUploadService(files store.FileStorage, maxSize int64, logger *logger.Logger) UploadService {
	return &uploadService{
		files:   files,
		maxSize: maxSize,
		now:     time.Now,
		logger:  logger,
	}
}

// Upload stores the file as "<unix-ms>-<sanitised name>" in the folder of
// kind. An empty kind is a document.
func (u *uploadService) Upload(ctx context.Context, kind models.UploadKind, fileName string, r io.Reader) (models.UploadedFile, error) {
	log := logger.FromContext(ctx)

	if kind == "" {
		kind = models.UploadDocument
	}
	allowed, ok := allowedExtensions[kind]
	if !ok {
		return models.UploadedFile{}, fmt.Errorf("%w: %q", ErrUnsupportedUploadType, kind)
	}

	base := filepath.Base(strings.ReplaceAll(fileName, `\`, "/"))
	ext := strings.ToLower(filepath.Ext(base))
	if !slices.Contains(allowed, ext) {
		return models.UploadedFile{}, fmt.Errorf("%w: %q for %s", ErrFileTypeNotAllowed, ext, kind)
	}

	name := fmt.Sprintf("%d-%s", u.now().UnixMilli(), SanitizeFileName(base))
	folder := kind.Folder()
	size, err := u.files.Save(ctx, folder, name, r, u.maxSize)
	if err != nil {
		log.Err(err).Str("file", name).Str("type", string(kind)).Msg("upload failed")
		return models.UploadedFile{}, err
	}

	log.Info().Str("file", name).Int64("size", size).Msg("file uploaded")
	return models.UploadedFile{
		Success:  true,
		URL:      "/" + folder + "/" + name,
		FileName: name,
		Size:     size,
		Type:     kind,
	}, nil
}

// SanitizeFileName replaces every character other than ASCII letters,
// digits, dots and dashes with an underscore.
func SanitizeFileName(name string) string {
	return unsafeNameChars.ReplaceAllString(name, "_")
}
