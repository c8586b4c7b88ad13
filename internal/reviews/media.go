package reviews

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/rohitvarpe/stitchkart-backend/pkg/config"
	pkgerrors "github.com/rohitvarpe/stitchkart-backend/pkg/errors"
)

var (
	imageExtensions = map[string]struct{}{
		".png": {}, ".jpg": {}, ".jpeg": {}, ".gif": {}, ".webp": {},
	}
	videoExtensions = map[string]struct{}{
		".mp4": {}, ".webm": {}, ".mov": {}, ".avi": {},
	}
)

// MediaUploadResult carries the stored URLs, split by kind. The client
// attaches these to the review it creates next.
type MediaUploadResult struct {
	Images []string `json:"images"`
	Videos []string `json:"videos"`
}

// MediaStore writes review media to local disk and hands back public URLs.
type MediaStore struct {
	cfg config.MediaConfig
}

// NewMediaStore constructs a media store for the configured upload dir.
func NewMediaStore(cfg config.MediaConfig) (*MediaStore, error) {
	if cfg.UploadDir == "" {
		return nil, fmt.Errorf("media upload dir required")
	}
	return &MediaStore{cfg: cfg}, nil
}

// SaveAll validates and stores the uploaded files under a per-customer
// prefix. Any unsupported extension rejects the whole batch; no half-stored
// upload is reported back.
func (m *MediaStore) SaveAll(customerID uint, files []*multipart.FileHeader) (*MediaUploadResult, error) {
	if len(files) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "no files provided")
	}

	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if _, ok := imageExtensions[ext]; ok {
			continue
		}
		if _, ok := videoExtensions[ext]; ok {
			continue
		}
		return nil, pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("unsupported file type: %s", ext))
	}

	dir := filepath.Join(m.cfg.UploadDir, fmt.Sprintf("customer_%d", customerID))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating upload dir")
	}

	result := &MediaUploadResult{Images: []string{}, Videos: []string{}}
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		name := uuid.NewString() + ext
		if err := m.write(file, filepath.Join(dir, name)); err != nil {
			return nil, err
		}

		url := path.Join(m.cfg.PublicBase, fmt.Sprintf("customer_%d", customerID), name)
		if _, ok := videoExtensions[ext]; ok {
			result.Videos = append(result.Videos, url)
		} else {
			result.Images = append(result.Images, url)
		}
	}
	return result, nil
}

func (m *MediaStore) write(file *multipart.FileHeader, dst string) error {
	src, err := file.Open()
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "opening upload")
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "creating media file")
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "writing media file")
	}
	return nil
}
