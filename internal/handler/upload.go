package handler

import (
	"errors"
	"fmt"
	"net/http"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	apperrors "blackeagles/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var allowedImageExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Uploader writes admin image uploads to dir and returns their public URL.
type Uploader struct {
	dir       string
	urlPrefix string
	now       func() time.Time
}

func NewUploader(dir, urlPrefix string) *Uploader {
	return &Uploader{dir: dir, urlPrefix: urlPrefix, now: time.Now}
}

// Save stores the file posted under field. It returns "" when nothing was posted.
func (u *Uploader) Save(c *gin.Context, field string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", err
	}
	if fh.Filename == "" || fh.Size == 0 {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExt[ext] {
		return "", apperrors.NewValidationError(field, "이미지 파일만 업로드 가능합니다.")
	}

	name := u.fileName(fh.Filename, ext)
	if err := c.SaveUploadedFile(fh, filepath.Join(u.dir, name)); err != nil {
		return "", apperrors.NewPersistenceError("save upload", err)
	}
	return path.Join(u.urlPrefix, name), nil
}

// fileName prefixes a timestamp; names with no safe characters left get a uuid.
func (u *Uploader) fileName(original, ext string) string {
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	base = strings.Trim(unsafeFileChars.ReplaceAllString(base, "_"), "._")
	if base == "" {
		base = uuid.NewString()[:8]
	}
	return fmt.Sprintf("%s_%s%s", u.now().Format("20060102150405"), base, ext)
}
