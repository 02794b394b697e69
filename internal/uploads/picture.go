package uploads

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gosimple/slug"
)

// Listing kinds double as directory names under the upload root and as
// the static URL prefix segment.
const (
	KindRent = "rents"
	KindSale = "sales"
)

var (
	ErrMissingFilename  = errors.New("unable to get file name")
	ErrUnsupportedImage = errors.New("invalid file type. Picture must be in [.jpg, .jpeg, .png]")
)

// SafeFilename slugifies the base name and lowercases the extension so
// the stored name is deterministic and URL-safe.
func SafeFilename(original string) (string, error) {
	ext := filepath.Ext(original)
	base := slug.Make(strings.TrimSuffix(filepath.Base(original), ext))
	if base == "" {
		return "", ErrMissingFilename
	}
	return base + strings.ToLower(ext), nil
}

// ValidateImage sniffs the actual content and cross-checks it against
// the declared extension. Only jpeg content named .jpg/.jpeg and png
// content named .png are accepted; a renamed file fails here before
// anything is written.
func ValidateImage(data []byte, declaredName string) error {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(declaredName), "."))
	mtype := mimetype.Detect(data)

	switch {
	case mtype.Is("image/jpeg") && (ext == "jpg" || ext == "jpeg"):
		return nil
	case mtype.Is("image/png") && ext == "png":
		return nil
	}
	return ErrUnsupportedImage
}

// Saver persists validated pictures under Root/<kind>/.
type Saver struct {
	Root string
}

func NewSaver(root string) *Saver {
	return &Saver{Root: root}
}

// Save writes the picture and returns the path it was stored at.
func (s *Saver) Save(kind, filename string, data []byte) (string, error) {
	dir := filepath.Join(s.Root, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	target := filepath.Join(dir, filename)
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", err
	}
	return target, nil
}
