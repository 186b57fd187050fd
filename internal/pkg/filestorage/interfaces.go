package filestorage

import (
	"errors"
	"mime/multipart"
)

// DefaultMaxImageSize is the upload limit used when none is configured
const DefaultMaxImageSize = 5 << 20

// Upload errors
var (
	ErrNoFile          = errors.New("no file uploaded")
	ErrFileTooLarge    = errors.New("file exceeds the upload size limit")
	ErrUnsupportedType = errors.New("only JPEG, PNG, GIF and WebP images are accepted")
	ErrInvalidKind     = errors.New("kind must be one of avatar, logo, cover")
)

// ImageKind selects the folder an image is stored in
type ImageKind string

const (
	ImageKindAvatar ImageKind = "avatar"
	ImageKindLogo   ImageKind = "logo"
	ImageKindCover  ImageKind = "cover"
)

// IsValid reports whether k is a known image kind
func (k ImageKind) IsValid() bool {
	switch k {
	case ImageKindAvatar, ImageKindLogo, ImageKindCover:
		return true
	}
	return false
}

func (k ImageKind) dir() string {
	return string(k) + "s"
}

// ImageStorage stores user-supplied images and returns their public URL
type ImageStorage interface {
	SaveImage(fileHeader *multipart.FileHeader, kind ImageKind) (string, error)
}
