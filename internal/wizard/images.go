package wizard

import (
	"errors"
	"fmt"

	"paypage_ai_server/internal/types"
	"paypage_ai_server/internal/utils"
)

const (
	MaxImages    = 5
	MaxImageSize = 5 * 1024 * 1024
)

var (
	ErrFileTooLarge     = errors.New("image exceeds 5MB")
	ErrInvalidFileType  = errors.New("only image files are accepted")
	ErrMaxImagesReached = errors.New("maximum number of images reached")
	ErrImageNotFound    = errors.New("image not found")
	ErrInvalidImageType = errors.New("invalid image type")
)

// AddImage appends blob to the accumulator as a home-bg image.
// The MIME type is sniffed from the bytes, not taken from the upload header.
func AddImage(data *types.BusinessData, blob []byte) (types.ImageAttachment, error) {
	if len(data.Images) >= MaxImages {
		return types.ImageAttachment{}, ErrMaxImagesReached
	}
	if len(blob) > MaxImageSize {
		return types.ImageAttachment{}, fmt.Errorf("%w: %d bytes", ErrFileTooLarge, len(blob))
	}
	mime, ok := utils.DetectImageType(blob)
	if !ok {
		return types.ImageAttachment{}, fmt.Errorf("%w: got %s", ErrInvalidFileType, mime)
	}

	img := types.ImageAttachment{
		Data:        blob,
		ContentType: mime,
		Size:        len(blob),
		Type:        types.ImageHomeBg,
	}
	data.Images = append(data.Images, img)
	return img, nil
}

// SetImageType reclassifies the image at index.
func SetImageType(data *types.BusinessData, index int, imageType types.ImageType) error {
	if !imageType.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidImageType, imageType)
	}
	if index < 0 || index >= len(data.Images) {
		return ErrImageNotFound
	}
	data.Images[index].Type = imageType
	return nil
}

// RemoveImage drops the image at index; later images shift down.
func RemoveImage(data *types.BusinessData, index int) error {
	if index < 0 || index >= len(data.Images) {
		return ErrImageNotFound
	}
	data.Images = append(data.Images[:index], data.Images[index+1:]...)
	return nil
}
