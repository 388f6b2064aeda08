package chat

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var (
	ErrInvalidImage        = errors.New("invalid image data")
	ErrImageTooLarge       = errors.New("image too large")
	ErrImageTypeMismatch   = errors.New("image type does not match content")
	ErrImageTypeNotAllowed = errors.New("image type not allowed")
)

// ImageOperation 图片任务操作
type ImageOperation string

const (
	ImageOpImagine   ImageOperation = "IMAGINE"
	ImageOpUpscale   ImageOperation = "UPSCALE"
	ImageOpVariation ImageOperation = "VARIATION"
	ImageOpReroll    ImageOperation = "REROLL"
	ImageOpDescribe  ImageOperation = "DESCRIBE"
	ImageOpBlend     ImageOperation = "BLEND"
)

// IsValid 检查操作是否有效
func (o ImageOperation) IsValid() bool {
	switch o {
	case ImageOpImagine, ImageOpUpscale, ImageOpVariation, ImageOpReroll, ImageOpDescribe, ImageOpBlend:
		return true
	}
	return false
}

// NeedsTask 是否作用于已有任务（必须携带 taskId）
func (o ImageOperation) NeedsTask() bool {
	return o == ImageOpUpscale || o == ImageOpVariation || o == ImageOpReroll
}

// ImageResultStatus 图片任务状态
type ImageResultStatus string

const (
	ImageStatusNotStart   ImageResultStatus = "NOT_START"
	ImageStatusSubmitted  ImageResultStatus = "SUBMITTED"
	ImageStatusInProgress ImageResultStatus = "IN_PROGRESS"
	ImageStatusFailure    ImageResultStatus = "FAILURE"
	ImageStatusSuccess    ImageResultStatus = "SUCCESS"
)

// IsFinal 任务是否已结束
func (s ImageResultStatus) IsFinal() bool {
	return s == ImageStatusSuccess || s == ImageStatusFailure
}

func (s ImageResultStatus) String() string {
	return string(s)
}

// ImageLimits 附件图片的校验限制
type ImageLimits struct {
	MaxBytes     int64    // 0 表示不限制
	AllowedTypes []string // 为空表示不限制
}

// ImageAttachment 解码后的附件图片
type ImageAttachment struct {
	Data      []byte
	MIME      string
	Extension string
}

// decodeImage 解码 base64（兼容 data URL），嗅探真实类型并与声明类型比对
func decodeImage(encoded, declared string, limits ImageLimits) (*ImageAttachment, error) {
	if i := strings.Index(encoded, ";base64,"); strings.HasPrefix(encoded, "data:") && i > 0 {
		if declared == "" {
			declared = encoded[len("data:"):i]
		}
		encoded = encoded[i+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	if len(data) == 0 {
		return nil, ErrInvalidImage
	}
	if limits.MaxBytes > 0 && int64(len(data)) > limits.MaxBytes {
		return nil, fmt.Errorf("%w: %d bytes, limit %d", ErrImageTooLarge, len(data), limits.MaxBytes)
	}

	detected := mimetype.Detect(data)
	if want := normalizeImageType(declared); want != "" && !detected.Is(want) {
		return nil, fmt.Errorf("%w: declared %s, detected %s", ErrImageTypeMismatch, want, detected.String())
	}

	if len(limits.AllowedTypes) > 0 && !mimetype.EqualsAny(detected.String(), limits.AllowedTypes...) {
		return nil, fmt.Errorf("%w: %s", ErrImageTypeNotAllowed, detected.String())
	}

	return &ImageAttachment{
		Data:      data,
		MIME:      detected.String(),
		Extension: detected.Extension(),
	}, nil
}

// normalizeImageType 将 png / jpg 这类简写转为 image/png
func normalizeImageType(t string) string {
	t = strings.ToLower(strings.TrimSpace(t))
	switch {
	case t == "":
		return ""
	case strings.Contains(t, "/"):
		return t
	case t == "jpg":
		return "image/jpeg"
	default:
		return "image/" + t
	}
}
