package chat

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"chatweb/internal/model/auth"
)

// ErrInvalidRequest 请求参数校验失败
var ErrInvalidRequest = errors.New("invalid request")

// ValidationError 字段级校验错误
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field %s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// LastContext 续接上一轮对话的指针，为空表示新开对话
type LastContext struct {
	ConversationID  string `json:"conversationId,omitempty"`
	ParentMessageID string `json:"parentMessageId,omitempty"`
}

// RequestOptions 对话补全请求参数
// 校验规则使用 binding 标签，与 gin ShouldBindJSON 保持一致
type RequestOptions struct {
	Message       string       `json:"message" binding:"required"`
	LastContext   *LastContext `json:"lastContext,omitempty"`
	SystemMessage string       `json:"systemMessage,omitempty"`
	Temperature   *float64     `json:"temperature,omitempty"`
	TopP          *float64     `json:"top_p,omitempty"`
	User          *auth.User   `json:"user" binding:"required"`
	MessageID     string       `json:"messageId" binding:"required"`
	TryCount      int          `json:"tryCount" binding:"gte=0"`
	Room          *ChatRoom    `json:"room" binding:"required"`

	ImageBase64  string         `json:"imageBase64,omitempty"`
	ImageType    string         `json:"imageType,omitempty" binding:"required_with=ImageBase64"`
	ImgOperation ImageOperation `json:"imgOperation,omitempty"`
	TaskID       string         `json:"taskId,omitempty"`

	// Process 接收补全过程中的增量消息，由补全方写入
	Process chan<- *ChatMessage `json:"-"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate 校验必填项与图片任务参数
func (o *RequestOptions) Validate() error {
	if err := validate.Struct(o); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return &ValidationError{Field: fe.Field(), Message: describeTag(fe)}
		}
		return fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	if o.ImgOperation != "" {
		if !o.ImgOperation.IsValid() {
			return &ValidationError{Field: "imgOperation", Message: "unknown operation " + string(o.ImgOperation)}
		}
		if o.ImgOperation.NeedsTask() && o.TaskID == "" {
			return &ValidationError{Field: "taskId", Message: "required for " + string(o.ImgOperation)}
		}
	}

	return nil
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "required_with":
		return "is required when " + fe.Param() + " is set"
	case "gte":
		return "must be >= " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}

// IsContinuation 是否续接已有对话
func (o *RequestOptions) IsContinuation() bool {
	return o.LastContext != nil &&
		(o.LastContext.ConversationID != "" || o.LastContext.ParentMessageID != "")
}

// HasImage 是否携带图片附件
func (o *RequestOptions) HasImage() bool {
	return o.ImageBase64 != ""
}

// Image 解码并校验附件图片，未携带图片时返回 nil
func (o *RequestOptions) Image(limits ImageLimits) (*ImageAttachment, error) {
	if !o.HasImage() {
		return nil, nil
	}
	return decodeImage(o.ImageBase64, o.ImageType, limits)
}

// Emit 向 Process 投递一条增量消息
// 消费方未就绪时阻塞，直到投递成功或 ctx 结束
func (o *RequestOptions) Emit(ctx context.Context, msg *ChatMessage) error {
	if o.Process == nil {
		return nil
	}
	select {
	case o.Process <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
