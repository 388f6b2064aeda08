package http

import (
	"errors"
	nethttp "net/http"

	"github.com/gin-gonic/gin"
)

// Status 响应状态（判别字段）
type Status string

const (
	StatusSuccess Status = "Success"
	StatusFail    Status = "Fail"
)

// DefaultFailMessage 失败且未给出消息时使用
const DefaultFailMessage = "Failed"

// SendResponseOptions 响应选项
// 可选字段用指针表示，nil 即“未提供”
type SendResponseOptions[T any] struct {
	Type            Status  `json:"type"`
	Message         *string `json:"message,omitempty"`
	Data            *T      `json:"data,omitempty"`
	TaskID          *string `json:"taskId,omitempty"`
	ImgResultStatus *string `json:"imgResultStatus,omitempty"`
	ImageAction     *string `json:"imageAction,omitempty"`
}

// SuccessResponse 成功响应，未提供的字段序列化为 null
type SuccessResponse[T any] struct {
	Message         *string `json:"message"`
	Data            *T      `json:"data"`
	Status          Status  `json:"status"`
	TaskID          *string `json:"taskId"`
	ImgResultStatus *string `json:"imgResultStatus"`
	ImageAction     *string `json:"imageAction"`
}

// FailResponse 失败响应，同时作为 error 返回
// 图片任务相关字段不出现在失败响应中
type FailResponse[T any] struct {
	Message string `json:"message"`
	Data    *T     `json:"data"`
	Status  Status `json:"status"`
}

func (e *FailResponse[T]) Error() string {
	return e.Message
}

// SendResponse 将结果统一为响应信封
// Success 返回信封且 error 为 nil；其余情况返回 *FailResponse[T] 作为 error
func SendResponse[T any](opts SendResponseOptions[T]) (*SuccessResponse[T], error) {
	if opts.Type == StatusSuccess {
		return &SuccessResponse[T]{
			Message:         opts.Message,
			Data:            opts.Data,
			Status:          StatusSuccess,
			TaskID:          opts.TaskID,
			ImgResultStatus: opts.ImgResultStatus,
			ImageAction:     opts.ImageAction,
		}, nil
	}

	message := DefaultFailMessage
	if opts.Message != nil {
		message = *opts.Message
	}
	return nil, &FailResponse[T]{
		Message: message,
		Data:    opts.Data,
		Status:  StatusFail,
	}
}

// Success 构造成功选项
func Success[T any](data T) SendResponseOptions[T] {
	return SendResponseOptions[T]{Type: StatusSuccess, Data: &data}
}

// Fail 构造失败选项
func Fail[T any](message string) SendResponseOptions[T] {
	return SendResponseOptions[T]{Type: StatusFail, Message: &message}
}

// WithMessage 设置消息
func (o SendResponseOptions[T]) WithMessage(message string) SendResponseOptions[T] {
	o.Message = &message
	return o
}

// WithImageTask 设置图片任务字段
func (o SendResponseOptions[T]) WithImageTask(taskID, resultStatus, action string) SendResponseOptions[T] {
	o.TaskID = &taskID
	o.ImgResultStatus = &resultStatus
	o.ImageAction = &action
	return o
}

// Reply 将 SendResponse 的结果写入 gin 响应
// 两个分支均返回 200，失败信息在响应体中
func Reply[T any](c *gin.Context, resp *SuccessResponse[T], err error) {
	if err == nil {
		c.JSON(nethttp.StatusOK, resp)
		return
	}

	var fail *FailResponse[T]
	if !errors.As(err, &fail) {
		fail = &FailResponse[T]{
			Message: err.Error(),
			Status:  StatusFail,
		}
	}
	c.JSON(nethttp.StatusOK, fail)
}

// Send 归一化并写入响应
func Send[T any](c *gin.Context, opts SendResponseOptions[T]) {
	resp, err := SendResponse(opts)
	Reply(c, resp, err)
}
