package id

import (
	"strings"

	"github.com/google/uuid"
)

// NewMessageID 为即将生成的消息分配 ID
func NewMessageID() string {
	return uuid.NewString()
}

// NewTaskID 生成图片任务 ID（去掉连字符的 UUID）
func NewTaskID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// IsValid 验证UUID格式是否有效，兼容无连字符格式
func IsValid(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
