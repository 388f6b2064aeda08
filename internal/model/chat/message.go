package chat

// Role 消息角色
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage 对话补全产生的消息（或流式片段）
type ChatMessage struct {
	ID              string         `json:"id"`
	Text            string         `json:"text"`
	Role            Role           `json:"role"`
	Delta           string         `json:"delta,omitempty"`
	ParentMessageID string         `json:"parentMessageId,omitempty"`
	ConversationID  string         `json:"conversationId,omitempty"`
	Detail          *MessageDetail `json:"detail,omitempty"`
}

// MessageDetail 片段附带的结束原因与用量
type MessageDetail struct {
	FinishReason string      `json:"finish_reason,omitempty"`
	Usage        *TokenUsage `json:"usage,omitempty"`
}

// TokenUsage Token 使用统计
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}
