package ai

import (
	"github.com/cloudwego/eino/schema"

	"chatweb/internal/model/chat"
)

// ChunkFromSchema 将 eino 流式片段转换为投递给 Process 的 ChatMessage
// 片段只携带本次增量，不做拼接
func ChunkFromSchema(opts *chat.RequestOptions, msg *schema.Message) *chat.ChatMessage {
	out := &chat.ChatMessage{
		ID:    opts.MessageID,
		Text:  msg.Content,
		Delta: msg.Content,
		Role:  roleOf(msg.Role),
	}

	if opts.LastContext != nil {
		out.ConversationID = opts.LastContext.ConversationID
		out.ParentMessageID = opts.LastContext.ParentMessageID
	}

	if meta := msg.ResponseMeta; meta != nil {
		out.Detail = &chat.MessageDetail{FinishReason: meta.FinishReason}
		if meta.Usage != nil {
			out.Detail.Usage = &chat.TokenUsage{
				PromptTokens:     meta.Usage.PromptTokens,
				CompletionTokens: meta.Usage.CompletionTokens,
				TotalTokens:      meta.Usage.TotalTokens,
			}
		}
	}

	return out
}

func roleOf(r schema.RoleType) chat.Role {
	switch r {
	case schema.System:
		return chat.RoleSystem
	case schema.User:
		return chat.RoleUser
	default:
		return chat.RoleAssistant
	}
}
