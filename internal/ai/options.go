package ai

import (
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"chatweb/internal/model/chat"
)

// ModelOptions 将请求中的生成参数原样转换为 eino 调用选项
// 未设置的参数不产生选项，交由补全方的默认配置决定
func ModelOptions(opts *chat.RequestOptions) []model.Option {
	var out []model.Option

	if name := chatModel(opts); name != "" {
		out = append(out, model.WithModel(name))
	}
	if opts.Temperature != nil {
		out = append(out, model.WithTemperature(float32(*opts.Temperature)))
	}
	if opts.TopP != nil {
		out = append(out, model.WithTopP(float32(*opts.TopP)))
	}

	return out
}

// chatModel 房间指定的模型优先，其次是用户偏好
func chatModel(opts *chat.RequestOptions) string {
	if opts.Room != nil && opts.Room.ChatModel != "" {
		return opts.Room.ChatModel
	}
	if opts.User != nil {
		return opts.User.ChatModel()
	}
	return ""
}

// Messages 构建本轮提示：可选的系统消息 + 用户消息
// 历史消息由补全方按 LastContext 自行续接
func Messages(opts *chat.RequestOptions) []*schema.Message {
	system := opts.SystemMessage
	if opts.Room != nil {
		system = opts.Room.SystemMessage(system)
	}

	msgs := make([]*schema.Message, 0, 2)
	if system != "" {
		msgs = append(msgs, schema.SystemMessage(system))
	}
	return append(msgs, schema.UserMessage(opts.Message))
}
