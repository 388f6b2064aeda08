package chat

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ChatRoom 对话房间
// 由外部房间存储持有，请求只借用引用
type ChatRoom struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	RoomID       int64              `bson:"roomId" json:"roomId"`
	UserID       string             `bson:"userId" json:"userId"`
	Title        string             `bson:"title" json:"title"`
	Prompt       string             `bson:"prompt,omitempty" json:"prompt,omitempty"`
	UsingContext bool               `bson:"usingContext" json:"usingContext"`
	ChatModel    string             `bson:"chatModel,omitempty" json:"chatModel,omitempty"`
	Status       RoomStatus         `bson:"status" json:"status"`
	CreateTime   time.Time          `bson:"createTime,omitempty" json:"createTime,omitempty"`
}

// RoomStatus 房间状态
type RoomStatus int

const (
	RoomStatusNormal  RoomStatus = 0
	RoomStatusDeleted RoomStatus = 1
)

// SystemMessage 房间级系统提示，请求未显式指定时使用
func (r *ChatRoom) SystemMessage(requested string) string {
	if requested != "" {
		return requested
	}
	return r.Prompt
}
