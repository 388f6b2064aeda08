package auth

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User 用户实体
// 由外部用户存储持有，这里只借用引用，不负责创建或持久化
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	Password    string             `bson:"password" json:"-"` // 加密存储，不返回
	Status      UserStatus         `bson:"status" json:"status"`
	Roles       []UserRole         `bson:"roles" json:"roles"`
	Avatar      string             `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Description string             `bson:"description,omitempty" json:"description,omitempty"`
	Remark      string             `bson:"remark,omitempty" json:"remark,omitempty"`
	Config      *UserConfig        `bson:"config,omitempty" json:"config,omitempty"`
	CreateTime  time.Time          `bson:"createTime" json:"createTime"`
	UpdateTime  time.Time          `bson:"updateTime,omitempty" json:"updateTime,omitempty"`
}

// UserConfig 用户偏好
type UserConfig struct {
	ChatModel string `bson:"chatModel,omitempty" json:"chatModel,omitempty"`
}

// UserRole 用户角色
type UserRole string

const (
	RoleAdmin UserRole = "Admin"
	RoleUser  UserRole = "User"
	RoleGuest UserRole = "Guest"
)

// IsValid 检查角色是否有效
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleUser || r == RoleGuest
}

func (r UserRole) String() string {
	return string(r)
}

// UserStatus 用户状态，数值与外部存储保持一致
type UserStatus int

const (
	UserStatusNormal      UserStatus = 0
	UserStatusDeleted     UserStatus = 1
	UserStatusPreVerify   UserStatus = 4
	UserStatusAdminVerify UserStatus = 5
	UserStatusDisabled    UserStatus = 6
)

// ChatModel 用户偏好的模型，未设置时返回空串
func (u *User) ChatModel() string {
	if u.Config == nil {
		return ""
	}
	return u.Config.ChatModel
}
