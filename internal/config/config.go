package config

import (
	"errors"
)

// Config 应用配置根结构
type Config struct {
	Log  LogConfig  `mapstructure:"log"`
	Chat ChatConfig `mapstructure:"chat"`
}

// LogConfig 日志配置 (Zerolog)
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"` // stdout, stderr, file
	FilePath   string `mapstructure:"file_path"`
	TimeFormat string `mapstructure:"time_format"`
}

// ChatConfig 对话请求相关限制
type ChatConfig struct {
	MaxImageBytes int64    `mapstructure:"max_image_bytes"` // 附件图片解码后的最大字节数，0 表示不限制
	ImageTypes    []string `mapstructure:"image_types"`     // 允许的图片 MIME 类型，为空表示不限制
}

// Validate 验证配置有效性
func (c *Config) Validate() error {
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[c.Log.Format] {
		return errors.New("invalid log format, must be json/console")
	}

	switch c.Log.Output {
	case "stdout", "stderr":
	case "file":
		if c.Log.FilePath == "" {
			return errors.New("log file_path is required when output is file")
		}
	default:
		return errors.New("invalid log output, must be stdout/stderr/file")
	}

	if c.Chat.MaxImageBytes < 0 {
		return errors.New("chat max_image_bytes must not be negative")
	}

	return nil
}
