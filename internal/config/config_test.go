package config

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func validConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "console",
			Output: "stderr",
		},
		Chat: ChatConfig{
			MaxImageBytes: 4 << 20,
			ImageTypes:    []string{"image/png", "image/jpeg"},
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	Convey("Validate 检查日志与对话配置", t, func() {
		Convey("默认配置有效", func() {
			So(validConfig().Validate(), ShouldBeNil)
		})

		Convey("未知日志格式无效", func() {
			cfg := validConfig()
			cfg.Log.Format = "xml"
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("文件输出必须指定路径", func() {
			cfg := validConfig()
			cfg.Log.Output = "file"
			So(cfg.Validate(), ShouldNotBeNil)

			cfg.Log.FilePath = "/tmp/chatweb.log"
			So(cfg.Validate(), ShouldBeNil)
		})

		Convey("未知输出无效", func() {
			cfg := validConfig()
			cfg.Log.Output = "syslog"
			So(cfg.Validate(), ShouldNotBeNil)
		})

		Convey("图片大小限制不能为负", func() {
			cfg := validConfig()
			cfg.Chat.MaxImageBytes = -1
			So(cfg.Validate(), ShouldNotBeNil)
		})
	})
}
