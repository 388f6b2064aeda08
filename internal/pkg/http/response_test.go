package http

import (
	"encoding/json"
	"errors"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/smartystreets/goconvey/convey"
)

func ptr[T any](v T) *T {
	return &v
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func TestSendResponse_Success(t *testing.T) {
	Convey("Success 总是返回成功信封", t, func() {
		Convey("只有 data 时其余字段为 null", func() {
			resp, err := SendResponse(Success(42))
			So(err, ShouldBeNil)
			So(resp.Status, ShouldEqual, StatusSuccess)
			So(*resp.Data, ShouldEqual, 42)
			So(mustJSON(resp), ShouldEqual,
				`{"message":null,"data":42,"status":"Success","taskId":null,"imgResultStatus":null,"imageAction":null}`)
		})

		Convey("全部字段由输入填充", func() {
			opts := SendResponseOptions[string]{
				Type:            StatusSuccess,
				Message:         ptr("ok"),
				TaskID:          ptr("t1"),
				ImgResultStatus: ptr("done"),
				ImageAction:     ptr("upscale"),
			}
			resp, err := SendResponse(opts)
			So(err, ShouldBeNil)
			So(*resp.Message, ShouldEqual, "ok")
			So(*resp.TaskID, ShouldEqual, "t1")
			So(*resp.ImgResultStatus, ShouldEqual, "done")
			So(*resp.ImageAction, ShouldEqual, "upscale")
			So(resp.Data, ShouldBeNil)
			So(mustJSON(resp), ShouldEqual,
				`{"message":"ok","data":null,"status":"Success","taskId":"t1","imgResultStatus":"done","imageAction":"upscale"}`)
		})

		Convey("空字符串消息保留而不是置为 null", func() {
			resp, err := SendResponse(Success(1).WithMessage(""))
			So(err, ShouldBeNil)
			So(resp.Message, ShouldNotBeNil)
			So(*resp.Message, ShouldEqual, "")
		})

		Convey("WithImageTask 填充图片任务字段", func() {
			resp, err := SendResponse(Success("img").WithImageTask("t9", "SUCCESS", "UPSCALE"))
			So(err, ShouldBeNil)
			So(*resp.TaskID, ShouldEqual, "t9")
			So(*resp.ImgResultStatus, ShouldEqual, "SUCCESS")
			So(*resp.ImageAction, ShouldEqual, "UPSCALE")
		})
	})
}

func TestSendResponse_Fail(t *testing.T) {
	Convey("Fail 总是返回失败", t, func() {
		Convey("缺省消息为 Failed，data 为 null", func() {
			resp, err := SendResponse(SendResponseOptions[int]{Type: StatusFail})
			So(resp, ShouldBeNil)
			So(err, ShouldNotBeNil)

			var fail *FailResponse[int]
			So(errors.As(err, &fail), ShouldBeTrue)
			So(fail.Message, ShouldEqual, DefaultFailMessage)
			So(fail.Data, ShouldBeNil)
			So(fail.Status, ShouldEqual, StatusFail)
			So(mustJSON(fail), ShouldEqual, `{"message":"Failed","data":null,"status":"Fail"}`)
			So(err.Error(), ShouldEqual, "Failed")
		})

		Convey("图片任务字段不出现在失败信封中", func() {
			opts := Fail[map[string]int]("quota exceeded").WithImageTask("t1", "FAILURE", "IMAGINE")
			opts.Data = ptr(map[string]int{"left": 0})

			_, err := SendResponse(opts)
			var fail *FailResponse[map[string]int]
			So(errors.As(err, &fail), ShouldBeTrue)

			body := mustJSON(fail)
			So(body, ShouldEqual, `{"message":"quota exceeded","data":{"left":0},"status":"Fail"}`)
			So(body, ShouldNotContainSubstring, "taskId")
			So(body, ShouldNotContainSubstring, "imgResultStatus")
			So(body, ShouldNotContainSubstring, "imageAction")
		})

		Convey("未知判别值按失败处理", func() {
			_, err := SendResponse(SendResponseOptions[int]{Type: "Pending"})
			var fail *FailResponse[int]
			So(errors.As(err, &fail), ShouldBeTrue)
			So(fail.Status, ShouldEqual, StatusFail)
		})
	})
}

func TestSendResponse_Idempotent(t *testing.T) {
	Convey("相同输入得到逐字段相同的输出", t, func() {
		opts := Success([]string{"a", "b"}).WithMessage("ok")

		first, err1 := SendResponse(opts)
		second, err2 := SendResponse(opts)
		So(err1, ShouldBeNil)
		So(err2, ShouldBeNil)
		So(first, ShouldResemble, second)
		So(mustJSON(first), ShouldEqual, mustJSON(second))

		failOpts := Fail[int]("boom")
		_, fail1 := SendResponse(failOpts)
		_, fail2 := SendResponse(failOpts)
		So(fail1, ShouldResemble, fail2)
	})
}

func TestSendResponse_FromJSON(t *testing.T) {
	Convey("从 JSON 选项解码时 null 与缺省等价", t, func() {
		var opts SendResponseOptions[json.RawMessage]
		err := json.Unmarshal([]byte(`{"type":"Success","data":42,"message":null}`), &opts)
		So(err, ShouldBeNil)

		resp, err := SendResponse(opts)
		So(err, ShouldBeNil)
		So(mustJSON(resp), ShouldEqual,
			`{"message":null,"data":42,"status":"Success","taskId":null,"imgResultStatus":null,"imageAction":null}`)
	})
}

func TestReply(t *testing.T) {
	gin.SetMode(gin.TestMode)

	decode := func(w *httptest.ResponseRecorder) map[string]any {
		body := map[string]any{}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			panic(err)
		}
		return body
	}

	Convey("Reply 将信封写入 HTTP 响应", t, func() {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		Convey("成功信封", func() {
			Send(c, Success(map[string]string{"text": "hi"}))
			So(w.Code, ShouldEqual, nethttp.StatusOK)

			body := decode(w)
			So(body["status"], ShouldEqual, "Success")
			So(body["data"], ShouldResemble, map[string]any{"text": "hi"})
			So(body, ShouldContainKey, "taskId")
			So(body["taskId"], ShouldBeNil)
		})

		Convey("失败信封同样返回 200", func() {
			Send(c, Fail[int]("room not found"))
			So(w.Code, ShouldEqual, nethttp.StatusOK)

			body := decode(w)
			So(body["status"], ShouldEqual, "Fail")
			So(body["message"], ShouldEqual, "room not found")
			So(body["data"], ShouldBeNil)
			So(body, ShouldNotContainKey, "taskId")
		})

		Convey("普通 error 转为失败信封", func() {
			Reply[int](c, nil, errors.New("upstream timeout"))
			So(w.Code, ShouldEqual, nethttp.StatusOK)

			body := decode(w)
			So(body["status"], ShouldEqual, "Fail")
			So(body["message"], ShouldEqual, "upstream timeout")
			So(body, ShouldContainKey, "data")
			So(body["data"], ShouldBeNil)
		})
	})
}
