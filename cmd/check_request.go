package cmd

import (
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"chatweb/internal/config"
	"chatweb/internal/model/chat"
	httpx "chatweb/internal/pkg/http"
	"chatweb/internal/pkg/id"
)

var checkRequestCmd = &cobra.Command{
	Use:   "check-request",
	Short: "Validate chat completion request options",
	Long: `Read RequestOptions JSON, validate required fields, image task parameters
and the attached image, then print the result as a response envelope.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(cmd)
		if err != nil {
			return err
		}
		defer in.Close()

		assignID, _ := cmd.Flags().GetBool("assign-id")
		return checkRequest(in, cmd.OutOrStdout(), &GetConfig().Chat, assignID)
	},
}

func init() {
	addInputFlag(checkRequestCmd)
	checkRequestCmd.Flags().Bool("assign-id", false, "assign a messageId when the request has none")
	rootCmd.AddCommand(checkRequestCmd)
}

// RequestSummary check-request 成功时的 data
type RequestSummary struct {
	MessageID    string              `json:"messageId"`
	Continuation bool                `json:"continuation"`
	TryCount     int                 `json:"tryCount"`
	Image        *ImageSummary       `json:"image,omitempty"`
	ImgOperation chat.ImageOperation `json:"imgOperation,omitempty"`
	TaskID       string              `json:"taskId,omitempty"`
}

// ImageSummary 附件图片摘要
type ImageSummary struct {
	MIME  string `json:"mime"`
	Bytes int    `json:"bytes"`
}

func checkRequest(r io.Reader, w io.Writer, chatCfg *config.ChatConfig, assignID bool) error {
	var req chat.RequestOptions
	if err := decodeInput(r, &req); err != nil {
		return err
	}

	if assignID && req.MessageID == "" {
		req.MessageID = id.NewMessageID()
	}

	logger := log.With().Str("message_id", req.MessageID).Logger()

	summary, err := summarize(&req, chatCfg)
	if err != nil {
		logger.Warn().Err(err).Msg("request rejected")
		_, ferr := httpx.SendResponse(httpx.Fail[RequestSummary](err.Error()))
		if werr := writeJSON(w, ferr); werr != nil {
			return werr
		}
		return ferr
	}

	logger.Info().
		Bool("continuation", summary.Continuation).
		Bool("has_image", summary.Image != nil).
		Msg("request checked")

	opts := httpx.Success(*summary)
	if req.TaskID != "" {
		opts.TaskID = &req.TaskID
	}
	resp, err := httpx.SendResponse(opts)
	if err != nil {
		return err
	}
	return writeJSON(w, resp)
}

func summarize(req *chat.RequestOptions, chatCfg *config.ChatConfig) (*RequestSummary, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	img, err := req.Image(chat.ImageLimits{
		MaxBytes:     chatCfg.MaxImageBytes,
		AllowedTypes: chatCfg.ImageTypes,
	})
	if err != nil {
		return nil, err
	}

	summary := &RequestSummary{
		MessageID:    req.MessageID,
		Continuation: req.IsContinuation(),
		TryCount:     req.TryCount,
		ImgOperation: req.ImgOperation,
		TaskID:       req.TaskID,
	}
	if img != nil {
		summary.Image = &ImageSummary{MIME: img.MIME, Bytes: len(img.Data)}
	}
	return summary, nil
}
