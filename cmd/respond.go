package cmd

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	httpx "chatweb/internal/pkg/http"
)

var respondCmd = &cobra.Command{
	Use:   "respond",
	Short: "Normalize an outcome into the response envelope",
	Long: `Read SendResponseOptions JSON ({"type":"Success"|"Fail", "message", "data",
"taskId", "imgResultStatus", "imageAction"}) and print the response envelope.
A Fail outcome prints the failure envelope and exits non-zero.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(cmd)
		if err != nil {
			return err
		}
		defer in.Close()

		return respond(in, cmd.OutOrStdout())
	},
}

func init() {
	addInputFlag(respondCmd)
	rootCmd.AddCommand(respondCmd)
}

// respond 解码选项并输出信封；失败信封同样写出，随后返回该失败
func respond(r io.Reader, w io.Writer) error {
	var opts httpx.SendResponseOptions[json.RawMessage]
	if err := decodeInput(r, &opts); err != nil {
		return err
	}

	resp, err := httpx.SendResponse(opts)
	if err == nil {
		return writeJSON(w, resp)
	}

	var fail *httpx.FailResponse[json.RawMessage]
	if !errors.As(err, &fail) {
		return err
	}
	log.Debug().Str("message", fail.Message).Msg("outcome rejected")
	if werr := writeJSON(w, fail); werr != nil {
		return werr
	}
	return fail
}
