package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"chatweb/internal/model/chat"
	httpx "chatweb/internal/pkg/http"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Report billing usage",
	Long:  `Read a BalanceResponse JSON ({"total_usage": <cents>}) and print the usage amount.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := openInput(cmd)
		if err != nil {
			return err
		}
		defer in.Close()

		return balance(in, cmd.OutOrStdout())
	},
}

func init() {
	addInputFlag(balanceCmd)
	rootCmd.AddCommand(balanceCmd)
}

// BalanceSummary balance 命令输出的 data
type BalanceSummary struct {
	TotalUsage float64 `json:"total_usage"`
	Amount     float64 `json:"amount"`
}

func balance(r io.Reader, w io.Writer) error {
	var b chat.BalanceResponse
	if err := decodeInput(r, &b); err != nil {
		return err
	}

	resp, err := httpx.SendResponse(httpx.Success(BalanceSummary{
		TotalUsage: b.TotalUsage,
		Amount:     b.Amount(),
	}))
	if err != nil {
		return err
	}
	return writeJSON(w, resp)
}
