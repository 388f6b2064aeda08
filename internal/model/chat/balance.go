package chat

import "math"

// BalanceResponse 计费方返回的累计用量
type BalanceResponse struct {
	TotalUsage float64 `json:"total_usage"`
}

// Amount 用量单位为美分，换算为美元并保留两位小数
func (b BalanceResponse) Amount() float64 {
	return math.Round(b.TotalUsage) / 100
}
