package models

import "github.com/shopspring/decimal"

// CategorySpend aggregates spending for one category.
type CategorySpend struct {
	Category   Category        `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
}

// MerchantSpend aggregates spending at one merchant.
type MerchantSpend struct {
	MerchantName string          `json:"merchantName"`
	Amount       decimal.Decimal `json:"amount"`
	Count        int             `json:"count"`
}

// MonthlyTrend is one calendar-month bucket of the trailing trend.
type MonthlyTrend struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// Analytics summarizes a filtered purchase set.
type Analytics struct {
	TotalSpent         decimal.Decimal `json:"totalSpent"`
	TotalTransactions  int             `json:"totalTransactions"`
	AverageTransaction decimal.Decimal `json:"averageTransaction"`
	TopCategories      []CategorySpend `json:"topCategories"`
	TopMerchants       []MerchantSpend `json:"topMerchants"`
	MonthlyTrends      []MonthlyTrend  `json:"monthlyTrends"`
}
