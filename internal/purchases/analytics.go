package purchases

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"budget-tracker/internal/models"
)

// Analytics aggregates the purchases matching filters: total and average
// spend, top-5 categories and merchants by amount, and a trailing 12-month
// trend with zero-filled calendar buckets.
func (s *LocalService) Analytics(ctx context.Context, filters *models.Filters) (*models.Analytics, error) {
	if err := s.delay(ctx, s.latency.Analytics); err != nil {
		return nil, err
	}

	filtered := s.applyFilters(filters)

	totalSpent := decimal.Zero
	for _, p := range filtered {
		totalSpent = totalSpent.Add(p.Amount)
	}

	count := len(filtered)
	average := decimal.Zero
	if count > 0 {
		average = totalSpent.Div(decimal.NewFromInt(int64(count)))
	}

	return &models.Analytics{
		TotalSpent:         totalSpent,
		TotalTransactions:  count,
		AverageTransaction: average,
		TopCategories:      topCategories(filtered, totalSpent),
		TopMerchants:       topMerchants(filtered),
		MonthlyTrends:      monthlyTrends(filtered, s.now()),
	}, nil
}

func topCategories(purchases []models.Purchase, totalSpent decimal.Decimal) []models.CategorySpend {
	byCategory := make(map[string]*models.CategorySpend)
	var order []string
	for _, p := range purchases {
		entry, ok := byCategory[p.Category.ID]
		if !ok {
			entry = &models.CategorySpend{Category: p.Category}
			byCategory[p.Category.ID] = entry
			order = append(order, p.Category.ID)
		}
		entry.Amount = entry.Amount.Add(p.Amount)
		entry.Count++
	}

	result := make([]models.CategorySpend, 0, len(order))
	for _, id := range order {
		result = append(result, *byCategory[id])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount.GreaterThan(result[j].Amount)
	})
	if len(result) > 5 {
		result = result[:5]
	}

	hundred := decimal.NewFromInt(100)
	for i := range result {
		if totalSpent.IsPositive() {
			result[i].Percentage, _ = result[i].Amount.Div(totalSpent).Mul(hundred).Float64()
		}
	}
	return result
}

func topMerchants(purchases []models.Purchase) []models.MerchantSpend {
	byMerchant := make(map[string]*models.MerchantSpend)
	var order []string
	for _, p := range purchases {
		entry, ok := byMerchant[p.MerchantName]
		if !ok {
			entry = &models.MerchantSpend{MerchantName: p.MerchantName}
			byMerchant[p.MerchantName] = entry
			order = append(order, p.MerchantName)
		}
		entry.Amount = entry.Amount.Add(p.Amount)
		entry.Count++
	}

	result := make([]models.MerchantSpend, 0, len(order))
	for _, name := range order {
		result = append(result, *byMerchant[name])
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Amount.GreaterThan(result[j].Amount)
	})
	if len(result) > 5 {
		result = result[:5]
	}
	return result
}

// monthlyTrends buckets purchases by calendar month for the 12 months
// ending at now, oldest first. Months without matches appear with zero
// amount and count.
func monthlyTrends(purchases []models.Purchase, now time.Time) []models.MonthlyTrend {
	trends := make([]models.MonthlyTrend, 0, 12)
	for i := 11; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		key := month.Format("2006-01")

		amount := decimal.Zero
		count := 0
		for _, p := range purchases {
			if p.Date.Format("2006-01") == key {
				amount = amount.Add(p.Amount)
				count++
			}
		}

		trends = append(trends, models.MonthlyTrend{
			Month:  month.Format("Jan 2006"),
			Amount: amount,
			Count:  count,
		})
	}
	return trends
}
