// Package mockdata produces synthetic purchase histories. Generation is
// seeded from the user identifier, so the same user always sees the same
// records no matter when or where they are generated.
package mockdata

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"budget-tracker/internal/models"
	"budget-tracker/internal/random"
	"budget-tracker/internal/taxonomy"
)

// DefaultCount is the number of purchases seeded for a new user.
const DefaultCount = 50

// Generate returns count purchases for userID, dated within the last 180
// days and sorted newest first. Every record's UserID equals the input.
func Generate(userID string, count int) []models.Purchase {
	return GenerateAt(userID, count, time.Now())
}

// GenerateAt is Generate with an explicit "now", which pins the date window
// in tests.
func GenerateAt(userID string, count int, now time.Time) []models.Purchase {
	rng := random.New(random.SeedFromUserID(userID))
	categories := taxonomy.Categories()
	methods := taxonomy.PaymentMethods()
	nowMillis := now.UnixMilli()

	purchases := make([]models.Purchase, 0, count)
	for i := 0; i < count; i++ {
		daysAgo := rng.NextInt(0, 180)
		date := now.AddDate(0, 0, -daysAgo)

		category := random.Choice(rng, categories)

		merchants, ok := merchantsByCategory[category.ID]
		if !ok {
			merchants = merchantsByCategory["other"]
		}
		merchant := random.Choice(rng, merchants)

		method := random.Choice(rng, methods)

		// Some categories tend toward larger amounts.
		var raw float64
		switch category.ID {
		case "travel", "insurance":
			raw = rng.NextFloat(100, 2100)
		case "home-garden", "education":
			raw = rng.NextFloat(50, 550)
		case "food-dining", "transportation":
			raw = rng.NextFloat(5, 155)
		default:
			raw = rng.NextFloat(10, 310)
		}
		amount := decimal.NewFromFloat(raw).Round(2)

		description := random.Choice(rng, sampleDescriptions)

		tagCount := rng.NextInt(0, 3)
		tags := []string{}
		for j := 0; j < tagCount; j++ {
			tag := random.Choice(rng, sampleTags)
			if !contains(tags, tag) {
				tags = append(tags, tag)
			}
		}

		var meta models.Metadata
		if category.ID == "food-dining" && rng.Next() > 0.7 {
			meta.Location = &models.Location{City: "Toronto", Province: "ON", Country: "Canada"}
		}
		if rng.Next() > 0.8 {
			meta.IsRecurring = true
			meta.RecurringFrequency = random.Choice(rng, []string{"monthly", "weekly", "bi-weekly"})
		}

		currency := models.CurrencyCAD
		if rng.Next() > 0.9 {
			currency = models.CurrencyUSD
		}

		purchases = append(purchases, models.Purchase{
			ID:            fmt.Sprintf("mock_%s_%d_%d", userID, i, nowMillis),
			UserID:        userID,
			Amount:        amount,
			Currency:      currency,
			Description:   description,
			MerchantName:  merchant,
			Category:      category,
			Date:          date,
			PaymentMethod: method,
			Tags:          tags,
			Metadata:      meta,
			CreatedAt:     date,
			UpdatedAt:     date,
		})
	}

	sort.SliceStable(purchases, func(i, j int) bool {
		return purchases[i].Date.After(purchases[j].Date)
	})
	return purchases
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
