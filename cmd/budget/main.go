package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"golang.org/x/term"

	"budget-tracker/internal/config"
	"budget-tracker/internal/filterstate"
	"budget-tracker/internal/models"
	"budget-tracker/internal/preferences"
	"budget-tracker/internal/purchases"
	"budget-tracker/internal/storage"
	"budget-tracker/internal/userdata"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var sortKeys = map[string]models.SortOptions{
	"date_desc":     {Field: models.SortByDate, Direction: models.SortDesc},
	"date_asc":      {Field: models.SortByDate, Direction: models.SortAsc},
	"amount_desc":   {Field: models.SortByAmount, Direction: models.SortDesc},
	"amount_asc":    {Field: models.SortByAmount, Direction: models.SortAsc},
	"merchant_asc":  {Field: models.SortByMerchant, Direction: models.SortAsc},
	"merchant_desc": {Field: models.SortByMerchant, Direction: models.SortDesc},
	"category_asc":  {Field: models.SortByCategory, Direction: models.SortAsc},
	"category_desc": {Field: models.SortByCategory, Direction: models.SortDesc},
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("budget", flag.ContinueOnError)
	fs.SetOutput(stderr)

	user := fs.String("user", "", "User identifier (required)")
	email := fs.String("email", "", "Email recorded on first login")
	name := fs.String("name", "", "Display name recorded on first login")
	configPath := fs.String("config", "", "Path to config file (optional)")
	dbPath := fs.String("db", "", "Path to database file (overrides config)")
	memory := fs.Bool("memory", false, "Use an in-memory store")
	count := fs.Int("count", 0, "Number of purchases for the seed action")
	search := fs.String("search", "", "Free-text search filter")
	category := fs.String("category", "", "Comma-separated category ids to filter by")
	merchant := fs.String("merchant", "", "Merchant name filter (substring)")
	minAmount := fs.String("min", "", "Minimum amount filter")
	maxAmount := fs.String("max", "", "Maximum amount filter")
	sortKey := fs.String("sort", "", "Sort order: date_desc, date_asc, amount_desc, amount_asc, merchant_asc, category_asc, ...")
	page := fs.Int("page", 0, "Page number")
	limit := fs.Int("limit", 0, "Page size")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *user == "" {
		fmt.Fprintln(stdout, "Usage: budget -user <id> [flags] [list|seed|stats|clear]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flags: user")
	}

	action := fs.Arg(0)
	if action == "" {
		action = "list"
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	// Allow overriding db path via env var when the flag is not set
	if path := os.Getenv("BUDGET_DB"); path != "" && *dbPath == "" {
		*dbPath = path
	}
	if *dbPath != "" {
		cfg.Storage.Path = *dbPath
	}
	if *memory {
		cfg.Storage.InMemory = true
	}

	var store storage.Store
	if cfg.Storage.InMemory {
		store = storage.NewMemoryStore()
	} else {
		store, err = storage.NewSQLiteStore(cfg.Storage.Path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
	}
	defer store.Close()

	data := userdata.NewService(store)
	isNew, err := data.Initialize(*user, *email, *name, "")
	if err != nil {
		return err
	}

	prefs := preferences.NewStore(data)
	if err := prefs.SetUser(*user); err != nil {
		return err
	}
	views := filterstate.NewStore(data)
	if err := views.SetUser(*user); err != nil {
		return err
	}

	latency := purchases.Latency{}
	if cfg.Service.SimulateLatency {
		latency = purchases.DefaultLatency()
	}
	service, err := purchases.NewLocalService(*user, data, purchases.WithLatency(latency))
	if err != nil {
		return err
	}

	if isNew {
		fmt.Fprintf(stdout, "Welcome! Seeding %d sample purchases for %s\n", cfg.MockData.SeedCount, *user)
		if err := service.SeedWithMockData(cfg.MockData.SeedCount); err != nil {
			return err
		}
		if err := data.CompleteOnboarding(*user); err != nil {
			return err
		}
	}

	filters, filtersGiven, err := filtersFromFlags(*search, *category, *merchant, *minAmount, *maxAmount)
	if err != nil {
		return err
	}
	if filtersGiven {
		if err := views.SetFilters(*filters); err != nil {
			return err
		}
	} else if !prefs.Current().Privacy.RememberFilters {
		if err := views.ClearFilters(); err != nil {
			return err
		}
	}
	if *sortKey != "" {
		sort, ok := sortKeys[*sortKey]
		if !ok {
			return fmt.Errorf("unknown sort order %q", *sortKey)
		}
		if err := views.SetSort(sort); err != nil {
			return err
		}
	}
	if *page > 0 || *limit > 0 {
		views.SetPagination(models.Pagination{Page: *page, Limit: *limit})
	}

	ctx := context.Background()
	colors := false
	if f, ok := stdout.(*os.File); ok {
		colors = term.IsTerminal(int(f.Fd()))
	}

	switch action {
	case "list":
		return printList(ctx, stdout, service, views, colors)
	case "seed":
		n := *count
		if n <= 0 {
			n = cfg.MockData.SeedCount
		}
		if err := service.SeedWithMockData(n); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Seeded %d purchases for %s\n", n, *user)
		return nil
	case "stats":
		return printStats(ctx, stdout, service, views, colors)
	case "clear":
		if err := service.ClearAll(); err != nil {
			return err
		}
		if err := views.ClearFilters(); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Cleared all purchases for %s\n", *user)
		return nil
	default:
		return fmt.Errorf("unknown action %q (expected list, seed, stats or clear)", action)
	}
}

func filtersFromFlags(search, category, merchant, minAmount, maxAmount string) (*models.Filters, bool, error) {
	f := &models.Filters{SearchTerm: search, MerchantName: merchant}
	given := search != "" || merchant != ""

	if category != "" {
		given = true
		for _, id := range strings.Split(category, ",") {
			if id = strings.TrimSpace(id); id != "" {
				f.Categories = append(f.Categories, id)
			}
		}
	}

	if minAmount != "" || maxAmount != "" {
		given = true
		f.AmountRange = &models.AmountRange{}
		if minAmount != "" {
			min, err := decimal.NewFromString(minAmount)
			if err != nil {
				return nil, false, fmt.Errorf("invalid -min amount %q: %w", minAmount, err)
			}
			f.AmountRange.Min = &min
		}
		if maxAmount != "" {
			max, err := decimal.NewFromString(maxAmount)
			if err != nil {
				return nil, false, fmt.Errorf("invalid -max amount %q: %w", maxAmount, err)
			}
			f.AmountRange.Max = &max
		}
	}

	return f, given, nil
}

func printList(ctx context.Context, stdout io.Writer, service *purchases.LocalService, views *filterstate.Store, colors bool) error {
	state := views.Current()
	result, err := service.List(ctx, &state.Filters, &state.Sort, &state.Pagination)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tAMOUNT\tMERCHANT\tCATEGORY\tDESCRIPTION")
	for _, p := range result.Purchases {
		fmt.Fprintf(w, "%s\t%s %s\t%s\t%s\t%s\n",
			p.Date.Format("2006-01-02"),
			colorize(colors, "36", p.Amount.StringFixed(2)),
			p.Currency,
			p.MerchantName,
			p.Category.Name,
			p.Description,
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	pg := result.Pagination
	fmt.Fprintf(stdout, "\nPage %d of %d (%d purchases", pg.Page, pg.TotalPages, pg.Total)
	if n := views.FilterCount(); n > 0 {
		fmt.Fprintf(stdout, ", %d filters active", n)
	}
	fmt.Fprintln(stdout, ")")
	return nil
}

func printStats(ctx context.Context, stdout io.Writer, service *purchases.LocalService, views *filterstate.Store, colors bool) error {
	state := views.Current()
	stats, err := service.Analytics(ctx, &state.Filters)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Total spent:        %s\n", colorize(colors, "36", stats.TotalSpent.StringFixed(2)))
	fmt.Fprintf(stdout, "Transactions:       %d\n", stats.TotalTransactions)
	fmt.Fprintf(stdout, "Average purchase:   %s\n", stats.AverageTransaction.StringFixed(2))

	if len(stats.TopCategories) > 0 {
		fmt.Fprintln(stdout, "\nTop categories:")
		for _, c := range stats.TopCategories {
			fmt.Fprintf(stdout, "  %-20s %10s  (%.1f%%)\n", c.Category.Name, c.Amount.StringFixed(2), c.Percentage)
		}
	}
	if len(stats.TopMerchants) > 0 {
		fmt.Fprintln(stdout, "\nTop merchants:")
		for _, m := range stats.TopMerchants {
			fmt.Fprintf(stdout, "  %-20s %10s  (%d purchases)\n", m.MerchantName, m.Amount.StringFixed(2), m.Count)
		}
	}

	fmt.Fprintln(stdout, "\nMonthly trend:")
	for _, t := range stats.MonthlyTrends {
		fmt.Fprintf(stdout, "  %-10s %10s  (%d)\n", t.Month, t.Amount.StringFixed(2), t.Count)
	}
	return nil
}

func colorize(enabled bool, code, s string) string {
	if !enabled {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}
