package purchases

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"budget-tracker/internal/mockdata"
	"budget-tracker/internal/models"
	"budget-tracker/internal/taxonomy"
	"budget-tracker/internal/userdata"
)

// LocalService is the in-memory Service implementation. It loads the user's
// full purchase list once, mutates it synchronously and writes it back after
// every change. One instance serves one logical user session; two instances
// for the same user race last-write-wins on the store.
type LocalService struct {
	userID   string
	data     *userdata.Service
	latency  Latency
	collator *collate.Collator
	now      func() time.Time

	purchases []models.Purchase
}

// Option configures a LocalService.
type Option func(*LocalService)

// WithLatency overrides the simulated operation delays.
func WithLatency(l Latency) Option {
	return func(s *LocalService) { s.latency = l }
}

// WithClock overrides the service's notion of "now". Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *LocalService) { s.now = now }
}

// NewLocalService returns a service over the purchase list stored for
// userID. An absent (or corrupt) stored list starts the service empty;
// seeding is the caller's decision, driven by the new-user signal from
// userdata.Service.Initialize.
func NewLocalService(userID string, data *userdata.Service, opts ...Option) (*LocalService, error) {
	if userID == "" {
		return nil, userdata.ErrNotAuthenticated
	}

	s := &LocalService{
		userID:   userID,
		data:     data,
		latency:  DefaultLatency(),
		collator: collate.New(language.English),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	stored, found, err := data.GetPurchases(userID)
	if err != nil {
		return nil, err
	}
	if found {
		s.purchases = stored
	}
	return s, nil
}

func (s *LocalService) delay(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

func (s *LocalService) persist() error {
	return s.data.SavePurchases(s.userID, s.purchases)
}

// List applies filters, sort and pagination and returns one page plus
// pagination metadata. Defaults: date descending, page 1, limit 20.
func (s *LocalService) List(ctx context.Context, filters *models.Filters, sortOpts *models.SortOptions, pagination *models.Pagination) (*models.PaginatedPurchases, error) {
	if err := s.delay(ctx, s.latency.List); err != nil {
		return nil, err
	}

	filtered := s.applyFilters(filters)
	s.applySort(filtered, sortOpts)

	page, limit := DefaultPage, DefaultLimit
	if pagination != nil {
		if pagination.Page > 0 {
			page = pagination.Page
		}
		if pagination.Limit > 0 {
			limit = pagination.Limit
		}
	}

	total := len(filtered)
	start := (page - 1) * limit
	end := start + limit

	items := []models.Purchase{}
	if start < total {
		e := end
		if e > total {
			e = total
		}
		items = filtered[start:e]
	}

	return &models.PaginatedPurchases{
		Purchases: items,
		Pagination: models.PageInfo{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: (total + limit - 1) / limit,
			HasNext:    end < total,
			HasPrev:    page > 1,
		},
	}, nil
}

// Get returns the purchase with the given id.
func (s *LocalService) Get(ctx context.Context, id string) (*models.Purchase, error) {
	if err := s.delay(ctx, s.latency.Get); err != nil {
		return nil, err
	}

	for i := range s.purchases {
		if s.purchases[i].ID == id {
			p := s.purchases[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPurchaseNotFound, id)
}

// Create validates and records a new purchase. The record is prepended to
// the collection, so a default date-descending listing shows it first even
// when its date is older — a deliberate recency-of-entry bias for manual
// entries.
func (s *LocalService) Create(ctx context.Context, req models.CreatePurchaseRequest) (*models.Purchase, error) {
	if err := s.delay(ctx, s.latency.Create); err != nil {
		return nil, err
	}

	if req.Description == "" || req.MerchantName == "" || req.CategoryID == "" {
		return nil, fmt.Errorf("%w: missing required fields", ErrValidation)
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}

	now := s.now()
	date := req.Date
	if date.IsZero() {
		date = now
	}
	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	p := models.Purchase{
		ID:            "purchase_" + uuid.NewString(),
		UserID:        s.userID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		Description:   req.Description,
		MerchantName:  req.MerchantName,
		Category:      resolveCategory(req.CategoryID),
		Date:          date,
		PaymentMethod: resolvePaymentMethod(req.PaymentMethodID),
		Tags:          tags,
		Metadata:      req.Metadata,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	s.purchases = append([]models.Purchase{p}, s.purchases...)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Update merges the provided fields over the existing record. The id is
// immutable and UpdatedAt is refreshed.
func (s *LocalService) Update(ctx context.Context, id string, req models.UpdatePurchaseRequest) (*models.Purchase, error) {
	if err := s.delay(ctx, s.latency.Update); err != nil {
		return nil, err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %s", ErrPurchaseNotFound, id)
	}

	p := s.purchases[idx]
	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
		}
		p.Amount = *req.Amount
	}
	if req.Currency != nil {
		p.Currency = *req.Currency
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.MerchantName != nil {
		p.MerchantName = *req.MerchantName
	}
	if req.CategoryID != nil {
		p.Category = resolveCategory(*req.CategoryID)
	}
	if req.Date != nil {
		p.Date = *req.Date
	}
	if req.PaymentMethodID != nil {
		p.PaymentMethod = resolvePaymentMethod(*req.PaymentMethodID)
	}
	if req.Tags != nil {
		p.Tags = req.Tags
	}
	if req.Metadata != nil {
		p.Metadata = *req.Metadata
	}
	p.UpdatedAt = s.now()

	s.purchases[idx] = p
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Delete removes the purchase with the given id.
func (s *LocalService) Delete(ctx context.Context, id string) error {
	if err := s.delay(ctx, s.latency.Delete); err != nil {
		return err
	}

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrPurchaseNotFound, id)
	}

	s.purchases = append(s.purchases[:idx], s.purchases[idx+1:]...)
	return s.persist()
}

// ClearAll removes every purchase for the user and persists the empty list.
func (s *LocalService) ClearAll() error {
	s.purchases = []models.Purchase{}
	return s.persist()
}

// SeedWithMockData replaces the collection with count deterministically
// generated purchases for this user and persists them.
func (s *LocalService) SeedWithMockData(count int) error {
	s.purchases = mockdata.Generate(s.userID, count)
	return s.persist()
}

func (s *LocalService) indexOf(id string) int {
	for i := range s.purchases {
		if s.purchases[i].ID == id {
			return i
		}
	}
	return -1
}

func resolveCategory(id string) models.Category {
	if c, ok := taxonomy.CategoryByID(id); ok {
		return c
	}
	return models.Category{ID: id, Name: "Unknown Category", Color: "#D3D3D3", Icon: "more-horizontal"}
}

func resolvePaymentMethod(id string) models.PaymentMethod {
	if m, ok := taxonomy.PaymentMethodByID(id); ok {
		return m
	}
	return models.PaymentMethod{ID: id, Type: models.PaymentCredit, Nickname: "Unknown Payment Method"}
}

// applyFilters returns the purchases matching every present filter.
func (s *LocalService) applyFilters(f *models.Filters) []models.Purchase {
	out := make([]models.Purchase, 0, len(s.purchases))
	if f == nil {
		return append(out, s.purchases...)
	}

	var categorySet, methodSet, currencySet, tagSet mapset.Set[string]
	if len(f.Categories) > 0 {
		categorySet = mapset.NewSet(f.Categories...)
	}
	if len(f.PaymentMethods) > 0 {
		methodSet = mapset.NewSet(f.PaymentMethods...)
	}
	if len(f.Currencies) > 0 {
		currencySet = mapset.NewSet[string]()
		for _, c := range f.Currencies {
			currencySet.Add(string(c))
		}
	}
	if len(f.Tags) > 0 {
		tagSet = mapset.NewSet(f.Tags...)
	}
	search := strings.ToLower(f.SearchTerm)
	merchant := strings.ToLower(f.MerchantName)

	for _, p := range s.purchases {
		if f.DateRange != nil &&
			(p.Date.Before(f.DateRange.Start) || p.Date.After(f.DateRange.End)) {
			continue
		}
		if categorySet != nil && !categorySet.Contains(p.Category.ID) {
			continue
		}
		if methodSet != nil && !methodSet.Contains(p.PaymentMethod.ID) {
			continue
		}
		if f.AmountRange != nil {
			if f.AmountRange.Min != nil && p.Amount.LessThan(*f.AmountRange.Min) {
				continue
			}
			if f.AmountRange.Max != nil && p.Amount.GreaterThan(*f.AmountRange.Max) {
				continue
			}
		}
		if currencySet != nil && !currencySet.Contains(string(p.Currency)) {
			continue
		}
		if tagSet != nil && !tagSet.ContainsAny(p.Tags...) {
			continue
		}
		if search != "" {
			fields := append([]string{p.Description, p.MerchantName, p.Category.Name}, p.Tags...)
			searchable := strings.ToLower(strings.Join(fields, " "))
			if !strings.Contains(searchable, search) {
				continue
			}
		}
		if merchant != "" && !strings.Contains(strings.ToLower(p.MerchantName), merchant) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// applySort orders list in place. The sort is stable; string fields use
// locale-aware collation.
func (s *LocalService) applySort(list []models.Purchase, opts *models.SortOptions) {
	field, direction := models.SortByDate, models.SortDesc
	if opts != nil {
		field = opts.Field
		direction = opts.Direction
	}

	sort.SliceStable(list, func(i, j int) bool {
		var cmp int
		switch field {
		case models.SortByDate:
			switch {
			case list[i].Date.Before(list[j].Date):
				cmp = -1
			case list[i].Date.After(list[j].Date):
				cmp = 1
			}
		case models.SortByAmount:
			cmp = list[i].Amount.Cmp(list[j].Amount)
		case models.SortByMerchant:
			cmp = s.collator.CompareString(list[i].MerchantName, list[j].MerchantName)
		case models.SortByCategory:
			cmp = s.collator.CompareString(list[i].Category.Name, list[j].Category.Name)
		}
		if direction == models.SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
}
