package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is an ISO 4217 code from the supported set.
type Currency string

const (
	CurrencyCAD Currency = "CAD"
	CurrencyUSD Currency = "USD"
)

// Category is an entry in the fixed spending-category taxonomy.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	Icon        string `json:"icon"`
	Description string `json:"description,omitempty"`
}

// PaymentMethodType classifies a payment instrument.
type PaymentMethodType string

const (
	PaymentCredit    PaymentMethodType = "credit"
	PaymentDebit     PaymentMethodType = "debit"
	PaymentCash      PaymentMethodType = "cash"
	PaymentTransfer  PaymentMethodType = "transfer"
	PaymentETransfer PaymentMethodType = "e_transfer"
)

// PaymentMethod is an entry in the fixed payment-method taxonomy.
type PaymentMethod struct {
	ID             string            `json:"id"`
	Type           PaymentMethodType `json:"type"`
	LastFourDigits string            `json:"lastFourDigits,omitempty"`
	BankName       string            `json:"bankName,omitempty"`
	Provider       string            `json:"provider,omitempty"`
	Nickname       string            `json:"nickname,omitempty"`
}

// Location describes where a purchase took place.
type Location struct {
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	Province   string `json:"province,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
	Country    string `json:"country,omitempty"`
}

// Metadata holds optional purchase details.
type Metadata struct {
	Location           *Location `json:"location,omitempty"`
	MerchantCategory   string    `json:"merchantCategory,omitempty"`
	IsRecurring        bool      `json:"isRecurring,omitempty"`
	RecurringFrequency string    `json:"recurringFrequency,omitempty"`
	Notes              string    `json:"notes,omitempty"`
}

// Purchase represents a single recorded expense transaction.
// Invariants: Amount > 0 and UpdatedAt >= CreatedAt.
type Purchase struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      Currency        `json:"currency"`
	Description   string          `json:"description"`
	MerchantName  string          `json:"merchantName"`
	Category      Category        `json:"category"`
	Date          time.Time       `json:"date"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	Tags          []string        `json:"tags"`
	Metadata      Metadata        `json:"metadata"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// CreatePurchaseRequest carries the fields needed to record a new purchase.
type CreatePurchaseRequest struct {
	Amount          decimal.Decimal `json:"amount"`
	Currency        Currency        `json:"currency"`
	Description     string          `json:"description"`
	MerchantName    string          `json:"merchantName"`
	CategoryID      string          `json:"categoryId"`
	Date            time.Time       `json:"date"`
	PaymentMethodID string          `json:"paymentMethodId"`
	Tags            []string        `json:"tags,omitempty"`
	Metadata        Metadata        `json:"metadata,omitempty"`
}

// UpdatePurchaseRequest is a partial update. Nil fields are left unchanged.
type UpdatePurchaseRequest struct {
	Amount          *decimal.Decimal `json:"amount,omitempty"`
	Currency        *Currency        `json:"currency,omitempty"`
	Description     *string          `json:"description,omitempty"`
	MerchantName    *string          `json:"merchantName,omitempty"`
	CategoryID      *string          `json:"categoryId,omitempty"`
	Date            *time.Time       `json:"date,omitempty"`
	PaymentMethodID *string          `json:"paymentMethodId,omitempty"`
	Tags            []string         `json:"tags,omitempty"`
	Metadata        *Metadata        `json:"metadata,omitempty"`
}

// DateRange is an inclusive date interval.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// AmountRange bounds amounts; either end may be open.
type AmountRange struct {
	Min *decimal.Decimal `json:"min,omitempty"`
	Max *decimal.Decimal `json:"max,omitempty"`
}

// Filters narrows a purchase query. All present fields are ANDed together.
type Filters struct {
	DateRange      *DateRange   `json:"dateRange,omitempty"`
	Categories     []string     `json:"categories,omitempty"`
	PaymentMethods []string     `json:"paymentMethods,omitempty"`
	AmountRange    *AmountRange `json:"amountRange,omitempty"`
	Currencies     []Currency   `json:"currencies,omitempty"`
	Tags           []string     `json:"tags,omitempty"`
	SearchTerm     string       `json:"searchTerm,omitempty"`
	MerchantName   string       `json:"merchantName,omitempty"`
}

// SortField selects the purchase attribute to order by.
type SortField string

const (
	SortByDate     SortField = "date"
	SortByAmount   SortField = "amount"
	SortByMerchant SortField = "merchantName"
	SortByCategory SortField = "category"
)

// SortDirection is the ordering direction.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// SortOptions pairs a sort field with a direction.
type SortOptions struct {
	Field     SortField     `json:"field"`
	Direction SortDirection `json:"direction"`
}

// Pagination selects a 1-based page of a given size.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// PageInfo describes the page that was returned and what lies around it.
type PageInfo struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// PaginatedPurchases is one page of query results plus pagination metadata.
type PaginatedPurchases struct {
	Purchases  []Purchase `json:"purchases"`
	Pagination PageInfo   `json:"pagination"`
}
