package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jaychen/travel-planner/pkg/utils"
)

// ExpenseHeaders are the 5 fixed columns of each {trip}_Expenses sheet.
var ExpenseHeaders = []string{"描述", "類別", "金額", "幣值", "日期"}

// ExpenseSheetSuffix is appended to the trip name to form its expense
// sheet title.
const ExpenseSheetSuffix = "_Expenses"

// Expense categories.
const (
	CategoryTransport = "transport"
	CategoryLodging   = "lodging"
	CategoryFood      = "food"
	CategoryShopping  = "shopping"
	CategoryOther     = "other"
)

// Categories lists the allowed expense categories.
var Categories = []string{
	CategoryTransport, CategoryLodging, CategoryFood, CategoryShopping, CategoryOther,
}

// Currencies lists the allowed currency codes.
var Currencies = []string{"TWD", "JPY", "USD", "KRW", "THB", "EUR"}

// countryCurrency maps the country label to its default currency.
var countryCurrency = map[string]string{
	"日本 (Japan)":       "JPY",
	"美國 (USA)":         "USD",
	"韓國 (South Korea)": "KRW",
	"台灣 (Taiwan)":      "TWD",
	"泰國 (Thailand)":    "THB",
}

// ExpenseItem is one row of a trip's expense sheet. Amount is kept as the
// stored string; non-numeric amounts survive reads but drop out of sums.
type ExpenseItem struct {
	Description string `json:"描述"`
	Category    string `json:"類別"`
	Amount      string `json:"金額"`
	Currency    string `json:"幣值"`
	Date        string `json:"日期"`
}

// DefaultCurrency returns the currency a trip's country implies, falling
// back to TWD.
func DefaultCurrency(country string) string {
	if c, ok := countryCurrency[country]; ok {
		return c
	}
	return "TWD"
}

// Normalize fills the category and currency defaults for a new expense.
func (e *ExpenseItem) Normalize(country string) {
	if e.Category == "" {
		e.Category = CategoryOther
	}
	if e.Currency == "" {
		e.Currency = DefaultCurrency(country)
	}
}

// Validate checks the required fields of a new expense.
func (e *ExpenseItem) Validate() error {
	if strings.TrimSpace(e.Description) == "" {
		return fmt.Errorf("description is required")
	}
	amount, ok := e.ParsedAmount()
	if !ok {
		return fmt.Errorf("amount %q is not a number", e.Amount)
	}
	if amount < 0 {
		return fmt.Errorf("amount must not be negative: %s", e.Amount)
	}
	if !contains(Categories, e.Category) {
		return fmt.Errorf("unknown category %q", e.Category)
	}
	if !contains(Currencies, e.Currency) {
		return fmt.Errorf("unknown currency %q", e.Currency)
	}
	if e.Date != "" {
		if err := utils.ValidateDate(e.Date); err != nil {
			return err
		}
	}
	return nil
}

// ParsedAmount returns the numeric amount, or false when the stored value
// does not parse.
func (e *ExpenseItem) ParsedAmount() (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(e.Amount), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ExpenseSummary aggregates a trip's expenses at read time.
type ExpenseSummary struct {
	Total      float64            `json:"total"`
	ByCategory map[string]float64 `json:"byCategory"`
	Percent    map[string]float64 `json:"percent"`
	Skipped    int                `json:"skipped"`
}

// SummarizeExpenses totals the parseable amounts and breaks them down by
// category, with percentage shares of the total. Rows whose amount does
// not parse are counted in Skipped and excluded from every sum.
func SummarizeExpenses(items []ExpenseItem) ExpenseSummary {
	summary := ExpenseSummary{
		ByCategory: make(map[string]float64),
		Percent:    make(map[string]float64),
	}
	for _, e := range items {
		amount, ok := e.ParsedAmount()
		if !ok {
			summary.Skipped++
			continue
		}
		cat := e.Category
		if cat == "" {
			cat = CategoryOther
		}
		summary.Total += amount
		summary.ByCategory[cat] += amount
	}
	if summary.Total > 0 {
		for cat, amount := range summary.ByCategory {
			summary.Percent[cat] = amount / summary.Total * 100
		}
	}
	return summary
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
