// Package entity defines the core business entities for the domain layer.
package entity

import "strings"

// Categories are an open set of strings. The lists below are the reference
// taxonomy offered by the dashboard; records using other names are valid.
var (
	// ExpenseCategories is the reference list of expense categories.
	ExpenseCategories = []string{
		"Miete",
		"Nebenkosten",
		"Lebensmittel",
		"Restaurant",
		"Transport",
		"Versicherungen",
		"Gesundheit",
		"Freizeit",
		"Kleidung",
		"Abonnements",
		"Bildung",
		"Geschenke",
		"Reisen",
		"Haushalt",
		"Sonstiges",
	}

	// IncomeCategories is the reference list of income categories.
	IncomeCategories = []string{
		"Gehalt",
		"Bonus",
		"Nebeneinkommen",
		"Kapitalerträge",
		"Geschenke",
		"Sonstiges",
	}
)

// UncategorizedName is used for transactions without a category.
const UncategorizedName = "Sonstiges"

// IsKnownCategory reports whether name is part of the reference list for the
// given transaction type. The comparison ignores case and surrounding spaces.
func IsKnownCategory(t TransactionType, name string) bool {
	list := ExpenseCategories
	if t == TransactionTypeIncome {
		list = IncomeCategories
	}
	name = strings.TrimSpace(name)
	for _, c := range list {
		if strings.EqualFold(c, name) {
			return true
		}
	}
	return false
}

// NormalizeCategory trims the category name and falls back to
// UncategorizedName for empty values.
func NormalizeCategory(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return UncategorizedName
	}
	return name
}
