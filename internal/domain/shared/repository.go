package shared

import "strings"

// Filter represents query filter options shared by list operations
type Filter struct {
	// BusinessEmail scopes the query to one business. Empty means all businesses.
	BusinessEmail string
	OrderBy       string
	OrderDir      string
	Limit         int
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		OrderBy:  "created_at",
		OrderDir: "desc",
	}
}

// ForBusiness returns a filter scoped to a business email. Ordering is
// left empty so each repository applies its own default.
func ForBusiness(email string) Filter {
	return Filter{BusinessEmail: NormalizeEmail(email)}
}

// IsScoped reports whether the filter narrows results to a single business
func (f Filter) IsScoped() bool {
	return f.BusinessEmail != ""
}

// NormalizeEmail trims and lowercases a business email so lookups are exact
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
