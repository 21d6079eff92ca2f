// Package categorizer assigns a transaction category to raw SMS message
// bodies using ordered keyword rules. The first rule whose keyword appears
// as a substring of the lower-cased body wins; messages matching no rule get
// the catch-all label.
package categorizer

import (
	"strings"

	"github.com/relisha1/MoMo-Data-Analysis/internal/models"
)

// Rule maps a keyword to a category label. Rule order is priority order:
// keywords can overlap, so earlier rules must shadow later ones.
type Rule struct {
	Keyword  string `yaml:"keyword"`
	Category string `yaml:"category"`
}

// DefaultRules returns the built-in rule list in canonical priority order.
func DefaultRules() []Rule {
	return []Rule{
		{Keyword: "received", Category: models.CategoryIncomingMoney},
		{Keyword: "payment", Category: models.CategoryCodePayment},
		{Keyword: "transferred", Category: models.CategoryMobileTransfer},
		{Keyword: "deposit", Category: models.CategoryBankDeposit},
		{Keyword: "airtime", Category: models.CategoryAirtime},
		{Keyword: "cash power", Category: models.CategoryCashPower},
		{Keyword: "third party", Category: models.CategoryThirdParty},
		{Keyword: "withdrawn", Category: models.CategoryAgentWithdrawal},
		{Keyword: "bank transfer", Category: models.CategoryBankTransfer},
		{Keyword: "internet bundle", Category: models.CategoryBundle},
		{Keyword: "voice bundle", Category: models.CategoryBundle},
	}
}

// Categorizer scans message bodies against an ordered rule list.
type Categorizer struct {
	rules []Rule
}

// New creates a Categorizer with the given rules. Passing no rules selects
// the built-in defaults.
func New(rules []Rule) *Categorizer {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	normalized := make([]Rule, len(rules))
	for i, r := range rules {
		normalized[i] = Rule{
			Keyword:  strings.ToLower(r.Keyword),
			Category: r.Category,
		}
	}
	return &Categorizer{rules: normalized}
}

// Categorize returns the category label for a message body. It is a pure
// function over the input text and never returns an empty label.
func (c *Categorizer) Categorize(body string) string {
	lower := strings.ToLower(body)
	for _, r := range c.rules {
		if strings.Contains(lower, r.Keyword) {
			return r.Category
		}
	}
	return models.CategoryUnknown
}
