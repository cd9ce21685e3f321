package draft

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/openmarket/listing-service/constant"
	"github.com/openmarket/listing-service/model"
)

// ErrorMap maps a field or section name to the first failing message for it.
// An empty map means the draft is submittable.
type ErrorMap map[string]string

// fieldOrder is the canonical ordering for human-readable error lists.
var fieldOrder = []string{
	"type", "name", "description", "category", "price", "stock", "images", "variants", "quote_settings",
}

// Validate runs the full submission check over the draft. Pure function;
// the first failing message per field wins, and the variants section stops
// at the first failing variant.
func Validate(d *model.ListingDraft) ErrorMap {
	em := ErrorMap{}

	if !d.Type.Valid() {
		em["type"] = "listing type must be product or service"
	}

	name := strings.TrimSpace(d.Name)
	switch {
	case name == "":
		em["name"] = "name is required"
	case utf8.RuneCountInString(d.Name) > constant.MaxNameLength:
		em["name"] = fmt.Sprintf("name must be at most %d characters", constant.MaxNameLength)
	}

	desc := strings.TrimSpace(d.Description)
	switch {
	case desc == "":
		em["description"] = "description is required"
	case utf8.RuneCountInString(d.Description) > constant.MaxDescriptionLength:
		em["description"] = fmt.Sprintf("description must be at most %d characters", constant.MaxDescriptionLength)
	}

	if d.Category == "" {
		em["category"] = "category is required"
	} else if d.Type.Valid() && !d.Type.HasCategory(d.Category) {
		em["category"] = fmt.Sprintf("category must be one of: %s", strings.Join(d.Type.Categories(), ", "))
	}

	// A waived price requirement does not excuse malformed input: whatever
	// is in the field must still be a non-negative number.
	if priceRequired(d) || strings.TrimSpace(d.Price) != "" {
		if p, ok := parsePrice(d.Price); !ok || p.IsNegative() {
			em["price"] = "price must be a non-negative number"
		}
	}

	if stockRequired(d) {
		if n, ok := parseStock(d.Stock); !ok || n < 0 {
			em["stock"] = "stock must be a non-negative whole number"
		}
	}

	if len(d.Images) == 0 {
		em["images"] = "at least one image is required"
	}

	if d.VariantsEnabled && len(d.Variants) > 0 {
		if msg := validateVariants(d); msg != "" {
			em["variants"] = msg
		}
	}

	if d.Type == constant.ListingTypeService && d.QuoteSettings != nil {
		if msg := checkQuoteRange(d.QuoteSettings.MinPrice, d.QuoteSettings.MaxPrice); msg != "" {
			em["quote_settings"] = msg
		}
	}

	return em
}

// checkQuoteRange verifies the quote price bounds: each one, when set, must
// be a non-negative number, and the minimum must not exceed the maximum.
func checkQuoteRange(minRaw, maxRaw string) string {
	var low, high decimal.Decimal
	hasMin := strings.TrimSpace(minRaw) != ""
	hasMax := strings.TrimSpace(maxRaw) != ""
	if hasMin {
		p, ok := parsePrice(minRaw)
		if !ok || p.IsNegative() {
			return "minimum quote price must be a non-negative number"
		}
		low = p
	}
	if hasMax {
		p, ok := parsePrice(maxRaw)
		if !ok || p.IsNegative() {
			return "maximum quote price must be a non-negative number"
		}
		high = p
	}
	if hasMin && hasMax && low.GreaterThan(high) {
		return "minimum quote price must not exceed the maximum"
	}
	return ""
}

// priceRequired applies the waiver rules: free listings, quote-only
// services, drafts whose price input is literally zero, and drafts covered
// by a positively priced enabled variant all skip the base price check.
func priceRequired(d *model.ListingDraft) bool {
	if d.IsFree || d.IsQuoteOnly {
		return false
	}
	if p, ok := parsePrice(d.Price); ok && p.IsZero() {
		return false
	}
	if variantPriceCovers(d) {
		return false
	}
	return true
}

func stockRequired(d *model.ListingDraft) bool {
	return d.Type == constant.ListingTypeProduct && !variantsActive(d)
}

func validateVariants(d *model.ListingDraft) string {
	forProduct := d.Type == constant.ListingTypeProduct
	for i, v := range d.Variants {
		label := fmt.Sprintf("variant %d", i+1)
		if strings.TrimSpace(v.Name) != "" {
			label = fmt.Sprintf("variant %d (%q)", i+1, v.Name)
		}
		if strings.TrimSpace(v.Name) == "" {
			return label + ": name is required"
		}
		if p, ok := parsePrice(v.Price); !ok || p.IsNegative() {
			return label + ": price must be a non-negative number"
		}
		if forProduct {
			if n, ok := parseStock(v.Stock); !ok || n < 0 {
				return label + ": stock must be a non-negative whole number"
			}
		}
	}
	return ""
}

// OrderedMessages flattens the map into the canonical field order. Fields
// outside the canonical list (e.g. server-side errors) follow alphabetically.
func OrderedMessages(em ErrorMap) []string {
	msgs := make([]string, 0, len(em))
	seen := make(map[string]bool, len(em))
	for _, f := range fieldOrder {
		if m, ok := em[f]; ok {
			msgs = append(msgs, m)
			seen[f] = true
		}
	}
	rest := make([]string, 0)
	for f := range em {
		if !seen[f] {
			rest = append(rest, f)
		}
	}
	sort.Strings(rest)
	for _, f := range rest {
		msgs = append(msgs, em[f])
	}
	return msgs
}

// Summarize builds the bounded "first N (+M more)" summary shown on a
// blocked submission attempt.
func Summarize(em ErrorMap, max int) string {
	msgs := OrderedMessages(em)
	if len(msgs) == 0 {
		return ""
	}
	if max <= 0 || len(msgs) <= max {
		return strings.Join(msgs, "; ")
	}
	rest := len(msgs) - max
	return fmt.Sprintf("%s (+%d more)", strings.Join(msgs[:max], "; "), rest)
}

func parsePrice(raw string) (decimal.Decimal, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, false
	}
	p, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false
	}
	return p, true
}

func parseStock(raw string) (int64, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
