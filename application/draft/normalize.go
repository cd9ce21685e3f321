package draft

import (
	"github.com/openmarket/listing-service/constant"
	"github.com/openmarket/listing-service/model"
)

// Normalize converts a draft that passed Validate into the canonical
// submission payload. Deterministic and idempotent: feeding the result back
// through as a draft yields the same payload.
func Normalize(d *model.ListingDraft) *model.SubmissionPayload {
	price := 0.0
	priceParsed := false
	if p, ok := parsePrice(d.Price); ok {
		price, _ = p.Float64()
		priceParsed = true
	}

	// A zero price entered by hand means the same thing as the free flag.
	isFree := d.IsFree || (priceParsed && price == 0)
	if isFree {
		price = 0
	}

	payload := &model.SubmissionPayload{
		Type:        d.Type,
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		Price:       price,
		IsFree:      isFree,
		IsAvailable: d.IsAvailable,
		Images:      append([]string{}, d.Images...),
		Variants:    []model.SubmissionVariant{},
	}

	if d.Type == constant.ListingTypeProduct {
		stock := int64(0)
		if n, ok := parseStock(d.Stock); ok && n > 0 {
			stock = n
		}
		payload.Stock = &stock
	}

	if variantsActive(d) {
		payload.HasVariants = true
		payload.Variants = normalizeVariants(d)
	}

	if d.Type == constant.ListingTypeService {
		payload.QuoteSettings, payload.IsQuoteBased = normalizeQuoteSettings(d)
	}

	return payload
}

// normalizeVariants emits the cleaned variant list: temporary identifiers
// stripped, numbers coerced, optional fields only when present.
func normalizeVariants(d *model.ListingDraft) []model.SubmissionVariant {
	forProduct := d.Type == constant.ListingTypeProduct
	out := make([]model.SubmissionVariant, 0, len(d.Variants))
	for _, v := range d.Variants {
		sv := model.SubmissionVariant{
			Name:        v.Name,
			IsAvailable: v.IsAvailable,
		}
		if serverID, ok := v.ID.ServerID(); ok {
			sv.ID = serverID
		}
		if p, ok := parsePrice(v.Price); ok {
			sv.Price, _ = p.Float64()
		}
		if forProduct {
			stock := int64(0)
			if n, ok := parseStock(v.Stock); ok && n > 0 {
				stock = n
			}
			sv.Stock = &stock
		}
		if v.SKU != "" {
			sv.SKU = v.SKU
		}
		if len(v.Attributes) > 0 {
			sv.Attributes = v.Attributes
		}
		if len(v.Images) > 0 {
			sv.Images = v.Images
		}
		out = append(out, sv)
	}
	return out
}

// normalizeQuoteSettings applies the service-listing quote defaults. Quote
// selling is active when the settings were enabled explicitly or implied by
// the quote-only flag; otherwise a disabled stub is emitted.
func normalizeQuoteSettings(d *model.ListingDraft) (*model.SubmissionQuoteSettings, bool) {
	qs := d.QuoteSettings
	active := d.IsQuoteOnly || (qs != nil && qs.Enabled)
	if !active {
		return &model.SubmissionQuoteSettings{Enabled: false, QuoteOnly: false}, false
	}

	out := &model.SubmissionQuoteSettings{
		Enabled:      true,
		QuoteOnly:    d.IsQuoteOnly,
		MaxPrice:     constant.QuoteMaxPriceSentinel,
		ResponseTime: constant.QuoteDefaultResponseTime,
	}
	if qs != nil {
		out.QuoteOnly = out.QuoteOnly || qs.QuoteOnly
		out.AutoAccept = qs.AutoAccept
		if p, ok := parsePrice(qs.MinPrice); ok && p.IsPositive() {
			out.MinPrice, _ = p.Float64()
		}
		if p, ok := parsePrice(qs.MaxPrice); ok && p.IsPositive() {
			out.MaxPrice, _ = p.Float64()
		}
		if qs.ResponseTime != "" {
			out.ResponseTime = qs.ResponseTime
		}
		out.RequiresDeposit = qs.RequiresDeposit
		if qs.RequiresDeposit {
			out.DepositPercentage = qs.DepositPercentage
		}
		if len(qs.CustomFields) > 0 {
			out.CustomFields = qs.CustomFields
		}
	}
	return out, true
}
