package draft

import (
	"github.com/openmarket/listing-service/constant"
	"github.com/openmarket/listing-service/model"
)

// ResolveVisibility projects the current draft onto the set of applicable
// base-attribute fields. Pure, no side effects; callers recompute it after
// every relevant change.
//
// Precedence of the conditional rules:
//   - category options follow the listing type
//   - is_free is hidden for quote-only services
//   - is_quote_only is shown only for non-free services
//   - price is hidden whenever the listing is free or quote-only
//   - stock is shown only for products
func ResolveVisibility(d *model.ListingDraft) model.FieldVisibility {
	isService := d.Type == constant.ListingTypeService
	priceVisible := !d.IsFree && !d.IsQuoteOnly
	stockVisible := d.Type == constant.ListingTypeProduct

	return model.FieldVisibility{
		Name:            model.FieldRule{Visible: true, Required: true},
		Description:     model.FieldRule{Visible: true, Required: true},
		Category:        model.FieldRule{Visible: true, Required: true},
		CategoryOptions: d.Type.Categories(),
		Price: model.FieldRule{
			Visible:  priceVisible,
			Required: priceVisible && !variantPriceCovers(d),
		},
		Stock: model.FieldRule{
			Visible:  stockVisible,
			Required: stockVisible && !variantsActive(d),
		},
		IsFree: model.FieldRule{
			Visible: !(isService && d.IsQuoteOnly),
		},
		IsQuoteOnly: model.FieldRule{
			Visible: isService && !d.IsFree,
		},
		IsAvailable: model.FieldRule{Visible: true},
	}
}

func variantsActive(d *model.ListingDraft) bool {
	return d.VariantsEnabled && len(d.Variants) > 0
}

// variantPriceCovers reports whether an enabled variant carries a positive
// price, which waives the base price requirement.
func variantPriceCovers(d *model.ListingDraft) bool {
	if !d.VariantsEnabled {
		return false
	}
	for _, v := range d.Variants {
		if p, ok := parsePrice(v.Price); ok && p.IsPositive() {
			return true
		}
	}
	return false
}
