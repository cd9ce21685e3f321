package draft_test

import (
	"strings"
	"testing"

	"github.com/openmarket/listing-service/application/draft"
	"github.com/openmarket/listing-service/constant"
	"github.com/openmarket/listing-service/model"
)

func validProductDraft() *model.ListingDraft {
	return &model.ListingDraft{
		Type:        constant.ListingTypeProduct,
		Name:        "Wireless Mouse",
		Description: "Ergonomic wireless mouse with USB receiver",
		Category:    "electronics",
		Price:       "150000",
		Stock:       "10",
		IsAvailable: true,
		Images:      []string{"https://cdn.example.com/mouse.jpg"},
	}
}

func validServiceDraft() *model.ListingDraft {
	return &model.ListingDraft{
		Type:        constant.ListingTypeService,
		Name:        "Deep Cleaning",
		Description: "Full apartment deep cleaning service",
		Category:    "cleaning",
		Price:       "500000",
		IsAvailable: true,
		Images:      []string{"https://cdn.example.com/cleaning.jpg"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		draft      func() *model.ListingDraft
		wantFields map[string]string
	}{
		{
			name:       "success: complete product draft",
			draft:      validProductDraft,
			wantFields: map[string]string{},
		},
		{
			name:       "success: complete service draft",
			draft:      validServiceDraft,
			wantFields: map[string]string{},
		},
		{
			name: "success: quote-only service without price",
			draft: func() *model.ListingDraft {
				d := validServiceDraft()
				d.Price = ""
				d.IsQuoteOnly = true
				return d
			},
			wantFields: map[string]string{},
		},
		{
			name: "success: free product without price",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				d.Price = ""
				d.IsFree = true
				return d
			},
			wantFields: map[string]string{},
		},
		{
			name: "success: literal zero price counts as free",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				d.Price = "0"
				return d
			},
			wantFields: map[string]string{},
		},
		{
			name: "success: positively priced variant waives base price",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				d.Price = ""
				d.VariantsEnabled = true
				d.Variants = []model.Variant{
					{ID: model.NewTemporaryVariantID(), Name: "Black", Price: "150000", Stock: "5"},
				}
				return d
			},
			wantFields: map[string]string{},
		},
		{
			name: "error: empty required fields",
			draft: func() *model.ListingDraft {
				return &model.ListingDraft{Type: constant.ListingTypeProduct}
			},
			wantFields: map[string]string{
				"name":        "name is required",
				"description": "description is required",
				"category":    "category is required",
				"price":       "price must be a non-negative number",
				"stock":       "stock must be a non-negative whole number",
				"images":      "at least one image is required",
			},
		},
		{
			name: "error: invalid listing type",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				d.Type = "subscription"
				return d
			},
			wantFields: map[string]string{
				"type":     "listing type must be product or service",
				"category": "", // category check skips the options list for unknown types
			},
		},
		{
			name: "error: name over the length cap",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				d.Name = strings.Repeat("x", constant.MaxNameLength+1)
				return d
			},
			wantFields: map[string]string{
				"name": "name must be at most 100 characters",
			},
		},
		{
			name: "success: multibyte name measured in characters, not bytes",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				// 100 characters but well over 100 bytes.
				d.Name = strings.Repeat("é", constant.MaxNameLength)
				return d
			},
			wantFields: map[string]string{},
		},
		{
			name: "error: multibyte name over the character cap",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				d.Name = strings.Repeat("é", constant.MaxNameLength+1)
				return d
			},
			wantFields: map[string]string{
				"name": "name must be at most 100 characters",
			},
		},
		{
			name: "error: description over the length cap",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				d.Description = strings.Repeat("x", constant.MaxDescriptionLength+1)
				return d
			},
			wantFields: map[string]string{
				"description": "description must be at most 1000 characters",
			},
		},
		{
			name: "error: category from the other listing type",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				d.Category = "cleaning"
				return d
			},
			wantFields: map[string]string{
				"category": "category must be one of: electronics, fashion, home, beauty, sports, toys, other",
			},
		},
		{
			name: "error: negative price",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				d.Price = "-5"
				return d
			},
			wantFields: map[string]string{
				"price": "price must be a non-negative number",
			},
		},
		{
			name: "error: non-numeric price",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				d.Price = "abc"
				return d
			},
			wantFields: map[string]string{
				"price": "price must be a non-negative number",
			},
		},
		{
			name: "error: stale negative price on a quote-only service",
			draft: func() *model.ListingDraft {
				d := validServiceDraft()
				d.IsQuoteOnly = true
				d.Price = "-5"
				return d
			},
			wantFields: map[string]string{
				"price": "price must be a non-negative number",
			},
		},
		{
			name: "error: stale malformed price on a free listing",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				d.IsFree = true
				d.Price = "abc"
				return d
			},
			wantFields: map[string]string{
				"price": "price must be a non-negative number",
			},
		},
		{
			name: "error: fractional stock",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				d.Stock = "1.5"
				return d
			},
			wantFields: map[string]string{
				"stock": "stock must be a non-negative whole number",
			},
		},
		{
			name: "success: stock not checked for services",
			draft: func() *model.ListingDraft {
				d := validServiceDraft()
				d.Stock = ""
				return d
			},
			wantFields: map[string]string{},
		},
		{
			name: "success: stock not checked when variants are active",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				d.Stock = ""
				d.VariantsEnabled = true
				d.Variants = []model.Variant{
					{ID: model.NewTemporaryVariantID(), Name: "Black", Price: "150000", Stock: "5"},
				}
				return d
			},
			wantFields: map[string]string{},
		},
		{
			name: "error: first failing variant reported with its label",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				d.VariantsEnabled = true
				d.Variants = []model.Variant{
					{ID: model.NewTemporaryVariantID(), Name: "Black", Price: "150000", Stock: "5"},
					{ID: model.NewTemporaryVariantID(), Name: "White", Price: "-1", Stock: "5"},
					{ID: model.NewTemporaryVariantID(), Name: "", Price: "bad", Stock: "bad"},
				}
				return d
			},
			wantFields: map[string]string{
				"variants": `variant 2 ("White"): price must be a non-negative number`,
			},
		},
		{
			name: "error: variant without a name",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				d.VariantsEnabled = true
				d.Variants = []model.Variant{
					{ID: model.NewTemporaryVariantID(), Name: "  ", Price: "100", Stock: "1"},
				}
				return d
			},
			wantFields: map[string]string{
				"variants": "variant 1: name is required",
			},
		},
		{
			name: "error: variant stock only checked for products",
			draft: func() *model.ListingDraft {
				d := validServiceDraft()
				d.VariantsEnabled = true
				d.Variants = []model.Variant{
					{ID: model.NewTemporaryVariantID(), Name: "Hourly", Price: "100000"},
				}
				return d
			},
			wantFields: map[string]string{},
		},
		{
			name: "success: quote price range in order",
			draft: func() *model.ListingDraft {
				d := validServiceDraft()
				d.QuoteSettings = &model.QuoteSettings{Enabled: true, MinPrice: "100000", MaxPrice: "750000"}
				return d
			},
			wantFields: map[string]string{},
		},
		{
			name: "error: inverted quote price range",
			draft: func() *model.ListingDraft {
				d := validServiceDraft()
				d.QuoteSettings = &model.QuoteSettings{Enabled: true, MinPrice: "500", MaxPrice: "10"}
				return d
			},
			wantFields: map[string]string{
				"quote_settings": "minimum quote price must not exceed the maximum",
			},
		},
		{
			name: "error: malformed minimum quote price",
			draft: func() *model.ListingDraft {
				d := validServiceDraft()
				d.QuoteSettings = &model.QuoteSettings{Enabled: true, MinPrice: "abc"}
				return d
			},
			wantFields: map[string]string{
				"quote_settings": "minimum quote price must be a non-negative number",
			},
		},
		{
			name: "success: disabled variants are not checked",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				d.VariantsEnabled = false
				d.Variants = []model.Variant{
					{ID: model.NewTemporaryVariantID(), Name: "", Price: "bad"},
				}
				return d
			},
			wantFields: map[string]string{},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := draft.Validate(tt.draft())
			for field, want := range tt.wantFields {
				if want == "" {
					continue
				}
				if got[field] != want {
					t.Fatalf("Validate()[%s] = %q, want %q", field, got[field], want)
				}
			}
			for field := range got {
				if _, expected := tt.wantFields[field]; !expected {
					t.Fatalf("Validate() reported unexpected field %q: %q", field, got[field])
				}
			}
		})
	}
}

// Every category of one type must be rejected under the other type.
func TestValidate_CategoryTypeInvariant(t *testing.T) {
	for typ, categories := range constant.CategoriesByType {
		other := constant.ListingTypeProduct
		if typ == constant.ListingTypeProduct {
			other = constant.ListingTypeService
		}
		for _, c := range categories {
			if c == "other" {
				// "other" exists on both sides
				continue
			}
			d := validProductDraft()
			if other == constant.ListingTypeService {
				d = validServiceDraft()
			}
			d.Category = c
			if em := draft.Validate(d); em["category"] == "" {
				t.Fatalf("category %q of type %s accepted for type %s", c, typ, other)
			}
		}
	}
}

func TestOrderedMessages(t *testing.T) {
	em := draft.ErrorMap{
		"images":   "at least one image is required",
		"name":     "name is required",
		"zz_extra": "server said no",
		"price":    "price must be a non-negative number",
	}
	got := draft.OrderedMessages(em)
	want := []string{
		"name is required",
		"price must be a non-negative number",
		"at least one image is required",
		"server said no",
	}
	if len(got) != len(want) {
		t.Fatalf("OrderedMessages() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("OrderedMessages()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		em   draft.ErrorMap
		max  int
		want string
	}{
		{
			name: "empty map",
			em:   draft.ErrorMap{},
			max:  3,
			want: "",
		},
		{
			name: "under the cap",
			em:   draft.ErrorMap{"name": "name is required"},
			max:  3,
			want: "name is required",
		},
		{
			name: "over the cap",
			em: draft.ErrorMap{
				"name":        "name is required",
				"description": "description is required",
				"category":    "category is required",
				"price":       "price must be a non-negative number",
				"images":      "at least one image is required",
			},
			max:  3,
			want: "name is required; description is required; category is required (+2 more)",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := draft.Summarize(tt.em, tt.max); got != tt.want {
				t.Fatalf("Summarize() = %q, want %q", got, tt.want)
			}
		})
	}
}
