package draft_test

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/openmarket/listing-service/application/draft"
	"github.com/openmarket/listing-service/constant"
	"github.com/openmarket/listing-service/model"
)

func TestNormalize_FreeResolution(t *testing.T) {
	tests := []struct {
		name      string
		draft     func() *model.ListingDraft
		wantFree  bool
		wantPrice float64
	}{
		{
			name:      "priced product stays priced",
			draft:     validProductDraft,
			wantFree:  false,
			wantPrice: 150000,
		},
		{
			name: "free flag zeroes the price",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				d.IsFree = true
				return d
			},
			wantFree:  true,
			wantPrice: 0,
		},
		{
			name: "literal zero price implies free",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				d.Price = "0"
				return d
			},
			wantFree:  true,
			wantPrice: 0,
		},
		{
			name: "free flag wins over a positive price",
			draft: func() *model.ListingDraft {
				d := validProductDraft()
				d.IsFree = true
				d.Price = "99"
				return d
			},
			wantFree:  true,
			wantPrice: 0,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := draft.Normalize(tt.draft())
			if got.IsFree != tt.wantFree {
				t.Fatalf("IsFree = %v, want %v", got.IsFree, tt.wantFree)
			}
			if got.Price != tt.wantPrice {
				t.Fatalf("Price = %v, want %v", got.Price, tt.wantPrice)
			}
		})
	}
}

func TestNormalize_Stock(t *testing.T) {
	product := draft.Normalize(validProductDraft())
	if product.Stock == nil || *product.Stock != 10 {
		t.Fatalf("product Stock = %v, want 10", product.Stock)
	}

	service := draft.Normalize(validServiceDraft())
	if service.Stock != nil {
		t.Fatalf("service Stock = %v, want nil", *service.Stock)
	}
}

func TestNormalize_Variants(t *testing.T) {
	d := validProductDraft()
	d.Price = ""
	d.Stock = ""
	d.VariantsEnabled = true
	d.Variants = []model.Variant{
		{
			ID:          model.NewTemporaryVariantID(),
			Name:        "Black",
			Price:       "150000",
			Stock:       "5",
			IsAvailable: true,
			SKU:         "WM-BLK",
			Attributes:  map[string]string{"color": "black"},
		},
		{
			ID:          model.PersistedVariantID(42),
			Name:        "White",
			Price:       "160000.50",
			Stock:       "0",
			IsAvailable: true,
		},
	}

	got := draft.Normalize(d)
	if !got.HasVariants {
		t.Fatal("HasVariants = false, want true")
	}
	if len(got.Variants) != 2 {
		t.Fatalf("len(Variants) = %d, want 2", len(got.Variants))
	}

	// Temporary id is stripped, persisted id survives.
	if got.Variants[0].ID != 0 {
		t.Fatalf("Variants[0].ID = %d, want 0", got.Variants[0].ID)
	}
	if got.Variants[1].ID != 42 {
		t.Fatalf("Variants[1].ID = %d, want 42", got.Variants[1].ID)
	}

	if got.Variants[0].Price != 150000 {
		t.Fatalf("Variants[0].Price = %v, want 150000", got.Variants[0].Price)
	}
	if got.Variants[1].Price != 160000.50 {
		t.Fatalf("Variants[1].Price = %v, want 160000.50", got.Variants[1].Price)
	}
	if got.Variants[0].Stock == nil || *got.Variants[0].Stock != 5 {
		t.Fatalf("Variants[0].Stock = %v, want 5", got.Variants[0].Stock)
	}
	if got.Variants[0].SKU != "WM-BLK" {
		t.Fatalf("Variants[0].SKU = %q, want WM-BLK", got.Variants[0].SKU)
	}
	if got.Variants[1].SKU != "" || got.Variants[1].Attributes != nil {
		t.Fatal("optional fields must be omitted when absent")
	}
}

func TestNormalize_VariantsDisabled(t *testing.T) {
	d := validProductDraft()
	d.VariantsEnabled = false
	d.Variants = []model.Variant{
		{ID: model.NewTemporaryVariantID(), Name: "Black", Price: "100", Stock: "1"},
	}

	got := draft.Normalize(d)
	if got.HasVariants {
		t.Fatal("HasVariants = true, want false")
	}
	if len(got.Variants) != 0 {
		t.Fatalf("len(Variants) = %d, want 0", len(got.Variants))
	}
}

func TestNormalize_QuoteSettings(t *testing.T) {
	tests := []struct {
		name          string
		draft         func() *model.ListingDraft
		wantBased     bool
		wantEnabled   bool
		wantQuoteOnly bool
		wantMaxPrice  float64
		wantResponse  string
	}{
		{
			name: "quote-only without explicit settings gets the defaults",
			draft: func() *model.ListingDraft {
				d := validServiceDraft()
				d.Price = ""
				d.IsQuoteOnly = true
				return d
			},
			wantBased:     true,
			wantEnabled:   true,
			wantQuoteOnly: true,
			wantMaxPrice:  constant.QuoteMaxPriceSentinel,
			wantResponse:  constant.QuoteDefaultResponseTime,
		},
		{
			name: "explicit settings override the defaults",
			draft: func() *model.ListingDraft {
				d := validServiceDraft()
				d.QuoteSettings = &model.QuoteSettings{
					Enabled:      true,
					MinPrice:     "100000",
					MaxPrice:     "750000",
					ResponseTime: "48hr",
				}
				return d
			},
			wantBased:     true,
			wantEnabled:   true,
			wantQuoteOnly: false,
			wantMaxPrice:  750000,
			wantResponse:  "48hr",
		},
		{
			name:        "plain service emits a disabled stub",
			draft:       validServiceDraft,
			wantBased:   false,
			wantEnabled: false,
		},
		{
			name: "disabled settings stay disabled",
			draft: func() *model.ListingDraft {
				d := validServiceDraft()
				d.QuoteSettings = &model.QuoteSettings{Enabled: false, MinPrice: "100"}
				return d
			},
			wantBased:   false,
			wantEnabled: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got := draft.Normalize(tt.draft())
			if got.IsQuoteBased != tt.wantBased {
				t.Fatalf("IsQuoteBased = %v, want %v", got.IsQuoteBased, tt.wantBased)
			}
			if got.QuoteSettings == nil {
				t.Fatal("QuoteSettings = nil, want a value for services")
			}
			if got.QuoteSettings.Enabled != tt.wantEnabled {
				t.Fatalf("QuoteSettings.Enabled = %v, want %v", got.QuoteSettings.Enabled, tt.wantEnabled)
			}
			if !tt.wantEnabled {
				return
			}
			if got.QuoteSettings.QuoteOnly != tt.wantQuoteOnly {
				t.Fatalf("QuoteSettings.QuoteOnly = %v, want %v", got.QuoteSettings.QuoteOnly, tt.wantQuoteOnly)
			}
			if got.QuoteSettings.MaxPrice != tt.wantMaxPrice {
				t.Fatalf("QuoteSettings.MaxPrice = %v, want %v", got.QuoteSettings.MaxPrice, tt.wantMaxPrice)
			}
			if got.QuoteSettings.ResponseTime != tt.wantResponse {
				t.Fatalf("QuoteSettings.ResponseTime = %q, want %q", got.QuoteSettings.ResponseTime, tt.wantResponse)
			}
		})
	}
}

func TestNormalize_ProductHasNoQuoteSettings(t *testing.T) {
	got := draft.Normalize(validProductDraft())
	if got.QuoteSettings != nil || got.IsQuoteBased {
		t.Fatal("product payload must not carry quote settings")
	}
}

// Feeding a normalized payload back through as a draft yields the same
// payload again.
func TestNormalize_Idempotent(t *testing.T) {
	d := validServiceDraft()
	d.IsQuoteOnly = true
	d.Price = ""
	d.VariantsEnabled = true
	d.Variants = []model.Variant{
		{ID: model.PersistedVariantID(7), Name: "Hourly", Price: "100000", IsAvailable: true},
	}

	first := draft.Normalize(d)
	second := draft.Normalize(draftFromPayload(first))
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("second pass = %+v, want %+v", second, first)
	}
}

func draftFromPayload(p *model.SubmissionPayload) *model.ListingDraft {
	d := &model.ListingDraft{
		Type:        p.Type,
		Name:        p.Name,
		Description: p.Description,
		Category:    p.Category,
		IsFree:      p.IsFree,
		IsAvailable: p.IsAvailable,
		Images:      append([]string{}, p.Images...),
	}
	if !p.IsFree && p.Price > 0 {
		d.Price = strconv.FormatFloat(p.Price, 'f', -1, 64)
	}
	if p.Stock != nil && *p.Stock > 0 {
		d.Stock = strconv.FormatInt(*p.Stock, 10)
	}
	if p.HasVariants {
		d.VariantsEnabled = true
		for _, v := range p.Variants {
			dv := model.Variant{
				ID:          model.PersistedVariantID(v.ID),
				Name:        v.Name,
				Price:       strconv.FormatFloat(v.Price, 'f', -1, 64),
				IsAvailable: v.IsAvailable,
				SKU:         v.SKU,
				Attributes:  v.Attributes,
				Images:      v.Images,
			}
			if v.Stock != nil && *v.Stock > 0 {
				dv.Stock = strconv.FormatInt(*v.Stock, 10)
			}
			d.Variants = append(d.Variants, dv)
		}
	}
	if p.QuoteSettings != nil && p.QuoteSettings.Enabled {
		d.IsQuoteOnly = p.QuoteSettings.QuoteOnly
		d.QuoteSettings = &model.QuoteSettings{
			Enabled:           p.QuoteSettings.Enabled,
			QuoteOnly:         p.QuoteSettings.QuoteOnly,
			AutoAccept:        p.QuoteSettings.AutoAccept,
			ResponseTime:      p.QuoteSettings.ResponseTime,
			RequiresDeposit:   p.QuoteSettings.RequiresDeposit,
			DepositPercentage: p.QuoteSettings.DepositPercentage,
			CustomFields:      p.QuoteSettings.CustomFields,
		}
		if p.QuoteSettings.MinPrice > 0 {
			d.QuoteSettings.MinPrice = strconv.FormatFloat(p.QuoteSettings.MinPrice, 'f', -1, 64)
		}
		if p.QuoteSettings.MaxPrice > 0 {
			d.QuoteSettings.MaxPrice = strconv.FormatFloat(p.QuoteSettings.MaxPrice, 'f', -1, 64)
		}
	}
	return d
}
