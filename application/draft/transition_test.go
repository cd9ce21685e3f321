package draft_test

import (
	"reflect"
	"testing"

	"github.com/openmarket/listing-service/application/draft"
	"github.com/openmarket/listing-service/constant"
	"github.com/openmarket/listing-service/model"
)

func TestApplyFieldChange(t *testing.T) {
	tests := []struct {
		name    string
		draft   func() *model.ListingDraft
		field   string
		value   interface{}
		wantErr bool
		check   func(t *testing.T, d *model.ListingDraft)
	}{
		{
			name:  "success: set name",
			draft: validProductDraft,
			field: draft.FieldName,
			value: "Mechanical Keyboard",
			check: func(t *testing.T, d *model.ListingDraft) {
				if d.Name != "Mechanical Keyboard" {
					t.Fatalf("Name = %q", d.Name)
				}
			},
		},
		{
			name:  "success: set price keeps raw input",
			draft: validProductDraft,
			field: draft.FieldPrice,
			value: "99.90",
			check: func(t *testing.T, d *model.ListingDraft) {
				if d.Price != "99.90" {
					t.Fatalf("Price = %q", d.Price)
				}
			},
		},
		{
			name: "success: type change resets category and quote-only",
			draft: func() *model.ListingDraft {
				d := validServiceDraft()
				d.IsQuoteOnly = true
				return d
			},
			field: draft.FieldType,
			value: "product",
			check: func(t *testing.T, d *model.ListingDraft) {
				if d.Type != constant.ListingTypeProduct {
					t.Fatalf("Type = %q", d.Type)
				}
				if d.Category != "" {
					t.Fatalf("Category = %q, want reset", d.Category)
				}
				if d.IsQuoteOnly {
					t.Fatal("IsQuoteOnly survived the type change")
				}
			},
		},
		{
			name:  "success: quote-only on for a service",
			draft: validServiceDraft,
			field: draft.FieldIsQuoteOnly,
			value: true,
			check: func(t *testing.T, d *model.ListingDraft) {
				if !d.IsQuoteOnly {
					t.Fatal("IsQuoteOnly = false")
				}
			},
		},
		{
			name:    "error: quote-only on for a product",
			draft:   validProductDraft,
			field:   draft.FieldIsQuoteOnly,
			value:   true,
			wantErr: true,
		},
		{
			name:  "success: quote-only off is always legal",
			draft: validProductDraft,
			field: draft.FieldIsQuoteOnly,
			value: false,
		},
		{
			name:    "error: invalid listing type value",
			draft:   validProductDraft,
			field:   draft.FieldType,
			value:   "subscription",
			wantErr: true,
		},
		{
			name:    "error: unknown field",
			draft:   validProductDraft,
			field:   "colour",
			value:   "red",
			wantErr: true,
		},
		{
			name:    "error: string field given a bool",
			draft:   validProductDraft,
			field:   draft.FieldName,
			value:   true,
			wantErr: true,
		},
		{
			name:    "error: bool field given a string",
			draft:   validProductDraft,
			field:   draft.FieldIsFree,
			value:   "yes",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			d := tt.draft()
			err := draft.ApplyFieldChange(d, tt.field, tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyFieldChange() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.check != nil {
				tt.check(t, d)
			}
		})
	}
}

// A failed change must leave the draft untouched.
func TestApplyFieldChange_NoMutationOnError(t *testing.T) {
	d := validProductDraft()
	before := *d
	if err := draft.ApplyFieldChange(d, draft.FieldType, "subscription"); err == nil {
		t.Fatal("expected error")
	}
	if !reflect.DeepEqual(*d, before) {
		t.Fatalf("draft mutated on error: %+v", d)
	}
}
