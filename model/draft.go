package model

import (
	"time"

	"github.com/openmarket/listing-service/constant"
)

// ListingDraft is the root aggregate for one editing session. Price and
// stock hold raw user input; they only become numbers during normalization.
// Changing Type resets the chosen category and the quote-only flag, since
// both only make sense under the type they were picked for.
type ListingDraft struct {
	Type        constant.ListingType `json:"type"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Category    string               `json:"category"`
	Price       string               `json:"price"`
	Stock       string               `json:"stock"`
	IsFree      bool                 `json:"is_free"`
	IsQuoteOnly bool                 `json:"is_quote_only"`
	IsAvailable bool                 `json:"is_available"`

	// Images are URLs, first entry is the cover image.
	Images []string `json:"images"`

	VariantsEnabled bool      `json:"variants_enabled"`
	Variants        []Variant `json:"variants"`

	QuoteSettings *QuoteSettings `json:"quote_settings,omitempty"`
}

// DraftFormData is the base-attribute subset persisted in a snapshot,
// mirroring the shape restored into a fresh draft.
type DraftFormData struct {
	Type        constant.ListingType `json:"type"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Category    string               `json:"category"`
	Price       string               `json:"price"`
	Stock       string               `json:"stock"`
	IsFree      bool                 `json:"is_free"`
	IsQuoteOnly bool                 `json:"is_quote_only"`
	IsAvailable bool                 `json:"is_available"`
}

// DraftSnapshot is what the persistence adapter writes to the durable slot.
type DraftSnapshot struct {
	FormData        DraftFormData  `json:"form_data"`
	Images          []string       `json:"images"`
	Variants        []Variant      `json:"variants"`
	VariantsEnabled bool           `json:"variants_enabled"`
	QuoteSettings   *QuoteSettings `json:"quote_settings,omitempty"`
	SavedAt         time.Time      `json:"saved_at"`
}

// FormData projects the draft's base attributes for snapshotting.
func (d *ListingDraft) FormData() DraftFormData {
	return DraftFormData{
		Type:        d.Type,
		Name:        d.Name,
		Description: d.Description,
		Category:    d.Category,
		Price:       d.Price,
		Stock:       d.Stock,
		IsFree:      d.IsFree,
		IsQuoteOnly: d.IsQuoteOnly,
		IsAvailable: d.IsAvailable,
	}
}

// ApplyFormData restores base attributes from a snapshot.
func (d *ListingDraft) ApplyFormData(f DraftFormData) {
	d.Type = f.Type
	d.Name = f.Name
	d.Description = f.Description
	d.Category = f.Category
	d.Price = f.Price
	d.Stock = f.Stock
	d.IsFree = f.IsFree
	d.IsQuoteOnly = f.IsQuoteOnly
	d.IsAvailable = f.IsAvailable
}

// FieldRule says whether a base-attribute field is currently shown and
// whether it must be filled before submission.
type FieldRule struct {
	Visible  bool `json:"visible"`
	Required bool `json:"required"`
}

// FieldVisibility is the resolver's structural output for the base form.
type FieldVisibility struct {
	Name            FieldRule `json:"name"`
	Description     FieldRule `json:"description"`
	Category        FieldRule `json:"category"`
	CategoryOptions []string  `json:"category_options"`
	Price           FieldRule `json:"price"`
	Stock           FieldRule `json:"stock"`
	IsFree          FieldRule `json:"is_free"`
	IsQuoteOnly     FieldRule `json:"is_quote_only"`
	IsAvailable     FieldRule `json:"is_available"`
}
