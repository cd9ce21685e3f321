package model

import (
	"time"

	"github.com/openmarket/listing-service/constant"
)

// ListingRecord is the listing table entity a successful submission lands in.
type ListingRecord struct {
	ID            uint64     `db:"id" json:"id"`
	UserID        uint64     `db:"user_id" json:"user_id"`
	Type          string     `db:"type" json:"type"`
	Name          string     `db:"name" json:"name"`
	Description   string     `db:"description" json:"description"`
	Category      string     `db:"category" json:"category"`
	Price         float64    `db:"price" json:"price"`
	IsFree        bool       `db:"is_free" json:"is_free"`
	IsAvailable   bool       `db:"is_available" json:"is_available"`
	Stock         *int64     `db:"stock" json:"stock,omitempty"`
	Images        string     `db:"images" json:"-"`
	HasVariants   bool       `db:"has_variants" json:"has_variants"`
	IsQuoteBased  bool       `db:"is_quote_based" json:"is_quote_based"`
	QuoteSettings *string    `db:"quote_settings" json:"-"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}

// ListingVariantRecord is one variant row belonging to a listing.
type ListingVariantRecord struct {
	ID          uint64  `db:"id" json:"id"`
	ListingID   uint64  `db:"listing_id" json:"listing_id"`
	Name        string  `db:"name" json:"name"`
	Price       float64 `db:"price" json:"price"`
	Stock       *int64  `db:"stock" json:"stock,omitempty"`
	IsAvailable bool    `db:"is_available" json:"is_available"`
	SKU         *string `db:"sku" json:"sku,omitempty"`
	Attributes  *string `db:"attributes" json:"-"`
	Images      *string `db:"images" json:"-"`
}

// UploadedImage is one record returned by the image upload collaborator.
type UploadedImage struct {
	Main struct {
		URL string `json:"url"`
	} `json:"main"`
}

// OpenDraftRequest opens (or resumes) a draft session.
type OpenDraftRequest struct {
	Type      constant.ListingType `json:"type" validate:"required,oneof=product service"`
	Mode      constant.DraftMode   `json:"mode" validate:"required,oneof=create edit"`
	ListingID uint64               `json:"listing_id"`
}

// FieldChangeRequest applies one base-attribute change to the open draft.
// Value is a string for text fields and a bool for flag fields.
type FieldChangeRequest struct {
	Field string      `json:"field" validate:"required"`
	Value interface{} `json:"value"`
}

type DisableVariantsRequest struct {
	ClearAll bool `json:"clear_all"`
}

// ReorderImagesRequest moves the image at From to position To.
type ReorderImagesRequest struct {
	From int `json:"from"`
	To   int `json:"to"`
}

type BulkReplaceVariantsRequest struct {
	Variants []VariantInput `json:"variants" validate:"dive"`
}

// DraftView is the projection returned to the editing client after every
// operation: current draft, validation errors, dirtiness and what to show.
type DraftView struct {
	Draft         *ListingDraft     `json:"draft"`
	Errors        map[string]string `json:"errors"`
	IsDirty       bool              `json:"is_dirty"`
	Visibility    FieldVisibility   `json:"visibility"`
	HasSavedDraft bool              `json:"has_saved_draft"`
	SavedAt       *time.Time        `json:"saved_at,omitempty"`
}

// SubmitResponse reports either the created/updated listing id or the
// blocking errors, with a bounded human-readable summary.
type SubmitResponse struct {
	Submitted bool              `json:"submitted"`
	ListingID uint64            `json:"listing_id,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"`
	Summary   string            `json:"summary,omitempty"`
}
