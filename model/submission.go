package model

import "github.com/openmarket/listing-service/constant"

// SubmissionVariant is a cleaned variant inside a submission payload.
// Temporary identifiers never appear here; ID is set only for variants the
// server has already issued an id for.
type SubmissionVariant struct {
	ID          uint64            `json:"id,omitempty"`
	Name        string            `json:"name"`
	Price       float64           `json:"price"`
	Stock       *int64            `json:"stock,omitempty"`
	IsAvailable bool              `json:"is_available"`
	SKU         string            `json:"sku,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	Images      []string          `json:"images,omitempty"`
}

// SubmissionQuoteSettings is the fully-defaulted quote configuration sent to
// the listing API for service listings.
type SubmissionQuoteSettings struct {
	Enabled           bool               `json:"enabled"`
	QuoteOnly         bool               `json:"quote_only"`
	AutoAccept        bool               `json:"auto_accept,omitempty"`
	MinPrice          float64            `json:"min_price"`
	MaxPrice          float64            `json:"max_price"`
	ResponseTime      string             `json:"response_time,omitempty"`
	RequiresDeposit   bool               `json:"requires_deposit,omitempty"`
	DepositPercentage int                `json:"deposit_percentage"`
	CustomFields      []QuoteCustomField `json:"custom_fields,omitempty"`
}

// SubmissionPayload is the canonical shape the listing create/update
// collaborator accepts. Stock is present only for product listings.
type SubmissionPayload struct {
	Type          constant.ListingType     `json:"type"`
	Name          string                   `json:"name"`
	Description   string                   `json:"description"`
	Category      string                   `json:"category"`
	Price         float64                  `json:"price"`
	IsFree        bool                     `json:"is_free"`
	IsAvailable   bool                     `json:"is_available"`
	Stock         *int64                   `json:"stock,omitempty"`
	Images        []string                 `json:"images"`
	HasVariants   bool                     `json:"has_variants"`
	Variants      []SubmissionVariant      `json:"variants"`
	IsQuoteBased  bool                     `json:"is_quote_based"`
	QuoteSettings *SubmissionQuoteSettings `json:"quote_settings,omitempty"`
}
