package model

// QuoteCustomField is one extra question a seller asks buyers on a quote
// request form.
type QuoteCustomField struct {
	Label    string   `json:"label"`
	Type     string   `json:"type"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// QuoteSettings configures quote-based selling for service listings. Min and
// max price are raw input strings until normalization.
type QuoteSettings struct {
	Enabled           bool               `json:"enabled"`
	QuoteOnly         bool               `json:"quote_only"`
	AutoAccept        bool               `json:"auto_accept"`
	MinPrice          string             `json:"min_price"`
	MaxPrice          string             `json:"max_price"`
	ResponseTime      string             `json:"response_time"`
	RequiresDeposit   bool               `json:"requires_deposit"`
	DepositPercentage int                `json:"deposit_percentage"`
	CustomFields      []QuoteCustomField `json:"custom_fields,omitempty"`
}

// QuoteSettingsInput mirrors QuoteSettings for the update operation.
type QuoteSettingsInput struct {
	Enabled           bool               `json:"enabled"`
	QuoteOnly         bool               `json:"quote_only"`
	AutoAccept        bool               `json:"auto_accept"`
	MinPrice          string             `json:"min_price"`
	MaxPrice          string             `json:"max_price"`
	ResponseTime      string             `json:"response_time"`
	RequiresDeposit   bool               `json:"requires_deposit"`
	DepositPercentage int                `json:"deposit_percentage" validate:"gte=0,lte=100"`
	CustomFields      []QuoteCustomField `json:"custom_fields"`
}
