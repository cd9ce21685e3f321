package draft

import (
	"github.com/openmarket/listing-service/constant"
	"github.com/openmarket/listing-service/model"
	cerrors "github.com/openmarket/listing-service/utils/errors"
)

// UpdateQuoteSettings replaces the nested quote configuration. Only service
// listings carry quote settings; the variant toggle never touches them. The
// price bounds are checked here so an inverted range never enters the draft.
func (s *Store) UpdateQuoteSettings(in model.QuoteSettingsInput) error {
	if s.draft.Type != constant.ListingTypeService {
		return cerrors.SetCustomError(constant.ErrInvalidRequest)
	}
	if msg := checkQuoteRange(in.MinPrice, in.MaxPrice); msg != "" {
		return cerrors.SetCustomErrorDetail(constant.ErrInvalidRequest, msg)
	}
	s.draft.QuoteSettings = &model.QuoteSettings{
		Enabled:           in.Enabled,
		QuoteOnly:         in.QuoteOnly,
		AutoAccept:        in.AutoAccept,
		MinPrice:          in.MinPrice,
		MaxPrice:          in.MaxPrice,
		ResponseTime:      in.ResponseTime,
		RequiresDeposit:   in.RequiresDeposit,
		DepositPercentage: in.DepositPercentage,
		CustomFields:      in.CustomFields,
	}
	return nil
}

// ClearQuoteSettings drops the nested configuration entirely.
func (s *Store) ClearQuoteSettings() {
	s.draft.QuoteSettings = nil
}
