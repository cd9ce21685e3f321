package draft

import (
	"github.com/openmarket/listing-service/constant"
	"github.com/openmarket/listing-service/model"
	cerrors "github.com/openmarket/listing-service/utils/errors"
)

// EnableVariants turns the toggle on. Any variants kept in memory by a
// previous soft disable become active again.
func (s *Store) EnableVariants() {
	s.draft.VariantsEnabled = true
}

// DisableVariants turns the toggle off. With clearAll the variant list is
// emptied irreversibly for this session; without it the call only succeeds
// when the list is already empty — a non-empty list needs the caller to
// confirm destructive intent first.
func (s *Store) DisableVariants(clearAll bool) error {
	if !clearAll && len(s.draft.Variants) > 0 {
		return cerrors.SetCustomError(constant.ErrVariantsNotEmpty)
	}
	if clearAll {
		s.draft.Variants = []model.Variant{}
	}
	s.draft.VariantsEnabled = false
	return nil
}

// AddVariant appends a variant with a fresh temporary identifier. Rejected
// once the platform cap is reached.
func (s *Store) AddVariant(in model.VariantInput) (*model.Variant, error) {
	if len(s.draft.Variants) >= constant.MaxVariantsPerListing {
		return nil, cerrors.SetCustomError(constant.ErrVariantLimit)
	}
	v := variantFromInput(model.NewTemporaryVariantID(), in)
	s.draft.Variants = append(s.draft.Variants, v)
	return &s.draft.Variants[len(s.draft.Variants)-1], nil
}

// UpdateVariant replaces the data of the variant addressed by id, keeping
// the identifier stable.
func (s *Store) UpdateVariant(id string, in model.VariantInput) error {
	for i := range s.draft.Variants {
		if s.draft.Variants[i].ID.String() == id {
			s.draft.Variants[i] = variantFromInput(s.draft.Variants[i].ID, in)
			return nil
		}
	}
	return cerrors.SetCustomError(constant.ErrNotFound)
}

func (s *Store) RemoveVariant(id string) error {
	for i := range s.draft.Variants {
		if s.draft.Variants[i].ID.String() == id {
			s.draft.Variants = append(s.draft.Variants[:i], s.draft.Variants[i+1:]...)
			return nil
		}
	}
	return cerrors.SetCustomError(constant.ErrNotFound)
}

// BulkReplaceVariants swaps the whole list, assigning fresh temporary
// identifiers to every entry.
func (s *Store) BulkReplaceVariants(list []model.VariantInput) error {
	if len(list) > constant.MaxVariantsPerListing {
		return cerrors.SetCustomError(constant.ErrVariantLimit)
	}
	variants := make([]model.Variant, 0, len(list))
	for _, in := range list {
		variants = append(variants, variantFromInput(model.NewTemporaryVariantID(), in))
	}
	s.draft.Variants = variants
	return nil
}

// SetPersistedVariants rehydrates the list from server-issued records after
// an edit-mode refetch; local state is not the source of truth then.
func (s *Store) SetPersistedVariants(variants []model.Variant) {
	s.draft.Variants = copyVariants(variants)
}

func variantFromInput(id model.VariantID, in model.VariantInput) model.Variant {
	return model.Variant{
		ID:          id,
		Name:        in.Name,
		Price:       in.Price,
		Stock:       in.Stock,
		IsAvailable: in.IsAvailable,
		SKU:         in.SKU,
		Attributes:  in.Attributes,
		Images:      in.Images,
	}
}
