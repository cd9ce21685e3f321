package draft

import (
	"encoding/json"
	"time"

	"github.com/openmarket/listing-service/constant"
	"github.com/openmarket/listing-service/model"
)

// Store owns the draft aggregate for one editing session: the draft itself,
// the validation error map and dirty tracking against the initial state.
// It is not safe for concurrent use; the owning session serializes access.
type Store struct {
	draft   *model.ListingDraft
	initial string
	errors  ErrorMap
}

// NewStore wraps a draft and captures its serialized form as the clean
// baseline for dirty tracking.
func NewStore(d *model.ListingDraft) *Store {
	if d.Images == nil {
		d.Images = []string{}
	}
	if d.Variants == nil {
		d.Variants = []model.Variant{}
	}
	return &Store{
		draft:   d,
		initial: serializeDraft(d),
		errors:  ErrorMap{},
	}
}

// NewEmptyStore builds a create-mode store for the given listing type.
func NewEmptyStore(t constant.ListingType) *Store {
	return NewStore(&model.ListingDraft{
		Type:        t,
		IsAvailable: true,
	})
}

func (s *Store) Draft() *model.ListingDraft {
	return s.draft
}

func (s *Store) Errors() ErrorMap {
	return s.errors
}

func (s *Store) SetErrors(em ErrorMap) {
	if em == nil {
		em = ErrorMap{}
	}
	s.errors = em
}

// IsDirty reports whether the serialized current state differs from the
// serialized initial state. Validation errors are transient and excluded.
func (s *Store) IsDirty() bool {
	return serializeDraft(s.draft) != s.initial
}

// Snapshot captures the persistable parts of the draft for the durable slot.
func (s *Store) Snapshot() *model.DraftSnapshot {
	return &model.DraftSnapshot{
		FormData:        s.draft.FormData(),
		Images:          append([]string{}, s.draft.Images...),
		Variants:        copyVariants(s.draft.Variants),
		VariantsEnabled: s.draft.VariantsEnabled,
		QuoteSettings:   copyQuoteSettings(s.draft.QuoteSettings),
		SavedAt:         time.Now().UTC(),
	}
}

// RestoreSnapshot replaces the draft contents with a previously saved
// snapshot. The clean baseline is left untouched, so a restored draft counts
// as dirty and keeps autosaving.
func (s *Store) RestoreSnapshot(snap *model.DraftSnapshot) {
	s.draft.ApplyFormData(snap.FormData)
	s.draft.Images = append([]string{}, snap.Images...)
	s.draft.Variants = copyVariants(snap.Variants)
	s.draft.VariantsEnabled = snap.VariantsEnabled
	s.draft.QuoteSettings = copyQuoteSettings(snap.QuoteSettings)
	s.errors = ErrorMap{}
}

func serializeDraft(d *model.ListingDraft) string {
	b, err := json.Marshal(d)
	if err != nil {
		return ""
	}
	return string(b)
}

func copyVariants(in []model.Variant) []model.Variant {
	out := make([]model.Variant, len(in))
	copy(out, in)
	for i := range out {
		if in[i].Attributes != nil {
			attrs := make(map[string]string, len(in[i].Attributes))
			for k, v := range in[i].Attributes {
				attrs[k] = v
			}
			out[i].Attributes = attrs
		}
		if in[i].Images != nil {
			out[i].Images = append([]string{}, in[i].Images...)
		}
	}
	return out
}

func copyQuoteSettings(qs *model.QuoteSettings) *model.QuoteSettings {
	if qs == nil {
		return nil
	}
	cp := *qs
	if qs.CustomFields != nil {
		cp.CustomFields = append([]model.QuoteCustomField{}, qs.CustomFields...)
	}
	return &cp
}
