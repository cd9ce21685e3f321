package draft

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/openmarket/listing-service/cmd/config"
	"github.com/openmarket/listing-service/constant"
	"github.com/openmarket/listing-service/model"
	draftstorerepo "github.com/openmarket/listing-service/repository/draftstore"
	listingrepo "github.com/openmarket/listing-service/repository/listing"
	"github.com/openmarket/listing-service/thirdparty/rabbitmq"
	cerrors "github.com/openmarket/listing-service/utils/errors"
	"github.com/openmarket/listing-service/utils/logger"
)

// DraftApp owns the listing draft editing sessions: one per (user, mode)
// slot, mutated only through these operations.
type DraftApp interface {
	Open(ctx context.Context, userID uint64, req *model.OpenDraftRequest) (*model.DraftView, error)
	View(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) (*model.DraftView, error)
	ApplyField(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, req *model.FieldChangeRequest) (*model.DraftView, error)

	AppendImages(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, urls []string) (*model.DraftView, error)
	RemoveImage(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, index int) (*model.DraftView, error)
	ReorderImage(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, from, to int) (*model.DraftView, error)

	EnableVariants(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) (*model.DraftView, error)
	DisableVariants(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, clearAll bool) (*model.DraftView, error)
	AddVariant(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, in model.VariantInput) (*model.DraftView, error)
	UpdateVariant(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, variantID string, in model.VariantInput) (*model.DraftView, error)
	RemoveVariant(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, variantID string) (*model.DraftView, error)
	ReplaceVariants(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, list []model.VariantInput) (*model.DraftView, error)

	UpdateQuoteSettings(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, in model.QuoteSettingsInput) (*model.DraftView, error)
	ClearQuoteSettings(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) (*model.DraftView, error)

	SaveDraft(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) (*model.DraftView, error)
	RestoreDraft(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) (*model.DraftView, error)
	DiscardSavedDraft(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) (*model.DraftView, error)
	ClearSavedDraft(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) error

	Validate(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) (*model.DraftView, error)
	Submit(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) (*model.SubmitResponse, error)
	Close(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) error

	PersistVariantAdd(ctx context.Context, userID uint64, listingID uint64, in model.VariantInput) (*model.DraftView, error)
	PersistVariantUpdate(ctx context.Context, userID uint64, listingID, variantID uint64, in model.VariantInput) (*model.DraftView, error)
	PersistVariantDelete(ctx context.Context, userID uint64, listingID, variantID uint64) (*model.DraftView, error)
}

// session holds one open draft. The mutex stands in for the single-threaded
// event queue of the reference behavior: mutations and the autosave tick
// serialize on it, so a save always reads a settled draft.
type session struct {
	mu        sync.Mutex
	store     *Store
	persist   *draftstorerepo.Adapter
	saver     *Autosaver
	userID    uint64
	mode      constant.DraftMode
	listingID uint64
	closed    bool
}

type draftAppImpl struct {
	config      *config.Config
	kv          draftstorerepo.KV
	listingRepo listingrepo.ListingRepository
	publisher   *rabbitmq.Publisher

	mu       sync.RWMutex
	sessions map[string]*session
}

func NewDraftApp(config *config.Config, kv draftstorerepo.KV, listingRepo listingrepo.ListingRepository, publisher *rabbitmq.Publisher) DraftApp {
	return &draftAppImpl{
		config:      config,
		kv:          kv,
		listingRepo: listingRepo,
		publisher:   publisher,
		sessions:    make(map[string]*session),
	}
}

// draftKey names the durable slot for a (user, mode) pair. Two tabs editing
// the same slot overwrite each other last-write-wins; no arbitration.
func draftKey(userID uint64, mode constant.DraftMode, listingID uint64) string {
	if mode == constant.DraftModeEdit {
		return fmt.Sprintf("listing_draft:%d:edit:%d", userID, listingID)
	}
	return fmt.Sprintf("listing_draft:%d:create", userID)
}

func (a *draftAppImpl) Open(ctx context.Context, userID uint64, req *model.OpenDraftRequest) (*model.DraftView, error) {
	if req.Mode == constant.DraftModeEdit && req.ListingID == 0 {
		return nil, cerrors.SetCustomError(constant.ErrInvalidRequest)
	}

	key := draftKey(userID, req.Mode, req.ListingID)

	a.mu.Lock()
	if s, ok := a.sessions[key]; ok {
		a.mu.Unlock()
		s.mu.Lock()
		defer s.mu.Unlock()
		return a.viewLocked(ctx, s), nil
	}
	a.mu.Unlock()

	var store *Store
	if req.Mode == constant.DraftModeEdit {
		rec, variants, err := a.listingRepo.GetByID(ctx, req.ListingID)
		if err != nil {
			logger.Error("[OpenDraft] listingRepo.GetByID", zap.Uint64("listing_id", req.ListingID), zap.String("error", err.Error()))
			return nil, cerrors.SetCustomError(constant.ErrNotFound)
		}
		d, err := draftFromRecord(rec, variants)
		if err != nil {
			logger.Error("[OpenDraft] hydrate draft", zap.Uint64("listing_id", req.ListingID), zap.String("error", err.Error()))
			return nil, cerrors.SetCustomError(constant.ErrInternal)
		}
		store = NewStore(d)
	} else {
		store = NewEmptyStore(req.Type)
	}

	s := &session{
		store:     store,
		persist:   draftstorerepo.NewAdapter(a.kv, key, a.config.Draft.SnapshotTTL),
		saver:     NewAutosaver(a.config.Draft.AutosaveInterval),
		userID:    userID,
		mode:      req.Mode,
		listingID: req.ListingID,
	}

	a.mu.Lock()
	// Another request may have opened the slot meanwhile; keep the winner.
	if existing, ok := a.sessions[key]; ok {
		s = existing
	} else {
		a.sessions[key] = s
	}
	a.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	return a.viewLocked(ctx, s), nil
}

func (a *draftAppImpl) session(userID uint64, mode constant.DraftMode, listingID uint64) (*session, error) {
	a.mu.RLock()
	s, ok := a.sessions[draftKey(userID, mode, listingID)]
	a.mu.RUnlock()
	if !ok {
		return nil, cerrors.SetCustomError(constant.ErrDraftNotFound)
	}
	return s, nil
}

// mutate runs fn under the session lock, then restarts autosave when the
// draft came out dirty.
func (a *draftAppImpl) mutate(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, fn func(s *session) error) (*model.DraftView, error) {
	s, err := a.session(userID, mode, listingID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := fn(s); err != nil {
		return nil, err
	}
	if s.store.IsDirty() {
		a.ensureAutosave(s)
	}
	return a.viewLocked(ctx, s), nil
}

func (a *draftAppImpl) ensureAutosave(s *session) {
	s.saver.Start(func() bool {
		s.mu.Lock()
		defer s.mu.Unlock()
		// A tick that lost the race against teardown must never write to a
		// stale or freed key.
		if s.closed {
			return false
		}
		if !s.store.IsDirty() {
			// Clean at the check: cancel, a later mutation restarts us.
			return false
		}
		s.persist.Save(context.Background(), s.store.Snapshot())
		return true
	})
}

func (a *draftAppImpl) viewLocked(ctx context.Context, s *session) *model.DraftView {
	return &model.DraftView{
		Draft:         s.store.Draft(),
		Errors:        s.store.Errors(),
		IsDirty:       s.store.IsDirty(),
		Visibility:    ResolveVisibility(s.store.Draft()),
		HasSavedDraft: s.persist.Exists(ctx),
	}
}

func (a *draftAppImpl) View(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) (*model.DraftView, error) {
	s, err := a.session(userID, mode, listingID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return a.viewLocked(ctx, s), nil
}

func (a *draftAppImpl) ApplyField(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, req *model.FieldChangeRequest) (*model.DraftView, error) {
	return a.mutate(ctx, userID, mode, listingID, func(s *session) error {
		if err := ApplyFieldChange(s.store.Draft(), req.Field, req.Value); err != nil {
			return cerrors.SetCustomErrorDetail(constant.ErrInvalidRequest, err.Error())
		}
		return nil
	})
}

func (a *draftAppImpl) AppendImages(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, urls []string) (*model.DraftView, error) {
	return a.mutate(ctx, userID, mode, listingID, func(s *session) error {
		d := s.store.Draft()
		if len(d.Images)+len(urls) > constant.MaxImagesPerListing {
			return cerrors.SetCustomError(constant.ErrImageLimit)
		}
		d.Images = append(d.Images, urls...)
		return nil
	})
}

func (a *draftAppImpl) RemoveImage(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, index int) (*model.DraftView, error) {
	return a.mutate(ctx, userID, mode, listingID, func(s *session) error {
		d := s.store.Draft()
		if index < 0 || index >= len(d.Images) {
			return cerrors.SetCustomError(constant.ErrInvalidRequest)
		}
		d.Images = append(d.Images[:index], d.Images[index+1:]...)
		return nil
	})
}

// ReorderImage moves one image; moving to position 0 makes it the cover.
func (a *draftAppImpl) ReorderImage(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, from, to int) (*model.DraftView, error) {
	return a.mutate(ctx, userID, mode, listingID, func(s *session) error {
		d := s.store.Draft()
		if from < 0 || from >= len(d.Images) || to < 0 || to >= len(d.Images) {
			return cerrors.SetCustomError(constant.ErrInvalidRequest)
		}
		img := d.Images[from]
		d.Images = append(d.Images[:from], d.Images[from+1:]...)
		rest := append([]string{}, d.Images[to:]...)
		d.Images = append(append(d.Images[:to], img), rest...)
		return nil
	})
}

func (a *draftAppImpl) EnableVariants(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) (*model.DraftView, error) {
	return a.mutate(ctx, userID, mode, listingID, func(s *session) error {
		s.store.EnableVariants()
		return nil
	})
}

func (a *draftAppImpl) DisableVariants(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, clearAll bool) (*model.DraftView, error) {
	return a.mutate(ctx, userID, mode, listingID, func(s *session) error {
		return s.store.DisableVariants(clearAll)
	})
}

func (a *draftAppImpl) AddVariant(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, in model.VariantInput) (*model.DraftView, error) {
	return a.mutate(ctx, userID, mode, listingID, func(s *session) error {
		_, err := s.store.AddVariant(in)
		return err
	})
}

func (a *draftAppImpl) UpdateVariant(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, variantID string, in model.VariantInput) (*model.DraftView, error) {
	return a.mutate(ctx, userID, mode, listingID, func(s *session) error {
		return s.store.UpdateVariant(variantID, in)
	})
}

func (a *draftAppImpl) RemoveVariant(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, variantID string) (*model.DraftView, error) {
	return a.mutate(ctx, userID, mode, listingID, func(s *session) error {
		return s.store.RemoveVariant(variantID)
	})
}

func (a *draftAppImpl) ReplaceVariants(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, list []model.VariantInput) (*model.DraftView, error) {
	return a.mutate(ctx, userID, mode, listingID, func(s *session) error {
		return s.store.BulkReplaceVariants(list)
	})
}

func (a *draftAppImpl) UpdateQuoteSettings(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64, in model.QuoteSettingsInput) (*model.DraftView, error) {
	return a.mutate(ctx, userID, mode, listingID, func(s *session) error {
		return s.store.UpdateQuoteSettings(in)
	})
}

func (a *draftAppImpl) ClearQuoteSettings(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) (*model.DraftView, error) {
	return a.mutate(ctx, userID, mode, listingID, func(s *session) error {
		s.store.ClearQuoteSettings()
		return nil
	})
}

// SaveDraft writes a snapshot immediately. A failed write degrades to
// "draft not saved": logged by the adapter, never an error for the editor.
func (a *draftAppImpl) SaveDraft(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) (*model.DraftView, error) {
	s, err := a.session(userID, mode, listingID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.store.Snapshot()
	if s.persist.Save(ctx, snap) {
		view := a.viewLocked(ctx, s)
		view.SavedAt = &snap.SavedAt
		return view, nil
	}
	return a.viewLocked(ctx, s), nil
}

func (a *draftAppImpl) RestoreDraft(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) (*model.DraftView, error) {
	return a.mutate(ctx, userID, mode, listingID, func(s *session) error {
		snap := s.persist.Load(ctx)
		if snap == nil {
			return cerrors.SetCustomError(constant.ErrNotFound)
		}
		s.store.RestoreSnapshot(snap)
		return nil
	})
}

func (a *draftAppImpl) DiscardSavedDraft(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) (*model.DraftView, error) {
	s, err := a.session(userID, mode, listingID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persist.Clear(ctx)
	return a.viewLocked(ctx, s), nil
}

// ClearSavedDraft drops the durable slot without requiring an open session.
// Used by the listing-submitted consumer through the internal API.
func (a *draftAppImpl) ClearSavedDraft(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) error {
	adapter := draftstorerepo.NewAdapter(a.kv, draftKey(userID, mode, listingID), a.config.Draft.SnapshotTTL)
	adapter.Clear(ctx)
	return nil
}

func (a *draftAppImpl) Validate(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) (*model.DraftView, error) {
	s, err := a.session(userID, mode, listingID)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.SetErrors(Validate(s.store.Draft()))
	return a.viewLocked(ctx, s), nil
}

// Submit validates, normalizes and hands the payload to the listing
// collaborator. Local validation always runs first; the draft and its
// persisted snapshot are cleared only on full success.
func (a *draftAppImpl) Submit(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) (*model.SubmitResponse, error) {
	s, err := a.session(userID, mode, listingID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	em := Validate(s.store.Draft())
	s.store.SetErrors(em)
	if len(em) > 0 {
		return &model.SubmitResponse{
			Submitted: false,
			Errors:    em,
			Summary:   Summarize(em, 3),
		}, nil
	}

	payload := Normalize(s.store.Draft())

	var resultID uint64
	if s.mode == constant.DraftModeEdit {
		resultID = s.listingID
		err = a.listingRepo.Update(ctx, s.listingID, payload)
	} else {
		resultID, err = a.listingRepo.Create(ctx, userID, payload)
	}
	if err != nil {
		if fieldErrs, ok := err.(model.FieldErrors); ok {
			// Server-side field errors ride the same path as local ones.
			merged := ErrorMap(fieldErrs)
			s.store.SetErrors(merged)
			return &model.SubmitResponse{
				Submitted: false,
				Errors:    merged,
				Summary:   Summarize(merged, 3),
			}, nil
		}
		logger.Error("[Submit] listing collaborator", zap.Uint64("user_id", userID), zap.String("error", err.Error()))
		return nil, cerrors.SetCustomError(constant.ErrSubmissionFailed)
	}

	if a.publisher != nil {
		msg := rabbitmq.ListingSubmittedMessage{
			ListingID:   resultID,
			UserID:      userID,
			Mode:        string(s.mode),
			SubmittedAt: time.Now().UTC(),
		}
		if err := a.publisher.PublishListingSubmitted(msg); err != nil {
			logger.Error("[Submit] publish listing submitted", zap.Uint64("listing_id", resultID), zap.String("error", err.Error()))
		}
	}

	s.persist.Clear(ctx)
	s.closed = true
	s.saver.Stop()
	a.removeSession(s)

	return &model.SubmitResponse{Submitted: true, ListingID: resultID}, nil
}

// Close tears the session down. The autosave timer stops so a stale key is
// never written again; the last saved snapshot survives until cleared.
func (a *draftAppImpl) Close(ctx context.Context, userID uint64, mode constant.DraftMode, listingID uint64) error {
	s, err := a.session(userID, mode, listingID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.saver.Stop()
	a.removeSession(s)
	return nil
}

func (a *draftAppImpl) removeSession(s *session) {
	a.mu.Lock()
	delete(a.sessions, draftKey(s.userID, s.mode, s.listingID))
	a.mu.Unlock()
}

// PersistVariantAdd writes a variant straight to the listing (edit mode)
// and rehydrates the session from the authoritative refetch.
func (a *draftAppImpl) PersistVariantAdd(ctx context.Context, userID uint64, listingID uint64, in model.VariantInput) (*model.DraftView, error) {
	sv, err := submissionVariantFromInput(in)
	if err != nil {
		return nil, err
	}
	if _, err := a.listingRepo.AddVariant(ctx, listingID, sv); err != nil {
		logger.Error("[PersistVariantAdd] listingRepo.AddVariant", zap.Uint64("listing_id", listingID), zap.String("error", err.Error()))
		return nil, cerrors.SetCustomError(constant.ErrInternal)
	}
	return a.refetchVariants(ctx, userID, listingID)
}

func (a *draftAppImpl) PersistVariantUpdate(ctx context.Context, userID uint64, listingID, variantID uint64, in model.VariantInput) (*model.DraftView, error) {
	sv, err := submissionVariantFromInput(in)
	if err != nil {
		return nil, err
	}
	if err := a.listingRepo.UpdateVariant(ctx, listingID, variantID, sv); err != nil {
		logger.Error("[PersistVariantUpdate] listingRepo.UpdateVariant", zap.Uint64("variant_id", variantID), zap.String("error", err.Error()))
		return nil, cerrors.SetCustomError(constant.ErrInternal)
	}
	return a.refetchVariants(ctx, userID, listingID)
}

func (a *draftAppImpl) PersistVariantDelete(ctx context.Context, userID uint64, listingID, variantID uint64) (*model.DraftView, error) {
	if err := a.listingRepo.DeleteVariant(ctx, listingID, variantID); err != nil {
		logger.Error("[PersistVariantDelete] listingRepo.DeleteVariant", zap.Uint64("variant_id", variantID), zap.String("error", err.Error()))
		return nil, cerrors.SetCustomError(constant.ErrInternal)
	}
	return a.refetchVariants(ctx, userID, listingID)
}

// refetchVariants reloads the authoritative variant list after a server
// write; local state is never trusted as the source of truth afterwards.
func (a *draftAppImpl) refetchVariants(ctx context.Context, userID uint64, listingID uint64) (*model.DraftView, error) {
	_, records, err := a.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		logger.Error("[refetchVariants] listingRepo.GetByID", zap.Uint64("listing_id", listingID), zap.String("error", err.Error()))
		return nil, cerrors.SetCustomError(constant.ErrInternal)
	}

	return a.mutate(ctx, userID, constant.DraftModeEdit, listingID, func(s *session) error {
		s.store.SetPersistedVariants(variantsFromRecords(records))
		return nil
	})
}

func submissionVariantFromInput(in model.VariantInput) (model.SubmissionVariant, error) {
	sv := model.SubmissionVariant{
		Name:        in.Name,
		IsAvailable: in.IsAvailable,
		SKU:         in.SKU,
	}
	p, ok := parsePrice(in.Price)
	if !ok || p.IsNegative() {
		return sv, cerrors.SetCustomErrorDetail(constant.ErrInvalidRequest, "price must be a non-negative number")
	}
	sv.Price, _ = p.Float64()
	if in.Stock != "" {
		n, ok := parseStock(in.Stock)
		if !ok || n < 0 {
			return sv, cerrors.SetCustomErrorDetail(constant.ErrInvalidRequest, "stock must be a non-negative whole number")
		}
		sv.Stock = &n
	}
	if len(in.Attributes) > 0 {
		sv.Attributes = in.Attributes
	}
	if len(in.Images) > 0 {
		sv.Images = in.Images
	}
	return sv, nil
}

// draftFromRecord hydrates an edit-mode draft from the stored listing.
func draftFromRecord(rec *model.ListingRecord, variants []model.ListingVariantRecord) (*model.ListingDraft, error) {
	d := &model.ListingDraft{
		Type:            constant.ListingType(rec.Type),
		Name:            rec.Name,
		Description:     rec.Description,
		Category:        rec.Category,
		IsFree:          rec.IsFree,
		IsAvailable:     rec.IsAvailable,
		VariantsEnabled: rec.HasVariants,
		Images:          []string{},
		Variants:        variantsFromRecords(variants),
	}
	if !rec.IsFree && rec.Price > 0 {
		d.Price = formatFloat(rec.Price)
	}
	if rec.Stock != nil {
		d.Stock = strconv.FormatInt(*rec.Stock, 10)
	}
	if rec.Images != "" {
		if err := json.Unmarshal([]byte(rec.Images), &d.Images); err != nil {
			return nil, err
		}
	}
	if rec.QuoteSettings != nil {
		var sqs model.SubmissionQuoteSettings
		if err := json.Unmarshal([]byte(*rec.QuoteSettings), &sqs); err != nil {
			return nil, err
		}
		d.IsQuoteOnly = sqs.QuoteOnly && d.Type == constant.ListingTypeService
		d.QuoteSettings = quoteSettingsFromSubmission(&sqs)
	}
	return d, nil
}

func variantsFromRecords(records []model.ListingVariantRecord) []model.Variant {
	out := make([]model.Variant, 0, len(records))
	for _, r := range records {
		v := model.Variant{
			ID:          model.PersistedVariantID(r.ID),
			Name:        r.Name,
			Price:       formatFloat(r.Price),
			IsAvailable: r.IsAvailable,
		}
		if r.Stock != nil {
			v.Stock = strconv.FormatInt(*r.Stock, 10)
		}
		if r.SKU != nil {
			v.SKU = *r.SKU
		}
		if r.Attributes != nil {
			_ = json.Unmarshal([]byte(*r.Attributes), &v.Attributes)
		}
		if r.Images != nil {
			_ = json.Unmarshal([]byte(*r.Images), &v.Images)
		}
		out = append(out, v)
	}
	return out
}

func quoteSettingsFromSubmission(sqs *model.SubmissionQuoteSettings) *model.QuoteSettings {
	if sqs == nil || !sqs.Enabled {
		return nil
	}
	qs := &model.QuoteSettings{
		Enabled:           sqs.Enabled,
		QuoteOnly:         sqs.QuoteOnly,
		AutoAccept:        sqs.AutoAccept,
		ResponseTime:      sqs.ResponseTime,
		RequiresDeposit:   sqs.RequiresDeposit,
		DepositPercentage: sqs.DepositPercentage,
		CustomFields:      sqs.CustomFields,
	}
	if sqs.MinPrice > 0 {
		qs.MinPrice = formatFloat(sqs.MinPrice)
	}
	if sqs.MaxPrice > 0 && sqs.MaxPrice != constant.QuoteMaxPriceSentinel {
		qs.MaxPrice = formatFloat(sqs.MaxPrice)
	}
	return qs
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
