package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	draftapp "github.com/openmarket/listing-service/application/draft"
	"github.com/openmarket/listing-service/cmd/config"
	"github.com/openmarket/listing-service/constant"
	"github.com/openmarket/listing-service/model"
	"github.com/openmarket/listing-service/thirdparty/storage"
	utilsContext "github.com/openmarket/listing-service/utils/context"
	"github.com/openmarket/listing-service/utils/errors"
	validatorx "github.com/openmarket/listing-service/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

const maxUploadMemory = 32 << 20

type RestHandler struct {
	DraftApp draftapp.DraftApp
	Uploader storage.Uploader
}

func NewTransport(draftApp draftapp.DraftApp, uploader storage.Uploader, cfg *config.Config) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		DraftApp: draftApp,
		Uploader: uploader,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Draft session routes
	mux.HandleFunc("/v1/drafts", rh.OpenDraft).Methods(http.MethodPost)
	mux.HandleFunc("/v1/drafts", rh.ViewDraft).Methods(http.MethodGet)
	mux.HandleFunc("/v1/drafts", rh.CloseDraft).Methods(http.MethodDelete)
	mux.HandleFunc("/v1/drafts/field", rh.ApplyField).Methods(http.MethodPatch)

	// Images
	mux.HandleFunc("/v1/drafts/images", rh.UploadImages).Methods(http.MethodPost)
	mux.HandleFunc("/v1/drafts/images/reorder", rh.ReorderImages).Methods(http.MethodPost)
	mux.HandleFunc("/v1/drafts/images/{index}", rh.RemoveImage).Methods(http.MethodDelete)

	// Variants on the open draft
	mux.HandleFunc("/v1/drafts/variants/enable", rh.EnableVariants).Methods(http.MethodPost)
	mux.HandleFunc("/v1/drafts/variants/disable", rh.DisableVariants).Methods(http.MethodPost)
	mux.HandleFunc("/v1/drafts/variants", rh.AddVariant).Methods(http.MethodPost)
	mux.HandleFunc("/v1/drafts/variants", rh.ReplaceVariants).Methods(http.MethodPut)
	mux.HandleFunc("/v1/drafts/variants/{variantID}", rh.UpdateVariant).Methods(http.MethodPut)
	mux.HandleFunc("/v1/drafts/variants/{variantID}", rh.RemoveVariant).Methods(http.MethodDelete)

	// Quote settings
	mux.HandleFunc("/v1/drafts/quote-settings", rh.UpdateQuoteSettings).Methods(http.MethodPut)
	mux.HandleFunc("/v1/drafts/quote-settings", rh.ClearQuoteSettings).Methods(http.MethodDelete)

	// Saved snapshot lifecycle
	mux.HandleFunc("/v1/drafts/save", rh.SaveDraft).Methods(http.MethodPost)
	mux.HandleFunc("/v1/drafts/restore", rh.RestoreDraft).Methods(http.MethodPost)
	mux.HandleFunc("/v1/drafts/saved", rh.DiscardSavedDraft).Methods(http.MethodDelete)

	// Validation and submission
	mux.HandleFunc("/v1/drafts/validate", rh.ValidateDraft).Methods(http.MethodPost)
	mux.HandleFunc("/v1/drafts/submit", rh.SubmitDraft).Methods(http.MethodPost)

	// Edit-mode variant writes go straight to the persisted listing
	mux.HandleFunc("/v1/listings/{listingID}/variants", rh.PersistVariantAdd).Methods(http.MethodPost)
	mux.HandleFunc("/v1/listings/{listingID}/variants/{variantID}", rh.PersistVariantUpdate).Methods(http.MethodPut)
	mux.HandleFunc("/v1/listings/{listingID}/variants/{variantID}", rh.PersistVariantDelete).Methods(http.MethodDelete)

	// Internal routes, guarded by the service API key
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cfg.Internal.APIKey))
	internal.HandleFunc("/drafts/{userID}/{mode}/clear", rh.ClearSavedDraft).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())
	mux.Use(AuthMiddleware(cfg.Auth.JWTSecret))

	return mux
}

// draftRef reads the session coordinates every draft route carries: the mode
// query parameter (default create) and, for edit mode, the listing id.
func draftRef(r *http.Request) (constant.DraftMode, uint64, error) {
	mode := constant.DraftMode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = constant.DraftModeCreate
	}
	if !mode.Valid() {
		return "", 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	var listingID uint64
	if raw := r.URL.Query().Get("listing_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return "", 0, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		listingID = id
	}
	if mode == constant.DraftModeEdit && listingID == 0 {
		return "", 0, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return mode, listingID, nil
}

func requestUser(w http.ResponseWriter, r *http.Request) (uint64, bool) {
	userID, ok := utilsContext.GetUserID(r.Context())
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return 0, false
	}
	return userID, true
}

// OpenDraft handler
// @Summary Open a draft session
// @Description Open a fresh create draft or hydrate an edit draft from a stored listing
// @Tags Drafts
// @Accept json
// @Produce json
// @Param request body model.OpenDraftRequest true "Open Draft Request"
// @Success 200 {object} model.DraftView
// @Failure 400 {object} errors.CustomError
// @Router /v1/drafts [post]
func (s *RestHandler) OpenDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	var req model.OpenDraftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DraftApp.Open(ctx, userID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ViewDraft handler
// @Summary View the open draft
// @Tags Drafts
// @Produce json
// @Param mode query string false "Draft mode (create or edit)"
// @Param listing_id query int false "Listing id for edit mode"
// @Success 200 {object} model.DraftView
// @Failure 404 {object} errors.CustomError
// @Router /v1/drafts [get]
func (s *RestHandler) ViewDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	mode, listingID, err := draftRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.DraftApp.View(ctx, userID, mode, listingID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) CloseDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	mode, listingID, err := draftRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := s.DraftApp.Close(ctx, userID, mode, listingID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// ApplyField handler
// @Summary Apply one field change to the open draft
// @Tags Drafts
// @Accept json
// @Produce json
// @Param request body model.FieldChangeRequest true "Field Change Request"
// @Success 200 {object} model.DraftView
// @Failure 400 {object} errors.CustomError
// @Router /v1/drafts/field [patch]
func (s *RestHandler) ApplyField(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	mode, listingID, err := draftRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.FieldChangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DraftApp.ApplyField(ctx, userID, mode, listingID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UploadImages handler
// @Summary Upload listing images
// @Description Upload multipart images, append the stored URLs to the open draft
// @Tags Images
// @Accept mpfd
// @Produce json
// @Param images formData file true "Image files"
// @Success 200 {object} model.DraftView
// @Failure 502 {object} errors.CustomError
// @Router /v1/drafts/images [post]
func (s *RestHandler) UploadImages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	mode, listingID, err := draftRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	headers := r.MultipartForm.File["images"]
	if len(headers) == 0 {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	files := make([]storage.File, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
			return
		}
		defer f.Close()
		files = append(files, storage.File{
			Reader:      f,
			Size:        h.Size,
			Name:        h.Filename,
			ContentType: h.Header.Get("Content-Type"),
		})
	}

	uploaded, err := s.Uploader.Upload(ctx, files, "listings/"+strconv.FormatUint(userID, 10))
	if err != nil {
		// Files uploaded before the failure are lost to this request;
		// the client retries the rest.
		writeError(w, errors.SetCustomError(constant.ErrUploadFailed))
		return
	}

	urls := make([]string, 0, len(uploaded))
	for _, img := range uploaded {
		urls = append(urls, img.Main.URL)
	}

	res, err := s.DraftApp.AppendImages(ctx, userID, mode, listingID, urls)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) RemoveImage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	mode, listingID, err := draftRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DraftApp.RemoveImage(ctx, userID, mode, listingID, index)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ReorderImages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	mode, listingID, err := draftRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.ReorderImagesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DraftApp.ReorderImage(ctx, userID, mode, listingID, req.From, req.To)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) EnableVariants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	mode, listingID, err := draftRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.DraftApp.EnableVariants(ctx, userID, mode, listingID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// DisableVariants handler
// @Summary Disable variants on the open draft
// @Description Fails with a conflict when variants exist and clear_all is false
// @Tags Variants
// @Accept json
// @Produce json
// @Param request body model.DisableVariantsRequest true "Disable Variants Request"
// @Success 200 {object} model.DraftView
// @Failure 409 {object} errors.CustomError
// @Router /v1/drafts/variants/disable [post]
func (s *RestHandler) DisableVariants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	mode, listingID, err := draftRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.DisableVariantsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DraftApp.DisableVariants(ctx, userID, mode, listingID, req.ClearAll)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) AddVariant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	mode, listingID, err := draftRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.VariantInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DraftApp.AddVariant(ctx, userID, mode, listingID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) UpdateVariant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	mode, listingID, err := draftRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.VariantInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DraftApp.UpdateVariant(ctx, userID, mode, listingID, mux.Vars(r)["variantID"], req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) RemoveVariant(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	mode, listingID, err := draftRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.DraftApp.RemoveVariant(ctx, userID, mode, listingID, mux.Vars(r)["variantID"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ReplaceVariants(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	mode, listingID, err := draftRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.BulkReplaceVariantsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DraftApp.ReplaceVariants(ctx, userID, mode, listingID, req.Variants)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) UpdateQuoteSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	mode, listingID, err := draftRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req model.QuoteSettingsInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DraftApp.UpdateQuoteSettings(ctx, userID, mode, listingID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ClearQuoteSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	mode, listingID, err := draftRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.DraftApp.ClearQuoteSettings(ctx, userID, mode, listingID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	mode, listingID, err := draftRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.DraftApp.SaveDraft(ctx, userID, mode, listingID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) RestoreDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	mode, listingID, err := draftRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.DraftApp.RestoreDraft(ctx, userID, mode, listingID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) DiscardSavedDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	mode, listingID, err := draftRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.DraftApp.DiscardSavedDraft(ctx, userID, mode, listingID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) ValidateDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	mode, listingID, err := draftRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.DraftApp.Validate(ctx, userID, mode, listingID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SubmitDraft handler
// @Summary Submit the open draft
// @Description Validate, normalize and persist the draft; returns the blocking errors when validation fails
// @Tags Drafts
// @Produce json
// @Param mode query string false "Draft mode (create or edit)"
// @Param listing_id query int false "Listing id for edit mode"
// @Success 200 {object} model.SubmitResponse
// @Failure 502 {object} errors.CustomError
// @Router /v1/drafts/submit [post]
func (s *RestHandler) SubmitDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	mode, listingID, err := draftRef(r)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := s.DraftApp.Submit(ctx, userID, mode, listingID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) PersistVariantAdd(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	listingID, err := strconv.ParseUint(mux.Vars(r)["listingID"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.VariantInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DraftApp.PersistVariantAdd(ctx, userID, listingID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) PersistVariantUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	listingID, err := strconv.ParseUint(vars["listingID"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	variantID, err := strconv.ParseUint(vars["variantID"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.VariantInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DraftApp.PersistVariantUpdate(ctx, userID, listingID, variantID, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *RestHandler) PersistVariantDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	vars := mux.Vars(r)
	listingID, err := strconv.ParseUint(vars["listingID"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	variantID, err := strconv.ParseUint(vars["variantID"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.DraftApp.PersistVariantDelete(ctx, userID, listingID, variantID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ClearSavedDraft drops a user's durable draft slot. Called by the
// listing-submitted consumer, not by editing clients.
func (s *RestHandler) ClearSavedDraft(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	vars := mux.Vars(r)
	userID, err := strconv.ParseUint(vars["userID"], 10, 64)
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	mode := constant.DraftMode(vars["mode"])
	if !mode.Valid() {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var listingID uint64
	if raw := r.URL.Query().Get("listing_id"); raw != "" {
		listingID, _ = strconv.ParseUint(raw, 10, 64)
	}

	if err := s.DraftApp.ClearSavedDraft(ctx, userID, mode, listingID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
