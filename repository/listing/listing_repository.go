package listing

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/openmarket/listing-service/model"
)

type SQL struct {
	conn *sqlx.DB
}

// ListingRepository is the create/update collaborator for normalized
// submission payloads plus edit-mode variant persistence against a listing.
type ListingRepository interface {
	Create(ctx context.Context, userID uint64, p *model.SubmissionPayload) (uint64, error)
	Update(ctx context.Context, listingID uint64, p *model.SubmissionPayload) error
	GetByID(ctx context.Context, listingID uint64) (*model.ListingRecord, []model.ListingVariantRecord, error)
	AddVariant(ctx context.Context, listingID uint64, v model.SubmissionVariant) (uint64, error)
	UpdateVariant(ctx context.Context, listingID, variantID uint64, v model.SubmissionVariant) error
	DeleteVariant(ctx context.Context, listingID, variantID uint64) error
}

func NewListingRepository(conn *sqlx.DB) ListingRepository {
	return &SQL{conn: conn}
}

const (
	insertListingQuery = `INSERT INTO listing
(user_id, type, name, description, category, price, is_free, is_available, stock, images, has_variants, is_quote_based, quote_settings, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW())`

	updateListingQuery = `UPDATE listing
SET type = ?, name = ?, description = ?, category = ?, price = ?, is_free = ?, is_available = ?, stock = ?, images = ?, has_variants = ?, is_quote_based = ?, quote_settings = ?, updated_at = NOW()
WHERE id = ?`

	getListingQuery = `SELECT id, user_id, type, name, description, category, price, is_free, is_available, stock, images, has_variants, is_quote_based, quote_settings, created_at, updated_at
FROM listing WHERE id = ?`

	countListingNameQuery = `SELECT COUNT(*) FROM listing WHERE user_id = ? AND name = ? AND id != ?`

	insertVariantQuery = `INSERT INTO listing_variant
(listing_id, name, price, stock, is_available, sku, attributes, images)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	updateVariantQuery = `UPDATE listing_variant
SET name = ?, price = ?, stock = ?, is_available = ?, sku = ?, attributes = ?, images = ?
WHERE id = ? AND listing_id = ?`

	deleteVariantQuery = `DELETE FROM listing_variant WHERE id = ? AND listing_id = ?`

	deleteListingVariantsQuery = `DELETE FROM listing_variant WHERE listing_id = ?`

	listVariantsQuery = `SELECT id, listing_id, name, price, stock, is_available, sku, attributes, images
FROM listing_variant WHERE listing_id = ? ORDER BY id`
)

func (s *SQL) Create(ctx context.Context, userID uint64, p *model.SubmissionPayload) (uint64, error) {
	var count int64
	if err := s.conn.GetContext(ctx, &count, countListingNameQuery, userID, p.Name, 0); err != nil {
		return 0, err
	}
	if count > 0 {
		return 0, model.FieldErrors{"name": "you already have a listing with this name"}
	}

	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, insertListingQuery,
		userID, string(p.Type), p.Name, p.Description, p.Category, p.Price, p.IsFree, p.IsAvailable,
		p.Stock, mustJSON(p.Images), p.HasVariants, p.IsQuoteBased, quoteSettingsJSON(p.QuoteSettings))
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, v := range p.Variants {
		if _, err := tx.ExecContext(ctx, insertVariantQuery, variantArgs(uint64(id), v)...); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	committed = true
	return uint64(id), nil
}

func (s *SQL) Update(ctx context.Context, listingID uint64, p *model.SubmissionPayload) error {
	var rec model.ListingRecord
	if err := s.conn.GetContext(ctx, &rec, getListingQuery, listingID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("listing %d not found", listingID)
		}
		return err
	}

	var count int64
	if err := s.conn.GetContext(ctx, &count, countListingNameQuery, rec.UserID, p.Name, listingID); err != nil {
		return err
	}
	if count > 0 {
		return model.FieldErrors{"name": "you already have a listing with this name"}
	}

	tx, err := s.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if _, err := tx.ExecContext(ctx, updateListingQuery,
		string(p.Type), p.Name, p.Description, p.Category, p.Price, p.IsFree, p.IsAvailable,
		p.Stock, mustJSON(p.Images), p.HasVariants, p.IsQuoteBased, quoteSettingsJSON(p.QuoteSettings),
		listingID); err != nil {
		return err
	}

	// Submission carries the authoritative variant set, replace wholesale.
	if _, err := tx.ExecContext(ctx, deleteListingVariantsQuery, listingID); err != nil {
		return err
	}
	for _, v := range p.Variants {
		if _, err := tx.ExecContext(ctx, insertVariantQuery, variantArgs(listingID, v)...); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

func (s *SQL) GetByID(ctx context.Context, listingID uint64) (*model.ListingRecord, []model.ListingVariantRecord, error) {
	var rec model.ListingRecord
	if err := s.conn.GetContext(ctx, &rec, getListingQuery, listingID); err != nil {
		return nil, nil, err
	}

	rows, err := s.conn.QueryxContext(ctx, listVariantsQuery, listingID)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	variants := make([]model.ListingVariantRecord, 0)
	for rows.Next() {
		var v model.ListingVariantRecord
		if err := rows.StructScan(&v); err != nil {
			return nil, nil, err
		}
		variants = append(variants, v)
	}

	return &rec, variants, nil
}

func (s *SQL) AddVariant(ctx context.Context, listingID uint64, v model.SubmissionVariant) (uint64, error) {
	res, err := s.conn.ExecContext(ctx, insertVariantQuery, variantArgs(listingID, v)...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) UpdateVariant(ctx context.Context, listingID, variantID uint64, v model.SubmissionVariant) error {
	res, err := s.conn.ExecContext(ctx, updateVariantQuery,
		v.Name, v.Price, v.Stock, v.IsAvailable, nullString(v.SKU), attributesJSON(v.Attributes), imagesJSON(v.Images),
		variantID, listingID)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("variant %d not found on listing %d", variantID, listingID)
	}
	return nil
}

func (s *SQL) DeleteVariant(ctx context.Context, listingID, variantID uint64) error {
	_, err := s.conn.ExecContext(ctx, deleteVariantQuery, variantID, listingID)
	return err
}

func variantArgs(listingID uint64, v model.SubmissionVariant) []interface{} {
	return []interface{}{
		listingID, v.Name, v.Price, v.Stock, v.IsAvailable,
		nullString(v.SKU), attributesJSON(v.Attributes), imagesJSON(v.Images),
	}
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func mustJSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func quoteSettingsJSON(qs *model.SubmissionQuoteSettings) *string {
	if qs == nil {
		return nil
	}
	b, err := json.Marshal(qs)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}

func attributesJSON(attrs map[string]string) *string {
	if len(attrs) == 0 {
		return nil
	}
	b, err := json.Marshal(attrs)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}

func imagesJSON(images []string) *string {
	if len(images) == 0 {
		return nil
	}
	b, err := json.Marshal(images)
	if err != nil {
		return nil
	}
	s := string(b)
	return &s
}
