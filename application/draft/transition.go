package draft

import (
	"fmt"

	"github.com/openmarket/listing-service/constant"
	"github.com/openmarket/listing-service/model"
)

// Field names accepted by ApplyFieldChange.
const (
	FieldType        = "type"
	FieldName        = "name"
	FieldDescription = "description"
	FieldCategory    = "category"
	FieldPrice       = "price"
	FieldStock       = "stock"
	FieldIsFree      = "is_free"
	FieldIsQuoteOnly = "is_quote_only"
	FieldIsAvailable = "is_available"
)

type transitionFunc func(d *model.ListingDraft, value interface{}) error

// transitions is the explicit reducer table for base-attribute changes.
// Cross-field effects live in named transition funcs, never inline in a
// generic handler.
var transitions = map[string]transitionFunc{
	FieldType:        changeType,
	FieldName:        setName,
	FieldDescription: setDescription,
	FieldCategory:    setCategory,
	FieldPrice:       setPrice,
	FieldStock:       setStock,
	FieldIsFree:      setIsFree,
	FieldIsQuoteOnly: setIsQuoteOnly,
	FieldIsAvailable: setIsAvailable,
}

// ApplyFieldChange routes one field change through the transition table and
// returns the mutated draft unchanged on error.
func ApplyFieldChange(d *model.ListingDraft, field string, value interface{}) error {
	fn, ok := transitions[field]
	if !ok {
		return fmt.Errorf("unknown field %q", field)
	}
	return fn(d, value)
}

// changeType switches the listing type. Category options depend on the type,
// so the chosen category is reset; quote-only selling exists only for
// services, so the flag is reset too. A stale category from the previous
// type must never survive this transition.
func changeType(d *model.ListingDraft, value interface{}) error {
	raw, err := stringValue(FieldType, value)
	if err != nil {
		return err
	}
	t := constant.ListingType(raw)
	if !t.Valid() {
		return fmt.Errorf("invalid listing type %q", raw)
	}
	d.Type = t
	d.Category = ""
	d.IsQuoteOnly = false
	return nil
}

func setName(d *model.ListingDraft, value interface{}) error {
	v, err := stringValue(FieldName, value)
	if err != nil {
		return err
	}
	d.Name = v
	return nil
}

func setDescription(d *model.ListingDraft, value interface{}) error {
	v, err := stringValue(FieldDescription, value)
	if err != nil {
		return err
	}
	d.Description = v
	return nil
}

func setCategory(d *model.ListingDraft, value interface{}) error {
	v, err := stringValue(FieldCategory, value)
	if err != nil {
		return err
	}
	d.Category = v
	return nil
}

func setPrice(d *model.ListingDraft, value interface{}) error {
	v, err := stringValue(FieldPrice, value)
	if err != nil {
		return err
	}
	d.Price = v
	return nil
}

func setStock(d *model.ListingDraft, value interface{}) error {
	v, err := stringValue(FieldStock, value)
	if err != nil {
		return err
	}
	d.Stock = v
	return nil
}

func setIsFree(d *model.ListingDraft, value interface{}) error {
	v, err := boolValue(FieldIsFree, value)
	if err != nil {
		return err
	}
	d.IsFree = v
	return nil
}

// setIsQuoteOnly is only legal for service listings.
func setIsQuoteOnly(d *model.ListingDraft, value interface{}) error {
	v, err := boolValue(FieldIsQuoteOnly, value)
	if err != nil {
		return err
	}
	if v && d.Type != constant.ListingTypeService {
		return fmt.Errorf("quote-only is available for service listings only")
	}
	d.IsQuoteOnly = v
	return nil
}

func setIsAvailable(d *model.ListingDraft, value interface{}) error {
	v, err := boolValue(FieldIsAvailable, value)
	if err != nil {
		return err
	}
	d.IsAvailable = v
	return nil
}

func stringValue(field string, value interface{}) (string, error) {
	v, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("field %q expects a string value", field)
	}
	return v, nil
}

func boolValue(field string, value interface{}) (bool, error) {
	v, ok := value.(bool)
	if !ok {
		return false, fmt.Errorf("field %q expects a boolean value", field)
	}
	return v, nil
}
