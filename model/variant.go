package model

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// VariantID tags a variant as either temporary (created locally, not yet
// persisted) or persisted (issued by the server). Keeping the two apart in
// the type system means normalization cannot leak a temporary id into a
// submission payload.
type VariantID struct {
	temp   string
	server uint64
}

func NewTemporaryVariantID() VariantID {
	return VariantID{temp: uuid.NewString()}
}

func PersistedVariantID(serverID uint64) VariantID {
	return VariantID{server: serverID}
}

func (v VariantID) IsTemporary() bool {
	return v.temp != ""
}

// ServerID returns the persisted id, false when the id is temporary.
func (v VariantID) ServerID() (uint64, bool) {
	if v.IsTemporary() || v.server == 0 {
		return 0, false
	}
	return v.server, true
}

func (v VariantID) IsZero() bool {
	return v.temp == "" && v.server == 0
}

func (v VariantID) String() string {
	if v.IsTemporary() {
		return "tmp:" + v.temp
	}
	return fmt.Sprintf("%d", v.server)
}

type variantIDJSON struct {
	Temp   string `json:"temp,omitempty"`
	Server uint64 `json:"server,omitempty"`
}

func (v VariantID) MarshalJSON() ([]byte, error) {
	return json.Marshal(variantIDJSON{Temp: v.temp, Server: v.server})
}

func (v *VariantID) UnmarshalJSON(data []byte) error {
	var raw variantIDJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.temp = raw.Temp
	v.server = raw.Server
	return nil
}

// Variant is a priced/stocked sub-option of a listing. Price and stock are
// kept as raw input strings until normalization; stock only matters for
// product listings.
type Variant struct {
	ID          VariantID         `json:"id"`
	Name        string            `json:"name"`
	Price       string            `json:"price"`
	Stock       string            `json:"stock"`
	IsAvailable bool              `json:"is_available"`
	SKU         string            `json:"sku,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	Images      []string          `json:"images,omitempty"`
}

// VariantInput is the caller-supplied variant data for add/update/replace
// operations. The store assigns identifiers, never the caller.
type VariantInput struct {
	Name        string            `json:"name" validate:"required"`
	Price       string            `json:"price" validate:"required"`
	Stock       string            `json:"stock"`
	IsAvailable bool              `json:"is_available"`
	SKU         string            `json:"sku"`
	Attributes  map[string]string `json:"attributes"`
	Images      []string          `json:"images"`
}
