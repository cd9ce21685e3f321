package constant

type ListingType string

const (
	ListingTypeProduct ListingType = "product"
	ListingTypeService ListingType = "service"
)

// DraftMode distinguishes the two draft slots a user can hold.
type DraftMode string

const (
	DraftModeCreate DraftMode = "create"
	DraftModeEdit   DraftMode = "edit"
)

// Platform limits for a single listing draft.
const (
	MaxNameLength         = 100
	MaxDescriptionLength  = 1000
	MaxImagesPerListing   = 10
	MaxVariantsPerListing = 20
)

// Quote settings defaults applied during normalization.
const (
	QuoteMaxPriceSentinel    = 999999
	QuoteDefaultResponseTime = "24hr"
)

// CategoriesByType maps each listing type to its valid category labels.
// A category saved under one type is never valid for the other.
var CategoriesByType = map[ListingType][]string{
	ListingTypeProduct: {"electronics", "fashion", "home", "beauty", "sports", "toys", "other"},
	ListingTypeService: {"cleaning", "repair", "design", "tutoring", "consulting", "other"},
}

func (t ListingType) Valid() bool {
	return t == ListingTypeProduct || t == ListingTypeService
}

// Categories returns the category labels for the type, nil for unknown types.
func (t ListingType) Categories() []string {
	return CategoriesByType[t]
}

func (t ListingType) HasCategory(category string) bool {
	for _, c := range CategoriesByType[t] {
		if c == category {
			return true
		}
	}
	return false
}

func (m DraftMode) Valid() bool {
	return m == DraftModeCreate || m == DraftModeEdit
}
