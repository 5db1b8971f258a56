package models

// Category values match the catalogs' Russian-language taxonomy; the
// interpreter prompt constrains the LLM to exactly this set.
const (
	CategoryOuterwear = "верхняя одежда"
	CategoryDressSuit = "платье/костюм"
	CategoryTop       = "топ"
	CategoryBottom    = "низ"
	CategoryFootwear  = "обувь"
	CategoryAccessory = "аксессуар"
)

// CategoryOrder fixes the display priority of result groups. Categories
// absent from this table sort after all known ones, keeping their
// discovery order.
var CategoryOrder = []string{
	CategoryOuterwear,
	CategoryDressSuit,
	CategoryTop,
	CategoryBottom,
	CategoryFootwear,
	CategoryAccessory,
}

// CategoryRank returns the priority index of a category, or len(CategoryOrder)
// for categories outside the fixed table.
func CategoryRank(category string) int {
	for i, c := range CategoryOrder {
		if c == category {
			return i
		}
	}
	return len(CategoryOrder)
}

// PlanItem is one marketplace search phrase tagged with a clothing category.
type PlanItem struct {
	Query    string `json:"query"`
	Category string `json:"type"`
}

// Plan is the structured decomposition of a user request. Immutable after
// validation; owned by the orchestrator for the duration of one request.
type Plan struct {
	Query string     `json:"query"` // original request text, verbatim
	Style string     `json:"style"` // overall look: casual, business, sport...
	Items []PlanItem `json:"items"`
}

// Listing is one normalized product candidate from a catalog.
type Listing struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Brand      string  `json:"brand,omitempty"`
	Price      float64 `json:"price"`
	OldPrice   float64 `json:"oldPrice,omitempty"`
	Discount   int     `json:"discount,omitempty"`
	Rating     float64 `json:"rating,omitempty"`
	ImageURL   string  `json:"imageUrl"`
	ProductURL string  `json:"productUrl"`
	Shop       string  `json:"shop"`
}

// Group holds all surviving listings for one plan category.
type Group struct {
	Category string    `json:"type"`
	Listings []Listing `json:"products"`
}

// PictureMode selects the image-interpretation instruction set.
type PictureMode string

const (
	// PictureOnImage: find the clothing items visible in the photo.
	PictureOnImage PictureMode = "on_image"
	// PictureByImage: find items that pair well with the pictured one.
	PictureByImage PictureMode = "by_image"
	// PictureSelfie: suggest wardrobe items matching the person's looks.
	PictureSelfie PictureMode = "selfie"
)

// Valid reports whether the mode is one of the supported instruction sets.
func (m PictureMode) Valid() bool {
	switch m {
	case PictureOnImage, PictureByImage, PictureSelfie:
		return true
	}
	return false
}
