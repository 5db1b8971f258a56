package shops

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/mohammad-safakhou/outfitter/models"
)

// rawCard is the adapter-local shape pulled from one product card before
// normalization. All fields arrive as page text.
type rawCard struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Brand      string `json:"brand"`
	Price      string `json:"price"`
	OldPrice   string `json:"oldPrice"`
	Rating     string `json:"rating"`
	ImageURL   string `json:"imageUrl"`
	ProductURL string `json:"productUrl"`
}

var nonDigits = regexp.MustCompile(`[^\d]`)

// parsePrice reduces catalog price text ("1 299 ₸", "$49.99") to a number
// by stripping everything but digits. Text with no digits is not a price.
func parsePrice(s string) (float64, bool) {
	d := nonDigits.ReplaceAllString(s, "")
	if d == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(d, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// normalize filters raw cards missing a name or a usable price, fills in
// fallback ids, derives discounts and truncates to limit. Fallback ids are
// only unique enough for within-response dedup; they are not stable across
// requests.
func normalize(cards []rawCard, shop string, limit int) []models.Listing {
	out := make([]models.Listing, 0, limit)
	for _, c := range cards {
		if len(out) == limit {
			break
		}
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		price, ok := parsePrice(c.Price)
		if !ok {
			continue
		}

		l := models.Listing{
			ID:         strings.TrimSpace(c.ID),
			Name:       name,
			Brand:      strings.TrimSpace(c.Brand),
			Price:      price,
			ImageURL:   strings.TrimSpace(c.ImageURL),
			ProductURL: strings.TrimSpace(c.ProductURL),
			Shop:       shop,
		}
		if l.ID == "" {
			l.ID = uuid.NewString()
		}
		if old, ok := parsePrice(c.OldPrice); ok {
			l.OldPrice = old
			l.Discount = int(math.Round((old - price) / old * 100))
		}
		if r, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(c.Rating), ",", "."), 64); err == nil && r > 0 {
			l.Rating = r
		}
		out = append(out, l)
	}
	return out
}
