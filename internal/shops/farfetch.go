package shops

import (
	"net/url"
	"strings"
)

func newFarfetch(opts Options) Shop {
	// the inbound requiredShops key is spelled FarFetch, unlike the
	// catalog's own branding
	c := newCatalog("FarFetch", opts)
	c.searchURL = func(phrase string) string {
		// the catalog is split by gender at the path level; the phrase is
		// the only hint we have
		gender := "men"
		lower := strings.ToLower(phrase)
		if strings.Contains(lower, "женс") || strings.Contains(lower, "women") {
			gender = "women"
		}
		return "https://www.farfetch.com/shopping/" + gender + "/search/items.aspx?q=" + url.QueryEscape(phrase)
	}
	c.waitFor = "#catalog-grid"
	c.sel = selectors{
		Card:     `#catalog-grid [data-testid="productCard"]`,
		Name:     `[data-component="ProductCardDescription"]`,
		Brand:    `[data-component="ProductCardBrandName"]`,
		Price:    `[data-component="Price"]`,
		OldPrice: ".price__old-price",
		Image:    "img",
		Link:     "a",
	}
	return c
}
