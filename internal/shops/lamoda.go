package shops

import "net/url"

func newLamoda(opts Options) Shop {
	c := newCatalog("Lamoda", opts)
	c.searchURL = func(phrase string) string {
		return "https://www.lamoda.kz/catalogsearch/result/?q=" + url.QueryEscape(phrase)
	}
	c.waitFor = ".grid__catalog"
	c.sel = selectors{
		Card:     ".grid__catalog .x-product-card__card",
		Name:     ".x-product-card-description__product-name",
		Brand:    ".x-product-card-description__brand-name",
		Price:    ".x-product-card-description__price-new",
		OldPrice: ".x-product-card-description__price-old",
		Image:    ".x-product-card__pic-img",
		Link:     ".x-product-card__pic",
	}
	return c
}
