package shops

import "net/url"

func newWildberries(opts Options) Shop {
	c := newCatalog("Wildberries", opts)
	c.searchURL = func(phrase string) string {
		return "https://www.wildberries.ru/catalog/0/search.aspx?search=" + url.QueryEscape(phrase)
	}
	c.waitFor = ".product-card-list"
	c.sel = selectors{
		Card:     ".product-card-list .product-card",
		Name:     ".product-card__name",
		Brand:    ".brand-name",
		Price:    ".price__lower-price",
		OldPrice: ".price__old-price",
		Image:    ".j-thumbnail",
		Link:     ".product-card__link",
	}
	return c
}
