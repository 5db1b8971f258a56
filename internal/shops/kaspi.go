package shops

import "net/url"

func newKaspi(opts Options) Shop {
	c := newCatalog("Kaspi", opts)
	c.searchURL = func(phrase string) string {
		return "https://kaspi.kz/shop/search/?text=" + url.QueryEscape(phrase)
	}
	c.waitFor = ".item-cards-grid"
	c.sel = selectors{
		Card:   ".item-cards-grid .item-card",
		Name:   ".item-card__name-link",
		Price:  ".item-card__prices-price",
		Rating: ".item-card__rating .rating",
		Image:  ".item-card__image",
		Link:   ".item-card__name-link",
	}
	return c
}
