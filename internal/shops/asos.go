package shops

import "net/url"

func newAsos(opts Options) Shop {
	c := newCatalog("Asos", opts)
	c.searchURL = func(phrase string) string {
		return "https://www.asos.com/search/?q=" + url.QueryEscape(phrase)
	}
	c.waitFor = `[class^="listingPage"]`
	c.sel = selectors{
		Card:  `[class^="listingPage"] [aria-label="product"]`,
		Name:  `[class^="productDescription"]`,
		Price: `[class^="price"]`,
		Image: "img",
		Link:  `[class^="productLink"]`,
	}
	return c
}
