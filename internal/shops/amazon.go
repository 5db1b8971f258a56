package shops

import "net/url"

func newAmazon(opts Options) Shop {
	c := newCatalog("Amazon", opts)
	c.searchURL = func(phrase string) string {
		return "https://www.amazon.com/s?k=" + url.QueryEscape(phrase)
	}
	c.waitFor = ".s-search-results"
	c.sel = selectors{
		Card:  ".s-search-results [data-component-type=\"s-search-result\"]",
		Name:  "h2 a span",
		Price: ".a-price .a-offscreen",
		Image: ".s-image",
		Link:  ".a-link-normal",
	}
	return c
}
