package shops

import "net/url"

func newAliExpress(opts Options) Shop {
	c := newCatalog("Aliexpress", opts)
	c.searchURL = func(phrase string) string {
		return "https://www.aliexpress.com/wholesale?catId=0&searchText=" + url.QueryEscape(phrase)
	}
	// class names carry build hashes, so everything matches by prefix
	c.waitFor = `[class^="red-snippet_RedSnippet__grid__"]`
	c.sel = selectors{
		Card:  `[class^="red-snippet_RedSnippet__grid__"] [class^="red-snippet_RedSnippet__container__"]`,
		Name:  `[class^="red-snippet_RedSnippet__title__"]`,
		Price: `[class^="red-snippet_RedSnippet__priceNew__"]`,
		Image: `[class^="gallery_Gallery__image__"]`,
		Link:  `[class^="red-snippet_RedSnippet__gallery__"]`,
	}
	return c
}
