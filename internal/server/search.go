package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mohammad-safakhou/outfitter/internal/outfit"
	"github.com/mohammad-safakhou/outfitter/models"
)

type searchRequest struct {
	Query           string          `json:"query"`
	Img             string          `json:"img"` // base64 JPEG
	PictureProperty string          `json:"pictureProperty"`
	ItemsQuantity   int             `json:"itemsQuantity"`
	RequiredShops   map[string]bool `json:"requiredShops"`
}

type searchResponse struct {
	Success bool `json:"success"`
	Query   struct {
		Original string      `json:"original"`
		Parsed   models.Plan `json:"parsed"`
	} `json:"query"`
	Results []models.Group `json:"results"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// SearchHandler exposes the outfit search pipeline over HTTP.
type SearchHandler struct {
	Searcher Searcher
}

// Register mounts the search routes on the group.
func (h *SearchHandler) Register(g *echo.Group) {
	g.POST("/search", h.search)
}

func (h *SearchHandler) search(c echo.Context) error {
	var req searchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// exactly one of query / (img + pictureProperty) must be supplied
	hasImage := req.Img != "" && req.PictureProperty != ""
	if !hasImage && req.Query == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Query is required")
	}
	if hasImage && !models.PictureMode(req.PictureProperty).Valid() {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid picture property")
	}

	enabled := false
	for _, on := range req.RequiredShops {
		if on {
			enabled = true
			break
		}
	}
	if !enabled {
		return echo.NewHTTPError(http.StatusBadRequest, "at least one shop must be enabled")
	}

	search := outfit.Request{
		Query:         req.Query,
		ItemsQuantity: req.ItemsQuantity,
		Shops:         req.RequiredShops,
	}
	if hasImage {
		search.Query = ""
		search.Image = req.Img
		search.PictureProperty = models.PictureMode(req.PictureProperty)
	}

	result, err := h.Searcher.Search(c.Request().Context(), search)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := searchResponse{Success: true, Results: result.Groups}
	resp.Query.Original = result.Query
	resp.Query.Parsed = result.Plan
	return c.JSON(http.StatusOK, resp)
}
