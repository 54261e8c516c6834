package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gpsshowcase/catalog"
	"gpsshowcase/models"
	"gpsshowcase/showcase"
)

type ListParams struct {
	Category models.Category
	Query    string
}

// ParseListParams extracts the catalog filters from the URL query. "q" and
// "name" are accepted for the free-text query.
func ParseListParams(query url.Values) ListParams {
	p := ListParams{
		Category: models.Category(strings.TrimSpace(query.Get("category"))),
		Query:    strings.TrimSpace(query.Get("q")),
	}
	if p.Query == "" {
		p.Query = strings.TrimSpace(query.Get("name"))
	}
	return p
}

// Apply runs the filters over the catalog. The category narrows first, then
// the text query; no filter returns the whole catalog.
func (p ListParams) Apply(c *catalog.Catalog) []models.Restaurant {
	results := c.All()
	if p.Category != "" {
		results = c.FilterByCategory(p.Category)
	}
	if p.Query != "" {
		matches := make(map[int64]bool)
		for _, r := range c.Search(p.Query) {
			matches[r.ID] = true
		}
		filtered := []models.Restaurant{}
		for _, r := range results {
			if matches[r.ID] {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}
	return results
}

// RestaurantsHandler lists catalog entries without touching the dashboard state.
func RestaurantsHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p := ParseListParams(r.URL.Query())
		if p.Category != "" && !p.Category.Valid() {
			writeError(w, http.StatusBadRequest, "Unknown category")
			return
		}

		var results []models.Restaurant
		s.Do(func(a *showcase.App) { results = p.Apply(a.Catalog()) })

		writeJSON(w, http.StatusOK, map[string]any{
			"restaurants": results,
			"total_count": len(results),
		})
	}
}

func RestaurantHandler(s *Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid restaurant id")
			return
		}
		var (
			res    models.Restaurant
			getErr error
		)
		s.Do(func(a *showcase.App) { res, getErr = a.Catalog().ByID(id) })
		if getErr != nil {
			writeError(w, http.StatusNotFound, "Restaurant not found")
			return
		}
		writeJSON(w, http.StatusOK, res)
	}
}
