// Package catalog holds the static restaurant list and its pure filters.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"gpsshowcase/models"
)

var ErrNotFound = errors.New("restaurant not found")

// Catalog is immutable after construction; every accessor returns copies or
// fresh slices so callers cannot mutate it.
type Catalog struct {
	restaurants []models.Restaurant
}

// New validates and wraps a restaurant list. IDs must be unique and
// categories must belong to the fixed enumeration.
func New(restaurants []models.Restaurant) (*Catalog, error) {
	seen := make(map[int64]bool, len(restaurants))
	for _, r := range restaurants {
		if seen[r.ID] {
			return nil, fmt.Errorf("duplicate restaurant id %d", r.ID)
		}
		seen[r.ID] = true
		if !r.Category.Valid() {
			return nil, fmt.Errorf("restaurant %d: unknown category %q", r.ID, r.Category)
		}
		if r.Rating < 0 || r.Rating > 5 {
			return nil, fmt.Errorf("restaurant %d: rating %.1f out of range", r.ID, r.Rating)
		}
		if r.ReviewCount < 0 {
			return nil, fmt.Errorf("restaurant %d: negative review count", r.ID)
		}
	}
	list := make([]models.Restaurant, len(restaurants))
	copy(list, restaurants)
	return &Catalog{restaurants: list}, nil
}

// Default returns the catalog built from the seed data.
func Default() *Catalog {
	c, err := New(Seed())
	if err != nil {
		panic(err)
	}
	return c
}

type fileCatalog struct {
	Restaurants []models.Restaurant `yaml:"restaurants"`
}

// LoadFile reads a YAML catalog file. An empty path yields the seed catalog.
func LoadFile(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var fc fileCatalog
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return New(fc.Restaurants)
}

func (c *Catalog) Len() int { return len(c.restaurants) }

// All returns the full catalog in order.
func (c *Catalog) All() []models.Restaurant {
	out := make([]models.Restaurant, len(c.restaurants))
	copy(out, c.restaurants)
	return out
}

func (c *Catalog) ByID(id int64) (models.Restaurant, error) {
	if i := c.IndexOf(id); i >= 0 {
		return c.restaurants[i], nil
	}
	return models.Restaurant{}, ErrNotFound
}

// IndexOf returns the position of id in the full catalog, or -1.
func (c *Catalog) IndexOf(id int64) int {
	for i, r := range c.restaurants {
		if r.ID == id {
			return i
		}
	}
	return -1
}

// Categories returns the categories that have at least one restaurant, in
// enumeration order.
func (c *Catalog) Categories() []models.Category {
	present := make(map[models.Category]bool)
	for _, r := range c.restaurants {
		present[r.Category] = true
	}
	var out []models.Category
	for _, cat := range models.Categories {
		if present[cat] {
			out = append(out, cat)
		}
	}
	return out
}

// FilterByCategory returns the restaurants of one category in catalog order.
// An empty result is valid.
func (c *Catalog) FilterByCategory(category models.Category) []models.Restaurant {
	out := []models.Restaurant{}
	for _, r := range c.restaurants {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

// Search matches query case-insensitively against name, category label and
// description. Callers trim and reject empty queries; an empty query here
// matches nothing.
func (c *Catalog) Search(query string) []models.Restaurant {
	if query == "" {
		return nil
	}
	q := strings.ToLower(query)
	out := []models.Restaurant{}
	for _, r := range c.restaurants {
		if strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(string(r.Category)), q) ||
			strings.Contains(strings.ToLower(r.Description), q) {
			out = append(out, r)
		}
	}
	return out
}
