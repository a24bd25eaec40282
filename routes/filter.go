package routes

import (
	"fmt"
	"strconv"
	"strings"

	"menuapi/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// productFilter carries the optional list filters. An absent field applies
// no constraint; present fields are combined with AND.
type productFilter struct {
	MinPrice    *float64
	MaxPrice    *float64
	MinRating   *float64
	Category    string
	Toppings    []string
	ProductType string
}

func parseProductFilter(c *fiber.Ctx) (productFilter, error) {
	var f productFilter
	var err error

	if f.MinPrice, err = queryFloat(c, "min_price"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = queryFloat(c, "max_price"); err != nil {
		return f, err
	}
	if f.MinRating, err = queryFloat(c, "min_rating"); err != nil {
		return f, err
	}
	f.Category = c.Query("category")
	f.ProductType = c.Query("product_type")

	// toppings may be repeated (?toppings=a&toppings=b) or comma-separated
	for _, raw := range c.Context().QueryArgs().PeekMulti("toppings") {
		for _, name := range strings.Split(string(raw), ",") {
			if name = strings.TrimSpace(name); name != "" {
				f.Toppings = append(f.Toppings, name)
			}
		}
	}

	return f, nil
}

func queryFloat(c *fiber.Ctx, key string) (*float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter", key)
	}
	return &v, nil
}

// apply narrows the product query to rows satisfying every present filter.
// The price range only applies when both bounds are present.
func (f productFilter) apply(q *gorm.DB) *gorm.DB {
	if f.MinPrice != nil && f.MaxPrice != nil {
		q = q.Where("products.price >= ? AND products.price <= ?", *f.MinPrice, *f.MaxPrice)
	}
	if f.Category != "" {
		q = q.Where("LOWER(products.category) LIKE ?", "%"+strings.ToLower(f.Category)+"%")
	}
	if f.ProductType != "" {
		q = q.Where("LOWER(products.type) = ?", strings.ToLower(f.ProductType))
	}
	if len(f.Toppings) > 0 {
		q = q.Joins("JOIN product_toppings ON product_toppings.product_id = products.id").
			Joins("JOIN toppings ON toppings.id = product_toppings.topping_id").
			Where("toppings.name IN ?", f.Toppings)
	}
	if f.MinRating != nil {
		// Products with no ratings drop out of the inner join, so an
		// unrated product never satisfies a min_rating filter.
		q = q.Joins("JOIN ratings ON ratings.product_id = products.id").
			Group("products.id").
			Having("AVG(ratings.value) >= ?", *f.MinRating)
	}
	return q
}

type pageParams struct {
	Page     int
	PageSize int
}

func parsePageParams(c *fiber.Ctx) pageParams {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	size := c.QueryInt("page_size", defaultPageSize)
	if size < 1 {
		size = defaultPageSize
	}
	if size > maxPageSize {
		size = maxPageSize
	}
	return pageParams{Page: page, PageSize: size}
}

// paginate slices the ordered result set to the requested page. Pages past
// the end come back empty rather than erroring.
func paginate(products []models.Product, p pageParams) []models.Product {
	start := (p.Page - 1) * p.PageSize
	if start >= len(products) {
		return []models.Product{}
	}
	end := start + p.PageSize
	if end > len(products) {
		end = len(products)
	}
	return products[start:end]
}

// pageMarkers returns the adjacent page numbers, nil when there is no
// page in that direction.
func pageMarkers(total int, p pageParams) (next, previous *int) {
	if p.Page*p.PageSize < total {
		n := p.Page + 1
		next = &n
	}
	if p.Page > 1 {
		prev := p.Page - 1
		previous = &prev
	}
	return next, previous
}
