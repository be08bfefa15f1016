package shop

import (
	"agrofarm-backend/internal/catalog"
	"agrofarm-backend/internal/ledger"

	"github.com/gofiber/fiber/v2"
)

type ProductView struct {
	Key       string  `json:"key"`
	Category  string  `json:"category"`
	Name      string  `json:"name"`
	UnitLabel string  `json:"unit_label"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
}

// GET /api/shop/products?category=Milk
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		category := c.Query("category")

		products := make([]ProductView, 0, len(catalog.Products))
		for _, p := range catalog.Products {
			if category != "" && p.Category != category {
				continue
			}
			products = append(products, ProductView{
				Key:       p.Key,
				Category:  p.Category,
				Name:      p.Name,
				UnitLabel: p.UnitLabel,
				Price:     p.Price,
				Stock:     ledger.Stock.Get(p.Key),
			})
		}
		return c.JSON(products)
	}
}
