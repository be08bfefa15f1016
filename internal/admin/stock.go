package admin

import (
	"fmt"
	"sort"

	"agrofarm-backend/internal/audit"
	"agrofarm-backend/internal/catalog"
	"agrofarm-backend/internal/ledger"
	"agrofarm-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type StockRow struct {
	Key       string  `json:"key"`
	Category  string  `json:"category"`
	Name      string  `json:"name"`
	UnitLabel string  `json:"unit_label"`
	Price     float64 `json:"price"`
	Stock     int     `json:"stock"`
}

type SetStockRequest struct {
	Key   string `json:"key"`
	Stock int    `json:"stock"`
}

// GET /api/admin/stock
func ListStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		stocks, err := ledger.Stock.All()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load stock")
		}

		rows := make([]StockRow, 0, len(catalog.Products))
		for _, p := range catalog.Products {
			rows = append(rows, StockRow{
				Key:       p.Key,
				Category:  p.Category,
				Name:      p.Name,
				UnitLabel: p.UnitLabel,
				Price:     p.Price,
				Stock:     stocks[p.Key],
			})
		}
		sort.Slice(rows, func(i, j int) bool {
			if rows[i].Category != rows[j].Category {
				return rows[i].Category < rows[j].Category
			}
			return rows[i].Name < rows[j].Name
		})
		return c.JSON(rows)
	}
}

// PUT /api/admin/stock
// Sets the absolute quantity; negative values clamp to zero.
func SetStockHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SetStockRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		product, ok := catalog.Find(body.Key)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		before := ledger.Stock.Get(product.Key)
		if err := ledger.Stock.Set(product.Key, body.Stock); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update stock")
		}
		after := ledger.Stock.Get(product.Key)

		audit.Write(c, "stock", product.Key, models.AuditActionUpdate,
			fmt.Sprintf("Stock for %s changed %d -> %d", product.Name, before, after),
			fiber.Map{"stock": before}, fiber.Map{"stock": after})

		return c.JSON(fiber.Map{"key": product.Key, "stock": after})
	}
}
