package shop

import (
	"errors"

	"agrofarm-backend/internal/auth"
	"agrofarm-backend/internal/catalog"
	"agrofarm-backend/internal/database"
	"agrofarm-backend/internal/ledger"
	"agrofarm-backend/internal/logger"
	"agrofarm-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type CheckoutResponse struct {
	OrderID     string  `json:"order_id"`
	TotalAmount float64 `json:"total_amount"`
	Message     string  `json:"message"`
}

// POST /api/cart/checkout
//
// Stock is decremented all-or-nothing before the sale is written: if any line
// exceeds the available stock, nothing changes and the shopper is told which
// product ran short.
func CheckoutHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}
		username := auth.CurrentUsername(c)

		var lines []models.CartLine
		if err := database.DB.Where("user_id = ?", userID).Order("created_at").Find(&lines).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load cart")
		}
		if len(lines) == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Cart is empty")
		}

		requests := make(map[string]int, len(lines))
		items := make([]ledger.SaleItem, 0, len(lines))
		for _, line := range lines {
			product, ok := catalog.Find(line.ProductKey)
			if !ok {
				return fiber.NewError(fiber.StatusBadRequest, "Cart contains an unknown product")
			}
			requests[product.Key] += line.Quantity
			items = append(items, ledger.SaleItem{
				ProductKey: product.Key,
				Name:       product.Name,
				UnitLabel:  product.UnitLabel,
				Price:      product.Price,
				Quantity:   line.Quantity,
			})
		}

		if err := ledger.Stock.DecreaseBulk(requests); err != nil {
			var insufficient *ledger.InsufficientStockError
			if errors.As(err, &insufficient) {
				product, _ := catalog.Find(insufficient.Key)
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error":       "Insufficient stock",
					"product_key": insufficient.Key,
					"product":     product.Name,
					"available":   insufficient.Available,
				})
			}
			if errors.Is(err, ledger.ErrInvalidRequest) {
				return fiber.NewError(fiber.StatusBadRequest, "Invalid cart contents")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update stock")
		}

		sale, err := ledger.Sales.Record(username, items)
		if err != nil {
			// stock is already gone; putting it back would race other
			// checkouts, so log loudly instead
			logger.L.Errorw("sale record failed after stock decrement",
				"user", username, "error", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Could not record sale")
		}

		if err := database.DB.Where("user_id = ?", userID).Delete(&models.CartLine{}).Error; err != nil {
			logger.L.Warnw("cart cleanup failed after checkout",
				"user", username, "order_id", sale.OrderID, "error", err)
		}

		logger.L.Infow("checkout completed",
			"user", username, "order_id", sale.OrderID, "total", sale.TotalAmount)

		return c.JSON(CheckoutResponse{
			OrderID:     sale.OrderID,
			TotalAmount: sale.TotalAmount,
			Message:     "Order placed successfully",
		})
	}
}
