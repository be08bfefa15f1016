package shop

import (
	"errors"

	"agrofarm-backend/internal/auth"
	"agrofarm-backend/internal/catalog"
	"agrofarm-backend/internal/database"
	"agrofarm-backend/internal/ledger"
	"agrofarm-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CartItemView struct {
	ProductKey string  `json:"product_key"`
	Name       string  `json:"name"`
	UnitLabel  string  `json:"unit_label"`
	Price      float64 `json:"price"`
	Quantity   int     `json:"quantity"`
	LineTotal  float64 `json:"line_total"`
	Stock      int     `json:"stock"`
}

type CartView struct {
	Items []CartItemView `json:"items"`
	Total float64        `json:"total"`
}

type CartRequest struct {
	ProductKey string `json:"product_key"`
}

func cartView(userID uint) (CartView, error) {
	var lines []models.CartLine
	if err := database.DB.Where("user_id = ?", userID).Order("created_at").Find(&lines).Error; err != nil {
		return CartView{}, err
	}

	view := CartView{Items: make([]CartItemView, 0, len(lines))}
	for _, line := range lines {
		product, ok := catalog.Find(line.ProductKey)
		if !ok {
			continue
		}
		item := CartItemView{
			ProductKey: product.Key,
			Name:       product.Name,
			UnitLabel:  product.UnitLabel,
			Price:      product.Price,
			Quantity:   line.Quantity,
			LineTotal:  product.Price * float64(line.Quantity),
			Stock:      ledger.Stock.Get(product.Key),
		}
		view.Items = append(view.Items, item)
		view.Total += item.LineTotal
	}
	return view, nil
}

// GET /api/cart
func GetCartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		view, err := cartView(userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load cart")
		}
		return c.JSON(view)
	}
}

// POST /api/cart/add
// Quantity is capped at the current stock; adding beyond it is rejected.
func AddToCartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var body CartRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		product, ok := catalog.Find(body.ProductKey)
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		stock := ledger.Stock.Get(product.Key)
		if stock <= 0 {
			return fiber.NewError(fiber.StatusConflict, "Product is out of stock")
		}

		var line models.CartLine
		err = database.DB.Where("user_id = ? AND product_key = ?", userID, product.Key).First(&line).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			line = models.CartLine{UserID: userID, ProductKey: product.Key, Quantity: 1}
			if err := database.DB.Create(&line).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not update cart")
			}
		case err != nil:
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update cart")
		default:
			if line.Quantity >= stock {
				return fiber.NewError(fiber.StatusConflict, "Not enough stock for this product")
			}
			line.Quantity++
			if err := database.DB.Save(&line).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not update cart")
			}
		}

		view, err := cartView(userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load cart")
		}
		return c.JSON(view)
	}
}

// POST /api/cart/increase
// Bumps an existing line by one, capped at the current stock.
func IncreaseCartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var body CartRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		var line models.CartLine
		if err := database.DB.Where("user_id = ? AND product_key = ?", userID, body.ProductKey).
			First(&line).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product is not in the cart")
		}

		if line.Quantity >= ledger.Stock.Get(line.ProductKey) {
			return fiber.NewError(fiber.StatusConflict, "Not enough stock for this product")
		}
		line.Quantity++
		if err := database.DB.Save(&line).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update cart")
		}

		view, err := cartView(userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load cart")
		}
		return c.JSON(view)
	}
}

// POST /api/cart/decrease
// Dropping to zero removes the line.
func DecreaseCartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var body CartRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		var line models.CartLine
		if err := database.DB.Where("user_id = ? AND product_key = ?", userID, body.ProductKey).
			First(&line).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product is not in the cart")
		}

		if line.Quantity <= 1 {
			if err := database.DB.Delete(&line).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not update cart")
			}
		} else {
			line.Quantity--
			if err := database.DB.Save(&line).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not update cart")
			}
		}

		view, err := cartView(userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load cart")
		}
		return c.JSON(view)
	}
}

// POST /api/cart/remove
func RemoveFromCartHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := auth.CurrentUserID(c)
		if err != nil {
			return err
		}

		var body CartRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if err := database.DB.Where("user_id = ? AND product_key = ?", userID, body.ProductKey).
			Delete(&models.CartLine{}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update cart")
		}

		view, err := cartView(userID)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load cart")
		}
		return c.JSON(view)
	}
}
