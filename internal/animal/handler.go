package animal

import (
	"fmt"
	"strings"
	"time"

	"agrofarm-backend/internal/audit"
	"agrofarm-backend/internal/database"
	"agrofarm-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SaveAnimalRequest struct {
	TagNumber     string  `json:"tag_number"`
	Breed         string  `json:"breed"`
	DateOfBirth   string  `json:"date_of_birth"` // "2022-04-15"
	Weight        float64 `json:"weight"`
	PurchasePrice float64 `json:"purchase_price"`
}

type AnimalResponse struct {
	ID            uint    `json:"id"`
	TagNumber     string  `json:"tag_number"`
	Breed         string  `json:"breed"`
	DateOfBirth   string  `json:"date_of_birth"`
	Age           string  `json:"age"`
	Weight        float64 `json:"weight"`
	PurchasePrice float64 `json:"purchase_price"`
}

func toResponse(a models.Animal) AnimalResponse {
	return AnimalResponse{
		ID:            a.ID,
		TagNumber:     a.TagNumber,
		Breed:         a.Breed,
		DateOfBirth:   a.DateOfBirth.Format("2006-01-02"),
		Age:           fmt.Sprintf("%d Years", a.AgeYears(time.Now())),
		Weight:        a.Weight,
		PurchasePrice: a.PurchasePrice,
	}
}

func (r *SaveAnimalRequest) parse() (models.Animal, error) {
	r.TagNumber = strings.TrimSpace(r.TagNumber)
	r.Breed = strings.TrimSpace(r.Breed)

	if r.TagNumber == "" || r.Breed == "" {
		return models.Animal{}, fiber.NewError(fiber.StatusBadRequest, "tag_number and breed are required")
	}
	if r.Weight < 0 || r.Weight > 9999 {
		return models.Animal{}, fiber.NewError(fiber.StatusBadRequest, "Weight must be between 0 and 9999")
	}

	dob, err := time.Parse("2006-01-02", r.DateOfBirth)
	if err != nil {
		return models.Animal{}, fiber.NewError(fiber.StatusBadRequest, "date_of_birth must be 'YYYY-MM-DD'")
	}

	return models.Animal{
		TagNumber:     r.TagNumber,
		Breed:         r.Breed,
		DateOfBirth:   dob,
		Weight:        r.Weight,
		PurchasePrice: r.PurchasePrice,
	}, nil
}

// GET /api/animals?breed=Jersey&search=A-10
func ListAnimalsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := database.DB.Order("tag_number")
		if breed := c.Query("breed"); breed != "" {
			q = q.Where("breed = ?", breed)
		}
		if search := strings.TrimSpace(c.Query("search")); search != "" {
			q = q.Where("tag_number ILIKE ?", "%"+search+"%")
		}

		var animals []models.Animal
		if err := q.Find(&animals).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list animals")
		}

		resp := make([]AnimalResponse, 0, len(animals))
		for _, a := range animals {
			resp = append(resp, toResponse(a))
		}
		return c.JSON(resp)
	}
}

// GET /api/animals/:id
func GetAnimalHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var animal models.Animal
		if err := database.DB.First(&animal, c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Animal not found")
		}
		return c.JSON(toResponse(animal))
	}
}

// POST /api/animals
func CreateAnimalHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SaveAnimalRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		animal, err := body.parse()
		if err != nil {
			return err
		}

		var count int64
		database.DB.Model(&models.Animal{}).Where("tag_number = ?", animal.TagNumber).Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Tag number already exists")
		}

		if err := database.DB.Create(&animal).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create animal")
		}

		audit.Write(c, "animal", animal.TagNumber, models.AuditActionCreate,
			fmt.Sprintf("Animal added: %s (%s)", animal.TagNumber, animal.Breed), nil, animal)

		return c.Status(fiber.StatusCreated).JSON(toResponse(animal))
	}
}

// PUT /api/animals/:id
func UpdateAnimalHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var animal models.Animal
		if err := database.DB.First(&animal, c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Animal not found")
		}
		before := animal

		var body SaveAnimalRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		parsed, err := body.parse()
		if err != nil {
			return err
		}

		// tag stays unique across the herd
		var count int64
		database.DB.Model(&models.Animal{}).
			Where("tag_number = ? AND id <> ?", parsed.TagNumber, animal.ID).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Tag number already exists")
		}

		animal.TagNumber = parsed.TagNumber
		animal.Breed = parsed.Breed
		animal.DateOfBirth = parsed.DateOfBirth
		animal.Weight = parsed.Weight
		animal.PurchasePrice = parsed.PurchasePrice

		if err := database.DB.Save(&animal).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update animal")
		}

		audit.Write(c, "animal", animal.TagNumber, models.AuditActionUpdate,
			fmt.Sprintf("Animal updated: %s", animal.TagNumber), before, animal)

		return c.JSON(toResponse(animal))
	}
}

// DELETE /api/animals/:id
// Task assignments for the animal go with it.
func DeleteAnimalHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var animal models.Animal
		if err := database.DB.First(&animal, c.Params("id")).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Animal not found")
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("animal_id = ?", animal.ID).Delete(&models.EmployeeTask{}).Error; err != nil {
				return err
			}
			return tx.Delete(&animal).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete animal")
		}

		audit.Write(c, "animal", animal.TagNumber, models.AuditActionDelete,
			fmt.Sprintf("Animal deleted: %s", animal.TagNumber), animal, nil)

		return c.JSON(fiber.Map{"message": "Animal deleted successfully"})
	}
}
