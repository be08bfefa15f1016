package lifecycle

import (
	"time"

	"agrofarm-backend/internal/database"
	"agrofarm-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type Row struct {
	AnimalID  uint    `json:"animal_id"`
	TagNumber string  `json:"tag_number"`
	Breed     string  `json:"breed"`
	Weight    float64 `json:"weight"`
	Status    string  `json:"status"`
	Notes     string  `json:"notes"`
	UpdatedOn string  `json:"updated_on"`
}

type PageResponse struct {
	StatusOptions []string `json:"status_options"`
	Rows          []Row    `json:"rows"`
}

type SaveRequest struct {
	Rows []Row `json:"rows"`
}

// GET /api/admin/lifecycle
// One row per animal; animals without a stored entry default to "Active".
func ListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var animals []models.Animal
		if err := database.DB.Order("tag_number").Find(&animals).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list animals")
		}

		entries, err := Statuses.All()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load statuses")
		}
		byAnimal := make(map[uint]StatusEntry, len(entries))
		for _, e := range entries {
			byAnimal[e.AnimalID] = e
		}

		resp := PageResponse{
			StatusOptions: StatusOptions,
			Rows:          make([]Row, 0, len(animals)),
		}
		for _, a := range animals {
			row := Row{
				AnimalID:  a.ID,
				TagNumber: a.TagNumber,
				Breed:     a.Breed,
				Weight:    a.Weight,
				Status:    "Active",
			}
			if e, ok := byAnimal[a.ID]; ok {
				row.Status = e.Status
				row.Notes = e.Notes
				row.UpdatedOn = e.UpdatedOn
			}
			resp.Rows = append(resp.Rows, row)
		}
		return c.JSON(resp)
	}
}

// POST /api/admin/lifecycle
func SaveHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SaveRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		today := time.Now().Format("2006-01-02")
		entries := make([]StatusEntry, 0, len(body.Rows))
		for _, r := range body.Rows {
			if r.Status != "" && !validStatus(r.Status) {
				return fiber.NewError(fiber.StatusBadRequest, "Unknown status: "+r.Status)
			}
			entries = append(entries, StatusEntry{
				AnimalID:  r.AnimalID,
				TagNumber: r.TagNumber,
				Status:    r.Status,
				Notes:     r.Notes,
				UpdatedOn: today,
			})
		}

		if err := Statuses.UpsertMany(entries); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save statuses")
		}
		return c.JSON(fiber.Map{"message": "Lifecycle statuses saved successfully"})
	}
}
