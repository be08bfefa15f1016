package healthlog

import (
	"sort"
	"time"

	"agrofarm-backend/internal/catalog"
	"agrofarm-backend/internal/database"
	"agrofarm-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type TrackerRow struct {
	AnimalID      uint    `json:"animal_id"`
	TagNumber     string  `json:"tag_number"`
	Breed         string  `json:"breed"`
	WeightKg      float64 `json:"weight_kg"`
	MilkLiters    float64 `json:"milk_liters"`
	HealthChecked bool    `json:"health_checked"`
	MedicineGiven bool    `json:"medicine_given"`
	MedicineName  string  `json:"medicine_name"`
	Dose          string  `json:"dose"`
	Notes         string  `json:"notes"`
}

type TrackerPage struct {
	Date      string       `json:"date"`
	Medicines []string     `json:"medicines"`
	Rows      []TrackerRow `json:"rows"`
}

type SaveTrackerRequest struct {
	Date string       `json:"date"`
	Rows []TrackerRow `json:"rows"`
}

// GET /api/admin/health-tracker?date=2025-12-16
// One row per animal; rows without a stored entry come back zeroed so the
// whole herd is editable in one grid.
func TrackerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := c.Query("date")
		if date == "" {
			date = time.Now().Format("2006-01-02")
		} else if _, err := time.Parse("2006-01-02", date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date must be 'YYYY-MM-DD'")
		}

		var animals []models.Animal
		if err := database.DB.Order("tag_number").Find(&animals).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list animals")
		}

		logs, err := Logs.ByDate(date)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load health logs")
		}
		byAnimal := make(map[uint]Entry, len(logs))
		for _, e := range logs {
			byAnimal[e.AnimalID] = e
		}

		page := TrackerPage{
			Date:      date,
			Medicines: catalog.Medicines,
			Rows:      make([]TrackerRow, 0, len(animals)),
		}
		for _, a := range animals {
			row := TrackerRow{
				AnimalID:     a.ID,
				TagNumber:    a.TagNumber,
				Breed:        a.Breed,
				WeightKg:     a.Weight,
				MedicineName: "None",
			}
			if e, ok := byAnimal[a.ID]; ok {
				row.MilkLiters = e.MilkLiters
				row.HealthChecked = e.HealthChecked
				row.MedicineGiven = e.MedicineGiven
				row.MedicineName = e.MedicineName
				row.Dose = e.Dose
				row.Notes = e.Notes
			}
			page.Rows = append(page.Rows, row)
		}
		return c.JSON(page)
	}
}

// POST /api/admin/health-tracker
func SaveTrackerHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SaveTrackerRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if _, err := time.Parse("2006-01-02", body.Date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date must be 'YYYY-MM-DD'")
		}

		entries := make([]Entry, 0, len(body.Rows))
		for _, r := range body.Rows {
			if r.MilkLiters < 0 {
				return fiber.NewError(fiber.StatusBadRequest, "milk_liters cannot be negative")
			}
			entries = append(entries, Entry{
				Date:          body.Date,
				AnimalID:      r.AnimalID,
				TagNumber:     r.TagNumber,
				WeightKg:      r.WeightKg,
				MilkLiters:    r.MilkLiters,
				HealthChecked: r.HealthChecked,
				MedicineGiven: r.MedicineGiven,
				MedicineName:  r.MedicineName,
				Dose:          r.Dose,
				Notes:         r.Notes,
			})
		}

		if err := Logs.UpsertMany(entries); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not save health logs")
		}
		return c.JSON(fiber.Map{"message": "Health tracker saved successfully"})
	}
}

type MilkByAnimal struct {
	TagNumber string  `json:"tag_number"`
	TotalMilk float64 `json:"total_milk"`
}

type DashboardResponse struct {
	Year              int            `json:"year"`
	Month             int            `json:"month"`
	TotalMilkMonth    float64        `json:"total_milk_month"`
	AnimalsWithMilk   int            `json:"animals_with_milk"`
	MedicineLogsMonth int            `json:"medicine_logs_month"`
	MilkByAnimal      []MilkByAnimal `json:"milk_by_animal"`
	MedicineEntries   []Entry        `json:"medicine_entries"`
}

// GET /api/admin/health-dashboard?year=2025&month=12
func DashboardHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now()
		year := c.QueryInt("year", now.Year())
		month := c.QueryInt("month", int(now.Month()))
		if month < 1 || month > 12 {
			return fiber.NewError(fiber.StatusBadRequest, "month must be between 1 and 12")
		}

		monthLogs, err := Logs.ByMonth(year, month)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load health logs")
		}

		resp := DashboardResponse{
			Year:            year,
			Month:           month,
			MilkByAnimal:    []MilkByAnimal{},
			MedicineEntries: []Entry{},
		}

		milkers := map[uint]bool{}
		milkByTag := map[string]float64{}
		for _, e := range monthLogs {
			resp.TotalMilkMonth += e.MilkLiters
			if e.MilkLiters > 0 {
				milkers[e.AnimalID] = true
			}
			milkByTag[e.TagNumber] += e.MilkLiters

			if e.MedicineGiven && e.MedicineName != "" && e.MedicineName != "None" {
				resp.MedicineEntries = append(resp.MedicineEntries, e)
			}
		}
		resp.AnimalsWithMilk = len(milkers)
		resp.MedicineLogsMonth = len(resp.MedicineEntries)

		for tag, total := range milkByTag {
			resp.MilkByAnimal = append(resp.MilkByAnimal, MilkByAnimal{TagNumber: tag, TotalMilk: total})
		}
		sort.Slice(resp.MilkByAnimal, func(i, j int) bool {
			if resp.MilkByAnimal[i].TotalMilk != resp.MilkByAnimal[j].TotalMilk {
				return resp.MilkByAnimal[i].TotalMilk > resp.MilkByAnimal[j].TotalMilk
			}
			return resp.MilkByAnimal[i].TagNumber < resp.MilkByAnimal[j].TagNumber
		})
		sort.Slice(resp.MedicineEntries, func(i, j int) bool {
			return resp.MedicineEntries[i].Date > resp.MedicineEntries[j].Date
		})

		return c.JSON(resp)
	}
}
