// Package expense builds the monthly farm expense report: fixed per-animal
// food and maintenance costs, medicine costs from the month's health logs,
// and employee salaries.
package expense

import (
	"fmt"
	"time"

	"agrofarm-backend/internal/catalog"
	"agrofarm-backend/internal/database"
	"agrofarm-backend/internal/healthlog"
	"agrofarm-backend/internal/models"
	"agrofarm-backend/internal/report"

	"github.com/gofiber/fiber/v2"
)

type AnimalExpense struct {
	AnimalID           uint    `json:"animal_id"`
	TagNumber          string  `json:"tag_number"`
	FoodExpense        float64 `json:"food_expense"`
	MaintenanceExpense float64 `json:"maintenance_expense"`
	MedicalExpense     float64 `json:"medical_expense"`
}

func (a AnimalExpense) Total() float64 {
	return a.FoodExpense + a.MaintenanceExpense + a.MedicalExpense
}

type EmployeeSalary struct {
	EmployeeName string  `json:"employee_name"`
	Salary       float64 `json:"salary"`
}

type ReportResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	AnimalExpenses   []AnimalExpense  `json:"animal_expenses"`
	EmployeeSalaries []EmployeeSalary `json:"employee_salaries"`

	TotalAnimalExpense float64 `json:"total_animal_expense"`
	TotalSalaryExpense float64 `json:"total_salary_expense"`
	GrandTotal         float64 `json:"grand_total"`
}

func buildReport(year, month int) (ReportResponse, error) {
	resp := ReportResponse{
		Year:             year,
		Month:            month,
		AnimalExpenses:   []AnimalExpense{},
		EmployeeSalaries: []EmployeeSalary{},
	}

	var animals []models.Animal
	if err := database.DB.Order("tag_number").Find(&animals).Error; err != nil {
		return resp, err
	}
	var employees []models.Employee
	if err := database.DB.Order("employee_name").Find(&employees).Error; err != nil {
		return resp, err
	}

	monthLogs, err := healthlog.Logs.ByMonth(year, month)
	if err != nil {
		return resp, err
	}

	medicalByAnimal := map[uint]float64{}
	for _, log := range monthLogs {
		if !log.MedicineGiven {
			continue
		}
		if cost, ok := catalog.MedicineCost[log.MedicineName]; ok {
			medicalByAnimal[log.AnimalID] += cost
		}
	}

	for _, a := range animals {
		exp := AnimalExpense{
			AnimalID:           a.ID,
			TagNumber:          a.TagNumber,
			FoodExpense:        catalog.AnimalFoodPerMonth,
			MaintenanceExpense: catalog.AnimalMaintenancePerMonth,
			MedicalExpense:     medicalByAnimal[a.ID],
		}
		resp.AnimalExpenses = append(resp.AnimalExpenses, exp)
		resp.TotalAnimalExpense += exp.Total()
	}

	for _, e := range employees {
		resp.EmployeeSalaries = append(resp.EmployeeSalaries, EmployeeSalary{
			EmployeeName: e.EmployeeName,
			Salary:       e.Salary,
		})
		resp.TotalSalaryExpense += e.Salary
	}

	resp.GrandTotal = resp.TotalAnimalExpense + resp.TotalSalaryExpense
	return resp, nil
}

func monthParams(c *fiber.Ctx) (int, int, error) {
	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return 0, 0, fiber.NewError(fiber.StatusBadRequest, "month must be between 1 and 12")
	}
	return year, month, nil
}

// GET /api/admin/expenses?year=2025&month=12
func ReportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, month, err := monthParams(c)
		if err != nil {
			return err
		}

		resp, err := buildReport(year, month)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build expense report")
		}
		return c.JSON(resp)
	}
}

// GET /api/admin/expenses/monthly-pdf?year=2025&month=12
func MonthlyPDFHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		year, month, err := monthParams(c)
		if err != nil {
			return err
		}

		r, err := buildReport(year, month)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build expense report")
		}

		pdf := report.NewDocument(fmt.Sprintf("Monthly Expense Report %04d-%02d", year, month))

		animalRows := make([][]string, 0, len(r.AnimalExpenses))
		for _, a := range r.AnimalExpenses {
			animalRows = append(animalRows, []string{
				a.TagNumber,
				report.Money(a.FoodExpense),
				report.Money(a.MaintenanceExpense),
				report.Money(a.MedicalExpense),
				report.Money(a.Total()),
			})
		}
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Animal Expenses", "", 1, "L", false, 0, "")
		report.Table(pdf,
			[]float64{50, 35, 35, 35, 35},
			[]string{"Tag", "Food", "Maintenance", "Medical", "Total"},
			animalRows)
		pdf.Ln(6)

		salaryRows := make([][]string, 0, len(r.EmployeeSalaries))
		for _, s := range r.EmployeeSalaries {
			salaryRows = append(salaryRows, []string{s.EmployeeName, report.Money(s.Salary)})
		}
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, "Employee Salaries", "", 1, "L", false, 0, "")
		report.Table(pdf,
			[]float64{120, 70},
			[]string{"Employee", "Salary"},
			salaryRows)
		pdf.Ln(6)

		report.KeyValue(pdf, "Animal Total:", report.Money(r.TotalAnimalExpense))
		report.KeyValue(pdf, "Salary Total:", report.Money(r.TotalSalaryExpense))
		report.KeyValue(pdf, "Grand Total:", report.Money(r.GrandTotal))
		report.Footer(pdf, time.Now())

		data, err := report.Bytes(pdf)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not generate report")
		}

		c.Set("Content-Type", "application/pdf")
		c.Set("Content-Disposition",
			fmt.Sprintf(`attachment; filename="ExpenseReport_%04d_%02d.pdf"`, year, month))
		return c.Send(data)
	}
}
