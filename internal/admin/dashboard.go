package admin

import (
	"agrofarm-backend/internal/database"
	"agrofarm-backend/internal/ledger"
	"agrofarm-backend/internal/models"
	"agrofarm-backend/internal/tasks"

	"github.com/gofiber/fiber/v2"
)

type EmployeeTaskCount struct {
	EmployeeName string `json:"employee_name"`
	TaskCount    int    `json:"task_count"`
}

type DashboardResponse struct {
	TotalEmployees int `json:"total_employees"`
	TotalAnimals   int `json:"total_animals"`
	TotalUsers     int `json:"total_users"`

	// Assigned tasks count as in progress; done = possible - in progress,
	// because completed assignments are deleted.
	TotalTasksPossible int `json:"total_tasks_possible"`
	TasksInProgress    int `json:"tasks_in_progress"`
	TasksDone          int `json:"tasks_done"`

	TasksByEmployee []EmployeeTaskCount `json:"tasks_by_employee"`

	TotalIncome float64 `json:"total_income"`
}

// GET /api/admin/dashboard
func DashboardHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var totalEmployees, totalAnimals, totalUsers int64
		database.DB.Model(&models.Employee{}).Count(&totalEmployees)
		database.DB.Model(&models.Animal{}).Count(&totalAnimals)
		database.DB.Model(&models.User{}).Count(&totalUsers)

		// assignments whose employee was deleted do not count
		existing := database.DB.Model(&models.Employee{}).Select("employee_code")

		var tasksAssigned int64
		database.DB.Model(&models.EmployeeTask{}).
			Where("employee_code IN (?)", existing).
			Count(&tasksAssigned)

		type countRow struct {
			EmployeeCode string
			Count        int
		}
		var perEmployee []countRow
		database.DB.Model(&models.EmployeeTask{}).
			Select("employee_code, COUNT(*) AS count").
			Where("employee_code IN (?)", existing).
			Group("employee_code").
			Order("count DESC").
			Scan(&perEmployee)

		var employees []models.Employee
		database.DB.Find(&employees)
		names := make(map[string]string, len(employees))
		for _, e := range employees {
			names[e.EmployeeCode] = e.EmployeeName
		}

		byEmployee := make([]EmployeeTaskCount, 0, len(perEmployee))
		for _, row := range perEmployee {
			name := row.EmployeeCode
			if n, ok := names[row.EmployeeCode]; ok {
				name = n
			}
			byEmployee = append(byEmployee, EmployeeTaskCount{EmployeeName: name, TaskCount: row.Count})
		}

		possible := int(totalAnimals) * len(tasks.MasterTasks)
		inProgress := int(tasksAssigned)
		done := possible - inProgress
		if done < 0 {
			done = 0
		}

		totalIncome, err := ledger.Sales.TotalIncome()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load sales")
		}

		return c.JSON(DashboardResponse{
			TotalEmployees:     int(totalEmployees),
			TotalAnimals:       int(totalAnimals),
			TotalUsers:         int(totalUsers),
			TotalTasksPossible: possible,
			TasksInProgress:    inProgress,
			TasksDone:          done,
			TasksByEmployee:    byEmployee,
			TotalIncome:        totalIncome,
		})
	}
}
