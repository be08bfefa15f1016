package tasks

import (
	"agrofarm-backend/internal/database"
	"agrofarm-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type EmployeeTaskSummary struct {
	EmployeeCode string `json:"employee_code"`
	EmployeeName string `json:"employee_name"`
	TaskCount    int64  `json:"task_count"`
}

// GET /api/tasks/available?animal_id=1
// Master tasks not yet assigned for the animal (used by the create form).
func AvailableTasksHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		animalID := c.QueryInt("animal_id")
		if animalID <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "animal_id is required")
		}

		var animal models.Animal
		if err := database.DB.First(&animal, animalID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Animal not found")
		}

		available, err := AvailableTasks(database.DB, uint(animalID))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load tasks")
		}
		return c.JSON(available)
	}
}

// GET /api/tasks/for-animal?animal_id=1&employee_code=EMP-7
// Checked/disabled state per master task (used by the edit form).
func TasksForAnimalHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		animalID := c.QueryInt("animal_id")
		employeeCode := c.Query("employee_code")
		if animalID <= 0 || employeeCode == "" {
			return fiber.NewError(fiber.StatusBadRequest, "animal_id and employee_code are required")
		}

		var animal models.Animal
		if err := database.DB.First(&animal, animalID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Animal not found")
		}

		options, err := TasksForAnimal(database.DB, uint(animalID), employeeCode)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load tasks")
		}
		return c.JSON(options)
	}
}

// GET /api/admin/task-management
// Per-employee assignment counts, counting only rows owned by existing
// employees.
func TaskManagementListHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var employees []models.Employee
		if err := database.DB.Order("employee_name").Find(&employees).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list employees")
		}

		list := make([]EmployeeTaskSummary, 0, len(employees))
		for _, e := range employees {
			var count int64
			database.DB.Model(&models.EmployeeTask{}).
				Where("employee_code = ?", e.EmployeeCode).
				Count(&count)

			list = append(list, EmployeeTaskSummary{
				EmployeeCode: e.EmployeeCode,
				EmployeeName: e.EmployeeName,
				TaskCount:    count,
			})
		}
		return c.JSON(list)
	}
}

// POST /api/admin/task-management/:code/mark-done
// Clears every task of the employee; the freed tasks become available again.
func MarkDoneHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := c.Params("code")

		var employee models.Employee
		if err := database.DB.First(&employee, "employee_code = ?", code).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Employee not found")
		}

		res := database.DB.Where("employee_code = ?", code).Delete(&models.EmployeeTask{})
		if res.Error != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not clear tasks")
		}

		msg := "All tasks cleared for the employee."
		if res.RowsAffected == 0 {
			msg = "Employee already has no assigned tasks."
		}
		return c.JSON(fiber.Map{"message": msg, "cleared": res.RowsAffected})
	}
}
