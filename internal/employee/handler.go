package employee

import (
	"fmt"
	"strings"

	"agrofarm-backend/internal/audit"
	"agrofarm-backend/internal/database"
	"agrofarm-backend/internal/models"
	"agrofarm-backend/internal/tasks"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SaveEmployeeRequest struct {
	EmployeeCode   string  `json:"employee_code"`
	EmployeeName   string  `json:"employee_name"`
	EmployeeNumber string  `json:"employee_number"`
	Salary         float64 `json:"salary"`
	Address        string  `json:"address"`

	// optional task assignment for one animal
	SelectedAnimalID  *uint    `json:"selected_animal_id"`
	SelectedTaskNames []string `json:"selected_task_names"`
}

func (r *SaveEmployeeRequest) validate() error {
	r.EmployeeCode = strings.TrimSpace(r.EmployeeCode)
	r.EmployeeName = strings.TrimSpace(r.EmployeeName)

	if r.EmployeeCode == "" || r.EmployeeName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "employee_code and employee_name are required")
	}
	if r.Salary < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Salary cannot be negative")
	}
	return nil
}

// GET /api/employees
func ListEmployeesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var employees []models.Employee
		err := database.DB.
			Preload("Tasks").
			Preload("Tasks.Animal").
			Order("employee_code DESC").
			Find(&employees).Error
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list employees")
		}
		return c.JSON(employees)
	}
}

// GET /api/employees/:code
func GetEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var employee models.Employee
		err := database.DB.
			Preload("Tasks").
			Preload("Tasks.Animal").
			First(&employee, "employee_code = ?", c.Params("code")).Error
		if err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Employee not found")
		}
		return c.JSON(employee)
	}
}

// POST /api/employees
// Creates the employee and, when an animal and tasks were selected, runs the
// assignment reconciliation in the same transaction.
func CreateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body SaveEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if err := body.validate(); err != nil {
			return err
		}

		var count int64
		database.DB.Model(&models.Employee{}).
			Where("employee_code = ?", body.EmployeeCode).
			Count(&count)
		if count > 0 {
			return fiber.NewError(fiber.StatusConflict, "Employee ID already exists. Please change it.")
		}

		if body.SelectedAnimalID != nil {
			var animal models.Animal
			if err := database.DB.First(&animal, *body.SelectedAnimalID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Selected animal not found")
			}
		}

		employee := models.Employee{
			EmployeeCode:   body.EmployeeCode,
			EmployeeName:   body.EmployeeName,
			EmployeeNumber: body.EmployeeNumber,
			Salary:         body.Salary,
			Address:        body.Address,
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&employee).Error; err != nil {
				return err
			}
			if body.SelectedAnimalID != nil && len(body.SelectedTaskNames) > 0 {
				return tasks.Reconcile(tx, employee.EmployeeCode, *body.SelectedAnimalID, body.SelectedTaskNames)
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create employee")
		}

		audit.Write(c, "employee", employee.EmployeeCode, models.AuditActionCreate,
			fmt.Sprintf("Employee added: %s", employee.EmployeeName), nil, employee)

		return c.Status(fiber.StatusCreated).JSON(employee)
	}
}

// PUT /api/employees/:code
// Updates the employee fields and reconciles the task selection for the
// chosen animal. Tasks held by other employees stay with their owner.
func UpdateEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := c.Params("code")

		var body SaveEmployeeRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		body.EmployeeCode = code
		if err := body.validate(); err != nil {
			return err
		}

		var employee models.Employee
		if err := database.DB.First(&employee, "employee_code = ?", code).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Employee not found")
		}
		before := employee

		if body.SelectedAnimalID != nil {
			var animal models.Animal
			if err := database.DB.First(&animal, *body.SelectedAnimalID).Error; err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Selected animal not found")
			}
		}

		employee.EmployeeName = body.EmployeeName
		employee.EmployeeNumber = body.EmployeeNumber
		employee.Salary = body.Salary
		employee.Address = body.Address

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Save(&employee).Error; err != nil {
				return err
			}
			if body.SelectedAnimalID != nil {
				return tasks.Reconcile(tx, code, *body.SelectedAnimalID, body.SelectedTaskNames)
			}
			return nil
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update employee")
		}

		audit.Write(c, "employee", code, models.AuditActionUpdate,
			fmt.Sprintf("Employee updated: %s", employee.EmployeeName), before, employee)

		return c.JSON(employee)
	}
}

// DELETE /api/employees/:code
// Removes the employee and all of their task assignments in one transaction,
// so freed tasks are immediately assignable again.
func DeleteEmployeeHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		code := c.Params("code")

		var employee models.Employee
		if err := database.DB.First(&employee, "employee_code = ?", code).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Employee not found")
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("employee_code = ?", code).Delete(&models.EmployeeTask{}).Error; err != nil {
				return err
			}
			return tx.Delete(&employee).Error
		})
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete employee")
		}

		audit.Write(c, "employee", code, models.AuditActionDelete,
			fmt.Sprintf("Employee deleted: %s", employee.EmployeeName), employee, nil)

		return c.JSON(fiber.Map{"message": "Employee deleted successfully"})
	}
}
