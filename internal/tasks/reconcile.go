package tasks

import (
	"strings"

	"agrofarm-backend/internal/models"

	"gorm.io/gorm"
)

// MasterTasks is the fixed list of assignable task names. Assignments only
// ever reference these; free-form task names do not exist.
var MasterTasks = []string{
	"Stall Cleaning (Remove waste)",
	"Feed Distribution",
	"Water Refill",
	"Milk Collection",
	"Health Check",
	"Vaccination Support",
	"Grooming / Washing",
	"Barn Sanitization",
}

// Normalize produces the comparison form of a task name. Stored names keep
// the master-list casing; normalization is for matching only.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// canonical maps a normalized name back to its master-list spelling.
func canonical(norm string) (string, bool) {
	for _, t := range MasterTasks {
		if Normalize(t) == norm {
			return t, true
		}
	}
	return "", false
}

// TaskOption drives the edit-form checkboxes: checked when this employee
// holds the task, disabled when a different employee does.
type TaskOption struct {
	Name       string `json:"name"`
	IsChecked  bool   `json:"isChecked"`
	IsDisabled bool   `json:"isDisabled"`
}

// diffSelection computes the minimal change set that moves an employee's
// assignments for one animal to the selected target state. All three inputs
// are raw names; comparison is normalized.
//
//   - toAdd: selected, not already held by this employee, and not held by any
//     other employee (a selection owned by someone else is silently dropped;
//     the existing owner keeps the task). Returned in master-list spelling.
//   - toRemove: held by this employee but no longer selected. Returned
//     normalized, for matching against existing rows.
func diffSelection(selected, mine, others []string) (toAdd []string, toRemove []string) {
	selectedSet := normalizeSet(selected)
	mineSet := normalizeSet(mine)
	othersSet := normalizeSet(others)

	for _, t := range MasterTasks {
		norm := Normalize(t)
		switch {
		case selectedSet[norm] && !mineSet[norm] && !othersSet[norm]:
			toAdd = append(toAdd, t)
		case mineSet[norm] && !selectedSet[norm]:
			toRemove = append(toRemove, norm)
		}
	}
	return toAdd, toRemove
}

func normalizeSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[Normalize(n)] = true
	}
	return set
}

// existingEmployeeCodes scopes assignment queries to employees that still
// exist, so orphaned rows never block availability.
func existingEmployeeCodes(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Employee{}).Select("employee_code")
}

// AvailableTasks returns the master tasks not yet held by any existing
// employee for the animal.
func AvailableTasks(db *gorm.DB, animalID uint) ([]string, error) {
	var assigned []string
	err := db.Model(&models.EmployeeTask{}).
		Where("animal_id = ?", animalID).
		Where("employee_code IN (?)", existingEmployeeCodes(db)).
		Pluck("task_name", &assigned).Error
	if err != nil {
		return nil, err
	}

	assignedSet := normalizeSet(assigned)
	available := make([]string, 0, len(MasterTasks))
	for _, t := range MasterTasks {
		if !assignedSet[Normalize(t)] {
			available = append(available, t)
		}
	}
	return available, nil
}

// TasksForAnimal builds the checked/disabled state of every master task for
// the employee edit view.
func TasksForAnimal(db *gorm.DB, animalID uint, employeeCode string) ([]TaskOption, error) {
	var rows []models.EmployeeTask
	err := db.
		Where("animal_id = ?", animalID).
		Where("employee_code IN (?)", existingEmployeeCodes(db)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	assigned := make(map[string]bool, len(rows))
	mine := make(map[string]bool, len(rows))
	for _, r := range rows {
		norm := Normalize(r.TaskName)
		assigned[norm] = true
		if r.EmployeeCode == employeeCode {
			mine[norm] = true
		}
	}

	options := make([]TaskOption, 0, len(MasterTasks))
	for _, t := range MasterTasks {
		norm := Normalize(t)
		options = append(options, TaskOption{
			Name:       t,
			IsChecked:  mine[norm],
			IsDisabled: assigned[norm] && !mine[norm],
		})
	}
	return options, nil
}

// Reconcile moves the employee's assignments for the animal to the selected
// set: deselected rows are deleted, newly selected master tasks inserted,
// unless another existing employee already holds them, in which case the
// selection is dropped without error. Run inside the caller's transaction so
// the employee row and its assignments commit together.
func Reconcile(tx *gorm.DB, employeeCode string, animalID uint, selected []string) error {
	var mineRows []models.EmployeeTask
	if err := tx.
		Where("employee_code = ? AND animal_id = ?", employeeCode, animalID).
		Find(&mineRows).Error; err != nil {
		return err
	}

	var others []string
	err := tx.Model(&models.EmployeeTask{}).
		Where("animal_id = ? AND employee_code <> ?", animalID, employeeCode).
		Where("employee_code IN (?)", existingEmployeeCodes(tx)).
		Pluck("task_name", &others).Error
	if err != nil {
		return err
	}

	mine := make([]string, 0, len(mineRows))
	for _, r := range mineRows {
		mine = append(mine, r.TaskName)
	}

	toAdd, toRemove := diffSelection(selected, mine, others)

	if len(toRemove) > 0 {
		removeSet := make(map[string]bool, len(toRemove))
		for _, norm := range toRemove {
			removeSet[norm] = true
		}
		for _, r := range mineRows {
			if removeSet[Normalize(r.TaskName)] {
				if err := tx.Delete(&models.EmployeeTask{}, r.ID).Error; err != nil {
					return err
				}
			}
		}
	}

	for _, name := range toAdd {
		row := models.EmployeeTask{
			EmployeeCode: employeeCode,
			AnimalID:     animalID,
			TaskName:     name,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}

	return nil
}
