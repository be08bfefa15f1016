package catalog

// MedicineCost: fixed cost per administration, used by the monthly expense
// report when a health log marks medicine as given.
var MedicineCost = map[string]float64{
	"Antibiotic":        300,
	"Dewormer":          150,
	"Vitamin":           100,
	"Pain Reliever":     200,
	"Anti-inflammatory": 250,
}

// Medicines lists the selectable medicine names for the health tracker.
var Medicines = []string{
	"Antibiotic",
	"Dewormer",
	"Vitamin",
	"Pain Reliever",
	"Anti-inflammatory",
}

// Flat monthly upkeep per animal, charged in the expense report.
const (
	AnimalFoodPerMonth        = 2000.0
	AnimalMaintenancePerMonth = 500.0
)
