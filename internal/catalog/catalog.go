package catalog

// Product: one entry of the static shop catalog. Prices and units are fixed;
// only stock quantities change at runtime (internal/ledger).
type Product struct {
	Key       string  `json:"key"`
	Category  string  `json:"category"`
	Name      string  `json:"name"`
	UnitLabel string  `json:"unit_label"`
	Price     float64 `json:"price"`
}

var Products = []Product{
	// Milk
	{"milk_raw_milk", "Milk", "Raw Milk", "KG", 360},
	{"milk_pasteurized", "Milk", "Pasteurized Milk", "Litre", 215},
	{"milk_uht", "Milk", "UHT Milk", "200 gm", 419},
	{"milk_almond", "Milk", "Almond Milk", "250 gm", 479},
	{"milk_zero_fat", "Milk", "Zero Fat Milk", "KG", 1559},
	{"milk_mango", "Milk", "Mango Milk", "KG", 1919},

	// Yogurt
	{"yogurt_organic", "Yogurt", "Organic Yogurt", "KG", 360},
	{"yogurt_sweet_curd", "Yogurt", "Sweet Curd", "Litre", 215},
	{"yogurt_greek", "Yogurt", "Greek Yogurt", "200 gm", 419},
	{"yogurt_mango", "Yogurt", "Mango Yogurt", "250 gm", 479},
	{"yogurt_baked", "Yogurt", "Baked Yogurt", "KG", 1559},
	{"yogurt_no_sugar_lassi", "Yogurt", "No Sugar Lassi", "KG", 1919},

	// Cheese
	{"cheese_paneer", "Cheese", "Paneer", "KG", 360},
	{"cheese_mozarella", "Cheese", "Mozarella", "Litre", 215},
	{"cheese_cheddar", "Cheese", "Cheddar Cheese", "200 gm", 419},
	{"cheese_cottage", "Cheese", "Cottage Cheese", "250 gm", 479},
	{"cheese_parmigiano", "Cheese", "Parmigiano", "KG", 1559},
	{"cheese_roquefort", "Cheese", "Roquefort Cheese", "KG", 1919},

	// Meat
	{"meat_raw_boneless", "Meat", "Raw Meat (Boneless)", "KG", 360},
	{"meat_beef_steak", "Meat", "Beef Steak", "Litre", 215},
	{"meat_beef_sausage", "Meat", "Beef Sausage", "200 gm", 419},

	// Creamy Products
	{"cream_heavy", "Creamy Products", "Heavy Cream", "KG", 360},
	{"cream_whipped", "Creamy Products", "Whipped Cream", "Litre", 215},
	{"cream_cheese", "Creamy Products", "Cream Cheese", "200 gm", 419},

	// Others
	{"other_milk_powder", "Others", "Milk Powder", "KG", 360},
	{"other_casein", "Others", "Casein", "Litre", 215},
	{"other_string_cheese", "Others", "String Cheese", "200 gm", 419},
}

// Find returns the catalog product for a key, or false when unknown.
func Find(key string) (Product, bool) {
	for _, p := range Products {
		if p.Key == key {
			return p, true
		}
	}
	return Product{}, false
}

// Keys returns every product key, in catalog order. Used to seed the stock
// ledger on startup.
func Keys() []string {
	keys := make([]string, 0, len(Products))
	for _, p := range Products {
		keys = append(keys, p.Key)
	}
	return keys
}
