package expense

import (
	"time"

	"max.ks1230/expense-tracker/internal/utils"
)

const (
	Food           = "Food"
	Drugs          = "Drugs"
	Airtime        = "Airtime"
	Transportation = "Transportation"
	Entertainment  = "Entertainment"
	Utilities      = "Utilities"
	Shopping       = "Shopping"
	Others         = "Others"
)

var Categories = []string{Food, Drugs, Airtime, Transportation, Entertainment, Utilities, Shopping, Others}

func IsCategory(name string) bool {
	return utils.Contains(Categories, name)
}

// Record is a single expense. Only Amount may change after creation.
type Record struct {
	ID       int64
	Amount   float64
	Category string
	Date     time.Time
}
