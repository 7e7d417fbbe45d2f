package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Prescription struct {
	gorm.Model
	Reference     string         `json:"reference" gorm:"uniqueIndex;size:64"`
	Name          string         `json:"name"`
	Email         string         `json:"email"`
	Notes         string         `json:"notes"`
	MedicineNames datatypes.JSON `json:"medicineNames"`
}
