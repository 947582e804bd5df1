// file: internals/features/campus/departments/model/department_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DepartmentModel merepresentasikan tabel departments.
// Invariant: department SELALU punya college (kolom NOT NULL).
type DepartmentModel struct {
	DepartmentID        uuid.UUID `json:"department_id" gorm:"type:uuid;primaryKey;column:department_id;default:gen_random_uuid()"`
	DepartmentName      string    `json:"department_name" gorm:"type:text;not null;column:department_name"`
	DepartmentCode      string    `json:"department_code" gorm:"type:varchar(20);not null;column:department_code"`
	DepartmentCollegeID uuid.UUID `json:"department_college_id" gorm:"type:uuid;not null;column:department_college_id;index"`

	DepartmentCreatedAt time.Time      `json:"department_created_at" gorm:"column:department_created_at;autoCreateTime"`
	DepartmentUpdatedAt time.Time      `json:"department_updated_at" gorm:"column:department_updated_at;autoUpdateTime"`
	DepartmentDeletedAt gorm.DeletedAt `json:"department_deleted_at,omitempty" gorm:"column:department_deleted_at;index"`
}

func (DepartmentModel) TableName() string { return "departments" }
