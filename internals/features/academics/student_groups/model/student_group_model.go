// file: internals/features/academics/student_groups/model/student_group_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StudentGroupModel merepresentasikan tabel student_groups (section/division).
// Natural key upsert: (student_group_name, student_group_department_id, year).
type StudentGroupModel struct {
	StudentGroupID           uuid.UUID `json:"student_group_id" gorm:"type:uuid;primaryKey;column:student_group_id;default:gen_random_uuid()"`
	StudentGroupName         string    `json:"student_group_name" gorm:"type:text;not null;column:student_group_name"`
	StudentGroupYear         int       `json:"student_group_year" gorm:"not null;default:1;column:student_group_year"`
	StudentGroupStudentCount int       `json:"student_group_student_count" gorm:"not null;default:0;column:student_group_student_count"`
	StudentGroupDepartmentID uuid.UUID `json:"student_group_department_id" gorm:"type:uuid;not null;column:student_group_department_id;index"`

	StudentGroupCreatedAt time.Time      `json:"student_group_created_at" gorm:"column:student_group_created_at;autoCreateTime"`
	StudentGroupUpdatedAt time.Time      `json:"student_group_updated_at" gorm:"column:student_group_updated_at;autoUpdateTime"`
	StudentGroupDeletedAt gorm.DeletedAt `json:"student_group_deleted_at,omitempty" gorm:"column:student_group_deleted_at;index"`
}

func (StudentGroupModel) TableName() string { return "student_groups" }
