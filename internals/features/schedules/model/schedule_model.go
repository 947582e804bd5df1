// file: internals/features/schedules/model/schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ScheduleModel merepresentasikan tabel schedules (hasil generate dari optimizer).
// schedule_meta simpan konfigurasi + potongan respons mentah optimizer (jsonb).
type ScheduleModel struct {
	ScheduleID       uuid.UUID      `json:"schedule_id" gorm:"type:uuid;primaryKey;column:schedule_id;default:gen_random_uuid()"`
	ScheduleSemester string         `json:"schedule_semester" gorm:"type:varchar(40);not null;column:schedule_semester"`
	ScheduleCampusID *uuid.UUID     `json:"schedule_campus_id,omitempty" gorm:"type:uuid;column:schedule_campus_id;index"`
	ScheduleMeta     datatypes.JSON `json:"schedule_meta" gorm:"type:jsonb;not null;default:'{}';column:schedule_meta"`

	ScheduleCreatedAt time.Time      `json:"schedule_created_at" gorm:"column:schedule_created_at;autoCreateTime"`
	ScheduleUpdatedAt time.Time      `json:"schedule_updated_at" gorm:"column:schedule_updated_at;autoUpdateTime"`
	ScheduleDeletedAt gorm.DeletedAt `json:"schedule_deleted_at,omitempty" gorm:"column:schedule_deleted_at;index"`
}

func (ScheduleModel) TableName() string { return "schedules" }
