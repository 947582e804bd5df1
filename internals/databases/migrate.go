// file: internals/databases/migrate.go
package database

import (
	"log"

	classroomModel "kampusku_backend/internals/features/academics/classrooms/model"
	courseModel "kampusku_backend/internals/features/academics/courses/model"
	instructorModel "kampusku_backend/internals/features/academics/instructors/model"
	groupModel "kampusku_backend/internals/features/academics/student_groups/model"
	campusModel "kampusku_backend/internals/features/campus/campuses/model"
	collegeModel "kampusku_backend/internals/features/campus/colleges/model"
	departmentModel "kampusku_backend/internals/features/campus/departments/model"
	scheduleModel "kampusku_backend/internals/features/schedules/model"
	userModel "kampusku_backend/internals/features/users/auth/model"
)

// AutoMigrateAll jalankan AutoMigrate untuk semua tabel, urut dari parent ke child.
func AutoMigrateAll() {
	log.Println("🗄️ Menjalankan AutoMigrate...")

	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&campusModel.CampusModel{},
		&collegeModel.CollegeModel{},
		&departmentModel.DepartmentModel{},
		&classroomModel.ClassroomModel{},
		&instructorModel.InstructorModel{},
		&groupModel.StudentGroupModel{},
		&courseModel.CourseModel{},
		&scheduleModel.ScheduleModel{},
		&scheduleModel.SessionModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}

	log.Println("✅ AutoMigrate selesai")
}
