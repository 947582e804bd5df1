package constants

// Role user di sistem
const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

// Hari kuliah (canon, dipakai importer + reconciler)
var Days = []string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

// Tipe course
const (
	CourseTheory    = "theory"
	CoursePractical = "practical"
)

// Tipe ruangan
const (
	RoomLectureHall = "lecture_hall"
	RoomLab         = "lab"
)
