// file: internals/features/imports/service/aliases.go
package service

// Tabel alias header per field semantik. Urutan = prioritas.
// Header dunia nyata tidak konsisten: "Name" / "Student Group" / "Num_ID"
// bisa berarti kolom yang sama. Alias dicocokkan lewat normKey, jadi
// "Num_ID" == "num id" == "NumID".

var (
	// StudentGroup (division/section)
	aliasGroupName   = []string{"name", "student group", "group", "section", "division", "num_id", "numid"}
	aliasGroupYear   = []string{"year", "level", "grade", "study year"}
	aliasGroupCount  = []string{"student count", "studentnum", "student num", "students", "num students", "count", "size"}
	aliasGroupMajor  = []string{"major", "department", "dept", "specialization"}

	// Marker khusus division — keberadaannya memaksa klasifikasi StudentGroup
	aliasMarkNumID      = []string{"num_id", "numid"}
	aliasMarkMajor      = []string{"major"}
	aliasMarkStudentNum = []string{"studentnum", "student num", "student count"}

	// Classroom (physical resource)
	aliasRoomName     = []string{"room", "room name", "hall", "hall name", "lab", "lab name", "classroom", "name"}
	aliasRoomCapacity = []string{"capacity", "seats", "seat count", "max students"}
	aliasRoomType     = []string{"type", "room type", "kind"}
	aliasRoomCampus   = []string{"campus", "campus name", "branch"}

	// Instructor
	aliasInstrName    = []string{"instructor name", "instructor", "teacher", "teacher name", "lecturer", "staff name", "name"}
	aliasInstrLocalID = []string{"instructor id", "teacher id", "id"}
	aliasInstrDept    = []string{"department", "dept", "major", "faculty department"}
	aliasInstrEmail   = []string{"email", "e-mail", "mail"}
	aliasInstrDay     = []string{"day", "weekday", "day of week"}
	aliasInstrStart   = []string{"start", "start time", "from", "time from"}
	aliasInstrEnd     = []string{"end", "end time", "to", "time to"}

	// Course
	aliasCourseCode    = []string{"code", "course code", "course id", "subject code"}
	aliasCourseName    = []string{"course name", "course", "subject", "subject name", "title", "name"}
	aliasCourseType    = []string{"type", "course type", "lecture type"}
	aliasCourseDays    = []string{"days per week", "days", "day count", "lectures per week"}
	aliasCourseHours   = []string{"hours per day", "hours", "hour count", "duration"}
	aliasCourseYear    = []string{"year", "level", "grade"}
	aliasCourseDept    = []string{"department", "dept", "major"}
	aliasCourseCollege = []string{"college", "faculty", "school"}
	aliasCourseInstr   = []string{"instructor", "instructor name", "instructor id", "teacher", "lecturer"}
)
