package models

// Valid enrollment roles. Role stays a plain string on the record; the
// validation layer rejects anything outside this set before it reaches a store.
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
)

type Enrollment struct {
	ID       int    `json:"id"`
	UserID   int    `json:"userId"`
	CourseID int    `json:"courseId"`
	Role     string `json:"role"`
}

// EnrollmentFilter selects enrollments by the fields that are set. A nil field
// is not part of the filter at all, which is different from filtering on the
// zero value.
type EnrollmentFilter struct {
	UserID   *int
	CourseID *int
	Role     *string
}
