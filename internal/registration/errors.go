package registration

import "errors"

// Registration errors
var (
	ErrAuthentication    = errors.New("invalid username or password")
	ErrDuplicateCourse   = errors.New("course with this ID already exists")
	ErrCourseNotFound    = errors.New("course not found")
	ErrStudentNotFound   = errors.New("student not found")
	ErrCourseFull        = errors.New("course is full")
	ErrAlreadyRegistered = errors.New("student already registered for this course")
	ErrNotRegistered     = errors.New("student is not registered for this course")
	ErrInvalidConfig     = errors.New("invalid seed configuration")
)

var errorKinds = []struct {
	err  error
	kind string
}{
	{ErrAuthentication, "authentication"},
	{ErrDuplicateCourse, "duplicate_course"},
	{ErrCourseNotFound, "course_not_found"},
	{ErrStudentNotFound, "student_not_found"},
	{ErrCourseFull, "course_full"},
	{ErrAlreadyRegistered, "already_registered"},
	{ErrNotRegistered, "not_registered"},
	{ErrInvalidConfig, "invalid_config"},
}

// Kind returns a stable short name for a registration error, suitable for log
// fields and span attributes. It returns "" for nil and "internal" for errors
// that did not originate in this package.
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return "internal"
}
