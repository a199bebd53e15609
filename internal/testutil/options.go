package testutil

// courseData holds the fields of a course to be added.
type courseData struct {
	id          string
	title       string
	description string
	credits     int
	capacity    int
}

// defaultCourse returns a courseData with sensible defaults.
func defaultCourse(id string) courseData {
	return courseData{
		id:          id,
		title:       id, // Default title is the ID
		description: "Description of " + id,
		credits:     3,
		capacity:    30,
	}
}

// CourseOption configures a course added by the Builder.
type CourseOption func(*courseData)

// Title sets the course title.
func Title(t string) CourseOption {
	return func(c *courseData) { c.title = t }
}

// Description sets the course description.
func Description(d string) CourseOption {
	return func(c *courseData) { c.description = d }
}

// Credits sets the course credit value.
func Credits(n int) CourseOption {
	return func(c *courseData) { c.credits = n }
}

// Capacity sets the course capacity.
func Capacity(n int) CourseOption {
	return func(c *courseData) { c.capacity = n }
}
