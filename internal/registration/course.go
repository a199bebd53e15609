package registration

import (
	"fmt"
	"slices"
	"strings"
)

// Course is a catalog entry. Its ID is stored upper case and its roster keeps
// student IDs in enrollment order.
type Course struct {
	id                 string
	title              string
	description        string
	credits            int
	capacity           int
	registeredStudents []string
}

// CourseUpdate carries the optional fields of an update. Nil fields are left
// unchanged.
type CourseUpdate struct {
	Title       *string
	Description *string
	Credits     *int
	Capacity    *int
}

// NewCourse creates a course with an empty roster. The ID is upper-cased;
// credits and capacity are stored as given.
func NewCourse(id, title, description string, credits, capacity int) *Course {
	return &Course{
		id:                 strings.ToUpper(id),
		title:              title,
		description:        description,
		credits:            credits,
		capacity:           capacity,
		registeredStudents: make([]string, 0),
	}
}

// ID returns the canonical upper-case course ID.
func (c *Course) ID() string {
	return c.id
}

// Title returns the course title.
func (c *Course) Title() string {
	return c.title
}

// Description returns the course description.
func (c *Course) Description() string {
	return c.description
}

// Credits returns the credit value of the course.
func (c *Course) Credits() int {
	return c.credits
}

// Capacity returns the maximum number of simultaneous enrollments.
func (c *Course) Capacity() int {
	return c.capacity
}

// RegisteredCount returns the current roster size.
func (c *Course) RegisteredCount() int {
	return len(c.registeredStudents)
}

// RegisteredStudents returns a copy of the roster in enrollment order.
func (c *Course) RegisteredStudents() []string {
	return slices.Clone(c.registeredStudents)
}

// HasStudent reports whether studentID is on the roster.
func (c *Course) HasStudent(studentID string) bool {
	return slices.Contains(c.registeredStudents, studentID)
}

// IsFull reports whether the roster has reached capacity. A capacity of zero
// or less means the course is always full.
func (c *Course) IsFull() bool {
	return len(c.registeredStudents) >= c.capacity
}

// AddStudent appends studentID to the roster.
// Returns ErrCourseFull when the course is full and ErrAlreadyRegistered when
// the student is already on the roster.
func (c *Course) AddStudent(studentID string) error {
	if c.IsFull() {
		return fmt.Errorf("%w: %s", ErrCourseFull, c.id)
	}
	if c.HasStudent(studentID) {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, c.id)
	}
	c.registeredStudents = append(c.registeredStudents, studentID)
	return nil
}

// RemoveStudent removes studentID from the roster. Removing an absent
// student is a no-op.
func (c *Course) RemoveStudent(studentID string) {
	if i := slices.Index(c.registeredStudents, studentID); i >= 0 {
		c.registeredStudents = slices.Delete(c.registeredStudents, i, i+1)
	}
}

// UpdateDetails applies every non-nil field of u. Lowering the capacity below
// the current roster size does not evict anyone; the course simply stays full
// until enough students drop.
func (c *Course) UpdateDetails(u CourseUpdate) {
	if u.Title != nil {
		c.title = *u.Title
	}
	if u.Description != nil {
		c.description = *u.Description
	}
	if u.Credits != nil {
		c.credits = *u.Credits
	}
	if u.Capacity != nil {
		c.capacity = *u.Capacity
	}
}

// String formats the course the way the catalog listing shows it.
func (c *Course) String() string {
	return fmt.Sprintf("ID: %s, Title: %s, Credits: %d, Capacity: %d, Registered: %d",
		c.id, c.title, c.credits, c.capacity, len(c.registeredStudents))
}

func (c *Course) clone() *Course {
	cp := *c
	cp.registeredStudents = c.RegisteredStudents()
	return &cp
}
