// Package testutil builds pre-populated registration systems for tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/registrar/internal/registration"
)

// enrollmentData is one student/course pair to register.
type enrollmentData struct {
	studentID string
	courseID  string
}

// Builder accumulates courses and enrollments and applies them in order.
type Builder struct {
	t           *testing.T
	cfg         registration.Config
	opts        []registration.Option
	courses     []courseData
	enrollments []enrollmentData
}

// NewBuilder creates a builder seeded with the default accounts.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t, cfg: registration.DefaultConfig()}
}

// WithAccounts replaces the seed accounts.
func (b *Builder) WithAccounts(cfg registration.Config) *Builder {
	b.cfg = cfg
	return b
}

// WithStudent adds a seed student account.
func (b *Builder) WithStudent(id, password string) *Builder {
	b.cfg.SeedStudents = append(b.cfg.SeedStudents, registration.SeedAccount{ID: id, Password: password})
	return b
}

// WithOptions passes system options through to NewSystem.
func (b *Builder) WithOptions(opts ...registration.Option) *Builder {
	b.opts = append(b.opts, opts...)
	return b
}

// WithCourse adds a course with optional configuration.
func (b *Builder) WithCourse(id string, opts ...CourseOption) *Builder {
	course := defaultCourse(id)
	for _, opt := range opts {
		opt(&course)
	}
	b.courses = append(b.courses, course)
	return b
}

// WithEnrollment registers a student for a course once all courses exist.
func (b *Builder) WithEnrollment(studentID, courseID string) *Builder {
	b.enrollments = append(b.enrollments, enrollmentData{studentID, courseID})
	return b
}

// Build creates the system and applies accumulated data: courses first, then
// enrollments. Any failure fails the test.
func (b *Builder) Build() *registration.System {
	b.t.Helper()

	sys, err := registration.NewSystem(b.cfg, b.opts...)
	require.NoError(b.t, err, "creating system")

	for _, c := range b.courses {
		_, err := sys.AddCourse(c.id, c.title, c.description, c.credits, c.capacity)
		require.NoError(b.t, err, "adding course %s", c.id)
	}
	for _, e := range b.enrollments {
		err := sys.RegisterStudentForCourse(e.studentID, e.courseID)
		require.NoError(b.t, err, "registering %s for %s", e.studentID, e.courseID)
	}
	return sys
}
