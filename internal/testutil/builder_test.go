package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/registrar/internal/registration"
)

func TestBuilder_WithCourse(t *testing.T) {
	sys := NewBuilder(t).
		WithCourse("cs101").
		Build()

	course, err := sys.GetCourse("CS101")
	require.NoError(t, err)
	require.Equal(t, "cs101", course.Title()) // default title is the ID as given
	require.Equal(t, 3, course.Credits())
	require.Equal(t, 30, course.Capacity())
	require.Zero(t, course.RegisteredCount())
}

func TestBuilder_WithCourse_AllOptions(t *testing.T) {
	sys := NewBuilder(t).
		WithCourse("BIO1", Title("Biology"), Description("Cells"), Credits(5), Capacity(1)).
		Build()

	course, err := sys.GetCourse("BIO1")
	require.NoError(t, err)
	require.Equal(t, "Biology", course.Title())
	require.Equal(t, "Cells", course.Description())
	require.Equal(t, 5, course.Credits())
	require.Equal(t, 1, course.Capacity())
}

func TestBuilder_WithStudentAndEnrollment(t *testing.T) {
	sys := NewBuilder(t).
		WithStudent("carol", "pw").
		WithCourse("CS101").
		WithEnrollment("carol", "CS101").
		Build()

	_, err := sys.AuthenticateUser("carol", "pw")
	require.NoError(t, err)

	students, err := sys.ListStudentsForCourse("CS101")
	require.NoError(t, err)
	require.Equal(t, []string{"carol"}, students)
}

func TestBuilder_WithAccounts(t *testing.T) {
	sys := NewBuilder(t).
		WithAccounts(registration.Config{AdminID: "root", AdminPassword: "toor"}).
		Build()

	user, err := sys.AuthenticateUser("root", "toor")
	require.NoError(t, err)
	require.Equal(t, registration.RoleAdmin, user.Role())

	_, err = sys.AuthenticateUser("student1", "pass123")
	require.ErrorIs(t, err, registration.ErrAuthentication)
}

func TestBuilder_WithStandardCatalog(t *testing.T) {
	sys := NewBuilder(t).WithStandardCatalog().Build()

	courses := sys.ViewAvailableCourses()
	require.Len(t, courses, 3)
	require.Equal(t, "CS101", courses[0].ID())
	require.True(t, courses[0].IsFull())
	require.False(t, courses[1].IsFull())

	report, err := sys.GenerateReportForStudent("student1")
	require.NoError(t, err)
	require.Equal(t, "CS101: Intro to Programming (3 credits)\nMA201: Calculus II (4 credits)", report)
}
