package registration

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewCourse(t *testing.T) {
	c := NewCourse("cs101", "Intro to CS", "Basics", 3, 30)

	require.Equal(t, "CS101", c.ID())
	require.Equal(t, "Intro to CS", c.Title())
	require.Equal(t, "Basics", c.Description())
	require.Equal(t, 3, c.Credits())
	require.Equal(t, 30, c.Capacity())
	require.Zero(t, c.RegisteredCount())
	require.Empty(t, c.RegisteredStudents())
}

func TestCourse_IsFull(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		enrolled int
		want     bool
	}{
		{"zero capacity always full", 0, 0, true},
		{"negative capacity always full", -1, 0, true},
		{"empty", 2, 0, false},
		{"one seat left", 2, 1, false},
		{"at capacity", 2, 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCourse("CS101", "Intro", "", 3, tt.capacity)
			for i := 0; i < tt.enrolled; i++ {
				c.registeredStudents = append(c.registeredStudents, string(rune('a'+i)))
			}
			require.Equal(t, tt.want, c.IsFull())
		})
	}
}

func TestCourse_AddStudent(t *testing.T) {
	c := NewCourse("CS101", "Intro", "", 3, 2)

	require.NoError(t, c.AddStudent("student1"))
	require.ErrorIs(t, c.AddStudent("student1"), ErrAlreadyRegistered)
	require.NoError(t, c.AddStudent("student2"))
	require.ErrorIs(t, c.AddStudent("student3"), ErrCourseFull)

	require.Equal(t, []string{"student1", "student2"}, c.RegisteredStudents())
}

func TestCourse_AddStudent_FullCheckedFirst(t *testing.T) {
	c := NewCourse("CS101", "Intro", "", 3, 1)
	require.NoError(t, c.AddStudent("student1"))

	require.ErrorIs(t, c.AddStudent("student1"), ErrCourseFull)
}

func TestCourse_RemoveStudent(t *testing.T) {
	c := NewCourse("CS101", "Intro", "", 3, 3)
	require.NoError(t, c.AddStudent("student1"))
	require.NoError(t, c.AddStudent("student2"))
	require.NoError(t, c.AddStudent("student3"))

	c.RemoveStudent("student2")
	c.RemoveStudent("student2")
	c.RemoveStudent("nobody")

	require.Equal(t, []string{"student1", "student3"}, c.RegisteredStudents())
	require.False(t, c.HasStudent("student2"))
}

func TestCourse_UpdateDetails(t *testing.T) {
	title := "Advanced CS"
	credits := 4

	c := NewCourse("CS101", "Intro", "Basics", 3, 30)
	c.UpdateDetails(CourseUpdate{Title: &title, Credits: &credits})

	require.Equal(t, "Advanced CS", c.Title())
	require.Equal(t, "Basics", c.Description())
	require.Equal(t, 4, c.Credits())
	require.Equal(t, 30, c.Capacity())
}

func TestCourse_UpdateDetails_ShrinkKeepsRoster(t *testing.T) {
	c := NewCourse("CS101", "Intro", "", 3, 3)
	require.NoError(t, c.AddStudent("student1"))
	require.NoError(t, c.AddStudent("student2"))

	capacity := 1
	c.UpdateDetails(CourseUpdate{Capacity: &capacity})

	require.Equal(t, 2, c.RegisteredCount())
	require.True(t, c.IsFull())
	require.ErrorIs(t, c.AddStudent("student3"), ErrCourseFull)
}

func TestCourse_String(t *testing.T) {
	c := NewCourse("cs101", "Intro", "", 3, 30)
	require.NoError(t, c.AddStudent("student1"))

	require.Equal(t, "ID: CS101, Title: Intro, Credits: 3, Capacity: 30, Registered: 1", c.String())
}

func TestCourse_CloneIsIndependent(t *testing.T) {
	c := NewCourse("CS101", "Intro", "", 3, 3)
	require.NoError(t, c.AddStudent("student1"))

	cp := c.clone()
	require.NoError(t, cp.AddStudent("student2"))
	cp.RemoveStudent("student1")

	require.Equal(t, []string{"student1"}, c.RegisteredStudents())
}
