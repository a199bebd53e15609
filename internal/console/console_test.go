package console

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/zjrosen/registrar/internal/registration"
	"github.com/zjrosen/registrar/internal/testutil"
	"github.com/zjrosen/registrar/internal/tracing"
)

func newTestSystem(t *testing.T) *registration.System {
	t.Helper()
	return testutil.NewBuilder(t).Build()
}

func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func runConsole(t *testing.T, sys *registration.System, input string, opts Options) string {
	t.Helper()
	var out bytes.Buffer
	c := New(sys, strings.NewReader(input), &out, opts)
	c.newSessionID = func() string { return "session-1" }
	require.NoError(t, c.Run(context.Background()))
	return out.String()
}

func TestConsole_AdminSession(t *testing.T) {
	sys := newTestSystem(t)

	out := runConsole(t, sys, script(
		"admin", "password",
		"1", "cs101", "Intro to CS", "Basics", "abc", "0", "3", "30",
		"1", "CS101", "Dup", "Dup", "3", "3",
		"4", "intro",
		"5", "cs101",
		"6", "student1",
		"9",
		"7",
		"n",
	), Options{})

	require.Contains(t, out, "Welcome, admin!")
	require.Contains(t, out, "--- Admin Menu ---")
	require.Contains(t, out, "Invalid input. Please enter a valid number.")
	require.Contains(t, out, "Value must be at least 1.")
	require.Contains(t, out, "Course CS101 added successfully.")
	require.Contains(t, out, "Error: course with this ID already exists: CS101")
	require.Contains(t, out, "ID: CS101, Title: Intro to CS, Credits: 3, Capacity: 30, Registered: 0")
	require.Contains(t, out, "No students registered for this course.")
	require.Contains(t, out, "Student is not registered for any courses.")
	require.Contains(t, out, "Invalid choice, please try again.")
	require.Contains(t, out, "Logging out...")
	require.True(t, strings.HasSuffix(out, "Exiting system. Goodbye!\n"))

	course, err := sys.GetCourse("CS101")
	require.NoError(t, err)
	require.Equal(t, "Intro to CS", course.Title())
}

func TestConsole_AdminUpdateAndRemove(t *testing.T) {
	sys := testutil.NewBuilder(t).
		WithCourse("CS101", testutil.Title("Intro"), testutil.Description("Basics"), testutil.Capacity(2)).
		WithEnrollment("student1", "CS101").
		WithEnrollment("student2", "CS101").
		Build()

	out := runConsole(t, sys, script(
		"admin", "password",
		"3", "cs101", "", "New description", "x", "1",
		"3", "cs999",
		"7",
		"n",
	), Options{})

	require.Contains(t, out, "Leave blank to keep current value.")
	require.Contains(t, out, "New Title [Intro]: ")
	require.Contains(t, out, "Course CS101 updated successfully.")
	require.Contains(t, out, "Note: 1 students remain registered above the new capacity of 1.")
	require.Contains(t, out, "Error: course not found: CS999")

	course, err := sys.GetCourse("CS101")
	require.NoError(t, err)
	require.Equal(t, "Intro", course.Title())
	require.Equal(t, "New description", course.Description())
	require.Equal(t, 3, course.Credits())
	require.Equal(t, 1, course.Capacity())
	require.Equal(t, []string{"student1", "student2"}, course.RegisteredStudents())

	out = runConsole(t, sys, script(
		"admin", "password",
		"2", "cs101",
		"2", "cs101",
		"7",
		"n",
	), Options{})

	require.Contains(t, out, "Course CS101 removed successfully.")
	require.Contains(t, out, "Error: course not found: CS101")

	courses, err := sys.ListCoursesForStudent("student1")
	require.NoError(t, err)
	require.Empty(t, courses)
}

func TestConsole_AdminListings(t *testing.T) {
	sys := testutil.NewBuilder(t).
		WithCourse("CS101").
		WithEnrollment("student2", "CS101").
		Build()

	out := runConsole(t, sys, script(
		"admin", "password",
		"5", "cs101",
		"6", "STUDENT2",
		"6", "nobody",
		"4", "", "zzz",
		"7",
		"n",
	), Options{})

	require.Contains(t, out, "Students registered for CS101:\n- student2\n")
	require.Contains(t, out, "Courses registered by student2:\n- CS101\n")
	require.Contains(t, out, "Error: student not found: nobody")
	require.Contains(t, out, "Input cannot be empty.")
	require.Contains(t, out, "No courses found.")
	require.NotContains(t, out, "ID: CS101", "a blank search term must not list the catalog")
}

func TestConsole_StudentSession(t *testing.T) {
	sys := testutil.NewBuilder(t).
		WithCourse("CS101", testutil.Title("Intro"), testutil.Capacity(1)).
		WithCourse("MA201", testutil.Title("Calculus"), testutil.Credits(4), testutil.Capacity(2)).
		Build()

	out := runConsole(t, sys, script(
		"Student1", "pass123",
		"2", "cs101",
		"2", "cs101",
		"1",
		"4",
		"3", "ma201",
		"3", "cs101",
		"4",
		"5",
		"n",
	), Options{})

	require.Contains(t, out, "Welcome, student1!")
	require.Contains(t, out, "--- Student Menu (student1) ---")
	require.Contains(t, out, "Registered for course CS101.")
	require.Contains(t, out, "Error: course is full: CS101")
	require.Contains(t, out, "ID: CS101, Title: Intro, Credits: 3, Capacity: 1, Registered: 1 - Status: Full")
	require.Contains(t, out, "ID: MA201, Title: Calculus, Credits: 4, Capacity: 2, Registered: 0 - Status: Available")
	require.Contains(t, out, "Registered courses:\nCS101: Intro (3 credits)\n")
	require.Contains(t, out, "Error: student is not registered for this course: MA201")
	require.Contains(t, out, "Dropped course CS101.")
	require.Contains(t, out, "Registered courses:\nNo registered courses.\n")

	courses, err := sys.ListCoursesForStudent("student1")
	require.NoError(t, err)
	require.Empty(t, courses)
}

func TestConsole_StudentNoCourses(t *testing.T) {
	sys := newTestSystem(t)

	out := runConsole(t, sys, script("student2", "pass123", "1", "0", "5", "n"), Options{})

	require.Contains(t, out, "No courses available.")
	require.Contains(t, out, "Invalid choice, please try again.")
}

func TestConsole_LoginFailure(t *testing.T) {
	sys := newTestSystem(t)

	out := runConsole(t, sys, script("admin", "wrong"), Options{})

	require.Contains(t, out, "Login failed: invalid username or password")
	require.NotContains(t, out, "Welcome, admin!")
	require.True(t, strings.HasSuffix(out, "Exiting system. Goodbye!\n"))
}

func TestConsole_LoginAgain(t *testing.T) {
	sys := newTestSystem(t)

	out := runConsole(t, sys, script(
		"student1", "pass123", "5",
		"Y",
		"admin", "password", "7",
		"no",
	), Options{})

	require.Contains(t, out, "Welcome, student1!")
	require.Contains(t, out, "Welcome, admin!")
	require.Equal(t, 2, strings.Count(out, "Do you want to login again? (y/n): "))
}

func TestConsole_ShowCredentials(t *testing.T) {
	sys := newTestSystem(t)

	out := runConsole(t, sys, script("student1", "pass123", "5", "n"), Options{
		ShowCredentials: true,
		Accounts:        registration.DefaultConfig(),
	})

	require.Contains(t, out, "Available accounts:")
	require.Contains(t, out, "<pass123>")
}

func TestConsole_EOFMidAction(t *testing.T) {
	sys := newTestSystem(t)

	out := runConsole(t, sys, script("admin", "password", "1", "CS1", "Title"), Options{})

	require.True(t, strings.HasSuffix(out, "Exiting system. Goodbye!\n"))
	require.Empty(t, sys.ViewAvailableCourses())
}

func TestConsole_Spans(t *testing.T) {
	sys := newTestSystem(t)
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	runConsole(t, sys, script("student1", "pass123", "2", "cs999", "5", "n"), Options{
		Tracer: tp.Tracer("test"),
	})

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	login, register := spans[0], spans[1]
	require.Equal(t, tracing.SpanLogin, login.Name())
	require.Equal(t, codes.Ok, login.Status().Code)
	require.Contains(t, login.Attributes(), attribute.String(tracing.AttrActorRole, "student"))

	require.Equal(t, tracing.SpanPrefixStudent+"register", register.Name())
	require.Equal(t, login.SpanContext().SpanID(), register.Parent().SpanID())
	require.Equal(t, codes.Error, register.Status().Code)
	require.Contains(t, register.Attributes(), attribute.String(tracing.AttrSessionID, "session-1"))
	require.Contains(t, register.Attributes(), attribute.String(tracing.AttrCourseID, "CS999"))
	require.Contains(t, register.Attributes(), attribute.String(tracing.AttrErrorKind, "course_not_found"))
}

func TestConsole_StandardCatalogStudent(t *testing.T) {
	sys := testutil.NewBuilder(t).WithStandardCatalog().Build()

	out := runConsole(t, sys, script("student2", "pass123", "2", "ph150", "4", "5", "n"), Options{})

	require.Contains(t, out, "Registered for course PH150.")
	require.Contains(t, out, "Registered courses:\nCS101: Intro to Programming (3 credits)\nPH150: Physics for Engineers (4 credits)\n")
}

func TestConsole_ResultCountOnListingSpans(t *testing.T) {
	sys := testutil.NewBuilder(t).WithStandardCatalog().Build()
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	opts := Options{Tracer: tp.Tracer("test")}

	runConsole(t, sys, script("admin", "password", "4", "intro", "4", "xyz", "7", "n"), opts)
	runConsole(t, sys, script("student1", "pass123", "1", "5", "n"), opts)

	var counts []attribute.KeyValue
	for _, span := range recorder.Ended() {
		for _, kv := range span.Attributes() {
			if string(kv.Key) == tracing.AttrResults {
				counts = append(counts, attribute.Int(span.Name(), int(kv.Value.AsInt64())))
			}
		}
	}
	require.Equal(t, []attribute.KeyValue{
		attribute.Int(tracing.SpanPrefixAdmin+"search_courses", 1),
		attribute.Int(tracing.SpanPrefixAdmin+"search_courses", 0),
		attribute.Int(tracing.SpanPrefixStudent+"view_courses", 3),
	}, counts)
}
