package console

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/registrar/internal/registration"
	"github.com/zjrosen/registrar/internal/tracing"
)

var adminMenuItems = []string{
	"Add Course",
	"Remove Course",
	"Update Course",
	"Search Courses",
	"List Students in a Course",
	"List Courses for a Student",
	"Logout",
}

func (c *Console) adminMenu(ctx context.Context, sess *session, _ *registration.Admin) error {
	for {
		choice, err := c.menu("--- Admin Menu ---", adminMenuItems)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = c.addCourse(ctx, sess)
		case "2":
			err = c.removeCourse(ctx, sess)
		case "3":
			err = c.updateCourse(ctx, sess)
		case "4":
			err = c.searchCourses(ctx, sess)
		case "5":
			err = c.listStudents(ctx, sess)
		case "6":
			err = c.listStudentCourses(ctx, sess)
		case "7":
			c.println("Logging out...")
			return nil
		default:
			c.invalidChoice()
		}
		if err != nil {
			return err
		}
	}
}

func (c *Console) addCourse(ctx context.Context, sess *session) error {
	id, err := c.in.NonEmpty("Course ID: ")
	if err != nil {
		return err
	}
	title, err := c.in.NonEmpty("Title: ")
	if err != nil {
		return err
	}
	description, err := c.in.NonEmpty("Description: ")
	if err != nil {
		return err
	}
	credits, err := c.in.Int("Credits: ", AtLeast(1))
	if err != nil {
		return err
	}
	capacity, err := c.in.Int("Capacity: ", AtLeast(1))
	if err != nil {
		return err
	}

	id = strings.ToUpper(id)
	c.action(ctx, sess, tracing.SpanPrefixAdmin+"add_course", func(trace.Span) error {
		course, err := c.sys.AddCourse(id, title, description, credits, capacity)
		if err != nil {
			return err
		}
		c.success("Course %s added successfully.", course.ID())
		return nil
	}, attribute.String(tracing.AttrCourseID, id))
	return nil
}

func (c *Console) removeCourse(ctx context.Context, sess *session) error {
	id, err := c.in.NonEmpty("Course ID to remove: ")
	if err != nil {
		return err
	}

	id = strings.ToUpper(id)
	c.action(ctx, sess, tracing.SpanPrefixAdmin+"remove_course", func(trace.Span) error {
		if err := c.sys.RemoveCourse(id); err != nil {
			return err
		}
		c.success("Course %s removed successfully.", id)
		return nil
	}, attribute.String(tracing.AttrCourseID, id))
	return nil
}

func (c *Console) updateCourse(ctx context.Context, sess *session) error {
	id, err := c.in.NonEmpty("Course ID to update: ")
	if err != nil {
		return err
	}
	id = strings.ToUpper(id)

	// Fail before asking for fields when the course is unknown.
	current, lookupErr := c.sys.GetCourse(id)
	if lookupErr != nil {
		c.action(ctx, sess, tracing.SpanPrefixAdmin+"update_course", func(trace.Span) error {
			return lookupErr
		}, attribute.String(tracing.AttrCourseID, id))
		return nil
	}

	c.println("Leave blank to keep current value.")
	var u registration.CourseUpdate
	if u.Title, err = c.in.OptionalString(fmt.Sprintf("New Title [%s]: ", current.Title())); err != nil {
		return err
	}
	if u.Description, err = c.in.OptionalString(fmt.Sprintf("New Description [%s]: ", current.Description())); err != nil {
		return err
	}
	if u.Credits, err = c.in.OptionalInt(fmt.Sprintf("New Credits [%d]: ", current.Credits())); err != nil {
		return err
	}
	if u.Capacity, err = c.in.OptionalInt(fmt.Sprintf("New Capacity [%d]: ", current.Capacity())); err != nil {
		return err
	}

	c.action(ctx, sess, tracing.SpanPrefixAdmin+"update_course", func(trace.Span) error {
		course, err := c.sys.UpdateCourse(id, u)
		if err != nil {
			return err
		}
		c.success("Course %s updated successfully.", course.ID())
		if course.RegisteredCount() > course.Capacity() {
			c.printf("Note: %d students remain registered above the new capacity of %d.\n",
				course.RegisteredCount()-course.Capacity(), course.Capacity())
		}
		return nil
	}, attribute.String(tracing.AttrCourseID, id))
	return nil
}

func (c *Console) searchCourses(ctx context.Context, sess *session) error {
	term, err := c.in.NonEmpty("Enter search term (ID or title): ")
	if err != nil {
		return err
	}

	c.action(ctx, sess, tracing.SpanPrefixAdmin+"search_courses", func(span trace.Span) error {
		results := c.sys.SearchCourses(term)
		span.SetAttributes(attribute.Int(tracing.AttrResults, len(results)))
		if len(results) == 0 {
			c.println("No courses found.")
			return nil
		}
		for _, course := range results {
			c.println(course.String())
		}
		return nil
	}, attribute.String(tracing.AttrTerm, term))
	return nil
}

func (c *Console) listStudents(ctx context.Context, sess *session) error {
	id, err := c.in.NonEmpty("Course ID: ")
	if err != nil {
		return err
	}

	id = strings.ToUpper(id)
	c.action(ctx, sess, tracing.SpanPrefixAdmin+"list_students", func(trace.Span) error {
		students, err := c.sys.ListStudentsForCourse(id)
		if err != nil {
			return err
		}
		if len(students) == 0 {
			c.println("No students registered for this course.")
			return nil
		}
		c.printf("Students registered for %s:\n", id)
		for _, sid := range students {
			c.printf("- %s\n", sid)
		}
		return nil
	}, attribute.String(tracing.AttrCourseID, id))
	return nil
}

func (c *Console) listStudentCourses(ctx context.Context, sess *session) error {
	id, err := c.in.NonEmpty("Student ID: ")
	if err != nil {
		return err
	}

	id = strings.ToLower(id)
	c.action(ctx, sess, tracing.SpanPrefixAdmin+"list_student_courses", func(trace.Span) error {
		courses, err := c.sys.ListCoursesForStudent(id)
		if err != nil {
			return err
		}
		if len(courses) == 0 {
			c.println("Student is not registered for any courses.")
			return nil
		}
		c.printf("Courses registered by %s:\n", id)
		for _, cid := range courses {
			c.printf("- %s\n", cid)
		}
		return nil
	}, attribute.String(tracing.AttrStudentID, id))
	return nil
}
