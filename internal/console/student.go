package console

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/registrar/internal/registration"
	"github.com/zjrosen/registrar/internal/tracing"
)

var studentMenuItems = []string{
	"View Available Courses",
	"Register for a Course",
	"Drop a Course",
	"View Registered Courses",
	"Logout",
}

func (c *Console) studentMenu(ctx context.Context, sess *session, student *registration.Student) error {
	for {
		choice, err := c.menu("--- Student Menu ("+student.ID()+") ---", studentMenuItems)
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			c.viewAvailable(ctx, sess)
		case "2":
			err = c.register(ctx, sess, student.ID())
		case "3":
			err = c.drop(ctx, sess, student.ID())
		case "4":
			c.report(ctx, sess, student.ID())
		case "5":
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

func (c *Console) viewAvailable(ctx context.Context, sess *session) {
	c.action(ctx, sess, tracing.SpanPrefixStudent+"view_courses", func(span trace.Span) error {
		courses := c.sys.ViewAvailableCourses()
		span.SetAttributes(attribute.Int(tracing.AttrResults, len(courses)))
		if len(courses) == 0 {
			c.println("No courses available.")
			return nil
		}
		for _, course := range courses {
			status := c.styles.available.Render("Available")
			if course.IsFull() {
				status = c.styles.full.Render("Full")
			}
			c.printf("%s - Status: %s\n", course, status)
		}
		return nil
	})
}

func (c *Console) register(ctx context.Context, sess *session, studentID string) error {
	id, err := c.in.NonEmpty("Enter course ID to register: ")
	if err != nil {
		return err
	}

	id = strings.ToUpper(id)
	c.action(ctx, sess, tracing.SpanPrefixStudent+"register", func(trace.Span) error {
		if err := c.sys.RegisterStudentForCourse(studentID, id); err != nil {
			return err
		}
		c.success("Registered for course %s.", id)
		return nil
	}, attribute.String(tracing.AttrCourseID, id), attribute.String(tracing.AttrStudentID, studentID))
	return nil
}

func (c *Console) drop(ctx context.Context, sess *session, studentID string) error {
	id, err := c.in.NonEmpty("Enter course ID to drop: ")
	if err != nil {
		return err
	}

	id = strings.ToUpper(id)
	c.action(ctx, sess, tracing.SpanPrefixStudent+"drop", func(trace.Span) error {
		if err := c.sys.DropStudentFromCourse(studentID, id); err != nil {
			return err
		}
		c.success("Dropped course %s.", id)
		return nil
	}, attribute.String(tracing.AttrCourseID, id), attribute.String(tracing.AttrStudentID, studentID))
	return nil
}

func (c *Console) report(ctx context.Context, sess *session, studentID string) {
	c.action(ctx, sess, tracing.SpanPrefixStudent+"report", func(trace.Span) error {
		report, err := c.sys.GenerateReportForStudent(studentID)
		if err != nil {
			return err
		}
		c.println("Registered courses:")
		c.println(report)
		return nil
	}, attribute.String(tracing.AttrStudentID, studentID))
}
