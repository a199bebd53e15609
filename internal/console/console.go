// Package console is the interactive line-oriented front end of the
// registration system: login, the admin menu and the student menu.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/registrar/internal/log"
	"github.com/zjrosen/registrar/internal/registration"
	"github.com/zjrosen/registrar/internal/tracing"
)

// Options controls console presentation.
type Options struct {
	// ShowCredentials prints the seed account table before every login.
	ShowCredentials bool
	// Color enables styled output when the writer is a terminal.
	Color bool
	// Accounts are the seed accounts shown in the credential table.
	Accounts registration.Config
	// Tracer receives one span per login and menu action. Nil disables tracing.
	Tracer trace.Tracer
}

// Console drives one interactive session over a reader/writer pair.
type Console struct {
	sys    *registration.System
	in     *Prompter
	out    io.Writer
	styles styles
	opts   Options
	tracer trace.Tracer

	newSessionID func() string
}

// session is the state of one successful login.
type session struct {
	id   string
	user registration.User
}

// New creates a Console reading answers from in and writing to out.
func New(sys *registration.System, in io.Reader, out io.Writer, opts Options) *Console {
	tracer := opts.Tracer
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("console")
	}
	return &Console{
		sys:          sys,
		in:           NewPrompter(in, out),
		out:          out,
		styles:       newStyles(out, opts.Color),
		opts:         opts,
		tracer:       tracer,
		newSessionID: uuid.NewString,
	}
}

// Run loops over login prompts until the user declines to log in again or the
// input is exhausted. Only I/O failures are returned.
func (c *Console) Run(ctx context.Context) error {
	c.println(c.styles.heading.Render("Welcome to Student Course Registration System"))

	for {
		err := c.loginOnce(ctx)
		if err == nil {
			var again string
			again, err = c.in.Line("\nDo you want to login again? (y/n): ")
			if err == nil && strings.EqualFold(again, "y") {
				continue
			}
		}
		if err != nil && !errors.Is(err, ErrInputClosed) {
			return err
		}
		c.println("Exiting system. Goodbye!")
		return nil
	}
}

func (c *Console) loginOnce(ctx context.Context) error {
	if c.opts.ShowCredentials {
		c.println("")
		c.println(c.styles.subtle.Render("Available accounts:"))
		WriteAccounts(c.out, c.opts.Accounts, true)
	}

	c.println("")
	c.println(c.styles.heading.Render("--- Login ---"))
	userID, err := c.in.NonEmpty("User ID: ")
	if err != nil {
		return err
	}
	password, err := c.in.NonEmpty("Password: ")
	if err != nil {
		return err
	}

	sess := &session{id: c.newSessionID()}
	loginCtx, span := tracing.StartAction(ctx, c.tracer, tracing.SpanLogin,
		attribute.String(tracing.AttrSessionID, sess.id),
		attribute.String(tracing.AttrActorID, strings.ToLower(userID)),
	)
	user, err := c.sys.AuthenticateUser(userID, password)
	if err != nil {
		tracing.EndAction(span, err, registration.Kind(err))
		log.Info(log.CatConsole, "login failed", "session", sess.id, "user_id", strings.ToLower(userID))
		c.println(c.styles.failure.Render("Login failed: " + err.Error()))
		return nil
	}
	span.SetAttributes(attribute.String(tracing.AttrActorRole, user.Role().String()))
	tracing.EndAction(span, nil, "")

	sess.user = user
	log.Info(log.CatConsole, "session started", "session", sess.id, "user_id", user.ID(), "role", user.Role().String())
	c.println(c.styles.success.Render(fmt.Sprintf("Welcome, %s!", user.ID())))

	// Menu action spans are children of the login span.
	ctx = loginCtx
	switch u := user.(type) {
	case *registration.Admin:
		err = c.adminMenu(ctx, sess, u)
	case *registration.Student:
		err = c.studentMenu(ctx, sess, u)
	}
	log.Info(log.CatConsole, "session ended", "session", sess.id, "user_id", user.ID())
	return err
}

// action runs fn inside a span named name. A failure from fn is reported to
// the user and logged, then swallowed so the menu keeps going.
func (c *Console) action(ctx context.Context, sess *session, name string, fn func(span trace.Span) error, attrs ...attribute.KeyValue) {
	attrs = append(attrs,
		attribute.String(tracing.AttrSessionID, sess.id),
		attribute.String(tracing.AttrActorID, sess.user.ID()),
		attribute.String(tracing.AttrActorRole, sess.user.Role().String()),
	)
	_, span := tracing.StartAction(ctx, c.tracer, name, attrs...)

	err := fn(span)
	kind := registration.Kind(err)
	tracing.EndAction(span, err, kind)

	if err != nil {
		log.Info(log.CatConsole, "action failed", "session", sess.id, "action", name, "kind", kind, "error", err.Error())
		c.println(c.styles.failure.Render("Error: " + err.Error()))
		return
	}
	log.Debug(log.CatConsole, "action completed", "session", sess.id, "action", name)
}

func (c *Console) menu(title string, items []string) (string, error) {
	c.println("")
	c.println(c.styles.heading.Render(title))
	for i, item := range items {
		c.printf("%d. %s\n", i+1, item)
	}
	return c.in.NonEmpty("Enter choice: ")
}

func (c *Console) invalidChoice() {
	c.println(c.styles.failure.Render("Invalid choice, please try again."))
}

func (c *Console) success(format string, args ...any) {
	c.println(c.styles.success.Render(fmt.Sprintf(format, args...)))
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
