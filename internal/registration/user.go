package registration

import "slices"

// Role distinguishes the two kinds of account.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// String returns the string representation of the role.
func (r Role) String() string {
	return string(r)
}

// User is implemented by *Admin and *Student only. Callers dispatch on the
// concrete type with a type switch.
type User interface {
	ID() string
	Role() Role
	Authenticate(candidate string) bool

	sealed()
}

// account is the identity and credential record shared by every role.
type account struct {
	id       string
	password string
}

// ID returns the normalized user ID.
func (a *account) ID() string {
	return a.id
}

// Authenticate reports whether candidate matches the stored password.
func (a *account) Authenticate(candidate string) bool {
	return a.password == candidate
}

func (a *account) sealed() {}

// Admin is an administrator account. Admin-privileged actions live on System.
type Admin struct {
	account
}

// NewAdmin creates an admin account.
func NewAdmin(id, password string) *Admin {
	return &Admin{account: account{id: id, password: password}}
}

// Role returns RoleAdmin.
func (a *Admin) Role() Role {
	return RoleAdmin
}

func (a *Admin) clone() *Admin {
	c := *a
	return &c
}

// Student is a student account with its ordered list of registered course IDs.
type Student struct {
	account
	registeredCourses []string
}

// NewStudent creates a student account with no registrations.
func NewStudent(id, password string) *Student {
	return &Student{
		account:           account{id: id, password: password},
		registeredCourses: make([]string, 0),
	}
}

// Role returns RoleStudent.
func (s *Student) Role() Role {
	return RoleStudent
}

// RegisterCourse appends courseID to the student's list.
// Registering an ID that is already present is a no-op.
func (s *Student) RegisterCourse(courseID string) {
	if s.HasCourse(courseID) {
		return
	}
	s.registeredCourses = append(s.registeredCourses, courseID)
}

// DropCourse removes courseID from the student's list.
// Dropping an absent ID is a no-op.
func (s *Student) DropCourse(courseID string) {
	if i := slices.Index(s.registeredCourses, courseID); i >= 0 {
		s.registeredCourses = slices.Delete(s.registeredCourses, i, i+1)
	}
}

// HasCourse reports whether courseID is in the student's list.
func (s *Student) HasCourse(courseID string) bool {
	return slices.Contains(s.registeredCourses, courseID)
}

// RegisteredCourses returns a copy of the registered course IDs in
// registration order.
func (s *Student) RegisteredCourses() []string {
	return slices.Clone(s.registeredCourses)
}

func (s *Student) clone() *Student {
	c := *s
	c.registeredCourses = s.RegisteredCourses()
	return &c
}
