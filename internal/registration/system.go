package registration

import (
	"fmt"
	"strings"
	"sync"

	"github.com/zjrosen/registrar/internal/log"
)

// SeedAccount is a pre-provisioned account created at construction time.
type SeedAccount struct {
	ID       string
	Password string
}

// Config holds the accounts a System is seeded with.
type Config struct {
	AdminID       string
	AdminPassword string
	SeedStudents  []SeedAccount
}

// DefaultConfig returns the stock seed accounts: one admin and two students.
func DefaultConfig() Config {
	return Config{
		AdminID:       "admin",
		AdminPassword: "password",
		SeedStudents: []SeedAccount{
			{ID: "student1", Password: "pass123"},
			{ID: "student2", Password: "pass123"},
		},
	}
}

// Validate checks that every seed ID is non-empty and that no two accounts
// share an ID once normalized.
func (c Config) Validate() error {
	adminID := normalizeUserID(c.AdminID)
	if adminID == "" {
		return fmt.Errorf("%w: admin ID cannot be empty", ErrInvalidConfig)
	}
	if c.AdminPassword == "" {
		return fmt.Errorf("%w: admin password cannot be empty", ErrInvalidConfig)
	}

	seen := make(map[string]bool, len(c.SeedStudents))
	for i, s := range c.SeedStudents {
		id := normalizeUserID(s.ID)
		switch {
		case id == "":
			return fmt.Errorf("%w: student %d has an empty ID", ErrInvalidConfig, i)
		case id == adminID:
			return fmt.Errorf("%w: student ID %q collides with the admin ID", ErrInvalidConfig, id)
		case seen[id]:
			return fmt.Errorf("%w: duplicate student ID %q", ErrInvalidConfig, id)
		}
		seen[id] = true
	}
	return nil
}

// SearchCache memoizes search results between mutations.
type SearchCache interface {
	Get(key string) ([]*Course, bool)
	Set(key string, courses []*Course)
	Flush()
}

// Option configures a System.
type Option func(*System)

// WithSearchCache makes SearchCourses consult cache before scanning the
// catalog. The cache is flushed on every mutation.
func WithSearchCache(cache SearchCache) Option {
	return func(s *System) {
		s.searchCache = cache
	}
}

// System is the registration facade. It owns every account and course and is
// safe for concurrent use.
type System struct {
	mu sync.RWMutex

	adminID     string
	admins      map[string]*Admin
	students    map[string]*Student
	courses     map[string]*Course
	courseOrder []string

	searchCache SearchCache
}

// NewSystem creates a System seeded with the accounts in cfg and an empty
// catalog.
func NewSystem(cfg Config, opts ...Option) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	adminID := normalizeUserID(cfg.AdminID)
	s := &System{
		adminID:     adminID,
		admins:      map[string]*Admin{adminID: NewAdmin(adminID, cfg.AdminPassword)},
		students:    make(map[string]*Student, len(cfg.SeedStudents)),
		courses:     make(map[string]*Course),
		courseOrder: make([]string, 0),
	}
	for _, seed := range cfg.SeedStudents {
		id := normalizeUserID(seed.ID)
		s.students[id] = NewStudent(id, seed.Password)
	}
	for _, opt := range opts {
		opt(s)
	}

	log.Info(log.CatAuth, "registration system ready", "admin", adminID, "students", len(s.students))
	return s, nil
}

// AuthenticateUser returns a snapshot of the account matching userID and
// password. Unknown users and wrong passwords both yield ErrAuthentication.
func (s *System) AuthenticateUser(userID, password string) (User, error) {
	id := normalizeUserID(userID)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if id == s.adminID {
		if admin, ok := s.admins[id]; ok && admin.Authenticate(password) {
			log.Info(log.CatAuth, "admin authenticated", "user_id", id)
			return admin.clone(), nil
		}
	} else if student, ok := s.students[id]; ok && student.Authenticate(password) {
		log.Info(log.CatAuth, "student authenticated", "user_id", id)
		return student.clone(), nil
	}

	log.Debug(log.CatAuth, "authentication rejected", "user_id", id)
	return nil, ErrAuthentication
}

// AddCourse creates a course with an empty roster.
// Returns ErrDuplicateCourse if the normalized ID is already in the catalog.
func (s *System) AddCourse(courseID, title, description string, credits, capacity int) (*Course, error) {
	id := normalizeCourseID(courseID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.courses[id]; exists {
		log.Debug(log.CatCatalog, "duplicate course rejected", "course_id", id)
		return nil, fmt.Errorf("%w: %s", ErrDuplicateCourse, id)
	}

	course := NewCourse(id, title, description, credits, capacity)
	s.courses[id] = course
	s.courseOrder = append(s.courseOrder, id)
	s.invalidate()

	log.Info(log.CatCatalog, "course added", "course_id", id, "credits", credits, "capacity", capacity)
	return course.clone(), nil
}

// RemoveCourse deletes a course and drops it from every student holding it.
func (s *System) RemoveCourse(courseID string) error {
	id := normalizeCourseID(courseID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[id]; !ok {
		log.Debug(log.CatCatalog, "remove of unknown course", "course_id", id)
		return fmt.Errorf("%w: %s", ErrCourseNotFound, id)
	}

	dropped := 0
	for _, student := range s.students {
		if student.HasCourse(id) {
			student.DropCourse(id)
			dropped++
		}
	}
	delete(s.courses, id)
	for i, cid := range s.courseOrder {
		if cid == id {
			s.courseOrder = append(s.courseOrder[:i], s.courseOrder[i+1:]...)
			break
		}
	}
	s.invalidate()

	log.Info(log.CatCatalog, "course removed", "course_id", id, "students_dropped", dropped)
	return nil
}

// UpdateCourse applies the non-nil fields of u to an existing course and
// returns the updated snapshot. Shrinking capacity below the roster size
// leaves existing enrollments in place.
func (s *System) UpdateCourse(courseID string, u CourseUpdate) (*Course, error) {
	id := normalizeCourseID(courseID)

	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[id]
	if !ok {
		log.Debug(log.CatCatalog, "update of unknown course", "course_id", id)
		return nil, fmt.Errorf("%w: %s", ErrCourseNotFound, id)
	}

	course.UpdateDetails(u)
	s.invalidate()

	if course.RegisteredCount() > course.Capacity() {
		log.Warn(log.CatCatalog, "course capacity below roster size",
			"course_id", id, "capacity", course.Capacity(), "registered", course.RegisteredCount())
	}
	log.Info(log.CatCatalog, "course updated", "course_id", id)
	return course.clone(), nil
}

// invalidate drops cached search results. Callers hold the write lock.
func (s *System) invalidate() {
	if s.searchCache != nil {
		s.searchCache.Flush()
	}
}

func normalizeCourseID(id string) string {
	return strings.ToUpper(id)
}

func normalizeUserID(id string) string {
	return strings.ToLower(id)
}
