package registration

import (
	"fmt"
	"strings"

	"github.com/zjrosen/registrar/internal/log"
)

// NoRegisteredCourses is the report text for a student with no registrations.
const NoRegisteredCourses = "No registered courses."

// SearchCourses returns every course whose ID or title contains term,
// ignoring case, in catalog order. No match yields an empty slice.
func (s *System) SearchCourses(term string) []*Course {
	key := strings.ToLower(term)

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.searchCache != nil {
		if cached, ok := s.searchCache.Get(key); ok {
			return cloneCourses(cached)
		}
	}

	results := make([]*Course, 0)
	for _, id := range s.courseOrder {
		course := s.courses[id]
		if matchesTerm(course, key) {
			results = append(results, course.clone())
		}
	}
	log.Debug(log.CatCatalog, "course search", "term", key, "matches", len(results))

	// Set runs under the read lock, so no mutation can flush between the scan
	// and the store.
	if s.searchCache != nil {
		s.searchCache.Set(key, cloneCourses(results))
	}
	return results
}

// ViewAvailableCourses returns every course in catalog order, full or not.
func (s *System) ViewAvailableCourses() []*Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	courses := make([]*Course, 0, len(s.courseOrder))
	for _, id := range s.courseOrder {
		courses = append(courses, s.courses[id].clone())
	}
	return courses
}

// GetCourse returns a snapshot of one course.
func (s *System) GetCourse(courseID string) (*Course, error) {
	id := normalizeCourseID(courseID)

	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.courses[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCourseNotFound, id)
	}
	return course.clone(), nil
}

// ListStudentsForCourse returns the roster of a course in enrollment order.
func (s *System) ListStudentsForCourse(courseID string) ([]string, error) {
	id := normalizeCourseID(courseID)

	s.mu.RLock()
	defer s.mu.RUnlock()

	course, ok := s.courses[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCourseNotFound, id)
	}
	return course.RegisteredStudents(), nil
}

// ListCoursesForStudent returns a student's course IDs in registration order.
func (s *System) ListCoursesForStudent(studentID string) ([]string, error) {
	id := normalizeUserID(studentID)

	s.mu.RLock()
	defer s.mu.RUnlock()

	student, ok := s.students[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStudentNotFound, id)
	}
	return student.RegisteredCourses(), nil
}

// GenerateReportForStudent renders one line per registered course,
// "{id}: {title} ({credits} credits)", in registration order. Course IDs that
// are no longer in the catalog are skipped.
func (s *System) GenerateReportForStudent(studentID string) (string, error) {
	id := normalizeUserID(studentID)

	s.mu.RLock()
	defer s.mu.RUnlock()

	student, ok := s.students[id]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrStudentNotFound, id)
	}
	if len(student.registeredCourses) == 0 {
		return NoRegisteredCourses, nil
	}

	lines := make([]string, 0, len(student.registeredCourses))
	for _, cid := range student.registeredCourses {
		course, ok := s.courses[cid]
		if !ok {
			log.Warn(log.CatReport, "stale course reference", "student_id", id, "course_id", cid)
			continue
		}
		lines = append(lines, fmt.Sprintf("%s: %s (%d credits)", course.ID(), course.Title(), course.Credits()))
	}
	return strings.Join(lines, "\n"), nil
}

func matchesTerm(c *Course, lowerTerm string) bool {
	return strings.Contains(strings.ToLower(c.id), lowerTerm) ||
		strings.Contains(strings.ToLower(c.title), lowerTerm)
}

func cloneCourses(courses []*Course) []*Course {
	out := make([]*Course, len(courses))
	for i, c := range courses {
		out[i] = c.clone()
	}
	return out
}
