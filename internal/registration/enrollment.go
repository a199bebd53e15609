package registration

import (
	"fmt"

	"github.com/zjrosen/registrar/internal/log"
)

// RegisterStudentForCourse enrolls a student in a course, writing both the
// course roster and the student's list under one lock.
//
// Preconditions are checked in order: ErrStudentNotFound, ErrCourseNotFound,
// ErrCourseFull, ErrAlreadyRegistered. Nothing is written unless all pass.
func (s *System) RegisterStudentForCourse(studentID, courseID string) error {
	sid := normalizeUserID(studentID)
	cid := normalizeCourseID(courseID)

	s.mu.Lock()
	defer s.mu.Unlock()

	student, course, err := s.lookupPair(sid, cid)
	if err != nil {
		return err
	}
	if course.IsFull() {
		log.Debug(log.CatEnroll, "registration rejected", "reason", "full", "student_id", sid, "course_id", cid)
		return fmt.Errorf("%w: %s", ErrCourseFull, cid)
	}
	if student.HasCourse(cid) {
		log.Debug(log.CatEnroll, "registration rejected", "reason", "duplicate", "student_id", sid, "course_id", cid)
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, cid)
	}

	// Cannot fail: fullness and duplication were checked above under the same lock.
	if err := course.AddStudent(sid); err != nil {
		return err
	}
	student.RegisterCourse(cid)
	s.invalidate()

	log.Info(log.CatEnroll, "student registered", "student_id", sid, "course_id", cid,
		"registered", course.RegisteredCount(), "capacity", course.Capacity())
	return nil
}

// DropStudentFromCourse removes an enrollment from both sides.
// Returns ErrStudentNotFound, ErrCourseNotFound or ErrNotRegistered without
// changing anything when a precondition fails.
func (s *System) DropStudentFromCourse(studentID, courseID string) error {
	sid := normalizeUserID(studentID)
	cid := normalizeCourseID(courseID)

	s.mu.Lock()
	defer s.mu.Unlock()

	student, course, err := s.lookupPair(sid, cid)
	if err != nil {
		return err
	}
	if !student.HasCourse(cid) {
		log.Debug(log.CatEnroll, "drop rejected", "reason", "not_registered", "student_id", sid, "course_id", cid)
		return fmt.Errorf("%w: %s", ErrNotRegistered, cid)
	}

	course.RemoveStudent(sid)
	student.DropCourse(cid)
	s.invalidate()

	log.Info(log.CatEnroll, "student dropped", "student_id", sid, "course_id", cid)
	return nil
}

// lookupPair resolves normalized IDs to stored entities. Callers hold the lock.
func (s *System) lookupPair(studentID, courseID string) (*Student, *Course, error) {
	student, ok := s.students[studentID]
	if !ok {
		log.Debug(log.CatEnroll, "unknown student", "student_id", studentID)
		return nil, nil, fmt.Errorf("%w: %s", ErrStudentNotFound, studentID)
	}
	course, ok := s.courses[courseID]
	if !ok {
		log.Debug(log.CatEnroll, "unknown course", "course_id", courseID)
		return nil, nil, fmt.Errorf("%w: %s", ErrCourseNotFound, courseID)
	}
	return student, course, nil
}
