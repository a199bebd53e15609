// Package registration implements the course-registration core.
//
// The package owns three kinds of entity:
//   - Admin and Student accounts, both satisfying the sealed User interface
//   - Course, the catalog entry carrying its ordered roster and capacity
//
// System is the single facade over these entities. It holds every account and
// course in ID-keyed arenas, normalizes IDs at its boundary (course IDs upper
// case, user IDs lower case) and keeps both sides of each enrollment in step:
// a course ID is in a student's list exactly when that student ID is in the
// course roster.
//
// Values handed out by System are snapshots. Mutating a returned Course or
// Student never changes the state held by the System.
//
// # Failures
//
// Every rejected operation returns one of the package sentinel errors
// (ErrCourseNotFound, ErrCourseFull, ...), usually wrapped with the offending
// ID. Use errors.Is to classify them and Kind to get a stable short name.
package registration
