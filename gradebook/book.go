package gradebook

import (
	"sort"

	"github.com/harrybrwn/errs"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNotFound is returned when an id is not in the book.
	ErrNotFound = errs.New("no such person")
	// ErrExists is returned when adding an id that is already taken.
	ErrExists = errs.New("already exists")
	// ErrEmpty is returned when removing from an empty book.
	ErrEmpty = errs.New("list is empty")
	// ErrInvalidScore is returned for non-numeric or out of range scores.
	ErrInvalidScore = errs.New("invalid score")
)

// Book is the in-memory collection of students keyed by id.
type Book struct {
	students map[string]*Student
}

// New creates an empty book.
func New() *Book {
	return &Book{students: make(map[string]*Student)}
}

// Len is the number of students.
func (b *Book) Len() int {
	return len(b.students)
}

// Get will look up a student by id.
func (b *Book) Get(id string) (*Student, bool) {
	s, ok := b.students[id]
	return s, ok
}

// Has tests if the id is in the book.
func (b *Book) Has(id string) bool {
	_, ok := b.students[id]
	return ok
}

// put inserts or replaces a student without any checks.
func (b *Book) put(s *Student) {
	b.students[s.ID] = s
}

// Add inserts a new student. The scores must be in range and
// the id must not already be in the book.
func (b *Book) Add(id, name string, mid, final int) (*Student, error) {
	if b.Has(id) {
		return nil, ErrExists
	}
	if !ValidScore(mid) || !ValidScore(final) {
		return nil, ErrInvalidScore
	}
	s := NewStudent(id, name, mid, final)
	b.put(s)
	logrus.WithFields(logrus.Fields{"id": id, "average": s.Average}).Info("student added")
	return s, nil
}

// Remove deletes a student. An empty book is reported before
// a missing id.
func (b *Book) Remove(id string) error {
	if len(b.students) == 0 {
		return ErrEmpty
	}
	if !b.Has(id) {
		return ErrNotFound
	}
	delete(b.students, id)
	logrus.WithField("id", id).Info("student removed")
	return nil
}

// SetScore changes one exam score and recomputes the derived
// fields. The returned student is a copy of the record as it
// was before the change.
func (b *Book) SetScore(id string, exam Exam, score int) (before Student, err error) {
	s, ok := b.students[id]
	if !ok {
		return before, ErrNotFound
	}
	if !ValidScore(score) {
		return before, ErrInvalidScore
	}
	before = *s
	switch exam {
	case Midterm:
		s.Mid = score
	case Final:
		s.Final = score
	}
	s.Recompute()
	logrus.WithFields(logrus.Fields{
		"id":    id,
		"exam":  exam.String(),
		"score": score,
	}).Info("score changed")
	return before, nil
}

// Sorted returns all the students ordered by descending average.
func (b *Book) Sorted() []*Student {
	list := make([]*Student, 0, len(b.students))
	for _, s := range b.students {
		list = append(list, s)
	}
	sortByAverage(list)
	return list
}

// ByGrade returns the students with a given letter grade ordered
// by descending average.
func (b *Book) ByGrade(g Grade) []*Student {
	var list []*Student
	for _, s := range b.students {
		if s.Grade == g {
			list = append(list, s)
		}
	}
	sortByAverage(list)
	return list
}

// ties are broken by id so that output is repeatable
func sortByAverage(list []*Student) {
	sort.Slice(list, func(i, j int) bool {
		if list[i].Average != list[j].Average {
			return list[i].Average > list[j].Average
		}
		return list[i].ID < list[j].ID
	})
}
