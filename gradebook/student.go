package gradebook

import (
	"strconv"
	"strings"
)

// Grade is a letter grade.
type Grade byte

// The letter grades, from best to worst.
const (
	A Grade = 'A'
	B Grade = 'B'
	C Grade = 'C'
	D Grade = 'D'
	F Grade = 'F'
)

// Grades is every valid letter grade.
var Grades = []Grade{A, B, C, D, F}

func (g Grade) String() string {
	return string(g)
}

// ParseGrade will parse a single letter grade. It is case sensitive,
// "a" is not a grade.
func ParseGrade(s string) (Grade, bool) {
	if len(s) != 1 {
		return 0, false
	}
	for _, g := range Grades {
		if Grade(s[0]) == g {
			return g, true
		}
	}
	return 0, false
}

// GradeFor returns the letter grade for an average. The
// thresholds are inclusive so 90 is an A and 89.9 is a B.
func GradeFor(avg float64) Grade {
	switch {
	case avg >= 90:
		return A
	case avg >= 80:
		return B
	case avg >= 70:
		return C
	case avg >= 60:
		return D
	default:
		return F
	}
}

// Average returns the mean of the two exam scores.
func Average(mid, final int) float64 {
	return (float64(mid) + float64(final)) / 2
}

// Exam identifies which exam score is being changed.
type Exam int

const (
	// Midterm is the midterm exam
	Midterm Exam = iota
	// Final is the final exam
	Final
)

func (e Exam) String() string {
	if e == Midterm {
		return "mid"
	}
	return "final"
}

// ParseExam accepts "mid" or "final" in any case.
func ParseExam(s string) (Exam, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "mid":
		return Midterm, true
	case "final":
		return Final, true
	}
	return 0, false
}

// MinScore and MaxScore bound every score entered by a user.
const (
	MinScore = 0
	MaxScore = 100
)

// ParseScore parses an exam score and makes sure it is in range.
func ParseScore(s string) (int, error) {
	score, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidScore
	}
	if !ValidScore(score) {
		return score, ErrInvalidScore
	}
	return score, nil
}

// ValidScore reports whether a score is in [0, 100].
func ValidScore(score int) bool {
	return score >= MinScore && score <= MaxScore
}

// Student is one row of the gradebook.
type Student struct {
	ID    string
	Name  string
	Mid   int
	Final int

	// Average and Grade are derived from Mid and Final,
	// call Recompute after changing either score.
	Average float64
	Grade   Grade
}

// NewStudent creates a student with the derived fields filled in.
func NewStudent(id, name string, mid, final int) *Student {
	s := &Student{ID: id, Name: name, Mid: mid, Final: final}
	s.Recompute()
	return s
}

// Recompute updates the average and letter grade.
func (s *Student) Recompute() {
	s.Average = Average(s.Mid, s.Final)
	s.Grade = GradeFor(s.Average)
}

// Row returns the displayed columns for a student.
func (s *Student) Row() []string {
	return []string{
		s.ID,
		s.Name,
		strconv.Itoa(s.Mid),
		strconv.Itoa(s.Final),
		strconv.FormatFloat(s.Average, 'f', 1, 64),
		s.Grade.String(),
	}
}
