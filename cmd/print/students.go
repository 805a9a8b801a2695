package print

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrybrwn/gradebook/cmd/internal"
	"github.com/harrybrwn/gradebook/gradebook"
	"github.com/harrybrwn/gradebook/pkg/term"
)

// Messages printed in place of a table.
const (
	NoSuchPerson = "NO SUCH PERSON."
	NoResults    = "NO RESULTS."
)

var (
	// Header is the column header for every listing.
	Header = []string{"ID", "Name", "Midterm", "Final", "Average", "Grade"}

	headerLine = "ID\t\tName\t\tMidterm\tFinal\tAverage\tGrade"
	separator  = strings.Repeat("-", 68)
)

// StudentPrinter prints students as tab separated rows.
type StudentPrinter struct {
	io.Writer
	// Color will color messages
	Color bool
}

// Header prints the header and separator lines.
func (p *StudentPrinter) Header() {
	fmt.Fprintln(p, headerLine)
	fmt.Fprintln(p, separator)
}

// Row prints one student.
func (p *StudentPrinter) Row(s *gradebook.Student) {
	fmt.Fprintln(p, strings.Join(s.Row(), "\t"))
}

// Rows prints a header followed by all the students given.
func (p *StudentPrinter) Rows(students []*gradebook.Student) {
	p.Header()
	for _, s := range students {
		p.Row(s)
	}
}

// Listing prints every student by descending average.
func (p *StudentPrinter) Listing(book *gradebook.Book) {
	p.Rows(book.Sorted())
}

// Lookup prints one student by id.
func (p *StudentPrinter) Lookup(book *gradebook.Book, id string) {
	s, ok := book.Get(id)
	if !ok {
		p.Error(NoSuchPerson)
		return
	}
	p.Rows([]*gradebook.Student{s})
}

// GradeListing prints the students with a letter grade. Nothing
// is printed if the grade is not valid.
func (p *StudentPrinter) GradeListing(book *gradebook.Book, grade string) {
	g, ok := gradebook.ParseGrade(grade)
	if !ok {
		return
	}
	students := book.ByGrade(g)
	if len(students) == 0 {
		p.Error(NoResults)
		return
	}
	p.Rows(students)
}

// Error prints a message for something that did not work.
func (p *StudentPrinter) Error(msg string) {
	if p.Color {
		msg = term.Red(msg)
	}
	fmt.Fprintln(p, msg)
}

// Success prints a confirmation message.
func (p *StudentPrinter) Success(msg string) {
	if p.Color {
		msg = term.Green(msg)
	}
	fmt.Fprintln(p, msg)
}

// Table renders students with tablewriter.
func Table(w io.Writer, students []*gradebook.Student, color bool) {
	tab := internal.NewTable(w)
	internal.SetTableHeader(tab, Header, color)
	for _, s := range students {
		tab.Append(s.Row())
	}
	tab.Render()
}
