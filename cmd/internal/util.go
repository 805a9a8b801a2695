package internal

import (
	"fmt"
	"io"

	"github.com/harrybrwn/gradebook/gradebook"
	table "github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

// Error is an error that carries the exit code the
// program should stop with.
type Error struct {
	Msg  string
	Code int
}

func (e *Error) Error() string {
	return e.Msg
}

// NewTable creates a table with some default parameters
func NewTable(r io.Writer) *table.Table {
	t := table.NewWriter(r)
	t.SetBorder(false)
	t.SetColumnSeparator("")
	t.SetAlignment(table.ALIGN_LEFT)
	t.SetAutoFormatHeaders(false)
	t.SetHeaderLine(false)
	t.SetHeaderAlignment(table.ALIGN_LEFT)
	t.SetAutoWrapText(false)
	return t
}

// SetTableHeader sets the table header and automatically manages header color.
func SetTableHeader(t *table.Table, header []string, color bool) {
	t.SetHeader(header)
	if color {
		headercolors := make([]table.Colors, len(header))
		for i := range header {
			headercolors[i] = table.Colors{table.FgCyanColor}
		}
		t.SetHeaderColor(headercolors...)
	}
}

// LoadBook will load a gradebook file. A missing file gives an
// *Error so the program stops with a non-zero status.
func LoadBook(filename string) (*gradebook.Book, error) {
	book, err := gradebook.Load(filename)
	if errors.Cause(err) == gradebook.ErrNoFile {
		return nil, &Error{Msg: fmt.Sprintf("%s not found.", filename), Code: 1}
	}
	return book, err
}
