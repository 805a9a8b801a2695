package shell

import (
	"io"
	"strings"

	"github.com/harrybrwn/gradebook/cmd/print"
	"github.com/harrybrwn/gradebook/gradebook"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Prompts
const (
	CommandPrompt  = "# "
	IDPrompt       = "Student ID: "
	GradePrompt    = "Grade to search: "
	NamePrompt     = "Name: "
	MidPrompt      = "Midterm Score: "
	FinalPrompt    = "Final Score: "
	ExamPrompt     = "Mid/Final? "
	ScorePrompt    = "Input new score: "
	SavePrompt     = "Save data?[yes/no] "
	FilenamePrompt = "File name: "
)

// Messages
const (
	AlreadyExists = "ALREADY EXISTS."
	InvalidScore  = "Invalid score input."
	ListEmpty     = "List is empty."
	Added         = "Student added."
	Removed       = "Student removed."
)

// DefaultFile is the data file used when the user does not give one.
const DefaultFile = "students.txt"

// SaveFunc writes a book to a file.
type SaveFunc func(book *gradebook.Book, filename string) error

// Session is an interactive gradebook session.
type Session struct {
	book    *gradebook.Book
	prompt  *Prompter
	printer *print.StudentPrinter

	// Save is called when the user chooses to save on quit.
	Save SaveFunc
}

// New creates a session that reads commands from input and writes
// to output. The book may be nil if it will be set with SetBook.
func New(book *gradebook.Book, input io.Reader, output io.Writer) *Session {
	return &Session{
		book:    book,
		prompt:  NewPrompter(input, output),
		printer: &print.StudentPrinter{Writer: output},
		Save:    gradebook.Save,
	}
}

// SetColor turns colored messages on or off.
func (s *Session) SetColor(color bool) {
	s.printer.Color = color
}

// SetBook sets the book being edited.
func (s *Session) SetBook(book *gradebook.Book) {
	s.book = book
}

// AskFilename asks for the data file, an empty answer gives the default.
func (s *Session) AskFilename(deflt string) (string, error) {
	if deflt == "" {
		deflt = DefaultFile
	}
	name, err := s.prompt.Ask("Enter filename (default '" + deflt + "'): ")
	if err != nil && err != io.EOF {
		return "", err
	}
	if name == "" {
		return deflt, nil
	}
	return name, nil
}

// Run reads and executes commands until quit or the end of input.
func (s *Session) Run() error {
	for {
		line, err := s.prompt.Ask(CommandPrompt)
		if err == io.EOF {
			logrus.Info("end of input, exiting without saving")
			return nil
		}
		if err != nil {
			return err
		}
		quit, err := s.Exec(line)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Exec runs one command. Unknown commands are ignored. It
// returns true when the session should end.
func (s *Session) Exec(command string) (quit bool, err error) {
	command = strings.ToLower(strings.TrimSpace(command))
	switch command {
	case "show":
		s.printer.Listing(s.book)
	case "search":
		err = s.withID(func(id string) error {
			s.printer.Lookup(s.book, id)
			return nil
		})
	case "searchgrade":
		var grade string
		grade, err = s.prompt.Ask(GradePrompt)
		if err == nil {
			s.printer.GradeListing(s.book, strings.ToUpper(grade))
		}
	case "changescore":
		err = s.withID(s.changeScore)
	case "add":
		err = s.withID(s.add)
	case "remove":
		err = s.withID(s.remove)
	case "quit":
		return true, s.quit()
	default:
		return false, nil
	}
	if err == io.EOF {
		// input ran out halfway through a command, the next
		// prompt will see the end of input and exit
		return false, nil
	}
	return false, err
}

func (s *Session) withID(fn func(id string) error) error {
	id, err := s.prompt.Ask(IDPrompt)
	if err != nil {
		return err
	}
	return fn(id)
}

func (s *Session) add(id string) error {
	if s.book.Has(id) {
		s.printer.Error(AlreadyExists)
		return nil
	}
	name, err := s.prompt.Ask(NamePrompt)
	if err != nil {
		return err
	}
	midInput, err := s.prompt.Ask(MidPrompt)
	if err != nil {
		return err
	}
	finalInput, err := s.prompt.Ask(FinalPrompt)
	if err != nil {
		return err
	}
	mid, err := gradebook.ParseScore(midInput)
	if err != nil {
		s.printer.Error(InvalidScore)
		return nil
	}
	final, err := gradebook.ParseScore(finalInput)
	if err != nil {
		s.printer.Error(InvalidScore)
		return nil
	}
	if _, err = s.book.Add(id, name, mid, final); err != nil {
		return s.report(err)
	}
	s.printer.Success(Added)
	return nil
}

func (s *Session) remove(id string) error {
	if err := s.book.Remove(id); err != nil {
		return s.report(err)
	}
	s.printer.Success(Removed)
	return nil
}

func (s *Session) changeScore(id string) error {
	if !s.book.Has(id) {
		s.printer.Error(print.NoSuchPerson)
		return nil
	}
	answer, err := s.prompt.Ask(ExamPrompt)
	if err != nil {
		return err
	}
	exam, ok := gradebook.ParseExam(answer)
	if !ok {
		return nil
	}
	answer, err = s.prompt.Ask(ScorePrompt)
	if err != nil {
		return err
	}
	score, err := gradebook.ParseScore(answer)
	if err != nil {
		return nil
	}
	before, err := s.book.SetScore(id, exam, score)
	if err != nil {
		return s.report(err)
	}
	after, _ := s.book.Get(id)
	s.printer.Rows([]*gradebook.Student{&before})
	s.printer.Row(after)
	return nil
}

func (s *Session) quit() error {
	answer, err := s.prompt.Ask(SavePrompt)
	if err != nil && err != io.EOF {
		return err
	}
	if strings.ToLower(answer) != "yes" {
		return nil
	}
	filename, err := s.prompt.Ask(FilenamePrompt)
	if err == io.EOF || (err == nil && filename == "") {
		logrus.Info("no file name given, exiting without saving")
		return nil
	}
	if err != nil {
		return err
	}
	if err = s.Save(s.book, filename); err != nil {
		return errors.Wrap(err, "could not save")
	}
	return nil
}

// report prints the message for a gradebook error. Errors
// that are not from the gradebook are returned.
func (s *Session) report(err error) error {
	switch errors.Cause(err) {
	case gradebook.ErrNotFound:
		s.printer.Error(print.NoSuchPerson)
	case gradebook.ErrExists:
		s.printer.Error(AlreadyExists)
	case gradebook.ErrEmpty:
		s.printer.Error(ListEmpty)
	case gradebook.ErrInvalidScore:
		s.printer.Error(InvalidScore)
	default:
		return err
	}
	return nil
}
