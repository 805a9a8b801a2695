package shell

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/harrybrwn/gradebook/gradebook"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = "ID\t\tName\t\tMidterm\tFinal\tAverage\tGrade\n"

var separator = strings.Repeat("-", 68) + "\n"

func testBook(t *testing.T, data string) *gradebook.Book {
	t.Helper()
	book, err := gradebook.Parse(strings.NewReader(data))
	require.NoError(t, err)
	return book
}

func run(t *testing.T, book *gradebook.Book, input string) string {
	t.Helper()
	var out bytes.Buffer
	s := New(book, strings.NewReader(input), &out)
	require.NoError(t, s.Run())
	return out.String()
}

func TestPrompter_Ask(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("  one \ntwo"), &out)
	line, err := p.Ask("> ")
	require.NoError(t, err)
	assert.Equal(t, "one", line)
	line, err = p.Ask("> ")
	require.NoError(t, err)
	assert.Equal(t, "two", line)
	_, err = p.Ask("> ")
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, "> > > ", out.String())
}

func TestAskFilename(t *testing.T) {
	var out bytes.Buffer
	s := New(nil, strings.NewReader("\ngrades.txt\n"), &out)
	name, err := s.AskFilename("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFile, name)
	name, err = s.AskFilename("")
	require.NoError(t, err)
	assert.Equal(t, "grades.txt", name)
	assert.Contains(t, out.String(), "Enter filename (default 'students.txt'): ")

	s = New(nil, strings.NewReader(""), &out)
	name, err = s.AskFilename("other.txt")
	require.NoError(t, err)
	assert.Equal(t, "other.txt", name)
}

func TestShow(t *testing.T) {
	book := testBook(t, "1\tLow\t10\t20\n2\tHigh\t90\t100\n3\tMiddle Name\t70\t71\n")
	out := run(t, book, "show\nquit\nno\n")
	exp := CommandPrompt + header + separator +
		"2\tHigh\t90\t100\t95.0\tA\n" +
		"3\tMiddle Name\t70\t71\t70.5\tC\n" +
		"1\tLow\t10\t20\t15.0\tF\n" +
		CommandPrompt + SavePrompt
	assert.Equal(t, exp, out)
}

func TestCommands_CaseAndUnknown(t *testing.T) {
	book := testBook(t, "")
	out := run(t, book, "  SHOW  \nwhat\n\nQuit\nno\n")
	exp := CommandPrompt + header + separator +
		CommandPrompt + CommandPrompt + CommandPrompt + SavePrompt
	assert.Equal(t, exp, out)
}

func TestSearch(t *testing.T) {
	book := testBook(t, "101\tAlice\t95\t85\n")
	out := run(t, book, "search\n101\nsearch\n999\n")
	assert.Contains(t, out, IDPrompt+header+separator+"101\tAlice\t95\t85\t90.0\tA\n")
	assert.Contains(t, out, IDPrompt+"NO SUCH PERSON.\n")
}

func TestSearchGrade(t *testing.T) {
	book := testBook(t, "101\tAlice\t95\t85\n102\tBob\t50\t50\n103\tCarl\t100\t99\n")
	out := run(t, book, "searchgrade\na\n")
	assert.Contains(t, out, GradePrompt+header+separator+
		"103\tCarl\t100\t99\t99.5\tA\n"+
		"101\tAlice\t95\t85\t90.0\tA\n"+CommandPrompt)

	out = run(t, book, "searchgrade\nB\n")
	assert.Equal(t, CommandPrompt+GradePrompt+"NO RESULTS.\n"+CommandPrompt, out)

	// invalid grades print nothing
	out = run(t, book, "searchgrade\nQ\n")
	assert.Equal(t, CommandPrompt+GradePrompt+CommandPrompt, out)
}

func TestAdd(t *testing.T) {
	book := testBook(t, "101\tAlice\t95\t85\n")

	out := run(t, book, "add\n102\nBob Smith\n70\n 80 \n")
	assert.Contains(t, out, IDPrompt+NamePrompt+MidPrompt+FinalPrompt+Added+"\n")
	s, ok := book.Get("102")
	require.True(t, ok)
	assert.Equal(t, "Bob Smith", s.Name)
	assert.Equal(t, 75.0, s.Average)
	assert.Equal(t, gradebook.C, s.Grade)

	out = run(t, book, "add\n101\n")
	assert.Equal(t, CommandPrompt+IDPrompt+AlreadyExists+"\n"+CommandPrompt, out)
	s, _ = book.Get("101")
	assert.Equal(t, "Alice", s.Name)

	for _, scores := range []string{"abc\n50\n", "50\n101\n", "-1\n50\n", "50\n\n"} {
		out = run(t, book, "add\n103\nCarl\n"+scores)
		assert.Contains(t, out, InvalidScore+"\n")
		assert.False(t, book.Has("103"), "invalid scores %q should not add a student", scores)
	}
	assert.Equal(t, 2, book.Len())
}

func TestRemove(t *testing.T) {
	book := testBook(t, "")
	out := run(t, book, "remove\n101\n")
	assert.Equal(t, CommandPrompt+IDPrompt+ListEmpty+"\n"+CommandPrompt, out)

	book = testBook(t, "101\tAlice\t95\t85\n")
	out = run(t, book, "remove\n999\nremove\n101\n")
	assert.Contains(t, out, IDPrompt+"NO SUCH PERSON.\n")
	assert.Contains(t, out, IDPrompt+Removed+"\n")
	assert.Equal(t, 0, book.Len())
}

func TestChangeScore(t *testing.T) {
	book := testBook(t, "101\tAlice\t95\t85\n")
	out := run(t, book, "changescore\n101\nFINAL\n40\n")
	exp := CommandPrompt + IDPrompt + ExamPrompt + ScorePrompt +
		header + separator +
		"101\tAlice\t95\t85\t90.0\tA\n" +
		"101\tAlice\t95\t40\t67.5\tD\n" +
		CommandPrompt
	assert.Equal(t, exp, out)
	s, _ := book.Get("101")
	assert.Equal(t, 40, s.Final)
	assert.Equal(t, gradebook.D, s.Grade)
}

func TestChangeScore_Silent(t *testing.T) {
	book := testBook(t, "101\tAlice\t95\t85\n")
	for _, input := range []string{
		"changescore\n101\nmidterm\n",
		"changescore\n101\nmid\nninety\n",
		"changescore\n101\nmid\n101\n",
		"changescore\n101\nfinal\n-5\n",
		"changescore\n101\nfinal\n",
	} {
		out := run(t, book, input)
		assert.NotContains(t, out, header, "input %q should not print anything", input)
		s, _ := book.Get("101")
		assert.Equal(t, *gradebook.NewStudent("101", "Alice", 95, 85), *s)
	}
	out := run(t, book, "changescore\n999\n")
	assert.Equal(t, CommandPrompt+IDPrompt+"NO SUCH PERSON.\n"+CommandPrompt, out)
}

func TestQuit(t *testing.T) {
	book := testBook(t, "101\tAlice\t95\t85\n")
	var (
		out   bytes.Buffer
		saved string
	)
	s := New(book, strings.NewReader("quit\nYES\nout.txt\nshow\n"), &out)
	s.Save = func(b *gradebook.Book, filename string) error {
		assert.Equal(t, book, b)
		saved = filename
		return nil
	}
	require.NoError(t, s.Run())
	assert.Equal(t, "out.txt", saved)
	assert.Equal(t, CommandPrompt+SavePrompt+FilenamePrompt, out.String())

	saved = ""
	out.Reset()
	s = New(book, strings.NewReader("quit\nnope\n"), &out)
	s.Save = func(*gradebook.Book, string) error {
		saved = "called"
		return nil
	}
	require.NoError(t, s.Run())
	assert.Equal(t, "", saved)

	// no file name means nothing is saved
	for _, input := range []string{"quit\nyes\n", "quit\nyes\n\n", "quit\nyes\n   \n"} {
		out.Reset()
		s = New(book, strings.NewReader(input), &out)
		s.Save = func(*gradebook.Book, string) error {
			saved = "called"
			return nil
		}
		require.NoError(t, s.Run())
		assert.Equal(t, "", saved, "input %q should not save", input)
		assert.Equal(t, CommandPrompt+SavePrompt+FilenamePrompt, out.String())
	}
}

func TestScenario(t *testing.T) {
	book := testBook(t, "101\tAlice\t95\t85\n")
	s, _ := book.Get("101")
	assert.Equal(t, 90.0, s.Average)
	assert.Equal(t, gradebook.A, s.Grade)

	out := run(t, book, "searchgrade\nA\n")
	assert.Contains(t, out, "101\tAlice\t95\t85\t90.0\tA\n")

	out = run(t, book, "changescore\n101\nfinal\n40\n")
	assert.Contains(t, out, "101\tAlice\t95\t85\t90.0\tA\n101\tAlice\t95\t40\t67.5\tD\n")

	out = run(t, book, "remove\n101\nshow\n")
	assert.True(t, strings.HasSuffix(out, CommandPrompt+header+separator+CommandPrompt))
}
