package gradebook

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/harrybrwn/errs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNoFile is the cause of the error returned by Load when
// the file does not exist.
var ErrNoFile = errs.New("file not found")

const maxLineSize = 1024 * 1024

// Load reads a gradebook file.
func Load(filename string) (*Book, error) {
	file, err := os.Open(filename)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(ErrNoFile, filename)
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not open gradebook")
	}
	defer file.Close()
	book, err := Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read %s", filename)
	}
	logrus.WithFields(logrus.Fields{
		"file":     filename,
		"students": book.Len(),
	}).Info("loaded gradebook")
	return book, nil
}

// Parse reads students one per line. Malformed lines are skipped.
func Parse(r io.Reader) (*Book, error) {
	var (
		book    = New()
		scanner = bufio.NewScanner(r)
		n       = 0
	)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	for scanner.Scan() {
		n++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		s, ok := ParseLine(line)
		if !ok {
			logrus.WithField("line", n).Debug("skipping malformed line")
			continue
		}
		book.put(s)
	}
	return book, scanner.Err()
}

// ParseLine parses a single record. Fields are split on tabs if
// there are any, otherwise on runs of whitespace. Every field
// between the first and the last two is part of the name.
func ParseLine(line string) (*Student, bool) {
	var parts []string
	if strings.Contains(line, "\t") {
		parts = strings.Split(line, "\t")
	} else {
		parts = strings.Fields(line)
	}
	n := len(parts)
	if n < 4 {
		return nil, false
	}
	name := parts[1]
	if n > 4 {
		name = strings.Join(parts[1:n-2], " ")
	}
	mid, err := strconv.Atoi(strings.TrimSpace(parts[n-2]))
	if err != nil {
		return nil, false
	}
	final, err := strconv.Atoi(strings.TrimSpace(parts[n-1]))
	if err != nil {
		return nil, false
	}
	return NewStudent(parts[0], name, mid, final), true
}
