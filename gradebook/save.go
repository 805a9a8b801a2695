package gradebook

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/harrybrwn/errs"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Save writes the book to a file, overwriting it if it exists.
func Save(book *Book, filename string) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "could not create gradebook")
	}
	defer func() {
		err = errs.Pair(err, file.Close())
		if err == nil {
			logrus.WithFields(logrus.Fields{
				"file":     filename,
				"students": book.Len(),
			}).Info("saved gradebook")
		}
	}()
	return Write(file, book)
}

// Write writes one tab separated line per student ordered by
// descending average. Only the id, name, and scores are written.
func Write(w io.Writer, book *Book) error {
	buf := bufio.NewWriter(w)
	for _, s := range book.Sorted() {
		_, err := fmt.Fprintf(buf, "%s\t%s\t%d\t%d\n", s.ID, s.Name, s.Mid, s.Final)
		if err != nil {
			return err
		}
	}
	return buf.Flush()
}
