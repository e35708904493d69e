// Package ingest reads transaction records, drives them through the graph
// state, and writes the trust labels.
package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/persistorai/trustgraph/internal/models"
)

const (
	fieldSeparator = ","
	minFields      = 3
)

// Reader yields transactions from a delimited record stream. The first line is
// a header and is always discarded. Field 0 is ignored; fields 1 and 2 are the
// two party ids. Lines with fewer than three fields or a blank id are skipped.
// Lines may be of any length.
type Reader struct {
	br      *bufio.Reader
	line    int
	skipped int
	done    bool
}

// NewReader wraps r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r)}
}

// Next returns the next valid transaction, or false once the input is
// exhausted.
func (r *Reader) Next() (models.Transaction, bool, error) {
	for !r.done {
		text, err := r.br.ReadString('\n')
		if err != nil {
			if !errors.Is(err, io.EOF) {
				return models.Transaction{}, false, fmt.Errorf("reading line %d: %w", r.line+1, err)
			}

			r.done = true

			if text == "" {
				break
			}
		}

		r.line++
		if r.line == 1 {
			continue
		}

		tx, valid := parseRecord(strings.TrimRight(text, "\r\n"))
		if !valid {
			r.skipped++
			continue
		}

		return tx, true, nil
	}

	return models.Transaction{}, false, nil
}

func parseRecord(text string) (models.Transaction, bool) {
	fields := strings.SplitN(text, fieldSeparator, minFields+1)
	if len(fields) < minFields {
		return models.Transaction{}, false
	}

	tx := models.Transaction{
		Source: strings.TrimSpace(fields[1]),
		Target: strings.TrimSpace(fields[2]),
	}
	if tx.Source == "" || tx.Target == "" {
		return models.Transaction{}, false
	}

	return tx, true
}

// Line returns the number of lines consumed, header included.
func (r *Reader) Line() int { return r.line }

// Skipped returns the number of data lines dropped as malformed.
func (r *Reader) Skipped() int { return r.skipped }
