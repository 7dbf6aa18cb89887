// Package fasta reads and writes the FASTA files exchanged with the
// external embedding and clustering tools.
package fasta

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Record represents a single FASTA record.
type Record struct {
	Header   string
	Sequence string
}

// Read parses FASTA records from r. Lines beginning with '>' denote
// headers; sequence lines are concatenated.
func Read(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	var records []Record
	var current Record
	var inRecord bool

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ">") {
			if inRecord {
				records = append(records, current)
			}
			current = Record{Header: strings.TrimSpace(line[1:])}
			inRecord = true
			continue
		}
		if inRecord {
			current.Sequence += line
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read FASTA: %v", err)
	}
	if inRecord {
		records = append(records, current)
	}

	return records, nil
}

// ReadFile parses FASTA records from a file.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open FASTA: %v", err)
	}
	defer f.Close()

	return Read(f)
}

// Write writes FASTA records to w, wrapping sequences at 60 columns.
func Write(w io.Writer, records []Record) error {
	for _, rec := range records {
		if _, err := fmt.Fprintf(w, ">%s\n", rec.Header); err != nil {
			return err
		}
		seq := rec.Sequence
		for len(seq) > 0 {
			n := 60
			if len(seq) < n {
				n = len(seq)
			}
			if _, err := fmt.Fprintln(w, seq[:n]); err != nil {
				return err
			}
			seq = seq[n:]
		}
	}
	return nil
}

// WriteFile writes FASTA records to a file.
func WriteFile(path string, records []Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create FASTA: %v", err)
	}
	defer f.Close()

	return Write(f, records)
}
