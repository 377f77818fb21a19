// Package store owns log.json: loading, appending, and the last-entry
// lookup. Writes are atomic (temp file + rename) so a crash mid-write
// never truncates existing history.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/marcus/devtrail/internal/models"
)

// LogFile is the document file name inside the base directory.
const LogFile = "log.json"

// ParseError indicates the log file exists but does not decode as the
// expected document. The store fails closed on it: no write happens, so
// corrupt data is never replaced with an empty document.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the log document. A missing or empty file is treated as an
// empty document, not an error.
func Load(baseDir string) (*models.LogDocument, error) {
	path := filepath.Join(baseDir, LogFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return emptyDocument(), nil
		}
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return emptyDocument(), nil
	}

	var doc models.LogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	if doc.Logs == nil {
		doc.Logs = []models.LogEntry{}
	}

	return &doc, nil
}

// Append adds an entry to the end of the log and writes the full
// document back atomically. Returns the updated document.
func Append(baseDir string, e models.LogEntry) (*models.LogDocument, error) {
	doc, err := Load(baseDir)
	if err != nil {
		return nil, err
	}

	doc.Logs = append(doc.Logs, e)
	if err := write(baseDir, doc); err != nil {
		return nil, err
	}

	return doc, nil
}

// Init creates an empty log document if no log file exists yet.
func Init(baseDir string) error {
	if _, err := os.Stat(filepath.Join(baseDir, LogFile)); err == nil {
		return nil
	}
	return write(baseDir, emptyDocument())
}

// Last returns the final entry in the log, or nil when the log is empty.
func Last(baseDir string) (*models.LogEntry, error) {
	doc, err := Load(baseDir)
	if err != nil {
		return nil, err
	}
	if len(doc.Logs) == 0 {
		return nil, nil
	}
	return &doc.Logs[len(doc.Logs)-1], nil
}

func emptyDocument() *models.LogDocument {
	return &models.LogDocument{Logs: []models.LogEntry{}}
}

func write(baseDir string, doc *models.LogDocument) error {
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(baseDir, "log-*.json.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	return os.Rename(tmpName, filepath.Join(baseDir, LogFile))
}
