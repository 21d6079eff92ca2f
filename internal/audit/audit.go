// Package audit provides the append-only sink for messages the ingest
// pipeline skips or rejects. Every entry records the reason alongside the
// original message text so rejected input can be reviewed manually.
package audit

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Sink records skipped and rejected input messages.
type Sink struct {
	log  *logrus.Logger
	file *os.File // nil for writer-backed sinks
}

// NewFileSink creates a sink appending to the given log file, creating
// parent directories as needed.
func NewFileSink(path string) (*Sink, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("error creating audit log directory: %w", err)
		}
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
	if err != nil {
		return nil, fmt.Errorf("error opening audit log: %w", err)
	}

	sink := newSink(file)
	sink.file = file
	return sink, nil
}

// NewWriterSink creates a sink writing to an arbitrary writer.
func NewWriterSink(w io.Writer) *Sink {
	return newSink(w)
}

func newSink(w io.Writer) *Sink {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(logrus.WarnLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:    true,
		DisableColors:    true,
		DisableSorting:   true,
		QuoteEmptyFields: true,
	})
	return &Sink{log: logger}
}

// Skipped records a message skipped for an expected reason.
func (s *Sink) Skipped(reason, body string) {
	s.log.WithField("reason", reason).Warn(body)
}

// Failed records a message rejected by an unexpected failure.
func (s *Sink) Failed(reason, body string) {
	s.log.WithField("reason", reason).Error(body)
}

// Close releases the underlying file, if any.
func (s *Sink) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}
