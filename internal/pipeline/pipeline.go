// Package pipeline runs the one-shot ingest batch: it walks every message of
// an SMS export, categorizes and extracts each body, and submits the
// resulting records to the transaction store. A bad entry never aborts the
// batch; every skip lands in the audit sink with its reason and raw text.
package pipeline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/relisha1/MoMo-Data-Analysis/internal/audit"
	"github.com/relisha1/MoMo-Data-Analysis/internal/categorizer"
	"github.com/relisha1/MoMo-Data-Analysis/internal/extractor"
	"github.com/relisha1/MoMo-Data-Analysis/internal/models"
	"github.com/relisha1/MoMo-Data-Analysis/internal/parsererror"
	"github.com/relisha1/MoMo-Data-Analysis/internal/sms"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// otpMarker flags one-time-password notifications, which are not financial
// transactions.
const otpMarker = "one-time password"

// Store is the subset of the transaction store the pipeline needs.
type Store interface {
	Insert(t *models.Transaction) error
}

// Result summarizes one ingest batch. Duplicate submissions count as
// accepted: the message was processed, just not newly stored.
type Result struct {
	Accepted int
	Skipped  int
}

// Pipeline ingests SMS messages into the transaction store.
type Pipeline struct {
	cat               *categorizer.Categorizer
	store             Store
	sink              *audit.Sink
	skipUncategorized bool
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithKeepUncategorized makes the pipeline persist catch-all records instead
// of diverting them to the audit sink.
func WithKeepUncategorized() Option {
	return func(p *Pipeline) {
		p.skipUncategorized = false
	}
}

// New creates an ingest pipeline. By default messages the categorizer cannot
// classify are treated as unprocessable and skipped.
func New(cat *categorizer.Categorizer, store Store, sink *audit.Sink, opts ...Option) *Pipeline {
	p := &Pipeline{
		cat:               cat,
		store:             store,
		sink:              sink,
		skipUncategorized: true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes every message of a batch and returns the accepted/skipped
// counts. Individual failures are recovered at entry granularity.
func (p *Pipeline) Run(messages []sms.Message) Result {
	var res Result
	for _, msg := range messages {
		if p.process(msg) {
			res.Accepted++
		} else {
			res.Skipped++
		}
	}
	log.WithFields(logrus.Fields{
		"accepted": res.Accepted,
		"skipped":  res.Skipped,
	}).Info("Ingest batch completed")
	return res
}

func (p *Pipeline) process(msg sms.Message) (accepted bool) {
	// A panic in a single entry must not abort the batch.
	defer func() {
		if r := recover(); r != nil {
			log.WithField("index", msg.Index).Errorf("Unexpected panic processing message: %v", r)
			p.sink.Failed(fmt.Sprintf("panic: %v", r), msg.Body)
			accepted = false
		}
	}()

	if strings.TrimSpace(msg.Body) == "" {
		p.sink.Skipped("no body text", fmt.Sprintf("sms index=%d address=%s", msg.Index, msg.Address))
		return false
	}

	if strings.Contains(strings.ToLower(msg.Body), otpMarker) {
		p.sink.Skipped("OTP message", msg.Body)
		return false
	}

	category := p.cat.Categorize(msg.Body)
	if p.skipUncategorized && category == models.CategoryUnknown {
		p.sink.Skipped("uncategorized message", msg.Body)
		return false
	}

	fields, err := extractor.Extract(msg.Body)
	if err != nil {
		var exErr *parsererror.ExtractionError
		if errors.As(err, &exErr) {
			log.WithError(err).Warn("Extraction failed, skipping message")
			p.sink.Skipped(err.Error(), msg.Body)
		} else {
			log.WithError(err).Error("Unexpected error extracting message")
			p.sink.Failed(err.Error(), msg.Body)
		}
		return false
	}

	tx := &models.Transaction{
		Type:     category,
		Amount:   fields.Amount,
		Fee:      fields.Fee,
		Date:     fields.Date,
		Sender:   fields.Sender,
		Receiver: fields.Receiver,
		Details:  msg.Body,
	}
	if fields.TxID != "" {
		txID := fields.TxID
		tx.TxID = &txID
	}

	if err := p.store.Insert(tx); err != nil {
		var dupErr *parsererror.DuplicateIDError
		if errors.As(err, &dupErr) {
			// Already stored from an earlier run: processed, not a failure.
			log.WithField("tx_id", dupErr.TxID).Warn("Duplicate transaction id, record already stored")
			return true
		}
		var valErr *parsererror.ValidationError
		if errors.As(err, &valErr) {
			log.WithError(err).Warn("Record rejected by store validation")
			p.sink.Skipped(err.Error(), msg.Body)
		} else {
			log.WithError(err).Error("Unexpected error inserting transaction")
			p.sink.Failed(err.Error(), msg.Body)
		}
		return false
	}

	return true
}
