// Package extractor pulls structured transaction fields out of raw SMS
// message bodies. Each field is matched against an ordered chain of
// patterns; the first successful match wins. Amount is the only mandatory
// field: when no amount pattern matches, extraction fails with an
// ExtractionError.
package extractor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/relisha1/MoMo-Data-Analysis/internal/dateutils"
	"github.com/relisha1/MoMo-Data-Analysis/internal/parsererror"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// nowFunc supplies the wall-clock fallback for dateless messages.
var nowFunc = time.Now

// Fields holds the structured values extracted from one message body.
type Fields struct {
	Amount   int
	Fee      int
	Date     string // full layout, see dateutils.DateLayoutFull
	Sender   string
	Receiver string
	TxID     string
}

// Amount patterns in priority order: the standard "<n> RWF" phrasing, the
// Kinyarwanda "igura <n> RWF" phrasing, and the inverted "DEPOSIT RWF <n>"
// notation used by bank deposit notifications.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d{1,3}(?:,\d{3})*|\d+) RWF`),
	regexp.MustCompile(`(?i)igura (\d{1,3}(?:,\d{3})*|\d+) RWF`),
	// The comma'd alternative must require at least one group: with nothing
	// after the capture to force backtracking, a leading `\d{1,3}` would
	// otherwise truncate uncomma'd amounts of 4+ digits.
	regexp.MustCompile(`DEPOSIT RWF (\d{1,3}(?:,\d{3})+|\d+)`),
}

var (
	feePattern      = regexp.MustCompile(`(?i)(fee|charges)[:\s]*(\d{1,3}(?:,\d{3})*|\d+) RWF`)
	dateTimePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}`)
	datePattern     = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	senderPattern   = regexp.MustCompile(`from ([\w\s]+)[.,]`)
	receiverPattern = regexp.MustCompile(`to ([\w\s]+)[.,]`)
	txIDPattern     = regexp.MustCompile(`TxId[:\s]*([0-9]+)`)
)

// Extract parses a message body into structured fields. It returns an
// ExtractionError when the amount is missing or non-positive, or when a
// date-like substring turns out not to be a real timestamp.
func Extract(body string) (Fields, error) {
	amount, err := extractAmount(body)
	if err != nil {
		return Fields{}, err
	}

	date, err := extractDate(body)
	if err != nil {
		return Fields{}, err
	}

	return Fields{
		Amount:   amount,
		Fee:      extractFee(body),
		Date:     date,
		Sender:   extractParty(senderPattern, body),
		Receiver: extractParty(receiverPattern, body),
		TxID:     extractTxID(body),
	}, nil
}

func extractAmount(body string) (int, error) {
	for _, re := range amountPatterns {
		m := re.FindStringSubmatch(body)
		if m == nil {
			continue
		}
		amount, err := strconv.Atoi(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			continue
		}
		if amount <= 0 {
			return 0, &parsererror.ExtractionError{
				Field:          "amount",
				RawDataSnippet: snippet(body),
				Reason:         fmt.Sprintf("invalid amount: %d", amount),
			}
		}
		return amount, nil
	}
	return 0, &parsererror.ExtractionError{
		Field:          "amount",
		RawDataSnippet: snippet(body),
		Reason:         "no amount pattern matched",
	}
}

// extractFee never fails: messages without an explicit fee are free.
func extractFee(body string) int {
	m := feePattern.FindStringSubmatch(body)
	if m == nil {
		return 0
	}
	fee, err := strconv.Atoi(strings.ReplaceAll(m[2], ",", ""))
	if err != nil {
		return 0
	}
	return fee
}

func extractDate(body string) (string, error) {
	var date string
	if m := dateTimePattern.FindString(body); m != "" {
		date = m
	} else if m := datePattern.FindString(body); m != "" {
		date = dateutils.NormalizeBareDate(m)
	} else {
		date = dateutils.FormatFull(nowFunc())
		log.WithField("date", date).Warn("No date found in message body, using current time")
	}

	// Re-validate: a date-shaped substring is not necessarily a real date.
	if !dateutils.IsValidFull(date) {
		return "", &parsererror.ExtractionError{
			Field:          "date",
			RawDataSnippet: snippet(body),
			Reason:         fmt.Sprintf("invalid date format: %s", date),
		}
	}
	return date, nil
}

func extractParty(re *regexp.Regexp, body string) string {
	m := re.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func extractTxID(body string) string {
	m := txIDPattern.FindStringSubmatch(body)
	if m == nil {
		return ""
	}
	return m[1]
}

// snippet truncates a message body for inclusion in error messages.
func snippet(body string) string {
	const maxLen = 80
	if len(body) <= maxLen {
		return body
	}
	return body[:maxLen] + "..."
}
