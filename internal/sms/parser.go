// Package sms reads SMS backup XML exports. Two export variants exist in the
// wild: one carries the message body in a "body" attribute on each <sms>
// element, the other in a <body> child element. Both are supported.
package sms

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/xmlpath.v2"

	"github.com/relisha1/MoMo-Data-Analysis/internal/xmlutils"
)

var log = logrus.New()

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// BodySource selects where the message body is read from.
type BodySource string

const (
	// BodyFromAttribute reads the body attribute of each <sms> element.
	BodyFromAttribute BodySource = "attribute"
	// BodyFromElement reads the <body> child element of each <sms> element.
	BodyFromElement BodySource = "element"
	// BodyAuto prefers the attribute and falls back to the child element.
	BodyAuto BodySource = "auto"
)

// Message is one entry of an SMS export. Body is empty when the entry
// carries none; the pipeline skips such entries.
type Message struct {
	Index   int    // position in the export, for audit references
	Address string // sending shortcode or number, when present
	Body    string
}

var (
	smsPath      = xmlpath.MustCompile("//sms")
	bodyAttrPath = xmlpath.MustCompile("@body")
	bodyElemPath = xmlpath.MustCompile("body")
	addressPath  = xmlpath.MustCompile("@address")
)

// Parse reads every <sms> entry from an XML export.
func Parse(r io.Reader, source BodySource) ([]Message, error) {
	root, err := xmlutils.LoadXML(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SMS export: %w", err)
	}

	var messages []Message
	iter := smsPath.Iter(root)
	for i := 0; iter.Next(); i++ {
		node := iter.Node()
		msg := Message{Index: i}
		if addr, ok := addressPath.String(node); ok {
			msg.Address = addr
		}
		msg.Body = xmlutils.CleanText(bodyText(node, source))
		messages = append(messages, msg)
	}

	log.WithField("count", len(messages)).Info("Parsed SMS export")
	return messages, nil
}

// ParseFile reads every <sms> entry from an XML export file.
func ParseFile(path string, source BodySource) ([]Message, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SMS export: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	return Parse(file, source)
}

func bodyText(node *xmlpath.Node, source BodySource) string {
	switch source {
	case BodyFromAttribute:
		if body, ok := bodyAttrPath.String(node); ok {
			return body
		}
	case BodyFromElement:
		if body, ok := bodyElemPath.String(node); ok {
			return body
		}
	default:
		if body, ok := bodyAttrPath.String(node); ok && body != "" {
			return body
		}
		if body, ok := bodyElemPath.String(node); ok {
			return body
		}
	}
	return ""
}
