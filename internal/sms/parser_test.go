package sms

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const attributeExport = `<?xml version="1.0" encoding="UTF-8"?>
<smses count="3">
  <sms address="M-Money" body="You have received 5,000 RWF from John Doe." date="1715351458724" />
  <sms address="M-Money" body="TxId: 123. Your payment of 2,000 RWF was completed." date="1715351506754" />
  <sms address="M-Money" date="1715351522202" />
</smses>`

const elementExport = `<?xml version="1.0" encoding="UTF-8"?>
<smses>
  <sms>
    <address>M-Money</address>
    <body>You have received 5,000 RWF from John Doe.</body>
  </sms>
  <sms>
    <body>
      You have transferred
      2,000 RWF to Jane Doe.
    </body>
  </sms>
</smses>`

func TestParseAttributeVariant(t *testing.T) {
	messages, err := Parse(strings.NewReader(attributeExport), BodyFromAttribute)
	require.NoError(t, err)
	require.Len(t, messages, 3)

	assert.Equal(t, 0, messages[0].Index)
	assert.Equal(t, "M-Money", messages[0].Address)
	assert.Equal(t, "You have received 5,000 RWF from John Doe.", messages[0].Body)
	assert.Equal(t, "TxId: 123. Your payment of 2,000 RWF was completed.", messages[1].Body)

	// Entries without a body are kept; the pipeline audits and skips them.
	assert.Empty(t, messages[2].Body)
}

func TestParseElementVariant(t *testing.T) {
	messages, err := Parse(strings.NewReader(elementExport), BodyFromElement)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	assert.Equal(t, "You have received 5,000 RWF from John Doe.", messages[0].Body)
	// Whitespace inside the element is normalized.
	assert.Equal(t, "You have transferred 2,000 RWF to Jane Doe.", messages[1].Body)
}

func TestParseAutoDetect(t *testing.T) {
	attrMessages, err := Parse(strings.NewReader(attributeExport), BodyAuto)
	require.NoError(t, err)
	assert.Equal(t, "You have received 5,000 RWF from John Doe.", attrMessages[0].Body)

	elemMessages, err := Parse(strings.NewReader(elementExport), BodyAuto)
	require.NoError(t, err)
	assert.Equal(t, "You have received 5,000 RWF from John Doe.", elemMessages[0].Body)
}

func TestParseWrongSourceYieldsEmptyBodies(t *testing.T) {
	messages, err := Parse(strings.NewReader(attributeExport), BodyFromElement)
	require.NoError(t, err)
	for _, m := range messages {
		assert.Empty(t, m.Body)
	}
}

func TestParseInvalidXML(t *testing.T) {
	_, err := Parse(strings.NewReader("not xml at all <"), BodyAuto)
	assert.Error(t, err)
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile("does/not/exist.xml", BodyAuto)
	assert.Error(t, err)
}
