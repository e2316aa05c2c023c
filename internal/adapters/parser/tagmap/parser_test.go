package tagmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `{
  "file_id": "f1",
  "original_path": "manual.docx.xlf",
  "source_language": "en-US",
  "target_language": "it-IT",
  "placeholder_style": "double-curly",
  "units": [
    {
      "unit_id": "1",
      "segments": [
        {
          "segment_id": "1",
          "placeholders_in_order": [
            {
              "placeholder": "{{ph:ph1}}",
              "elem": "ph",
              "id": "ph1",
              "attrs": {"dataRef": "d1", "canCopy": null},
              "originalData": "<br/>"
            },
            {
              "placeholder": "{{pc:1:start}}",
              "elem": "pc",
              "attrs": {}
            }
          ],
          "originalData_bucket": {"d1": "<br/>"}
        }
      ]
    }
  ]
}`

func TestParse(t *testing.T) {
	t.Parallel()

	doc, err := New().Parse([]byte(sample))
	require.NoError(t, err)
	assert.Equal(t, "f1", doc.FileID)
	assert.Equal(t, "double-curly", doc.PlaceholderStyle)
	require.Len(t, doc.Units, 1)
	require.Len(t, doc.Units[0].Segments, 1)

	seg := doc.Units[0].Segments[0]
	assert.Equal(t, "1", seg.SegmentID)
	assert.Equal(t, map[string]string{"d1": "<br/>"}, seg.OriginalData)
	require.Len(t, seg.Placeholders, 2)

	first := seg.Placeholders[0]
	assert.Equal(t, "ph1", first.ID)
	assert.Equal(t, "{{ph:ph1}}", first.Token)
	assert.Equal(t, "ph", first.Elem)
	// Null attribute values flatten to the empty string.
	assert.Equal(t, map[string]string{"dataRef": "d1", "canCopy": ""}, first.Attrs)
	assert.Equal(t, "<br/>", first.OriginalData)

	second := seg.Placeholders[1]
	assert.Equal(t, "", second.ID)
	assert.Nil(t, second.Attrs)
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	_, err := New().Parse([]byte("{"))
	assert.Error(t, err)
}
