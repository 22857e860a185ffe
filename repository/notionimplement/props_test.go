package notionimplement

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterJSONShapes(t *testing.T) {
	day := time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)

	b, err := json.Marshal(dateEqualsFilter("Date", day))
	require.NoError(t, err)
	assert.JSONEq(t, `{"property":"Date","date":{"equals":"2026-08-25"}}`, string(b))

	b, err = json.Marshal(titleEqualsFilter("Name", "Workout"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"property":"Name","title":{"equals":"Workout"}}`, string(b))

	b, err = json.Marshal(andFilter(
		dateEqualsFilter("Date", day),
		titleEqualsFilter("Name", "Workout"),
	))
	require.NoError(t, err)
	assert.JSONEq(t, `{"and":[
		{"property":"Date","date":{"equals":"2026-08-25"}},
		{"property":"Name","title":{"equals":"Workout"}}
	]}`, string(b))
}

func TestWritePropsMarshalZeroValues(t *testing.T) {
	// 数字 0 和布尔 false 也要落到请求里，不能被 omitempty 吞掉
	b, err := json.Marshal(numberProp(0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"number":0}`, string(b))

	b, err = json.Marshal(checkboxProp(false))
	require.NoError(t, err)
	assert.JSONEq(t, `{"checkbox":false}`, string(b))
}

func TestReadPropsMissingDefaults(t *testing.T) {
	props := properties{}

	assert.Equal(t, "", props.title("Name"))
	assert.Equal(t, "", props.richText("AI comment"))
	assert.Equal(t, "", props.selectName("Status"))
	assert.Equal(t, 0, props.number("Rollovers"))
	assert.False(t, props.checkbox("Auto-roll?"))
	assert.True(t, props.day("Date").IsZero())
}

func TestReadDayTruncatesDatetime(t *testing.T) {
	props := properties{
		"Date": {Date: &dateValue{Start: "2026-08-25T10:30:00.000+03:00"}},
	}

	day := props.day("Date")
	assert.Equal(t, "2026-08-25", day.Format("2006-01-02"))
}

func TestFirstFragmentPrefersPlainText(t *testing.T) {
	fragments := []richTextFragment{
		{PlainText: "plain", Text: &textValue{Content: "raw"}},
	}
	assert.Equal(t, "plain", firstFragment(fragments))

	fragments = []richTextFragment{
		{Text: &textValue{Content: "raw"}},
	}
	assert.Equal(t, "raw", firstFragment(fragments))
}

func TestBlocksJSONShape(t *testing.T) {
	b, err := json.Marshal(heading3Block("Advice of the day"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"object":"block",
		"type":"heading_3",
		"heading_3":{"rich_text":[{"type":"text","text":{"content":"Advice of the day"}}]}
	}`, string(b))
}
