package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlockStripsFences(t *testing.T) {
	assert.Equal(t, `{"key": "value"}`, CleanJSONBlock("```json\n{\"key\": \"value\"}\n```"))
	assert.Equal(t, `{"key": "value"}`, CleanJSONBlock("```\n{\"key\": \"value\"}\n```"))
	assert.Equal(t, `{"key": "value"}`, CleanJSONBlock("```javascript\n{\"key\": \"value\"}\n```"))
	assert.Equal(t, `{"key": "value"}`, CleanJSONBlock(`{"key": "value"}`))
}

func TestCleanJSONBlockStripsPreambleAndTrailer(t *testing.T) {
	assert.Equal(t, `{"match_percentage": 72}`,
		CleanJSONBlock("Here is the analysis you asked for:\n{\"match_percentage\": 72}"))
	assert.Equal(t, `{"keywords": ["go"]}`,
		CleanJSONBlock("{\"keywords\": [\"go\"]}\n\nLet me know if you need anything else!"))
	assert.Equal(t, `["item1", "item2"]`,
		CleanJSONBlock("The extracted items:\n[\"item1\", \"item2\"]"))
}

func TestCleanJSONBlockKeepsNestedStructure(t *testing.T) {
	assert.Equal(t, `{"outer": {"inner": {"deep": "value"}}}`,
		CleanJSONBlock("Output:\n{\"outer\": {\"inner\": {\"deep\": \"value\"}}}"))
	assert.Equal(t, `{"suggestions": [{"id": 1}, {"id": 2}]}`,
		CleanJSONBlock(`{"suggestions": [{"id": 1}, {"id": 2}]} trailing note`))
}

func TestCleanJSONBlockHonorsStringLiterals(t *testing.T) {
	// Braces and escaped quotes inside JSON strings must not end the scan.
	assert.Equal(t, `{"template": "Hello {name}!"}`,
		CleanJSONBlock(`Result: {"template": "Hello {name}!"}`))
	assert.Equal(t, `{"message": "He said \"done\""}`,
		CleanJSONBlock("{\"message\": \"He said \\\"done\\\"\"} extra"))
}

func TestExtractJSONObject(t *testing.T) {
	assert.Equal(t, `{"key": "value"}`, extractJSONObject(`{"key": "value"} and more text`))
	assert.Equal(t, `{"items": [1, 2, 3]}`, extractJSONObject(`{"items": [1, 2, 3]}`))
	assert.Equal(t, "", extractJSONObject("not json"))
	assert.Equal(t, "", extractJSONObject(""))
	assert.Equal(t, "", extractJSONObject(`{"unterminated": `))
}

func TestExtractJSONArray(t *testing.T) {
	assert.Equal(t, `[[1, 2], [3, 4]]`, extractJSONArray(`[[1, 2], [3, 4]]`))
	assert.Equal(t, `[{"id": 1}]`, extractJSONArray(`[{"id": 1}] extra stuff`))
	assert.Equal(t, "", extractJSONArray("not an array"))
	assert.Equal(t, "", extractJSONArray(""))
}
