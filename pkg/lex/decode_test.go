package lex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const yamlEvent = `
invocationSource: DialogCodeHook
userId: user-1
bot:
  name: RoboAdvisor
  alias: $LATEST
  version: $LATEST
currentIntent:
  name: recommendPortfolio
  slots:
    firstName: Ada
    age: 30
    investmentAmount: "5000"
    riskLevel: null
sessionAttributes:
  channel: web
`

const jsonEvent = `{
  "invocationSource": "FulfillmentCodeHook",
  "currentIntent": {
    "name": "recommendPortfolio",
    "slots": {"age": 40, "investmentAmount": "10000", "riskLevel": "Low"}
  },
  "sessionAttributes": {}
}`

func TestParseEvent(t *testing.T) {
	t.Run("YAML with scalar slots", func(t *testing.T) {
		ev, err := ParseEvent([]byte(yamlEvent), "yaml")
		require.NoError(t, err)

		assert.Equal(t, SourceDialogCodeHook, ev.InvocationSource)
		assert.Equal(t, "recommendPortfolio", ev.IntentName())
		assert.Equal(t, "user-1", ev.UserID)
		require.NotNil(t, ev.Bot)
		assert.Equal(t, "RoboAdvisor", ev.Bot.Name)

		age, ok := ev.Slots().Get("age")
		assert.True(t, ok)
		assert.Equal(t, "30", age)

		assert.Contains(t, ev.Slots(), "riskLevel")
		assert.Nil(t, ev.Slots()["riskLevel"])
		assert.Equal(t, "web", ev.SessionAttributes["channel"])
	})

	t.Run("JSON with numeric slots", func(t *testing.T) {
		ev, err := ParseEvent([]byte(jsonEvent), "json")
		require.NoError(t, err)

		assert.Equal(t, SourceFulfillmentCodeHook, ev.InvocationSource)
		age, _ := ev.Slots().Get("age")
		assert.Equal(t, "40", age)
	})

	t.Run("Unsupported format", func(t *testing.T) {
		_, err := ParseEvent([]byte(jsonEvent), "toml")
		assert.Error(t, err)
	})

	t.Run("Malformed document", func(t *testing.T) {
		_, err := ParseEvent([]byte("{"), "json")
		assert.Error(t, err)
	})
}

func TestLoadEvent(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "event.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlEvent), 0644))
	jsonPath := filepath.Join(dir, "event.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(jsonEvent), 0644))

	ev, err := LoadEvent(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, SourceDialogCodeHook, ev.InvocationSource)

	ev, err = LoadEvent(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, SourceFulfillmentCodeHook, ev.InvocationSource)

	_, err = LoadEvent(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestEvent_NilSafety(t *testing.T) {
	var ev *Event
	assert.Equal(t, "", ev.IntentName())
	assert.NotNil(t, ev.Slots())

	ev = &Event{}
	assert.Equal(t, "", ev.IntentName())
	assert.Empty(t, ev.Slots())
}
