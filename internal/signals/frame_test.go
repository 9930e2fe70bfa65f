package signals

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameAppendOnly(t *testing.T) {
	frame := NewFrame("checkout")

	require.NoError(t, frame.Append("confirmation", "ABC123"))
	err := frame.Append("confirmation", "XYZ789")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "confirmation")

	// The first write stands.
	v, ok := frame.Get("confirmation")
	require.True(t, ok)
	assert.Equal(t, "ABC123", v)
}

func TestFrameKeysPreserveAppendOrder(t *testing.T) {
	frame := NewFrame("checkout")
	require.NoError(t, frame.Append("status", "success"))
	require.NoError(t, frame.Append("message", "approved"))
	require.NoError(t, frame.Append("confirmation", "ABC123"))

	assert.Equal(t, []string{"status", "message", "confirmation"}, frame.Keys())
}

func TestFrameValuesReturnsCopy(t *testing.T) {
	frame := NewFrame("checkout")
	require.NoError(t, frame.Append("status", "success"))

	values := frame.Values()
	values["status"] = "tampered"

	v, _ := frame.Get("status")
	assert.Equal(t, "success", v)
}

func TestFrameMarshalJSON(t *testing.T) {
	frame := NewFrame("checkout")
	require.NoError(t, frame.Append("confirmation", "ABC123"))

	data, err := json.Marshal(frame)
	require.NoError(t, err)

	var decoded struct {
		Name   string            `json:"name"`
		Values map[string]string `json:"values"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "checkout", decoded.Name)
	assert.Equal(t, "ABC123", decoded.Values["confirmation"])
}
