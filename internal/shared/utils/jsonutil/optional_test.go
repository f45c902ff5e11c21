package jsonutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptionalString_Unmarshal(t *testing.T) {
	type payload struct {
		Field OptionalString `json:"field"`
	}

	t.Run("absent field", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.Field.Present)
		assert.Nil(t, p.Field.Value)
	})

	t.Run("explicit null", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"field": null}`), &p))
		assert.True(t, p.Field.Present)
		assert.Nil(t, p.Field.Value)
	})

	t.Run("value", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"field": "/uploads/x.png"}`), &p))
		assert.True(t, p.Field.Present)
		require.NotNil(t, p.Field.Value)
		assert.Equal(t, "/uploads/x.png", *p.Field.Value)
	})

	t.Run("non-string value fails", func(t *testing.T) {
		var p payload
		assert.Error(t, json.Unmarshal([]byte(`{"field": 12}`), &p))
	})
}

func TestOptionalString_String(t *testing.T) {
	v := "abc"
	assert.Equal(t, "abc", OptionalString{Present: true, Value: &v}.String())
	assert.Equal(t, "", OptionalString{Present: true}.String())
	assert.Equal(t, "", OptionalString{}.String())
}
