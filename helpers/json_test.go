package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/barh/engine"
)

func TestParseJSONArray(t *testing.T) {
	data, err := ParseJSON([]byte(`[{"name":"a","value":0.5},{"name":"b","value":0.3},{"name":"c","value":0.2}]`))
	require.NoError(t, err)
	require.Len(t, data, 3)

	shaped := engine.Shape(data, 1, true)
	require.Len(t, shaped, 2)
	assert.Equal(t, "Otros", shaped[1].Name)
}

func TestParseJSONProps(t *testing.T) {
	data, err := ParseJSON([]byte(`{"data":[{"name":"a","x":1,"y":2},{"name":"b","y":3,"z":4}]}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, engine.SeriesKeys(data))
}

func TestParseJSONMissingData(t *testing.T) {
	for _, in := range []string{``, `{}`, `{"data":null}`, "  \n"} {
		data, err := ParseJSON([]byte(in))
		require.NoError(t, err, in)
		assert.NotNil(t, data, in)
		assert.Empty(t, data, in)
	}
}

func TestParseJSONInvalid(t *testing.T) {
	_, err := ParseJSON([]byte(`[{"name":"a","x":"oops"}]`))
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "json", perr.Source)
}
