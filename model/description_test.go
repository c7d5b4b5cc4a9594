package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JorgeMoragaCalvo/theses-impl-sub000/model"
)

const exampleDescription = `{
  "variables": [
    {"name": "x1", "type": "continuous", "lower": 0, "upper": null},
    {"name": "x2", "type": "integer",    "lower": 0, "upper": 10},
    {"name": "b",  "type": "binary",     "lower": null, "upper": null}
  ],
  "objective": {"sense": "maximize", "expression": "3*x1 + 5*x2 - b"},
  "constraints": [
    {"name": "c1", "expression": "x1 + 2*x2 <= 10"}
  ]
}`

// TestParseDescription_RoundTrip decodes the wire form and spot-checks the
// resulting model.
func TestParseDescription_RoundTrip(t *testing.T) {
	m, err := model.ParseDescription([]byte(exampleDescription))
	require.NoError(t, err)

	require.Len(t, m.Variables, 3)
	assert.Equal(t, model.Continuous, m.Variables[0].Kind)
	assert.Equal(t, model.Integer, m.Variables[1].Kind)
	assert.Nil(t, m.Variables[0].Upper)
	require.NotNil(t, m.Variables[1].Upper)
	assert.Equal(t, 10.0, *m.Variables[1].Upper)

	assert.Equal(t, model.Maximize, m.Objective.Sense)
	assert.True(t, m.HasIntegrality())
	assert.Equal(t, []string{"x1", "x2", "b"}, m.VariableNames())
}

// TestParseDescription_ShapeErrors verifies malformed descriptions fail
// with ErrBadDescription before any structural validation runs.
func TestParseDescription_ShapeErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"MalformedJSON", `{"variables": [`},
		{"UnknownKind", `{"variables":[{"name":"x","type":"real"}],"objective":{"sense":"minimize","expression":"x"}}`},
		{"MissingName", `{"variables":[{"type":"continuous"}],"objective":{"sense":"minimize","expression":"x"}}`},
		{"UnknownSense", `{"variables":[{"name":"x","type":"continuous"}],"objective":{"sense":"optimize","expression":"x"}}`},
		{"NoVariables", `{"variables":[],"objective":{"sense":"minimize","expression":"1"}}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := model.ParseDescription([]byte(tc.in))
			assert.ErrorIs(t, err, model.ErrBadDescription)
		})
	}
}
