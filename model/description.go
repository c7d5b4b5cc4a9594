package model

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrBadDescription indicates the wire description could not be decoded
// into a well-shaped model: malformed JSON, a missing required field, or
// an unrecognized variable kind / objective sense.
var ErrBadDescription = errors.New("model: invalid model description")

// shapeCheck validates struct tags on decoded descriptions. A single
// validator instance caches struct metadata and is safe for concurrent
// use.
var shapeCheck = validator.New()

// ParseDescription decodes the JSON model description into a Model and
// checks its shape: names present, variable kinds and objective sense
// among the recognized values. Shape failures are reported through
// ErrBadDescription and are distinct from the structural findings of
// Validate, which operates on an already well-shaped model.
func ParseDescription(data []byte) (*Model, error) {
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDescription, err)
	}
	if err := shapeCheck.Struct(&m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadDescription, err)
	}
	return &m, nil
}
