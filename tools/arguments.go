package tools

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ParseArguments decodes a raw JSON argument mapping into the capability's
// input schema and validates it against its struct tags.
func ParseArguments[T any](arguments string) (*T, error) {
	input := new(T)
	if err := json.Unmarshal([]byte(arguments), input); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("invalid arguments: %w", err)
	}
	return input, nil
}
