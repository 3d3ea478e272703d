package settings

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"
	"github.com/tidwall/jsonc"
)

// Parse decodes a JSON settings document into a Tree, keeping the document's
// key order. Comments and trailing commas are accepted.
func Parse(data []byte) (*Tree, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmpty
	}

	data = jsonc.ToJSON(data)

	// jsonparser is lenient about malformed input, so reject it up front.
	if !json.Valid(data) {
		return nil, syntaxError(data)
	}

	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	if dataType != jsonparser.Object {
		return nil, fmt.Errorf("%w: found %s", ErrRootNotObject, dataType)
	}

	return decodeObject(value)
}

func syntaxError(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return ErrSyntax
}

func decodeObject(data []byte) (*Tree, error) {
	tree := NewTree()

	err := jsonparser.ObjectEach(data, func(key, value []byte, dataType jsonparser.ValueType, _ int) error {
		v, err := decodeValue(value, dataType)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}

		tree.Set(string(key), v)

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	return tree, nil
}

func decodeArray(data []byte) ([]any, error) {
	out := []any{}

	var firstErr error

	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if firstErr != nil {
			return
		}

		if err != nil {
			firstErr = err
			return
		}

		v, err := decodeValue(value, dataType)
		if err != nil {
			firstErr = err
			return
		}

		out = append(out, v)
	})
	if err != nil {
		return nil, err
	}

	if firstErr != nil {
		return nil, firstErr
	}

	return out, nil
}

func decodeValue(value []byte, dataType jsonparser.ValueType) (any, error) {
	switch dataType {
	case jsonparser.Object:
		return decodeObject(value)
	case jsonparser.Array:
		return decodeArray(value)
	case jsonparser.String:
		return jsonparser.ParseString(value)
	case jsonparser.Number:
		return json.Number(value), nil
	case jsonparser.Boolean:
		return jsonparser.ParseBoolean(value)
	case jsonparser.Null:
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported value %q", value)
	}
}
