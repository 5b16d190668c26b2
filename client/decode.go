// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iancoleman/orderedmap"
)

// Decode parses a JSON document. A top-level object becomes an
// *orderedmap.OrderedMap (nested ones are orderedmap.OrderedMap values), so
// column order survives rendering. Arrays are []any and numbers float64.
func Decode(data []byte) (any, error) {
	data = bytes.TrimSpace(data)
	if !json.Valid(data) {
		return nil, errors.New("failed to decode response: invalid JSON")
	}

	switch data[0] {
	case '{':
		obj := orderedmap.New()
		obj.SetEscapeHTML(false)
		if err := json.Unmarshal(data, obj); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return obj, nil
	case '[':
		var items []json.RawMessage
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		out := make([]any, 0, len(items))
		for _, item := range items {
			v, err := Decode(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return v, nil
}

// asObject returns v as an ordered map when it holds a JSON object.
func asObject(v any) (*orderedmap.OrderedMap, bool) {
	switch t := v.(type) {
	case *orderedmap.OrderedMap:
		return t, true
	case orderedmap.OrderedMap:
		return &t, true
	}
	return nil, false
}
