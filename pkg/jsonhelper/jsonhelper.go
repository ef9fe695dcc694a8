package jsonhelper

import (
	"errors"
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const indent = "    "

// Encode marshals t with four-space indentation and a trailing newline.
func Encode[T any](t T) ([]byte, error) {
	b, err := json.MarshalIndent(t, "", indent)
	if err != nil {
		return nil, fmt.Errorf("couldn't encode %T: %w", t, err)
	}
	return append(b, '\n'), nil
}

func Decode[T any](b []byte) (T, error) {
	var t T
	if err := json.Unmarshal(b, &t); err != nil {
		return t, fmt.Errorf("couldn't decode %T: %w", t, err)
	}
	return t, nil
}

// DecodeOrdered decodes a top-level JSON object whose values are V and
// returns its keys in document order alongside the values.
func DecodeOrdered[V any](b []byte) ([]string, map[string]V, error) {
	iter := jsoniter.ParseBytes(json, b)
	if iter.WhatIsNext() != jsoniter.ObjectValue {
		return nil, nil, errors.New("couldn't decode ordered object: top-level value is not an object")
	}

	keys := make([]string, 0)
	values := make(map[string]V)
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		var v V
		it.ReadVal(&v)
		if it.Error != nil {
			return false
		}
		if _, seen := values[key]; !seen {
			keys = append(keys, key)
		}
		values[key] = v
		return true
	})
	if iter.Error != nil {
		return nil, nil, fmt.Errorf("couldn't decode ordered object: %w", iter.Error)
	}
	return keys, values, nil
}
