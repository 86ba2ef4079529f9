// Package utils holds lenient parsing helpers shared by the API and
// the batch CLI. Scenario files are written by hand, so the parsers
// accept Hjson and common JSON mistakes before giving up.
package utils

import (
	"encoding/json"
	"fmt"
	"reflect"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
)

// RepairJSON attempts to fix common errors in hand-written JSON:
// single quotes, unquoted keys, trailing commas, unclosed brackets.
// Returns the repaired document or an error if the input is beyond
// saving. The repair library round-trips numbers through float32, so
// repaired values can carry rounding noise around the seventh
// significant digit; prefer the strict JSON or Hjson paths for inputs
// where exact monetary values matter.
func RepairJSON(malformed string) (string, error) {
	repaired, err := jsonrepair.RepairJSON(malformed)
	if err != nil {
		return "", fmt.Errorf("json repair failed: %w", err)
	}
	return repaired, nil
}

// ParseHJSON parses Human-friendly JSON (comments, unquoted keys,
// optional commas, multiline strings) and returns standard JSON.
func ParseHJSON(data string) (string, error) {
	var result interface{}
	if err := hjson.Unmarshal([]byte(data), &result); err != nil {
		return "", fmt.Errorf("hjson parse: %w", err)
	}

	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("hjson to json: %w", err)
	}
	return string(jsonBytes), nil
}

// SmartParse decodes a scenario document into schema, trying strict
// JSON first, then Hjson (the documented hand-written format), then
// JSON repair as a last resort. Repair must stay last: it happily
// rewrites an Hjson document into valid but meaningless JSON, swallowing
// the body into the first string field. Each attempt decodes into a
// fresh value, so a failed attempt never leaves partial state behind.
func SmartParse(input string, schema interface{}) error {
	if tryDecode(input, schema) {
		return nil
	}

	if converted, err := ParseHJSON(input); err == nil {
		if tryDecode(converted, schema) {
			return nil
		}
	}

	if repaired, err := RepairJSON(input); err == nil {
		if tryDecode(repaired, schema) {
			return nil
		}
	}

	return fmt.Errorf("scenario parse: input is not valid JSON, Hjson, or repairable JSON")
}

// tryDecode unmarshals doc into a fresh copy of schema's pointee type
// and copies the value over only on success.
func tryDecode(doc string, schema interface{}) bool {
	rv := reflect.ValueOf(schema)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return json.Unmarshal([]byte(doc), schema) == nil
	}

	fresh := reflect.New(rv.Type().Elem())
	if err := json.Unmarshal([]byte(doc), fresh.Interface()); err != nil {
		return false
	}
	rv.Elem().Set(fresh.Elem())
	return true
}
