package brand

import (
	"encoding/json"
	"strings"
)

// extractObject pulls a JSON object out of free-form model text: the
// substring from the first '{' to the last '}' is parsed once, with no
// retries or repair. After parsing, every key in required must be present.
// Returns KindParse if no object can be parsed, KindShape if keys are missing.
func extractObject(op, text string, required ...string) (map[string]json.RawMessage, error) {
	raw, ok := jsonSlice(text, '{', '}')
	if !ok {
		return nil, parseError(op, "no JSON object found in model response")
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, parseError(op, "model response is not valid JSON: %v", err)
	}

	for _, key := range required {
		if _, present := obj[key]; !present {
			return nil, shapeError(op, "model response missing required key %q", key)
		}
	}
	return obj, nil
}

// extractArray pulls a JSON array out of free-form model text using the same
// single-attempt heuristic: first '[' to last ']'.
func extractArray(op, text string) ([]json.RawMessage, error) {
	raw, ok := jsonSlice(text, '[', ']')
	if !ok {
		return nil, parseError(op, "no JSON array found in model response")
	}

	var arr []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &arr); err != nil {
		return nil, parseError(op, "model response is not a valid JSON array: %v", err)
	}
	return arr, nil
}

// jsonSlice returns the substring between the first open delimiter and the
// last close delimiter, inclusive. Models frequently wrap JSON in prose or
// markdown fences; this strips both without caring which.
func jsonSlice(text string, open, close byte) (string, bool) {
	start := strings.IndexByte(text, open)
	end := strings.LastIndexByte(text, close)
	if start < 0 || end < start {
		return "", false
	}
	return text[start : end+1], true
}
