package processor

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Invocation is one tool call parsed from assistant text.
type Invocation struct {
	// TagName is the invoke name as written in the text, before any
	// normalization. Surfaced to clients as metadata.xml_tag_name.
	TagName string

	// Name is the tool name the registry resolves.
	Name string

	// Arguments is the JSON-encoded parameter object.
	Arguments string
}

// Block patterns (compiled once). (?s) lets bodies span lines.
var (
	functionCallsPattern = regexp.MustCompile(`(?s)<function_calls>(.*?)</function_calls>`)
	invokePattern        = regexp.MustCompile(`(?s)<invoke\s+name="([^"]+)"\s*>(.*?)</invoke>`)
	parameterPattern     = regexp.MustCompile(`(?s)<parameter\s+name="([^"]+)"\s*>(.*?)</parameter>`)
)

// terminatingTags end the outer run loop when they appear anywhere in
// assistant text, regardless of finish reason.
var terminatingTags = []string{"</ask>", "</complete>"}

// ParseInvocations extracts tool invocations from assistant text. Every
// <function_calls> block is scanned; invocations are returned in document
// order. Text outside the blocks is ignored — the caller persists the full
// assistant text unchanged.
//
// Parameter values are literal strings unless they decode as JSON: objects,
// arrays, numbers, lowercase booleans, and null become their decoded values
// in the arguments object.
func ParseInvocations(text string) []Invocation {
	if text == "" || !strings.Contains(text, "<function_calls>") {
		return nil
	}

	var invocations []Invocation
	for _, block := range functionCallsPattern.FindAllStringSubmatch(text, -1) {
		for _, inv := range invokePattern.FindAllStringSubmatch(block[1], -1) {
			name := strings.TrimSpace(inv[1])
			if name == "" {
				continue
			}

			args := map[string]any{}
			for _, param := range parameterPattern.FindAllStringSubmatch(inv[2], -1) {
				key := strings.TrimSpace(param[1])
				if key == "" {
					continue
				}
				args[key] = decodeParameterValue(param[2])
			}

			encoded, err := json.Marshal(args)
			if err != nil {
				// Arguments built from strings and decoded JSON always
				// marshal; guard anyway so one bad invoke cannot drop
				// the whole block.
				encoded = []byte("{}")
			}

			invocations = append(invocations, Invocation{
				TagName:   inv[1],
				Name:      name,
				Arguments: string(encoded),
			})
		}
	}
	return invocations
}

// decodeParameterValue interprets a parameter body. Objects and arrays
// arrive JSON-encoded and booleans lowercase; everything else is a
// literal string, so "123" stays "123" and quotes are kept.
func decodeParameterValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	switch trimmed {
	case "true":
		return true
	case "false":
		return false
	}
	if !strings.HasPrefix(trimmed, "{") && !strings.HasPrefix(trimmed, "[") {
		return trimmed
	}

	var decoded any
	if err := json.Unmarshal([]byte(trimmed), &decoded); err == nil {
		return decoded
	}
	return trimmed
}

// ContainsTerminatingTag reports whether the assistant text carries a
// closing tag that ends the run.
func ContainsTerminatingTag(text string) bool {
	for _, tag := range terminatingTags {
		if strings.Contains(text, tag) {
			return true
		}
	}
	return false
}
