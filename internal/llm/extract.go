package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// DelimiterPair marks a reasoning-preamble region in model output. Reasoning
// models wrap their chain of thought in such a pair before the answer.
type DelimiterPair struct {
	Open  string
	Close string
}

// DefaultReasoningDelimiters matches the tag pair emitted by common local
// reasoning models.
var DefaultReasoningDelimiters = DelimiterPair{Open: "<think>", Close: "</think>"}

var (
	fencedJSONRe = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```")
	fencedHTMLRe = regexp.MustCompile("(?si)```(?:html)?\\s*(<!DOCTYPE.*?</html>)\\s*```")
	rawHTMLRe    = regexp.MustCompile("(?si)(<!DOCTYPE.*</html>)")
)

// StripReasoning removes every region delimited by the pair (non-greedy,
// spanning newlines) and trims the result.
func StripReasoning(text string, delims DelimiterPair) string {
	if delims.Open == "" || delims.Close == "" {
		return strings.TrimSpace(text)
	}
	re := regexp.MustCompile("(?s)" + regexp.QuoteMeta(delims.Open) + ".*?" + regexp.QuoteMeta(delims.Close))
	return strings.TrimSpace(re.ReplaceAllString(text, ""))
}

// ExtractJSON recovers a JSON object from free-form model output using the
// default reasoning delimiters. See ExtractJSONWithDelimiters.
func ExtractJSON(text string) (map[string]any, bool) {
	return ExtractJSONWithDelimiters(text, DefaultReasoningDelimiters)
}

// ExtractJSONWithDelimiters recovers a JSON object from free-form model
// output. It strips reasoning preambles, then tries a fenced code block
// containing an object literal, then falls back to the outermost brace span
// in the remaining text. A miss returns (nil, false); it is a valid outcome,
// not an error — callers must provide their own fallback path.
//
// The brace fallback matches the outermost {...} span greedily, which can
// over-match trailing prose. That is an accepted approximation.
func ExtractJSONWithDelimiters(text string, delims DelimiterPair) (map[string]any, bool) {
	text = StripReasoning(text, delims)

	if m := fencedJSONRe.FindStringSubmatch(text); m != nil {
		if obj, ok := parseObject(m[1]); ok {
			return obj, true
		}
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end > start {
		if obj, ok := parseObject(text[start : end+1]); ok {
			return obj, true
		}
	}

	return nil, false
}

func parseObject(candidate string) (map[string]any, bool) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// ExtractHTML recovers a complete HTML document from free-form model output.
// It tries a fenced code block bounded by the doctype marker and the closing
// root tag (case-insensitive), then the same bounded region unfenced, and
// finally returns the trimmed input verbatim. It never fails.
func ExtractHTML(text string) string {
	if m := fencedHTMLRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := rawHTMLRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return strings.TrimSpace(text)
}
