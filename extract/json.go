package extract

import (
	"encoding/json"
	"strings"

	"github.com/fwojciec/leadscout"
	"github.com/kaptinlin/jsonrepair"
)

// maxObjectDepth bounds the brace scan. Model replies are flat records;
// anything deeper is garbage, not data.
const maxObjectDepth = 64

// FirstJSONObject locates the first balanced top-level JSON object within
// free-form text. Models routinely prepend commentary to their replies, and
// object values may nest, so this is a depth-counting scan that is aware of
// strings and escape sequences rather than a greedy regex.
func FirstJSONObject(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	for start >= 0 {
		if obj, ok := scanObject(s[start:]); ok {
			return obj, true
		}
		next := strings.IndexByte(s[start+1:], '{')
		if next < 0 {
			break
		}
		start += 1 + next
	}
	return "", false
}

// scanObject scans s, which starts with '{', for a balanced object.
func scanObject(s string) (string, bool) {
	var (
		depth    int
		inString bool
		escaped  bool
	)

	for i := 0; i < len(s); i++ {
		c := s[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			depth++
			if depth > maxObjectDepth {
				return "", false
			}
		case '}':
			depth--
			if depth == 0 {
				return s[:i+1], true
			}
		}
	}
	return "", false
}

// DecodeReply decodes the first JSON object in a model reply into v.
// Malformed-but-recognizable JSON (single quotes, trailing commas, bare
// keys) is repaired and retried before giving up.
func DecodeReply(reply string, v any) error {
	raw, ok := FirstJSONObject(reply)
	if !ok {
		return leadscout.Errorf(leadscout.EINTERNAL, "no JSON object in model reply")
	}

	err := json.Unmarshal([]byte(raw), v)
	if err == nil {
		return nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(raw)
	if repairErr != nil {
		return leadscout.Errorf(leadscout.EINTERNAL, "model reply is not decodable JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(repaired), v); err != nil {
		return leadscout.Errorf(leadscout.EINTERNAL, "model reply is not decodable JSON: %v", err)
	}
	return nil
}
