// Package normalize rewrites flat transaction documents into the nested shape
// the gateway's transactions endpoint expects. Beginner-friendly payloads put
// card fields at the top level next to a scalar "creditcard" number; the API
// wants them grouped under a single creditcard object.
package normalize

import (
	"encoding/json"
	"strings"
)

// cardFieldKey is the top-level field that triggers normalization. Matching is
// case-sensitive: "creditcard" is the only recognized spelling.
const cardFieldKey = "creditcard"

type fieldMapping struct {
	sources []string
	target  string
}

// cardFieldMappings lists the flattened source fields and where they land in
// the nested card object. Sources are checked in order and the first match
// wins; a later alias for the same target is ignored and left in place.
var cardFieldMappings = []fieldMapping{
	{sources: []string{"cardholder"}, target: "cardholder"},
	{sources: []string{"exp", "expiration"}, target: "expiration"},
	{sources: []string{"cvv2", "cvc"}, target: "cvc"},
	{sources: []string{"street"}, target: "avs_street"},
	{sources: []string{"zip"}, target: "avs_zip"},
}

// Normalize rewrites a flat transaction document into the nested card shape.
// It returns the input untouched unless the top-level "creditcard" field holds
// a non-blank string, which makes the operation idempotent: an already-nested
// document never matches the trigger. The input map is not mutated; when a
// rewrite happens a shallow copy is returned.
func Normalize(doc map[string]any) map[string]any {
	if doc == nil {
		return doc
	}

	raw, ok := doc[cardFieldKey]
	if !ok {
		return doc
	}
	number, ok := raw.(string)
	if !ok {
		// Already nested, or a shape we do not recognize.
		return doc
	}
	number = strings.TrimSpace(number)
	if number == "" {
		return doc
	}

	out := make(map[string]any, len(doc))
	for k, v := range doc {
		out[k] = v
	}

	card := map[string]any{"number": number}
	for _, m := range cardFieldMappings {
		if key, found := matchSource(out, m.sources); found {
			card[m.target] = out[key]
			delete(out, key)
		}
	}
	out[cardFieldKey] = card
	return out
}

// NormalizeJSON applies Normalize to a raw JSON document. Non-object roots
// pass through unchanged; malformed JSON is reported as a parse error.
func NormalizeJSON(data []byte) ([]byte, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return data, nil
	}
	return json.Marshal(Normalize(obj))
}

// matchSource returns the document key matching the first source candidate
// that is present. Candidates are tried in precedence order; each candidate
// matches top-level keys case-insensitively, exact spelling first. When
// several case variants of one candidate coexist, the lexicographically
// smallest key is consumed so the rewrite is deterministic.
func matchSource(doc map[string]any, candidates []string) (string, bool) {
	for _, cand := range candidates {
		if _, ok := doc[cand]; ok {
			return cand, true
		}
		best := ""
		for k := range doc {
			if strings.EqualFold(k, cand) && (best == "" || k < best) {
				best = k
			}
		}
		if best != "" {
			return best, true
		}
	}
	return "", false
}
