package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// Composed automata (intersection, projection, determinization) build new
// state identities out of the states of the automata they wrap: a pair of
// states, or a set of states. Those identities must be canonical and
// comparable so the same underlying configuration always maps to the same
// state string, however deeply compositions are nested. encodeParts packs
// an ordered sequence of opaque parts with length-prefixing so a part that
// is itself the output of an earlier encodeParts call can never be
// misparsed as a separator.
func encodeParts(parts ...string) string {
	var sb strings.Builder
	for _, p := range parts {
		sb.WriteString(strconv.Itoa(len(p)))
		sb.WriteByte(':')
		sb.WriteString(p)
	}
	return sb.String()
}

func decodeParts(key string) []string {
	var parts []string
	for len(key) > 0 {
		idx := strings.IndexByte(key, ':')
		if idx < 0 {
			panic(newInvariantError("state-key-decode", "malformed state key %q", key))
		}
		n, err := strconv.Atoi(key[:idx])
		if err != nil {
			panic(newInvariantError("state-key-decode", "malformed state key length in %q: %v", key, err))
		}
		start := idx + 1
		if start+n > len(key) {
			panic(newInvariantError("state-key-decode", "truncated state key %q", key))
		}
		parts = append(parts, key[start:start+n])
		key = key[start+n:]
	}
	return parts
}

// setKey canonicalizes an unordered, possibly-duplicated collection of
// state IDs (a macro-state) into a stable key: equal sets always produce
// equal keys regardless of the order states were discovered in.
func setKey(ids []string) string {
	seen := make(map[string]struct{}, len(ids))
	unique := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			unique = append(unique, id)
		}
	}
	sort.Strings(unique)
	return encodeParts(unique...)
}

func decodeSetKey(key string) []string {
	return decodeParts(key)
}

func pairKey(left, right string) string {
	return encodeParts(left, right)
}

func unpairKey(key string) (left, right string) {
	parts := decodeParts(key)
	if len(parts) != 2 {
		panic(newInvariantError("state-key-decode", "expected a pair state key, got %d parts from %q", len(parts), key))
	}
	return parts[0], parts[1]
}
