package formdata

import (
	"strconv"
	"strings"
)

// Array mutation helpers operate purely on the flat key space: they identify
// every key carrying a numeric segment directly under the array's prefix and
// rewrite the index. Each helper computes its result into a fresh map and
// returns it, so no two entries ever collide mid-rewrite and the input map is
// never observed in a partially-shifted state.

// ArrayInsert inserts v at index under the array at prefix, shifting later
// rows up by one. An index past the end (or negative) appends.
func ArrayInsert(m FlatMap, prefix string, index int, v any) FlatMap {
	n := arrayLen(m, prefix)
	if index < 0 || index > n {
		index = n
	}
	out := FlatMap{}
	for k, val := range m {
		if idx, rest, ok := indexUnder(k, prefix); ok && idx >= index {
			out[rejoin(prefix, idx+1, rest)] = val
			continue
		}
		out[k] = val
	}
	for k, val := range leafEntries(v, joinPath(prefix, itoa(index))) {
		out[k] = val
	}
	return out
}

// ArrayAppend appends v after the last existing row of the array at prefix.
func ArrayAppend(m FlatMap, prefix string, v any) FlatMap {
	return ArrayInsert(m, prefix, arrayLen(m, prefix), v)
}

// ArrayRemove deletes the row at index, shifting later rows down by one.
func ArrayRemove(m FlatMap, prefix string, index int) FlatMap {
	out := FlatMap{}
	for k, val := range m {
		idx, rest, ok := indexUnder(k, prefix)
		if !ok {
			out[k] = val
			continue
		}
		switch {
		case idx == index:
		case idx > index:
			out[rejoin(prefix, idx-1, rest)] = val
		default:
			out[k] = val
		}
	}
	return out
}

// ArrayMove relocates the row at from to position to. Intermediate rows shift
// by one: forward by one when moving up (from > to), back by one when moving
// down (from < to).
func ArrayMove(m FlatMap, prefix string, from, to int) FlatMap {
	if from == to {
		return m.Clone()
	}
	out := FlatMap{}
	for k, val := range m {
		idx, rest, ok := indexUnder(k, prefix)
		if !ok {
			out[k] = val
			continue
		}
		next := idx
		switch {
		case idx == from:
			next = to
		case from < to && idx > from && idx <= to:
			next = idx - 1
		case from > to && idx >= to && idx < from:
			next = idx + 1
		}
		out[rejoin(prefix, next, rest)] = val
	}
	return out
}

// indexUnder splits key as prefix.<index>[.rest] and returns the numeric
// index and remainder when the key belongs to the array at prefix.
func indexUnder(key, prefix string) (idx int, rest string, ok bool) {
	rel, ok := childOf(key, prefix)
	if !ok {
		return 0, "", false
	}
	seg := rel
	if i := strings.Index(rel, PathDelim); i >= 0 {
		seg = rel[:i]
		rest = rel[i+len(PathDelim):]
	}
	if !isIndexSegment(seg) {
		return 0, "", false
	}
	idx, err := strconv.Atoi(seg)
	if err != nil {
		return 0, "", false
	}
	return idx, rest, true
}

func rejoin(prefix string, idx int, rest string) string {
	return joinPath(joinPath(prefix, itoa(idx)), rest)
}

// arrayLen returns one past the highest occupied index of the array at
// prefix, 0 when empty.
func arrayLen(m FlatMap, prefix string) int {
	n := 0
	for k := range m {
		if idx, _, ok := indexUnder(k, prefix); ok && idx+1 > n {
			n = idx + 1
		}
	}
	return n
}

// leafEntries expands a value into flat entries under prefix by its runtime
// shape alone: maps and slices recurse, everything else lands verbatim. Used
// when inserting a row whose schema is not at hand.
func leafEntries(v any, prefix string) FlatMap {
	out := FlatMap{}
	switch t := v.(type) {
	case map[string]any:
		for k, cv := range t {
			for kk, vv := range leafEntries(cv, joinPath(prefix, k)) {
				out[kk] = vv
			}
		}
	case []any:
		for i, cv := range t {
			for kk, vv := range leafEntries(cv, joinPath(prefix, itoa(i))) {
				out[kk] = vv
			}
		}
	default:
		out[prefix] = v
	}
	return out
}
