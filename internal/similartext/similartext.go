// Package similartext builds "maybe you mean" suggestions for not-found
// errors, so a typo in a column or table name points at its likely fix.
package similartext

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxDistance returns how far a name can be from src and still be worth
// suggesting. Any candidate further than half the length of the input is
// ignored.
func maxDistance(src string) int {
	return len(src) / 2
}

// Find returns a string with suggestions taken from names that are similar
// to src, in the form ", maybe you mean a or b?". It returns an empty
// string when nothing is close enough.
func Find(names []string, src string) string {
	if len(names) == 0 || src == "" {
		return ""
	}

	minDistance := -1
	var matches []string
	for _, name := range names {
		dist := levenshtein.ComputeDistance(name, src)
		switch {
		case minDistance == -1 || dist < minDistance:
			minDistance = dist
			matches = []string{name}
		case dist == minDistance:
			matches = append(matches, name)
		}
	}

	if minDistance > maxDistance(src) {
		return ""
	}

	return fmt.Sprintf(", maybe you mean %s?", strings.Join(matches, " or "))
}

// FindFromMap does the same as Find but taking a map whose keys are strings
// instead of a string slice.
func FindFromMap(names interface{}, src string) string {
	rv := reflect.ValueOf(names)
	if rv.Kind() != reflect.Map {
		panic("Implementation error: non map used as argument to FindFromMap")
	}

	var keys []string
	for _, k := range rv.MapKeys() {
		if k.Kind() != reflect.String {
			panic("Implementation error: non string key for map used as argument to FindFromMap")
		}
		keys = append(keys, k.String())
	}

	return Find(keys, src)
}
