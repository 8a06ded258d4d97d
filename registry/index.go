// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package registry

import "sort"

// index is a set of identifiers currently in use
type index map[string]struct{}

func (ix index) has(key string) bool {
	_, ok := ix[key]
	return ok
}

func (ix index) add(key string) {
	ix[key] = struct{}{}
}

func (ix index) remove(key string) {
	delete(ix, key)
}

func (ix index) keys() []string {
	keys := make([]string, 0, len(ix))
	for k := range ix {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
