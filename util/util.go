package util

import (
	"sort"
	"strings"

	"github.com/spf13/cast"
)

func ForEachMapBySort[V any](in map[string]V, iteratee func(key string, value V)) {
	keys := make([]string, 0, len(in))
	for key := range in {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		iteratee(key, in[key])
	}
}

// MakeStrKey joins keys with ":". It returns "" when a part cannot be
// converted to a string or is empty.
func MakeStrKey(keys ...any) string {
	newKeys := make([]string, 0, len(keys))
	for _, key := range keys {
		s, err := cast.ToStringE(key)
		if err != nil || s == "" {
			return ""
		}
		newKeys = append(newKeys, s)
	}
	return strings.Join(newKeys, ":")
}

// MakeSceneKey is MakeStrKey(scene, key), or the bare key when scene is empty.
func MakeSceneKey(scene string, key any) string {
	if scene == "" {
		return MakeStrKey(key)
	}
	return MakeStrKey(scene, key)
}
