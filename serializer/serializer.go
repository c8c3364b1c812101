package serializer

import "strings"

type Serializer interface {
	Encode(val any) ([]byte, error)
	Decode(data []byte, val any) error
	Name() string
}

const (
	NameJSON    = "json"
	NameSonic   = "sonic"
	NameMsgpack = "msgpack"
)

// ByName maps a config value to a serializer, GoJson for unknown names.
func ByName(name string) Serializer {
	switch strings.ToLower(name) {
	case NameSonic:
		return NewSonic()
	case NameMsgpack:
		return NewMsgpack()
	default:
		return NewGoJson()
	}
}
