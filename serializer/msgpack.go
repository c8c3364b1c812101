package serializer

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

// Msgpack falls back to json tags for fields without a msgpack tag.
type Msgpack struct{}

func NewMsgpack() *Msgpack {
	return new(Msgpack)
}

func (Msgpack) Encode(val any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	enc.UseCompactInts(true)
	if err := enc.Encode(val); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Msgpack) Decode(data []byte, val any) error {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	dec.SetCustomStructTag("json")
	return dec.Decode(val)
}

func (Msgpack) Name() string {
	return NameMsgpack
}
