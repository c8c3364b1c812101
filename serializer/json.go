package serializer

import (
	"encoding/json"

	"github.com/bytedance/sonic"
)

type GoJson struct{}

func NewGoJson() *GoJson {
	return new(GoJson)
}

func (GoJson) Encode(val any) ([]byte, error) {
	return json.Marshal(val)
}

func (GoJson) Decode(data []byte, val any) error {
	return json.Unmarshal(data, val)
}

func (GoJson) Name() string {
	return NameJSON
}

// Sonic produces the same bytes as GoJson.
type Sonic struct {
	api sonic.API
}

func NewSonic() *Sonic {
	return &Sonic{api: sonic.ConfigStd}
}

func (s *Sonic) Encode(val any) ([]byte, error) {
	return s.api.Marshal(val)
}

func (s *Sonic) Decode(data []byte, val any) error {
	return s.api.Unmarshal(data, val)
}

func (*Sonic) Name() string {
	return NameSonic
}
