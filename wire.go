package queryspec

import (
	"github.com/queryspec/queryspec-go/filter"
	"github.com/queryspec/queryspec-go/internal/codec"
)

// EncodeRequest serializes a specification request to the compact wire
// format (MessagePack with ZStandard compression). Use it when shipping
// requests between services; for human-readable payloads use filter.Marshal.
func EncodeRequest(req *filter.Request) ([]byte, error) {
	return codec.Marshal(req)
}

// DecodeRequest deserializes a request produced by EncodeRequest.
// Combinator defaults are not applied here: the encoded form carries the
// explicit values the sender set.
func DecodeRequest(data []byte) (*filter.Request, error) {
	req := filter.NewRequest()
	if err := codec.Unmarshal(data, req); err != nil {
		return nil, err
	}
	return req, nil
}
