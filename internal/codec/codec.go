// Package codec implements the compact wire format for specification
// requests: MessagePack encoding wrapped in ZStandard compression.
// Used when requests travel between services instead of staying in-process.
package codec

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// The zstd coders are created once and shared; EncodeAll/DecodeAll are
// goroutine-safe on a reused instance.
var (
	initOnce sync.Once
	encoder  *zstd.Encoder
	decoder  *zstd.Decoder
	initErr  error
)

func initCoders() {
	encoder, initErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if initErr != nil {
		return
	}
	decoder, initErr = zstd.NewReader(nil)
}

// Marshal encodes v as compressed MessagePack.
func Marshal(v interface{}) ([]byte, error) {
	initOnce.Do(initCoders)
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize zstd: %w", initErr)
	}

	data, err := msgpack.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to encode MessagePack: %w", err)
	}

	// MessagePack request payloads compress well; halve the initial buffer.
	dst := make([]byte, 0, len(data)/2)
	return encoder.EncodeAll(data, dst), nil
}

// Unmarshal decodes compressed MessagePack data into v, which must be a
// pointer to the target structure.
func Unmarshal(data []byte, v interface{}) error {
	if len(data) == 0 {
		return fmt.Errorf("empty payload")
	}

	initOnce.Do(initCoders)
	if initErr != nil {
		return fmt.Errorf("failed to initialize zstd: %w", initErr)
	}

	raw, err := decoder.DecodeAll(data, nil)
	if err != nil {
		return fmt.Errorf("failed to decompress: %w", err)
	}

	// Loose decoding keeps interface-typed values predictable: every
	// integer comes back as int64 and every float as float64.
	dec := msgpack.NewDecoder(bytes.NewReader(raw))
	dec.UseLooseInterfaceDecoding(true)
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("failed to decode MessagePack: %w", err)
	}

	return nil
}
