// Package apiconnect wires the tripwiser.v1 services to Connect handlers and
// clients. Messages are the plain structs of package api, carried by a JSON
// codec instead of generated protobuf types.
package apiconnect

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// codecName replaces Connect's built-in protojson codec, which only accepts
// proto.Message values.
const codecName = "json"

type jsonCodec struct{}

func (jsonCodec) Name() string { return codecName }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}

// WithJSON registers the JSON codec. Handlers and clients built by this
// package apply it automatically; it is exported for custom clients.
func WithJSON() connect.Option {
	return connect.WithCodec(jsonCodec{})
}
