package portfoliov1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// CodecName is the content-subtype negotiated by clients, sent as application/grpc+json
const CodecName = "json"

func init() {
	encoding.RegisterCodec(Codec{})
}

// Codec encodes protobuf messages with protojson and plain structs with encoding/json
type Codec struct{}

func (Codec) Marshal(v interface{}) ([]byte, error) {
	if msg, ok := v.(proto.Message); ok {
		return protojson.Marshal(msg)
	}
	return json.Marshal(v)
}

func (Codec) Unmarshal(data []byte, v interface{}) error {
	if msg, ok := v.(proto.Message); ok {
		if len(data) == 0 {
			proto.Reset(msg)
			return nil
		}
		return protojson.Unmarshal(data, msg)
	}
	return json.Unmarshal(data, v)
}

func (Codec) Name() string {
	return CodecName
}
