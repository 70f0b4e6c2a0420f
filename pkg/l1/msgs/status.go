package msgs

import (
	"github.com/golang/protobuf/proto"
)

// LedStatus reports the LED level and blink rate.
type LedStatus struct {
	On   bool   `protobuf:"varint,1,opt,name=on,proto3" json:"on,omitempty"`
	Rate uint64 `protobuf:"varint,2,opt,name=rate,proto3" json:"rate,omitempty"`
	// Seq increases with every published status.
	Seq uint32 `protobuf:"varint,3,opt,name=seq,proto3" json:"seq,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *LedStatus) ProtoMessage() {}

// Reset implements proto.Message.
func (m *LedStatus) Reset() { *m = LedStatus{} }

// String implements proto.Message.
func (m *LedStatus) String() string { return proto.CompactTextString(m) }

// DeviceMeta describes the expander, published retained so that
// connectors can discover it.
type DeviceMeta struct {
	ID          string `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Description string `protobuf:"bytes,2,opt,name=description,proto3" json:"description,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *DeviceMeta) ProtoMessage() {}

// Reset implements proto.Message.
func (m *DeviceMeta) Reset() { *m = DeviceMeta{} }

// String implements proto.Message.
func (m *DeviceMeta) String() string { return proto.CompactTextString(m) }

// Encode serializes a message.
func Encode(msg proto.Message) ([]byte, error) {
	return proto.Marshal(msg)
}

// DecodeLedStatus parses a LedStatus.
func DecodeLedStatus(payload []byte) (*LedStatus, error) {
	var m LedStatus
	if err := proto.Unmarshal(payload, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// DecodeDeviceMeta parses a DeviceMeta.
func DecodeDeviceMeta(payload []byte) (*DeviceMeta, error) {
	var m DeviceMeta
	if err := proto.Unmarshal(payload, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
