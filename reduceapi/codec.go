package reduceapi

import (
	"github.com/ugorji/go/codec"
)

// formatTag is prefixed to every encoded model so a future binary can
// recognize the wire format it is being asked to decode and report a
// clear SerializationUnavailable rather than a confusing decode error.
const formatTag = byte(1)

// Codec serializes fitted umap.Snapshot values to and from the opaque
// byte sequence the wire contract calls fitted_umap_model.
type Codec interface {
	// Available reports whether the codec is usable. Probed once at
	// process start; see NewMsgpackCodec.
	Available() bool
	Encode(v interface{}) ([]byte, error)
	Decode(data []byte, v interface{}) error
}

// MsgpackCodec implements Codec on top of github.com/ugorji/go/codec's
// msgpack handle.
type MsgpackCodec struct {
	handle    *codec.MsgpackHandle
	available bool
}

// NewMsgpackCodec builds a MsgpackCodec and immediately self-tests it by
// round-tripping a small probe struct. If the round-trip fails, Available
// reports false and every subsequent Encode/Decode call still attempts
// the operation but callers are expected to check Available first and
// short-circuit with SerializationUnavailable.
func NewMsgpackCodec() *MsgpackCodec {
	c := &MsgpackCodec{handle: &codec.MsgpackHandle{}}
	c.available = c.selfTest()
	return c
}

func (c *MsgpackCodec) selfTest() bool {
	type probe struct {
		OK bool
	}
	encoded, err := c.Encode(probe{OK: true})
	if err != nil {
		return false
	}
	var decoded probe
	if err := c.Decode(encoded, &decoded); err != nil {
		return false
	}
	return decoded.OK
}

// Available reports whether the startup self-test succeeded.
func (c *MsgpackCodec) Available() bool {
	return c.available
}

// Encode msgpack-encodes v and prefixes the result with formatTag.
func (c *MsgpackCodec) Encode(v interface{}) ([]byte, error) {
	var out []byte
	enc := codec.NewEncoderBytes(&out, c.handle)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return append([]byte{formatTag}, out...), nil
}

// Decode strips the leading format tag from data and msgpack-decodes the
// remainder into v.
func (c *MsgpackCodec) Decode(data []byte, v interface{}) error {
	if len(data) == 0 {
		return errInvalidFormatTag
	}
	if data[0] != formatTag {
		return errInvalidFormatTag
	}
	dec := codec.NewDecoderBytes(data[1:], c.handle)
	return dec.Decode(v)
}

var errInvalidFormatTag = &Error{Kind: SerializationUnavailable, Message: "unrecognized model format tag"}
