package reduceapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMsgpackCodecRoundTrip(t *testing.T) {
	assert := assert.New(t)

	c := NewMsgpackCodec()
	assert.True(c.Available())

	type payload struct {
		Name  string
		Value int
	}
	encoded, err := c.Encode(payload{Name: "x", Value: 42})
	assert.NoError(err)
	assert.Equal(formatTag, encoded[0])

	var decoded payload
	err = c.Decode(encoded, &decoded)
	assert.NoError(err)
	assert.Equal("x", decoded.Name)
	assert.Equal(42, decoded.Value)
}

func TestMsgpackCodecRejectsBadTag(t *testing.T) {
	assert := assert.New(t)

	c := NewMsgpackCodec()
	var decoded struct{}
	err := c.Decode([]byte{99, 1, 2, 3}, &decoded)
	assert.Error(err)

	err = c.Decode(nil, &decoded)
	assert.Error(err)
}
