// Package pricenormrpc frames engine calls as msgpack packets so the
// normalization engine can be served over a byte stream.
package pricenormrpc

import (
	"bytes"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Packet is one framed request or response. Body carries the function name
// and msgpack-encoded argument or result under well-known keys; Code is zero
// on success and negative on protocol errors.
type Packet struct {
	UUID string            `msgpack:"uuid,omitempty"`
	Code int32             `msgpack:"code,omitempty"`
	Body map[string][]byte `msgpack:"b,omitempty"`
}

// PacketBuffer accumulates stream bytes and yields complete packets as they
// become decodable. Partial trailing data stays buffered for the next Feed.
type PacketBuffer struct {
	buf bytes.Buffer
}

func (pb *PacketBuffer) Feed(data []byte) ([]*Packet, error) {
	pb.buf.Write(data)

	var results []*Packet
	for {
		rest := pb.buf.Bytes()
		if len(rest) == 0 {
			break
		}
		r := bytes.NewReader(rest)
		dec := msgpack.NewDecoder(r)
		v := new(Packet)
		if err := dec.Decode(v); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				// not enough data yet, stop
				break
			}
			return results, err
		}
		pb.buf.Next(len(rest) - r.Len())
		results = append(results, v)
	}
	return results, nil
}

// Marshal encodes a packet for the wire.
func Marshal(pkt *Packet) ([]byte, error) {
	return msgpack.Marshal(pkt)
}
