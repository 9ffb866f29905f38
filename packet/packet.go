// Package packet encodes the requests and responses exchanged between
// the table server and its clients. Messages use the protobuf wire
// format described by packet.proto, so any protobuf runtime can speak
// to the server.
//
//	message Request {
//	  Type  type  = 1;
//	  bytes key   = 2;
//	  bytes value = 3;
//	  bool  copy  = 4;
//	}
//
//	message Response {
//	  Status status = 1;
//	  bytes  value  = 2;
//	  uint32 size   = 3;
//	  string error  = 4;
//	}
package packet

import (
	"errors"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

var ErrMalformed = errors.New("packet: malformed message")

type Type int32

const (
	Type_PING Type = iota
	Type_GET
	Type_PUT
	Type_DEL
	Type_SIZE
)

var typeNames = map[Type]string{
	Type_PING: "PING",
	Type_GET:  "GET",
	Type_PUT:  "PUT",
	Type_DEL:  "DEL",
	Type_SIZE: "SIZE",
}

func (t Type) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("Type(%d)", int32(t))
}

type Status int32

const (
	Status_OK Status = iota
	Status_NOT_FOUND
	Status_ERROR
)

func (s Status) String() string {
	switch s {
	case Status_OK:
		return "OK"
	case Status_NOT_FOUND:
		return "NOT_FOUND"
	case Status_ERROR:
		return "ERROR"
	}
	return fmt.Sprintf("Status(%d)", int32(s))
}

const (
	fieldType  protowire.Number = 1
	fieldKey   protowire.Number = 2
	fieldValue protowire.Number = 3
	fieldCopy  protowire.Number = 4

	fieldStatus protowire.Number = 1
	fieldResult protowire.Number = 2
	fieldSize   protowire.Number = 3
	fieldError  protowire.Number = 4
)

type Request struct {
	Type  Type
	Key   []byte
	Value []byte
	// Copy asks the server to store a private copy of Value.
	Copy bool
}

// AppendTo appends the encoded request to b.
func (r *Request) AppendTo(b []byte) []byte {
	if r.Type != 0 {
		b = protowire.AppendTag(b, fieldType, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(r.Type))
	}
	if len(r.Key) > 0 {
		b = protowire.AppendTag(b, fieldKey, protowire.BytesType)
		b = protowire.AppendBytes(b, r.Key)
	}
	if len(r.Value) > 0 {
		b = protowire.AppendTag(b, fieldValue, protowire.BytesType)
		b = protowire.AppendBytes(b, r.Value)
	}
	if r.Copy {
		b = protowire.AppendTag(b, fieldCopy, protowire.VarintType)
		b = protowire.AppendVarint(b, protowire.EncodeBool(true))
	}
	return b
}

// Unmarshal decodes b into r. Bytes fields are copied, so r does not
// alias b.
func (r *Request) Unmarshal(b []byte) error {
	*r = Request{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == fieldType && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			r.Type = Type(v)
			return n, nil
		case num == fieldKey && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			r.Key = append([]byte(nil), v...)
			return n, nil
		case num == fieldValue && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			r.Value = append([]byte(nil), v...)
			return n, nil
		case num == fieldCopy && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			r.Copy = protowire.DecodeBool(v)
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

type Response struct {
	Status Status
	Value  []byte
	Size   uint32
	Error  string
}

func (r *Response) AppendTo(b []byte) []byte {
	if r.Status != 0 {
		b = protowire.AppendTag(b, fieldStatus, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(r.Status))
	}
	if len(r.Value) > 0 {
		b = protowire.AppendTag(b, fieldResult, protowire.BytesType)
		b = protowire.AppendBytes(b, r.Value)
	}
	if r.Size != 0 {
		b = protowire.AppendTag(b, fieldSize, protowire.VarintType)
		b = protowire.AppendVarint(b, uint64(r.Size))
	}
	if r.Error != "" {
		b = protowire.AppendTag(b, fieldError, protowire.BytesType)
		b = protowire.AppendString(b, r.Error)
	}
	return b
}

func (r *Response) Unmarshal(b []byte) error {
	*r = Response{}
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch {
		case num == fieldStatus && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			r.Status = Status(v)
			return n, nil
		case num == fieldResult && typ == protowire.BytesType:
			v, n := protowire.ConsumeBytes(b)
			r.Value = append([]byte(nil), v...)
			return n, nil
		case num == fieldSize && typ == protowire.VarintType:
			v, n := protowire.ConsumeVarint(b)
			if v > 1<<32-1 {
				return 0, fmt.Errorf("%w: size %d overflows uint32", ErrMalformed, v)
			}
			r.Size = uint32(v)
			return n, nil
		case num == fieldError && typ == protowire.BytesType:
			v, n := protowire.ConsumeString(b)
			r.Error = v
			return n, nil
		}
		return protowire.ConsumeFieldValue(num, typ, b), nil
	})
}

// walk calls field for every field in b. field returns the number of
// bytes its value used, negative on a protowire parse error.
func walk(b []byte, field func(protowire.Number, protowire.Type, []byte) (int, error)) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]
		n, err := field(num, typ, b)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("%w: %v", ErrMalformed, protowire.ParseError(n))
		}
		b = b[n:]
	}
	return nil
}
