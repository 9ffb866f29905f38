package packet

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

// packetFile mirrors packet.proto.
func packetFile(t *testing.T) protoreflect.FileDescriptor {
	enum := func(name string, values ...string) *descriptorpb.EnumDescriptorProto {
		e := &descriptorpb.EnumDescriptorProto{Name: proto.String(name)}
		for i, v := range values {
			e.Value = append(e.Value, &descriptorpb.EnumValueDescriptorProto{
				Name:   proto.String(v),
				Number: proto.Int32(int32(i)),
			})
		}
		return e
	}
	field := func(name string, num int32, typ descriptorpb.FieldDescriptorProto_Type, typeName string) *descriptorpb.FieldDescriptorProto {
		f := &descriptorpb.FieldDescriptorProto{
			Name:     proto.String(name),
			JsonName: proto.String(name),
			Number:   proto.Int32(num),
			Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
			Type:     typ.Enum(),
		}
		if typeName != "" {
			f.TypeName = proto.String(typeName)
		}
		return f
	}

	fd := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("packet.proto"),
		Package: proto.String("lispy.packet"),
		Syntax:  proto.String("proto3"),
		EnumType: []*descriptorpb.EnumDescriptorProto{
			enum("Type", "PING", "GET", "PUT", "DEL", "SIZE"),
			enum("Status", "OK", "NOT_FOUND", "ERROR"),
		},
		MessageType: []*descriptorpb.DescriptorProto{
			{
				Name: proto.String("Request"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("type", 1, descriptorpb.FieldDescriptorProto_TYPE_ENUM, ".lispy.packet.Type"),
					field("key", 2, descriptorpb.FieldDescriptorProto_TYPE_BYTES, ""),
					field("value", 3, descriptorpb.FieldDescriptorProto_TYPE_BYTES, ""),
					field("copy", 4, descriptorpb.FieldDescriptorProto_TYPE_BOOL, ""),
				},
			},
			{
				Name: proto.String("Response"),
				Field: []*descriptorpb.FieldDescriptorProto{
					field("status", 1, descriptorpb.FieldDescriptorProto_TYPE_ENUM, ".lispy.packet.Status"),
					field("value", 2, descriptorpb.FieldDescriptorProto_TYPE_BYTES, ""),
					field("size", 3, descriptorpb.FieldDescriptorProto_TYPE_UINT32, ""),
					field("error", 4, descriptorpb.FieldDescriptorProto_TYPE_STRING, ""),
				},
			},
		},
	}
	file, err := protodesc.NewFile(fd, nil)
	require.NoError(t, err)
	return file
}

func TestRequestMatchesProtoRuntime(t *testing.T) {
	md := packetFile(t).Messages().ByName("Request")
	fields := md.Fields()

	in := Request{Type: Type_PUT, Key: []byte("key"), Value: []byte("value"), Copy: true}
	msg := dynamicpb.NewMessage(md)
	require.NoError(t, proto.Unmarshal(in.AppendTo(nil), msg))
	require.Equal(t, protoreflect.EnumNumber(Type_PUT), msg.Get(fields.ByName("type")).Enum())
	require.Equal(t, "key", string(msg.Get(fields.ByName("key")).Bytes()))
	require.Equal(t, "value", string(msg.Get(fields.ByName("value")).Bytes()))
	require.True(t, msg.Get(fields.ByName("copy")).Bool())

	msg = dynamicpb.NewMessage(md)
	msg.Set(fields.ByName("type"), protoreflect.ValueOfEnum(protoreflect.EnumNumber(Type_DEL)))
	msg.Set(fields.ByName("key"), protoreflect.ValueOfBytes([]byte("gone")))
	b, err := proto.Marshal(msg)
	require.NoError(t, err)

	var out Request
	require.NoError(t, out.Unmarshal(b))
	require.Equal(t, Request{Type: Type_DEL, Key: []byte("gone")}, out)
}

func TestResponseMatchesProtoRuntime(t *testing.T) {
	md := packetFile(t).Messages().ByName("Response")
	fields := md.Fields()

	in := Response{Status: Status_ERROR, Value: []byte{0, 1}, Size: 1 << 16, Error: "bad"}
	msg := dynamicpb.NewMessage(md)
	require.NoError(t, proto.Unmarshal(in.AppendTo(nil), msg))
	require.Equal(t, protoreflect.EnumNumber(Status_ERROR), msg.Get(fields.ByName("status")).Enum())
	require.Equal(t, []byte{0, 1}, msg.Get(fields.ByName("value")).Bytes())
	require.Equal(t, uint64(1<<16), msg.Get(fields.ByName("size")).Uint())
	require.Equal(t, "bad", msg.Get(fields.ByName("error")).String())

	msg = dynamicpb.NewMessage(md)
	msg.Set(fields.ByName("status"), protoreflect.ValueOfEnum(protoreflect.EnumNumber(Status_NOT_FOUND)))
	msg.Set(fields.ByName("size"), protoreflect.ValueOfUint32(4))
	b, err := proto.Marshal(msg)
	require.NoError(t, err)

	var out Response
	require.NoError(t, out.Unmarshal(b))
	require.Equal(t, Response{Status: Status_NOT_FOUND, Size: 4}, out)
}
