package report

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/dynamicpb"
)

// ProtoContentType is the media type of a marshaled report.
const ProtoContentType = "application/x-protobuf"

// reportDescriptor describes huffman.report.v1.Report.
// It carries statistics only; codes are never included.
var reportDescriptor = mustBuildDescriptor()

func scalarField(name string, number int32, typ descriptorpb.FieldDescriptorProto_Type) *descriptorpb.FieldDescriptorProto {
	return &descriptorpb.FieldDescriptorProto{
		Name:   proto.String(name),
		Number: proto.Int32(number),
		Label:  descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
		Type:   typ.Enum(),
	}
}

func mustBuildDescriptor() protoreflect.MessageDescriptor {
	file := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("huffman/report/v1/report.proto"),
		Package: proto.String("huffman.report.v1"),
		Syntax:  proto.String("proto3"),
		MessageType: []*descriptorpb.DescriptorProto{{
			Name: proto.String("Report"),
			Field: []*descriptorpb.FieldDescriptorProto{
				scalarField("original_bits", 1, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
				scalarField("compressed_bits", 2, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
				scalarField("reduction_percent", 3, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
				scalarField("distinct_symbols", 4, descriptorpb.FieldDescriptorProto_TYPE_UINT32),
				scalarField("entropy_bits", 5, descriptorpb.FieldDescriptorProto_TYPE_DOUBLE),
				scalarField("packed_bytes", 6, descriptorpb.FieldDescriptorProto_TYPE_UINT64),
				scalarField("checksum", 7, descriptorpb.FieldDescriptorProto_TYPE_FIXED64),
			},
		}},
	}

	fd, err := protodesc.NewFile(file, nil)
	if err != nil {
		panic(fmt.Sprintf("report descriptor: %v", err))
	}
	return fd.Messages().ByName("Report")
}

// Descriptor returns the protobuf descriptor of the marshaled report.
func Descriptor() protoreflect.MessageDescriptor {
	return reportDescriptor
}

// Message converts the report into a dynamic protobuf message.
func (r *Report) Message() proto.Message {
	msg := dynamicpb.NewMessage(reportDescriptor)
	fields := reportDescriptor.Fields()

	msg.Set(fields.ByName("original_bits"), protoreflect.ValueOfUint64(uint64(r.OriginalBits)))
	msg.Set(fields.ByName("compressed_bits"), protoreflect.ValueOfUint64(uint64(r.CompressedBits)))
	msg.Set(fields.ByName("reduction_percent"), protoreflect.ValueOfFloat64(r.ReductionPercent))
	msg.Set(fields.ByName("distinct_symbols"), protoreflect.ValueOfUint32(uint32(r.DistinctSymbols)))
	msg.Set(fields.ByName("entropy_bits"), protoreflect.ValueOfFloat64(r.EntropyBits))
	msg.Set(fields.ByName("packed_bytes"), protoreflect.ValueOfUint64(uint64(r.PackedBytes)))
	msg.Set(fields.ByName("checksum"), protoreflect.ValueOfUint64(r.Checksum))

	return msg
}

// MarshalProto encodes the report in protobuf wire format.
func (r *Report) MarshalProto() ([]byte, error) {
	return proto.MarshalOptions{Deterministic: true}.Marshal(r.Message())
}

// UnmarshalProto decodes a report produced by MarshalProto.
func UnmarshalProto(data []byte) (*Report, error) {
	msg := dynamicpb.NewMessage(reportDescriptor)
	if err := proto.Unmarshal(data, msg); err != nil {
		return nil, fmt.Errorf("unmarshal report: %w", err)
	}

	fields := reportDescriptor.Fields()
	return &Report{
		OriginalBits:     int(msg.Get(fields.ByName("original_bits")).Uint()),
		CompressedBits:   int(msg.Get(fields.ByName("compressed_bits")).Uint()),
		ReductionPercent: msg.Get(fields.ByName("reduction_percent")).Float(),
		DistinctSymbols:  int(msg.Get(fields.ByName("distinct_symbols")).Uint()),
		EntropyBits:      msg.Get(fields.ByName("entropy_bits")).Float(),
		PackedBytes:      int(msg.Get(fields.ByName("packed_bytes")).Uint()),
		Checksum:         msg.Get(fields.ByName("checksum")).Uint(),
	}, nil
}
