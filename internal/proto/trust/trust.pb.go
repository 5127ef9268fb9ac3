// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.5
// 	protoc        (unknown)
// source: trust.proto

package trust

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type CheckTextRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	Text  string                 `protobuf:"bytes,1,opt,name=text,proto3" json:"text,omitempty"`
	// "message", "bio" or "profile"; drives length and link rules.
	Context       string `protobuf:"bytes,2,opt,name=context,proto3" json:"context,omitempty"`
	TargetId      string `protobuf:"bytes,3,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckTextRequest) Reset() {
	*x = CheckTextRequest{}
	mi := &file_trust_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckTextRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckTextRequest) ProtoMessage() {}

func (x *CheckTextRequest) ProtoReflect() protoreflect.Message {
	mi := &file_trust_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckTextRequest.ProtoReflect.Descriptor instead.
func (*CheckTextRequest) Descriptor() ([]byte, []int) {
	return file_trust_proto_rawDescGZIP(), []int{0}
}

func (x *CheckTextRequest) GetText() string {
	if x != nil {
		return x.Text
	}
	return ""
}

func (x *CheckTextRequest) GetContext() string {
	if x != nil {
		return x.Context
	}
	return ""
}

func (x *CheckTextRequest) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

type CheckImageRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	ExplicitScore float64                `protobuf:"fixed64,1,opt,name=explicit_score,json=explicitScore,proto3" json:"explicit_score,omitempty"`
	ViolenceScore float64                `protobuf:"fixed64,2,opt,name=violence_score,json=violenceScore,proto3" json:"violence_score,omitempty"`
	FakeScore     float64                `protobuf:"fixed64,3,opt,name=fake_score,json=fakeScore,proto3" json:"fake_score,omitempty"`
	QualityScore  float64                `protobuf:"fixed64,4,opt,name=quality_score,json=qualityScore,proto3" json:"quality_score,omitempty"`
	TargetId      string                 `protobuf:"bytes,5,opt,name=target_id,json=targetId,proto3" json:"target_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckImageRequest) Reset() {
	*x = CheckImageRequest{}
	mi := &file_trust_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckImageRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckImageRequest) ProtoMessage() {}

func (x *CheckImageRequest) ProtoReflect() protoreflect.Message {
	mi := &file_trust_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckImageRequest.ProtoReflect.Descriptor instead.
func (*CheckImageRequest) Descriptor() ([]byte, []int) {
	return file_trust_proto_rawDescGZIP(), []int{1}
}

func (x *CheckImageRequest) GetExplicitScore() float64 {
	if x != nil {
		return x.ExplicitScore
	}
	return 0
}

func (x *CheckImageRequest) GetViolenceScore() float64 {
	if x != nil {
		return x.ViolenceScore
	}
	return 0
}

func (x *CheckImageRequest) GetFakeScore() float64 {
	if x != nil {
		return x.FakeScore
	}
	return 0
}

func (x *CheckImageRequest) GetQualityScore() float64 {
	if x != nil {
		return x.QualityScore
	}
	return 0
}

func (x *CheckImageRequest) GetTargetId() string {
	if x != nil {
		return x.TargetId
	}
	return ""
}

type CheckProfileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	UserId        string                 `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *CheckProfileRequest) Reset() {
	*x = CheckProfileRequest{}
	mi := &file_trust_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *CheckProfileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CheckProfileRequest) ProtoMessage() {}

func (x *CheckProfileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_trust_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CheckProfileRequest.ProtoReflect.Descriptor instead.
func (*CheckProfileRequest) Descriptor() ([]byte, []int) {
	return file_trust_proto_rawDescGZIP(), []int{2}
}

func (x *CheckProfileRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type VerdictResponse struct {
	state           protoimpl.MessageState  `protogen:"open.v1"`
	IsAppropriate   bool                    `protobuf:"varint,1,opt,name=is_appropriate,json=isAppropriate,proto3" json:"is_appropriate,omitempty"`
	Confidence      float64                 `protobuf:"fixed64,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Flags           []*VerdictResponse_Flag `protobuf:"bytes,3,rep,name=flags,proto3" json:"flags,omitempty"`
	Severity        string                  `protobuf:"bytes,4,opt,name=severity,proto3" json:"severity,omitempty"`
	SuggestedAction string                  `protobuf:"bytes,5,opt,name=suggested_action,json=suggestedAction,proto3" json:"suggested_action,omitempty"`
	Explanation     string                  `protobuf:"bytes,6,opt,name=explanation,proto3" json:"explanation,omitempty"`
	unknownFields   protoimpl.UnknownFields
	sizeCache       protoimpl.SizeCache
}

func (x *VerdictResponse) Reset() {
	*x = VerdictResponse{}
	mi := &file_trust_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerdictResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerdictResponse) ProtoMessage() {}

func (x *VerdictResponse) ProtoReflect() protoreflect.Message {
	mi := &file_trust_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerdictResponse.ProtoReflect.Descriptor instead.
func (*VerdictResponse) Descriptor() ([]byte, []int) {
	return file_trust_proto_rawDescGZIP(), []int{3}
}

func (x *VerdictResponse) GetIsAppropriate() bool {
	if x != nil {
		return x.IsAppropriate
	}
	return false
}

func (x *VerdictResponse) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *VerdictResponse) GetFlags() []*VerdictResponse_Flag {
	if x != nil {
		return x.Flags
	}
	return nil
}

func (x *VerdictResponse) GetSeverity() string {
	if x != nil {
		return x.Severity
	}
	return ""
}

func (x *VerdictResponse) GetSuggestedAction() string {
	if x != nil {
		return x.SuggestedAction
	}
	return ""
}

func (x *VerdictResponse) GetExplanation() string {
	if x != nil {
		return x.Explanation
	}
	return ""
}

type VerdictResponse_Flag struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Type          string                 `protobuf:"bytes,1,opt,name=type,proto3" json:"type,omitempty"`
	Confidence    float64                `protobuf:"fixed64,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Description   string                 `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *VerdictResponse_Flag) Reset() {
	*x = VerdictResponse_Flag{}
	mi := &file_trust_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *VerdictResponse_Flag) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*VerdictResponse_Flag) ProtoMessage() {}

func (x *VerdictResponse_Flag) ProtoReflect() protoreflect.Message {
	mi := &file_trust_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use VerdictResponse_Flag.ProtoReflect.Descriptor instead.
func (*VerdictResponse_Flag) Descriptor() ([]byte, []int) {
	return file_trust_proto_rawDescGZIP(), []int{3, 0}
}

func (x *VerdictResponse_Flag) GetType() string {
	if x != nil {
		return x.Type
	}
	return ""
}

func (x *VerdictResponse_Flag) GetConfidence() float64 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *VerdictResponse_Flag) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

var File_trust_proto protoreflect.FileDescriptor

var file_trust_proto_rawDesc = string([]byte{
	0x0a, 0x0b, 0x74, 0x72, 0x75, 0x73, 0x74, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x12, 0x0d, 0x6b,
	0x69, 0x6e, 0x64, 0x72, 0x65, 0x64, 0x2e, 0x74, 0x72, 0x75, 0x73, 0x74, 0x22, 0x5d, 0x0a, 0x10,
	0x43, 0x68, 0x65, 0x63, 0x6b, 0x54, 0x65, 0x78, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x12, 0x12, 0x0a, 0x04, 0x74, 0x65, 0x78, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04,
	0x74, 0x65, 0x78, 0x74, 0x12, 0x18, 0x0a, 0x07, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x18,
	0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x63, 0x6f, 0x6e, 0x74, 0x65, 0x78, 0x74, 0x12, 0x1b,
	0x0a, 0x09, 0x74, 0x61, 0x72, 0x67, 0x65, 0x74, 0x5f, 0x69, 0x64, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x08, 0x74, 0x61, 0x72, 0x67, 0x65, 0x74, 0x49, 0x64, 0x22, 0xc2, 0x01, 0x0a, 0x11,
	0x43, 0x68, 0x65, 0x63, 0x6b, 0x49, 0x6d, 0x61, 0x67, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x12, 0x25, 0x0a, 0x0e, 0x65, 0x78, 0x70, 0x6c, 0x69, 0x63, 0x69, 0x74, 0x5f, 0x73, 0x63,
	0x6f, 0x72, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0d, 0x65, 0x78, 0x70, 0x6c, 0x69,
	0x63, 0x69, 0x74, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x12, 0x25, 0x0a, 0x0e, 0x76, 0x69, 0x6f, 0x6c,
	0x65, 0x6e, 0x63, 0x65, 0x5f, 0x73, 0x63, 0x6f, 0x72, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01,
	0x52, 0x0d, 0x76, 0x69, 0x6f, 0x6c, 0x65, 0x6e, 0x63, 0x65, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x12,
	0x1d, 0x0a, 0x0a, 0x66, 0x61, 0x6b, 0x65, 0x5f, 0x73, 0x63, 0x6f, 0x72, 0x65, 0x18, 0x03, 0x20,
	0x01, 0x28, 0x01, 0x52, 0x09, 0x66, 0x61, 0x6b, 0x65, 0x53, 0x63, 0x6f, 0x72, 0x65, 0x12, 0x23,
	0x0a, 0x0d, 0x71, 0x75, 0x61, 0x6c, 0x69, 0x74, 0x79, 0x5f, 0x73, 0x63, 0x6f, 0x72, 0x65, 0x18,
	0x04, 0x20, 0x01, 0x28, 0x01, 0x52, 0x0c, 0x71, 0x75, 0x61, 0x6c, 0x69, 0x74, 0x79, 0x53, 0x63,
	0x6f, 0x72, 0x65, 0x12, 0x1b, 0x0a, 0x09, 0x74, 0x61, 0x72, 0x67, 0x65, 0x74, 0x5f, 0x69, 0x64,
	0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x74, 0x61, 0x72, 0x67, 0x65, 0x74, 0x49, 0x64,
	0x22, 0x2e, 0x0a, 0x13, 0x43, 0x68, 0x65, 0x63, 0x6b, 0x50, 0x72, 0x6f, 0x66, 0x69, 0x6c, 0x65,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x75, 0x73, 0x65, 0x72, 0x5f,
	0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x75, 0x73, 0x65, 0x72, 0x49, 0x64,
	0x22, 0xda, 0x02, 0x0a, 0x0f, 0x56, 0x65, 0x72, 0x64, 0x69, 0x63, 0x74, 0x52, 0x65, 0x73, 0x70,
	0x6f, 0x6e, 0x73, 0x65, 0x12, 0x25, 0x0a, 0x0e, 0x69, 0x73, 0x5f, 0x61, 0x70, 0x70, 0x72, 0x6f,
	0x70, 0x72, 0x69, 0x61, 0x74, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0d, 0x69, 0x73,
	0x41, 0x70, 0x70, 0x72, 0x6f, 0x70, 0x72, 0x69, 0x61, 0x74, 0x65, 0x12, 0x1e, 0x0a, 0x0a, 0x63,
	0x6f, 0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01, 0x52,
	0x0a, 0x63, 0x6f, 0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e, 0x63, 0x65, 0x12, 0x39, 0x0a, 0x05, 0x66,
	0x6c, 0x61, 0x67, 0x73, 0x18, 0x03, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x23, 0x2e, 0x6b, 0x69, 0x6e,
	0x64, 0x72, 0x65, 0x64, 0x2e, 0x74, 0x72, 0x75, 0x73, 0x74, 0x2e, 0x56, 0x65, 0x72, 0x64, 0x69,
	0x63, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x2e, 0x46, 0x6c, 0x61, 0x67, 0x52,
	0x05, 0x66, 0x6c, 0x61, 0x67, 0x73, 0x12, 0x1a, 0x0a, 0x08, 0x73, 0x65, 0x76, 0x65, 0x72, 0x69,
	0x74, 0x79, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x73, 0x65, 0x76, 0x65, 0x72, 0x69,
	0x74, 0x79, 0x12, 0x29, 0x0a, 0x10, 0x73, 0x75, 0x67, 0x67, 0x65, 0x73, 0x74, 0x65, 0x64, 0x5f,
	0x61, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0f, 0x73, 0x75,
	0x67, 0x67, 0x65, 0x73, 0x74, 0x65, 0x64, 0x41, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x20, 0x0a,
	0x0b, 0x65, 0x78, 0x70, 0x6c, 0x61, 0x6e, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x06, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x0b, 0x65, 0x78, 0x70, 0x6c, 0x61, 0x6e, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x1a,
	0x5c, 0x0a, 0x04, 0x46, 0x6c, 0x61, 0x67, 0x12, 0x12, 0x0a, 0x04, 0x74, 0x79, 0x70, 0x65, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x74, 0x79, 0x70, 0x65, 0x12, 0x1e, 0x0a, 0x0a, 0x63,
	0x6f, 0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e, 0x63, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x01, 0x52,
	0x0a, 0x63, 0x6f, 0x6e, 0x66, 0x69, 0x64, 0x65, 0x6e, 0x63, 0x65, 0x12, 0x20, 0x0a, 0x0b, 0x64,
	0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x0b, 0x64, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x32, 0x80, 0x02,
	0x0a, 0x0c, 0x54, 0x72, 0x75, 0x73, 0x74, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x4c,
	0x0a, 0x09, 0x43, 0x68, 0x65, 0x63, 0x6b, 0x54, 0x65, 0x78, 0x74, 0x12, 0x1f, 0x2e, 0x6b, 0x69,
	0x6e, 0x64, 0x72, 0x65, 0x64, 0x2e, 0x74, 0x72, 0x75, 0x73, 0x74, 0x2e, 0x43, 0x68, 0x65, 0x63,
	0x6b, 0x54, 0x65, 0x78, 0x74, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1e, 0x2e, 0x6b,
	0x69, 0x6e, 0x64, 0x72, 0x65, 0x64, 0x2e, 0x74, 0x72, 0x75, 0x73, 0x74, 0x2e, 0x56, 0x65, 0x72,
	0x64, 0x69, 0x63, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x4e, 0x0a, 0x0a,
	0x43, 0x68, 0x65, 0x63, 0x6b, 0x49, 0x6d, 0x61, 0x67, 0x65, 0x12, 0x20, 0x2e, 0x6b, 0x69, 0x6e,
	0x64, 0x72, 0x65, 0x64, 0x2e, 0x74, 0x72, 0x75, 0x73, 0x74, 0x2e, 0x43, 0x68, 0x65, 0x63, 0x6b,
	0x49, 0x6d, 0x61, 0x67, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1e, 0x2e, 0x6b,
	0x69, 0x6e, 0x64, 0x72, 0x65, 0x64, 0x2e, 0x74, 0x72, 0x75, 0x73, 0x74, 0x2e, 0x56, 0x65, 0x72,
	0x64, 0x69, 0x63, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x52, 0x0a, 0x0c,
	0x43, 0x68, 0x65, 0x63, 0x6b, 0x50, 0x72, 0x6f, 0x66, 0x69, 0x6c, 0x65, 0x12, 0x22, 0x2e, 0x6b,
	0x69, 0x6e, 0x64, 0x72, 0x65, 0x64, 0x2e, 0x74, 0x72, 0x75, 0x73, 0x74, 0x2e, 0x43, 0x68, 0x65,
	0x63, 0x6b, 0x50, 0x72, 0x6f, 0x66, 0x69, 0x6c, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x1a, 0x1e, 0x2e, 0x6b, 0x69, 0x6e, 0x64, 0x72, 0x65, 0x64, 0x2e, 0x74, 0x72, 0x75, 0x73, 0x74,
	0x2e, 0x56, 0x65, 0x72, 0x64, 0x69, 0x63, 0x74, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x42, 0x34, 0x5a, 0x32, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x6b,
	0x69, 0x6e, 0x64, 0x72, 0x65, 0x64, 0x61, 0x70, 0x70, 0x2f, 0x6b, 0x69, 0x6e, 0x64, 0x72, 0x65,
	0x64, 0x2f, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x6e, 0x61, 0x6c, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x2f, 0x74, 0x72, 0x75, 0x73, 0x74, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
})

var (
	file_trust_proto_rawDescOnce sync.Once
	file_trust_proto_rawDescData []byte
)

func file_trust_proto_rawDescGZIP() []byte {
	file_trust_proto_rawDescOnce.Do(func() {
		file_trust_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_trust_proto_rawDesc), len(file_trust_proto_rawDesc)))
	})
	return file_trust_proto_rawDescData
}

var file_trust_proto_msgTypes = make([]protoimpl.MessageInfo, 5)
var file_trust_proto_goTypes = []any{
	(*CheckTextRequest)(nil),     // 0: kindred.trust.CheckTextRequest
	(*CheckImageRequest)(nil),    // 1: kindred.trust.CheckImageRequest
	(*CheckProfileRequest)(nil),  // 2: kindred.trust.CheckProfileRequest
	(*VerdictResponse)(nil),      // 3: kindred.trust.VerdictResponse
	(*VerdictResponse_Flag)(nil), // 4: kindred.trust.VerdictResponse.Flag
}
var file_trust_proto_depIdxs = []int32{
	4, // 0: kindred.trust.VerdictResponse.flags:type_name -> kindred.trust.VerdictResponse.Flag
	0, // 1: kindred.trust.TrustService.CheckText:input_type -> kindred.trust.CheckTextRequest
	1, // 2: kindred.trust.TrustService.CheckImage:input_type -> kindred.trust.CheckImageRequest
	2, // 3: kindred.trust.TrustService.CheckProfile:input_type -> kindred.trust.CheckProfileRequest
	3, // 4: kindred.trust.TrustService.CheckText:output_type -> kindred.trust.VerdictResponse
	3, // 5: kindred.trust.TrustService.CheckImage:output_type -> kindred.trust.VerdictResponse
	3, // 6: kindred.trust.TrustService.CheckProfile:output_type -> kindred.trust.VerdictResponse
	4, // [4:7] is the sub-list for method output_type
	1, // [1:4] is the sub-list for method input_type
	1, // [1:1] is the sub-list for extension type_name
	1, // [1:1] is the sub-list for extension extendee
	0, // [0:1] is the sub-list for field type_name
}

func init() { file_trust_proto_init() }
func file_trust_proto_init() {
	if File_trust_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_trust_proto_rawDesc), len(file_trust_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   5,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_trust_proto_goTypes,
		DependencyIndexes: file_trust_proto_depIdxs,
		MessageInfos:      file_trust_proto_msgTypes,
	}.Build()
	File_trust_proto = out.File
	file_trust_proto_goTypes = nil
	file_trust_proto_depIdxs = nil
}
