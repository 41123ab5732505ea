// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: pdfproc/v1/pdfproc.proto

package pdfprocv1

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

type IngestInvoiceRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Absolute or server-relative path to the source PDF.
	Path          string `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestInvoiceRequest) Reset() {
	*x = IngestInvoiceRequest{}
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestInvoiceRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestInvoiceRequest) ProtoMessage() {}

func (x *IngestInvoiceRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestInvoiceRequest.ProtoReflect.Descriptor instead.
func (*IngestInvoiceRequest) Descriptor() ([]byte, []int) {
	return file_pdfproc_v1_pdfproc_proto_rawDescGZIP(), []int{0}
}

func (x *IngestInvoiceRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestInvoiceResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	Status        string                 `protobuf:"bytes,2,opt,name=status,proto3" json:"status,omitempty"`
	Filename      string                 `protobuf:"bytes,3,opt,name=filename,proto3" json:"filename,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestInvoiceResponse) Reset() {
	*x = IngestInvoiceResponse{}
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestInvoiceResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestInvoiceResponse) ProtoMessage() {}

func (x *IngestInvoiceResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestInvoiceResponse.ProtoReflect.Descriptor instead.
func (*IngestInvoiceResponse) Descriptor() ([]byte, []int) {
	return file_pdfproc_v1_pdfproc_proto_rawDescGZIP(), []int{1}
}

func (x *IngestInvoiceResponse) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *IngestInvoiceResponse) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *IngestInvoiceResponse) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

type GetJobRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	JobId         string                 `protobuf:"bytes,1,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobRequest) Reset() {
	*x = GetJobRequest{}
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobRequest) ProtoMessage() {}

func (x *GetJobRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobRequest.ProtoReflect.Descriptor instead.
func (*GetJobRequest) Descriptor() ([]byte, []int) {
	return file_pdfproc_v1_pdfproc_proto_rawDescGZIP(), []int{2}
}

func (x *GetJobRequest) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

type GetJobResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Job           *Job                   `protobuf:"bytes,1,opt,name=job,proto3" json:"job,omitempty"`
	Invoices      []*Invoice             `protobuf:"bytes,2,rep,name=invoices,proto3" json:"invoices,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetJobResponse) Reset() {
	*x = GetJobResponse{}
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetJobResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetJobResponse) ProtoMessage() {}

func (x *GetJobResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetJobResponse.ProtoReflect.Descriptor instead.
func (*GetJobResponse) Descriptor() ([]byte, []int) {
	return file_pdfproc_v1_pdfproc_proto_rawDescGZIP(), []int{3}
}

func (x *GetJobResponse) GetJob() *Job {
	if x != nil {
		return x.Job
	}
	return nil
}

func (x *GetJobResponse) GetInvoices() []*Invoice {
	if x != nil {
		return x.Invoices
	}
	return nil
}

type ListJobsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Maximum number of jobs to return; defaults to 20 when unset.
	Limit         int32 `protobuf:"varint,1,opt,name=limit,proto3" json:"limit,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsRequest) Reset() {
	*x = ListJobsRequest{}
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsRequest) ProtoMessage() {}

func (x *ListJobsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsRequest.ProtoReflect.Descriptor instead.
func (*ListJobsRequest) Descriptor() ([]byte, []int) {
	return file_pdfproc_v1_pdfproc_proto_rawDescGZIP(), []int{4}
}

func (x *ListJobsRequest) GetLimit() int32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type ListJobsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Jobs          []*Job                 `protobuf:"bytes,1,rep,name=jobs,proto3" json:"jobs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListJobsResponse) Reset() {
	*x = ListJobsResponse{}
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListJobsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListJobsResponse) ProtoMessage() {}

func (x *ListJobsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListJobsResponse.ProtoReflect.Descriptor instead.
func (*ListJobsResponse) Descriptor() ([]byte, []int) {
	return file_pdfproc_v1_pdfproc_proto_rawDescGZIP(), []int{5}
}

func (x *ListJobsResponse) GetJobs() []*Job {
	if x != nil {
		return x.Jobs
	}
	return nil
}

type ExportInvoicesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesRequest) Reset() {
	*x = ExportInvoicesRequest{}
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesRequest) ProtoMessage() {}

func (x *ExportInvoicesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesRequest.ProtoReflect.Descriptor instead.
func (*ExportInvoicesRequest) Descriptor() ([]byte, []int) {
	return file_pdfproc_v1_pdfproc_proto_rawDescGZIP(), []int{6}
}

type ExportInvoicesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportInvoicesResponse) Reset() {
	*x = ExportInvoicesResponse{}
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportInvoicesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportInvoicesResponse) ProtoMessage() {}

func (x *ExportInvoicesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportInvoicesResponse.ProtoReflect.Descriptor instead.
func (*ExportInvoicesResponse) Descriptor() ([]byte, []int) {
	return file_pdfproc_v1_pdfproc_proto_rawDescGZIP(), []int{7}
}

func (x *ExportInvoicesResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

type Job struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Filename      string                 `protobuf:"bytes,2,opt,name=filename,proto3" json:"filename,omitempty"`
	Status        string                 `protobuf:"bytes,3,opt,name=status,proto3" json:"status,omitempty"`
	ErrorMessage  string                 `protobuf:"bytes,4,opt,name=error_message,json=errorMessage,proto3" json:"error_message,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,5,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	UpdatedAt     string                 `protobuf:"bytes,6,opt,name=updated_at,json=updatedAt,proto3" json:"updated_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Job) Reset() {
	*x = Job{}
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Job) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Job) ProtoMessage() {}

func (x *Job) ProtoReflect() protoreflect.Message {
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Job.ProtoReflect.Descriptor instead.
func (*Job) Descriptor() ([]byte, []int) {
	return file_pdfproc_v1_pdfproc_proto_rawDescGZIP(), []int{8}
}

func (x *Job) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Job) GetFilename() string {
	if x != nil {
		return x.Filename
	}
	return ""
}

func (x *Job) GetStatus() string {
	if x != nil {
		return x.Status
	}
	return ""
}

func (x *Job) GetErrorMessage() string {
	if x != nil {
		return x.ErrorMessage
	}
	return ""
}

func (x *Job) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

func (x *Job) GetUpdatedAt() string {
	if x != nil {
		return x.UpdatedAt
	}
	return ""
}

type Invoice struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	JobId         string                 `protobuf:"bytes,2,opt,name=job_id,json=jobId,proto3" json:"job_id,omitempty"`
	CompanyName   string                 `protobuf:"bytes,3,opt,name=company_name,json=companyName,proto3" json:"company_name,omitempty"`
	PoNumber      string                 `protobuf:"bytes,4,opt,name=po_number,json=poNumber,proto3" json:"po_number,omitempty"`
	InvoiceNumber string                 `protobuf:"bytes,5,opt,name=invoice_number,json=invoiceNumber,proto3" json:"invoice_number,omitempty"`
	TierUsed      string                 `protobuf:"bytes,6,opt,name=tier_used,json=tierUsed,proto3" json:"tier_used,omitempty"`
	Confidence    float32                `protobuf:"fixed32,7,opt,name=confidence,proto3" json:"confidence,omitempty"`
	SplitPath     string                 `protobuf:"bytes,8,opt,name=split_path,json=splitPath,proto3" json:"split_path,omitempty"`
	CreatedAt     string                 `protobuf:"bytes,9,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Invoice) Reset() {
	*x = Invoice{}
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Invoice) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Invoice) ProtoMessage() {}

func (x *Invoice) ProtoReflect() protoreflect.Message {
	mi := &file_pdfproc_v1_pdfproc_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Invoice.ProtoReflect.Descriptor instead.
func (*Invoice) Descriptor() ([]byte, []int) {
	return file_pdfproc_v1_pdfproc_proto_rawDescGZIP(), []int{9}
}

func (x *Invoice) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Invoice) GetJobId() string {
	if x != nil {
		return x.JobId
	}
	return ""
}

func (x *Invoice) GetCompanyName() string {
	if x != nil {
		return x.CompanyName
	}
	return ""
}

func (x *Invoice) GetPoNumber() string {
	if x != nil {
		return x.PoNumber
	}
	return ""
}

func (x *Invoice) GetInvoiceNumber() string {
	if x != nil {
		return x.InvoiceNumber
	}
	return ""
}

func (x *Invoice) GetTierUsed() string {
	if x != nil {
		return x.TierUsed
	}
	return ""
}

func (x *Invoice) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *Invoice) GetSplitPath() string {
	if x != nil {
		return x.SplitPath
	}
	return ""
}

func (x *Invoice) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

var File_pdfproc_v1_pdfproc_proto protoreflect.FileDescriptor

const file_pdfproc_v1_pdfproc_proto_rawDesc = "" +
	"\n" +
	"\x18pdfproc/v1/pdfproc.proto\x12\n" +
	"pdfproc.v1\"*\n" +
	"\x14IngestInvoiceRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"b\n" +
	"\x15IngestInvoiceResponse\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\x12\x16\n" +
	"\x06status\x18\x02 \x01(\tR\x06status\x12\x1a\n" +
	"\bfilename\x18\x03 \x01(\tR\bfilename\"&\n" +
	"\rGetJobRequest\x12\x15\n" +
	"\x06job_id\x18\x01 \x01(\tR\x05jobId\"d\n" +
	"\x0eGetJobResponse\x12!\n" +
	"\x03job\x18\x01 \x01(\v2\x0f.pdfproc.v1.JobR\x03job\x12/\n" +
	"\binvoices\x18\x02 \x03(\v2\x13.pdfproc.v1.InvoiceR\binvoices\"'\n" +
	"\x0fListJobsRequest\x12\x14\n" +
	"\x05limit\x18\x01 \x01(\x05R\x05limit\"7\n" +
	"\x10ListJobsResponse\x12#\n" +
	"\x04jobs\x18\x01 \x03(\v2\x0f.pdfproc.v1.JobR\x04jobs\"\x17\n" +
	"\x15ExportInvoicesRequest\",\n" +
	"\x16ExportInvoicesResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx\"\xac\x01\n" +
	"\x03Job\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x1a\n" +
	"\bfilename\x18\x02 \x01(\tR\bfilename\x12\x16\n" +
	"\x06status\x18\x03 \x01(\tR\x06status\x12#\n" +
	"\rerror_message\x18\x04 \x01(\tR\ferrorMessage\x12\x1d\n" +
	"\n" +
	"created_at\x18\x05 \x01(\tR\tcreatedAt\x12\x1d\n" +
	"\n" +
	"updated_at\x18\x06 \x01(\tR\tupdatedAt\"\x92\x02\n" +
	"\aInvoice\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x15\n" +
	"\x06job_id\x18\x02 \x01(\tR\x05jobId\x12!\n" +
	"\fcompany_name\x18\x03 \x01(\tR\vcompanyName\x12\x1b\n" +
	"\tpo_number\x18\x04 \x01(\tR\bpoNumber\x12%\n" +
	"\x0einvoice_number\x18\x05 \x01(\tR\rinvoiceNumber\x12\x1b\n" +
	"\ttier_used\x18\x06 \x01(\tR\btierUsed\x12\x1e\n" +
	"\n" +
	"confidence\x18\a \x01(\x02R\n" +
	"confidence\x12\x1d\n" +
	"\n" +
	"split_path\x18\b \x01(\tR\tsplitPath\x12\x1d\n" +
	"\n" +
	"created_at\x18\t \x01(\tR\tcreatedAt2\xc7\x02\n" +
	"\x0eInvoiceService\x12T\n" +
	"\rIngestInvoice\x12 .pdfproc.v1.IngestInvoiceRequest\x1a!.pdfproc.v1.IngestInvoiceResponse\x12?\n" +
	"\x06GetJob\x12\x19.pdfproc.v1.GetJobRequest\x1a\x1a.pdfproc.v1.GetJobResponse\x12E\n" +
	"\bListJobs\x12\x1b.pdfproc.v1.ListJobsRequest\x1a\x1c.pdfproc.v1.ListJobsResponse\x12W\n" +
	"\x0eExportInvoices\x12!.pdfproc.v1.ExportInvoicesRequest\x1a\".pdfproc.v1.ExportInvoicesResponseB>Z<github.com/okafor-dev/pdfproc/gen/proto/pdfproc/v1;pdfprocv1b\x06proto3"

var (
	file_pdfproc_v1_pdfproc_proto_rawDescOnce sync.Once
	file_pdfproc_v1_pdfproc_proto_rawDescData []byte
)

func file_pdfproc_v1_pdfproc_proto_rawDescGZIP() []byte {
	file_pdfproc_v1_pdfproc_proto_rawDescOnce.Do(func() {
		file_pdfproc_v1_pdfproc_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_pdfproc_v1_pdfproc_proto_rawDesc), len(file_pdfproc_v1_pdfproc_proto_rawDesc)))
	})
	return file_pdfproc_v1_pdfproc_proto_rawDescData
}

var file_pdfproc_v1_pdfproc_proto_msgTypes = make([]protoimpl.MessageInfo, 10)
var file_pdfproc_v1_pdfproc_proto_goTypes = []any{
	(*IngestInvoiceRequest)(nil),   // 0: pdfproc.v1.IngestInvoiceRequest
	(*IngestInvoiceResponse)(nil),  // 1: pdfproc.v1.IngestInvoiceResponse
	(*GetJobRequest)(nil),          // 2: pdfproc.v1.GetJobRequest
	(*GetJobResponse)(nil),         // 3: pdfproc.v1.GetJobResponse
	(*ListJobsRequest)(nil),        // 4: pdfproc.v1.ListJobsRequest
	(*ListJobsResponse)(nil),       // 5: pdfproc.v1.ListJobsResponse
	(*ExportInvoicesRequest)(nil),  // 6: pdfproc.v1.ExportInvoicesRequest
	(*ExportInvoicesResponse)(nil), // 7: pdfproc.v1.ExportInvoicesResponse
	(*Job)(nil),                    // 8: pdfproc.v1.Job
	(*Invoice)(nil),                // 9: pdfproc.v1.Invoice
}
var file_pdfproc_v1_pdfproc_proto_depIdxs = []int32{
	8, // 0: pdfproc.v1.GetJobResponse.job:type_name -> pdfproc.v1.Job
	9, // 1: pdfproc.v1.GetJobResponse.invoices:type_name -> pdfproc.v1.Invoice
	8, // 2: pdfproc.v1.ListJobsResponse.jobs:type_name -> pdfproc.v1.Job
	0, // 3: pdfproc.v1.InvoiceService.IngestInvoice:input_type -> pdfproc.v1.IngestInvoiceRequest
	2, // 4: pdfproc.v1.InvoiceService.GetJob:input_type -> pdfproc.v1.GetJobRequest
	4, // 5: pdfproc.v1.InvoiceService.ListJobs:input_type -> pdfproc.v1.ListJobsRequest
	6, // 6: pdfproc.v1.InvoiceService.ExportInvoices:input_type -> pdfproc.v1.ExportInvoicesRequest
	1, // 7: pdfproc.v1.InvoiceService.IngestInvoice:output_type -> pdfproc.v1.IngestInvoiceResponse
	3, // 8: pdfproc.v1.InvoiceService.GetJob:output_type -> pdfproc.v1.GetJobResponse
	5, // 9: pdfproc.v1.InvoiceService.ListJobs:output_type -> pdfproc.v1.ListJobsResponse
	7, // 10: pdfproc.v1.InvoiceService.ExportInvoices:output_type -> pdfproc.v1.ExportInvoicesResponse
	7, // [7:11] is the sub-list for method output_type
	3, // [3:7] is the sub-list for method input_type
	3, // [3:3] is the sub-list for extension type_name
	3, // [3:3] is the sub-list for extension extendee
	0, // [0:3] is the sub-list for field type_name
}

func init() { file_pdfproc_v1_pdfproc_proto_init() }
func file_pdfproc_v1_pdfproc_proto_init() {
	if File_pdfproc_v1_pdfproc_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_pdfproc_v1_pdfproc_proto_rawDesc), len(file_pdfproc_v1_pdfproc_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   10,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_pdfproc_v1_pdfproc_proto_goTypes,
		DependencyIndexes: file_pdfproc_v1_pdfproc_proto_depIdxs,
		MessageInfos:      file_pdfproc_v1_pdfproc_proto_msgTypes,
	}.Build()
	File_pdfproc_v1_pdfproc_proto = out.File
	file_pdfproc_v1_pdfproc_proto_goTypes = nil
	file_pdfproc_v1_pdfproc_proto_depIdxs = nil
}
