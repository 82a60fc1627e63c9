// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: acervo/v1/acervo.proto

package acervopb

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

type SearchRequest struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	Query      string                 `protobuf:"bytes,1,opt,name=query,proto3" json:"query,omitempty"`
	ExactMatch bool                   `protobuf:"varint,2,opt,name=exact_match,json=exactMatch,proto3" json:"exact_match,omitempty"`
	Page       int32                  `protobuf:"varint,3,opt,name=page,proto3" json:"page,omitempty"`
	PageSize   int32                  `protobuf:"varint,4,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	// Inclusive bounds on document_date, YYYY-MM-DD. Empty means unbounded.
	StartDate     string `protobuf:"bytes,5,opt,name=start_date,json=startDate,proto3" json:"start_date,omitempty"`
	EndDate       string `protobuf:"bytes,6,opt,name=end_date,json=endDate,proto3" json:"end_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchRequest) Reset() {
	*x = SearchRequest{}
	mi := &file_acervo_v1_acervo_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchRequest) ProtoMessage() {}

func (x *SearchRequest) ProtoReflect() protoreflect.Message {
	mi := &file_acervo_v1_acervo_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchRequest.ProtoReflect.Descriptor instead.
func (*SearchRequest) Descriptor() ([]byte, []int) {
	return file_acervo_v1_acervo_proto_rawDescGZIP(), []int{0}
}

func (x *SearchRequest) GetQuery() string {
	if x != nil {
		return x.Query
	}
	return ""
}

func (x *SearchRequest) GetExactMatch() bool {
	if x != nil {
		return x.ExactMatch
	}
	return false
}

func (x *SearchRequest) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *SearchRequest) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *SearchRequest) GetStartDate() string {
	if x != nil {
		return x.StartDate
	}
	return ""
}

func (x *SearchRequest) GetEndDate() string {
	if x != nil {
		return x.EndDate
	}
	return ""
}

type SearchResult struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileName      string                 `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	FilePath      string                 `protobuf:"bytes,2,opt,name=file_path,json=filePath,proto3" json:"file_path,omitempty"`
	Snippet       string                 `protobuf:"bytes,3,opt,name=snippet,proto3" json:"snippet,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchResult) Reset() {
	*x = SearchResult{}
	mi := &file_acervo_v1_acervo_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchResult) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchResult) ProtoMessage() {}

func (x *SearchResult) ProtoReflect() protoreflect.Message {
	mi := &file_acervo_v1_acervo_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchResult.ProtoReflect.Descriptor instead.
func (*SearchResult) Descriptor() ([]byte, []int) {
	return file_acervo_v1_acervo_proto_rawDescGZIP(), []int{1}
}

func (x *SearchResult) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *SearchResult) GetFilePath() string {
	if x != nil {
		return x.FilePath
	}
	return ""
}

func (x *SearchResult) GetSnippet() string {
	if x != nil {
		return x.Snippet
	}
	return ""
}

type SearchResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Page          int32                  `protobuf:"varint,1,opt,name=page,proto3" json:"page,omitempty"`
	PageSize      int32                  `protobuf:"varint,2,opt,name=page_size,json=pageSize,proto3" json:"page_size,omitempty"`
	TotalResults  int32                  `protobuf:"varint,3,opt,name=total_results,json=totalResults,proto3" json:"total_results,omitempty"`
	Results       []*SearchResult        `protobuf:"bytes,4,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *SearchResponse) Reset() {
	*x = SearchResponse{}
	mi := &file_acervo_v1_acervo_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *SearchResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*SearchResponse) ProtoMessage() {}

func (x *SearchResponse) ProtoReflect() protoreflect.Message {
	mi := &file_acervo_v1_acervo_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use SearchResponse.ProtoReflect.Descriptor instead.
func (*SearchResponse) Descriptor() ([]byte, []int) {
	return file_acervo_v1_acervo_proto_rawDescGZIP(), []int{2}
}

func (x *SearchResponse) GetPage() int32 {
	if x != nil {
		return x.Page
	}
	return 0
}

func (x *SearchResponse) GetPageSize() int32 {
	if x != nil {
		return x.PageSize
	}
	return 0
}

func (x *SearchResponse) GetTotalResults() int32 {
	if x != nil {
		return x.TotalResults
	}
	return 0
}

func (x *SearchResponse) GetResults() []*SearchResult {
	if x != nil {
		return x.Results
	}
	return nil
}

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_acervo_v1_acervo_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_acervo_v1_acervo_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_acervo_v1_acervo_proto_rawDescGZIP(), []int{3}
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state      protoimpl.MessageState `protogen:"open.v1"`
	DocumentId string                 `protobuf:"bytes,1,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	SourcePath string                 `protobuf:"bytes,2,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Skipped    bool                   `protobuf:"varint,3,opt,name=skipped,proto3" json:"skipped,omitempty"`
	// "duplicate" or "unextractable" when skipped is true.
	SkipReason       string `protobuf:"bytes,4,opt,name=skip_reason,json=skipReason,proto3" json:"skip_reason,omitempty"`
	DateFound        bool   `protobuf:"varint,5,opt,name=date_found,json=dateFound,proto3" json:"date_found,omitempty"`
	ExtractionMethod string `protobuf:"bytes,6,opt,name=extraction_method,json=extractionMethod,proto3" json:"extraction_method,omitempty"`
	IngestedAt       string `protobuf:"bytes,7,opt,name=ingested_at,json=ingestedAt,proto3" json:"ingested_at,omitempty"`
	Error            string `protobuf:"bytes,8,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields    protoimpl.UnknownFields
	sizeCache        protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_acervo_v1_acervo_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_acervo_v1_acervo_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_acervo_v1_acervo_proto_rawDescGZIP(), []int{4}
}

func (x *IngestResponse) GetDocumentId() string {
	if x != nil {
		return x.DocumentId
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetSkipped() bool {
	if x != nil {
		return x.Skipped
	}
	return false
}

func (x *IngestResponse) GetSkipReason() string {
	if x != nil {
		return x.SkipReason
	}
	return ""
}

func (x *IngestResponse) GetDateFound() bool {
	if x != nil {
		return x.DateFound
	}
	return false
}

func (x *IngestResponse) GetExtractionMethod() string {
	if x != nil {
		return x.ExtractionMethod
	}
	return ""
}

func (x *IngestResponse) GetIngestedAt() string {
	if x != nil {
		return x.IngestedAt
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_acervo_v1_acervo_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_acervo_v1_acervo_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_acervo_v1_acervo_proto_rawDescGZIP(), []int{5}
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       int32                  `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Ingested      int32                  `protobuf:"varint,2,opt,name=ingested,proto3" json:"ingested,omitempty"`
	Duplicates    int32                  `protobuf:"varint,3,opt,name=duplicates,proto3" json:"duplicates,omitempty"`
	Unextractable int32                  `protobuf:"varint,4,opt,name=unextractable,proto3" json:"unextractable,omitempty"`
	Failed        int32                  `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_acervo_v1_acervo_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_acervo_v1_acervo_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_acervo_v1_acervo_proto_rawDescGZIP(), []int{6}
}

func (x *IngestDirectoryResponse) GetScanned() int32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetIngested() int32 {
	if x != nil {
		return x.Ingested
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDuplicates() int32 {
	if x != nil {
		return x.Duplicates
	}
	return 0
}

func (x *IngestDirectoryResponse) GetUnextractable() int32 {
	if x != nil {
		return x.Unextractable
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type BackfillDatesRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BackfillDatesRequest) Reset() {
	*x = BackfillDatesRequest{}
	mi := &file_acervo_v1_acervo_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BackfillDatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BackfillDatesRequest) ProtoMessage() {}

func (x *BackfillDatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_acervo_v1_acervo_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BackfillDatesRequest.ProtoReflect.Descriptor instead.
func (*BackfillDatesRequest) Descriptor() ([]byte, []int) {
	return file_acervo_v1_acervo_proto_rawDescGZIP(), []int{7}
}

type BackfillDatesResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       int32                  `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Dated         int32                  `protobuf:"varint,2,opt,name=dated,proto3" json:"dated,omitempty"`
	NoDate        int32                  `protobuf:"varint,3,opt,name=no_date,json=noDate,proto3" json:"no_date,omitempty"`
	Failed        int32                  `protobuf:"varint,4,opt,name=failed,proto3" json:"failed,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *BackfillDatesResponse) Reset() {
	*x = BackfillDatesResponse{}
	mi := &file_acervo_v1_acervo_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *BackfillDatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*BackfillDatesResponse) ProtoMessage() {}

func (x *BackfillDatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_acervo_v1_acervo_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use BackfillDatesResponse.ProtoReflect.Descriptor instead.
func (*BackfillDatesResponse) Descriptor() ([]byte, []int) {
	return file_acervo_v1_acervo_proto_rawDescGZIP(), []int{8}
}

func (x *BackfillDatesResponse) GetScanned() int32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *BackfillDatesResponse) GetDated() int32 {
	if x != nil {
		return x.Dated
	}
	return 0
}

func (x *BackfillDatesResponse) GetNoDate() int32 {
	if x != nil {
		return x.NoDate
	}
	return 0
}

func (x *BackfillDatesResponse) GetFailed() int32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

type DownloadDocumentRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileName      string                 `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DownloadDocumentRequest) Reset() {
	*x = DownloadDocumentRequest{}
	mi := &file_acervo_v1_acervo_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DownloadDocumentRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DownloadDocumentRequest) ProtoMessage() {}

func (x *DownloadDocumentRequest) ProtoReflect() protoreflect.Message {
	mi := &file_acervo_v1_acervo_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DownloadDocumentRequest.ProtoReflect.Descriptor instead.
func (*DownloadDocumentRequest) Descriptor() ([]byte, []int) {
	return file_acervo_v1_acervo_proto_rawDescGZIP(), []int{9}
}

func (x *DownloadDocumentRequest) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

type DownloadDocumentResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FileName      string                 `protobuf:"bytes,1,opt,name=file_name,json=fileName,proto3" json:"file_name,omitempty"`
	ContentType   string                 `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	Content       []byte                 `protobuf:"bytes,3,opt,name=content,proto3" json:"content,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *DownloadDocumentResponse) Reset() {
	*x = DownloadDocumentResponse{}
	mi := &file_acervo_v1_acervo_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *DownloadDocumentResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*DownloadDocumentResponse) ProtoMessage() {}

func (x *DownloadDocumentResponse) ProtoReflect() protoreflect.Message {
	mi := &file_acervo_v1_acervo_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use DownloadDocumentResponse.ProtoReflect.Descriptor instead.
func (*DownloadDocumentResponse) Descriptor() ([]byte, []int) {
	return file_acervo_v1_acervo_proto_rawDescGZIP(), []int{10}
}

func (x *DownloadDocumentResponse) GetFileName() string {
	if x != nil {
		return x.FileName
	}
	return ""
}

func (x *DownloadDocumentResponse) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

func (x *DownloadDocumentResponse) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

type ExportCatalogRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	FromDate      string                 `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string                 `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCatalogRequest) Reset() {
	*x = ExportCatalogRequest{}
	mi := &file_acervo_v1_acervo_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCatalogRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCatalogRequest) ProtoMessage() {}

func (x *ExportCatalogRequest) ProtoReflect() protoreflect.Message {
	mi := &file_acervo_v1_acervo_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCatalogRequest.ProtoReflect.Descriptor instead.
func (*ExportCatalogRequest) Descriptor() ([]byte, []int) {
	return file_acervo_v1_acervo_proto_rawDescGZIP(), []int{11}
}

func (x *ExportCatalogRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportCatalogRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportCatalogResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportCatalogResponse) Reset() {
	*x = ExportCatalogResponse{}
	mi := &file_acervo_v1_acervo_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportCatalogResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportCatalogResponse) ProtoMessage() {}

func (x *ExportCatalogResponse) ProtoReflect() protoreflect.Message {
	mi := &file_acervo_v1_acervo_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportCatalogResponse.ProtoReflect.Descriptor instead.
func (*ExportCatalogResponse) Descriptor() ([]byte, []int) {
	return file_acervo_v1_acervo_proto_rawDescGZIP(), []int{12}
}

func (x *ExportCatalogResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_acervo_v1_acervo_proto protoreflect.FileDescriptor

const file_acervo_v1_acervo_proto_rawDesc = "" +
	"\n" +
	"\x16acervo/v1/acervo.proto\x12\tacervo.v1\"\xb1\x01\n" +
	"\rSearchRequest\x12\x14\n" +
	"\x05query\x18\x01 \x01(\tR\x05query\x12\x1f\n" +
	"\vexact_match\x18\x02 \x01(\bR\n" +
	"exactMatch\x12\x12\n" +
	"\x04page\x18\x03 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x04 \x01(\x05R\bpageSize\x12\x1d\n" +
	"\n" +
	"start_date\x18\x05 \x01(\tR\tstartDate\x12\x19\n" +
	"\bend_date\x18\x06 \x01(\tR\aendDate\"b\n" +
	"\fSearchResult\x12\x1b\n" +
	"\tfile_name\x18\x01 \x01(\tR\bfileName\x12\x1b\n" +
	"\tfile_path\x18\x02 \x01(\tR\bfilePath\x12\x18\n" +
	"\asnippet\x18\x03 \x01(\tR\asnippet\"\x99\x01\n" +
	"\x0eSearchResponse\x12\x12\n" +
	"\x04page\x18\x01 \x01(\x05R\x04page\x12\x1b\n" +
	"\tpage_size\x18\x02 \x01(\x05R\bpageSize\x12#\n" +
	"\rtotal_results\x18\x03 \x01(\x05R\ftotalResults\x121\n" +
	"\aresults\x18\x04 \x03(\v2\x17.acervo.v1.SearchResultR\aresults\"'\n" +
	"\x11IngestFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"\x90\x02\n" +
	"\x0eIngestResponse\x12\x1f\n" +
	"\vdocument_id\x18\x01 \x01(\tR\n" +
	"documentId\x12\x1f\n" +
	"\vsource_path\x18\x02 \x01(\tR\n" +
	"sourcePath\x12\x18\n" +
	"\askipped\x18\x03 \x01(\bR\askipped\x12\x1f\n" +
	"\vskip_reason\x18\x04 \x01(\tR\n" +
	"skipReason\x12\x1d\n" +
	"\n" +
	"date_found\x18\x05 \x01(\bR\tdateFound\x12+\n" +
	"\x11extraction_method\x18\x06 \x01(\tR\x10extractionMethod\x12\x1f\n" +
	"\vingested_at\x18\a \x01(\tR\n" +
	"ingestedAt\x12\x14\n" +
	"\x05error\x18\b \x01(\tR\x05error\"5\n" +
	"\x16IngestDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\"\xe2\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\x05R\ascanned\x12\x1a\n" +
	"\bingested\x18\x02 \x01(\x05R\bingested\x12\x1e\n" +
	"\n" +
	"duplicates\x18\x03 \x01(\x05R\n" +
	"duplicates\x12$\n" +
	"\runextractable\x18\x04 \x01(\x05R\runextractable\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\x05R\x06failed\x123\n" +
	"\aresults\x18\x06 \x03(\v2\x19.acervo.v1.IngestResponseR\aresults\"\x16\n" +
	"\x14BackfillDatesRequest\"x\n" +
	"\x15BackfillDatesResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\x05R\ascanned\x12\x14\n" +
	"\x05dated\x18\x02 \x01(\x05R\x05dated\x12\x17\n" +
	"\ano_date\x18\x03 \x01(\x05R\x06noDate\x12\x16\n" +
	"\x06failed\x18\x04 \x01(\x05R\x06failed\"6\n" +
	"\x17DownloadDocumentRequest\x12\x1b\n" +
	"\tfile_name\x18\x01 \x01(\tR\bfileName\"t\n" +
	"\x18DownloadDocumentResponse\x12\x1b\n" +
	"\tfile_name\x18\x01 \x01(\tR\bfileName\x12!\n" +
	"\fcontent_type\x18\x02 \x01(\tR\vcontentType\x12\x18\n" +
	"\acontent\x18\x03 \x01(\fR\acontent\"L\n" +
	"\x14ExportCatalogRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"+\n" +
	"\x15ExportCatalogResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2N\n" +
	"\rSearchService\x12=\n" +
	"\x06Search\x12\x18.acervo.v1.SearchRequest\x1a\x19.acervo.v1.SearchResponse2\x87\x02\n" +
	"\x10IngestionService\x12E\n" +
	"\n" +
	"IngestFile\x12\x1c.acervo.v1.IngestFileRequest\x1a\x19.acervo.v1.IngestResponse\x12X\n" +
	"\x0fIngestDirectory\x12!.acervo.v1.IngestDirectoryRequest\x1a\".acervo.v1.IngestDirectoryResponse\x12R\n" +
	"\rBackfillDates\x12\x1f.acervo.v1.BackfillDatesRequest\x1a .acervo.v1.BackfillDatesResponse2j\n" +
	"\vFileService\x12[\n" +
	"\x10DownloadDocument\x12\".acervo.v1.DownloadDocumentRequest\x1a#.acervo.v1.DownloadDocumentResponse2c\n" +
	"\rExportService\x12R\n" +
	"\rExportCatalog\x12\x1f.acervo.v1.ExportCatalogRequest\x1a .acervo.v1.ExportCatalogResponseB;Z9github.com/acervo-dev/acervo/gen/proto/acervo/v1;acervopbb\x06proto3"

var (
	file_acervo_v1_acervo_proto_rawDescOnce sync.Once
	file_acervo_v1_acervo_proto_rawDescData []byte
)

func file_acervo_v1_acervo_proto_rawDescGZIP() []byte {
	file_acervo_v1_acervo_proto_rawDescOnce.Do(func() {
		file_acervo_v1_acervo_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_acervo_v1_acervo_proto_rawDesc), len(file_acervo_v1_acervo_proto_rawDesc)))
	})
	return file_acervo_v1_acervo_proto_rawDescData
}

var file_acervo_v1_acervo_proto_msgTypes = make([]protoimpl.MessageInfo, 13)
var file_acervo_v1_acervo_proto_goTypes = []any{
	(*SearchRequest)(nil),            // 0: acervo.v1.SearchRequest
	(*SearchResult)(nil),             // 1: acervo.v1.SearchResult
	(*SearchResponse)(nil),           // 2: acervo.v1.SearchResponse
	(*IngestFileRequest)(nil),        // 3: acervo.v1.IngestFileRequest
	(*IngestResponse)(nil),           // 4: acervo.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),   // 5: acervo.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil),  // 6: acervo.v1.IngestDirectoryResponse
	(*BackfillDatesRequest)(nil),     // 7: acervo.v1.BackfillDatesRequest
	(*BackfillDatesResponse)(nil),    // 8: acervo.v1.BackfillDatesResponse
	(*DownloadDocumentRequest)(nil),  // 9: acervo.v1.DownloadDocumentRequest
	(*DownloadDocumentResponse)(nil), // 10: acervo.v1.DownloadDocumentResponse
	(*ExportCatalogRequest)(nil),     // 11: acervo.v1.ExportCatalogRequest
	(*ExportCatalogResponse)(nil),    // 12: acervo.v1.ExportCatalogResponse
}
var file_acervo_v1_acervo_proto_depIdxs = []int32{
	1,  // 0: acervo.v1.SearchResponse.results:type_name -> acervo.v1.SearchResult
	4,  // 1: acervo.v1.IngestDirectoryResponse.results:type_name -> acervo.v1.IngestResponse
	0,  // 2: acervo.v1.SearchService.Search:input_type -> acervo.v1.SearchRequest
	3,  // 3: acervo.v1.IngestionService.IngestFile:input_type -> acervo.v1.IngestFileRequest
	5,  // 4: acervo.v1.IngestionService.IngestDirectory:input_type -> acervo.v1.IngestDirectoryRequest
	7,  // 5: acervo.v1.IngestionService.BackfillDates:input_type -> acervo.v1.BackfillDatesRequest
	9,  // 6: acervo.v1.FileService.DownloadDocument:input_type -> acervo.v1.DownloadDocumentRequest
	11, // 7: acervo.v1.ExportService.ExportCatalog:input_type -> acervo.v1.ExportCatalogRequest
	2,  // 8: acervo.v1.SearchService.Search:output_type -> acervo.v1.SearchResponse
	4,  // 9: acervo.v1.IngestionService.IngestFile:output_type -> acervo.v1.IngestResponse
	6,  // 10: acervo.v1.IngestionService.IngestDirectory:output_type -> acervo.v1.IngestDirectoryResponse
	8,  // 11: acervo.v1.IngestionService.BackfillDates:output_type -> acervo.v1.BackfillDatesResponse
	10, // 12: acervo.v1.FileService.DownloadDocument:output_type -> acervo.v1.DownloadDocumentResponse
	12, // 13: acervo.v1.ExportService.ExportCatalog:output_type -> acervo.v1.ExportCatalogResponse
	8,  // [8:14] is the sub-list for method output_type
	2,  // [2:8] is the sub-list for method input_type
	2,  // [2:2] is the sub-list for extension type_name
	2,  // [2:2] is the sub-list for extension extendee
	0,  // [0:2] is the sub-list for field type_name
}

func init() { file_acervo_v1_acervo_proto_init() }
func file_acervo_v1_acervo_proto_init() {
	if File_acervo_v1_acervo_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_acervo_v1_acervo_proto_rawDesc), len(file_acervo_v1_acervo_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   13,
			NumExtensions: 0,
			NumServices:   4,
		},
		GoTypes:           file_acervo_v1_acervo_proto_goTypes,
		DependencyIndexes: file_acervo_v1_acervo_proto_depIdxs,
		MessageInfos:      file_acervo_v1_acervo_proto_msgTypes,
	}.Build()
	File_acervo_v1_acervo_proto = out.File
	file_acervo_v1_acervo_proto_goTypes = nil
	file_acervo_v1_acervo_proto_depIdxs = nil
}
