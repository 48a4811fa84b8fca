// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.33.0
// 	protoc        (unknown)
// source: internal/proto/engage/engage.proto

package engage

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type Candidate struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId     string   `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Username   string   `protobuf:"bytes,2,opt,name=username,proto3" json:"username,omitempty"`
	Age        uint32   `protobuf:"varint,3,opt,name=age,proto3" json:"age,omitempty"`
	Gender     string   `protobuf:"bytes,4,opt,name=gender,proto3" json:"gender,omitempty"`
	DistanceKm *float64 `protobuf:"fixed64,5,opt,name=distance_km,json=distanceKm,proto3,oneof" json:"distance_km,omitempty"`
}

func (x *Candidate) Reset() {
	*x = Candidate{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_proto_engage_engage_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Candidate) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Candidate) ProtoMessage() {}

func (x *Candidate) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_engage_engage_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Candidate.ProtoReflect.Descriptor instead.
func (*Candidate) Descriptor() ([]byte, []int) {
	return file_internal_proto_engage_engage_proto_rawDescGZIP(), []int{0}
}

func (x *Candidate) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *Candidate) GetUsername() string {
	if x != nil {
		return x.Username
	}
	return ""
}

func (x *Candidate) GetAge() uint32 {
	if x != nil {
		return x.Age
	}
	return 0
}

func (x *Candidate) GetGender() string {
	if x != nil {
		return x.Gender
	}
	return ""
}

func (x *Candidate) GetDistanceKm() float64 {
	if x != nil && x.DistanceKm != nil {
		return *x.DistanceKm
	}
	return 0
}

type FindCandidatesRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	Limit  uint32 `protobuf:"varint,2,opt,name=limit,proto3" json:"limit,omitempty"`
}

func (x *FindCandidatesRequest) Reset() {
	*x = FindCandidatesRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_proto_engage_engage_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *FindCandidatesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FindCandidatesRequest) ProtoMessage() {}

func (x *FindCandidatesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_engage_engage_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FindCandidatesRequest.ProtoReflect.Descriptor instead.
func (*FindCandidatesRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_engage_engage_proto_rawDescGZIP(), []int{1}
}

func (x *FindCandidatesRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *FindCandidatesRequest) GetLimit() uint32 {
	if x != nil {
		return x.Limit
	}
	return 0
}

type FindCandidatesResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Candidates []*Candidate `protobuf:"bytes,1,rep,name=candidates,proto3" json:"candidates,omitempty"`
}

func (x *FindCandidatesResponse) Reset() {
	*x = FindCandidatesResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_proto_engage_engage_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *FindCandidatesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*FindCandidatesResponse) ProtoMessage() {}

func (x *FindCandidatesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_engage_engage_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use FindCandidatesResponse.ProtoReflect.Descriptor instead.
func (*FindCandidatesResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_engage_engage_proto_rawDescGZIP(), []int{2}
}

func (x *FindCandidatesResponse) GetCandidates() []*Candidate {
	if x != nil {
		return x.Candidates
	}
	return nil
}

type PutSwipeRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ActorUserId  string `protobuf:"bytes,1,opt,name=actor_user_id,json=actorUserId,proto3" json:"actor_user_id,omitempty"`
	TargetUserId string `protobuf:"bytes,2,opt,name=target_user_id,json=targetUserId,proto3" json:"target_user_id,omitempty"`
	LikedTarget  bool   `protobuf:"varint,3,opt,name=liked_target,json=likedTarget,proto3" json:"liked_target,omitempty"`
}

func (x *PutSwipeRequest) Reset() {
	*x = PutSwipeRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_proto_engage_engage_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PutSwipeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PutSwipeRequest) ProtoMessage() {}

func (x *PutSwipeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_engage_engage_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PutSwipeRequest.ProtoReflect.Descriptor instead.
func (*PutSwipeRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_engage_engage_proto_rawDescGZIP(), []int{3}
}

func (x *PutSwipeRequest) GetActorUserId() string {
	if x != nil {
		return x.ActorUserId
	}
	return ""
}

func (x *PutSwipeRequest) GetTargetUserId() string {
	if x != nil {
		return x.TargetUserId
	}
	return ""
}

func (x *PutSwipeRequest) GetLikedTarget() bool {
	if x != nil {
		return x.LikedTarget
	}
	return false
}

type PutSwipeResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Persisted         bool   `protobuf:"varint,1,opt,name=persisted,proto3" json:"persisted,omitempty"`
	Duplicate         bool   `protobuf:"varint,2,opt,name=duplicate,proto3" json:"duplicate,omitempty"`
	MutualMatch       bool   `protobuf:"varint,3,opt,name=mutual_match,json=mutualMatch,proto3" json:"mutual_match,omitempty"`
	MatchId           string `protobuf:"bytes,4,opt,name=match_id,json=matchId,proto3" json:"match_id,omitempty"`
	Blocked           bool   `protobuf:"varint,5,opt,name=blocked,proto3" json:"blocked,omitempty"`
	BlockedReason     string `protobuf:"bytes,6,opt,name=blocked_reason,json=blockedReason,proto3" json:"blocked_reason,omitempty"`
	Warning           string `protobuf:"bytes,7,opt,name=warning,proto3" json:"warning,omitempty"`
	UndoWindowSeconds int64  `protobuf:"varint,8,opt,name=undo_window_seconds,json=undoWindowSeconds,proto3" json:"undo_window_seconds,omitempty"`
}

func (x *PutSwipeResponse) Reset() {
	*x = PutSwipeResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_proto_engage_engage_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *PutSwipeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*PutSwipeResponse) ProtoMessage() {}

func (x *PutSwipeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_engage_engage_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use PutSwipeResponse.ProtoReflect.Descriptor instead.
func (*PutSwipeResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_engage_engage_proto_rawDescGZIP(), []int{4}
}

func (x *PutSwipeResponse) GetPersisted() bool {
	if x != nil {
		return x.Persisted
	}
	return false
}

func (x *PutSwipeResponse) GetDuplicate() bool {
	if x != nil {
		return x.Duplicate
	}
	return false
}

func (x *PutSwipeResponse) GetMutualMatch() bool {
	if x != nil {
		return x.MutualMatch
	}
	return false
}

func (x *PutSwipeResponse) GetMatchId() string {
	if x != nil {
		return x.MatchId
	}
	return ""
}

func (x *PutSwipeResponse) GetBlocked() bool {
	if x != nil {
		return x.Blocked
	}
	return false
}

func (x *PutSwipeResponse) GetBlockedReason() string {
	if x != nil {
		return x.BlockedReason
	}
	return ""
}

func (x *PutSwipeResponse) GetWarning() string {
	if x != nil {
		return x.Warning
	}
	return ""
}

func (x *PutSwipeResponse) GetUndoWindowSeconds() int64 {
	if x != nil {
		return x.UndoWindowSeconds
	}
	return 0
}

type UndoSwipeRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (x *UndoSwipeRequest) Reset() {
	*x = UndoSwipeRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_proto_engage_engage_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *UndoSwipeRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UndoSwipeRequest) ProtoMessage() {}

func (x *UndoSwipeRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_engage_engage_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UndoSwipeRequest.ProtoReflect.Descriptor instead.
func (*UndoSwipeRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_engage_engage_proto_rawDescGZIP(), []int{5}
}

func (x *UndoSwipeRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type UndoSwipeResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Success      bool   `protobuf:"varint,1,opt,name=success,proto3" json:"success,omitempty"`
	Message      string `protobuf:"bytes,2,opt,name=message,proto3" json:"message,omitempty"`
	MatchRemoved bool   `protobuf:"varint,3,opt,name=match_removed,json=matchRemoved,proto3" json:"match_removed,omitempty"`
}

func (x *UndoSwipeResponse) Reset() {
	*x = UndoSwipeResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_proto_engage_engage_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *UndoSwipeResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*UndoSwipeResponse) ProtoMessage() {}

func (x *UndoSwipeResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_engage_engage_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use UndoSwipeResponse.ProtoReflect.Descriptor instead.
func (*UndoSwipeResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_engage_engage_proto_rawDescGZIP(), []int{6}
}

func (x *UndoSwipeResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *UndoSwipeResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

func (x *UndoSwipeResponse) GetMatchRemoved() bool {
	if x != nil {
		return x.MatchRemoved
	}
	return false
}

type GetDailyPickRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (x *GetDailyPickRequest) Reset() {
	*x = GetDailyPickRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_proto_engage_engage_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetDailyPickRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDailyPickRequest) ProtoMessage() {}

func (x *GetDailyPickRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_engage_engage_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDailyPickRequest.ProtoReflect.Descriptor instead.
func (*GetDailyPickRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_engage_engage_proto_rawDescGZIP(), []int{7}
}

func (x *GetDailyPickRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type GetDailyPickResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Available   bool       `protobuf:"varint,1,opt,name=available,proto3" json:"available,omitempty"`
	Candidate   *Candidate `protobuf:"bytes,2,opt,name=candidate,proto3" json:"candidate,omitempty"`
	Reason      string     `protobuf:"bytes,3,opt,name=reason,proto3" json:"reason,omitempty"`
	AlreadySeen bool       `protobuf:"varint,4,opt,name=already_seen,json=alreadySeen,proto3" json:"already_seen,omitempty"`
}

func (x *GetDailyPickResponse) Reset() {
	*x = GetDailyPickResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_proto_engage_engage_proto_msgTypes[8]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetDailyPickResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetDailyPickResponse) ProtoMessage() {}

func (x *GetDailyPickResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_engage_engage_proto_msgTypes[8]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetDailyPickResponse.ProtoReflect.Descriptor instead.
func (*GetDailyPickResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_engage_engage_proto_rawDescGZIP(), []int{8}
}

func (x *GetDailyPickResponse) GetAvailable() bool {
	if x != nil {
		return x.Available
	}
	return false
}

func (x *GetDailyPickResponse) GetCandidate() *Candidate {
	if x != nil {
		return x.Candidate
	}
	return nil
}

func (x *GetDailyPickResponse) GetReason() string {
	if x != nil {
		return x.Reason
	}
	return ""
}

func (x *GetDailyPickResponse) GetAlreadySeen() bool {
	if x != nil {
		return x.AlreadySeen
	}
	return false
}

type MarkDailyPickViewedRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
}

func (x *MarkDailyPickViewedRequest) Reset() {
	*x = MarkDailyPickViewedRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_proto_engage_engage_proto_msgTypes[9]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *MarkDailyPickViewedRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkDailyPickViewedRequest) ProtoMessage() {}

func (x *MarkDailyPickViewedRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_engage_engage_proto_msgTypes[9]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkDailyPickViewedRequest.ProtoReflect.Descriptor instead.
func (*MarkDailyPickViewedRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_engage_engage_proto_rawDescGZIP(), []int{9}
}

func (x *MarkDailyPickViewedRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

type MarkDailyPickViewedResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *MarkDailyPickViewedResponse) Reset() {
	*x = MarkDailyPickViewedResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_proto_engage_engage_proto_msgTypes[10]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *MarkDailyPickViewedResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MarkDailyPickViewedResponse) ProtoMessage() {}

func (x *MarkDailyPickViewedResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_engage_engage_proto_msgTypes[10]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MarkDailyPickViewedResponse.ProtoReflect.Descriptor instead.
func (*MarkDailyPickViewedResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_engage_engage_proto_rawDescGZIP(), []int{10}
}

type GetCompatibilityRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId      string `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	OtherUserId string `protobuf:"bytes,2,opt,name=other_user_id,json=otherUserId,proto3" json:"other_user_id,omitempty"`
}

func (x *GetCompatibilityRequest) Reset() {
	*x = GetCompatibilityRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_proto_engage_engage_proto_msgTypes[11]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetCompatibilityRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCompatibilityRequest) ProtoMessage() {}

func (x *GetCompatibilityRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_engage_engage_proto_msgTypes[11]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCompatibilityRequest.ProtoReflect.Descriptor instead.
func (*GetCompatibilityRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_engage_engage_proto_rawDescGZIP(), []int{11}
}

func (x *GetCompatibilityRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *GetCompatibilityRequest) GetOtherUserId() string {
	if x != nil {
		return x.OtherUserId
	}
	return ""
}

type GetCompatibilityResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Score           uint32   `protobuf:"varint,1,opt,name=score,proto3" json:"score,omitempty"`
	Label           string   `protobuf:"bytes,2,opt,name=label,proto3" json:"label,omitempty"`
	StarRating      uint32   `protobuf:"varint,3,opt,name=star_rating,json=starRating,proto3" json:"star_rating,omitempty"`
	PaceSyncLevel   string   `protobuf:"bytes,4,opt,name=pace_sync_level,json=paceSyncLevel,proto3" json:"pace_sync_level,omitempty"`
	SharedInterests []string `protobuf:"bytes,5,rep,name=shared_interests,json=sharedInterests,proto3" json:"shared_interests,omitempty"`
	Highlights      []string `protobuf:"bytes,6,rep,name=highlights,proto3" json:"highlights,omitempty"`
}

func (x *GetCompatibilityResponse) Reset() {
	*x = GetCompatibilityResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_proto_engage_engage_proto_msgTypes[12]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *GetCompatibilityResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetCompatibilityResponse) ProtoMessage() {}

func (x *GetCompatibilityResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_engage_engage_proto_msgTypes[12]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetCompatibilityResponse.ProtoReflect.Descriptor instead.
func (*GetCompatibilityResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_engage_engage_proto_rawDescGZIP(), []int{12}
}

func (x *GetCompatibilityResponse) GetScore() uint32 {
	if x != nil {
		return x.Score
	}
	return 0
}

func (x *GetCompatibilityResponse) GetLabel() string {
	if x != nil {
		return x.Label
	}
	return ""
}

func (x *GetCompatibilityResponse) GetStarRating() uint32 {
	if x != nil {
		return x.StarRating
	}
	return 0
}

func (x *GetCompatibilityResponse) GetPaceSyncLevel() string {
	if x != nil {
		return x.PaceSyncLevel
	}
	return ""
}

func (x *GetCompatibilityResponse) GetSharedInterests() []string {
	if x != nil {
		return x.SharedInterests
	}
	return nil
}

func (x *GetCompatibilityResponse) GetHighlights() []string {
	if x != nil {
		return x.Highlights
	}
	return nil
}

type ListMatchesRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	UserId          string  `protobuf:"bytes,1,opt,name=user_id,json=userId,proto3" json:"user_id,omitempty"`
	PaginationToken *string `protobuf:"bytes,2,opt,name=pagination_token,json=paginationToken,proto3,oneof" json:"pagination_token,omitempty"`
}

func (x *ListMatchesRequest) Reset() {
	*x = ListMatchesRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_proto_engage_engage_proto_msgTypes[13]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListMatchesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMatchesRequest) ProtoMessage() {}

func (x *ListMatchesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_engage_engage_proto_msgTypes[13]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMatchesRequest.ProtoReflect.Descriptor instead.
func (*ListMatchesRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_engage_engage_proto_rawDescGZIP(), []int{13}
}

func (x *ListMatchesRequest) GetUserId() string {
	if x != nil {
		return x.UserId
	}
	return ""
}

func (x *ListMatchesRequest) GetPaginationToken() string {
	if x != nil && x.PaginationToken != nil {
		return *x.PaginationToken
	}
	return ""
}

type ListMatchesResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Matches             []*ListMatchesResponse_Item `protobuf:"bytes,1,rep,name=matches,proto3" json:"matches,omitempty"`
	NextPaginationToken *string                     `protobuf:"bytes,2,opt,name=next_pagination_token,json=nextPaginationToken,proto3,oneof" json:"next_pagination_token,omitempty"`
}

func (x *ListMatchesResponse) Reset() {
	*x = ListMatchesResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_proto_engage_engage_proto_msgTypes[14]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListMatchesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMatchesResponse) ProtoMessage() {}

func (x *ListMatchesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_engage_engage_proto_msgTypes[14]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMatchesResponse.ProtoReflect.Descriptor instead.
func (*ListMatchesResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_engage_engage_proto_rawDescGZIP(), []int{14}
}

func (x *ListMatchesResponse) GetMatches() []*ListMatchesResponse_Item {
	if x != nil {
		return x.Matches
	}
	return nil
}

func (x *ListMatchesResponse) GetNextPaginationToken() string {
	if x != nil && x.NextPaginationToken != nil {
		return *x.NextPaginationToken
	}
	return ""
}

type CountLikedYouRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	RecipientUserId string `protobuf:"bytes,1,opt,name=recipient_user_id,json=recipientUserId,proto3" json:"recipient_user_id,omitempty"`
}

func (x *CountLikedYouRequest) Reset() {
	*x = CountLikedYouRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_proto_engage_engage_proto_msgTypes[15]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CountLikedYouRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CountLikedYouRequest) ProtoMessage() {}

func (x *CountLikedYouRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_engage_engage_proto_msgTypes[15]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CountLikedYouRequest.ProtoReflect.Descriptor instead.
func (*CountLikedYouRequest) Descriptor() ([]byte, []int) {
	return file_internal_proto_engage_engage_proto_rawDescGZIP(), []int{15}
}

func (x *CountLikedYouRequest) GetRecipientUserId() string {
	if x != nil {
		return x.RecipientUserId
	}
	return ""
}

type CountLikedYouResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Count uint64 `protobuf:"varint,1,opt,name=count,proto3" json:"count,omitempty"`
}

func (x *CountLikedYouResponse) Reset() {
	*x = CountLikedYouResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_proto_engage_engage_proto_msgTypes[16]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CountLikedYouResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CountLikedYouResponse) ProtoMessage() {}

func (x *CountLikedYouResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_engage_engage_proto_msgTypes[16]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CountLikedYouResponse.ProtoReflect.Descriptor instead.
func (*CountLikedYouResponse) Descriptor() ([]byte, []int) {
	return file_internal_proto_engage_engage_proto_rawDescGZIP(), []int{16}
}

func (x *CountLikedYouResponse) GetCount() uint64 {
	if x != nil {
		return x.Count
	}
	return 0
}

type ListMatchesResponse_Item struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	MatchId       string `protobuf:"bytes,1,opt,name=match_id,json=matchId,proto3" json:"match_id,omitempty"`
	OtherUserId   string `protobuf:"bytes,2,opt,name=other_user_id,json=otherUserId,proto3" json:"other_user_id,omitempty"`
	UnixTimestamp uint64 `protobuf:"varint,3,opt,name=unix_timestamp,json=unixTimestamp,proto3" json:"unix_timestamp,omitempty"`
}

func (x *ListMatchesResponse_Item) Reset() {
	*x = ListMatchesResponse_Item{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_proto_engage_engage_proto_msgTypes[17]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListMatchesResponse_Item) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListMatchesResponse_Item) ProtoMessage() {}

func (x *ListMatchesResponse_Item) ProtoReflect() protoreflect.Message {
	mi := &file_internal_proto_engage_engage_proto_msgTypes[17]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListMatchesResponse_Item.ProtoReflect.Descriptor instead.
func (*ListMatchesResponse_Item) Descriptor() ([]byte, []int) {
	return file_internal_proto_engage_engage_proto_rawDescGZIP(), []int{14, 0}
}

func (x *ListMatchesResponse_Item) GetMatchId() string {
	if x != nil {
		return x.MatchId
	}
	return ""
}

func (x *ListMatchesResponse_Item) GetOtherUserId() string {
	if x != nil {
		return x.OtherUserId
	}
	return ""
}

func (x *ListMatchesResponse_Item) GetUnixTimestamp() uint64 {
	if x != nil {
		return x.UnixTimestamp
	}
	return 0
}

var File_internal_proto_engage_engage_proto protoreflect.FileDescriptor

var file_internal_proto_engage_engage_proto_rawDesc = []byte{
	0x0a, 0x22, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x6e, 0x61, 0x6c, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x2f, 0x65, 0x6e, 0x67, 0x61, 0x67, 0x65, 0x2f, 0x65, 0x6e, 0x67, 0x61, 0x67, 0x65, 0x2e, 0x70,
	0x72, 0x6f, 0x74, 0x6f, 0x12, 0x06, 0x65, 0x6e, 0x67, 0x61, 0x67, 0x65, 0x22, 0xa0, 0x01, 0x0a,
	0x09, 0x43, 0x61, 0x6e, 0x64, 0x69, 0x64, 0x61, 0x74, 0x65, 0x12, 0x17, 0x0a, 0x07, 0x75, 0x73,
	0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x75, 0x73, 0x65,
	0x72, 0x49, 0x64, 0x12, 0x1a, 0x0a, 0x08, 0x75, 0x73, 0x65, 0x72, 0x6e, 0x61, 0x6d, 0x65, 0x18,
	0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x08, 0x75, 0x73, 0x65, 0x72, 0x6e, 0x61, 0x6d, 0x65, 0x12,
	0x10, 0x0a, 0x03, 0x61, 0x67, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x03, 0x61, 0x67,
	0x65, 0x12, 0x16, 0x0a, 0x06, 0x67, 0x65, 0x6e, 0x64, 0x65, 0x72, 0x18, 0x04, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x06, 0x67, 0x65, 0x6e, 0x64, 0x65, 0x72, 0x12, 0x24, 0x0a, 0x0b, 0x64, 0x69, 0x73,
	0x74, 0x61, 0x6e, 0x63, 0x65, 0x5f, 0x6b, 0x6d, 0x18, 0x05, 0x20, 0x01, 0x28, 0x01, 0x48, 0x00,
	0x52, 0x0a, 0x64, 0x69, 0x73, 0x74, 0x61, 0x6e, 0x63, 0x65, 0x4b, 0x6d, 0x88, 0x01, 0x01, 0x42,
	0x0e, 0x0a, 0x0c, 0x5f, 0x64, 0x69, 0x73, 0x74, 0x61, 0x6e, 0x63, 0x65, 0x5f, 0x6b, 0x6d, 0x22,
	0x46, 0x0a, 0x15, 0x46, 0x69, 0x6e, 0x64, 0x43, 0x61, 0x6e, 0x64, 0x69, 0x64, 0x61, 0x74, 0x65,
	0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x75, 0x73, 0x65, 0x72,
	0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x75, 0x73, 0x65, 0x72, 0x49,
	0x64, 0x12, 0x14, 0x0a, 0x05, 0x6c, 0x69, 0x6d, 0x69, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0d,
	0x52, 0x05, 0x6c, 0x69, 0x6d, 0x69, 0x74, 0x22, 0x4b, 0x0a, 0x16, 0x46, 0x69, 0x6e, 0x64, 0x43,
	0x61, 0x6e, 0x64, 0x69, 0x64, 0x61, 0x74, 0x65, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x31, 0x0a, 0x0a, 0x63, 0x61, 0x6e, 0x64, 0x69, 0x64, 0x61, 0x74, 0x65, 0x73, 0x18,
	0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x11, 0x2e, 0x65, 0x6e, 0x67, 0x61, 0x67, 0x65, 0x2e, 0x43,
	0x61, 0x6e, 0x64, 0x69, 0x64, 0x61, 0x74, 0x65, 0x52, 0x0a, 0x63, 0x61, 0x6e, 0x64, 0x69, 0x64,
	0x61, 0x74, 0x65, 0x73, 0x22, 0x7e, 0x0a, 0x0f, 0x50, 0x75, 0x74, 0x53, 0x77, 0x69, 0x70, 0x65,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x22, 0x0a, 0x0d, 0x61, 0x63, 0x74, 0x6f, 0x72,
	0x5f, 0x75, 0x73, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b,
	0x61, 0x63, 0x74, 0x6f, 0x72, 0x55, 0x73, 0x65, 0x72, 0x49, 0x64, 0x12, 0x24, 0x0a, 0x0e, 0x74,
	0x61, 0x72, 0x67, 0x65, 0x74, 0x5f, 0x75, 0x73, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0c, 0x74, 0x61, 0x72, 0x67, 0x65, 0x74, 0x55, 0x73, 0x65, 0x72, 0x49,
	0x64, 0x12, 0x21, 0x0a, 0x0c, 0x6c, 0x69, 0x6b, 0x65, 0x64, 0x5f, 0x74, 0x61, 0x72, 0x67, 0x65,
	0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0b, 0x6c, 0x69, 0x6b, 0x65, 0x64, 0x54, 0x61,
	0x72, 0x67, 0x65, 0x74, 0x22, 0x97, 0x02, 0x0a, 0x10, 0x50, 0x75, 0x74, 0x53, 0x77, 0x69, 0x70,
	0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x1c, 0x0a, 0x09, 0x70, 0x65, 0x72,
	0x73, 0x69, 0x73, 0x74, 0x65, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x09, 0x70, 0x65,
	0x72, 0x73, 0x69, 0x73, 0x74, 0x65, 0x64, 0x12, 0x1c, 0x0a, 0x09, 0x64, 0x75, 0x70, 0x6c, 0x69,
	0x63, 0x61, 0x74, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x08, 0x52, 0x09, 0x64, 0x75, 0x70, 0x6c,
	0x69, 0x63, 0x61, 0x74, 0x65, 0x12, 0x21, 0x0a, 0x0c, 0x6d, 0x75, 0x74, 0x75, 0x61, 0x6c, 0x5f,
	0x6d, 0x61, 0x74, 0x63, 0x68, 0x18, 0x03, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0b, 0x6d, 0x75, 0x74,
	0x75, 0x61, 0x6c, 0x4d, 0x61, 0x74, 0x63, 0x68, 0x12, 0x19, 0x0a, 0x08, 0x6d, 0x61, 0x74, 0x63,
	0x68, 0x5f, 0x69, 0x64, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x6d, 0x61, 0x74, 0x63,
	0x68, 0x49, 0x64, 0x12, 0x18, 0x0a, 0x07, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x18, 0x05,
	0x20, 0x01, 0x28, 0x08, 0x52, 0x07, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x12, 0x25, 0x0a,
	0x0e, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x5f, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e, 0x18,
	0x06, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0d, 0x62, 0x6c, 0x6f, 0x63, 0x6b, 0x65, 0x64, 0x52, 0x65,
	0x61, 0x73, 0x6f, 0x6e, 0x12, 0x18, 0x0a, 0x07, 0x77, 0x61, 0x72, 0x6e, 0x69, 0x6e, 0x67, 0x18,
	0x07, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x77, 0x61, 0x72, 0x6e, 0x69, 0x6e, 0x67, 0x12, 0x2e,
	0x0a, 0x13, 0x75, 0x6e, 0x64, 0x6f, 0x5f, 0x77, 0x69, 0x6e, 0x64, 0x6f, 0x77, 0x5f, 0x73, 0x65,
	0x63, 0x6f, 0x6e, 0x64, 0x73, 0x18, 0x08, 0x20, 0x01, 0x28, 0x03, 0x52, 0x11, 0x75, 0x6e, 0x64,
	0x6f, 0x57, 0x69, 0x6e, 0x64, 0x6f, 0x77, 0x53, 0x65, 0x63, 0x6f, 0x6e, 0x64, 0x73, 0x22, 0x2b,
	0x0a, 0x10, 0x55, 0x6e, 0x64, 0x6f, 0x53, 0x77, 0x69, 0x70, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65,
	0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x75, 0x73, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x06, 0x75, 0x73, 0x65, 0x72, 0x49, 0x64, 0x22, 0x6c, 0x0a, 0x11, 0x55,
	0x6e, 0x64, 0x6f, 0x53, 0x77, 0x69, 0x70, 0x65, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65,
	0x12, 0x18, 0x0a, 0x07, 0x73, 0x75, 0x63, 0x63, 0x65, 0x73, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x08, 0x52, 0x07, 0x73, 0x75, 0x63, 0x63, 0x65, 0x73, 0x73, 0x12, 0x18, 0x0a, 0x07, 0x6d, 0x65,
	0x73, 0x73, 0x61, 0x67, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x07, 0x6d, 0x65, 0x73,
	0x73, 0x61, 0x67, 0x65, 0x12, 0x23, 0x0a, 0x0d, 0x6d, 0x61, 0x74, 0x63, 0x68, 0x5f, 0x72, 0x65,
	0x6d, 0x6f, 0x76, 0x65, 0x64, 0x18, 0x03, 0x20, 0x01, 0x28, 0x08, 0x52, 0x0c, 0x6d, 0x61, 0x74,
	0x63, 0x68, 0x52, 0x65, 0x6d, 0x6f, 0x76, 0x65, 0x64, 0x22, 0x2e, 0x0a, 0x13, 0x47, 0x65, 0x74,
	0x44, 0x61, 0x69, 0x6c, 0x79, 0x50, 0x69, 0x63, 0x6b, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x12, 0x17, 0x0a, 0x07, 0x75, 0x73, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x06, 0x75, 0x73, 0x65, 0x72, 0x49, 0x64, 0x22, 0xa0, 0x01, 0x0a, 0x14, 0x47, 0x65,
	0x74, 0x44, 0x61, 0x69, 0x6c, 0x79, 0x50, 0x69, 0x63, 0x6b, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x1c, 0x0a, 0x09, 0x61, 0x76, 0x61, 0x69, 0x6c, 0x61, 0x62, 0x6c, 0x65, 0x18,
	0x01, 0x20, 0x01, 0x28, 0x08, 0x52, 0x09, 0x61, 0x76, 0x61, 0x69, 0x6c, 0x61, 0x62, 0x6c, 0x65,
	0x12, 0x2f, 0x0a, 0x09, 0x63, 0x61, 0x6e, 0x64, 0x69, 0x64, 0x61, 0x74, 0x65, 0x18, 0x02, 0x20,
	0x01, 0x28, 0x0b, 0x32, 0x11, 0x2e, 0x65, 0x6e, 0x67, 0x61, 0x67, 0x65, 0x2e, 0x43, 0x61, 0x6e,
	0x64, 0x69, 0x64, 0x61, 0x74, 0x65, 0x52, 0x09, 0x63, 0x61, 0x6e, 0x64, 0x69, 0x64, 0x61, 0x74,
	0x65, 0x12, 0x16, 0x0a, 0x06, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e, 0x18, 0x03, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x06, 0x72, 0x65, 0x61, 0x73, 0x6f, 0x6e, 0x12, 0x21, 0x0a, 0x0c, 0x61, 0x6c, 0x72,
	0x65, 0x61, 0x64, 0x79, 0x5f, 0x73, 0x65, 0x65, 0x6e, 0x18, 0x04, 0x20, 0x01, 0x28, 0x08, 0x52,
	0x0b, 0x61, 0x6c, 0x72, 0x65, 0x61, 0x64, 0x79, 0x53, 0x65, 0x65, 0x6e, 0x22, 0x35, 0x0a, 0x1a,
	0x4d, 0x61, 0x72, 0x6b, 0x44, 0x61, 0x69, 0x6c, 0x79, 0x50, 0x69, 0x63, 0x6b, 0x56, 0x69, 0x65,
	0x77, 0x65, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a, 0x07, 0x75, 0x73,
	0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06, 0x75, 0x73, 0x65,
	0x72, 0x49, 0x64, 0x22, 0x1d, 0x0a, 0x1b, 0x4d, 0x61, 0x72, 0x6b, 0x44, 0x61, 0x69, 0x6c, 0x79,
	0x50, 0x69, 0x63, 0x6b, 0x56, 0x69, 0x65, 0x77, 0x65, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x22, 0x56, 0x0a, 0x17, 0x47, 0x65, 0x74, 0x43, 0x6f, 0x6d, 0x70, 0x61, 0x74, 0x69,
	0x62, 0x69, 0x6c, 0x69, 0x74, 0x79, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a,
	0x07, 0x75, 0x73, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06,
	0x75, 0x73, 0x65, 0x72, 0x49, 0x64, 0x12, 0x22, 0x0a, 0x0d, 0x6f, 0x74, 0x68, 0x65, 0x72, 0x5f,
	0x75, 0x73, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x6f,
	0x74, 0x68, 0x65, 0x72, 0x55, 0x73, 0x65, 0x72, 0x49, 0x64, 0x22, 0xda, 0x01, 0x0a, 0x18, 0x47,
	0x65, 0x74, 0x43, 0x6f, 0x6d, 0x70, 0x61, 0x74, 0x69, 0x62, 0x69, 0x6c, 0x69, 0x74, 0x79, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x14, 0x0a, 0x05, 0x73, 0x63, 0x6f, 0x72, 0x65,
	0x18, 0x01, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x05, 0x73, 0x63, 0x6f, 0x72, 0x65, 0x12, 0x14, 0x0a,
	0x05, 0x6c, 0x61, 0x62, 0x65, 0x6c, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x05, 0x6c, 0x61,
	0x62, 0x65, 0x6c, 0x12, 0x1f, 0x0a, 0x0b, 0x73, 0x74, 0x61, 0x72, 0x5f, 0x72, 0x61, 0x74, 0x69,
	0x6e, 0x67, 0x18, 0x03, 0x20, 0x01, 0x28, 0x0d, 0x52, 0x0a, 0x73, 0x74, 0x61, 0x72, 0x52, 0x61,
	0x74, 0x69, 0x6e, 0x67, 0x12, 0x26, 0x0a, 0x0f, 0x70, 0x61, 0x63, 0x65, 0x5f, 0x73, 0x79, 0x6e,
	0x63, 0x5f, 0x6c, 0x65, 0x76, 0x65, 0x6c, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0d, 0x70,
	0x61, 0x63, 0x65, 0x53, 0x79, 0x6e, 0x63, 0x4c, 0x65, 0x76, 0x65, 0x6c, 0x12, 0x29, 0x0a, 0x10,
	0x73, 0x68, 0x61, 0x72, 0x65, 0x64, 0x5f, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x65, 0x73, 0x74, 0x73,
	0x18, 0x05, 0x20, 0x03, 0x28, 0x09, 0x52, 0x0f, 0x73, 0x68, 0x61, 0x72, 0x65, 0x64, 0x49, 0x6e,
	0x74, 0x65, 0x72, 0x65, 0x73, 0x74, 0x73, 0x12, 0x1e, 0x0a, 0x0a, 0x68, 0x69, 0x67, 0x68, 0x6c,
	0x69, 0x67, 0x68, 0x74, 0x73, 0x18, 0x06, 0x20, 0x03, 0x28, 0x09, 0x52, 0x0a, 0x68, 0x69, 0x67,
	0x68, 0x6c, 0x69, 0x67, 0x68, 0x74, 0x73, 0x22, 0x72, 0x0a, 0x12, 0x4c, 0x69, 0x73, 0x74, 0x4d,
	0x61, 0x74, 0x63, 0x68, 0x65, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x17, 0x0a,
	0x07, 0x75, 0x73, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x06,
	0x75, 0x73, 0x65, 0x72, 0x49, 0x64, 0x12, 0x2e, 0x0a, 0x10, 0x70, 0x61, 0x67, 0x69, 0x6e, 0x61,
	0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09,
	0x48, 0x00, 0x52, 0x0f, 0x70, 0x61, 0x67, 0x69, 0x6e, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x54, 0x6f,
	0x6b, 0x65, 0x6e, 0x88, 0x01, 0x01, 0x42, 0x13, 0x0a, 0x11, 0x5f, 0x70, 0x61, 0x67, 0x69, 0x6e,
	0x61, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x22, 0x92, 0x02, 0x0a, 0x13,
	0x4c, 0x69, 0x73, 0x74, 0x4d, 0x61, 0x74, 0x63, 0x68, 0x65, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f,
	0x6e, 0x73, 0x65, 0x12, 0x3a, 0x0a, 0x07, 0x6d, 0x61, 0x74, 0x63, 0x68, 0x65, 0x73, 0x18, 0x01,
	0x20, 0x03, 0x28, 0x0b, 0x32, 0x20, 0x2e, 0x65, 0x6e, 0x67, 0x61, 0x67, 0x65, 0x2e, 0x4c, 0x69,
	0x73, 0x74, 0x4d, 0x61, 0x74, 0x63, 0x68, 0x65, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x2e, 0x49, 0x74, 0x65, 0x6d, 0x52, 0x07, 0x6d, 0x61, 0x74, 0x63, 0x68, 0x65, 0x73, 0x12,
	0x37, 0x0a, 0x15, 0x6e, 0x65, 0x78, 0x74, 0x5f, 0x70, 0x61, 0x67, 0x69, 0x6e, 0x61, 0x74, 0x69,
	0x6f, 0x6e, 0x5f, 0x74, 0x6f, 0x6b, 0x65, 0x6e, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x48, 0x00,
	0x52, 0x13, 0x6e, 0x65, 0x78, 0x74, 0x50, 0x61, 0x67, 0x69, 0x6e, 0x61, 0x74, 0x69, 0x6f, 0x6e,
	0x54, 0x6f, 0x6b, 0x65, 0x6e, 0x88, 0x01, 0x01, 0x1a, 0x6c, 0x0a, 0x04, 0x49, 0x74, 0x65, 0x6d,
	0x12, 0x19, 0x0a, 0x08, 0x6d, 0x61, 0x74, 0x63, 0x68, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x07, 0x6d, 0x61, 0x74, 0x63, 0x68, 0x49, 0x64, 0x12, 0x22, 0x0a, 0x0d, 0x6f,
	0x74, 0x68, 0x65, 0x72, 0x5f, 0x75, 0x73, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x02, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x0b, 0x6f, 0x74, 0x68, 0x65, 0x72, 0x55, 0x73, 0x65, 0x72, 0x49, 0x64, 0x12,
	0x25, 0x0a, 0x0e, 0x75, 0x6e, 0x69, 0x78, 0x5f, 0x74, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d,
	0x70, 0x18, 0x03, 0x20, 0x01, 0x28, 0x04, 0x52, 0x0d, 0x75, 0x6e, 0x69, 0x78, 0x54, 0x69, 0x6d,
	0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x42, 0x18, 0x0a, 0x16, 0x5f, 0x6e, 0x65, 0x78, 0x74, 0x5f,
	0x70, 0x61, 0x67, 0x69, 0x6e, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x74, 0x6f, 0x6b, 0x65, 0x6e,
	0x22, 0x42, 0x0a, 0x14, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x4c, 0x69, 0x6b, 0x65, 0x64, 0x59, 0x6f,
	0x75, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12, 0x2a, 0x0a, 0x11, 0x72, 0x65, 0x63, 0x69,
	0x70, 0x69, 0x65, 0x6e, 0x74, 0x5f, 0x75, 0x73, 0x65, 0x72, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0f, 0x72, 0x65, 0x63, 0x69, 0x70, 0x69, 0x65, 0x6e, 0x74, 0x55, 0x73,
	0x65, 0x72, 0x49, 0x64, 0x22, 0x2d, 0x0a, 0x15, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x4c, 0x69, 0x6b,
	0x65, 0x64, 0x59, 0x6f, 0x75, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x14, 0x0a,
	0x05, 0x63, 0x6f, 0x75, 0x6e, 0x74, 0x18, 0x01, 0x20, 0x01, 0x28, 0x04, 0x52, 0x05, 0x63, 0x6f,
	0x75, 0x6e, 0x74, 0x32, 0xf9, 0x04, 0x0a, 0x0d, 0x45, 0x6e, 0x67, 0x61, 0x67, 0x65, 0x53, 0x65,
	0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x4f, 0x0a, 0x0e, 0x46, 0x69, 0x6e, 0x64, 0x43, 0x61, 0x6e,
	0x64, 0x69, 0x64, 0x61, 0x74, 0x65, 0x73, 0x12, 0x1d, 0x2e, 0x65, 0x6e, 0x67, 0x61, 0x67, 0x65,
	0x2e, 0x46, 0x69, 0x6e, 0x64, 0x43, 0x61, 0x6e, 0x64, 0x69, 0x64, 0x61, 0x74, 0x65, 0x73, 0x52,
	0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x1e, 0x2e, 0x65, 0x6e, 0x67, 0x61, 0x67, 0x65, 0x2e,
	0x46, 0x69, 0x6e, 0x64, 0x43, 0x61, 0x6e, 0x64, 0x69, 0x64, 0x61, 0x74, 0x65, 0x73, 0x52, 0x65,
	0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x3d, 0x0a, 0x08, 0x50, 0x75, 0x74, 0x53, 0x77, 0x69,
	0x70, 0x65, 0x12, 0x17, 0x2e, 0x65, 0x6e, 0x67, 0x61, 0x67, 0x65, 0x2e, 0x50, 0x75, 0x74, 0x53,
	0x77, 0x69, 0x70, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x18, 0x2e, 0x65, 0x6e,
	0x67, 0x61, 0x67, 0x65, 0x2e, 0x50, 0x75, 0x74, 0x53, 0x77, 0x69, 0x70, 0x65, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x40, 0x0a, 0x09, 0x55, 0x6e, 0x64, 0x6f, 0x53, 0x77, 0x69,
	0x70, 0x65, 0x12, 0x18, 0x2e, 0x65, 0x6e, 0x67, 0x61, 0x67, 0x65, 0x2e, 0x55, 0x6e, 0x64, 0x6f,
	0x53, 0x77, 0x69, 0x70, 0x65, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x19, 0x2e, 0x65,
	0x6e, 0x67, 0x61, 0x67, 0x65, 0x2e, 0x55, 0x6e, 0x64, 0x6f, 0x53, 0x77, 0x69, 0x70, 0x65, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x49, 0x0a, 0x0c, 0x47, 0x65, 0x74, 0x44, 0x61,
	0x69, 0x6c, 0x79, 0x50, 0x69, 0x63, 0x6b, 0x12, 0x1b, 0x2e, 0x65, 0x6e, 0x67, 0x61, 0x67, 0x65,
	0x2e, 0x47, 0x65, 0x74, 0x44, 0x61, 0x69, 0x6c, 0x79, 0x50, 0x69, 0x63, 0x6b, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x1c, 0x2e, 0x65, 0x6e, 0x67, 0x61, 0x67, 0x65, 0x2e, 0x47, 0x65,
	0x74, 0x44, 0x61, 0x69, 0x6c, 0x79, 0x50, 0x69, 0x63, 0x6b, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x5e, 0x0a, 0x13, 0x4d, 0x61, 0x72, 0x6b, 0x44, 0x61, 0x69, 0x6c, 0x79, 0x50,
	0x69, 0x63, 0x6b, 0x56, 0x69, 0x65, 0x77, 0x65, 0x64, 0x12, 0x22, 0x2e, 0x65, 0x6e, 0x67, 0x61,
	0x67, 0x65, 0x2e, 0x4d, 0x61, 0x72, 0x6b, 0x44, 0x61, 0x69, 0x6c, 0x79, 0x50, 0x69, 0x63, 0x6b,
	0x56, 0x69, 0x65, 0x77, 0x65, 0x64, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x23, 0x2e,
	0x65, 0x6e, 0x67, 0x61, 0x67, 0x65, 0x2e, 0x4d, 0x61, 0x72, 0x6b, 0x44, 0x61, 0x69, 0x6c, 0x79,
	0x50, 0x69, 0x63, 0x6b, 0x56, 0x69, 0x65, 0x77, 0x65, 0x64, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x55, 0x0a, 0x10, 0x47, 0x65, 0x74, 0x43, 0x6f, 0x6d, 0x70, 0x61, 0x74, 0x69,
	0x62, 0x69, 0x6c, 0x69, 0x74, 0x79, 0x12, 0x1f, 0x2e, 0x65, 0x6e, 0x67, 0x61, 0x67, 0x65, 0x2e,
	0x47, 0x65, 0x74, 0x43, 0x6f, 0x6d, 0x70, 0x61, 0x74, 0x69, 0x62, 0x69, 0x6c, 0x69, 0x74, 0x79,
	0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x20, 0x2e, 0x65, 0x6e, 0x67, 0x61, 0x67, 0x65,
	0x2e, 0x47, 0x65, 0x74, 0x43, 0x6f, 0x6d, 0x70, 0x61, 0x74, 0x69, 0x62, 0x69, 0x6c, 0x69, 0x74,
	0x79, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x46, 0x0a, 0x0b, 0x4c, 0x69, 0x73,
	0x74, 0x4d, 0x61, 0x74, 0x63, 0x68, 0x65, 0x73, 0x12, 0x1a, 0x2e, 0x65, 0x6e, 0x67, 0x61, 0x67,
	0x65, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x4d, 0x61, 0x74, 0x63, 0x68, 0x65, 0x73, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x1a, 0x1b, 0x2e, 0x65, 0x6e, 0x67, 0x61, 0x67, 0x65, 0x2e, 0x4c, 0x69,
	0x73, 0x74, 0x4d, 0x61, 0x74, 0x63, 0x68, 0x65, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73,
	0x65, 0x12, 0x4c, 0x0a, 0x0d, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x4c, 0x69, 0x6b, 0x65, 0x64, 0x59,
	0x6f, 0x75, 0x12, 0x1c, 0x2e, 0x65, 0x6e, 0x67, 0x61, 0x67, 0x65, 0x2e, 0x43, 0x6f, 0x75, 0x6e,
	0x74, 0x4c, 0x69, 0x6b, 0x65, 0x64, 0x59, 0x6f, 0x75, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x1a, 0x1d, 0x2e, 0x65, 0x6e, 0x67, 0x61, 0x67, 0x65, 0x2e, 0x43, 0x6f, 0x75, 0x6e, 0x74, 0x4c,
	0x69, 0x6b, 0x65, 0x64, 0x59, 0x6f, 0x75, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42,
	0x35, 0x5a, 0x33, 0x67, 0x69, 0x74, 0x68, 0x75, 0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x6b, 0x69,
	0x6e, 0x64, 0x6c, 0x65, 0x64, 0x61, 0x70, 0x70, 0x2f, 0x6b, 0x69, 0x6e, 0x64, 0x6c, 0x65, 0x64,
	0x2f, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x6e, 0x61, 0x6c, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x2f,
	0x65, 0x6e, 0x67, 0x61, 0x67, 0x65, 0x62, 0x06, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_internal_proto_engage_engage_proto_rawDescOnce sync.Once
	file_internal_proto_engage_engage_proto_rawDescData = file_internal_proto_engage_engage_proto_rawDesc
)

func file_internal_proto_engage_engage_proto_rawDescGZIP() []byte {
	file_internal_proto_engage_engage_proto_rawDescOnce.Do(func() {
		file_internal_proto_engage_engage_proto_rawDescData = protoimpl.X.CompressGZIP(file_internal_proto_engage_engage_proto_rawDescData)
	})
	return file_internal_proto_engage_engage_proto_rawDescData
}

var file_internal_proto_engage_engage_proto_msgTypes = make([]protoimpl.MessageInfo, 18)
var file_internal_proto_engage_engage_proto_goTypes = []interface{}{
	(*Candidate)(nil),                   // 0: engage.Candidate
	(*FindCandidatesRequest)(nil),       // 1: engage.FindCandidatesRequest
	(*FindCandidatesResponse)(nil),      // 2: engage.FindCandidatesResponse
	(*PutSwipeRequest)(nil),             // 3: engage.PutSwipeRequest
	(*PutSwipeResponse)(nil),            // 4: engage.PutSwipeResponse
	(*UndoSwipeRequest)(nil),            // 5: engage.UndoSwipeRequest
	(*UndoSwipeResponse)(nil),           // 6: engage.UndoSwipeResponse
	(*GetDailyPickRequest)(nil),         // 7: engage.GetDailyPickRequest
	(*GetDailyPickResponse)(nil),        // 8: engage.GetDailyPickResponse
	(*MarkDailyPickViewedRequest)(nil),  // 9: engage.MarkDailyPickViewedRequest
	(*MarkDailyPickViewedResponse)(nil), // 10: engage.MarkDailyPickViewedResponse
	(*GetCompatibilityRequest)(nil),     // 11: engage.GetCompatibilityRequest
	(*GetCompatibilityResponse)(nil),    // 12: engage.GetCompatibilityResponse
	(*ListMatchesRequest)(nil),          // 13: engage.ListMatchesRequest
	(*ListMatchesResponse)(nil),         // 14: engage.ListMatchesResponse
	(*CountLikedYouRequest)(nil),        // 15: engage.CountLikedYouRequest
	(*CountLikedYouResponse)(nil),       // 16: engage.CountLikedYouResponse
	(*ListMatchesResponse_Item)(nil),    // 17: engage.ListMatchesResponse.Item
}
var file_internal_proto_engage_engage_proto_depIdxs = []int32{
	0,  // 0: engage.FindCandidatesResponse.candidates:type_name -> engage.Candidate
	0,  // 1: engage.GetDailyPickResponse.candidate:type_name -> engage.Candidate
	17, // 2: engage.ListMatchesResponse.matches:type_name -> engage.ListMatchesResponse.Item
	1,  // 3: engage.EngageService.FindCandidates:input_type -> engage.FindCandidatesRequest
	3,  // 4: engage.EngageService.PutSwipe:input_type -> engage.PutSwipeRequest
	5,  // 5: engage.EngageService.UndoSwipe:input_type -> engage.UndoSwipeRequest
	7,  // 6: engage.EngageService.GetDailyPick:input_type -> engage.GetDailyPickRequest
	9,  // 7: engage.EngageService.MarkDailyPickViewed:input_type -> engage.MarkDailyPickViewedRequest
	11, // 8: engage.EngageService.GetCompatibility:input_type -> engage.GetCompatibilityRequest
	13, // 9: engage.EngageService.ListMatches:input_type -> engage.ListMatchesRequest
	15, // 10: engage.EngageService.CountLikedYou:input_type -> engage.CountLikedYouRequest
	2,  // 11: engage.EngageService.FindCandidates:output_type -> engage.FindCandidatesResponse
	4,  // 12: engage.EngageService.PutSwipe:output_type -> engage.PutSwipeResponse
	6,  // 13: engage.EngageService.UndoSwipe:output_type -> engage.UndoSwipeResponse
	8,  // 14: engage.EngageService.GetDailyPick:output_type -> engage.GetDailyPickResponse
	10, // 15: engage.EngageService.MarkDailyPickViewed:output_type -> engage.MarkDailyPickViewedResponse
	12, // 16: engage.EngageService.GetCompatibility:output_type -> engage.GetCompatibilityResponse
	14, // 17: engage.EngageService.ListMatches:output_type -> engage.ListMatchesResponse
	16, // 18: engage.EngageService.CountLikedYou:output_type -> engage.CountLikedYouResponse
	11, // [11:19] is the sub-list for method output_type
	3,  // [3:11] is the sub-list for method input_type
	3,  // [3:3] is the sub-list for extension type_name
	3,  // [3:3] is the sub-list for extension extendee
	0,  // [0:3] is the sub-list for field type_name
}

func init() { file_internal_proto_engage_engage_proto_init() }
func file_internal_proto_engage_engage_proto_init() {
	if File_internal_proto_engage_engage_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_internal_proto_engage_engage_proto_msgTypes[0].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*Candidate); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_proto_engage_engage_proto_msgTypes[1].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*FindCandidatesRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_proto_engage_engage_proto_msgTypes[2].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*FindCandidatesResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_proto_engage_engage_proto_msgTypes[3].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*PutSwipeRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_proto_engage_engage_proto_msgTypes[4].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*PutSwipeResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_proto_engage_engage_proto_msgTypes[5].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*UndoSwipeRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_proto_engage_engage_proto_msgTypes[6].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*UndoSwipeResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_proto_engage_engage_proto_msgTypes[7].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*GetDailyPickRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_proto_engage_engage_proto_msgTypes[8].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*GetDailyPickResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_proto_engage_engage_proto_msgTypes[9].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*MarkDailyPickViewedRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_proto_engage_engage_proto_msgTypes[10].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*MarkDailyPickViewedResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_proto_engage_engage_proto_msgTypes[11].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*GetCompatibilityRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_proto_engage_engage_proto_msgTypes[12].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*GetCompatibilityResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_proto_engage_engage_proto_msgTypes[13].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*ListMatchesRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_proto_engage_engage_proto_msgTypes[14].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*ListMatchesResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_proto_engage_engage_proto_msgTypes[15].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*CountLikedYouRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_proto_engage_engage_proto_msgTypes[16].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*CountLikedYouResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_proto_engage_engage_proto_msgTypes[17].Exporter = func(v interface{}, i int) interface{} {
			switch v := v.(*ListMatchesResponse_Item); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	file_internal_proto_engage_engage_proto_msgTypes[0].OneofWrappers = []interface{}{}
	file_internal_proto_engage_engage_proto_msgTypes[13].OneofWrappers = []interface{}{}
	file_internal_proto_engage_engage_proto_msgTypes[14].OneofWrappers = []interface{}{}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_internal_proto_engage_engage_proto_rawDesc,
			NumEnums:      0,
			NumMessages:   18,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_internal_proto_engage_engage_proto_goTypes,
		DependencyIndexes: file_internal_proto_engage_engage_proto_depIdxs,
		MessageInfos:      file_internal_proto_engage_engage_proto_msgTypes,
	}.Build()
	File_internal_proto_engage_engage_proto = out.File
	file_internal_proto_engage_engage_proto_rawDesc = nil
	file_internal_proto_engage_engage_proto_goTypes = nil
	file_internal_proto_engage_engage_proto_depIdxs = nil
}
