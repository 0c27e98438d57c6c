// Package header provides the response header attached to every reply of
// the store. It identifies the cluster and member that served the request
// and the revision the reply was computed at.
package header

import (
	"errors"
	"fmt"

	"go.etcd.io/etcd/api/v3/etcdserverpb"
)

// ErrMissing is returned when a reply carries no header.
var ErrMissing = errors.New("response header is missing")

// Header is cluster and revision metadata of a reply.
type Header struct {
	// ClusterID is the ID of the cluster which sent the response.
	ClusterID uint64
	// MemberID is the ID of the member which sent the response.
	MemberID uint64
	// Revision is the key-value store revision when the request was applied.
	Revision int64
	// RaftTerm is the raft term when the request was applied.
	RaftTerm uint64
}

// FromProto converts a wire header. A nil header is an error, never a zero Header.
func FromProto(pb *etcdserverpb.ResponseHeader) (Header, error) {
	if pb == nil {
		return Header{}, ErrMissing
	}

	return Header{
		ClusterID: pb.GetClusterId(),
		MemberID:  pb.GetMemberId(),
		Revision:  pb.GetRevision(),
		RaftTerm:  pb.GetRaftTerm(),
	}, nil
}

func (h Header) String() string {
	return fmt.Sprintf("cluster=%x member=%x revision=%d term=%d", h.ClusterID, h.MemberID, h.Revision, h.RaftTerm)
}
