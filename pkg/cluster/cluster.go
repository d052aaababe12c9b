// Package cluster resolves the host's Node in the cluster and publishes the
// update flags on it. Two backends are provided: the kubectl client used by
// default and a client-go backend talking to the API server directly.
package cluster

import (
	"context"

	"github.com/pkg/errors"
	corev1 "k8s.io/api/core/v1"
)

// NodeKind is the resource kind annotated by the agent.
const NodeKind = "node"

var (
	ErrMissingMachineID   = errors.New("machine id is missing")
	ErrClusterUnreachable = errors.New("cluster is unreachable")
	ErrNoMatchingNode     = errors.New("no node matches the machine id")
	ErrAmbiguousNode      = errors.New("more than one node matches the machine id")
	ErrMalformedListing   = errors.New("malformed node listing")
)

// Client is the subset of cluster operations the agent relies on.
type Client interface {
	// ListNodes returns every Node registered in the cluster.
	ListNodes(ctx context.Context) (*corev1.NodeList, error)
	// Annotate sets key to value on the named resource, overwriting any
	// existing value.
	Annotate(ctx context.Context, kind, name, key, value string) error
}
