package cluster

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/SUSE/skuba-update/pkg/internal/testoutput"
	"github.com/SUSE/skuba-update/pkg/logging"
	"github.com/SUSE/skuba-update/pkg/marker"
	"github.com/SUSE/skuba-update/pkg/updates"
	"github.com/pkg/errors"
	"gotest.tools/assert"
	corev1 "k8s.io/api/core/v1"
	v1meta "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes/fake"
)

func testNode(name, machineID string) *corev1.Node {
	return &corev1.Node{
		ObjectMeta: v1meta.ObjectMeta{Name: name},
		Status: corev1.NodeStatus{
			NodeInfo: corev1.NodeSystemInfo{MachineID: machineID},
		},
	}
}

func TestAPIResolveAndPublish(t *testing.T) {
	ctx := context.Background()
	kube := fake.NewSimpleClientset(testNode("master-0", "aaaa"), testNode("worker-0", "bbbb"))
	log := testoutput.Logger(t, "cluster")
	api := NewAPI(log, kube)

	name, err := ResolveNodeName(ctx, api, "bbbb")
	assert.NilError(t, err)
	assert.Equal(t, name, "worker-0")

	err = NewAnnotator(log, api).Publish(ctx, name, updates.Summary{HasUpdates: true, HasSecurityUpdates: true})
	assert.NilError(t, err)

	node, err := kube.CoreV1().Nodes().Get(ctx, "worker-0", v1meta.GetOptions{})
	assert.NilError(t, err)
	assert.DeepEqual(t, node.Annotations, map[string]string{
		marker.HasUpdatesKey:           marker.Yes,
		marker.HasSecurityUpdatesKey:   marker.Yes,
		marker.HasDisruptiveUpdatesKey: marker.No,
	})

	other, err := kube.CoreV1().Nodes().Get(ctx, "master-0", v1meta.GetOptions{})
	assert.NilError(t, err)
	assert.Equal(t, len(other.Annotations), 0)
}

func TestAPIAnnotateUnsupportedKind(t *testing.T) {
	api := NewAPI(logging.New("cluster"), fake.NewSimpleClientset(testNode("worker-0", "bbbb")))
	err := api.Annotate(context.Background(), "pod", "worker-0", marker.HasUpdatesKey, marker.Yes)
	assert.ErrorContains(t, err, "unsupported resource kind")
}

func TestAPIFromMissingKubeconfig(t *testing.T) {
	ctx := context.Background()
	api := NewAPIFromKubeconfig(testoutput.Logger(t, "cluster"), filepath.Join(t.TempDir(), "kubelet.conf"))

	_, err := api.ListNodes(ctx)
	assert.Assert(t, errors.Is(err, ErrClusterUnreachable), "%v", err)
	assert.ErrorContains(t, err, "unable to create kubernetes client")

	err = api.Annotate(ctx, NodeKind, "worker-0", marker.HasUpdatesKey, marker.Yes)
	assert.Assert(t, errors.Is(err, ErrClusterUnreachable), "%v", err)
}
