package cluster

import (
	"context"
	"testing"

	"github.com/SUSE/skuba-update/pkg/command"
	"github.com/SUSE/skuba-update/pkg/internal/testoutput"
	"github.com/SUSE/skuba-update/pkg/logging"
	"github.com/pkg/errors"
	"gotest.tools/assert"
)

const nodeListing = `{
  "apiVersion": "v1",
  "kind": "List",
  "items": [
    {"metadata": {"name": "master-0"}, "status": {"nodeInfo": {"machineID": "aaaa"}}},
    {"metadata": {"name": "worker-0"}, "status": {"nodeInfo": {"machineID": "bbbb"}}}
  ]
}`

type testExecuter struct {
	t *testing.T

	expectedArgs []string
	exit         int
	stdout       string
	returnErr    error
}

func (fake *testExecuter) Run(argv []string, env map[string]string) (*command.Outcome, error) {
	assert.DeepEqual(fake.t, fake.expectedArgs, argv)
	assert.DeepEqual(fake.t, env, map[string]string{"KUBECONFIG": DefaultKubeconfig})
	if fake.returnErr != nil {
		return nil, fake.returnErr
	}
	return &command.Outcome{
		ExitCode: fake.exit,
		Stdout:   []byte(fake.stdout),
		Stderr:   []byte(command.NoStderr),
	}, nil
}

func testKubectl(t *testing.T) (*Kubectl, *testExecuter) {
	executer := &testExecuter{t: t}
	return NewKubectl(testoutput.Logger(t, "cluster"), executer, DefaultKubeconfig), executer
}

func TestKubectlListNodes(t *testing.T) {
	k, fake := testKubectl(t)
	fake.expectedArgs = []string{"kubectl", "get", "node", "-o", "json"}
	fake.stdout = nodeListing

	list, err := k.ListNodes(context.Background())
	assert.NilError(t, err)
	assert.Equal(t, len(list.Items), 2)
	assert.Equal(t, list.Items[1].GetName(), "worker-0")
	assert.Equal(t, list.Items[1].Status.NodeInfo.MachineID, "bbbb")
}

func TestKubectlListNodesUnreachable(t *testing.T) {
	k, fake := testKubectl(t)
	fake.expectedArgs = []string{"kubectl", "get", "node", "-o", "json"}

	fake.exit = 1
	_, err := k.ListNodes(context.Background())
	assert.Assert(t, errors.Is(err, ErrClusterUnreachable))

	fake.exit = 0
	fake.returnErr = errors.New("executable file not found")
	_, err = k.ListNodes(context.Background())
	assert.Assert(t, errors.Is(err, ErrClusterUnreachable))
	assert.ErrorContains(t, err, "executable file not found")
}

func TestKubectlListNodesMalformed(t *testing.T) {
	for _, stdout := range []string{
		"",
		"not json",
		`{"kind": "List"}`,
		`{"items": "nope"}`,
		`[]`,
	} {
		k, fake := testKubectl(t)
		fake.expectedArgs = []string{"kubectl", "get", "node", "-o", "json"}
		fake.stdout = stdout
		_, err := k.ListNodes(context.Background())
		assert.Assert(t, errors.Is(err, ErrMalformedListing), "stdout %q: %v", stdout, err)
	}
}

func TestKubectlAnnotate(t *testing.T) {
	k, fake := testKubectl(t)
	fake.expectedArgs = []string{"kubectl", "annotate", "--overwrite", "node", "worker-0", "caasp.suse.com/has-updates=yes"}
	assert.NilError(t, k.Annotate(context.Background(), NodeKind, "worker-0", "caasp.suse.com/has-updates", "yes"))

	fake.exit = 1
	err := k.Annotate(context.Background(), NodeKind, "worker-0", "caasp.suse.com/has-updates", "yes")
	assert.ErrorContains(t, err, "exited with 1")
}

func TestNewKubectlWithoutKubeconfig(t *testing.T) {
	k := NewKubectl(logging.New("cluster"), nil, "")
	assert.Assert(t, k.env == nil)
}
