package cluster

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// MachineIDPath holds the host's stable identity.
const MachineIDPath = "/etc/machine-id"

// ReadMachineID returns the machine id stored at path, stripped of
// surrounding whitespace.
func ReadMachineID(path string) (string, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", errors.WithMessagef(ErrMissingMachineID, "%s does not exist", path)
	}
	if err != nil {
		return "", errors.Wrapf(err, "unable to read %s", path)
	}
	id := strings.TrimSpace(string(data))
	if id == "" {
		return "", errors.WithMessagef(ErrMissingMachineID, "%s is empty", path)
	}
	return id, nil
}

// ResolveNodeName returns the name of the single Node whose reported machine
// id is machineID.
func ResolveNodeName(ctx context.Context, c Client, machineID string) (string, error) {
	list, err := c.ListNodes(ctx)
	if err != nil {
		return "", err
	}
	var matches []string
	for i := range list.Items {
		node := &list.Items[i]
		if node.Status.NodeInfo.MachineID == machineID {
			matches = append(matches, node.GetName())
		}
	}
	switch len(matches) {
	case 0:
		return "", errors.WithMessagef(ErrNoMatchingNode, "machine id %s", machineID)
	case 1:
		return matches[0], nil
	}
	return "", errors.WithMessagef(ErrAmbiguousNode, "machine id %s is reported by %s",
		machineID, strings.Join(matches, ", "))
}
