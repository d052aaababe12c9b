package k8sutil

import (
	"context"
	"encoding/json"

	"github.com/SUSE/skuba-update/pkg/logging"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	v1meta "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	v1 "k8s.io/client-go/kubernetes/typed/core/v1"
)

// PostAnnotations overwrites the given annotations on the named Node with a
// JSON merge patch. Other annotations on the Node are left as they are.
func PostAnnotations(ctx context.Context, nc v1.NodeInterface, nodeName string, annotations map[string]string) error {
	patch, err := json.Marshal(map[string]interface{}{
		"metadata": map[string]interface{}{
			"annotations": annotations,
		},
	})
	if err != nil {
		return errors.Wrap(err, "unable to encode annotation patch")
	}
	node, err := nc.Patch(ctx, nodeName, types.MergePatchType, patch, v1meta.PatchOptions{})
	if err != nil {
		return errors.WithMessage(err, "unable to patch node")
	}
	if logging.Debuggable {
		l := logging.New("k8sutil")
		l.WithFields(logrus.Fields{
			"node":        nodeName,
			"annotations": node.GetAnnotations(),
		}).Debug("merged in new metadata")
	}
	return nil
}
