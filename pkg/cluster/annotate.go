package cluster

import (
	"context"

	"github.com/SUSE/skuba-update/pkg/internal/logfields"
	"github.com/SUSE/skuba-update/pkg/logging"
	"github.com/SUSE/skuba-update/pkg/marker"
	"github.com/SUSE/skuba-update/pkg/updates"
	"github.com/pkg/errors"
)

// Annotator publishes an update Summary onto a Node.
type Annotator struct {
	log    logging.Logger
	client Client
}

func NewAnnotator(log logging.Logger, client Client) *Annotator {
	return &Annotator{log: log, client: client}
}

// Values maps each annotation key to the value describing s.
func Values(s updates.Summary) map[marker.Key]marker.Value {
	return map[marker.Key]marker.Value{
		marker.HasUpdatesKey:           marker.FromBool(s.HasUpdates),
		marker.HasSecurityUpdatesKey:   marker.FromBool(s.HasSecurityUpdates),
		marker.HasDisruptiveUpdatesKey: marker.FromBool(s.HasDisruptiveUpdates),
	}
}

// Publish annotates nodeName with every key in marker.Keys order. A failed
// key does not stop the remaining ones; the returned error counts them.
func (a *Annotator) Publish(ctx context.Context, nodeName string, s updates.Summary) error {
	values := Values(s)
	failed := 0
	for _, key := range marker.Keys {
		value := values[key]
		log := a.log.WithFields(logfields.Annotation(nodeName, key, value))
		if err := a.client.Annotate(ctx, NodeKind, nodeName, key, value); err != nil {
			log.WithError(err).Warn("unable to annotate node")
			failed++
			continue
		}
		log.Debug("annotated node")
	}
	if failed > 0 {
		return errors.Errorf("%d of %d annotations failed", failed, len(marker.Keys))
	}
	a.log.WithField("node", nodeName).Info("published update state")
	return nil
}
