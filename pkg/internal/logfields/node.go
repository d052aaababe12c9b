package logfields

import (
	"github.com/sirupsen/logrus"
)

// Node returns the fields identifying the host's cluster Node.
func Node(nodeName, machineID string) logrus.Fields {
	return logrus.Fields{
		"node":       nodeName,
		"machine-id": machineID,
	}
}

// Annotation returns the fields describing a single annotation write.
func Annotation(nodeName, key, value string) logrus.Fields {
	return logrus.Fields{
		"node":  nodeName,
		"key":   key,
		"value": value,
	}
}
