package marker

type Key = string

const (
	// Prefix is the common base for the platform's node annotations.
	Prefix = "caasp.suse.com"

	// HasUpdatesKey marks a Node as having any patch pending.
	HasUpdatesKey Key = Prefix + "/has-updates"
	// HasSecurityUpdatesKey marks a Node as having a security patch pending.
	HasSecurityUpdatesKey Key = Prefix + "/has-security-updates"
	// HasDisruptiveUpdatesKey marks a Node as having a patch pending that
	// needs attention, a service restart or a reboot. The reboot coordinator
	// reads it to decide whether to sequence drains.
	HasDisruptiveUpdatesKey Key = Prefix + "/has-disruptive-updates"
)

// Keys lists the annotations in the order they are published.
var Keys = []Key{
	HasUpdatesKey,
	HasSecurityUpdatesKey,
	HasDisruptiveUpdatesKey,
}
