// Agent runs one update pass on the host. It drives the package manager
// through refresh, patch and restart, raises the reboot marker for the reboot
// coordinator and publishes the remaining update state on the host's Node.
//
// The Agent keeps no state between runs. The reboot marker and the Node
// annotations are the only things it leaves behind, and it never clears
// either of them: the coordinator owns the marker once it exists, and the
// next run overwrites the annotations.
package agent
