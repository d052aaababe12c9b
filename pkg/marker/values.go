package marker

// Value is the wire form of an annotation flag.
type Value = string

const (
	Yes Value = "yes"
	No  Value = "no"
)

// FromBool converts a flag into its annotation value.
func FromBool(b bool) Value {
	if b {
		return Yes
	}
	return No
}
