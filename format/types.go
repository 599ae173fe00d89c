package format

// MembershipMode selects how an encoder validates a coordinate against its declared values.
type MembershipMode uint8

const (
	// MembershipBounds accepts any coordinate within [min, max] of its dimension.
	// Values in the gaps of a non-contiguous declaration are encoded as if declared.
	MembershipBounds MembershipMode = 0x1
	// MembershipExact accepts only declared values, checked against a per-dimension set.
	MembershipExact MembershipMode = 0x2
)

// LayoutVersion is the layout snapshot version written by this module.
const LayoutVersion uint8 = 1

func (m MembershipMode) String() string {
	switch m {
	case MembershipBounds:
		return "Bounds"
	case MembershipExact:
		return "Exact"
	default:
		return "Unknown"
	}
}
