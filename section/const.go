package section

const (
	// Bit masks of LayoutFlag.Options
	EndiannessMask   = 0x0001 // Mask for endianness bit (bit 0)
	MembershipMask   = 0x0002 // Mask for exact membership bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicLayoutV1Opt is the magic number of the layout snapshot format.
	MagicLayoutV1Opt = 0xD710

	// HeaderSize is the size of the layout header in bytes.
	HeaderSize = 16
	// FixedValueSize is the size of one fixed value slot in bytes.
	FixedValueSize = 4
	// PlanEntrySize is the size of one plan entry in bytes.
	PlanEntrySize = 20
	// MembershipLengthSize is the size of the length prefix of one membership set.
	MembershipLengthSize = 4

	// MaxDimensionCount bounds the dimension count accepted by the parser.
	MaxDimensionCount = 1 << 20
)
