package section

import (
	"github.com/arloliu/tuplekey/endian"
	"github.com/arloliu/tuplekey/errs"
	"github.com/arloliu/tuplekey/format"
)

// LayoutFlag is the packed option field at the start of a layout snapshot.
type LayoutFlag struct {
	// Options is a packed field for various options.
	// Bit 0 is endianness flag, 0 means little-endian, 1 means big-endian.
	// Bit 1 is membership flag, 0 means bounds only, 1 means exact membership sets follow.
	// Bit 2-3 are reserved for future use, must be set to 0.
	// Bit 4-15 are the magic number 0xD71.
	Options uint16
	// Version is the layout format version.
	Version uint8
}

// NewLayoutFlag creates a little-endian, bounds-only flag of the current version.
func NewLayoutFlag() LayoutFlag {
	return LayoutFlag{
		Options: MagicLayoutV1Opt,
		Version: format.LayoutVersion,
	}
}

// IsBigEndian returns whether the snapshot body is big-endian.
func (f LayoutFlag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian byte order.
func (f *LayoutFlag) WithLittleEndian() {
	f.Options &^= EndiannessMask
}

// WithBigEndian sets big-endian byte order.
func (f *LayoutFlag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// MembershipMode returns the membership mode recorded in the flag.
func (f LayoutFlag) MembershipMode() format.MembershipMode {
	if (f.Options & MembershipMask) != 0 {
		return format.MembershipExact
	}

	return format.MembershipBounds
}

// SetMembershipMode records the membership mode.
func (f *LayoutFlag) SetMembershipMode(mode format.MembershipMode) {
	if mode == format.MembershipExact {
		f.Options |= MembershipMask
	} else {
		f.Options &^= MembershipMask
	}
}

// GetEndianEngine returns the engine matching the endianness bit.
func (f LayoutFlag) GetEndianEngine() endian.EndianEngine {
	return endian.GetEngine(f.IsBigEndian())
}

// GetMagicNumber returns the magic number from the Options field.
func (f LayoutFlag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// Validate checks the magic number, reserved bits and version.
func (f LayoutFlag) Validate() error {
	if f.GetMagicNumber() != MagicLayoutV1Opt {
		return errs.ErrInvalidMagicNumber
	}

	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidLayout
	}

	if f.Version != format.LayoutVersion {
		return errs.ErrUnsupportedVersion
	}

	return nil
}
