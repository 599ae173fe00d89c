// Package section defines the binary structures of a tuplekey layout snapshot.
//
// A layout snapshot captures everything an encoder needs to reproduce its index
// mapping: the value of every fixed dimension and the bounds and stride of every
// ranged dimension. Exact-membership encoders additionally carry one serialized
// set per ranged dimension.
//
// # Layout Structure
//
//	┌──────────────────────────────────────────────┐
//	│ Header (16 bytes)                            │
//	│  - Options (2 bytes, always little-endian)   │
//	│  - Version (1 byte), reserved (1 byte)       │
//	│  - DimensionCount (4 bytes)                  │
//	│  - PlanCount (4 bytes)                       │
//	│  - MembershipOffset (4 bytes)                │
//	├──────────────────────────────────────────────┤
//	│ Fixed values (4 bytes × DimensionCount)      │
//	├──────────────────────────────────────────────┤
//	│ Plan entries (20 bytes × PlanCount)          │
//	│  - Dimension, Min, Max (4 bytes each)        │
//	│  - Stride (8 bytes)                          │
//	├──────────────────────────────────────────────┤
//	│ Membership sets (optional)                   │
//	│  - Length (4 bytes) + roaring bitmap bytes   │
//	│    repeated PlanCount times                  │
//	└──────────────────────────────────────────────┘
//
// Every field after Options uses the byte order selected by the endianness bit.
// Slots of the fixed value section that belong to ranged dimensions are zero.
package section
