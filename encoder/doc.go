// Package encoder maps multi-dimensional integer keys onto a single uint64 index.
//
// An Encoder is built once from the declared values of every dimension and then
// queried repeatedly. Each dimension is classified at build time:
//
//   - Fixed: exactly one declared value. It contributes nothing to the index.
//   - Ranged: two or more declared values. It contributes Stride * (value - Min).
//
// Strides are assigned in tuple order as the running product of the range sizes
// (Max - Min + 1) of the ranged dimensions before it, which makes the index a
// mixed-radix number with one digit per ranged dimension. Indexes therefore lie in
// [0, Size()) and distinct in-range tuples never collide.
//
// # Basic Usage
//
//	enc, err := encoder.New([][]uint32{
//	    {900},
//	    {0, 1, 9, 5},  // ranged: [0, 9], stride 1
//	    {900, 832},    // ranged: [832, 900], stride 10
//	})
//	if err != nil {
//	    return err
//	}
//
//	idx, err := enc.Encode([]uint32{900, 9, 832}) // 9*1 + 0*10 = 9
//
// # Membership
//
// By default only bounds are checked: a declaration {0, 1, 9, 5} accepts 3 because it
// lies within [0, 9]. WithStrictMembership keeps the exact declared sets and rejects
// undeclared values with errs.ErrValueNotDeclared; the index of a declared tuple is the
// same in both modes.
//
// # Layout Snapshots
//
// MarshalBinary and ParseLayout move a built encoder between processes without the
// original declarations. Fingerprint identifies the index mapping itself, so two
// encoders can be compared before their indexes are mixed.
//
// # Thread Safety
//
// Encoders are immutable; Encode, EncodeBatch and every accessor are safe for
// concurrent use without locking. Encode does not allocate on success.
package encoder
