package encoder

import "fmt"

// benchmarkTables returns the dimension table of the throughput harness for size 1-7.
// Every step adds one ranged dimension to the previous table.
func benchmarkTables(size int) [][]uint32 {
	dims := [][]uint32{
		{900},
		{0, 1, 9, 5}, // min = 0, max = 9
		{900},
		{900},
		{900},
		{900},
		{900},
		{900},
		{900},
		{900},
		{900},
	}

	if size < 1 || size > 7 {
		panic(fmt.Sprintf("unknown table size %d", size))
	}
	if size >= 2 {
		dims[3] = []uint32{900, 832} // min = 832, max = 900
	}
	if size >= 3 {
		dims[4] = []uint32{3, 6, 8, 4, 2, 2, 44, 56, 67, 32, 123} // min = 2, max = 123
	}
	if size >= 4 {
		dims[7] = []uint32{10000000, 10000002, 10000001}
	}
	if size >= 5 {
		dims[9] = []uint32{4, 9, 10}
	}
	if size >= 6 {
		dims[10] = []uint32{9, 4}
	}
	if size >= 7 {
		dims[0] = []uint32{8, 7}
	}

	return dims
}

// benchmarkKey returns the harness key; fixed dimensions 5 and 6 deliberately
// disagree with their declared value.
func benchmarkKey() []uint32 {
	return []uint32{8, 5, 900, 832, 67, 800, 1000000, 10000001, 3, 4, 9}
}

// allTuples enumerates every tuple within the bounds of enc, fixed dimensions set
// to their declared value.
func allTuples(enc *Encoder) [][]uint32 {
	base := enc.FixedValues()
	for _, p := range enc.plans {
		base[p.Dimension] = p.Min
	}

	tuples := [][]uint32{}
	var walk func(plan int, cur []uint32)
	walk = func(plan int, cur []uint32) {
		if plan == len(enc.plans) {
			tuples = append(tuples, append([]uint32(nil), cur...))
			return
		}
		p := enc.plans[plan]
		for v := uint64(p.Min); v <= uint64(p.Max); v++ {
			cur[p.Dimension] = uint32(v)
			walk(plan+1, cur)
		}
		cur[p.Dimension] = p.Min
	}
	walk(0, base)

	return tuples
}
