package encoder

import (
	"fmt"
	"testing"
)

func BenchmarkEncode(b *testing.B) {
	for size := 1; size <= 7; size++ {
		enc, err := New(benchmarkTables(size))
		if err != nil {
			b.Fatal(err)
		}
		key := benchmarkKey()

		b.Run(fmt.Sprintf("basic%d", size), func(b *testing.B) {
			var sink uint64
			for b.Loop() {
				v, _ := enc.Encode(key)
				sink += v
			}
			_ = sink
		})
	}
}

func BenchmarkEncode_Strict(b *testing.B) {
	dims := benchmarkTables(7)
	enc, err := New(dims, WithStrictMembership())
	if err != nil {
		b.Fatal(err)
	}

	key := make([]uint32, len(dims))
	for d, values := range dims {
		key[d] = values[len(values)-1]
	}

	for b.Loop() {
		_, _ = enc.Encode(key)
	}
}

func BenchmarkEncodeBatch(b *testing.B) {
	enc, err := New(benchmarkTables(7))
	if err != nil {
		b.Fatal(err)
	}

	tuples := make([][]uint32, 1024)
	for i := range tuples {
		key := benchmarkKey()
		key[0] = 7 + uint32(i%2) //nolint: gosec
		tuples[i] = key
	}
	dst := make([]uint64, 0, len(tuples))

	for b.Loop() {
		dst, _ = enc.EncodeBatch(dst[:0], tuples)
	}
}

func BenchmarkNew(b *testing.B) {
	dims := benchmarkTables(7)

	b.Run("bounds", func(b *testing.B) {
		for b.Loop() {
			_, _ = New(dims)
		}
	})

	b.Run("strict", func(b *testing.B) {
		for b.Loop() {
			_, _ = New(dims, WithStrictMembership())
		}
	})
}

func BenchmarkParseLayout(b *testing.B) {
	enc, err := New(benchmarkTables(7), WithStrictMembership())
	if err != nil {
		b.Fatal(err)
	}
	data, err := enc.MarshalBinary()
	if err != nil {
		b.Fatal(err)
	}

	for b.Loop() {
		_, _ = ParseLayout(data)
	}
}
