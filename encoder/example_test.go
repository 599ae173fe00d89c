package encoder_test

import (
	"errors"
	"fmt"

	"github.com/arloliu/tuplekey/encoder"
	"github.com/arloliu/tuplekey/errs"
)

func ExampleNew() {
	enc, err := encoder.New([][]uint32{
		{900},
		{0, 1, 9, 5},
		{900, 832},
	})
	if err != nil {
		panic(err)
	}

	idx, _ := enc.Encode([]uint32{900, 9, 900})
	fmt.Println(idx, enc.Size())
	fmt.Println(enc.Plans())
	// Output:
	// 689 690
	// [{pos:1, min:0, max:9, step:10, carry:1} {pos:2, min:832, max:900, step:69, carry:10}]
}

func ExampleEncoder_Encode_outOfRange() {
	enc, _ := encoder.New([][]uint32{{900}, {0, 9}})

	_, err := enc.Encode([]uint32{900, 12})

	var oor *errs.OutOfRangeError
	if errors.As(err, &oor) {
		fmt.Println(oor.Dimension, oor.Min, oor.Max)
	}
	fmt.Println(err)
	// Output:
	// 1 0 9
	// coordinate out of range: dimension 1 value 12 not in [0, 9]
}

func ExampleWithStrictMembership() {
	enc, _ := encoder.New([][]uint32{{0, 1, 9, 5}}, encoder.WithStrictMembership())

	_, err := enc.Encode([]uint32{3})
	fmt.Println(errors.Is(err, errs.ErrValueNotDeclared))

	idx, _ := enc.Encode([]uint32{9})
	fmt.Println(idx)
	// Output:
	// true
	// 9
}

func ExampleParseLayout() {
	enc, _ := encoder.New([][]uint32{{900}, {0, 9}, {832, 900}})
	data, _ := enc.MarshalBinary()

	restored, err := encoder.ParseLayout(data)
	if err != nil {
		panic(err)
	}

	idx, _ := restored.Encode([]uint32{900, 9, 900})
	fmt.Println(len(data), restored.Fingerprint() == enc.Fingerprint(), idx)
	// Output:
	// 68 true 689
}
