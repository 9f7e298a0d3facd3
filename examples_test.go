package libsrtgo_test

import (
	"fmt"

	"github.com/faragon/libsrt-go/codec"
	"github.com/faragon/libsrt-go/lz"
	"github.com/faragon/libsrt-go/smap"
	"github.com/faragon/libsrt-go/sstring"
)

func Example() {
	enc := lz.Encode([]byte("hello world hello world"))
	dec, err := lz.Decode(enc)
	if err != nil {
		panic(err)
	}
	fmt.Println(string(dec))
	// Output:
	// hello world hello world
}

func ExampleMap() {
	m := smap.NewSI(0)
	m.Set("apple", 3)
	m.Set("banana", 1)
	m.Set("cherry", 2)
	for _, k := range m.Keys() {
		v, _ := m.Get(k)
		fmt.Println(k, v)
	}
	// Output:
	// apple 3
	// banana 1
	// cherry 2
}

func ExampleString() {
	s := sstring.FromString("Hello, 世界")
	fmt.Println(s.Len(), s.LenUnicode())
	// Output:
	// 13 9
}

func ExampleHexEncode() {
	fmt.Println(string(codec.HexEncode([]byte("ab"))))
	// Output:
	// 6162
}
