// Command enc is a reference composition of the codec and rolling-hash
// packages: it reads stdin, applies the codec or hash named by its flag,
// and writes the result to stdout. It is a thin example, not part of the
// library surface — every package it imports is independently usable
// without it.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/faragon/libsrt-go/codec"
	"github.com/faragon/libsrt-go/lz"
	"github.com/faragon/libsrt-go/rollhash"
)

var log = newLogger()

func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	l, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	return l
}

type op struct {
	name string
	flag *bool
	run  func(in []byte) ([]byte, error)
}

func main() {
	var (
		eb, db             bool
		eh, eH, dh         bool
		ex, dx             bool
		ej, dj             bool
		eu, du             bool
		ez, dz, ezh        bool
		crc32, adler32     bool
		fnv1, fnv1a, mh3_32 bool
	)

	pflag.BoolVar(&eb, "eb", false, "encode base64")
	pflag.BoolVar(&db, "db", false, "decode base64")
	pflag.BoolVar(&eh, "eh", false, "encode hex (lowercase)")
	pflag.BoolVar(&eH, "eH", false, "encode hex (uppercase)")
	pflag.BoolVar(&dh, "dh", false, "decode hex")
	pflag.BoolVar(&ex, "ex", false, "encode XML escape")
	pflag.BoolVar(&dx, "dx", false, "decode XML escape")
	pflag.BoolVar(&ej, "ej", false, "encode JSON escape")
	pflag.BoolVar(&dj, "dj", false, "decode JSON escape")
	pflag.BoolVar(&eu, "eu", false, "encode URL escape")
	pflag.BoolVar(&du, "du", false, "decode URL escape")
	pflag.BoolVar(&ez, "ez", false, "encode LZ77")
	pflag.BoolVar(&dz, "dz", false, "decode LZ77")
	pflag.BoolVar(&ezh, "ezh", false, "encode LZ77 then hex (printable)")
	pflag.BoolVar(&crc32, "crc32", false, "print CRC-32 of stdin")
	pflag.BoolVar(&adler32, "adler32", false, "print Adler-32 of stdin")
	pflag.BoolVar(&fnv1, "fnv1", false, "print FNV-1 of stdin")
	pflag.BoolVar(&fnv1a, "fnv1a", false, "print FNV-1a of stdin")
	pflag.BoolVar(&mh3_32, "mh3_32", false, "print MurmurHash3-32 of stdin")
	pflag.Parse()

	ops := []op{
		{"eb", &eb, func(in []byte) ([]byte, error) { return codec.Base64Encode(in), nil }},
		{"db", &db, func(in []byte) ([]byte, error) { return codec.Base64Decode(in), nil }},
		{"eh", &eh, func(in []byte) ([]byte, error) { return codec.HexEncode(in), nil }},
		{"eH", &eH, func(in []byte) ([]byte, error) { return codec.HexEncodeUpper(in), nil }},
		{"dh", &dh, func(in []byte) ([]byte, error) { return codec.HexDecode(in), nil }},
		{"ex", &ex, func(in []byte) ([]byte, error) { return codec.XMLEscape(in), nil }},
		{"dx", &dx, func(in []byte) ([]byte, error) { return codec.XMLUnescape(in), nil }},
		{"ej", &ej, func(in []byte) ([]byte, error) { return codec.JSONEscape(in), nil }},
		{"dj", &dj, func(in []byte) ([]byte, error) { return codec.JSONUnescape(in), nil }},
		{"eu", &eu, func(in []byte) ([]byte, error) { return codec.URLEscape(in), nil }},
		{"du", &du, func(in []byte) ([]byte, error) { return codec.URLUnescape(in), nil }},
		{"ez", &ez, func(in []byte) ([]byte, error) { return lz.Encode(in), nil }},
		{"dz", &dz, func(in []byte) ([]byte, error) { return lz.Decode(in) }},
		{"ezh", &ezh, func(in []byte) ([]byte, error) { return codec.HexEncode(lz.Encode(in)), nil }},
	}

	selected := make([]op, 0, 1)
	for _, o := range ops {
		if *o.flag {
			selected = append(selected, o)
		}
	}

	hashSelected := crc32 || adler32 || fnv1 || fnv1a || mh3_32
	if len(selected) == 0 && !hashSelected {
		fmt.Fprintln(os.Stderr, "enc: no operation flag given")
		pflag.Usage()
		os.Exit(1)
	}
	if len(selected)+boolCount(crc32, adler32, fnv1, fnv1a, mh3_32) > 1 {
		log.Error("more than one operation flag given")
		os.Exit(1)
	}

	in, err := io.ReadAll(os.Stdin)
	if err != nil {
		log.Error("reading stdin", zap.Error(err))
		os.Exit(1)
	}

	if hashSelected {
		var acc uint32
		switch {
		case crc32:
			acc = rollhash.CRC32(rollhash.CRC32Init, in)
		case adler32:
			acc = rollhash.Adler32(rollhash.Adler32Init, in)
		case fnv1:
			acc = rollhash.FNV1(rollhash.FNV1Init, in)
		case fnv1a:
			acc = rollhash.FNV1a(rollhash.FNV1Init, in)
		case mh3_32:
			acc = rollhash.MH3_32(rollhash.MH3_32Init, in)
		}
		fmt.Printf("%08x\n", acc)
		return
	}

	out, err := selected[0].run(in)
	if err != nil {
		log.Error("operation failed", zap.String("op", selected[0].name), zap.Error(err))
		os.Exit(1)
	}
	if _, err := os.Stdout.Write(out); err != nil {
		log.Error("writing stdout", zap.Error(err))
		os.Exit(1)
	}
}

func boolCount(bs ...bool) int {
	n := 0
	for _, b := range bs {
		if b {
			n++
		}
	}
	return n
}
