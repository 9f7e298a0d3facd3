// Command bench measures encode/decode throughput for the codec and
// hash packages against a synthetic input, reporting human-readable
// bytes/sec. It is a reference example, not part of the library surface.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
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

func main() {
	var (
		op       string
		sizeMB   int
		iters    int
		listOnly bool
	)
	pflag.StringVar(&op, "op", "lz", "operation to benchmark: lz, base64, hex, crc32, adler32, fnv1a, mh3_32")
	pflag.IntVar(&sizeMB, "size-mb", 4, "size of the synthetic input, in megabytes")
	pflag.IntVar(&iters, "iters", 5, "number of timed iterations")
	pflag.BoolVar(&listOnly, "list", false, "list available --op values and exit")
	pflag.Parse()

	ops := map[string]func(in []byte) int{
		"lz":      func(in []byte) int { return len(lz.Encode(in)) },
		"base64":  func(in []byte) int { return len(codec.Base64Encode(in)) },
		"hex":     func(in []byte) int { return len(codec.HexEncode(in)) },
		"crc32":   func(in []byte) int { return int(rollhash.CRC32(rollhash.CRC32Init, in)) },
		"adler32": func(in []byte) int { return int(rollhash.Adler32(rollhash.Adler32Init, in)) },
		"fnv1a":   func(in []byte) int { return int(rollhash.FNV1a(rollhash.FNV1Init, in)) },
		"mh3_32":  func(in []byte) int { return int(rollhash.MH3_32(rollhash.MH3_32Init, in)) },
	}

	if listOnly {
		for name := range ops {
			fmt.Println(name)
		}
		return
	}

	run, ok := ops[op]
	if !ok {
		log.Error("unknown --op", zap.String("op", op))
		os.Exit(1)
	}

	size := sizeMB * 1 << 20
	in := syntheticInput(size)

	best := time.Duration(0)
	for i := 0; i < iters; i++ {
		start := time.Now()
		_ = run(in)
		elapsed := time.Since(start)
		if i == 0 || elapsed < best {
			best = elapsed
		}
	}

	throughput := float64(size) / best.Seconds()
	fmt.Printf("op=%s input=%s best=%s throughput=%s/s\n",
		op,
		humanize.Bytes(uint64(size)),
		best,
		humanize.Bytes(uint64(throughput)),
	)
}

// syntheticInput generates a deterministic, moderately compressible byte
// stream so lz's match search has realistic work to do.
func syntheticInput(n int) []byte {
	out := make([]byte, n)
	pattern := []byte("the quick brown fox jumps over the lazy dog ")
	for i := 0; i < n; i++ {
		out[i] = pattern[i%len(pattern)]
	}
	return out
}
