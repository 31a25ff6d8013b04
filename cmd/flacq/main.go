// SPDX-License-Identifier: EPL-2.0

// Command flacq compresses mono 16-bit PCM WAV or AIFF files with delta
// encoding. Decompressed output is always WAV.
//
//	flacq -c [-o order] [-e codec] < in.wav > out.flacq
//	flacq -d < in.flacq > out.wav
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pdx-cs-sound/flacq"
	"github.com/pdx-cs-sound/flacq/codec"
	"github.com/pdx-cs-sound/flacq/delta"
	"github.com/pdx-cs-sound/flacq/internal/logger"
)

var (
	errNoMode    = errors.New("must specify -c or -d")
	errBothModes = errors.New("cannot specify both -c and -d")
)

type config struct {
	compress   bool
	decompress bool
	order      int
	codec      string
}

func parseArgs(args []string, stderr io.Writer) (config, error) {
	var cfg config

	fs := flag.NewFlagSet("flacq", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.BoolVar(&cfg.compress, "c", false, "compress a WAV or AIFF file from stdin")
	fs.BoolVar(&cfg.compress, "compress", false, "same as -c")
	fs.BoolVar(&cfg.decompress, "d", false, "decompress to a WAV file from stdin")
	fs.BoolVar(&cfg.decompress, "decompress", false, "same as -d")
	fs.IntVar(&cfg.order, "o", delta.DefaultOrder, fmt.Sprintf("delta encoding order, 0 to %d", delta.MaxOrder))
	fs.IntVar(&cfg.order, "order", delta.DefaultOrder, "same as -o")

	codecs := strings.Join(codec.DefaultRegistry().Names(), ", ")
	fs.StringVar(&cfg.codec, "e", codec.Default, "entropy codec: "+codecs)
	fs.StringVar(&cfg.codec, "entropy", codec.Default, "same as -e")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	switch {
	case cfg.compress && cfg.decompress:
		return cfg, errBothModes
	case !cfg.compress && !cfg.decompress:
		return cfg, errNoMode
	}

	return cfg, nil
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	log := logger.New(stderr, logger.ParseLevel(os.Getenv(logger.EnvLevel)))

	opts := flacq.DefaultOptions()
	opts.DeltaOrder = cfg.order
	opts.Codec = cfg.codec
	opts.Logger = &log

	if cfg.compress {
		_, err = flacq.Compress(stdin, stdout, opts)
	} else {
		_, err = flacq.Decompress(stdin, stdout, opts)
	}

	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
