package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/d3m1d0s/huffzip"
)

var log = logging.MustGetLogger("huffzip")

const progName = "huffzip"
const usageMessageRaw = `
Usage: huffzip ACTION INPUT OUTPUT

Actions:
  compress
	Huffman-code INPUT into OUTPUT, writing the code table
	sidecar to OUTPUT.huff.
  decompress
	Decode INPUT using the sidecar INPUT.huff, writing the
	original bytes to OUTPUT.

Options:
  --text-table, -t
	Write the sidecar in the legacy line-oriented text format
	instead of the binary format.  The text format records no
	bit length, so decoding it relies on padding bits not
	spelling a complete codeword.
  --no-newline-symbol
	Do not force a codeword for the newline byte.  Changes the
	packed output relative to the legacy tool, not correctness.
  --debug, -d
	Log decoding and packing detail to standard error.
`

const sidecarSuffix = ".huff"

// Exit statuses follow sysexits.h so each error kind in the taxonomy is
// distinguishable to the caller: 64 usage, 65 format/corruption, 66 missing
// or unreadable input, 1 everything else.
const (
	exitUsage   = 64
	exitData    = 65
	exitNoInput = 66
)

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

var leveledLogBackend logging.Leveled

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-10s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.NOTICE, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(exitUsage)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(exitStatusFor(err))
}

func exitStatusFor(err error) int {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return exitNoInput
	case errors.Is(err, huffzip.ErrMalformedTable),
		errors.Is(err, huffzip.ErrNotPrefixFree),
		errors.Is(err, huffzip.ErrCodeTooLong),
		errors.Is(err, huffzip.ErrUnknownCode),
		errors.Is(err, huffzip.ErrUnknownSymbol),
		errors.Is(err, huffzip.ErrTruncated),
		errors.Is(err, huffzip.ErrBadMagic),
		errors.Is(err, huffzip.ErrBadVersion),
		errors.Is(err, huffzip.ErrChecksum):
		return exitData
	default:
		return 1
	}
}

var (
	useTextTable  bool
	noNewlineCode bool
)

func compressFile(inputPath, outputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	opts := huffzip.DefaultOptions()
	opts.AlwaysIncludeNewline = !noNewlineCode
	bs, table, err := huffzip.Compress(data, opts)
	if err != nil {
		return err
	}
	log.Debugf("packed %d bytes into %d bits (%d codewords)", len(data), bs.BitLength, len(table))

	if err := os.WriteFile(outputPath, bs.Packed, 0644); err != nil {
		return err
	}

	sidecarPath := outputPath + sidecarSuffix
	var sidecar []byte
	if useTextTable {
		sidecar, err = table.MarshalText()
		if err != nil {
			return err
		}
	} else {
		var buf bytes.Buffer
		if err := huffzip.WriteSidecar(&buf, huffzip.Sidecar{Table: table, BitLength: bs.BitLength}); err != nil {
			return err
		}
		sidecar = buf.Bytes()
	}
	if err := os.WriteFile(sidecarPath, sidecar, 0644); err != nil {
		return err
	}

	reportCompress(inputPath, outputPath)
	return nil
}

func decompressFile(inputPath, outputPath string) error {
	packed, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	rawSidecar, err := os.ReadFile(inputPath + sidecarSuffix)
	if err != nil {
		return err
	}

	var decoded []byte
	if huffzip.IsBinarySidecar(rawSidecar) {
		sc, err := huffzip.ReadSidecar(bytes.NewReader(rawSidecar))
		if err != nil {
			return err
		}
		log.Debugf("binary sidecar: %d codewords, %d bits", len(sc.Table), sc.BitLength)
		decoded, err = huffzip.Decompress(huffzip.BitString{Packed: packed, BitLength: sc.BitLength}, sc.Table)
		if err != nil {
			return err
		}
	} else {
		var table huffzip.CodeTable
		if err := table.UnmarshalText(rawSidecar); err != nil {
			return err
		}
		log.Debugf("legacy text sidecar: %d codewords, no bit length", len(table))
		dec, err := huffzip.NewDecoder(table)
		if err != nil {
			return err
		}
		// Legacy sidecars record no bit length, so treat every bit as
		// data and discard whatever is left in the accumulator.
		decoded, err = dec.DecodePadded(huffzip.BitString{Packed: packed, BitLength: len(packed) * 8})
		if err != nil {
			return err
		}
	}

	if err := os.WriteFile(outputPath, decoded, 0644); err != nil {
		return err
	}

	reportDecompress(inputPath, outputPath)
	return nil
}

func fileSize(path string) int64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return info.Size()
}

func reportCompress(inputPath, outputPath string) {
	inputSize, outputSize := fileSize(inputPath), fileSize(outputPath)
	fmt.Println("Compression completed!")
	fmt.Printf("Original Size: %d bytes\n", inputSize)
	fmt.Printf("Compressed Size: %d bytes\n", outputSize)
	if inputSize > 0 {
		percent := 100.0 * (1 - float64(outputSize)/float64(inputSize))
		fmt.Printf("Compression Percentage: %g%%\n", percent)
	}
}

func reportDecompress(inputPath, outputPath string) {
	inputSize, outputSize := fileSize(inputPath), fileSize(outputPath)
	fmt.Println("Decompression completed!")
	fmt.Printf("Compressed Size: %d bytes\n", inputSize)
	fmt.Printf("Decompressed Size: %d bytes\n", outputSize)
	if inputSize > 0 {
		percent := 100.0 * (float64(outputSize)/float64(inputSize) - 1)
		fmt.Printf("Decompression Increase Percentage: %g%%\n", percent)
	}
}

func main() {
	startLogging()

	ourFlags := flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.

	var debugLogging bool
	ourFlags.BoolVar(&useTextTable, "text-table", false, "")
	ourFlags.BoolVar(&useTextTable, "t", false, "")
	ourFlags.BoolVar(&noNewlineCode, "no-newline-symbol", false, "")
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")

	argErr := ourFlags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	if ourFlags.NArg() != 3 {
		usageErrorf("expected 3 arguments, got %d", ourFlags.NArg())
	}
	action := ourFlags.Arg(0)
	inputPath := ourFlags.Arg(1)
	outputPath := ourFlags.Arg(2)

	var err error
	switch action {
	default:
		usageErrorf("bad action \"%s\"", action)
	case "compress":
		err = compressFile(inputPath, outputPath)
	case "decompress":
		err = decompressFile(inputPath, outputPath)
	}

	if err != nil {
		exitError(err)
	}
}
