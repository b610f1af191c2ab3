package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	gojson "github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/term"

	hostjson "github.com/wippyai/hostjson"
	"github.com/wippyai/hostjson/encoder"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Input YAML file (default stdin)")
		strictInt   = flag.Bool("strict-int", false, "Reject integers outside the 53-bit range")
		records     = flag.Bool("records", false, "Serialize !record values as objects")
		uuids       = flag.Bool("uuids", false, "Serialize !uuid values as canonical text")
		check       = flag.Bool("check", false, "Re-parse the output to verify it is valid JSON")
		verbose     = flag.Bool("v", false, "Verbose logging to stderr")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		encoder.SetLogger(logger)
	}

	opts := options(*strictInt, *records, *uuids)

	if *interactive {
		if err := runInteractive(opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*inFile, opts, *check); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func options(strictInt, records, uuids bool) hostjson.Option {
	var opts hostjson.Option
	if strictInt {
		opts |= hostjson.StrictInteger
	}
	if records {
		opts |= hostjson.SerializeRecord
	}
	if uuids {
		opts |= hostjson.SerializeUUID
	}
	return opts
}

func run(inFile string, opts hostjson.Option, check bool) error {
	var (
		data []byte
		err  error
	)
	if inFile == "" || inFile == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(inFile)
	}
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	root, err := newYAMLLoader().Load(data)
	if err != nil {
		return err
	}

	out, err := encoder.Encode(root, nil, opts)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if check {
		var parsed any
		if err := gojson.Unmarshal(out, &parsed); err != nil {
			return fmt.Errorf("check: output is not valid JSON: %w", err)
		}
	}

	os.Stdout.Write(out)

	// Keep piped output clean; the trailing newline and the summary are
	// terminal conveniences only.
	if term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Println()
		fmt.Fprintf(os.Stderr, "%d bytes\n", len(out))
	}
	return nil
}
