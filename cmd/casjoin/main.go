package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pborman/getopt/v2"
	"github.com/pborman/options"

	"github.com/anjor/casplit"
	"github.com/anjor/casplit/internal/chunkstore"
	"github.com/anjor/casplit/internal/constants"
	"github.com/anjor/casplit/internal/hasher"
	"github.com/anjor/casplit/internal/util/argparser"
	"github.com/anjor/casplit/internal/util/text"
)

type config struct {
	Help     bool   `getopt:"-h --help  Display help"`
	NoVerify bool   `getopt:"--no-verify Do not check chunk content against the digest in its name"`
	Verbose  bool   `getopt:"-v         Print the amount of chunks and bytes reassembled"`
	Hash     string `getopt:"--hash=algname Hash function the chunks were named with"`
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(argv []string, stdout, stderr io.Writer) int {

	log.SetOutput(stderr)

	cfg := config{Hash: hasher.Default}
	optSet := getopt.New()
	if err := options.RegisterSet("", &cfg, optSet); err != nil {
		log.Printf("option set registration failed: %s", err)
		return constants.ExitSoftware
	}
	optSet.SetProgram(filepath.Base(argv[0]))
	optSet.SetParameters("<chunk directory> [<output file>|-]")

	params, argErrs := argparser.Parse(argv, optSet, -1, nil)
	if cfg.Help {
		optSet.PrintUsage(stderr)
		return constants.ExitOK
	}
	if len(argErrs) == 0 && (len(params) < 1 || len(params) > 2) {
		argErrs = append(argErrs, fmt.Errorf("expected 1 or 2 parameters, got %d", len(params)))
	}
	if _, exists := hasher.AvailableHashers[cfg.Hash]; !exists {
		argErrs = append(argErrs, fmt.Errorf(
			"Hash function '%s' is not valid. Available hash names are %s",
			cfg.Hash,
			text.AvailableMapKeys(hasher.AvailableHashers),
		))
	}
	if len(argErrs) > 0 {
		for _, e := range argErrs {
			fmt.Fprintln(stderr, e)
		}
		optSet.PrintUsage(stderr)
		return constants.ExitUsage
	}

	opts := casplit.ReassembleOptions{Hash: cfg.Hash, SkipVerify: cfg.NoVerify}
	var chunks int
	var err error
	var written int64

	if len(params) == 1 || params[1] == "-" {
		chunks, err = casplit.Reassemble(params[0], &byteCounter{Writer: stdout, n: &written}, opts)
	} else {
		// published only once every chunk decoded and verified
		var st *chunkstore.Store
		if st, err = chunkstore.Open(filepath.Dir(params[1]), stderr); err != nil {
			log.Printf("%s", err)
			return constants.ExitCantCreat
		}
		defer st.Release()

		err = st.Put(filepath.Base(params[1]), func(w io.Writer) (e error) {
			chunks, e = casplit.Reassemble(params[0], &byteCounter{Writer: w, n: &written}, opts)
			return
		})
	}

	if err != nil {
		log.Printf("%s", err)
		return constants.ExitDataErr
	}

	if cfg.Verbose {
		fmt.Fprintf(stderr, "Reassembled %s chunks into %s\n", text.Commify(chunks), text.Sizes(written))
	}
	return constants.ExitOK
}

type byteCounter struct {
	io.Writer
	n *int64
}

func (bc *byteCounter) Write(p []byte) (int, error) {
	n, err := bc.Writer.Write(p)
	*bc.n += int64(n)
	return n, err
}
