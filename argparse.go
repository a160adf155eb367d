package casplit

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pborman/getopt/v2"
	"github.com/pborman/options"
	"github.com/pkg/errors"

	"github.com/anjor/casplit/internal/constants"
	"github.com/anjor/casplit/internal/hasher"
	"github.com/anjor/casplit/internal/util/argparser"
	"github.com/anjor/casplit/internal/util/text"
)

const freeFormParams = "<input file/device> <output directory> <chunk size>"

func (cfg *config) printUsage(out io.Writer) {
	cfg.optSet.PrintUsage(out)
	fmt.Fprint(out,
		"\n"+
			"  <input> may be '-' to read standard input\n"+
			"  <chunk size> is a byte count, optionally suffixed with K or M\n",
	)
	printCodecUsage(out)
}

func printCodecUsage(out io.Writer) {
	names := make([]string, 0, len(availableCompressors))
	for n := range availableCompressors {
		names = append(names, n)
	}
	sort.Strings(names)

	fmt.Fprint(out, "\n")
	for _, n := range names {
		c := availableCompressors[n]
		suffix := c.Suffix
		if suffix == "" {
			suffix = "(none)"
		}
		fmt.Fprintf(out, "[C]ompressor '%s' suffix %s\n%s\n", n, suffix, argparser.SubHelp(c.Help, nil))
	}
	fmt.Fprint(out, "\n")
}

func (cfg *config) initArgvParser(progName string) {
	// The default documented way of using pborman/options is to muck with globals
	// Operate over objects instead, allowing us to re-parse argv multiple times
	o := getopt.New()
	if err := options.RegisterSet("", cfg, o); err != nil {
		log.Fatalf("option set registration failed: %s", err)
	}
	cfg.optSet = o

	o.SetProgram(filepath.Base(progName))
	o.SetParameters(freeFormParams)

	// Several options have the help-text assembled programmatically
	o.FlagLong(&cfg.hashFunc, "hash", 0, "Hash function naming the chunks, one of: "+text.AvailableMapKeys(hasher.AvailableHashers)+". Default:",
		"algname",
	)
	o.FlagLong(&cfg.compressor, "compressor", 0, "Chunk compressor, one of: "+text.AvailableMapKeys(availableCompressors)+". Anything but 'none' implies -z",
		"codec",
	)
	for lvl := range cfg.levelFlags {
		o.Flag(&cfg.levelFlags[lvl], rune('0'+lvl), fmt.Sprintf("Set compression level %d", lvl))
	}
}

// noteOption sees every option in command line order
func (cfg *config) noteOption(opt getopt.Option) {
	if sn := opt.ShortName(); len(sn) == 1 && sn[0] >= '0' && sn[0] <= '9' {
		cfg.compressionLevel = int(sn[0] - '0')
	}
}

// NewFromArgv parses a complete command line (argv[0] being the program
// name) into a ready to run Splitter. Argument problems are printed to
// stderr together with the usage text, and returned as an ExitError with
// a usage status. No file is touched.
func NewFromArgv(argv []string, stdout, stderr io.Writer) (*Splitter, error) {

	spl := newSplitter(stdout, stderr)

	if len(argv) == 0 {
		argv = []string{"casplit"}
	}

	cfg := &spl.cfg
	cfg.initArgvParser(argv[0])

	// accumulator for multiple errors, to present to the user all at once
	params, argParseErrs := argparser.Parse(argv, cfg.optSet, 3, cfg.noteOption)

	if cfg.Help {
		cfg.printUsage(spl.stderr)
		return nil, ErrHelp
	}

	if len(params) == 3 {
		cfg.inputPath = params[0]
		cfg.outputDir = params[1]

		var err error
		if cfg.chunkSize, err = argparser.ParseSize(params[2]); err != nil {
			argParseErrs = append(argParseErrs, fmt.Errorf("Invalid chunk size '%s'", params[2]))
		}
	}

	argParseErrs = append(argParseErrs, spl.setupHasher()...)
	argParseErrs = append(argParseErrs, spl.setupEncoder()...)
	spl.setupCollector()

	if len(argParseErrs) > 0 {
		for _, e := range argParseErrs {
			fmt.Fprintln(spl.stderr, e)
		}
		fmt.Fprint(spl.stderr, "\n")
		cfg.printUsage(spl.stderr)
		return nil, &ExitError{Status: constants.ExitUsage, Err: usageErrors(argParseErrs)}
	}

	return spl, nil
}

func (spl *Splitter) setupHasher() (argErrs []error) {

	init, exists := hasher.AvailableHashers[spl.cfg.hashFunc]
	if !exists {
		return []error{fmt.Errorf(
			"Hash function '%s' requested via '--hash=algname' is not valid. Available hash names are %s",
			spl.cfg.hashFunc,
			text.AvailableMapKeys(hasher.AvailableHashers),
		)}
	}

	spl.hasher = init()
	if spl.hasher.Size() != hasher.DigestSize {
		argErrs = append(argErrs, fmt.Errorf(
			"hash function '%s' produces %d byte digests, %d required",
			spl.cfg.hashFunc,
			spl.hasher.Size(),
			hasher.DigestSize,
		))
	}

	return
}

func (spl *Splitter) setupEncoder() (argErrs []error) {

	cfg := &spl.cfg

	if cfg.Compress && !cfg.optSet.IsSet("compressor") {
		cfg.compressor = defaultCompressor
	} else if cfg.compressor != "none" {
		cfg.Compress = true
	}

	codec, exists := availableCompressors[cfg.compressor]
	if !exists {
		return []error{fmt.Errorf(
			"Compressor '%s' not found. Available compressor names are: %s",
			cfg.compressor,
			text.AvailableMapKeys(availableCompressors),
		)}
	}

	if cfg.Compress && cfg.compressor == "none" {
		return []error{errors.New("-z conflicts with --compressor=none")}
	}

	var err error
	if spl.encoder, err = codec.NewEncoder(cfg.compressionLevel); err != nil {
		return []error{fmt.Errorf("Initialization of compressor '%s' failed: %s", cfg.compressor, err)}
	}
	spl.suffix = codec.Suffix

	return
}

func (spl *Splitter) setupCollector() {
	spl.collector = availableCollectors[spl.cfg.DeleteStale](1024)
}

// Arguments renders the effective configuration, one option per entry.
func (spl *Splitter) Arguments() []string {
	cfg := &spl.cfg

	var args []string
	cfg.optSet.VisitAll(func(o getopt.Option) {
		switch {
		case o.LongName() == "help", o.LongName() == "hash", o.LongName() == "compressor":
			// either noise or rendered below
		case o.LongName() != "" && o.Seen():
			args = append(args, fmt.Sprintf("--%s=%s", o.LongName(), o.Value().String()))
		case o.LongName() == "" && o.Seen() && !strings.ContainsAny(o.ShortName(), "0123456789"):
			args = append(args, "-"+o.ShortName())
		}
	})
	sort.Strings(args)

	return append(args,
		fmt.Sprintf("--hash=%s", cfg.hashFunc),
		fmt.Sprintf("--compressor=%s", cfg.compressor),
		fmt.Sprintf("--compression-level=%d", cfg.compressionLevel),
		cfg.inputPath,
		cfg.outputDir,
		fmt.Sprintf("%d", cfg.chunkSize),
	)
}
