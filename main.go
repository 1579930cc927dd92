package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/yumyai/getseq/internal/util"
	"github.com/yumyai/getseq/logger"
	"github.com/yumyai/getseq/pkg/model"
	"github.com/yumyai/getseq/pkg/region"
	"github.com/yumyai/getseq/pkg/render"
	"github.com/yumyai/getseq/pkg/rest"
)

const usage = `usage: getseq <command> [arguments]

Parse genomic regions from a bed file and retrieve their DNA sequences
from the Ensembl REST API.

commands:
  sequences <species> <assembly> [-b bed] [-o output] [-l log] [-u bp] [-d bp]
  genomes
  assemblies <species>
`

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return 1
	}

	switch args[0] {
	case "sequences":
		return runSequences(args[1:])
	case "genomes":
		return runGenomes()
	case "assemblies":
		return runAssemblies(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "getseq: unknown command %q\n\n", args[0])
		fmt.Fprint(os.Stderr, usage)
		return 1
	}
}

func runSequences(args []string) int {

	// positionals come first, argparse style
	if len(args) < 2 || strings.HasPrefix(args[0], "-") || strings.HasPrefix(args[1], "-") {
		fmt.Fprintln(os.Stderr, "getseq sequences: species and assembly are required")
		return 1
	}
	species, assembly := args[0], args[1]

	fs := flag.NewFlagSet("sequences", flag.ContinueOnError)
	bed := fs.String("b", "", "source bed file (default stdin)")
	output := fs.String("o", "", "output file (default stdout)")
	logfile := fs.String("l", "getseq.log", "log file")
	upstream := fs.Int("u", 0, "number of bp to extend upstream (5')")
	downstream := fs.Int("d", 0, "number of bp to extend downstream (3')")
	if err := fs.Parse(args[2:]); err != nil {
		return 1
	}

	if err := logger.InitLogger(zapcore.InfoLevel, *logfile); err != nil {
		fmt.Fprintln(os.Stderr, "getseq:", err)
		return 1
	}
	defer logger.Sync()

	var in io.Reader = os.Stdin
	if *bed != "" {
		f, err := os.Open(*bed)
		if err != nil {
			logger.Error("Cannot open bed file", zap.String("error", err.Error()))
			return 1
		}
		defer f.Close()
		in = f
	}

	rows, err := region.ParseTable(in)
	if err != nil {
		logger.Error("Cannot parse input regions", zap.String("error", err.Error()))
		return 1
	}

	batches := region.MakeBatches(rows)

	sequences, err := model.RetrieveSequences(newClient(), species, assembly, batches, *upstream, *downstream)
	if err != nil {
		logger.Error("Retrieval failed", zap.String("error", err.Error()))
		return 1
	}

	var out io.Writer = os.Stdout
	if *output != "" {
		f, err := os.Create(*output)
		if err != nil {
			logger.Error("Cannot create output file", zap.String("error", err.Error()))
			return 1
		}
		defer f.Close()
		out = f
	}

	if err := render.Fasta(out, sequences); err != nil {
		logger.Error("Cannot write output", zap.String("error", err.Error()))
		return 1
	}

	logger.Info("Done")
	return 0
}

func runGenomes() int {

	if err := logger.InitLogger(zapcore.InfoLevel); err != nil {
		fmt.Fprintln(os.Stderr, "getseq:", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("Retrieving a list of available genomes ...")

	genomes, err := model.GetGenomes(newClient())
	if err != nil {
		logger.Error("Cannot list genomes", zap.String("error", err.Error()))
		return 1
	}

	if err := render.GenomeTable(os.Stdout, genomes); err != nil {
		logger.Error("Cannot write output", zap.String("error", err.Error()))
		return 1
	}

	return 0
}

func runAssemblies(args []string) int {

	if len(args) < 1 || strings.HasPrefix(args[0], "-") {
		fmt.Fprintln(os.Stderr, "getseq assemblies: species is required")
		return 1
	}
	species := args[0]

	if err := logger.InitLogger(zapcore.InfoLevel); err != nil {
		fmt.Fprintln(os.Stderr, "getseq:", err)
		return 1
	}
	defer logger.Sync()

	logger.Info("Retrieving a list of available assemblies", zap.String("species", species))

	versions, err := model.GetAssemblies(newClient(), species)
	if err != nil {
		logger.Error("Cannot list assemblies", zap.String("error", err.Error()))
		return 1
	}

	if err := render.AssemblyList(os.Stdout, versions); err != nil {
		logger.Error("Cannot write output", zap.String("error", err.Error()))
		return 1
	}

	return 0
}

// newClient builds the REST client from the environment. Missing values
// warn and fall back to defaults, they never abort.
func newClient() *rest.Client {

	if err := godotenv.Load(); err != nil {
		logger.Warn("No .env found, using local environment")
	}

	server := util.EnvOr("GETSEQ_SERVER", rest.DefaultServer)

	rate := rest.DefaultReqsPerSec
	if v := os.Getenv("GETSEQ_RATE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			logger.Warn("Ignoring bad GETSEQ_RATE", zap.String("value", v))
		} else {
			rate = n
		}
	}

	return rest.NewClient(server, rate)
}
