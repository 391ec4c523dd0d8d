// nominacheck validates a payslip from already-extracted text.
//
//	nominacheck -text nomina.txt -data declared.json
//
// Reads the OCR/AI-extracted text (file or stdin with "-"), optionally a
// JSON object of user-declared values, and prints the validation report as
// JSON on stdout.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/nominafacil/nomina-validator/internal/common"
	"github.com/nominafacil/nomina-validator/internal/convenio"
	"github.com/nominafacil/nomina-validator/internal/validator"
)

func main() {
	textPath := flag.String("text", "-", "path to the extracted payslip text, or - for stdin")
	dataPath := flag.String("data", "", "optional path to a JSON object of declared values")
	conveniosPath := flag.String("convenios", "", "optional path to a convenios dataset (defaults to the embedded one)")
	extractOnly := flag.Bool("extract-only", false, "print the raw extracted field map instead of validating")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		fatal(logger, "invalid configuration", err)
	}
	if *conveniosPath == "" && cfg.Engine.DatasetPath != "" {
		*conveniosPath = cfg.Engine.DatasetPath
	}

	text, err := readInput(*textPath)
	if err != nil {
		fatal(logger, "reading payslip text", err)
	}

	declared := map[string]string{}
	if *dataPath != "" {
		raw, err := os.ReadFile(*dataPath)
		if err != nil {
			fatal(logger, "reading declared data", err)
		}
		if err := json.Unmarshal(raw, &declared); err != nil {
			fatal(logger, "decoding declared data", err)
		}
	}

	dataset := convenio.Default()
	if *conveniosPath != "" {
		f, err := os.Open(*conveniosPath)
		if err != nil {
			fatal(logger, "opening convenios dataset", err)
		}
		dataset, err = convenio.LoadDataset(f)
		f.Close()
		if err != nil {
			fatal(logger, "loading convenios dataset", err)
		}
	}

	engine, err := validator.NewEngine(dataset, cfg.Engine, logger)
	if err != nil {
		fatal(logger, "building engine", err)
	}

	var out any
	if *extractOnly {
		out = engine.ExtractFields(text)
	} else {
		report, err := engine.Validate(text, declared)
		if err != nil {
			fatal(logger, "validating", err)
		}
		out = report
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fatal(logger, "encoding report", err)
	}
}

func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	return string(b), err
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, "err", err)
	fmt.Fprintf(os.Stderr, "nominacheck: %s: %v\n", msg, err)
	os.Exit(1)
}
