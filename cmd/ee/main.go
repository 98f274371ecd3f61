// Command ee is an interactive calculator for arbitrary-precision integers,
// reals, and booleans, with variables that persist for the session.
//
// With arguments, ee evaluates each argument as an expression in one session
// and prints the results. Without arguments, it reads expressions from a
// prompt until quit, exit, or end of input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"go.uber.org/zap"

	"github.com/soniafriesen/expreval"
	"github.com/soniafriesen/expreval/internal/config"
	"github.com/soniafriesen/expreval/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		cfgpath string
		prec    uint
		digits  int
	)
	flag.StringVar(&cfgpath, "config", "", "YAML configuration file")
	flag.UintVar(&prec, "p", 0, "precision of reals in bits (default from config)")
	flag.IntVar(&digits, "digits", -1, "decimals printed for reals (default from config)")
	flag.Parse()

	cfg, err := config.Load(cfgpath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ee:", err)
		return 2
	}
	if prec != 0 {
		cfg.Precision = prec
	}
	if digits >= 0 {
		cfg.Digits = digits
	}
	color.NoColor = color.NoColor || !cfg.Color

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "ee: logger:", err)
		return 2
	}
	defer log.Sync()

	sess, err := expreval.NewSession(expreval.Prec(cfg.Precision), expreval.WithLogger(log))
	if err != nil {
		fmt.Fprintln(os.Stderr, "ee:", err)
		return 1
	}
	sh := newShell(sess, cfg.Digits, os.Stdout, os.Stderr)

	if flag.NArg() > 0 {
		code := 0
		for _, arg := range flag.Args() {
			if !sh.eval(arg) {
				code = 1
			}
		}
		return code
	}
	return repl(sh, cfg.HistoryFile, log)
}

// repl runs the interactive prompt.
func repl(sh *shell, histPath string, log *zap.Logger) int {
	fmt.Fprintln(sh.out, banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			f, err := os.Create(histPath)
			if err != nil {
				log.Warn("cannot save history", zap.Error(err))
				return
			}
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}()
	}

	for {
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(sh.out)
			return 0
		}
		if err != nil {
			log.Error("reading input", zap.Error(err))
			return 1
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		if sh.line(line) {
			return 0
		}
	}
}

const (
	prompt = "> "
	banner = `ee: arbitrary-precision expression evaluator. Type "help" for help.`
)
