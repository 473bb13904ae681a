package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/signadot/symx/convert"
	"github.com/signadot/symx/encode"
	"github.com/signadot/symx/kernel"
	"github.com/signadot/symx/native"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/scott-cotton/cli"
)

const historyFile = ".symx_history"

func repl(cfg *ReplConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Repl.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: repl takes no arguments", cli.ErrUsage)
	}
	histPath := cfg.History
	if histPath == "" {
		home, _ := os.UserHomeDir()
		histPath = filepath.Join(home, historyFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	if f, err := os.Open(histPath); err == nil {
		ln.ReadHistory(f)
		f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			ln.WriteHistory(f)
			f.Close()
		}
	}()

	s := &session{
		kernel: kernel.New(),
		conv:   cfg.converter(cc.Err),
		opts:   cfg.encOpts(cc.Out),
	}
	for {
		line, err := ln.Prompt("symx> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(cc.Out)
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ":quit", ":q":
			return nil
		}
		ln.AppendHistory(line)
		if err := s.eval(cc.Out, line); err != nil {
			fmt.Fprintln(cc.Err, color.RedString("%v", err))
		}
	}
}

type session struct {
	kernel *kernel.Kernel
	conv   *convert.Converter
	opts   []encode.EncodeOption
}

// eval prints the interchange form of line, its kernel rendering after a
// trip back, and the algebra form.
func (s *session) eval(w io.Writer, line string) error {
	n, err := s.kernel.Eval(line)
	if err != nil {
		return err
	}
	m, err := s.conv.Forward(n)
	if err != nil {
		return err
	}
	if err := encode.Encode(m, w, s.opts...); err != nil {
		return err
	}
	back, err := s.conv.Backward(m)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "kernel: %s\n", native.Render(back))
	e, err := s.conv.ToSym(m)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "sym:    %s\n", e.String())
	return nil
}
