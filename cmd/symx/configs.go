package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/symx/convert"
	"github.com/signadot/symx/encode"
	"github.com/signadot/symx/fallback"
	"github.com/signadot/symx/format"
	"github.com/signadot/symx/kernel"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color      bool   `cli:"name=color desc='encode with color'"`
	Indent     int    `cli:"name=indent desc='json indent width, 0 for compact'"`
	TextualBig bool   `cli:"name=textbig desc='rebuild big integers from their decimal text'"`
	Preserve   string `cli:"name=preserve desc='comma separated functions kept unevaluated by the fallback parser'"`
	Gops       bool   `cli:"name=gops desc='start a gops diagnostics agent'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) inFormat() format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	return format.JSONFormat
}

func (cfg *MainConfig) preserve() fallback.Set {
	if cfg.Preserve == "" {
		return fallback.Default()
	}
	return fallback.ParseSet(cfg.Preserve)
}

// converter builds a converter backed by the reference kernel. Unmapped
// operator warnings go to w.
func (cfg *MainConfig) converter(w io.Writer) *convert.Converter {
	return convert.New(
		convert.WithEvaluator(kernel.New()),
		convert.TextualBigInts(cfg.TextualBig),
		convert.WithPreserve(cfg.preserve()),
		convert.WithWarnings(func(err error) {
			fmt.Fprintln(w, color.YellowString("warning: %v", err))
		}))
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmat format.Format
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeIndent(cfg.Indent),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ToJSONConfig struct {
	*MainConfig

	ToJSON *cli.Command
}

type FromJSONConfig struct {
	*MainConfig
	Patch string `cli:"name=patch desc='RFC 6902 patch file applied to each document'"`

	FromJSON *cli.Command
}

type SymConfig struct {
	*MainConfig

	Sym *cli.Command
}

type RoundTripConfig struct {
	*MainConfig
	Quiet bool `cli:"name=q desc='only report mismatches'"`

	RoundTrip *cli.Command
}

type ReplConfig struct {
	*MainConfig
	History string `cli:"name=history desc='history file (default ~/.symx_history)'"`

	Repl *cli.Command
}
