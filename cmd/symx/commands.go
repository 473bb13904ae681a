package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "interchange input format: json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "interchange output format: json/j, yaml/y, text/t",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "symx").
		WithSynopsis("symx [opts] command [opts]").
		WithDescription("symx converts symbolic expressions between a kernel notation and MathJSON.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return symxMain(cfg, cc, args)
		}).
		WithSubs(
			ToJSONCommand(cfg),
			FromJSONCommand(cfg),
			SymCommand(cfg),
			RoundTripCommand(cfg),
			ReplCommand(cfg))
}

func ToJSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ToJSONConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.ToJSON, "to-json").
		WithAliases("fwd", "f").
		WithSynopsis("to-json [exprs...]").
		WithDescription("evaluate kernel expressions and print them as MathJSON. Reads lines from stdin when no expressions are given.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return toJSON(cfg, cc, args)
		})
}

func FromJSONCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FromJSONConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.FromJSON, "from-json").
		WithAliases("bwd", "b").
		WithSynopsis("from-json [-patch file] [files...]").
		WithDescription("read MathJSON documents and print their kernel rendering. Documents are separated by '---' lines; '-' or no files reads stdin.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return fromJSON(cfg, cc, args)
		})
}

func SymCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SymConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Sym, "sym").
		WithAliases("s").
		WithSynopsis("sym [exprs...]").
		WithDescription("parse kernel text with the fallback parser and print the algebra form and its MathJSON.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return symParse(cfg, cc, args)
		})
}

func RoundTripCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RoundTripConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.RoundTrip, "roundtrip").
		WithAliases("rt").
		WithSynopsis("roundtrip [-q] [exprs...]").
		WithDescription("convert each expression to MathJSON and back, reporting rendering mismatches with a diff.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return roundTrip(cfg, cc, args)
		})
}

func ReplCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReplConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Repl, "repl").
		WithSynopsis("repl [-history file]").
		WithDescription("interactively convert expressions. Type :quit to exit.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return repl(cfg, cc, args)
		})
}
