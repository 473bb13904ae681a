package main

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/symx/convert"
	"github.com/signadot/symx/encode"
	"github.com/signadot/symx/fallback"
	"github.com/signadot/symx/kernel"
	"github.com/signadot/symx/mir"
	"github.com/signadot/symx/native"

	jsonpatch "github.com/evanphx/json-patch"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

// exprs returns args, or the non-blank lines of r when args is empty. A
// leading "--" lets expressions start with '-'.
func exprs(r io.Reader, args []string) ([]string, error) {
	if len(args) != 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) != 0 {
		return args, nil
	}
	var res []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		res = append(res, line)
	}
	return res, sc.Err()
}

func toJSON(cfg *ToJSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.ToJSON.Parse(cc, args)
	if err != nil {
		return err
	}
	texts, err := exprs(cc.In, args)
	if err != nil {
		return err
	}
	k := kernel.New()
	conv := cfg.converter(cc.Err)
	opts := cfg.encOpts(cc.Out)
	for _, text := range texts {
		m, err := forward(k, conv, text)
		if err != nil {
			return err
		}
		if err := encode.Encode(m, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}

func forward(k *kernel.Kernel, conv *convert.Converter, text string) (*mir.Node, error) {
	n, err := k.Eval(text)
	if err != nil {
		return nil, err
	}
	m, err := conv.Forward(n)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", text, err)
	}
	return m, nil
}

func fromJSON(cfg *FromJSONConfig, cc *cli.Context, args []string) error {
	args, err := cfg.FromJSON.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.inFormat().IsText() {
		return fmt.Errorf("%w: text is an output-only format", cli.ErrUsage)
	}
	var patch jsonpatch.Patch
	if cfg.Patch != "" {
		d, err := os.ReadFile(cfg.Patch)
		if err != nil {
			return err
		}
		patch, err = jsonpatch.DecodePatch(d)
		if err != nil {
			return fmt.Errorf("could not decode patch %q: %w", cfg.Patch, err)
		}
	}
	b := &backwardState{
		conv:  cfg.converter(cc.Err),
		yaml:  cfg.inFormat().IsYAML(),
		patch: patch,
	}
	if len(args) == 0 {
		return b.reader(cc.Out, cc.In)
	}
	for _, file := range args {
		if err := b.file(cc.Out, cc.In, file); err != nil {
			return err
		}
	}
	return nil
}

type backwardState struct {
	conv  *convert.Converter
	yaml  bool
	patch jsonpatch.Patch
}

func (b *backwardState) file(w io.Writer, stdin io.Reader, file string) error {
	if file == "-" {
		return b.reader(w, stdin)
	}
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("could not open %q: %w", file, err)
	}
	defer f.Close()
	if err := b.reader(w, f); err != nil {
		return fmt.Errorf("error processing %s: %w", file, err)
	}
	return nil
}

func (b *backwardState) reader(w io.Writer, r io.Reader) error {
	in, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	for i, doc := range bytes.Split(in, []byte("\n---\n")) {
		if len(bytes.TrimSpace(doc)) == 0 {
			continue
		}
		n, err := b.document(doc)
		if err != nil {
			return fmt.Errorf("error decoding document %d: %w", i, err)
		}
		fmt.Fprintln(w, native.Render(n))
	}
	return nil
}

func (b *backwardState) document(d []byte) (native.Node, error) {
	var err error
	if b.yaml {
		d, err = yaml.YAMLToJSON(d)
		if err != nil {
			return nil, err
		}
	}
	if b.patch != nil {
		d, err = b.patch.Apply(d)
		if err != nil {
			return nil, err
		}
	}
	m, err := mir.FromJSON(d)
	if err != nil {
		return nil, err
	}
	return b.conv.Backward(m)
}

func symParse(cfg *SymConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Sym.Parse(cc, args)
	if err != nil {
		return err
	}
	texts, err := exprs(cc.In, args)
	if err != nil {
		return err
	}
	conv := cfg.converter(cc.Err)
	preserve := cfg.preserve()
	opts := cfg.encOpts(cc.Out)
	for _, text := range texts {
		e, err := fallback.Parse(text, preserve)
		if err != nil {
			return err
		}
		m, err := conv.FromSym(e)
		if err != nil {
			return fmt.Errorf("%q: %w", text, err)
		}
		fmt.Fprintln(cc.Out, e.String())
		if err := encode.Encode(m, cc.Out, opts...); err != nil {
			return err
		}
	}
	return nil
}

func roundTrip(cfg *RoundTripConfig, cc *cli.Context, args []string) error {
	args, err := cfg.RoundTrip.Parse(cc, args)
	if err != nil {
		return err
	}
	texts, err := exprs(cc.In, args)
	if err != nil {
		return err
	}
	k := kernel.New()
	conv := cfg.converter(cc.Err)
	mismatches := 0
	for _, text := range texts {
		want, got, err := roundTripText(k, conv, text)
		if err != nil {
			return err
		}
		if want != got {
			mismatches++
			fmt.Fprintf(cc.Out, "mismatch %s\n", textDiff(want, got))
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintf(cc.Out, "ok       %s\n", want)
		}
	}
	if mismatches != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// roundTripText returns the kernel rendering of text before and after a
// trip through the interchange form.
func roundTripText(k *kernel.Kernel, conv *convert.Converter, text string) (string, string, error) {
	n, err := k.Eval(text)
	if err != nil {
		return "", "", err
	}
	m, err := conv.Forward(n)
	if err != nil {
		return "", "", fmt.Errorf("%q: %w", text, err)
	}
	back, err := conv.Backward(m)
	if err != nil {
		return "", "", fmt.Errorf("%q: %w", text, err)
	}
	return native.Render(n), native.Render(back), nil
}
