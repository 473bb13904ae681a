package main

import (
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// textDiff marks deletions from a as [-text-] and insertions from b as
// {+text+}.
func textDiff(a, b string) string {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(a, b, false)
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffInsert:
			sb.WriteString(color.GreenString("{+%s+}", d.Text))
		case diffpatch.DiffDelete:
			sb.WriteString(color.RedString("[-%s-]", d.Text))
		case diffpatch.DiffEqual:
			sb.WriteString(d.Text)
		}
	}
	return sb.String()
}
