// Package evaluator pattern-matches learner-typed "Python" against a
// closed catalog of statement shapes and synthesizes the output a real
// interpreter would print for that narrow subset. It is a single-pass
// line matcher, not a parser: no grammar, no AST, no state between runs.
package evaluator

import (
	"errors"
	"strings"
)

// Placeholder is emitted when no line produced any output
const Placeholder = "Run your code to see output!"

// Result is what one Run produces: the ordered output lines and the
// checklist flags the lesson's manifest asked for
type Result struct {
	Lines []string        `json:"outputLines"`
	Flags map[string]bool `json:"recognizedFlags"`
}

// Output joins the lines print-style. Zero matched lines yield the fixed
// placeholder so the editor pane never goes blank.
func (r Result) Output() string {
	if len(r.Lines) == 0 {
		return Placeholder
	}
	return strings.Join(r.Lines, "\n")
}

// Run evaluates one code buffer against a manifest. Rules, in order:
// blank lines and # comments are skipped; each remaining line is tried
// against the manifest's shapes in priority order and the first full-line
// match wins; unmatched lines are ignored; a known module used before its
// import line appends the missing-import error and stops the scan.
// Run never panics; malformed input degrades to ignored lines.
func Run(source string, manifest Manifest) Result {
	env := NewEnv()
	events := make(map[string]bool)
	var lines []string

scan:
	for _, raw := range strings.Split(source, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		for _, id := range manifest.Shapes {
			sh, ok := shapes[id]
			if !ok {
				continue
			}
			m, matched := sh.match(line)
			if !matched {
				continue
			}

			out, evs, err := sh.apply(env, m)
			if err != nil {
				var missing missingImportError
				if errors.As(err, &missing) {
					lines = append(lines, missing.Error())
					break scan
				}
				// no other error kinds exist; treat as unmatched
				break
			}
			lines = append(lines, out...)
			for _, e := range evs {
				events[e] = true
			}
			break
		}
	}

	flags := make(map[string]bool, len(manifest.Flags))
	for _, rule := range manifest.Flags {
		flags[rule.Name] = events[rule.Event]
	}
	return Result{Lines: lines, Flags: flags}
}
