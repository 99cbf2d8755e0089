// Package interpolate implements component C1: substitution of
// {{task.output}} and {{vars.NAME}} tokens in a command template.
package interpolate

import (
	"regexp"
	"strings"
)

// token matches any {{...}} placeholder, tolerating whitespace after the
// opening braces and before the closing ones ("{{a.output }}" and
// "{{ vars.X }}" both match).
var token = regexp.MustCompile(`\{\{\s*([^{}]+?)\s*\}\}`)

// Interpolate substitutes known tokens against outputs (task name -> captured
// stdout) and vars (external variable name -> value), then strips any
// remaining {{...}} token so a raw template never reaches a shell.
//
// Outputs are trimmed of leading/trailing ASCII whitespace before
// substitution: upstream commands typically emit a trailing newline, and
// trimming lets the value splice cleanly into a shell word.
func Interpolate(template string, outputs map[string]string, vars map[string]string) string {
	return token.ReplaceAllStringFunc(template, func(match string) string {
		inner := token.FindStringSubmatch(match)[1]

		if name, ok := strings.CutPrefix(inner, "vars."); ok {
			name = strings.TrimSpace(name)
			if v, ok := vars[name]; ok {
				return v
			}
			return ""
		}

		if taskName, ok := strings.CutSuffix(inner, ".output"); ok {
			taskName = strings.TrimSpace(taskName)
			if out, ok := outputs[taskName]; ok {
				return strings.TrimSpace(out)
			}
			return ""
		}

		// Unrecognized token: strip it.
		return ""
	})
}
