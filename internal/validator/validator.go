// Package validator delegates syntax checking to external toolchains. A
// validator is an opaque collaborator: polyscan invokes a process with the
// file path as its last argument and interprets the exit code and stderr.
// A missing tool or a timeout degrades to a skip, never to a scan failure.
package validator

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/polyscan-dev/polyscan/internal/classify"
)

// DefaultTimeout bounds a single validator invocation.
const DefaultTimeout = 30 * time.Second

// Outcome classifies one validator run.
type Outcome int

const (
	// Passed means the tool accepted the file.
	Passed Outcome = iota
	// Failed means the tool rejected the file; Diagnostic carries the
	// first line of its stderr when usable.
	Failed
	// Unavailable means the tool is missing, timed out, or could not
	// run. Never treated as a finding.
	Unavailable
)

// Result is the interpreted output of one validator invocation.
type Result struct {
	Outcome    Outcome
	Diagnostic string
}

// Validator describes the external command for one language. The scanned
// file path is appended to Args at invocation time.
type Validator struct {
	Command string
	Args    []string
}

// Registry maps languages to their validators. Immutable after New.
type Registry struct {
	validators map[classify.Language]Validator
	timeout    time.Duration
	logger     hclog.Logger
}

// Defaults returns the built-in validator table: the ubiquitous syntax
// checkers for languages that have one.
func Defaults() map[classify.Language]Validator {
	return map[classify.Language]Validator{
		classify.LangPython: {Command: "python3", Args: []string{"-m", "py_compile"}},
		classify.LangGo:     {Command: "gofmt", Args: []string{"-l", "-e"}},
	}
}

// New builds a registry from the given table. Extra entries keyed by
// language name can extend or override the table (an empty command removes
// the language). A non-positive timeout falls back to DefaultTimeout.
func New(table map[classify.Language]Validator, extra map[string][]string, timeout time.Duration, logger hclog.Logger) *Registry {
	validators := make(map[classify.Language]Validator, len(table))
	for lang, v := range table {
		validators[lang] = v
	}
	for lang, cmdline := range extra {
		if len(cmdline) == 0 || cmdline[0] == "" {
			delete(validators, classify.Language(lang))
			continue
		}
		validators[classify.Language(lang)] = Validator{Command: cmdline[0], Args: cmdline[1:]}
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Registry{validators: validators, timeout: timeout, logger: logger}
}

// Supports reports whether a validator is registered for the language.
func (r *Registry) Supports(lang classify.Language) bool {
	if r == nil {
		return false
	}
	_, ok := r.validators[lang]
	return ok
}

// Validate runs the language's validator against path. The invocation is
// bounded by the registry timeout on top of the caller's context; an
// abandoned or unrunnable invocation reports Unavailable.
func (r *Registry) Validate(ctx context.Context, lang classify.Language, path string) Result {
	v, ok := r.validators[lang]
	if !ok {
		return Result{Outcome: Unavailable}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	args := append(append([]string{}, v.Args...), path)
	cmd := exec.CommandContext(ctx, v.Command, args...)

	var output bytes.Buffer
	cmd.Stdout = &output
	cmd.Stderr = &output

	err := cmd.Run()
	if err == nil {
		return Result{Outcome: Passed}
	}

	if ctx.Err() != nil {
		r.logger.Warn("validator abandoned", "language", lang, "path", path, "error", ctx.Err())
		return Result{Outcome: Unavailable}
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return Result{Outcome: Failed, Diagnostic: firstLine(output.String())}
	}

	// exec.ErrNotFound and friends: the host has no such tool.
	r.logger.Debug("validator unavailable", "language", lang, "command", v.Command, "error", err)
	return Result{Outcome: Unavailable}
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
