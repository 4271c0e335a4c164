// Package sandbox runs lesson snippets in the yaegi Go interpreter.
//
// A snippet is a package main source file that defines func Run(). Only
// allow-listed stdlib imports are accepted, and everything the snippet prints
// is captured and handed back once Run returns.
package sandbox

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"go/parser"
	"go/token"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"
	"go.uber.org/zap"
)

// EntryPoint is the function every snippet must define.
const EntryPoint = "main.Run"

// ErrImportNotAllowed is returned when a snippet imports a package outside the allow-list.
var ErrImportNotAllowed = errors.New("import not allowed")

// Runner executes snippets.
type Runner struct {
	allowedPackages map[string]bool
	timeout         time.Duration
	logger          *zap.Logger
}

// NewRunner creates a Runner. A zero timeout means the caller's context alone bounds execution.
func NewRunner(timeout time.Duration, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		allowedPackages: map[string]bool{
			"fmt":     true,
			"strings": true,
			"strconv": true,
			"math":    true,
			"sort":    true,
			"unicode": true,
			"errors":  true,
			// os, os/exec, net, syscall and unsafe stay out
		},
		timeout: timeout,
		logger:  logger,
	}
}

// Run interprets src and writes its output to w.
func (r *Runner) Run(ctx context.Context, src string, w io.Writer) error {
	if err := r.validateImports(src); err != nil {
		return err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	var stdout bytes.Buffer
	i := interp.New(interp.Options{Stdout: &stdout, Stderr: &stdout})
	if err := i.Use(stdlib.Symbols); err != nil {
		return fmt.Errorf("failed to load stdlib: %w", err)
	}

	if _, err := i.EvalWithContext(ctx, src); err != nil {
		return fmt.Errorf("snippet evaluation failed: %w", err)
	}

	v, err := i.Eval(EntryPoint)
	if err != nil {
		return fmt.Errorf("snippet has no Run function: %w", err)
	}
	run, ok := v.Interface().(func())
	if !ok {
		return fmt.Errorf("Run has incorrect signature (expected: func())")
	}

	done := make(chan error, 1)
	go func() {
		defer func() {
			if p := recover(); p != nil {
				done <- fmt.Errorf("snippet panicked: %v", p)
			}
		}()
		run()
		done <- nil
	}()

	start := time.Now()
	select {
	case err := <-done:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		return fmt.Errorf("snippet execution timed out: %w", ctx.Err())
	}
	r.logger.Debug("Snippet finished",
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("bytes", stdout.Len()))

	_, err = w.Write(stdout.Bytes())
	return err
}

// validateImports checks that the snippet only imports allowed packages.
func (r *Runner) validateImports(src string) error {
	f, err := parser.ParseFile(token.NewFileSet(), "snippet.go", src, parser.ImportsOnly)
	if err != nil {
		return fmt.Errorf("failed to parse snippet: %w", err)
	}

	var forbidden []string
	for _, spec := range f.Imports {
		pkg, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			return fmt.Errorf("bad import path %s: %w", spec.Path.Value, err)
		}
		if !r.allowedPackages[pkg] {
			forbidden = append(forbidden, pkg)
		}
	}

	if len(forbidden) > 0 {
		return fmt.Errorf("%w: %v (allowed: %v)", ErrImportNotAllowed, forbidden, r.allowed())
	}
	return nil
}

func (r *Runner) allowed() []string {
	pkgs := make([]string, 0, len(r.allowedPackages))
	for pkg := range r.allowedPackages {
		pkgs = append(pkgs, pkg)
	}
	sort.Strings(pkgs)
	return pkgs
}
