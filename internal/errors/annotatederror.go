// Package errors extends the standard library errors package with annotated
// errors that carry slog attributes and the source location where they were
// created. Handlers log them with SlogError and get the whole annotation
// chain in one structured attribute.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"slices"
)

// AnnotatedError wraps a cause with a message, optional slog attributes and
// the file:line of the call site that created it.
type AnnotatedError struct {
	msg   string
	cause error
	attrs []slog.Attr
	file  string
	line  int
}

// caller resolves the file and line skip levels above the caller of caller.
func caller(skip int) (string, int) {
	var pcs [1]uintptr
	if n := runtime.Callers(skip+2, pcs[:]); n == 0 {
		return "", 0
	}
	frame, _ := runtime.CallersFrames(pcs[:]).Next()
	return frame.File, frame.Line
}

// NewSentinel creates an error meant to be used as a sentinel value for Is checks.
func NewSentinel(msg string) error {
	file, line := caller(1)
	return &AnnotatedError{msg: msg, cause: nil, attrs: nil, file: file, line: line}
}

// Wrap annotates err with a message and optional slog attributes. The
// resulting message reads "msg: err" and the attributes of the whole chain
// surface in SlogError.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	file, line := caller(1)
	return &AnnotatedError{msg: msg, cause: err, attrs: attrs, file: file, line: line}
}

// DecoratePanic converts a recovered panic value into an error that points at
// the panic site rather than the recover site.
func DecoratePanic(recovered any) error {
	pcs := make([]uintptr, 64) //nolint:mnd // enough stack depth for any handler.
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	var (
		file     string
		line     int
		sawPanic bool
	)
	for {
		frame, more := frames.Next()
		if sawPanic {
			file, line = frame.File, frame.Line
			break
		}
		if frame.Function == "runtime.gopanic" {
			sawPanic = true
		}
		if !more {
			break
		}
	}
	if file == "" {
		file, line = caller(1)
	}
	return &AnnotatedError{
		msg:   fmt.Sprintf("panic: %v", recovered),
		cause: nil,
		attrs: nil,
		file:  file,
		line:  line,
	}
}

func (e *AnnotatedError) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *AnnotatedError) Unwrap() error {
	return e.cause
}

// annotations collects the slog attributes of the error and every annotated
// error below it.
func (e *AnnotatedError) annotations() []slog.Attr {
	attrs := slices.Clone(e.attrs)
	var annotated *AnnotatedError
	if errors.As(e.cause, &annotated) {
		attrs = append(attrs, annotated.annotations()...)
	}
	return attrs
}

// SlogError renders err as a structured "error" attribute with the message,
// the creation site of the outermost annotated error and the collected
// annotations. Safe to call with nil or plain errors.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Any("error", nil)
	}
	args := []any{slog.String("message", err.Error())}
	var annotated *AnnotatedError
	if errors.As(err, &annotated) {
		if annotated.file != "" {
			args = append(args, slog.String("source",
				fmt.Sprintf("%s:%d", filepath.Base(annotated.file), annotated.line)))
		}
		if annotations := annotated.annotations(); len(annotations) > 0 {
			groupArgs := make([]any, len(annotations))
			for i, attr := range annotations {
				groupArgs[i] = attr
			}
			args = append(args, slog.Group("annotations", groupArgs...))
		}
	}
	return slog.Group("error", args...)
}

// Re-exports so that callers only need one errors import.

func New(msg string) error { return errors.New(msg) }

func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target any) bool { return errors.As(err, target) }

func Unwrap(err error) error { return errors.Unwrap(err) }

func Join(errs ...error) error { return errors.Join(errs...) }
