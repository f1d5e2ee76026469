package cmderror

import (
	"errors"
	"strings"
)

// Inspector provides methods for classifying failures from the external
// commands raur drives (pacman, sudo, git, makepkg) and from the AUR
// transport. Classification only affects the message shown to the user; it
// never changes control flow.
type Inspector interface {
	// IsNetworkError returns true if the error represents a network
	// connectivity failure.
	IsNetworkError(err error) bool

	// IsPermissionError returns true if the error represents a privilege
	// escalation or filesystem permission failure.
	IsPermissionError(err error) bool

	// IsNotFoundError returns true if the error represents a missing
	// package, repository, or binary.
	IsNotFoundError(err error) bool
}

// CommandErrorInspector implements the Inspector interface by matching the
// well-known phrases the external tools print.
type CommandErrorInspector struct{}

// NewInspector creates a new CommandErrorInspector.
func NewInspector() Inspector {
	return &CommandErrorInspector{}
}

// IsNetworkError checks if the error is a network connectivity error.
func (i *CommandErrorInspector) IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") ||
		strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "temporary failure") ||
		strings.Contains(errStr, "dial tcp") ||
		strings.Contains(errStr, "could not resolve host") ||
		strings.Contains(errStr, "failed to retrieve") ||
		strings.Contains(errStr, "network is unreachable")
}

// IsPermissionError checks if the error is a privilege or permission error.
func (i *CommandErrorInspector) IsPermissionError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "permission denied") ||
		strings.Contains(errStr, "operation not permitted") ||
		strings.Contains(errStr, "incorrect password") ||
		strings.Contains(errStr, "a password is required") ||
		strings.Contains(errStr, "you cannot perform this operation unless you are root")
}

// IsNotFoundError checks if the error is a missing package or binary error.
func (i *CommandErrorInspector) IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "target not found") ||
		strings.Contains(errStr, "repository not found") ||
		strings.Contains(errStr, "executable file not found") ||
		strings.Contains(errStr, "404") ||
		strings.Contains(errStr, "not found")
}

// ErrorChainInspector wraps a base inspector and adds support for checking
// errors in the error chain using errors.As before falling back to
// string-based inspection.
type ErrorChainInspector struct {
	base Inspector
}

// NewErrorChainInspector creates a new ErrorChainInspector.
func NewErrorChainInspector(base Inspector) Inspector {
	return &ErrorChainInspector{base: base}
}

// IsNetworkError checks the error chain first, then falls back to base inspector.
func (e *ErrorChainInspector) IsNetworkError(err error) bool {
	var networkErr interface{ IsNetworkError() bool }
	if errors.As(err, &networkErr) && networkErr.IsNetworkError() {
		return true
	}
	return e.base.IsNetworkError(err)
}

// IsPermissionError checks the error chain first, then falls back to base inspector.
func (e *ErrorChainInspector) IsPermissionError(err error) bool {
	var permErr interface{ IsPermissionError() bool }
	if errors.As(err, &permErr) && permErr.IsPermissionError() {
		return true
	}
	return e.base.IsPermissionError(err)
}

// IsNotFoundError checks the error chain first, then falls back to base inspector.
func (e *ErrorChainInspector) IsNotFoundError(err error) bool {
	var notFoundErr interface{ IsNotFoundError() bool }
	if errors.As(err, &notFoundErr) && notFoundErr.IsNotFoundError() {
		return true
	}
	return e.base.IsNotFoundError(err)
}
