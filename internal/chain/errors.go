package chain

import (
	"errors"
	"strings"
)

// ErrNoSigner is returned by write paths when no private key was configured.
var ErrNoSigner = errors.New("signing key not configured")

// ConnectionError wraps transport-level failures talking to the node.
type ConnectionError struct {
	Op  string
	Err error
}

func (e *ConnectionError) Error() string { return "node " + e.Op + ": " + e.Err.Error() }
func (e *ConnectionError) Unwrap() error { return e.Err }

// CallError wraps a contract call that the EVM rejected (revert, out of gas).
type CallError struct {
	Reason string
	Err    error
}

func (e *CallError) Error() string { return "contract call: " + e.Reason }
func (e *CallError) Unwrap() error { return e.Err }

// Extract the revert reason from a node error, keeping the full message otherwise.
func revertReason(e error) string {
	s := e.Error()
	if i := strings.Index(s, "execution reverted"); i >= 0 {
		return s[i:]
	}
	return s
}

func isRevert(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "execution reverted") || strings.Contains(s, "revert")
}

func isRateLimitError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "Too Many Requests") || strings.Contains(s, "-32005")
}

// classify wraps a node error as either a revert or a transport failure.
func classify(op string, err error) error {
	if isRevert(err) {
		return &CallError{Reason: revertReason(err), Err: err}
	}
	return &ConnectionError{Op: op, Err: err}
}
