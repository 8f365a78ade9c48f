package chain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyRevert(t *testing.T) {
	err := classify("call", errors.New("execution reverted: insufficient vault balance"))
	var callErr *CallError
	assert.ErrorAs(t, err, &callErr)
	assert.Equal(t, "execution reverted: insufficient vault balance", callErr.Reason)
}

func TestClassifyTransport(t *testing.T) {
	err := classify("call", errors.New("dial tcp: connection refused"))
	var connErr *ConnectionError
	assert.ErrorAs(t, err, &connErr)
	assert.Equal(t, "call", connErr.Op)
}

func TestRevertReasonKeepsFullMessageOtherwise(t *testing.T) {
	assert.Equal(t, "timeout", revertReason(errors.New("timeout")))
	assert.Equal(t,
		"execution reverted: not owner",
		revertReason(errors.New("rpc error: execution reverted: not owner")))
}

func TestIsRateLimitError(t *testing.T) {
	assert.True(t, isRateLimitError(errors.New("429 Too Many Requests")))
	assert.True(t, isRateLimitError(errors.New("code -32005: limit exceeded")))
	assert.False(t, isRateLimitError(nil))
	assert.False(t, isRateLimitError(errors.New("execution reverted")))
}
