package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "RPC_URL", "CONTRACT_ADDRESS", "ADMIN_API_KEY", "ADMIN_PRIVATE_KEY", "INFO_CACHE_TTL_SEC", "RPC_RATE_LIMIT", "RPC_CALL_ATTEMPTS", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	st := Load()
	if st.ListenAddr != ":4000" {
		t.Fatalf("unexpected ListenAddr: %s", st.ListenAddr)
	}
	if st.InfoCacheTTL != 30*time.Second {
		t.Fatalf("unexpected InfoCacheTTL: %s", st.InfoCacheTTL)
	}
	if st.RPCRatePerSec != 20 || st.CallAttempts != 3 {
		t.Fatalf("unexpected RPC defaults: %d %d", st.RPCRatePerSec, st.CallAttempts)
	}
	if st.LogLevel != "info" {
		t.Fatalf("unexpected LogLevel: %s", st.LogLevel)
	}
}

func TestLoadReadsBothCases(t *testing.T) {
	t.Setenv("RPC_URL", "")
	t.Setenv("rpc_url", "https://rpc.sepolia.org")
	t.Setenv("CONTRACT_ADDRESS", "0xC0FFEE0000000000000000000000000000000001")
	t.Setenv("PORT", "8080")
	t.Setenv("INFO_CACHE_TTL_SEC", "10")

	st := Load()
	if st.RPCURL != "https://rpc.sepolia.org" {
		t.Fatalf("lower-case key not read: %s", st.RPCURL)
	}
	if st.ContractAddress != "0xC0FFEE0000000000000000000000000000000001" {
		t.Fatalf("unexpected contract: %s", st.ContractAddress)
	}
	if st.ListenAddr != ":8080" {
		t.Fatalf("unexpected ListenAddr: %s", st.ListenAddr)
	}
	if st.InfoCacheTTL != 10*time.Second {
		t.Fatalf("unexpected ttl: %s", st.InfoCacheTTL)
	}
}

func TestLoadIgnoresBadNumbers(t *testing.T) {
	t.Setenv("RPC_RATE_LIMIT", "plenty")
	st := Load()
	if st.RPCRatePerSec != 20 {
		t.Fatalf("bad number should fall back to default, got %d", st.RPCRatePerSec)
	}
}
