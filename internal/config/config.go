package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Settings keeps all configuration options.
// Naming mirrors the backend's existing env keys.
type Settings struct {
	ListenAddr      string
	RPCURL          string
	ContractAddress string
	AdminAPIKey     string
	AdminPKHex      string
	InfoCacheTTL    time.Duration
	RPCRatePerSec   int
	CallAttempts    int
	LogLevel        string
}

// Load reads settings from environment supporting both UPPER_CASE and lower_case keys.
func Load() Settings {
	get := func(keys []string, def string) string {
		for _, k := range keys {
			if v := strings.TrimSpace(os.Getenv(k)); v != "" {
				return v
			}
		}
		return def
	}
	getInt := func(keys []string, def int) int {
		s := get(keys, "")
		if s == "" {
			return def
		}
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n
		}
		return def
	}

	st := Settings{}
	st.ListenAddr = ":" + strings.TrimPrefix(get([]string{"port", "PORT"}, "4000"), ":")
	st.RPCURL = get([]string{"rpc_url", "RPC_URL"}, "")
	st.ContractAddress = get([]string{"contract_address", "CONTRACT_ADDRESS"}, "")
	st.AdminAPIKey = get([]string{"admin_api_key", "ADMIN_API_KEY"}, "")
	st.AdminPKHex = get([]string{"admin_private_key", "ADMIN_PRIVATE_KEY"}, "")
	st.InfoCacheTTL = time.Duration(getInt([]string{"info_cache_ttl_sec", "INFO_CACHE_TTL_SEC"}, 30)) * time.Second
	st.RPCRatePerSec = getInt([]string{"rpc_rate_limit", "RPC_RATE_LIMIT"}, 20)
	st.CallAttempts = getInt([]string{"rpc_call_attempts", "RPC_CALL_ATTEMPTS"}, 3)
	st.LogLevel = get([]string{"log_level", "LOG_LEVEL"}, "info")
	return st
}
