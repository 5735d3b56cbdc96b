package common

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ternarybob/brandex/internal/interfaces"
)

// ResolveAPIKey resolves an API key with environment-first ordering:
// BRANDEX_<NAME> environment variable, then the KV store, then the config
// fallback. Returns an error only when every source comes up empty.
func ResolveAPIKey(ctx context.Context, kv interfaces.KeyValueStorage, name, fallback string) (string, error) {
	envVar := "BRANDEX_" + strings.ToUpper(name)
	if v := os.Getenv(envVar); v != "" {
		return v, nil
	}

	if kv != nil {
		if v, err := kv.Get(ctx, name); err == nil && v != "" {
			return v, nil
		}
	}

	if fallback != "" {
		return fallback, nil
	}

	return "", fmt.Errorf("API key %q not found in environment (%s), KV store, or config", name, envVar)
}
