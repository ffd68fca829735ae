package config

import (
	"fmt"
	"sort"

	"github.com/zoro11031/materialize/internal/common"
)

// Configuration key constants to prevent typos and enable autocomplete
const (
	KeyFileMode = "FILE_MODE" // Permissions for created files, before umask
	KeyDirMode  = "DIR_MODE"  // Permissions for created directories, before umask
	KeyManifest = "MANIFEST"  // Manifest read by apply and written by init
)

// Default values for configuration keys
var Defaults = map[string]string{
	KeyFileMode: "0644",
	KeyDirMode:  "0755",
	KeyManifest: "materialize.yaml",
}

var validators = map[string]func(string) error{
	KeyFileMode: common.ValidateFileMode,
	KeyDirMode:  common.ValidateFileMode,
	KeyManifest: common.ValidateTargetPath,
}

// Keys returns all known configuration keys in sorted order
func Keys() []string {
	keys := make([]string, 0, len(Defaults))
	for k := range Defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func validateEntry(key, value string) error {
	validate, ok := validators[key]
	if !ok {
		return fmt.Errorf("unknown config key: %s", key)
	}
	if err := validate(value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return nil
}
