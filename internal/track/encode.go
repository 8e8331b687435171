package track

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"path/filepath"
	"strings"
)

const (
	// GlobalFileName is the fallback config used when no directory has one.
	GlobalFileName = "global.toml"

	configExt   = ".toml"
	hashPrefix  = "sha256-"
	maxNameSize = 200
)

var nameEncoding = base64.RawURLEncoding

// EncodePath returns the config file path under root for directory dir.
//
// The name is the unpadded URL-safe base64 of the cleaned path, which is
// filesystem safe and can be decoded again for listing. Paths whose
// encoding would exceed common file name limits use a sha256 digest instead.
func EncodePath(root, dir string) string {
	return filepath.Join(root, encodeName(filepath.Clean(dir)))
}

func encodeName(dir string) string {
	name := nameEncoding.EncodeToString([]byte(dir)) + configExt
	if len(name) <= maxNameSize {
		return name
	}
	sum := sha256.Sum256([]byte(dir))
	return hashPrefix + hex.EncodeToString(sum[:]) + configExt
}

// DecodeName returns the directory a config file name was encoded from.
// Hashed names, the global config and foreign files report false.
func DecodeName(name string) (string, bool) {
	name = filepath.Base(name)
	if name == GlobalFileName || strings.HasPrefix(name, hashPrefix) {
		return "", false
	}
	encoded, ok := strings.CutSuffix(name, configExt)
	if !ok || encoded == "" {
		return "", false
	}
	raw, err := nameEncoding.DecodeString(encoded)
	if err != nil {
		return "", false
	}
	dir := string(raw)
	if !filepath.IsAbs(dir) {
		return "", false
	}
	return dir, true
}
