// Package sharelink serializes a full assumption record to a compact,
// URL-safe token and restores it, supporting shareable pre-filled
// scenarios. The token is versioned JSON, DEFLATE-compressed, base64url
// without padding. Round-trips are lossless; the engine accepts a restored
// record unmodified.
package sharelink

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/governos/roi-calculator/internal/config"
)

// tokenPrefix versions the wire form so a future layout change can be
// detected instead of silently misparsed.
const tokenPrefix = "v1."

// maxDecodedBytes caps decompression output; a well-formed token decodes
// to a few KB at most.
const maxDecodedBytes = 1 << 20

// Encode produces the share token for an assumption record.
func Encode(assumptions config.Assumptions) (string, error) {
	raw, err := json.Marshal(assumptions)
	if err != nil {
		return "", fmt.Errorf("failed to marshal assumptions: %w", err)
	}

	var compressed bytes.Buffer
	writer, err := flate.NewWriter(&compressed, flate.BestCompression)
	if err != nil {
		return "", fmt.Errorf("failed to initialize compressor: %w", err)
	}
	if _, err := writer.Write(raw); err != nil {
		return "", fmt.Errorf("failed to compress assumptions: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize compression: %w", err)
	}

	return tokenPrefix + base64.RawURLEncoding.EncodeToString(compressed.Bytes()), nil
}

// Decode restores an assumption record from a share token.
func Decode(token string) (config.Assumptions, error) {
	var assumptions config.Assumptions

	trimmed := strings.TrimSpace(token)
	if !strings.HasPrefix(trimmed, tokenPrefix) {
		return assumptions, fmt.Errorf("unrecognized share token version")
	}

	compressed, err := base64.RawURLEncoding.DecodeString(strings.TrimPrefix(trimmed, tokenPrefix))
	if err != nil {
		return assumptions, fmt.Errorf("malformed share token: %w", err)
	}

	reader := flate.NewReader(bytes.NewReader(compressed))
	defer func() {
		_ = reader.Close()
	}()

	raw, err := io.ReadAll(io.LimitReader(reader, maxDecodedBytes))
	if err != nil {
		return assumptions, fmt.Errorf("failed to decompress share token: %w", err)
	}

	if err := json.Unmarshal(raw, &assumptions); err != nil {
		return assumptions, fmt.Errorf("failed to decode assumptions: %w", err)
	}

	return assumptions, nil
}
