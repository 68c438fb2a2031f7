package extractor

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

func extractPlaintext(raw []byte) (string, error) {
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("content is not valid utf-8 text")
	}
	return strings.TrimSpace(string(raw)), nil
}
