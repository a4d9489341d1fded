package dataset

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var bomUTF8 = []byte{0xEF, 0xBB, 0xBF}

// DetectAndDecode turns raw file bytes into text: UTF-8 with an optional BOM
// is preferred, anything that is not valid UTF-8 falls back to Latin-1
// (ISO 8859-1), mirroring what genealogy sites actually export. The second
// return value names the encoding that was used.
func DetectAndDecode(data []byte) (string, string, error) {
	if bytes.HasPrefix(data, bomUTF8) {
		return string(data[3:]), "utf-8-bom", nil
	}
	if utf8.Valid(data) {
		return string(data), "utf-8", nil
	}

	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return "", "", fmt.Errorf("latin-1 fallback decode: %w", err)
	}
	return string(decoded), "latin-1", nil
}
