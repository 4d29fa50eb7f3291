// Package document decodes JSON, YAML, TOML and XML documents into values
// ready to dump. Objects and mappings become *dump.OrderedMap so the dump
// follows the order of the source document.
package document

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/vardump/pkg/errors"
	"github.com/arthur-debert/vardump/pkg/logging"
)

// Format is a document syntax.
type Format int

const (
	// FormatUnknown asks Decode to sniff the syntax from the content.
	FormatUnknown Format = iota
	FormatJSON
	FormatYAML
	FormatTOML
	FormatXML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatTOML:
		return "toml"
	case FormatXML:
		return "xml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name as given on the command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatUnknown, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "toml":
		return FormatTOML, nil
	case "xml":
		return FormatXML, nil
	default:
		return FormatUnknown, errors.Newf(errors.ErrInvalidInput, "unknown document format: %s", s)
	}
}

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) Format {
	f, err := ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return FormatUnknown
	}
	return f
}

// Sniff guesses the format from the first significant byte. TOML cannot be
// told apart from YAML this way and is never returned.
func Sniff(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n\ufeff")
	if len(trimmed) == 0 {
		return FormatYAML
	}
	switch trimmed[0] {
	case '{', '[':
		return FormatJSON
	case '<':
		return FormatXML
	default:
		return FormatYAML
	}
}

// Decode reads the whole of r as a document of format f.
func Decode(r io.Reader, f Format) (interface{}, error) {
	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileAccess, "failed to read document")
	}
	if f == FormatUnknown {
		f = Sniff(data)
	}
	logger := logging.GetLogger("document")
	logger.Debug().Str("format", f.String()).Int("bytes", len(data)).Msg("Decoding document")

	var v interface{}
	switch f {
	case FormatJSON:
		v, err = decodeJSON(data)
	case FormatYAML:
		v, err = decodeYAML(data)
	case FormatTOML:
		v, err = decodeTOML(data)
	case FormatXML:
		v, err = decodeXML(data)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported document format %v", f)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrDecode, "failed to decode %s document", f).
			WithDetail("format", f.String())
	}
	return v, nil
}

// Load decodes the file at path. "-" reads stdin. An unknown format is
// guessed from the extension, then from the content.
func Load(path string, f Format) (interface{}, error) {
	if f == FormatUnknown && path != "-" {
		f = FormatFromPath(path)
	}
	if path == "-" {
		return Decode(os.Stdin, f)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to open %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = file.Close() }()

	v, err := Decode(file, f)
	if err != nil {
		if de, ok := errors.As(err); ok {
			return nil, de.WithDetail("path", path)
		}
		return nil, err
	}
	return v, nil
}
