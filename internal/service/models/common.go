package models

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// DecodeFile decodes YAML or JSON file depending on its extension.
func DecodeFile(fs afero.Fs, path string, v any) error {
	f, err := fs.OpenFile(path, os.O_RDONLY, 0)
	if err != nil {
		return errors.New(err.Error())
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = DecodeReader("yaml", f, v)
	case ".json":
		err = DecodeReader("json", f, v)
	default:
		return errors.Errorf("unknown file format %q", ext)
	}

	if err != nil {
		return err
	}

	return nil
}

// DecodeReader decodes data in given format, unknown fields are rejected.
func DecodeReader(format string, r io.Reader, v any) error {
	var err error

	switch format {
	case "yaml":
		decoder := yaml.NewDecoder(r)
		decoder.KnownFields(true)
		err = decoder.Decode(v)
	case "json":
		decoder := json.NewDecoder(r)
		decoder.DisallowUnknownFields()
		err = decoder.Decode(v)
	default:
		return errors.Errorf("format %q doesn't supported", format)
	}

	// empty file is a valid config
	if err != nil && !errors.Is(err, io.EOF) {
		return errors.New(err.Error())
	}

	return nil
}

func parseErrsToString(errs []error) string {
	var sb strings.Builder

	for i, err := range errs {
		v := err.Error()

		if !strings.HasSuffix(v, ":") {
			sb.WriteString("- ")
		}

		sb.WriteString(v)

		if i != len(errs)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
