package parser

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/parfait-bio/parfait/pkg/errors"
	"github.com/parfait-bio/parfait/pkg/gfa"
)

// Options configures parsing behavior.
type Options struct {
	StrictVersion bool        // Reject records not valid in the declared version
	MaxErrors     int         // Stop recording findings past this count, 0 = unlimited
	Version       gfa.Version // Assumed version when the input declares none
	Logger        *log.Logger // Progress/debug logging (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.MaxErrors < 0 {
		opts.MaxErrors = 0
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return opts
}

// optionsFile is the on-disk TOML shape of Options.
type optionsFile struct {
	StrictVersion bool   `toml:"strict_version"`
	MaxErrors     int    `toml:"max_errors"`
	Version       string `toml:"version"`
}

// LoadOptions reads Options from a TOML file. The version key accepts the
// same values as a header VN tag ("1.0", "1.1", "1.2", "2.0").
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeIO, err, "read options file %s", path)
	}

	var file optionsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return Options{}, errors.Wrap(errors.ErrCodeIO, err, "decode options file %s", path)
	}

	opts := Options{
		StrictVersion: file.StrictVersion,
		MaxErrors:     file.MaxErrors,
	}
	if file.Version != "" {
		v, ok := gfa.ParseVersion(file.Version)
		if !ok {
			return Options{}, errors.New(errors.ErrCodeUnknownVersion, "unknown version %q in %s", file.Version, path)
		}
		opts.Version = v
	}
	return opts, nil
}
