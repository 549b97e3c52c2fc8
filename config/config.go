// Package config merges defaults.ini's [tracker] section with command-line
// flags: a flag the caller actually passed overrides the INI value, and an
// INI value overrides the compiled-in default.
package config

import (
	"flag"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"
)

// Config holds everything cmd/tracker needs to run one pass.
type Config struct {
	Input   string
	Output  string
	VisDir  string
	MaxDist float64
	MaxAge  int
	Alpha   float64
}

func defaults() Config {
	return Config{
		MaxDist: 0.15,
		MaxAge:  5,
		Alpha:   0.7,
	}
}

// Load parses args with the standard flag package, overlaying any flags the
// caller actually passed on top of defaults.ini's [tracker] section (if
// iniPath is non-empty; a file that cannot be read is an error), on top of
// the package's own compiled-in defaults.
func Load(iniPath string, args []string) (*Config, error) {
	cfg := defaults()

	if iniPath != "" {
		if err := applyINI(iniPath, &cfg); err != nil {
			return nil, err
		}
	}

	fs := flag.NewFlagSet("tracker", flag.ContinueOnError)
	input := fs.String("input", cfg.Input, "path to the input JSON document")
	output := fs.String("output", cfg.Output, "path to write the output JSON document")
	visDir := fs.String("vis-dir", cfg.VisDir, "directory to write per-frame visualization PNGs")
	maxDist := fs.Float64("max-dist", cfg.MaxDist, "gating distance between a track's predicted center and a detection's center")
	maxAge := fs.Int("max-age", cfg.MaxAge, "frames a track may coast before being retired")
	alpha := fs.Float64("alpha", cfg.Alpha, "weight of IoU against center-distance in the cost function")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Input, cfg.Output, cfg.VisDir = *input, *output, *visDir
	cfg.MaxDist, cfg.MaxAge, cfg.Alpha = *maxDist, *maxAge, *alpha

	if cfg.Input == "" || cfg.Output == "" || cfg.VisDir == "" {
		return nil, errors.New("--input, --output and --vis-dir are required (directly or via defaults.ini)")
	}
	return &cfg, nil
}

func applyINI(path string, cfg *Config) error {
	file, err := ini.Load(path)
	if err != nil {
		return errors.Wrapf(err, "could not read %s", path)
	}
	section := file.Section("tracker")
	if v := section.Key("input").String(); v != "" {
		cfg.Input = v
	}
	if v := section.Key("output").String(); v != "" {
		cfg.Output = v
	}
	if v := section.Key("vis-dir").String(); v != "" {
		cfg.VisDir = v
	}
	if v, err := section.Key("max-dist").Float64(); err == nil {
		cfg.MaxDist = v
	}
	if v, err := section.Key("max-age").Int(); err == nil {
		cfg.MaxAge = v
	}
	if v, err := section.Key("alpha").Float64(); err == nil {
		cfg.Alpha = v
	}
	return nil
}
