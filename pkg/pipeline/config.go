package pipeline

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	perrors "github.com/matzehuels/topogen/pkg/errors"
	"github.com/matzehuels/topogen/pkg/suite"
)

// Config is the TOML run configuration:
//
//	seed = 42
//	max_redraws = 64
//	suite = "suite.toml"
//
//	[output]
//	root = "out"
//	prompt_dir = "prompt_inputs"
//	solution_dir = "solution_inputs"
//
// Every key is optional. Command-line flags override config values.
type Config struct {
	Seed       *uint64      `toml:"seed"`
	MaxRedraws int          `toml:"max_redraws"`
	Suite      string       `toml:"suite"`
	Output     OutputConfig `toml:"output"`
}

// OutputConfig configures where inputs are written.
type OutputConfig struct {
	Root        string `toml:"root"`
	PromptDir   string `toml:"prompt_dir"`
	SolutionDir string `toml:"solution_dir"`
}

// DecodeConfig reads a TOML config from r. Unknown keys are rejected.
func DecodeConfig(r io.Reader) (*Config, error) {
	var c Config
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidFormat, err, "decode config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, perrors.New(perrors.ErrCodeInvalidFormat, "unknown config keys: %s", strings.Join(keys, ", "))
	}
	if c.MaxRedraws < 0 {
		return nil, perrors.New(perrors.ErrCodeInvalidInput, "max_redraws must be positive, got %d", c.MaxRedraws)
	}
	return &c, nil
}

// LoadConfig reads a config file. Relative suite and output paths are
// resolved against the file's directory.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	c, err := DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	if c.Suite != "" && !filepath.IsAbs(c.Suite) {
		c.Suite = filepath.Join(dir, c.Suite)
	}
	if c.Output.Root != "" && !filepath.IsAbs(c.Output.Root) {
		c.Output.Root = filepath.Join(dir, c.Output.Root)
	}
	return c, nil
}

// Request builds a request from the config. The seed is only set when the
// config names one; the second result reports whether it did.
func (c *Config) Request() (Request, bool, error) {
	req := Request{
		OutputRoot:  c.Output.Root,
		PromptDir:   c.Output.PromptDir,
		SolutionDir: c.Output.SolutionDir,
		MaxRedraws:  c.MaxRedraws,
	}
	if c.Suite != "" {
		s, err := suite.Load(c.Suite)
		if err != nil {
			return req, false, perrors.Wrap(perrors.ErrCodeInvalidSuite, err, "load suite")
		}
		req.Suite = s
	}
	if c.Seed == nil {
		return req, false, nil
	}
	req.Seed = *c.Seed
	return req, true, nil
}
