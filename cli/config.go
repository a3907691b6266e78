package cli

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"q.log/tabsimplex/instance"
	"q.log/tabsimplex/simplex"
)

const envPrefix = "TABSIMPLEX"

// Config holds the solver settings resolved from flags, environment and
// an optional config file, in that order of precedence.
type Config struct {
	Tolerance     float64 `mapstructure:"tolerance"`
	MaxIterations int     `mapstructure:"max-iterations"`
	Rule          string  `mapstructure:"rule"`
	Trace         bool    `mapstructure:"trace"`
	LogLevel      string  `mapstructure:"log-level"`
	LogFormat     string  `mapstructure:"log-format"`

	// toleranceSet reports an explicit tolerance, which overrides the
	// one stored with a problem.
	toleranceSet bool
	// ruleSet reports an explicit rule; otherwise the solver picks one
	// from the optimization sense.
	ruleSet bool
}

func addSolverFlags(fs *pflag.FlagSet) {
	fs.Float64("tolerance", simplex.DefaultTolerance, "Minimum magnitude of an improving reduced cost")
	fs.Int("max-iterations", simplex.DefaultMaxIterations, "Pivot limit per problem (0 disables it)")
	fs.String("rule", "", "Termination rule: legacy or standard (default legacy; standard for minimization models)")
	fs.Bool("trace", false, "Print the tableau after every pivot")
}

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "Path to a config file (yaml, json or toml)")
	fs.String("log-level", "warning", "Log level (debug, info, warning, error)")
	fs.String("log-format", "text", "Log format: text or json")
}

// loadConfig resolves the configuration for a command.
func loadConfig(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return nil, errors.Wrap(err, "binding flags")
	}

	if file := v.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "reading config %s", file)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.Wrap(err, "decoding config")
	}
	// Flag defaults do not count as set.
	cfg.toleranceSet = v.IsSet("tolerance")
	cfg.ruleSet = v.IsSet("rule") && cfg.Rule != ""
	return cfg, nil
}

func (c *Config) rule() (simplex.Rule, error) {
	switch strings.ToLower(c.Rule) {
	case "", "legacy":
		return simplex.LegacyRule, nil
	case "standard":
		return simplex.StandardRule, nil
	}
	return 0, errors.Errorf("unknown rule %q", c.Rule)
}

// tolerance picks the tolerance for p and reports whether it is the default.
func (c *Config) tolerance(p *instance.Problem) (float64, bool) {
	switch {
	case c.toleranceSet:
		return c.Tolerance, false
	case p.Tolerance != nil:
		return *p.Tolerance, false
	}
	return simplex.DefaultTolerance, true
}

func (c *Config) configureLogging(log *logrus.Logger) error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return errors.Wrap(err, "log level")
	}
	log.SetLevel(level)

	switch c.LogFormat {
	case "", "text":
		log.SetFormatter(&logrus.TextFormatter{})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return errors.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}
