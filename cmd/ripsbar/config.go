package main

import (
	"flag"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/katalvlaran/lvlath-persistence/simplicial"
)

// envPrefix namespaces environment variables (RIPSBAR_STEP, ...).
const envPrefix = "RIPSBAR"

// Config validation errors
var (
	ErrNoSource       = errors.New("ripsbar: one of -input or -sample is required")
	ErrTwoSources     = errors.New("ripsbar: -input and -sample are mutually exclusive")
	ErrInvalidStep    = errors.New("ripsbar: step must be positive")
	ErrInvalidEnd     = errors.New("ripsbar: end must be non-negative")
	ErrInvalidDegrees = errors.New("ripsbar: degrees must be >= 1")
	ErrInvalidFormat  = errors.New("ripsbar: format must be table, json or parquet")
	ErrParquetStdout  = errors.New("ripsbar: parquet output needs -out")
	ErrInvalidSample  = errors.New("ripsbar: unknown sample")
	ErrInvalidPoints  = errors.New("ripsbar: sample-points must be positive")
)

// Config is populated from the environment (and an optional .env file)
// first, then overridden by command-line flags.
type Config struct {
	Input        string        `envconfig:"INPUT"`
	Sample       string        `envconfig:"SAMPLE"`
	SamplePoints int           `envconfig:"SAMPLE_POINTS" default:"12"`
	Seed         int64         `envconfig:"SEED" default:"1"`
	Noise        float64       `envconfig:"NOISE" default:"0"`
	Ring         string        `envconfig:"RING" default:"Z"`
	End          float64       `envconfig:"END" default:"2"`
	Step         float64       `envconfig:"STEP" default:"0.25"`
	Degrees      int           `envconfig:"DEGREES" default:"3"`
	Parallel     bool          `envconfig:"PARALLEL" default:"false"`
	Incremental  bool          `envconfig:"INCREMENTAL" default:"false"`
	Format       string        `envconfig:"FORMAT" default:"table"`
	Out          string        `envconfig:"OUT"`
	DBPath       string        `envconfig:"DB_PATH"`
	MetricsAddr  string        `envconfig:"METRICS_ADDR"`
	Timeout      time.Duration `envconfig:"TIMEOUT" default:"0s"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat    string        `envconfig:"LOG_FORMAT" default:"console"`
}

// LoadConfig reads envFile (missing is fine), the RIPSBAR_* environment and
// then args. It returns the positional arguments left after flags.
func LoadConfig(envFile string, args []string, stderr io.Writer) (Config, []string, error) {
	var cfg Config
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, nil, errors.Wrapf(err, "ripsbar: load %s", envFile)
		}
	}
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return cfg, nil, errors.Wrap(err, "ripsbar: environment")
	}

	fset := flag.NewFlagSet("ripsbar", flag.ContinueOnError)
	fset.SetOutput(stderr)
	fset.StringVar(&cfg.Input, "input", cfg.Input, "point cloud file (.csv or .json)")
	fset.StringVar(&cfg.Sample, "sample", cfg.Sample, "synthetic cloud: circle, grid, sphere, torus, uniform2, uniform3 or a Platonic solid")
	fset.IntVar(&cfg.SamplePoints, "sample-points", cfg.SamplePoints, "size parameter of the synthetic cloud")
	fset.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for uniform samples and noise")
	fset.Float64Var(&cfg.Noise, "noise", cfg.Noise, "gaussian jitter added to synthetic samples")
	fset.StringVar(&cfg.Ring, "ring", cfg.Ring, "coefficient ring: Z or R")
	fset.Float64Var(&cfg.End, "end", cfg.End, "last filtration scale")
	fset.Float64Var(&cfg.Step, "step", cfg.Step, "filtration scale increment")
	fset.IntVar(&cfg.Degrees, "degrees", cfg.Degrees, "number of homology degrees tracked")
	fset.BoolVar(&cfg.Parallel, "parallel", cfg.Parallel, "compute homology degrees concurrently")
	fset.BoolVar(&cfg.Incremental, "incremental", cfg.Incremental, "query only the new distance band at each step")
	fset.StringVar(&cfg.Format, "format", cfg.Format, "output format: table, json or parquet")
	fset.StringVar(&cfg.Out, "out", cfg.Out, "output file (default stdout)")
	fset.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database to record runs in")
	fset.StringVar(&cfg.MetricsAddr, "metrics", cfg.MetricsAddr, "serve Prometheus metrics on this address")
	fset.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "abort the scan after this long (0 disables)")
	fset.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fset.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "json or console")
	if err := fset.Parse(args); err != nil {
		return cfg, nil, err
	}

	return cfg, fset.Args(), nil
}

// ValidateConfig checks the options needed by the scan command.
func ValidateConfig(cfg *Config) error {
	switch {
	case cfg.Input == "" && cfg.Sample == "":
		return ErrNoSource
	case cfg.Input != "" && cfg.Sample != "":
		return ErrTwoSources
	case !(cfg.Step > 0):
		return ErrInvalidStep
	case !(cfg.End >= 0):
		return ErrInvalidEnd
	case cfg.Degrees < 1:
		return ErrInvalidDegrees
	case cfg.Sample != "" && cfg.SamplePoints < 1:
		return ErrInvalidPoints
	}
	if _, err := simplicial.ParseRing(cfg.Ring); err != nil {
		return err
	}
	switch strings.ToLower(cfg.Format) {
	case "table", "json":
	case "parquet":
		if cfg.Out == "" {
			return ErrParquetStdout
		}
	default:
		return ErrInvalidFormat
	}

	return nil
}
