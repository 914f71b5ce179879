package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvlath-persistence/barcode"
	"github.com/katalvlaran/lvlath-persistence/cloud"
	"github.com/katalvlaran/lvlath-persistence/rips"
	"github.com/katalvlaran/lvlath-persistence/samples"
	"github.com/katalvlaran/lvlath-persistence/simplicial"
	"github.com/katalvlaran/lvlath-persistence/store"
)

// ErrNoDB indicates a store command without -db.
var ErrNoDB = errors.New("ripsbar: -db is required")

// scan loads the cloud, runs the filtration, stores and writes the result.
func scan(ctx context.Context, cfg Config, log zerolog.Logger, stdout io.Writer) error {
	c, source, err := loadCloud(cfg)
	if err != nil {
		return err
	}
	ring, err := simplicial.ParseRing(cfg.Ring)
	if err != nil {
		return err
	}
	log.Info().Str("source", source).Int("points", c.Len()).Int("dim", c.Dim()).Msg("cloud loaded")

	b, err := rips.New(c,
		rips.WithContext(ctx),
		rips.WithDegrees(cfg.Degrees),
		rips.WithLogger(log),
		rips.WithParallelHomology(cfg.Parallel),
		rips.WithIncrementalNeighbors(cfg.Incremental),
	)
	if err != nil {
		return err
	}
	records, err := b.Analyze(ring, cfg.End, cfg.Step)
	if err != nil {
		return err
	}

	doc := barcode.Document{
		Ring:    ring.String(),
		End:     cfg.End,
		Step:    cfg.Step,
		Degrees: cfg.Degrees,
		Points:  c.Len(),
		Dim:     c.Dim(),
		Records: records,
	}
	if cfg.DBPath != "" {
		st, err := store.Open(ctx, cfg.DBPath)
		if err != nil {
			return err
		}
		defer st.Close()
		if doc.RunID, err = st.SaveRun(ctx, store.Run{Document: doc, Source: source}); err != nil {
			return err
		}
		log.Info().Str("run_id", doc.RunID).Str("db", cfg.DBPath).Msg("run stored")
	}

	return emit(cfg, doc, stdout)
}

// loadCloud reads -input by extension or builds the -sample cloud.
func loadCloud(cfg Config) (*cloud.Cloud, string, error) {
	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, "", errors.Wrap(err, "ripsbar: open input")
		}
		defer f.Close()
		var c *cloud.Cloud
		if strings.EqualFold(filepath.Ext(cfg.Input), ".json") {
			c, err = cloud.ReadJSON(f)
		} else {
			c, err = cloud.ReadCSV(f)
		}
		if err != nil {
			return nil, "", errors.Wrapf(err, "ripsbar: %s", cfg.Input)
		}
		return c, cfg.Input, nil
	}

	gen, err := sampleGenerator(cfg.Sample, cfg.SamplePoints)
	if err != nil {
		return nil, "", err
	}
	opts := []samples.Option{samples.WithSeed(cfg.Seed)}
	if cfg.Noise > 0 {
		opts = append(opts, samples.WithNoise(cfg.Noise))
	}
	c, err := samples.Build(gen, opts...)
	if err != nil {
		return nil, "", err
	}

	return c, "sample:" + strings.ToLower(cfg.Sample), nil
}

func sampleGenerator(name string, n int) (samples.Generator, error) {
	switch strings.ToLower(name) {
	case "circle":
		return samples.Circle(n, 1), nil
	case "grid":
		return samples.Grid(n, n, 1), nil
	case "sphere":
		return samples.Sphere(n), nil
	case "torus":
		return samples.Torus(n, n, 2, 1), nil
	case "uniform2":
		return samples.Uniform(n, 2), nil
	case "uniform3":
		return samples.Uniform(n, 3), nil
	}
	if name == "" {
		return nil, ErrInvalidSample
	}
	p, err := samples.ParsePlatonic(strings.ToUpper(name[:1]) + strings.ToLower(name[1:]))
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidSample, "%q", name)
	}

	return samples.Platonic(p), nil
}

// emit writes doc to -out (or stdout) in the chosen format.
func emit(cfg Config, doc barcode.Document, stdout io.Writer) (err error) {
	w := stdout
	if cfg.Out != "" {
		f, cerr := os.Create(cfg.Out)
		if cerr != nil {
			return errors.Wrap(cerr, "ripsbar: create output")
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	switch strings.ToLower(cfg.Format) {
	case "json":
		return barcode.WriteJSON(w, doc)
	case "parquet":
		return barcode.WriteParquet(w, doc.Records)
	case "table", "":
		if doc.RunID != "" {
			fmt.Fprintf(w, "run %s\n", doc.RunID)
		}
		return barcode.WriteTable(w, doc.Records)
	default:
		return ErrInvalidFormat
	}
}

func listRuns(ctx context.Context, cfg Config, stdout io.Writer) error {
	if cfg.DBPath == "" {
		return ErrNoDB
	}
	st, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	runs, err := st.ListRuns(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCREATED\tSOURCE\tRING\tPOINTS\tEND\tSTEP")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%g\t%g\n",
			r.RunID, r.CreatedAt.Format(time.RFC3339), r.Source, r.Ring, r.Points, r.End, r.Step)
	}

	return tw.Flush()
}

func showRun(ctx context.Context, cfg Config, id string, stdout io.Writer) error {
	if cfg.DBPath == "" {
		return ErrNoDB
	}
	st, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	run, err := st.LoadRun(ctx, id)
	if err != nil {
		return err
	}
	if strings.EqualFold(cfg.Format, "parquet") && cfg.Out == "" {
		return ErrParquetStdout
	}

	return emit(cfg, run.Document, stdout)
}

// withMetrics runs fn while serving /metrics on addr. A listen failure
// cancels fn; fn returning shuts the server down.
func withMetrics(ctx context.Context, addr string, log zerolog.Logger, fn func(context.Context) error) error {
	if addr == "" {
		return fn(ctx)
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", addr).Msg("serving metrics")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "ripsbar: metrics server")
		}
		return nil
	})
	g.Go(func() error {
		err := fn(gctx)
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutCtx)
		return err
	})

	return g.Wait()
}
