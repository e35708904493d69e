package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/persistorai/trustgraph/internal/api"
	"github.com/persistorai/trustgraph/internal/config"
	"github.com/persistorai/trustgraph/internal/ingest"
	"github.com/persistorai/trustgraph/internal/service"
)

// loadConfig reads file and env settings, then applies any flags the user set.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Read(flagConfig)
	if err != nil {
		return nil, err
	}

	f := cmd.Flags()
	if f.Changed("log-level") {
		cfg.LogLevel = flagLogLevel
	}
	if f.Changed("log-format") {
		cfg.LogFormat = flagLogFormat
	}
	if f.Changed("http-addr") {
		cfg.HTTPAddr = flagHTTPAddr
	}
	if f.Changed("false-positive-rate") {
		cfg.FalsePositiveRate = flagFPRate
	}
	if f.Changed("max-hops") {
		cfg.MaxHops = flagMaxHops
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func newLogger(cfg *config.Config, out io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}

// pipelineFiles holds the five resources of one run, all opened up front so a
// bad path fails before any graph work starts.
type pipelineFiles struct {
	batch, stream io.ReadCloser
	outputs       [3]io.WriteCloser
}

func openPipeline(args []string) (*pipelineFiles, error) {
	p := &pipelineFiles{}

	var err error
	if p.batch, err = ingest.Open(args[argBatch]); err != nil {
		return nil, fmt.Errorf("opening batch input %q: %w", args[argBatch], err)
	}

	if p.stream, err = ingest.Open(args[argStream]); err != nil {
		p.close()
		return nil, fmt.Errorf("opening stream input %q: %w", args[argStream], err)
	}

	for i := range p.outputs {
		path := args[argFeature1+i]
		if p.outputs[i], err = ingest.Create(path); err != nil {
			p.close()
			return nil, fmt.Errorf("opening feature%d output %q: %w", i+1, path, err)
		}
	}

	return p, nil
}

// close releases every open resource. Output close errors are returned since
// they may hide lost writes.
func (p *pipelineFiles) close() error {
	var errs []error

	if p.batch != nil {
		p.batch.Close() //nolint:errcheck // read side.
	}
	if p.stream != nil {
		p.stream.Close() //nolint:errcheck // read side.
	}

	for i, w := range p.outputs {
		if w == nil {
			continue
		}
		if err := w.Close(); err != nil {
			errs = append(errs, fmt.Errorf("closing feature%d output: %w", i+1, err))
		}
	}

	return errors.Join(errs...)
}

func runPipeline(cmd *cobra.Command, args []string) (err error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log := newLogger(cfg, cmd.ErrOrStderr())

	files, err := openPipeline(args)
	if err != nil {
		log.WithError(err).Error("cannot open pipeline files")
		return err
	}
	defer func() {
		if cerr := files.close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	svc := service.NewTrustService(service.Options{
		FalsePositiveRate: cfg.FalsePositiveRate,
		MaxHops:           cfg.MaxHops,
	}, log)
	driver := ingest.NewDriver(svc, log)
	sinks := ingest.NewSinks(files.outputs[0], files.outputs[1], files.outputs[2])

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	g, gctx := errgroup.WithContext(ctx)
	srvCtx, stopServer := context.WithCancel(gctx)
	defer stopServer()

	if cfg.HTTPAddr != "" {
		router := api.NewRouter(&api.RouterDeps{Log: log, Trust: svc, Version: config.Version})
		g.Go(func() error {
			return api.Serve(srvCtx, cfg.HTTPAddr, router, log)
		})
	}

	g.Go(func() error {
		defer stopServer()

		_, runErr := driver.Run(gctx, files.batch, files.stream, sinks)
		return runErr
	})

	if err := g.Wait(); err != nil {
		log.WithError(err).Error("run failed")
		return err
	}

	return nil
}
