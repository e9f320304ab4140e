package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/formkit/pkg/config"
	"github.com/dmitrymomot/formkit/pkg/fields"
	"github.com/dmitrymomot/formkit/pkg/form"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// ErrInvalidRecords is returned with --fail-on-invalid when any record is rejected.
var ErrInvalidRecords = errors.New("one or more records failed validation")

type appConfig struct {
	Env       string `env:"FORMKIT_ENV" envDefault:"development"`
	LogFormat string `env:"FORMKIT_LOG_FORMAT"`
}

type options struct {
	input         string
	format        string
	envFiles      []string
	failOnInvalid bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "formcheck",
		Short:         "Validate raw form records",
		Long:          `Reads records with name, email and age fields and reports which of them pass validation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := run(cmd, opts)
			if err != nil && !errors.Is(err, ErrInvalidRecords) {
				fmt.Fprintln(cmd.ErrOrStderr(), "formcheck:", err)
			}
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "-", "input file, - for stdin")
	flags.StringVarP(&opts.format, "format", "f", string(formatJSONL), "input format: jsonl or yaml")
	flags.StringSliceVar(&opts.envFiles, "env-file", nil, ".env files to load before reading configuration")
	flags.BoolVar(&opts.failOnInvalid, "fail-on-invalid", false, "exit with an error if any record is rejected")

	return cmd
}

func run(cmd *cobra.Command, opts *options) error {
	if len(opts.envFiles) > 0 {
		if err := config.LoadEnv(opts.envFiles...); err != nil {
			return err
		}
	}

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}
	log, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	limits, err := fields.LoadLimits()
	if err != nil {
		log.Error("invalid field limits", logger.Error(err))
		return err
	}

	format, err := parseInputFormat(opts.format)
	if err != nil {
		return err
	}

	in, closeInput, err := openInput(cmd.InOrStdin(), opts.input)
	if err != nil {
		return err
	}
	defer closeInput()

	records, err := readRecords(in, format)
	if err != nil {
		log.Error("failed to read records", logger.Source(opts.input), logger.Error(err))
		return err
	}

	summary, err := validateAll(cmd.OutOrStdout(), log, form.New(form.WithLimits(limits)), records)
	if err != nil {
		return err
	}
	log.Info("records validated",
		logger.Source(opts.input),
		logger.Count("accepted", summary.accepted),
		logger.Count("rejected", summary.rejected),
	)

	if opts.failOnInvalid && summary.rejected > 0 {
		return ErrInvalidRecords
	}
	return nil
}

func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "formcheck"),
		logger.WithOutput(w),
	}
	if cfg.LogFormat != "" {
		f, err := logger.ParseFormat(cfg.LogFormat)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithFormat(f))
	}
	return logger.New(opts...), nil
}

func openInput(stdin io.Reader, path string) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
