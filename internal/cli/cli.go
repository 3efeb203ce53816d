// Package cli holds the setup shared by the converter commands.
package cli

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/cheggaaa/pb.v1"

	"github.com/stwalsh4118/phx/internal/config"
	"github.com/stwalsh4118/phx/internal/logger"
	"github.com/stwalsh4118/phx/internal/models/project"
	"github.com/stwalsh4118/phx/internal/repository"
	"github.com/stwalsh4118/phx/internal/services"
)

const (
	configFlag   = "config"
	progressFlag = "progress"
)

// AddFlags registers the config overrides plus --config and --progress on cmd.
func AddFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	config.RegisterFlags(flags)
	flags.String(configFlag, "", "YAML config file")
	flags.Bool(progressFlag, false, "show a progress bar while converting")
}

// Env is what a command needs after its flags are parsed.
type Env struct {
	Config   *config.Config
	Log      *logger.Logger
	Progress bool
	// Err receives the progress bar. Defaults to os.Stderr.
	Err io.Writer
}

// Setup loads the configuration for cmd and builds its logger.
func Setup(cmd *cobra.Command) (*Env, error) {
	flags := cmd.Flags()
	path, err := flags.GetString(configFlag)
	if err != nil {
		return nil, err
	}
	progress, err := flags.GetBool(progressFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(flags, path)
	if err != nil {
		return nil, err
	}

	errOut := cmd.ErrOrStderr()
	log := logger.NewWithOptions(logger.Options{
		Env:   cfg.Log.Env,
		Level: cfg.Log.Level,
		Out:   errOut,
	})
	return &Env{Config: cfg, Log: log, Progress: progress, Err: errOut}, nil
}

// Convert runs the assembly pipeline over the source model at path.
func (e *Env) Convert(ctx context.Context, path string) (*project.Project, error) {
	opts := services.Options{
		GroupComponents: e.Config.Build.GroupComponents,
		WeldVertices:    e.Config.Build.WeldVertices,
		TargetHours:     e.Config.Schedules.TargetHours,
	}

	var bar *Bar
	if e.Progress {
		bar = NewBar(e.Err)
		opts.Progress = bar.Update
		defer bar.Finish()
	}

	svc := services.NewConversionService(repository.NewModelRepository(), e.Log, opts)
	return svc.ConvertFile(ctx, path)
}

// Bar is a segment progress bar that starts on its first update, once the
// total is known.
type Bar struct {
	out io.Writer
	bar *pb.ProgressBar
}

// NewBar returns a Bar writing to out, or to os.Stderr when out is nil.
func NewBar(out io.Writer) *Bar {
	if out == nil {
		out = os.Stderr
	}
	return &Bar{out: out}
}

// Update records done of total segments.
func (b *Bar) Update(done, total int) {
	if b.bar == nil {
		b.bar = pb.New(total).Prefix("segments ")
		b.bar.Output = b.out
		b.bar.ShowTimeLeft = false
		b.bar.Start()
	}
	b.bar.Set(done)
}

// Finish stops the bar. It is a no-op when the bar never started.
func (b *Bar) Finish() {
	if b.bar != nil {
		b.bar.Finish()
	}
}
