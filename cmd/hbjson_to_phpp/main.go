package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stwalsh4118/phx/internal/cli"
	"github.com/stwalsh4118/phx/internal/emitters/phpp"
	phxerrors "github.com/stwalsh4118/phx/internal/errors"
	"github.com/stwalsh4118/phx/internal/repository"
)

var errNoWorkbook = errors.New("a PHPP workbook is required: pass --workbook or set phpp.workbook")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "hbjson_to_phpp <in_path> <shape_path>",
		Short:        "Write a Honeybee model into an open PHPP workbook",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], args[1])
		},
	}
	cli.AddFlags(cmd)
	return cmd
}

func run(cmd *cobra.Command, inPath, shapePath string) error {
	env, err := cli.Setup(cmd)
	if err != nil {
		return err
	}
	cfg := env.Config.PHPP
	if cfg.Workbook == "" {
		return errNoWorkbook
	}

	ctx := cmd.Context()
	shape, err := repository.NewShapeRepository().Load(ctx, shapePath)
	if err != nil {
		return err
	}

	proj, err := env.Convert(ctx, inPath)
	if err != nil {
		return err
	}

	f, err := phpp.Open(cfg.Workbook)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := phpp.NewWriter(f, shape, env.Log).Write(ctx, proj); err != nil {
		env.Log.Error("Failed to write PHPP workbook", err, map[string]interface{}{
			"workbook": cfg.Workbook,
			"code":     phxerrors.Code(err),
		})
		return err
	}
	if err := phpp.Save(f, cfg.SaveAs); err != nil {
		return err
	}

	out := cfg.SaveAs
	if out == "" {
		out = cfg.Workbook
	}
	env.Log.Info("PHPP workbook written", map[string]interface{}{
		"path":     out,
		"variants": len(proj.Variants),
	})
	return nil
}
