package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/stwalsh4118/phx/internal/cli"
	"github.com/stwalsh4118/phx/internal/emitters/wufi"
	phxerrors "github.com/stwalsh4118/phx/internal/errors"
)

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
		Use:          "hbjson_to_wufi <in_path> <out_path>",
		Short:        "Convert a Honeybee model to a WUFI-Passive XML project",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args[0], args[1])
		},
	}
	cli.AddFlags(cmd)
	return cmd
}

func run(cmd *cobra.Command, inPath, outPath string) error {
	env, err := cli.Setup(cmd)
	if err != nil {
		return err
	}

	proj, err := env.Convert(cmd.Context(), inPath)
	if err != nil {
		return err
	}

	if err := wufi.WriteFile(outPath, proj); err != nil {
		env.Log.Error("Failed to write WUFI XML", err, map[string]interface{}{
			"path": outPath,
			"code": phxerrors.Code(err),
		})
		return err
	}

	env.Log.Info("WUFI XML written", map[string]interface{}{
		"path":     outPath,
		"variants": len(proj.Variants),
	})
	return nil
}
