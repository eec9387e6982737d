// Package main is the fsync CLI command itself.
package main

import (
	"context"
	"os"

	"github.com/edaniels/golog"
	"go.viam.com/utils"

	"github.com/fsync3d/fsync/cli"
)

var logger = golog.NewDevelopmentLogger("fsync")

func main() {
	utils.ContextualMain(mainWithArgs, logger)
}

func mainWithArgs(ctx context.Context, args []string, _ golog.Logger) error {
	return cli.NewApp(os.Stdout, os.Stderr).RunContext(ctx, args)
}
