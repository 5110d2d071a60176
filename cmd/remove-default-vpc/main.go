package main

import (
	"fmt"
	"os"

	"github.com/diillson/aws-default-vpc-remover/internal/adapter/driven/aws"
	"github.com/diillson/aws-default-vpc-remover/internal/adapter/driven/config"
	"github.com/diillson/aws-default-vpc-remover/internal/adapter/driven/export"
	"github.com/diillson/aws-default-vpc-remover/internal/adapter/driving/cli"
	"github.com/diillson/aws-default-vpc-remover/internal/shared/types"
	"github.com/diillson/aws-default-vpc-remover/pkg/console"
	"github.com/diillson/aws-default-vpc-remover/pkg/version"
)

func main() {
	app := cli.NewCLIApp(version.Version, cli.Dependencies{
		ConfigRepo:       config.NewConfigRepository(),
		ExportRepo:       export.NewExportRepository(),
		NewAWSRepository: aws.NewAWSRepository,
		NewConsole: func(level types.LogLevel, format string) types.ConsoleInterface {
			return console.NewConsole(level, format)
		},
	})

	if err := app.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
