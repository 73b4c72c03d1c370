package main

import (
	"fmt"
	"os"

	"github.com/jwalitptl/passcheck/internal/cli"
	strengthService "github.com/jwalitptl/passcheck/internal/service/strength"
	apperrors "github.com/jwalitptl/passcheck/pkg/errors"
	"github.com/jwalitptl/passcheck/pkg/generator"
)

func main() {
	svc := strengthService.NewService(generator.New())
	if err := cli.NewRootCommand(svc, nil).Execute(); err != nil {
		if appErr, ok := apperrors.As(err); ok {
			fmt.Fprintln(os.Stderr, appErr.Message)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
