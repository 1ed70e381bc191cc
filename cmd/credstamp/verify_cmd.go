package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"credstamp/internal/config"
	"credstamp/internal/infra/toolkit"
	"credstamp/internal/usecase"
)

type verifyOutput struct {
	State   string `json:"state"`
	Summary any    `json:"summary,omitempty"`
	Error   string `json:"error,omitempty"`
}

func runVerify(args []string) int {
	fs := flag.NewFlagSet("verify", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	var inPath string
	var outPath string
	var toolkitBin string
	var toolkitURL string

	fs.StringVar(&inPath, "in", "", "image path")
	fs.StringVar(&outPath, "out", "", "output path (default stdout)")
	fs.StringVar(&toolkitBin, "toolkit-bin", "", "trust toolkit binary path")
	fs.StringVar(&toolkitURL, "toolkit-url", "", "trust toolkit service url")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if inPath == "" {
		fmt.Fprintln(os.Stderr, "verify requires --in")
		return 1
	}
	if toolkitBin == "" && toolkitURL == "" {
		fmt.Fprintln(os.Stderr, "verify requires --toolkit-bin or --toolkit-url")
		return 1
	}

	data, err := os.ReadFile(inPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read asset: %v\n", err)
		return 1
	}

	cfg := config.FromEnv()
	cfg.ToolkitBin = toolkitBin
	cfg.ToolkitURL = toolkitURL

	var tk usecase.TrustToolkit
	if toolkitURL != "" {
		tk, err = toolkit.NewRemoteAdapterFromConfig(cfg)
	} else {
		tk, err = toolkit.NewExecAdapterFromConfig(cfg)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "init toolkit: %v\n", err)
		return 1
	}

	uc := &usecase.VerifyAsset{Toolkit: tk}
	outcome := uc.Execute(context.Background(), usecase.Asset{
		Name: inPath,
		Data: data,
	})

	output := verifyOutput{
		State: string(outcome.State),
		Error: outcome.Error,
	}
	if outcome.Summary != nil {
		output.Summary = outcome.Summary
	}
	payload, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode output: %v\n", err)
		return 1
	}
	if err := writeOutput(outPath, payload); err != nil {
		fmt.Fprintf(os.Stderr, "write output: %v\n", err)
		return 1
	}
	return 0
}
