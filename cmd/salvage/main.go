package main

import (
	"bufio"
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/starline-salvage/starline/internal/api"
	"github.com/starline-salvage/starline/internal/config"
	"github.com/starline-salvage/starline/internal/ui"
	"golang.org/x/term"
)

func main() {
	cfg := config.Load()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	client := api.NewClient(cfg.APIBaseURL, http.DefaultClient)
	reader := bufio.NewReader(os.Stdin)
	if err := ui.Run(context.Background(), client, reader, os.Stdout); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "client error: %v\n", err)
		os.Exit(1)
	}
}
