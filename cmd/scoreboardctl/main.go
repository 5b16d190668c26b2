// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command scoreboardctl queries the scoreboard API from a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/danielhkuo/icpc-scoreboard/client"
)

const (
	defaultURL     = "http://localhost:3000"
	defaultTimeout = 30 * time.Second
)

const usage = `Usage: scoreboardctl [flags] <command> [args]

Commands:
  routes                                  List the route directory
  get [-params P] [-query Q] <label|path> Fetch a route and print it as a table
  edit <label> <data>                     Send a create, update or delete request

Flags:
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("scoreboardctl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}

	var (
		baseURL = fs.String("url", envOr("SCOREBOARD_URL", defaultURL), "Base URL of the API")
		format  = fs.String("format", "auto", "Output format (auto, text, html)")
		timeout = fs.Duration("timeout", defaultTimeout, "HTTP request timeout")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	c := client.New(*baseURL, client.WithTimeout(*timeout))
	render, err := renderer(*format, stdout)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 2
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "routes":
		err = listRoutes(ctx, c, stdout)
	case "get":
		err = get(ctx, c, rest, render, stdout, stderr)
	case "edit":
		err = edit(ctx, c, rest, stdout, stderr)
	default:
		err = fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
	return 0
}

type renderFunc func(io.Writer, any) error

// renderer picks aligned text for terminals and HTML otherwise.
func renderer(format string, out io.Writer) (renderFunc, error) {
	switch format {
	case "text":
		return client.RenderText, nil
	case "html":
		return client.RenderHTML, nil
	case "auto":
		if isTerminal(out) {
			return client.RenderText, nil
		}
		return client.RenderHTML, nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func listRoutes(ctx context.Context, c *client.Client, stdout io.Writer) error {
	routes, err := c.Routes(ctx)
	if err != nil {
		return err
	}
	for _, r := range routes {
		fmt.Fprintf(stdout, "%-28s %s\n", r.Label, r.Value)
	}
	return nil
}

func get(ctx context.Context, c *client.Client, args []string, render renderFunc, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("get", flag.ContinueOnError)
	fs.SetOutput(stderr)
	params := fs.String("params", "", "Comma-separated values for :placeholders")
	query := fs.String("query", "", "Raw query string to append")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("get needs exactly one route label or path")
	}

	template, err := resolve(ctx, c, fs.Arg(0))
	if err != nil {
		return err
	}
	path, err := client.BuildPath(template, *params, *query)
	if err != nil {
		return err
	}

	resp, err := c.Get(ctx, path)
	if err != nil {
		return err
	}

	v, err := resp.Decode()
	if err != nil {
		// Not JSON, e.g. /health
		_, err = stdout.Write(resp.Body)
		return err
	}
	if err := render(stdout, v); err != nil {
		return err
	}

	rows := len(client.Tabulate(v).Rows)
	fmt.Fprintf(stderr, "%s %s, %s\n", humanize.Comma(int64(rows)), plural(rows, "row", "rows"), humanize.Bytes(uint64(len(resp.Body))))
	return nil
}

// resolve turns a directory label into its template. Paths pass through.
func resolve(ctx context.Context, c *client.Client, arg string) (string, error) {
	if strings.HasPrefix(arg, "/") {
		return arg, nil
	}
	routes, err := c.Routes(ctx)
	if err != nil {
		return "", err
	}
	for _, r := range routes {
		if strings.EqualFold(r.Label, arg) {
			return r.Value, nil
		}
	}
	return "", fmt.Errorf("no route labelled %q", arg)
}

func edit(ctx context.Context, c *client.Client, args []string, stdout, stderr io.Writer) error {
	if len(args) != 2 {
		return errors.New("edit needs a route label and the request data")
	}
	route, ok := client.FindEditRoute(args[0])
	if !ok {
		labels := make([]string, len(client.EditRoutes))
		for i, r := range client.EditRoutes {
			labels[i] = r.Label
		}
		return fmt.Errorf("no edit route labelled %q (one of: %s)", args[0], strings.Join(labels, ", "))
	}

	resp, err := c.Edit(ctx, route, args[1])
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, resp.StatusCode)
	if len(resp.Body) > 0 {
		stdout.Write(resp.Body)
	}
	fmt.Fprintf(stderr, "%s received, request %s\n", humanize.Bytes(uint64(len(resp.Body))), resp.RequestID)
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
