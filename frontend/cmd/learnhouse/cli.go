package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/jessevdk/go-flags"

	"github.com/learnhouse-dev/learnhouse/frontend/internal/apiclient"
	"github.com/learnhouse-dev/learnhouse/frontend/internal/notify"
	"github.com/learnhouse-dev/learnhouse/shared/config"
	"github.com/learnhouse-dev/learnhouse/shared/logger"
)

// Options is the root command. Struct tags are read by go-flags.
type Options struct {
	Config  string `short:"c" long:"config" description:"folder with public.yaml and private.yaml"`
	APIURL  string `long:"api-url" env:"LEARNHOUSE_API_URL" description:"backend base url, e.g. http://localhost:1338/api/v1/"`
	Token   string `short:"t" long:"token" env:"LEARNHOUSE_TOKEN" description:"access token sent as bearer"`
	Verbose bool   `short:"v" long:"verbose" description:"debug logging"`

	DeleteCollection DeleteCollectionCmd `command:"delete-collection" description:"Delete a collection"`
	CreateCollection CreateCollectionCmd `command:"create-collection" description:"Create a collection"`
	GetCollection    GetCollectionCmd    `command:"get-collection" description:"Show a collection"`
	OrgCollections   OrgCollectionsCmd   `command:"org-collections" description:"List the first page of an organization's collections"`
	UpdatePassword   UpdatePasswordCmd   `command:"update-password" description:"Change a user's password"`
}

// errReported means the failure has already been shown as a notification.
var errReported = errors.New("request failed")

type app struct {
	ctx    context.Context
	opts   Options
	stdout io.Writer
	stderr io.Writer
}

func newApp(ctx context.Context, stdout, stderr io.Writer) *app {
	a := &app{ctx: ctx, stdout: stdout, stderr: stderr}
	a.opts.DeleteCollection.app = a
	a.opts.CreateCollection.app = a
	a.opts.GetCollection.app = a
	a.opts.OrgCollections.app = a
	a.opts.UpdatePassword.app = a
	return a
}

// run parses args, executes the selected command and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := newApp(ctx, stdout, stderr)

	parser := flags.NewParser(&a.opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "learnhouse"
	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(stdout, err)
			return 0
		}
		if !errors.Is(err, errReported) {
			fmt.Fprintln(stderr, "error:", err)
		}
		return 1
	}
	return 0
}

// client loads the config and builds an api client reporting to stderr.
func (a *app) client() (*apiclient.APIClient, error) {
	cfg, err := config.Load(a.opts.Config, a.opts.APIURL)
	if err != nil {
		return nil, err
	}

	level := cfg.Public.Log.Level
	if a.opts.Verbose {
		level = "debug"
	}
	logger.InitializeTo(a.stderr, level, cfg.Public.Log.JSON)

	client := apiclient.New(cfg.Public.API.BaseURL, cfg.Public.API.Timeout)
	return client.WithNotifier(notify.NewWriter(a.stderr)), nil
}

func (a *app) print(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.stdout, string(out))
	return err
}

// printMutation prints the result of a mutating call; nil means it failed.
func (a *app) printMutation(result json.RawMessage) error {
	if result == nil {
		return errReported
	}
	return a.print(result)
}
