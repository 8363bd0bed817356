package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	weaviate "github.com/kailas-cloud/weaviate-go"
	"github.com/kailas-cloud/weaviate-go/internal/config"
	logpkg "github.com/kailas-cloud/weaviate-go/internal/logger"
	"github.com/kailas-cloud/weaviate-go/internal/version"
)

const usage = `wvq - Weaviate query tool

Usage:
  wvq meta             print instance build and module info
  wvq schema           print the full class schema
  wvq nodes            print cluster node status
  wvq live             check the liveness probe
  wvq ready            check the readiness probe
  wvq query <doc|->    dispatch a raw GraphQL document (argument or stdin)

Configuration is read from wvq.yaml ($WVQ_CONFIG overrides the path).`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	logger, err := logpkg.NewLogger(cfg.Environment, cfg.Logging.Level)
	if err != nil {
		panic("failed to create logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("Starting wvq",
		zap.String("version", version.Version),
		zap.String("commit", version.Commit),
		zap.String("base_url", cfg.BaseURL),
	)

	client, err := weaviate.New(cfg.BaseURL,
		weaviate.WithAPIKey(cfg.APIKey),
		weaviate.WithTimeout(cfg.Timeout()),
		weaviate.WithUserAgent("wvq/"+version.Version),
	)
	if err != nil {
		logger.Fatal("Failed to create client", zap.Error(err))
	}

	ctx := context.Background()
	if err := run(ctx, client, os.Args[1], os.Args[2:]); err != nil {
		logger.Fatal("Command failed",
			zap.String("command", os.Args[1]),
			zap.Error(err),
		)
	}
}

func run(ctx context.Context, client *weaviate.Client, cmd string, args []string) error {
	switch cmd {
	case "meta":
		meta, err := client.Meta(ctx)
		if err != nil {
			return err
		}
		return printJSON(meta)
	case "schema":
		schema, err := client.Schema().Get(ctx)
		if err != nil {
			return err
		}
		return printJSON(schema)
	case "nodes":
		status, err := client.Nodes().Status(ctx)
		if err != nil {
			return err
		}
		return printJSON(status)
	case "live":
		return probe(ctx, "live", client.Live)
	case "ready":
		return probe(ctx, "ready", client.Ready)
	case "query":
		return query(ctx, client, args)
	default:
		fmt.Fprintln(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func probe(ctx context.Context, name string, check func(context.Context) (bool, error)) error {
	ok, err := check(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("instance is not %s", name)
	}
	fmt.Println("true")
	return nil
}

func query(ctx context.Context, client *weaviate.Client, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("query takes exactly one argument: the document, or - for stdin")
	}

	doc := args[0]
	if doc == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		doc = string(raw)
	}

	res, err := client.GraphQL().Raw(ctx, doc)
	if err != nil {
		return err
	}
	return printJSON(res)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
