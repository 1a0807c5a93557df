package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"productimage/internal/imagegen"
	"productimage/internal/infra"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

type (
	cmd struct {
		Version  struct{}    `cmd:"" help:"Show version."`
		Generate cmdGenerate `cmd:"" help:"Generate one product image with the configured Azure deployment and print its URL."`
		Prompt   cmdPrompt   `cmd:"" help:"Print the prompt that would be sent to the image model."`
	}
	productFlags struct {
		Name        string   `help:"Product name."`
		Description []string `help:"Description segment. Repeat the flag for several segments." sep:"none"`
		File        string   `help:"Read the product as JSON ({\"name\":..., \"description\":[...]}) from this file instead of flags." type:"existingfile"`
	}
	cmdGenerate struct {
		productFlags `embed:""`
		Timeout time.Duration `help:"Client timeout for the provider call." default:"60s"`
	}
	cmdPrompt struct {
		productFlags `embed:""`
	}
)

type generateFn func(ctx context.Context, req imagegen.ProductRequest, timeout time.Duration) (imagegen.Result, error)

func main() {
	_ = godotenv.Load(".env", ".env.local")
	doMain(os.Stdout, os.Stderr, os.Args[1:], envGenerator(os.Stderr))
}

func doMain(stdout, stderr io.Writer, args []string, gf generateFn) {
	var c cmd
	parser, err := kong.New(&c,
		kong.Name("imagegen"),
		kong.Description("Product image generation CLI"),
		kong.Writers(stdout, stderr),
	)
	if err != nil {
		log.Fatalf("Error creating parser: %v", err)
	}
	ctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)
	switch ctx.Command() {
	case "version":
		_, _ = fmt.Fprintf(stdout, "imagegen: %s\n", version)
	case "prompt":
		req, err := c.Prompt.product()
		parser.FatalIfErrorf(err)
		_, _ = fmt.Fprintln(stdout, imagegen.BuildProductPrompt(req))
	case "generate":
		req, err := c.Generate.product()
		parser.FatalIfErrorf(err)
		res, err := gf(context.Background(), req, c.Generate.Timeout)
		parser.FatalIfErrorf(err)
		_, _ = fmt.Fprintln(stdout, res.ImageURL)
	default:
		panic("unreachable")
	}
}

func (f productFlags) product() (imagegen.ProductRequest, error) {
	if f.File != "" {
		file, err := os.Open(f.File)
		if err != nil {
			return imagegen.ProductRequest{}, err
		}
		defer file.Close()
		return imagegen.ParseProductRequest(file)
	}
	if f.Name == "" {
		return imagegen.ProductRequest{}, fmt.Errorf("--name or --file is required")
	}
	description := f.Description
	if description == nil {
		description = []string{}
	}
	return imagegen.ProductRequest{Name: f.Name, Description: description}, nil
}

// envGenerator builds the provider client from the environment and logs to
// logOut, keeping stdout for the image URL.
func envGenerator(logOut io.Writer) generateFn {
	return func(ctx context.Context, req imagegen.ProductRequest, timeout time.Duration) (imagegen.Result, error) {
		cfg, err := infra.LoadConfig()
		if err != nil {
			return imagegen.Result{}, err
		}
		logger := infra.NewLoggerTo(cfg.AppEnv, logOut)
		client := imagegen.NewAzureDalleClient(imagegen.AzureOptions{Config: cfg.Provider, Timeout: timeout})
		return client.Generate(logger.WithContext(ctx), req)
	}
}
