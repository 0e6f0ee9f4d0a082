package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-signup/pkg/config"
	"github.com/goliatone/go-signup/pkg/openapi"
	"github.com/goliatone/go-signup/pkg/orchestrator"
	"github.com/goliatone/go-signup/pkg/render"
	"github.com/goliatone/go-signup/pkg/renderers/tui"
	"github.com/goliatone/go-signup/pkg/renderers/vanilla"
)

func main() {
	configPath := flag.String("config", "", "sign-up configuration YAML path")
	schemaPath := flag.String("schema", "", "OpenAPI document supplying custom fields")
	schemaName := flag.String("schema-name", "User", "component schema holding the sign-up attributes")
	rendererName := flag.String("renderer", "vanilla", "renderer to use (vanilla, tui)")
	output := flag.String("output", "", "output file (stdout if empty)")
	dryRun := flag.Bool("dry-run", false, "with -renderer tui: collect input interactively and print the signup request")
	flag.Parse()

	ctx := context.Background()

	cfg, err := loadConfig(ctx, *configPath, *schemaPath, *schemaName)
	if err != nil {
		log.Fatalf("configuration: %v", err)
	}

	gen := orchestrator.New(orchestrator.WithConfig(cfg))
	form := render.Form{
		Header:          gen.Header(),
		Fields:          gen.Fields(),
		DefaultDialCode: gen.DialCode(),
	}

	if *dryRun {
		if err := runDryRun(ctx, gen, cfg, form); err != nil {
			log.Fatalf("dry run: %v", err)
		}
		return
	}

	registry := render.NewRegistry()
	htmlRenderer, err := vanilla.New()
	if err != nil {
		log.Fatalf("vanilla renderer: %v", err)
	}
	registry.MustRegister(htmlRenderer)
	promptRenderer, err := tui.New()
	if err != nil {
		log.Fatalf("tui renderer: %v", err)
	}
	registry.MustRegister(promptRenderer)

	renderer, err := registry.Get(*rendererName)
	if err != nil {
		log.Fatalf("renderer: %v", err)
	}

	rendered, err := renderer.Render(ctx, form, render.RenderOptions{})
	if err != nil {
		log.Fatalf("render: %v", err)
	}

	if *output != "" {
		if err := os.WriteFile(*output, rendered, 0o644); err != nil {
			log.Fatalf("write output: %v", err)
		}
		fmt.Printf("Form written to %s\n", *output)
		return
	}
	fmt.Println(string(rendered))
}

func loadConfig(ctx context.Context, configPath, schemaPath, schemaName string) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if schemaPath != "" {
		doc, err := openapi.LoadFile(ctx, schemaPath)
		if err != nil {
			return config.Config{}, err
		}
		fields, err := openapi.Fields(doc, schemaName)
		if err != nil {
			return config.Config{}, err
		}
		cfg.SignUpFields = append(cfg.SignUpFields, fields...)
	}

	return cfg, nil
}

// runDryRun collects input interactively and prints the signup request that
// Submit would hand to the authentication client, without any external call.
func runDryRun(ctx context.Context, gen *orchestrator.Orchestrator, cfg config.Config, form render.Form) error {
	collector, err := tui.New()
	if err != nil {
		return err
	}

	values, number, err := collector.Collect(ctx, form, render.RenderOptions{})
	if err != nil {
		return err
	}

	in := orchestrator.Input{Values: values, Phone: number}
	if result := gen.Validate(in); !result.Valid {
		return fmt.Errorf("%s", result.Message())
	}

	req, err := orchestrator.BuildRequest(form.Fields, values, number, gen.UsernameLabel(), cfg.Strategy(), nil)
	if err != nil {
		return err
	}

	payload, err := json.MarshalIndent(req, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(payload))
	return nil
}
