package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	importer "github.com/goliatone/go-formbuilder/pkg/importer/openapi"
	"github.com/goliatone/go-formbuilder/pkg/registry"
	"github.com/goliatone/go-formbuilder/pkg/render"
	"github.com/goliatone/go-formbuilder/pkg/renderers/tui"
	"github.com/goliatone/go-formbuilder/pkg/renderers/vanilla"
	"github.com/goliatone/go-formbuilder/pkg/schema"
)

const usage = `usage: formbuilder-cli <command> [flags]

commands:
  new        create an empty form schema for a job
  templates  list the field templates in the catalog
  render     render a schema to HTML
  fill       collect a submission through terminal prompts
  import     bootstrap a schema from an OpenAPI operation
`

func main() {
	log.SetFlags(0)

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "new":
		err = runNew(os.Args[2:])
	case "templates":
		err = runTemplates(os.Args[2:])
	case "render":
		err = runRender(os.Args[2:])
	case "fill":
		err = runFill(os.Args[2:])
	case "import":
		err = runImport(os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("formbuilder-cli: %v", err)
	}
}

func runNew(args []string) error {
	fs := flag.NewFlagSet("new", flag.ExitOnError)
	jobID := fs.String("job", "", "job id the form belongs to")
	title := fs.String("title", "Application Form", "form title")
	createdBy := fs.String("created-by", "", "operator creating the form")
	output := fs.String("output", "", "output file (stdout if empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *jobID == "" {
		return fmt.Errorf("new: -job is required")
	}

	form := builder.New().NewSchema(*jobID, *title, builder.WithCreatedBy(*createdBy))
	payload, err := schema.EncodeIndent(form)
	if err != nil {
		return err
	}
	return emit(*output, payload)
}

func runTemplates(args []string) error {
	fs := flag.NewFlagSet("templates", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	for _, tpl := range registry.AllTemplates() {
		fmt.Printf("%-10s %s\n", tpl.Kind, tpl.Label)
	}
	return nil
}

func runRender(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	schemaPath := fs.String("schema", "", "schema JSON file")
	name := fs.String("renderer", "vanilla", "renderer to use")
	output := fs.String("output", "", "output file (stdout if empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form, err := loadSchema(*schemaPath)
	if err != nil {
		return err
	}

	renderers, err := buildRegistry()
	if err != nil {
		return err
	}
	renderer, err := renderers.Get(*name)
	if err != nil {
		return err
	}

	payload, err := renderer.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		return err
	}
	return emit(*output, payload)
}

func runFill(args []string) error {
	fs := flag.NewFlagSet("fill", flag.ExitOnError)
	schemaPath := fs.String("schema", "", "schema JSON file")
	format := fs.String("format", "json", "output format: json or pretty")
	output := fs.String("output", "", "output file (stdout if empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	form, err := loadSchema(*schemaPath)
	if err != nil {
		return err
	}

	outputFormat := tui.OutputFormatJSON
	if *format == "pretty" {
		outputFormat = tui.OutputFormatPrettyText
	}
	renderer, err := tui.New(tui.WithOutputFormat(outputFormat))
	if err != nil {
		return err
	}

	payload, err := renderer.Render(context.Background(), form, render.RenderOptions{})
	if err != nil {
		return err
	}
	return emit(*output, payload)
}

func runImport(args []string) error {
	fs := flag.NewFlagSet("import", flag.ExitOnError)
	docPath := fs.String("doc", "", "OpenAPI document path")
	operationID := fs.String("operation", "", "operation id to import")
	jobID := fs.String("job", "", "job id the form belongs to")
	output := fs.String("output", "", "output file (stdout if empty)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *docPath == "" || *operationID == "" {
		return fmt.Errorf("import: -doc and -operation are required")
	}

	data, err := os.ReadFile(*docPath)
	if err != nil {
		return err
	}
	form, err := importer.New().Import(context.Background(), data, *operationID, *jobID)
	if err != nil {
		return err
	}
	payload, err := schema.EncodeIndent(form)
	if err != nil {
		return err
	}
	return emit(*output, payload)
}

func buildRegistry() (*render.Registry, error) {
	renderers := render.NewRegistry()

	html, err := vanilla.New()
	if err != nil {
		return nil, err
	}
	if err := renderers.Register(html); err != nil {
		return nil, err
	}

	terminal, err := tui.New()
	if err != nil {
		return nil, err
	}
	if err := renderers.Register(terminal); err != nil {
		return nil, err
	}

	return renderers, nil
}

func loadSchema(path string) (schema.FormSchema, error) {
	if path == "" {
		return schema.FormSchema{}, fmt.Errorf("-schema is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return schema.FormSchema{}, err
	}
	return schema.Parse(data)
}

func emit(path string, payload []byte) error {
	if path == "" {
		fmt.Println(string(payload))
		return nil
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return err
	}
	fmt.Printf("written to %s\n", path)
	return nil
}
