package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/go-cart-ecommerce/service-ts-gen/internal/codemodel"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/config"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/diag"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/document"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/logger"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/output"
	"github.com/go-cart-ecommerce/service-ts-gen/internal/typeres"
)

const version = "1.0.0"

var (
	okColor   = color.New(color.FgGreen, color.Bold)
	warnColor = color.New(color.FgYellow, color.Bold)
	errColor  = color.New(color.FgRed, color.Bold)
)

var rootCmd = &cobra.Command{
	Use:           "service-ts-gen",
	Short:         "Generate TypeScript service classes from a Swagger 2.0 document",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information and exit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "service-ts-gen version %s\n", version)
	},
}

func init() {
	flags := rootCmd.Flags()
	flags.String("config", "", "Path to the config file. Defaults to "+config.FileName+" in the working directory.")
	flags.String("doc", "", "Path or URL of the Swagger document. Use '-' to read from stdin.")
	flags.StringP("output", "o", "", "Output directory where the generated files will be placed.")
	flags.String("ext", "", "Extension of the generated files.")
	flags.String("group-by", "", "Group operations into files by 'path' or 'tag'.")
	flags.Bool("optional-args", false, "Render arguments that are not required as optional.")
	flags.Bool("debug", false, "Run with debug logging.")

	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errColor.Sprint("error:"), err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()

	debug, _ := flags.GetBool("debug")
	log, err := logger.New(debug)
	if err != nil {
		return err
	}

	path, _ := flags.GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	if flags.Changed("doc") {
		cfg.Input, _ = flags.GetString("doc")
	}
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("ext") {
		cfg.Extension, _ = flags.GetString("ext")
	}
	if flags.Changed("group-by") {
		cfg.GroupBy, _ = flags.GetString("group-by")
	}
	if flags.Changed("optional-args") {
		cfg.OptionalArguments, _ = flags.GetBool("optional-args")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	log.V(1).Info("configuration loaded", "config", fmt.Sprintf("%+v", *cfg))

	return generate(cmd.Context(), cfg, log, cmd.InOrStdin(), cmd.OutOrStdout())
}

// generate runs one full pass: load the document, build the service files,
// write them and print a summary. Only load and write failures are returned.
func generate(ctx context.Context, cfg *config.Config, log logr.Logger, stdin io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	opts := document.DefaultOptions()
	opts.Attempts = cfg.FetchAttempts
	opts.Stdin = stdin
	opts.Log = log
	doc, err := document.Load(ctx, cfg.Input, opts)
	if err != nil {
		return err
	}

	bag := diag.NewBag()
	env := codemodel.Env{
		Resolver: typeres.New(typeres.Options{
			RepositoryModule: cfg.RepositoryModule,
			FileType:         cfg.FileType,
			DynamicType:      cfg.DynamicType,
		}),
		Reporter:          diag.MultiReporter{bag, diag.LogReporter{Log: log}},
		VoidType:          cfg.VoidType,
		OptionalArguments: cfg.OptionalArguments,
	}
	services := generateServices(doc, cfg.GroupBy, env)

	paths, err := output.SaveAll(ctx, services.Files(), cfg.Output, cfg.Extension, cfg.Concurrency)
	if err != nil {
		return err
	}
	for _, p := range paths {
		log.V(1).Info("file written", "path", p)
	}

	printSummary(out, cfg.Output, len(paths), bag)
	return nil
}

func printSummary(out io.Writer, dir string, files int, bag *diag.Bag) {
	fmt.Fprintf(out, "%s %d service file(s) in %s\n", okColor.Sprint("Generated"), files, dir)
	if n := bag.Count(diag.SevWarning); n > 0 {
		fmt.Fprintf(out, "%s %d\n", warnColor.Sprint("Warnings:"), n)
	}
	if n := bag.Count(diag.SevError); n > 0 {
		fmt.Fprintf(out, "%s %d\n", errColor.Sprint("Type errors:"), n)
	}
}
