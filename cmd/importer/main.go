package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - load:     Read a cafe payload from a bucket and import it into the store
// - validate: Read and check a payload without touching the store

func main() {
	loadCmd := flag.NewFlagSet("load", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	// load parameters
	loadSource := loadCmd.String("source", "file://./data", "Bucket URL holding the payload (file://, gs://, mem://)")
	loadKey := loadCmd.String("key", "cafes.json", "Object key of the JSON payload inside the bucket")
	loadWipe := loadCmd.Bool("wipe", true, "Delete every existing cafe and review before importing")
	loadFeatured := loadCmd.String("featured-keywords", defaultFeaturedKeywords, "Comma separated name keywords that mark a cafe featured")

	// validate parameters
	validateSource := validateCmd.String("source", "file://./data", "Bucket URL holding the payload (file://, gs://, mem://)")
	validateKey := validateCmd.String("key", "cafes.json", "Object key of the JSON payload inside the bucket")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := importerFlags{
		Load: loadFlags{
			cmd:      loadCmd,
			source:   loadSource,
			key:      loadKey,
			wipe:     loadWipe,
			featured: loadFeatured,
		},
		Validate: validateFlags{
			cmd:    validateCmd,
			source: validateSource,
			key:    validateKey,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type importerFlags struct {
	Load     loadFlags
	Validate validateFlags
}

type loadFlags struct {
	cmd      *flag.FlagSet
	source   *string
	key      *string
	wipe     *bool
	featured *string
}

type validateFlags struct {
	cmd    *flag.FlagSet
	source *string
	key    *string
}

func runSubcommand(ctx context.Context, flags *importerFlags) error {
	switch os.Args[1] {
	case "load":
		return handleLoad(ctx, flags)
	case "validate":
		return handleValidate(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleLoad(ctx context.Context, flags *importerFlags) error {
	if err := flags.Load.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse load flags")
	}

	return runLoad(ctx, *flags.Load.source, *flags.Load.key, *flags.Load.wipe, splitKeywords(*flags.Load.featured))
}

func handleValidate(ctx context.Context, flags *importerFlags) error {
	if err := flags.Validate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse validate flags")
	}

	return runValidate(ctx, *flags.Validate.source, *flags.Validate.key)
}

func printUsage() {
	fmt.Println("Usage: importer <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  load        Import a cafe payload into the catalog store")
	fmt.Println("  validate    Check a cafe payload without importing it")
	fmt.Println("")
	fmt.Println("Use 'importer <command> -h' for more information about a command.")
}
