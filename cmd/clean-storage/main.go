// Command-line tool to clear the persisted session keys and, optionally, every uploaded resume file.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"aps-backend/internal/blob"
	"aps-backend/internal/config"
	"aps-backend/internal/storage"
)

func main() {
	purgeFiles := flag.Bool("files", false, "also delete uploaded files under the blob prefix")
	flag.Parse()

	cfg, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := run(context.Background(), cfg, *purgeFiles, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg *config.Config, purgeFiles bool, in io.Reader, out io.Writer) error {
	// Warning message
	fmt.Fprintf(out, "⚠️ WARNING: This command will REMOVE the session keys stored in the %s backend.\n", cfg.Storage.Backend)
	if purgeFiles {
		fmt.Fprintf(out, "It will also DELETE every file under %q in the %s blob store.\n", cfg.Blob.Prefix, cfg.Blob.Backend)
	}
	fmt.Fprintln(out, "This action is irreversible. Do you want to continue? (yes/no): ")

	ok, err := confirm(in)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if !ok {
		fmt.Fprintln(out, "Operation cancelled.")
		return nil
	}

	s, closer, err := storage.Open(ctx, cfg)
	if err != nil {
		return fmt.Errorf("storage failed to open: %w", err)
	}
	defer closer.Close()

	var sink blob.Sink
	if purgeFiles {
		sink, err = blob.Open(ctx, cfg)
		if err != nil {
			return fmt.Errorf("blob store failed to open: %w", err)
		}
		defer sink.Close()
	}

	return clean(ctx, s, sink, cfg.Blob.Prefix, out)
}

// confirm reads one line and accepts only "yes"
func confirm(in io.Reader) (bool, error) {
	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	return strings.TrimSpace(strings.ToLower(input)) == "yes", nil
}

// clean removes the session keys of s and, when sink is set, every object under prefix
func clean(ctx context.Context, s storage.Storage, sink blob.Sink, prefix string, out io.Writer) error {
	if err := storage.Clear(ctx, s); err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	fmt.Fprintln(out, "✅ Session keys removed.")

	if sink == nil {
		return nil
	}

	keys, err := sink.List(ctx, prefix)
	if err != nil {
		return fmt.Errorf("failed to list files: %w", err)
	}
	for _, key := range keys {
		if err := sink.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to delete %s: %w", key, err)
		}
	}
	fmt.Fprintf(out, "✅ %d files deleted.\n", len(keys))
	return nil
}
