// file-digest prints the lowercase hex SHA-256 digest of a file's contents.
//
//	file-digest [--check <digest>] <file>
package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/vocdoni/gofirma/canontools/internal/cli"
	"github.com/vocdoni/gofirma/canontools/internal/digest"
)

func main() {
	cli.Main(run)
}

func run(args []string, stdout, stderr io.Writer) error {
	cmd := cli.NewCommand("file-digest", "<file>",
		"Print the SHA-256 digest of a file as lowercase hex.")
	check := cmd.Flags.String("check", "",
		"expected digest (hex, optional 0x); fail unless the file matches")
	if done, err := cmd.Parse(args, stdout); done || err != nil {
		return err
	}
	logger := cmd.Logger(stderr)
	defer func() { _ = logger.Sync() }()

	path, err := cli.RequireArg(cmd.Args(), "image path")
	if err != nil {
		return err
	}
	var want digest.Digest
	if *check != "" {
		if want, err = digest.Parse(*check); err != nil {
			return &cli.UsageError{Err: fmt.Errorf("--check: %w", err)}
		}
	}

	d, err := digest.HashFile(path)
	if err != nil {
		return &cli.IOError{Path: path, Err: err}
	}
	logger.Debug("hashed file", zap.String("path", path), zap.Stringer("sha256", d))
	if *check != "" && d != want {
		return fmt.Errorf("%s: digest mismatch: got %s, want %s", path, d, want)
	}

	_, err = fmt.Fprintln(stdout, d.String())
	return err
}
