// canonicalize prints the canonical JSON (RFC 8785) form of a JSON file.
//
//	canonicalize [--key-order codepoint|utf16] <file>
package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/vocdoni/gofirma/canontools/internal/canon"
	"github.com/vocdoni/gofirma/canontools/internal/cli"
	"github.com/vocdoni/gofirma/canontools/internal/digest"
)

func main() {
	cli.Main(run)
}

func run(args []string, stdout, stderr io.Writer) error {
	cmd := cli.NewCommand("canonicalize", "<file>",
		"Print the canonical (RFC 8785) serialization of a JSON document.")
	keyOrder := cmd.Flags.String("key-order", canon.CodePointOrder.String(),
		"object key order: codepoint, or utf16 for RFC 8785 code-unit order")
	if done, err := cmd.Parse(args, stdout); done || err != nil {
		return err
	}
	logger := cmd.Logger(stderr)
	defer func() { _ = logger.Sync() }()

	order, err := canon.ParseKeyOrder(*keyOrder)
	if err != nil {
		return &cli.UsageError{Err: err}
	}
	path, err := cli.RequireArg(cmd.Args(), "file path")
	if err != nil {
		return err
	}

	data, err := cli.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("read input", zap.String("path", path), zap.Int("bytes", len(data)))

	out, err := canon.CanonicalizeWithOptions(data, &canon.Options{KeyOrder: order})
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("canonicalized",
		zap.Stringer("keyOrder", order),
		zap.Int("bytes", len(out)),
		zap.Stringer("sha256", digest.SHA256(out)))

	_, err = stdout.Write(append(out, '\n'))
	return err
}
