// encode-and-digest ABI-encodes a submission tuple
// (address, string quality, string|bytes canonical data) and prints the
// encoding together with its Keccak-256 fingerprint.
//
// Without flags it fingerprints the built-in sample submission.
package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"go.uber.org/zap"

	"github.com/vocdoni/gofirma/canontools/internal/cli"
	"github.com/vocdoni/gofirma/canontools/internal/fingerprint"
	"github.com/vocdoni/gofirma/canontools/internal/model"
)

func main() {
	cli.Main(run)
}

func run(args []string, stdout, stderr io.Writer) error {
	cmd := cli.NewCommand("encode-and-digest", "",
		"ABI-encode (address, quality, canonical data) and print the encoding and its Keccak-256 fingerprint.")
	address := cmd.Flags.String("address", model.SampleAddress, "submitter address (0x-prefixed)")
	quality := cmd.Flags.String("quality", model.SampleQuality, "quality grade")
	dataPath := cmd.Flags.String("data", "", "JSON file holding the submission data (default: built-in sample)")
	dataType := cmd.Flags.String("data-type", string(model.DataString), "ABI type of the data element: string or bytes")
	if done, err := cmd.Parse(args, stdout); done || err != nil {
		return err
	}
	if len(cmd.Args()) > 0 {
		return &cli.UsageError{Err: fmt.Errorf("unexpected arguments: %v", cmd.Args())}
	}
	logger := cmd.Logger(stderr)
	defer func() { _ = logger.Sync() }()
	fingerprint.SetLogger(logger)

	sub, err := model.SampleSubmission()
	if err != nil {
		return err
	}
	sub.Address = *address
	sub.Quality = *quality
	if sub.DataType, err = model.ParseDataType(*dataType); err != nil {
		return &cli.UsageError{Err: err}
	}
	if *dataPath != "" {
		if sub.Data, err = cli.ReadFile(*dataPath); err != nil {
			return err
		}
		logger.Debug("read submission data", zap.String("path", *dataPath), zap.Int("bytes", len(sub.Data)))
	}

	res, err := fingerprint.Compute(sub)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "encoded data:  %s\n", hexutil.Encode(res.Encoded))
	fmt.Fprintf(&out, "fingerprint:  %s\n", res.Fingerprint.Hex())
	_, err = stdout.Write(out.Bytes())
	return err
}
