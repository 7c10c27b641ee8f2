// Package fingerprint derives the on-chain fingerprint of a submission: the
// Keccak-256 digest of the contract-ABI encoding of
// (address user, string quality, string|bytes canonicalData).
package fingerprint

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/vocdoni/gofirma/canontools/internal/canon"
	"github.com/vocdoni/gofirma/canontools/internal/digest"
	"github.com/vocdoni/gofirma/canontools/internal/model"
)

var (
	addressType = mustType("address")
	stringType  = mustType("string")
	bytesType   = mustType("bytes")
)

func mustType(name string) abi.Type {
	t, err := abi.NewType(name, "", nil)
	if err != nil {
		panic(fmt.Sprintf("fingerprint: abi type %s: %v", name, err))
	}
	return t
}

// Arguments returns the ABI argument list for a submission whose data
// element has the given type.
func Arguments(dataType model.DataType) (abi.Arguments, error) {
	var dataArg abi.Type
	switch dataType {
	case model.DataString:
		dataArg = stringType
	case model.DataBytes:
		dataArg = bytesType
	default:
		return nil, fmt.Errorf("unsupported data type %q", dataType)
	}
	return abi.Arguments{
		{Name: "user", Type: addressType},
		{Name: "quality", Type: stringType},
		{Name: "data", Type: dataArg},
	}, nil
}

// Result holds the encoded tuple and its digest.
type Result struct {
	CanonicalData []byte
	Encoded       []byte
	Fingerprint   digest.Digest
}

// Encode validates sub, canonicalizes its data and returns the ABI encoding
// of the tuple together with the canonical data that went into it.
func Encode(sub *model.Submission) (encoded, canonicalData []byte, err error) {
	if err := sub.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid submission: %w", err)
	}
	canonicalData, err = canon.Canonicalize(sub.Data)
	if err != nil {
		return nil, nil, fmt.Errorf("canonicalizing submission data: %w", err)
	}
	Logger().Debug("canonical submission data",
		zap.String("data", string(canonicalData)),
		zap.Int("bytes", len(canonicalData)))

	args, err := Arguments(sub.DataType)
	if err != nil {
		return nil, nil, err
	}
	var data any = string(canonicalData)
	if sub.DataType == model.DataBytes {
		data = canonicalData
	}
	encoded, err = args.Pack(common.HexToAddress(sub.Address), sub.Quality, data)
	if err != nil {
		return nil, nil, fmt.Errorf("abi encoding failed: %w", err)
	}
	Logger().Debug("abi encoded submission",
		zap.String("address", sub.Address),
		zap.String("dataType", string(sub.DataType)),
		zap.Int("bytes", len(encoded)))
	return encoded, canonicalData, nil
}

// Compute returns the ABI encoding of sub and its Keccak-256 fingerprint.
func Compute(sub *model.Submission) (*Result, error) {
	encoded, canonicalData, err := Encode(sub)
	if err != nil {
		return nil, err
	}
	return &Result{
		CanonicalData: canonicalData,
		Encoded:       encoded,
		Fingerprint:   digest.Keccak256(encoded),
	}, nil
}
