package fingerprint

import (
	"bytes"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vocdoni/gofirma/canontools/internal/canon"
	"github.com/vocdoni/gofirma/canontools/internal/digest"
	"github.com/vocdoni/gofirma/canontools/internal/model"
)

const testAddress = "0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1"

func word(b []byte) []byte {
	w := make([]byte, 32)
	copy(w, b)
	return w
}

func uintWord(n byte) []byte {
	w := make([]byte, 32)
	w[31] = n
	return w
}

func addressWord(t *testing.T, addr string) []byte {
	raw, err := hex.DecodeString(strings.TrimPrefix(addr, "0x"))
	require.NoError(t, err)
	w := make([]byte, 32)
	copy(w[12:], raw)
	return w
}

// expectedEncoding lays out (address, "S", data) by hand: three head words,
// then the length-prefixed, right-padded quality and data tails.
func expectedEncoding(t *testing.T, data []byte) []byte {
	require.LessOrEqual(t, len(data), 32)
	return bytes.Join([][]byte{
		addressWord(t, testAddress),
		uintWord(0x60),
		uintWord(0xa0),
		uintWord(1),
		word([]byte("S")),
		uintWord(byte(len(data))),
		word(data),
	}, nil)
}

func TestEncodeLayout(t *testing.T) {
	for _, dataType := range []model.DataType{model.DataString, model.DataBytes} {
		t.Run(string(dataType), func(t *testing.T) {
			sub := &model.Submission{
				Address:  testAddress,
				Quality:  "S",
				Data:     []byte(`{"b":1, "a":2}`),
				DataType: dataType,
			}
			encoded, canonicalData, err := Encode(sub)
			require.NoError(t, err)
			assert.Equal(t, `{"a":2,"b":1}`, string(canonicalData))
			assert.Equal(t, hex.EncodeToString(expectedEncoding(t, canonicalData)), hex.EncodeToString(encoded))
		})
	}
}

func TestComputeSample(t *testing.T) {
	sub, err := model.SampleSubmission()
	require.NoError(t, err)

	first, err := Compute(sub)
	require.NoError(t, err)
	second, err := Compute(sub)
	require.NoError(t, err)

	assert.Equal(t, first.Fingerprint, second.Fingerprint)
	assert.Equal(t, "0x3f614a12ca9c2c76452d663924804bd3ecf1ba560d64a248edddb12ccf3fef2c", first.Fingerprint.Hex())
	assert.Equal(t, digest.Keccak256(first.Encoded), first.Fingerprint)
	assert.Equal(t, string(sub.Data), string(first.CanonicalData))
	// head (3 words) + quality tail (2 words) + data length word + padded data
	padded := (len(first.CanonicalData) + 31) / 32 * 32
	assert.Len(t, first.Encoded, 6*32+padded)

	sub.Quality = "A"
	changed, err := Compute(sub)
	require.NoError(t, err)
	assert.NotEqual(t, first.Fingerprint, changed.Fingerprint)
}

func TestComputeKeyOrderIndependent(t *testing.T) {
	a := &model.Submission{Address: testAddress, Quality: "S", Data: []byte(`{"x":1,"y":[true]}`), DataType: model.DataString}
	b := &model.Submission{Address: testAddress, Quality: "S", Data: []byte("{ \"y\" : [ true ],\n \"x\" : 1.0 }"), DataType: model.DataString}

	ra, err := Compute(a)
	require.NoError(t, err)
	rb, err := Compute(b)
	require.NoError(t, err)
	assert.Equal(t, ra.Fingerprint, rb.Fingerprint)
}

func TestComputeDataTypeMatters(t *testing.T) {
	sub := &model.Submission{Address: testAddress, Quality: "S", Data: []byte(`{"a":1}`), DataType: model.DataString}
	asString, err := Compute(sub)
	require.NoError(t, err)

	sub.DataType = model.DataBytes
	asBytes, err := Compute(sub)
	require.NoError(t, err)

	// string and bytes share the dynamic layout, so the encodings coincide.
	assert.Equal(t, asString.Encoded, asBytes.Encoded)
}

func TestComputeErrors(t *testing.T) {
	_, err := Compute(&model.Submission{Address: "0x12", Quality: "S", Data: []byte(`1`), DataType: model.DataString})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid submission")

	_, err = Compute(&model.Submission{Address: testAddress, Quality: "S", Data: []byte(`{"a":`), DataType: model.DataString})
	var pe *canon.ParseError
	require.True(t, errors.As(err, &pe), "want ParseError, got %v", err)

	_, err = Arguments("uint8")
	require.Error(t, err)
}

func TestDebugLogging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	sub := &model.Submission{Address: testAddress, Quality: "S", Data: []byte(`{"b":1,"a":2}`), DataType: model.DataBytes}
	_, err := Compute(sub)
	require.NoError(t, err)

	entries := logs.FilterMessage("canonical submission data").All()
	require.Len(t, entries, 1)
	assert.Equal(t, `{"a":2,"b":1}`, entries[0].ContextMap()["data"])
	assert.Equal(t, 1, logs.FilterMessage("abi encoded submission").Len())
}

func TestSetLoggerNil(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	SetLogger(nil)
	t.Cleanup(func() { SetLogger(nil) })

	require.NotNil(t, Logger())
	sub := &model.Submission{Address: testAddress, Quality: "S", Data: []byte(`{}`), DataType: model.DataString}
	_, err := Compute(sub)
	require.NoError(t, err)
	assert.Zero(t, logs.Len())
}
