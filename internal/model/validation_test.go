package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleSubmission(t *testing.T) {
	sub, err := SampleSubmission()
	require.NoError(t, err)
	require.NoError(t, sub.Validate())

	// Canonical form of the demonstration document as it is signed on chain.
	want := `{"brand":"Homemade ","foodCategory":"Homemade food or snacks","foodName":"Paneer loded basan roll ","images":[{"hash":"e6b024a0a5b3f202667300f3621190e666a52cadfd715664cd2e082cb0d3e03a"}],"quantity":"Individual (1 person)","region":"PK"}`
	assert.Equal(t, want, string(sub.Data))
	assert.Equal(t, DataString, sub.DataType)
}

func TestValidate(t *testing.T) {
	valid := func() *Submission {
		return &Submission{
			Address:  "0xEbB6C1d3dA9fb9bB75B5f6257c1C46E507C6be9c",
			Quality:  "A",
			Data:     []byte(`{"a":1}`),
			DataType: DataBytes,
		}
	}

	tests := []struct {
		name   string
		mutate func(*Submission)
		errMsg string
	}{
		{name: "valid", mutate: func(*Submission) {}},
		{name: "no prefix", mutate: func(s *Submission) { s.Address = "EbB6C1d3dA9fb9bB75B5f6257c1C46E507C6be9c" }, errMsg: "0x-prefixed"},
		{name: "short address", mutate: func(s *Submission) { s.Address = "0x1234" }, errMsg: "invalid address"},
		{name: "non-hex address", mutate: func(s *Submission) { s.Address = "0xZZB6C1d3dA9fb9bB75B5f6257c1C46E507C6be9c" }, errMsg: "invalid address"},
		{name: "lowercase address", mutate: func(s *Submission) { s.Address = "0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1" }},
		{name: "uppercase address", mutate: func(s *Submission) { s.Address = "0X90F8BF6A479F320EAD074411A4B0E7944EA8C9C1" }},
		{name: "checksummed address", mutate: func(s *Submission) { s.Address = "0x90F8bf6A479f320ead074411a4B0e7944Ea8c9C1" }},
		{name: "bad checksum", mutate: func(s *Submission) { s.Address = "0x90F8bf6A479f320ead074411a4B0e7944Ea8c9c1" }, errMsg: "bad address checksum"},
		{name: "bad checksum upper prefix", mutate: func(s *Submission) { s.Address = "0XEbB6C1d3dA9fb9bB75B5f6257c1C46E507C6be9C" }, errMsg: "bad address checksum"},
		{name: "missing quality", mutate: func(s *Submission) { s.Quality = "" }, errMsg: "missing quality"},
		{name: "missing data", mutate: func(s *Submission) { s.Data = nil }, errMsg: "missing submission data"},
		{name: "bad data type", mutate: func(s *Submission) { s.DataType = "uint256" }, errMsg: "unsupported data type"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := valid()
			tt.mutate(sub)
			err := sub.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseDataType(t *testing.T) {
	dt, err := ParseDataType("bytes")
	require.NoError(t, err)
	assert.Equal(t, DataBytes, dt)

	_, err = ParseDataType("address")
	require.Error(t, err)
}
