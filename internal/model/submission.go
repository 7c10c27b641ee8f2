package model

import (
	"encoding/json"
	"fmt"

	"github.com/vocdoni/gofirma/canontools/internal/canon"
)

// DataType is the ABI type used for the submission data element.
type DataType string

const (
	DataString DataType = "string"
	DataBytes  DataType = "bytes"
)

func ParseDataType(s string) (DataType, error) {
	switch DataType(s) {
	case DataString, DataBytes:
		return DataType(s), nil
	default:
		return "", fmt.Errorf("unsupported data type %q (want string or bytes)", s)
	}
}

// Submission is the tuple that gets fingerprinted: who submitted, the
// quality grade assigned, and the submitted JSON document.
type Submission struct {
	Address  string
	Quality  string
	Data     json.RawMessage // canonicalized before encoding
	DataType DataType
}

type FoodSubmission struct {
	Brand        string     `json:"brand"`
	FoodCategory string     `json:"foodCategory"`
	FoodName     string     `json:"foodName"`
	Images       []ImageRef `json:"images"`
	Quantity     string     `json:"quantity"`
	Region       string     `json:"region"`
}

type ImageRef struct {
	Hash string `json:"hash"` // hex SHA-256 of the image file
}

const (
	SampleAddress = "0x90f8bf6a479f320ead074411a4b0e7944ea8c9c1"
	SampleQuality = "S"
)

// SampleFood is the demonstration submission the encode-and-digest tool
// fingerprints when no data file is given.
var SampleFood = FoodSubmission{
	Brand:        "Homemade ",
	FoodCategory: "Homemade food or snacks",
	FoodName:     "Paneer loded basan roll ",
	Images: []ImageRef{
		{Hash: "e6b024a0a5b3f202667300f3621190e666a52cadfd715664cd2e082cb0d3e03a"},
	},
	Quantity: "Individual (1 person)",
	Region:   "PK",
}

// SampleSubmission returns the built-in demonstration submission.
func SampleSubmission() (*Submission, error) {
	data, err := canon.Encode(SampleFood)
	if err != nil {
		return nil, err
	}
	return &Submission{
		Address:  SampleAddress,
		Quality:  SampleQuality,
		Data:     data,
		DataType: DataString,
	}, nil
}
