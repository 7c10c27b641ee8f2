package model

import (
	"errors"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

func (s *Submission) Validate() error {
	if !strings.HasPrefix(s.Address, "0x") && !strings.HasPrefix(s.Address, "0X") {
		return errors.New("address must be 0x-prefixed: " + s.Address)
	}
	if !common.IsHexAddress(s.Address) {
		return errors.New("invalid address: " + s.Address)
	}
	if hex := s.Address[2:]; hex != strings.ToLower(hex) && hex != strings.ToUpper(hex) {
		if common.HexToAddress(s.Address).Hex() != "0x"+hex {
			return errors.New("bad address checksum: " + s.Address)
		}
	}
	if s.Quality == "" {
		return errors.New("missing quality")
	}
	if len(s.Data) == 0 {
		return errors.New("missing submission data")
	}
	if _, err := ParseDataType(string(s.DataType)); err != nil {
		return err
	}
	return nil
}
