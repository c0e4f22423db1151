package domain

import (
	"fmt"
	"strconv"

	"relay-lab/errors"
)

// FeeInfo announces the mediation fee a participant charges on a channel.
type FeeInfo struct {
	TokenNetworkAddress string `json:"token_network_address" validate:"required,eth_addr"`
	ChannelIdentifier   uint64 `json:"channel_identifier" validate:"required"`
	ChainID             uint64 `json:"chain_id" validate:"required"`
	Nonce               uint64 `json:"nonce" validate:"required"`
	PercentageFee       string `json:"percentage_fee" validate:"required,numeric"`
	Signature           string `json:"signature" validate:"required,hexadecimal"`
}

func (FeeInfo) MessageType() MessageType { return FeeInfoType }

func (f FeeInfo) Check() error {
	fee, err := strconv.ParseFloat(f.PercentageFee, 64)
	if err != nil {
		return fmt.Errorf("%w: percentage_fee: %v", errors.ErrMessageFormat, err)
	}
	if fee < 0 || fee > 1 {
		return fmt.Errorf("%w: percentage_fee %s out of [0, 1]", errors.ErrMessageFormat, f.PercentageFee)
	}
	return checkSignature("signature", f.Signature)
}
