package domain

import (
	"fmt"
	"strings"

	"relay-lab/errors"
)

// PathsRequest asks a pathfinding participant for routes between two addresses.
type PathsRequest struct {
	TokenNetworkAddress string `json:"token_network_address" validate:"required,eth_addr"`
	SourceAddress       string `json:"source_address" validate:"required,eth_addr"`
	TargetAddress       string `json:"target_address" validate:"required,eth_addr"`
	Value               uint64 `json:"value" validate:"required"`
	NumPaths            int    `json:"num_paths" validate:"required,min=1,max=50"`
	ChainID             uint64 `json:"chain_id" validate:"required"`
	Nonce               uint64 `json:"nonce" validate:"required"`
	Signature           string `json:"signature" validate:"required,hexadecimal"`
}

func (PathsRequest) MessageType() MessageType { return PathsRequestType }

func (p PathsRequest) Check() error {
	if strings.EqualFold(p.SourceAddress, p.TargetAddress) {
		return fmt.Errorf("%w: source and target are the same address", errors.ErrMessageFormat)
	}
	return checkSignature("signature", p.Signature)
}

// PathInfo is one candidate route, hop by hop.
type PathInfo struct {
	Path         []string `json:"path" validate:"min=2,dive,eth_addr"`
	EstimatedFee uint64   `json:"estimated_fee"`
}

// PathsReply answers a PathsRequest.
type PathsReply struct {
	TokenNetworkAddress string     `json:"token_network_address" validate:"required,eth_addr"`
	TargetAddress       string     `json:"target_address" validate:"required,eth_addr"`
	Value               uint64     `json:"value" validate:"required"`
	ChainID             uint64     `json:"chain_id" validate:"required"`
	Nonce               uint64     `json:"nonce" validate:"required"`
	Paths               []PathInfo `json:"paths" validate:"dive"`
	Signature           string     `json:"signature" validate:"required,hexadecimal"`
}

func (PathsReply) MessageType() MessageType { return PathsReplyType }

func (p PathsReply) Check() error {
	for i, info := range p.Paths {
		if len(info.Path) == 0 {
			return fmt.Errorf("%w: path %d is empty", errors.ErrMessageFormat, i)
		}
		last := info.Path[len(info.Path)-1]
		if !strings.EqualFold(last, p.TargetAddress) {
			return fmt.Errorf("%w: path %d ends at %s, not at target", errors.ErrMessageFormat, i, last)
		}
	}
	return checkSignature("signature", p.Signature)
}
