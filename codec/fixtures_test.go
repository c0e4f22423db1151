package codec

import (
	"strings"

	"relay-lab/domain"
)

const (
	alice        = "0x00000000000000000000000000000000000000a1"
	bob          = "0x00000000000000000000000000000000000000b2"
	carol        = "0x00000000000000000000000000000000000000c3"
	tokenNetwork = "0x00000000000000000000000000000000000000d4"
)

var (
	signature = "0x" + strings.Repeat("ab", 65)
	hash      = "0x" + strings.Repeat("cd", 32)
)

func balanceProof() domain.BalanceProof {
	return domain.BalanceProof{
		ChannelIdentifier:   7,
		TokenNetworkAddress: tokenNetwork,
		ChainID:             1,
		Nonce:               3,
		TransferredAmount:   150,
		Locksroot:           hash,
		ExtraHash:           hash,
		Signature:           signature,
	}
}

func monitorRequest() domain.MonitorRequest {
	return domain.MonitorRequest{
		BalanceProof:         balanceProof(),
		NonClosingSignature:  signature,
		RewardSenderAddress:  alice,
		RewardProofSignature: signature,
		RewardAmount:         10,
		MonitorAddress:       bob,
	}
}

func feeInfo() domain.FeeInfo {
	return domain.FeeInfo{
		TokenNetworkAddress: tokenNetwork,
		ChannelIdentifier:   7,
		ChainID:             1,
		Nonce:               1,
		PercentageFee:       "0.01",
		Signature:           signature,
	}
}

func pathsRequest() domain.PathsRequest {
	return domain.PathsRequest{
		TokenNetworkAddress: tokenNetwork,
		SourceAddress:       alice,
		TargetAddress:       carol,
		Value:               100,
		NumPaths:            3,
		ChainID:             1,
		Nonce:               1,
		Signature:           signature,
	}
}

func pathsReply() domain.PathsReply {
	return domain.PathsReply{
		TokenNetworkAddress: tokenNetwork,
		TargetAddress:       carol,
		Value:               100,
		ChainID:             1,
		Nonce:               1,
		Paths: []domain.PathInfo{
			{Path: []string{alice, bob, carol}, EstimatedFee: 2},
			{Path: []string{alice, carol}, EstimatedFee: 0},
		},
		Signature: signature,
	}
}

func catalog() []domain.Message {
	return []domain.Message{balanceProof(), monitorRequest(), feeInfo(), pathsRequest(), pathsReply()}
}
