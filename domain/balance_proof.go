package domain

// BalanceProof is the signed off-chain state of a payment channel.
type BalanceProof struct {
	ChannelIdentifier   uint64 `json:"channel_identifier" validate:"required"`
	TokenNetworkAddress string `json:"token_network_address" validate:"required,eth_addr"`
	ChainID             uint64 `json:"chain_id" validate:"required"`
	Nonce               uint64 `json:"nonce" validate:"required"`
	TransferredAmount   uint64 `json:"transferred_amount"`
	Locksroot           string `json:"locksroot" validate:"required,hexadecimal"`
	ExtraHash           string `json:"extra_hash" validate:"required,hexadecimal"`
	Signature           string `json:"signature" validate:"required,hexadecimal"`
}

func (BalanceProof) MessageType() MessageType { return BalanceProofType }

func (b BalanceProof) Check() error {
	if err := checkHexLength("locksroot", b.Locksroot, hashLength); err != nil {
		return err
	}
	if err := checkHexLength("extra_hash", b.ExtraHash, hashLength); err != nil {
		return err
	}
	return checkSignature("signature", b.Signature)
}
