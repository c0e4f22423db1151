package domain

// MonitorRequest asks a monitoring service to watch a channel on behalf of
// a participant, carrying the latest balance proof and the offered reward.
type MonitorRequest struct {
	BalanceProof         BalanceProof `json:"balance_proof"`
	NonClosingSignature  string       `json:"non_closing_signature,omitempty" validate:"omitempty,hexadecimal"`
	RewardSenderAddress  string       `json:"reward_sender_address" validate:"required,eth_addr"`
	RewardProofSignature string       `json:"reward_proof_signature" validate:"required,hexadecimal"`
	RewardAmount         uint64       `json:"reward_amount"`
	MonitorAddress       string       `json:"monitor_address" validate:"required,eth_addr"`
}

func (MonitorRequest) MessageType() MessageType { return MonitorRequestType }

func (m MonitorRequest) Check() error {
	if err := m.BalanceProof.Check(); err != nil {
		return err
	}
	if m.NonClosingSignature != "" {
		if err := checkSignature("non_closing_signature", m.NonClosingSignature); err != nil {
			return err
		}
	}
	return checkSignature("reward_proof_signature", m.RewardProofSignature)
}
