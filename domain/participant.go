// Package domain contains core concepts of the relay.
// This file defines Participant identifiers and the broadcast target.
// No runtime, network, or codec logic should be added here.
package domain

// ParticipantID identifies a simulated node. Its content is opaque to the router.
type ParticipantID string

// Broadcast is the absence of a target: delivery to every known participant.
const Broadcast ParticipantID = ""

func (p ParticipantID) IsBroadcast() bool {
	return p == Broadcast
}

func (p ParticipantID) String() string {
	if p.IsBroadcast() {
		return "*"
	}
	return string(p)
}
