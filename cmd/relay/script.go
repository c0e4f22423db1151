package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"relay-lab/domain"
	"relay-lab/errors"
)

type Op string

const (
	OpReceive Op = "receive"
	OpDeliver Op = "deliver"
	OpSend    Op = "send"

	broadcastToken = "*"
	commentPrefix  = "#"
)

// Step is one line of a replay script: <op> <participant|*> <payload>.
// The payload is the rest of the line, spaces included.
type Step struct {
	Line    int
	Op      Op
	To      domain.ParticipantID
	Payload string
}

// ParseScript reads every step of a script. Blank lines and lines starting
// with # are skipped.
func ParseScript(r io.Reader) ([]Step, error) {
	var steps []Step
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, commentPrefix) {
			continue
		}
		step, err := parseStep(lineNumber, line)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return steps, nil
}

func parseStep(lineNumber int, line string) (Step, error) {
	op, rest := cutField(line)
	target, payload := cutField(rest)
	if target == "" {
		return Step{}, fmt.Errorf("%w: line %d: missing participant", errors.ErrInvalidScript, lineNumber)
	}

	step := Step{Line: lineNumber, Op: Op(strings.ToLower(op)), Payload: payload}
	switch step.Op {
	case OpReceive, OpDeliver, OpSend:
	default:
		return Step{}, fmt.Errorf("%w: line %d: unknown operation %q", errors.ErrInvalidScript, lineNumber, op)
	}
	if target != broadcastToken {
		step.To = domain.ParticipantID(target)
	}
	return step, nil
}

// cutField splits the first blank-separated field from the rest of s.
func cutField(s string) (string, string) {
	s = strings.TrimLeft(s, " \t")
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimLeft(s[i:], " \t")
}
