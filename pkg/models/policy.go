package models

import (
	"fmt"
	"strings"
)

// AutonomyPolicy controls how often human approval is required during a run.
type AutonomyPolicy string

const (
	// PolicyConservative asks for approval before every phase.
	PolicyConservative AutonomyPolicy = "conservative"
	// PolicyBalanced asks before the first and last phase, and before any
	// phase containing a sensitive capability.
	PolicyBalanced AutonomyPolicy = "balanced"
	// PolicyTrust never asks for approval.
	PolicyTrust AutonomyPolicy = "trust"
	// PolicyInteractive asks before every individual worker.
	PolicyInteractive AutonomyPolicy = "interactive"
)

// Valid returns true if the policy is a known value.
func (p AutonomyPolicy) Valid() bool {
	switch p {
	case PolicyConservative, PolicyBalanced, PolicyTrust, PolicyInteractive:
		return true
	default:
		return false
	}
}

// ParsePolicy parses a policy name, case-insensitively.
func ParsePolicy(s string) (AutonomyPolicy, error) {
	p := AutonomyPolicy(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("invalid autonomy policy: %q (want conservative, balanced, trust, or interactive)", s)
	}
	return p, nil
}
