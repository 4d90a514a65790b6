package models

import "testing"

func TestCapability_Valid(t *testing.T) {
	tests := []struct {
		name       string
		capability Capability
		want       bool
	}{
		{"architecture is valid", CapabilityArchitecture, true},
		{"code_writing is valid", CapabilityCodeWriting, true},
		{"review is valid", CapabilityReview, true},
		{"empty string is invalid", Capability(""), false},
		{"unknown capability is invalid", Capability("telepathy"), false},
		{"uppercase is invalid", Capability("TESTING"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.capability.Valid(); got != tt.want {
				t.Errorf("Capability(%q).Valid() = %v, want %v", tt.capability, got, tt.want)
			}
		})
	}
}

func TestAllCapabilities_AreValid(t *testing.T) {
	if len(AllCapabilities) != 9 {
		t.Fatalf("AllCapabilities has %d entries, want 9", len(AllCapabilities))
	}
	seen := make(map[Capability]bool)
	for _, c := range AllCapabilities {
		if !c.Valid() {
			t.Errorf("AllCapabilities contains invalid capability %q", c)
		}
		if seen[c] {
			t.Errorf("AllCapabilities contains %q twice", c)
		}
		seen[c] = true
	}
}

func TestCapability_Sensitive(t *testing.T) {
	for _, c := range AllCapabilities {
		want := c == CapabilitySecurity || c == CapabilityMigration
		if got := c.Sensitive(); got != want {
			t.Errorf("%s.Sensitive() = %v, want %v", c, got, want)
		}
	}
}

func TestCapability_Critical(t *testing.T) {
	for _, c := range AllCapabilities {
		want := c == CapabilityArchitecture || c == CapabilityMigration
		if got := c.Critical(); got != want {
			t.Errorf("%s.Critical() = %v, want %v", c, got, want)
		}
	}
}

func TestCapability_Description(t *testing.T) {
	for _, c := range AllCapabilities {
		if c.Description() == "" {
			t.Errorf("%s has an empty description", c)
		}
	}
	if Capability("telepathy").Description() != "general software work" {
		t.Error("unknown capability should get the generic description")
	}
}
