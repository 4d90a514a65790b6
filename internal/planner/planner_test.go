package planner

import (
	"errors"
	"testing"

	"github.com/maestro-cli/maestro/pkg/models"
)

func TestPlan_NilOrEmptyAnalysis(t *testing.T) {
	p := New(5)

	if _, err := p.Plan(nil); !errors.Is(err, ErrInvalidTask) {
		t.Errorf("Plan(nil) error = %v, want ErrInvalidTask", err)
	}

	_, err := p.Plan(&models.TaskAnalysis{})
	if !errors.Is(err, ErrInvalidTask) {
		t.Errorf("Plan(empty) error = %v, want ErrInvalidTask", err)
	}
}

func TestPlan_UnknownCapability(t *testing.T) {
	p := New(5)
	_, err := p.Plan(&models.TaskAnalysis{
		RequiredCapabilities: []models.Capability{"telepathy"},
	})
	if !errors.Is(err, ErrUnknownCapability) {
		t.Errorf("error = %v, want ErrUnknownCapability", err)
	}
}

func TestPlan_SingleCapability(t *testing.T) {
	p := New(5)
	plan, err := p.Plan(&models.TaskAnalysis{
		Complexity:           4,
		EstimatedFiles:       3,
		RequiredCapabilities: []models.Capability{models.CapabilityCodeWriting},
	})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	if len(plan.Phases) != 1 {
		t.Fatalf("got %d phases, want 1", len(plan.Phases))
	}
	assertPhase(t, plan.Phases[0], []string{"coder-0"}, false)

	coder := plan.Spec("coder-0")
	if coder == nil {
		t.Fatal("coder-0 missing from plan")
	}
	if coder.Role != "Code Writer Alpha" {
		t.Errorf("Role = %q, want 'Code Writer Alpha'", coder.Role)
	}
	if len(coder.DependsOn) != 0 {
		t.Errorf("coder has deps %v, want none without an architect", coder.DependsOn)
	}
}

func TestPlan_ArchitectGatesCoders(t *testing.T) {
	p := New(5)
	plan, err := p.Plan(&models.TaskAnalysis{
		Complexity:           6,
		EstimatedFiles:       3,
		RequiredCapabilities: []models.Capability{models.CapabilityArchitecture, models.CapabilityCodeWriting},
	})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	if len(plan.Phases) != 2 {
		t.Fatalf("got %d phases, want 2", len(plan.Phases))
	}
	assertPhase(t, plan.Phases[0], []string{"architect-0"}, false)
	assertPhase(t, plan.Phases[1], []string{"coder-0"}, false)

	coder := plan.Spec("coder-0")
	if len(coder.DependsOn) != 1 || coder.DependsOn[0] != "architect-0" {
		t.Errorf("coder deps = %v, want [architect-0]", coder.DependsOn)
	}
}

func TestPlan_WriterFanOut(t *testing.T) {
	p := New(5)
	plan, err := p.Plan(&models.TaskAnalysis{
		Complexity:           8,
		EstimatedFiles:       12,
		RequiredCapabilities: []models.Capability{models.CapabilityArchitecture, models.CapabilityCodeWriting},
	})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	if len(plan.Phases) != 2 {
		t.Fatalf("got %d phases, want 2", len(plan.Phases))
	}
	// 12 files / 3 = 4 writers, within the 5-worker cap after the architect.
	assertPhase(t, plan.Phases[1], []string{"coder-0", "coder-1", "coder-2", "coder-3"}, true)

	wantRoles := []string{"Code Writer Alpha", "Code Writer Beta", "Code Writer Gamma", "Code Writer Delta-1"}
	for i, want := range wantRoles {
		got := plan.Phases[1].Specs[i].Role
		if got != want {
			t.Errorf("writer[%d] role = %q, want %q", i, got, want)
		}
	}
}

func TestPlan_WriterFanOutBoundedByMaxWorkers(t *testing.T) {
	p := New(3)
	plan, err := p.Plan(&models.TaskAnalysis{
		Complexity:           9,
		EstimatedFiles:       24,
		RequiredCapabilities: []models.Capability{models.CapabilityArchitecture, models.CapabilityCodeWriting},
	})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	// 24/3 = 8 writers wanted, but only 2 slots remain after the architect.
	assertPhase(t, plan.Phases[1], []string{"coder-0", "coder-1"}, true)
}

func TestPlan_SimpleTaskGetsOneWriter(t *testing.T) {
	p := New(5)
	plan, err := p.Plan(&models.TaskAnalysis{
		Complexity:           6,
		EstimatedFiles:       12,
		RequiredCapabilities: []models.Capability{models.CapabilityCodeWriting},
	})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}
	if plan.TotalSpecs() != 1 {
		t.Errorf("TotalSpecs = %d, want 1 below the complexity threshold", plan.TotalSpecs())
	}
}

func TestPlan_SpecialistsFollowCoders(t *testing.T) {
	p := New(5)
	plan, err := p.Plan(&models.TaskAnalysis{
		Complexity: 6,
		RequiredCapabilities: []models.Capability{
			models.CapabilityCodeWriting,
			models.CapabilityTesting,
			models.CapabilityReview,
		},
	})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	if len(plan.Phases) != 2 {
		t.Fatalf("got %d phases, want 2", len(plan.Phases))
	}
	assertPhase(t, plan.Phases[0], []string{"coder-0"}, false)
	assertPhase(t, plan.Phases[1], []string{"tester-1", "reviewer-2"}, true)

	for _, id := range []string{"tester-1", "reviewer-2"} {
		s := plan.Spec(id)
		if len(s.DependsOn) != 1 || s.DependsOn[0] != "coder-0" {
			t.Errorf("%s deps = %v, want [coder-0]", id, s.DependsOn)
		}
	}
}

func TestPlan_SpecialistsWithoutPredecessorsRunTogether(t *testing.T) {
	p := New(5)
	plan, err := p.Plan(&models.TaskAnalysis{
		Complexity: 5,
		RequiredCapabilities: []models.Capability{
			models.CapabilitySecurity,
			models.CapabilityTesting,
			models.CapabilityReview,
		},
	})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	if len(plan.Phases) != 1 {
		t.Fatalf("got %d phases, want 1", len(plan.Phases))
	}
	assertPhase(t, plan.Phases[0], []string{"security-0", "tester-1", "reviewer-2"}, true)
}

func TestPlan_DocumentationRunsLast(t *testing.T) {
	p := New(5)
	plan, err := p.Plan(&models.TaskAnalysis{
		Complexity: 6,
		RequiredCapabilities: []models.Capability{
			models.CapabilityArchitecture,
			models.CapabilityCodeWriting,
			models.CapabilityTesting,
			models.CapabilityDocumentation,
		},
	})
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	last := plan.Phases[len(plan.Phases)-1]
	if len(last.Specs) != 1 || last.Specs[0].Capability != models.CapabilityDocumentation {
		t.Fatalf("last phase = %v, want the documentation spec alone", phaseIDs(last))
	}
	if len(last.Specs[0].DependsOn) != plan.TotalSpecs()-1 {
		t.Errorf("docs deps = %v, want every other spec", last.Specs[0].DependsOn)
	}
}

func TestPlan_FullPipelineOrdering(t *testing.T) {
	p := New(5)
	analysis, err := p.Analyze("design and implement the feature plus unit tests")
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	plan, err := p.Plan(analysis)
	if err != nil {
		t.Fatalf("Plan failed: %v", err)
	}

	if len(plan.Phases) != 3 {
		t.Fatalf("got %d phases, want 3", len(plan.Phases))
	}
	assertPhase(t, plan.Phases[0], []string{"architect-0"}, false)
	assertPhase(t, plan.Phases[1], []string{"coder-0"}, false)
	assertPhase(t, plan.Phases[2], []string{"tester-2"}, false)
}
