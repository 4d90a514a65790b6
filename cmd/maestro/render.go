package main

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/maestro-cli/maestro/internal/orchestrator"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	warnColor = color.New(color.FgYellow)
	dimColor  = color.New(color.Faint)
)

// consumeEvents prints orchestrator events to stdout until the channel
// closes.
func consumeEvents(events <-chan orchestrator.Event) {
	for event := range events {
		switch event.Type {
		case orchestrator.EventPhaseStarted:
			fmt.Printf("\n=== %s ===\n", event.PhaseDescription)
		case orchestrator.EventPhaseCompleted:
			dimColor.Printf("--- %s done ---\n", event.PhaseDescription)
		case orchestrator.EventWorkerStarted:
			fmt.Printf("[START]  %s (%s)\n", event.Role, event.Capability)
		case orchestrator.EventWorkerCompleted:
			okColor.Printf("[DONE]   %s (%d tokens total)\n", event.Role, event.TokensUsed)
		case orchestrator.EventWorkerFailed:
			failColor.Printf("[FAILED] %s: %s\n", event.Role, event.Message)
		case orchestrator.EventBudgetWarning:
			warnColor.Printf("[BUDGET] %s\n", event.Message)
		case orchestrator.EventRunCompleted:
			okColor.Printf("\nRun %s completed (%d tokens)\n", event.RunID, event.TokensUsed)
		case orchestrator.EventRunAborted:
			failColor.Printf("\nRun %s aborted: %s\n", event.RunID, event.Message)
		}
	}
}
