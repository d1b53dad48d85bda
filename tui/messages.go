package tui

import (
	"github.com/sidharthgehlot/TidyDesk/app"
	"github.com/sidharthgehlot/TidyDesk/internal"
	"github.com/sidharthgehlot/TidyDesk/pkg/scanner"
)

type scanDoneMsg struct {
	summary *scanner.Summary
}

type cleanDoneMsg struct {
	outcome *app.CleanOutcome
}

type restoreDoneMsg struct {
	result *internal.RestoreResult
	err    error
}

type errMsg error
