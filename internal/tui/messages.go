package tui

import (
	"github.com/mvoronin/clinic-sync/models"
)

type probeDoneMsg struct {
	online bool
	hasPIN bool
}

type authDoneMsg struct {
	token models.Token
}

type pinVerifiedMsg struct {
	err error
}

type pinSavedMsg struct {
	err error
}

type listLoadedMsg struct {
	records []models.Record
	pending int
	online  bool
	err     error
}

type recordSavedMsg struct {
	err error
}

type recordDeletedMsg struct {
	err error
}

type syncDoneMsg struct {
	report models.SyncReport
	err    error
}

type conflictPromptMsg struct {
	prompt models.ConflictPrompt
}

type copiedMsg struct{}

type clearStatusMsg struct{}
