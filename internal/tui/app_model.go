package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvoronin/clinic-sync/internal/service"
	"github.com/mvoronin/clinic-sync/models"
)

type screen int

const (
	screenProbe screen = iota
	screenWelcome
	screenLogin
	screenRegister
	screenPINUnlock
	screenPINSetup
	screenCollections
	screenList
	screenDetail
	screenForm
)

type appMode int

const (
	modeLogin appMode = iota
	modeMain
)

type appModel struct {
	ctx           context.Context
	services      *service.ClientServices
	mode          appMode
	currentScreen screen

	welcome     welcomeModel
	login       loginModel
	register    registerModel
	pin         pinModel
	collections collectionsModel
	list        listModel
	detail      detailModel
	form        formModel

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	pendingDelete string
	showConflict  bool
	conflict      conflictModel
	logout        bool
}

func newLoginAppModel(ctx context.Context, services *service.ClientServices) appModel {
	return appModel{
		ctx:           ctx,
		services:      services,
		mode:          modeLogin,
		currentScreen: screenProbe,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		collections:   newCollectionsModel(),
		list:          newListModel(),
	}
}

func newMainAppModel(ctx context.Context, services *service.ClientServices) appModel {
	m := newLoginAppModel(ctx, services)
	m.mode = modeMain
	m.currentScreen = screenCollections
	return m
}

func (m appModel) Init() tea.Cmd {
	if m.mode == modeMain {
		return tea.Batch(m.cmdRefreshStatus(), m.cmdWaitConflict())
	}
	return m.cmdProbe()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConflict {
			return m.updateConflict(msg)
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.pendingDelete == "" {
					return m, nil
				}
				return m, m.cmdDeleteRecord(m.list.collection, m.pendingDelete)
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = ""
			}
			return m, nil
		}
	case probeDoneMsg:
		return m.applyProbe(msg)
	case authDoneMsg:
		if m.services.AuthService.HasPIN(m.ctx) {
			return m, tea.Quit
		}
		m.pin = newPINModel(pinModeSetup)
		m.currentScreen = screenPINSetup
		return m, nil
	case pinVerifiedMsg:
		m.pin.submitting = false
		if msg.err != nil {
			m.showErrorf("Wrong PIN")
			return m, nil
		}
		return m, tea.Quit
	case pinSavedMsg:
		m.pin.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		return m, tea.Quit
	case listLoadedMsg:
		m.list.loading = false
		m.list.online = msg.online
		m.list.pending = msg.pending
		m.collections.online = msg.online
		m.collections.pending = msg.pending
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.list.records = msg.records
		if m.list.idx >= len(m.list.records) {
			m.list.idx = len(m.list.records) - 1
		}
		if m.list.idx < 0 {
			m.list.idx = 0
		}
		return m, nil
	case syncDoneMsg:
		return m.applySyncDone(msg)
	case conflictPromptMsg:
		m.showConflict = true
		m.conflict = conflictModel{prompt: msg.prompt}
		return m, nil
	case recordSavedMsg:
		m.form.submitting = false
		m.login.submitting = false
		m.register.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		if m.mode == modeLogin {
			return m, nil
		}
		m.currentScreen = screenList
		m.list.loading = true
		return m, m.cmdLoadList(m.list.collection)
	case recordDeletedMsg:
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.pendingDelete = ""
		m.currentScreen = screenList
		m.list.loading = true
		return m, m.cmdLoadList(m.list.collection)
	case copiedMsg:
		if m.currentScreen == screenDetail {
			m.detail.status = "Copied!"
		}
		m.list.status = "Copied!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenPINUnlock, screenPINSetup:
		return m.updatePIN(msg)
	case screenCollections:
		return m.updateCollections(msg)
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenForm:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenProbe:
		body = "checking server..."
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenPINUnlock, screenPINSetup:
		body = m.pin.View()
	case screenCollections:
		body = m.collections.View()
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenForm:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showConflict {
		body += "\n\n" + m.conflict.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m appModel) applyProbe(msg probeDoneMsg) (tea.Model, tea.Cmd) {
	if msg.online {
		m.currentScreen = screenWelcome
		return m, nil
	}
	if msg.hasPIN {
		m.pin = newPINModel(pinModeUnlock)
		m.currentScreen = screenPINUnlock
		return m, nil
	}
	m.err = ErrNoOfflineAccess
	return m, tea.Quit
}

func (m appModel) applySyncDone(msg syncDoneMsg) (tea.Model, tea.Cmd) {
	m.list.syncing = false
	switch {
	case errors.Is(msg.err, service.ErrOffline):
		m.list.status = "Server unreachable, changes will sync later"
	case errors.Is(msg.err, service.ErrSyncInProgress):
		// another run is already working, nothing to report
	case msg.err != nil:
		m.showErrorf(msg.err.Error())
	default:
		m.list.status = fmt.Sprintf("Synced: %d pulled, %d pushed, %d conflicts",
			msg.report.Pulled, msg.report.Pushed, msg.report.Conflicts)
		if len(msg.report.Errors) > 0 {
			m.showErrorf(fmt.Sprintf("%d change(s) rejected: %s",
				len(msg.report.Errors), msg.report.Errors[0]))
		}
	}

	cmds := []tea.Cmd{cmdClearStatus()}
	if m.currentScreen == screenList {
		cmds = append(cmds, m.cmdLoadList(m.list.collection))
	} else {
		cmds = append(cmds, m.cmdRefreshStatus())
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) updateConflict(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var choice models.Resolution
	switch {
	case key.Matches(keyMsg, keys.client):
		choice = models.ResolutionClient
	case key.Matches(keyMsg, keys.server), key.Matches(keyMsg, keys.esc):
		choice = models.ResolutionServer
	default:
		return m, nil
	}

	reply := m.conflict.prompt.Reply
	m.showConflict = false
	return m, tea.Batch(
		func() tea.Msg {
			reply <- choice
			return nil
		},
		m.cmdWaitConflict(),
	)
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNext(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusPrev(m.login)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			login := m.login.inputs[0].Value()
			pass := m.login.inputs[1].Value()
			if login == "" || pass == "" {
				m.showErrorf("Login and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(models.User{Login: login, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusPrevRegister(m.register)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			login := m.register.inputs[0].Value()
			pass := m.register.inputs[1].Value()
			repeat := m.register.inputs[2].Value()
			if login == "" || pass == "" {
				m.showErrorf("Login and password are required")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegisterAndLogin(models.User{Login: login, Password: pass})
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updatePIN(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.currentScreen == screenPINSetup {
				// setting a PIN is optional, skipping just ends the flow
				return m, tea.Quit
			}
			m.err = ErrUserQuit
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			pin := m.pin.input.Value()
			if pin == "" {
				return m, nil
			}
			m.pin.submitting = true
			if m.currentScreen == screenPINSetup {
				return m, m.cmdSetPIN(pin)
			}
			return m, m.cmdUnlockOffline(pin)
		}
	}

	var cmd tea.Cmd
	m.pin.input, cmd = m.pin.input.Update(msg)
	return m, cmd
}

func (m appModel) updateCollections(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.collections.idx > 0 {
			m.collections.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.collections.idx < len(models.Collections)-1 {
			m.collections.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		m.list = newListModel()
		m.list.collection = m.collections.current()
		m.list.loading = true
		m.currentScreen = screenList
		return m, m.cmdLoadList(m.list.collection)
	case key.Matches(keyMsg, keys.sync):
		return m, m.cmdSyncAll()
	case key.Matches(keyMsg, keys.logout):
		m.logout = true
		return m, tea.Quit
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.up):
			if m.list.idx > 0 {
				m.list.idx--
			}
		case key.Matches(msg, keys.down):
			if m.list.idx < len(m.list.records)-1 {
				m.list.idx++
			}
		case key.Matches(msg, keys.enter):
			record, ok := m.list.current()
			if !ok {
				return m, nil
			}
			m.detail = detailModel{record: record}
			m.currentScreen = screenDetail
		case key.Matches(msg, keys.newItem):
			m.form = newFormModel(m.list.collection, nil)
			m.currentScreen = screenForm
		case key.Matches(msg, keys.sync):
			if m.list.syncing {
				return m, nil
			}
			m.list.syncing = true
			return m, tea.Batch(m.list.spinner.Tick, m.cmdSyncCollection(m.list.collection))
		case key.Matches(msg, keys.esc):
			m.currentScreen = screenCollections
			return m, m.cmdRefreshStatus()
		case key.Matches(msg, keys.quit):
			return m, tea.Quit
		case key.Matches(msg, keys.logout):
			m.logout = true
			return m, tea.Quit
		}
	case spinner.TickMsg:
		if m.list.syncing {
			var cmd tea.Cmd
			m.list.spinner, cmd = m.list.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
		return m, nil
	case key.Matches(keyMsg, keys.edit):
		record := m.detail.record
		m.form = newFormModel(record.Collection, &record)
		m.currentScreen = screenForm
		return m, nil
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = summaryLine(m.detail.record.Collection, m.detail.record)
		m.pendingDelete = m.detail.record.LocalID
		return m, nil
	case key.Matches(keyMsg, keys.copy):
		text, ok := copyValue(m.detail.record)
		if !ok {
			return m, nil
		}
		return m, cmdCopyToClipboard(text)
	}

	return m, nil
}

func (m appModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			if m.form.editing {
				m.currentScreen = screenDetail
			} else {
				m.currentScreen = screenList
			}
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.form = focusNextForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form = focusPrevForm(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			m.form.submitting = true
			fields := m.form.toFields()
			if m.form.editing {
				return m, m.cmdUpdateRecord(m.form.collection, m.form.localID, fields)
			}
			return m, m.cmdCreateRecord(m.form.collection, fields)
		}
	}

	var cmd tea.Cmd
	m.form.inputs[m.form.focus], cmd = m.form.inputs[m.form.focus].Update(msg)
	return m, cmd
}

// ---- commands ----

func (m appModel) cmdProbe() tea.Cmd {
	ctx := m.ctx
	monitor := m.services.NetworkMonitor
	auth := m.services.AuthService
	return func() tea.Msg {
		return probeDoneMsg{online: monitor.IsOnline(ctx), hasPIN: auth.HasPIN(ctx)}
	}
}

func (m appModel) cmdLogin(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		token, err := auth.Login(ctx, user)
		if err != nil {
			return recordSavedMsg{err: err}
		}
		return authDoneMsg{token: token}
	}
}

func (m appModel) cmdRegisterAndLogin(user models.User) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		if err := auth.Register(ctx, user); err != nil {
			return recordSavedMsg{err: err}
		}
		token, err := auth.Login(ctx, user)
		if err != nil {
			return recordSavedMsg{err: err}
		}
		return authDoneMsg{token: token}
	}
}

func (m appModel) cmdSetPIN(pin string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return pinSavedMsg{err: auth.SetPIN(ctx, pin)}
	}
}

func (m appModel) cmdUnlockOffline(pin string) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService
	return func() tea.Msg {
		return pinVerifiedMsg{err: auth.UnlockOffline(ctx, pin)}
	}
}

func (m appModel) cmdLoadList(collection models.Collection) tea.Cmd {
	ctx := m.ctx
	records := m.services.RecordService
	monitor := m.services.NetworkMonitor
	return func() tea.Msg {
		items, err := records.List(ctx, collection)
		pending, _ := records.PendingCount(ctx)
		return listLoadedMsg{records: items, pending: pending, online: monitor.LastKnown(), err: err}
	}
}

// cmdRefreshStatus reloads the status bar counters without touching any
// particular collection.
func (m appModel) cmdRefreshStatus() tea.Cmd {
	ctx := m.ctx
	records := m.services.RecordService
	monitor := m.services.NetworkMonitor
	return func() tea.Msg {
		pending, err := records.PendingCount(ctx)
		return listLoadedMsg{pending: pending, online: monitor.LastKnown(), err: err}
	}
}

func (m appModel) cmdSyncCollection(collection models.Collection) tea.Cmd {
	ctx := m.ctx
	syncSvc := m.services.SyncService
	return func() tea.Msg {
		report, err := syncSvc.SyncCollection(ctx, collection)
		return syncDoneMsg{report: report, err: err}
	}
}

func (m appModel) cmdSyncAll() tea.Cmd {
	ctx := m.ctx
	syncSvc := m.services.SyncService
	return func() tea.Msg {
		report, err := syncSvc.SyncAll(ctx)
		return syncDoneMsg{report: report, err: err}
	}
}

func (m appModel) cmdCreateRecord(collection models.Collection, fields models.FieldMap) tea.Cmd {
	ctx := m.ctx
	records := m.services.RecordService
	return func() tea.Msg {
		_, err := records.Create(ctx, collection, fields)
		return recordSavedMsg{err: err}
	}
}

func (m appModel) cmdUpdateRecord(collection models.Collection, localID string, fields models.FieldMap) tea.Cmd {
	ctx := m.ctx
	records := m.services.RecordService
	return func() tea.Msg {
		_, err := records.Update(ctx, collection, localID, fields)
		return recordSavedMsg{err: err}
	}
}

func (m appModel) cmdDeleteRecord(collection models.Collection, localID string) tea.Cmd {
	ctx := m.ctx
	records := m.services.RecordService
	return func() tea.Msg {
		return recordDeletedMsg{err: records.Delete(ctx, collection, localID)}
	}
}

// cmdWaitConflict blocks on the resolver's prompt channel so conflicts
// surfaced by a background sync run interrupt whatever screen is open. The
// command is re-armed after every answered prompt.
func (m appModel) cmdWaitConflict() tea.Cmd {
	ctx := m.ctx
	prompts := m.services.Resolver.Prompts()
	return func() tea.Msg {
		select {
		case prompt, ok := <-prompts:
			if !ok {
				return nil
			}
			return conflictPromptMsg{prompt: prompt}
		case <-ctx.Done():
			return nil
		}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return recordSavedMsg{err: fmt.Errorf("copy to clipboard: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// copyValue picks the record's leading field, e.g. the member ID of an
// insurance card, as the value copied by the c key.
func copyValue(record models.Record) (string, bool) {
	fields := formSchemas[record.Collection]
	if len(fields) == 0 {
		return "", false
	}
	for _, field := range fields {
		if value := record.Fields[field]; value != "" {
			return value, true
		}
	}
	return "", false
}

func focusNext(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrev(m loginModel) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevRegister(m registerModel) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextForm(m formModel) formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusPrevForm(m formModel) formModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus - 1 + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}
