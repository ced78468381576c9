// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tenantui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/databolt/tenantadmin/lib/notify"
	"github.com/databolt/tenantadmin/lib/tenant"
	"github.com/databolt/tenantadmin/lib/tenantstore"
	"github.com/databolt/tenantadmin/lib/tenantview"
	"github.com/databolt/tenantadmin/lib/tui"
)

// FocusRegion identifies where keyboard input routes.
type FocusRegion int

const (
	// FocusList means navigation keys move the table cursor.
	FocusList FocusRegion = iota
	// FocusFilter means keystrokes go to the search input.
	FocusFilter
	// FocusStatusDropdown means the status-filter dropdown is open
	// and captures all input until selection or dismissal.
	FocusStatusDropdown
	// FocusCreateForm means the create-tenant modal is open.
	FocusCreateForm
	// FocusConfirmDelete means the delete confirmation gate is open.
	// Deletion happens only after an explicit yes here.
	FocusConfirmDelete
	// FocusDetail means the tenant detail overlay is open.
	FocusDetail
	// FocusRequests means the session-requests panel has replaced
	// the table.
	FocusRequests
)

// toastExpireMsg auto-dismisses one toast after its TTL.
type toastExpireMsg struct {
	id string
}

// Model is the top-level bubbletea model for the tenant dashboard.
// It owns the store, the toast queue, and the filter/sort state; the
// presentation reads from them and dispatches discrete commands back.
type Model struct {
	store  *tenantstore.Store
	toasts *notify.Queue
	theme  tui.Theme
	keys   KeyMap

	// Terminal dimensions (set by WindowSizeMsg).
	width  int
	height int
	ready  bool

	// Filter and sort state feeding the view derivation.
	filter FilterModel
	sort   tenantview.SortConfig

	// view is the derived table: DeriveView over the store snapshot.
	// Recomputed whenever the store, query, status filter, or sort
	// changes — never cached across a mutation.
	view         []tenant.Tenant
	cursor       int
	scrollOffset int
	selectedID   string // Stable focus: track selection by tenant ID.

	focusRegion    FocusRegion
	statusDropdown *tui.Dropdown
	createForm     *CreateForm
	deleteGate     confirmDelete
	detailTenant   *tenant.Tenant
	requestsPanel  RequestsPanel

	// toastTTL is the auto-expiry delay; zero means dismissal only.
	toastTTL time.Duration
}

// NewModel creates the dashboard model over the given store, toast
// queue, and session request log.
func NewModel(store *tenantstore.Store, toasts *notify.Queue, requests []tenant.Request, initialSort tenantview.SortConfig, toastTTL time.Duration) Model {
	model := Model{
		store:         store,
		toasts:        toasts,
		theme:         tui.DefaultTheme,
		keys:          DefaultKeyMap,
		filter:        FilterModel{Status: tenant.FilterAll},
		sort:          initialSort,
		requestsPanel: NewRequestsPanel(requests),
		toastTTL:      toastTTL,
	}
	model.refreshView()
	if len(model.view) > 0 {
		model.selectedID = model.view[0].TenantID
	}
	return model
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. Focused overlays capture input first;
// everything else falls through to the list bindings.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.KeyMsg:
		switch model.focusRegion {
		case FocusFilter:
			return model.handleFilterKeys(message)
		case FocusStatusDropdown:
			return model.handleDropdownKeys(message)
		case FocusCreateForm:
			return model.handleCreateFormKeys(message)
		case FocusConfirmDelete:
			return model.handleConfirmKeys(message)
		case FocusDetail:
			return model.handleDetailKeys(message)
		case FocusRequests:
			return model.handleRequestsKeys(message)
		}
		return model.handleListKeys(message)

	case toastExpireMsg:
		model.toasts.Dismiss(message.id)

	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.ready = true
		model.ensureCursorVisible()
	}
	return model, nil
}

// pushToast appends a toast and schedules its auto-expiry.
func (model *Model) pushToast(kind notify.Kind, message string) tea.Cmd {
	id := model.toasts.Push(kind, message)
	if model.toastTTL <= 0 {
		return nil
	}
	return tea.Tick(model.toastTTL, func(time.Time) tea.Msg {
		return toastExpireMsg{id: id}
	})
}

// refreshView recomputes the derived table from the store snapshot
// and the current filter/sort state, then restores the selection.
func (model *Model) refreshView() {
	model.view = tenantview.DeriveView(
		model.store.List(), model.filter.Query, model.filter.Status, model.sort)
	model.restoreSelection()
	model.ensureCursorVisible()
}

// restoreSelection keeps the cursor on the same tenant across view
// recomputation. If the tenant left the view, the cursor clamps to
// the nearest valid row.
func (model *Model) restoreSelection() {
	for index, record := range model.view {
		if record.TenantID == model.selectedID {
			model.cursor = index
			return
		}
	}
	if model.cursor >= len(model.view) {
		model.cursor = len(model.view) - 1
	}
	if model.cursor < 0 {
		model.cursor = 0
	}
	if model.cursor < len(model.view) {
		model.selectedID = model.view[model.cursor].TenantID
	} else {
		model.selectedID = ""
	}
}

// selected returns the tenant under the cursor.
func (model *Model) selected() (tenant.Tenant, bool) {
	if model.cursor < 0 || model.cursor >= len(model.view) {
		return tenant.Tenant{}, false
	}
	return model.view[model.cursor], true
}

func (model *Model) moveCursor(delta int) {
	model.cursor += delta
	if model.cursor < 0 {
		model.cursor = 0
	}
	if model.cursor >= len(model.view) {
		model.cursor = len(model.view) - 1
	}
	if model.cursor >= 0 && model.cursor < len(model.view) {
		model.selectedID = model.view[model.cursor].TenantID
	}
	model.ensureCursorVisible()
}

// handleListKeys processes input while the table has focus.
func (model Model) handleListKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.Up):
		model.moveCursor(-1)

	case key.Matches(message, model.keys.Down):
		model.moveCursor(1)

	case key.Matches(message, model.keys.PageUp):
		model.moveCursor(-model.visibleHeight())

	case key.Matches(message, model.keys.PageDown):
		model.moveCursor(model.visibleHeight())

	case key.Matches(message, model.keys.Home):
		model.moveCursor(-len(model.view))

	case key.Matches(message, model.keys.End):
		model.moveCursor(len(model.view))

	case key.Matches(message, model.keys.SortName):
		model.toggleSort(tenantview.SortByDisplayName)

	case key.Matches(message, model.keys.SortID):
		model.toggleSort(tenantview.SortByTenantID)

	case key.Matches(message, model.keys.SortEmail):
		model.toggleSort(tenantview.SortByAdminEmail)

	case key.Matches(message, model.keys.SortStatus):
		model.toggleSort(tenantview.SortByStatus)

	case key.Matches(message, model.keys.SortCreated):
		model.toggleSort(tenantview.SortByCreated)

	case key.Matches(message, model.keys.FilterActivate):
		model.focusRegion = FocusFilter
		model.filter.Active = true
		model.cursor = 0
		model.scrollOffset = 0

	case key.Matches(message, model.keys.FilterClear):
		if model.filter.Query != "" {
			model.filter.Clear()
			model.refreshView()
		}

	case key.Matches(message, model.keys.StatusFilter):
		model.openStatusDropdown()

	case key.Matches(message, model.keys.Create):
		form := NewCreateForm()
		model.createForm = &form
		model.focusRegion = FocusCreateForm

	case key.Matches(message, model.keys.Delete):
		if record, ok := model.selected(); ok {
			model.deleteGate = confirmDelete{
				TenantID:    record.TenantID,
				DisplayName: record.TenantDisplayName,
			}
			model.focusRegion = FocusConfirmDelete
		}

	case key.Matches(message, model.keys.View):
		if record, ok := model.selected(); ok {
			model.detailTenant = &record
			model.focusRegion = FocusDetail
		}

	case key.Matches(message, model.keys.Requests):
		model.focusRegion = FocusRequests

	case key.Matches(message, model.keys.DismissToast):
		if toasts := model.toasts.List(); len(toasts) > 0 {
			model.toasts.Dismiss(toasts[0].ID)
		}
	}
	return model, nil
}

// toggleSort applies the column toggle rule and re-derives the view.
func (model *Model) toggleSort(columnKey string) {
	model.sort = model.sort.Toggle(columnKey)
	model.refreshView()
}

// handleFilterKeys routes input to the search field. The view is
// re-derived on every keystroke so the table narrows as the operator
// types.
func (model Model) handleFilterKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch message.Type {
	case tea.KeyEsc:
		model.filter.Clear()
		model.focusRegion = FocusList
		model.refreshView()

	case tea.KeyEnter:
		// Keep the query, return focus to the table.
		model.filter.Active = false
		model.focusRegion = FocusList

	case tea.KeyBackspace:
		if model.filter.HandleBackspace() {
			model.refreshView()
		}

	case tea.KeyRunes, tea.KeySpace:
		runes := message.Runes
		if message.Type == tea.KeySpace {
			runes = []rune{' '}
		}
		for _, character := range runes {
			model.filter.HandleRune(character)
		}
		model.cursor = 0
		model.scrollOffset = 0
		model.refreshView()
	}
	return model, nil
}

// openStatusDropdown opens the status-filter menu anchored under the
// status column header.
func (model *Model) openStatusDropdown() {
	options := []tui.DropdownOption{{Label: "All statuses", Value: tenant.FilterAll}}
	cursor := 0
	for index, status := range tenant.Statuses {
		options = append(options, tui.DropdownOption{
			Label: statusIcon(status) + " " + string(status),
			Value: string(status),
		})
		if string(status) == model.filter.Status {
			cursor = index + 1
		}
	}
	model.statusDropdown = &tui.Dropdown{
		Options: options,
		Cursor:  cursor,
		AnchorX: 2,
		AnchorY: contentStartY,
	}
	model.focusRegion = FocusStatusDropdown
}

func (model Model) handleDropdownKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.statusDropdown == nil {
		model.focusRegion = FocusList
		return model, nil
	}
	switch message.Type {
	case tea.KeyEsc:
		model.statusDropdown = nil
		model.focusRegion = FocusList

	case tea.KeyUp:
		model.statusDropdown.MoveUp()

	case tea.KeyDown:
		model.statusDropdown.MoveDown()

	case tea.KeyEnter:
		model.filter.Status = model.statusDropdown.Selected().Value
		model.statusDropdown = nil
		model.focusRegion = FocusList
		model.cursor = 0
		model.scrollOffset = 0
		model.refreshView()

	case tea.KeyRunes:
		switch string(message.Runes) {
		case "k":
			model.statusDropdown.MoveUp()
		case "j":
			model.statusDropdown.MoveDown()
		case "q":
			model.statusDropdown = nil
			model.focusRegion = FocusList
		}
	}
	return model, nil
}

// handleCreateFormKeys routes input to the create modal. A rejected
// submit keeps the form open with its values and shows the validation
// error inline; nothing reaches the store.
func (model Model) handleCreateFormKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	if model.createForm == nil {
		model.focusRegion = FocusList
		return model, nil
	}

	switch model.createForm.Update(message) {
	case formCancel:
		model.createForm = nil
		model.focusRegion = FocusList

	case formSubmit:
		request := model.createForm.Request()
		record, err := model.store.Create(request)
		if err != nil {
			model.createForm.SetError(err.Error())
			return model, nil
		}
		model.createForm = nil
		model.focusRegion = FocusList
		model.selectedID = record.TenantID
		model.refreshView()
		return model, model.pushToast(notify.Success,
			fmt.Sprintf("Tenant %q created successfully", record.TenantDisplayName))
	}
	return model, nil
}

// handleConfirmKeys resolves the delete gate. Only an explicit "y"
// deletes; everything else cancels with no state change.
func (model Model) handleConfirmKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	gate := model.deleteGate
	model.deleteGate = confirmDelete{}
	model.focusRegion = FocusList

	if message.Type == tea.KeyRunes && string(message.Runes) == "y" {
		if model.store.Remove(gate.TenantID) {
			model.refreshView()
			return model, model.pushToast(notify.Success, "Tenant deleted successfully")
		}
	}
	return model, nil
}

func (model Model) handleDetailKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.Type == tea.KeyEsc,
		message.Type == tea.KeyEnter,
		key.Matches(message, model.keys.Quit):
		model.detailTenant = nil
		model.focusRegion = FocusList
	}
	return model, nil
}

func (model Model) handleRequestsKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.Type == tea.KeyEsc,
		key.Matches(message, model.keys.Requests),
		key.Matches(message, model.keys.Quit):
		model.focusRegion = FocusList

	case key.Matches(message, model.keys.Up):
		model.requestsPanel.MoveUp()

	case key.Matches(message, model.keys.Down):
		model.requestsPanel.MoveDown()
	}
	return model, nil
}

// contentStartY is the Y coordinate of the table header line: stats
// line, search/status bar, and the result count above it.
const contentStartY = 3

// visibleHeight returns the number of table rows that fit between the
// chrome: stats, filter bar, count, header above; separator and help
// below.
func (model Model) visibleHeight() int {
	visible := model.height - contentStartY - 3
	if visible < 0 {
		visible = 0
	}
	return visible
}

// ensureCursorVisible adjusts scrollOffset so the cursor stays within
// the visible window.
func (model *Model) ensureCursorVisible() {
	visible := model.visibleHeight()
	if visible <= 0 {
		return
	}

	maxOffset := len(model.view) - visible
	if maxOffset < 0 {
		maxOffset = 0
	}
	if model.scrollOffset > maxOffset {
		model.scrollOffset = maxOffset
	}
	if model.cursor < model.scrollOffset {
		model.scrollOffset = model.cursor
	}
	if model.cursor >= model.scrollOffset+visible {
		model.scrollOffset = model.cursor - visible + 1
	}
	if model.scrollOffset < 0 {
		model.scrollOffset = 0
	}
}

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	var sections []string

	sections = append(sections,
		renderStatsCards(model.theme, model.store.Stats(), model.width))

	if model.focusRegion == FocusRequests {
		// The requests panel replaces the table area entirely.
		panelHeight := model.height - 3
		sections = append(sections,
			model.filter.View(model.theme, model.width),
			model.requestsPanel.View(model.theme, model.width, panelHeight),
			model.renderHelp())
		return strings.Join(sections, "\n")
	}

	sections = append(sections, model.filter.View(model.theme, model.width))
	sections = append(sections, model.renderResultCount())
	sections = append(sections, model.renderTable())

	separator := lipgloss.NewStyle().
		Foreground(model.theme.BorderColor).
		Render(strings.Repeat("─", model.width))
	sections = append(sections, separator, model.renderHelp())

	output := strings.Join(sections, "\n")

	// Overlays, innermost last so the active one paints on top.
	if model.statusDropdown != nil {
		output = tui.SpliceOverlay(output,
			model.statusDropdown.Render(model.theme),
			model.statusDropdown.AnchorX, model.statusDropdown.AnchorY)
	}
	if model.createForm != nil {
		lines, anchorX, anchorY := model.createForm.Render(model.theme, model.width, model.height)
		output = tui.SpliceOverlay(output, lines, anchorX, anchorY)
	}
	if model.detailTenant != nil {
		lines, anchorX, anchorY := renderTenantDetail(model.theme, *model.detailTenant, model.width, model.height)
		output = tui.SpliceOverlay(output, lines, anchorX, anchorY)
	}
	if model.focusRegion == FocusConfirmDelete {
		lines, anchorX, anchorY := renderConfirmDelete(model.theme, model.deleteGate, model.width, model.height)
		output = tui.SpliceOverlay(output, lines, anchorX, anchorY)
	}
	if toastLines, anchorX := renderToastStack(model.theme, model.toasts.List(), model.width); len(toastLines) > 0 {
		output = tui.SpliceOverlay(output, toastLines, anchorX, 1)
	}

	return output
}

// renderResultCount renders the "N of M tenants" line.
func (model Model) renderResultCount() string {
	total := model.store.Len()
	text := fmt.Sprintf(" %d total tenants", total)
	if len(model.view) != total {
		text = fmt.Sprintf(" %d of %d tenants", len(model.view), total)
	}
	return lipgloss.NewStyle().
		Foreground(model.theme.FaintText).
		Width(model.width).
		Render(text)
}

// renderTable renders the column header and the visible rows.
func (model Model) renderTable() string {
	renderer := NewListRenderer(model.theme, model.width)

	rows := []string{renderer.RenderHeader(model.sort)}

	visible := model.visibleHeight()
	for index := model.scrollOffset; index < model.scrollOffset+visible && index < len(model.view); index++ {
		rows = append(rows, renderer.RenderRow(model.view[index], index == model.cursor))
	}

	// Pad so the separator and help bar stay pinned to the bottom.
	for len(rows) < visible+1 {
		rows = append(rows, lipgloss.NewStyle().Width(model.width).Render(""))
	}

	if len(model.view) == 0 {
		empty := " No tenants match the current filters."
		if model.store.Len() == 0 {
			empty = " No tenants yet — press c to create one."
		}
		rows[1] = lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Width(model.width).
			Render(empty)
	}

	return strings.Join(rows, "\n")
}

// renderHelp renders the context-sensitive key hint bar.
func (model Model) renderHelp() string {
	var hints []string
	switch model.focusRegion {
	case FocusFilter:
		hints = []string{"type to search", "Enter keep", "Esc clear"}
	case FocusStatusDropdown:
		hints = []string{"j/k move", "Enter select", "Esc close"}
	case FocusCreateForm:
		hints = []string{"Tab next field", "Space toggle product", "Ctrl+S create", "Esc cancel"}
	case FocusConfirmDelete:
		hints = []string{"y delete", "n cancel"}
	case FocusDetail:
		hints = []string{"Esc close"}
	case FocusRequests:
		hints = []string{"j/k move", "Esc back"}
	default:
		hints = []string{"j/k move", "/ search", "s status", "1-5 sort",
			"c create", "d delete", "Enter view", "r requests", "q quit"}
	}
	return lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Width(model.width).
		MaxWidth(model.width).
		Render(" " + strings.Join(hints, " · "))
}
