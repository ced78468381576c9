// Copyright 2026 Databolt, Inc.
// SPDX-License-Identifier: Apache-2.0

package tenantui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/databolt/tenantadmin/lib/tenant"
	"github.com/databolt/tenantadmin/lib/tui"
)

// Indices into CreateForm.fields.
const (
	fieldDisplayName = iota
	fieldCustomerName
	fieldAdminEmail
	fieldFirstName
	fieldLastName
	fieldCount
)

// formContentWidth is the inner width of the create modal.
const formContentWidth = 52

// CreateForm is the modal for provisioning a new tenant. It owns the
// text fields and the product checklist; validation happens in the
// store on submit, and a rejected submit keeps every entered value so
// the operator can fix the problem in place.
type CreateForm struct {
	fields   [fieldCount]tui.TextField
	selected []bool // Parallel to tenant.Products.

	// focus walks the fields first, then the product rows. Values in
	// [0, fieldCount) address fields; [fieldCount, fieldCount+products)
	// address the checklist.
	focus int

	// errorText is the inline validation message from the last
	// rejected submit. Cleared on any edit.
	errorText string
}

// NewCreateForm creates an empty form with focus on the first field.
func NewCreateForm() CreateForm {
	var form CreateForm
	form.selected = make([]bool, len(tenant.Products))
	form.fields[fieldDisplayName] = tui.NewTextField("Display name")
	form.fields[fieldCustomerName] = tui.NewTextField("Customer name")
	form.fields[fieldAdminEmail] = tui.NewTextField("Admin email")
	form.fields[fieldFirstName] = tui.NewTextField("Admin first name")
	form.fields[fieldLastName] = tui.NewTextField("Admin last name")
	return form
}

// Request assembles the creation request from the current form state.
func (form *CreateForm) Request() tenant.NewTenantRequest {
	var products []string
	for index, product := range tenant.Products {
		if form.selected[index] {
			products = append(products, product)
		}
	}
	return tenant.NewTenantRequest{
		TenantDisplayName: strings.TrimSpace(form.fields[fieldDisplayName].Value()),
		CustomerName:      strings.TrimSpace(form.fields[fieldCustomerName].Value()),
		AdminEmail:        strings.TrimSpace(form.fields[fieldAdminEmail].Value()),
		AdminFirstName:    strings.TrimSpace(form.fields[fieldFirstName].Value()),
		AdminLastName:     strings.TrimSpace(form.fields[fieldLastName].Value()),
		Products:          products,
	}
}

// SetError records a validation message for inline display. The form
// stays open with its values intact.
func (form *CreateForm) SetError(message string) {
	form.errorText = message
}

// formAction is what the owning model should do after a key message.
type formAction int

const (
	formContinue formAction = iota
	formSubmit
	formCancel
)

// Update processes one key message and reports whether the operator
// submitted, cancelled, or is still editing.
func (form *CreateForm) Update(message tea.KeyMsg) formAction {
	switch message.Type {
	case tea.KeyEsc:
		return formCancel

	case tea.KeyCtrlS:
		return formSubmit

	case tea.KeyEnter:
		// Enter on the last checklist row submits; elsewhere it
		// advances, so filling the form top to bottom feels natural.
		if form.focus == fieldCount+len(tenant.Products)-1 {
			return formSubmit
		}
		form.moveFocus(1)
		return formContinue

	case tea.KeyTab, tea.KeyDown:
		form.moveFocus(1)
		return formContinue

	case tea.KeyShiftTab, tea.KeyUp:
		form.moveFocus(-1)
		return formContinue
	}

	if form.focus < fieldCount {
		form.errorText = ""
		form.fields[form.focus].Update(message)
		return formContinue
	}

	// Product checklist: space toggles the focused product.
	if message.Type == tea.KeySpace {
		form.errorText = ""
		form.selected[form.focus-fieldCount] = !form.selected[form.focus-fieldCount]
	}
	return formContinue
}

func (form *CreateForm) moveFocus(delta int) {
	total := fieldCount + len(tenant.Products)
	form.focus = (form.focus + delta + total) % total
}

// Render produces the modal lines and its centered anchor position.
func (form *CreateForm) Render(theme tui.Theme, screenWidth, screenHeight int) (lines []string, anchorX, anchorY int) {
	titleStyle := lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Bold(true)
	faint := lipgloss.NewStyle().Foreground(theme.FaintText)
	errorStyle := lipgloss.NewStyle().Foreground(theme.ToastError)

	var body []string
	body = append(body, titleStyle.Render("Create Tenant"), "")

	for index := range form.fields {
		body = append(body, form.fields[index].View(theme, formContentWidth, form.focus == index))
	}

	body = append(body, "", faint.Render("Products (space to toggle):"))
	for index, product := range tenant.Products {
		marker := "[ ]"
		if form.selected[index] {
			marker = "[x]"
		}
		row := "  " + marker + " " + product
		style := lipgloss.NewStyle().Foreground(theme.NormalText)
		if form.focus == fieldCount+index {
			style = lipgloss.NewStyle().
				Foreground(theme.SelectedForeground).
				Background(theme.SelectedBackground)
		}
		body = append(body, style.Render(pad(row, formContentWidth)))
	}

	body = append(body, "")
	if form.errorText != "" {
		body = append(body, errorStyle.Render(pad(form.errorText, formContentWidth)))
	}
	body = append(body, faint.Render("Enter/Tab next · Ctrl+S create · Esc cancel"))

	boxed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.BorderColor).
		Padding(0, 1).
		Render(strings.Join(body, "\n"))

	lines = strings.Split(boxed, "\n")
	anchorX, anchorY = tui.CenterAnchor(screenWidth, screenHeight,
		lipgloss.Width(boxed), len(lines))
	return lines, anchorX, anchorY
}
