package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-video-notes/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	minLoginLength    = 3
	minPasswordLength = 6
	maxPasswordLength = 72 // bcrypt input limit
)

// authForm is the field list shared by the login and register pages.
type authForm struct {
	title   string
	action  string
	pending string
	labels  []string
	inputs  []textinput.Model

	focus      int
	submitting bool
	errMsg     string
}

func newAuthForm(title, action, pending string) authForm {
	return authForm{title: title, action: action, pending: pending}
}

func (f *authForm) addField(label, placeholder string, secret bool) {
	in := newInput(placeholder, 40)
	if secret {
		in.CharLimit = maxPasswordLength
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	} else {
		in.CharLimit = 64
	}
	if len(f.inputs) == 0 {
		in.Focus()
	}
	f.labels = append(f.labels, label)
	f.inputs = append(f.inputs, in)
}

func (f *authForm) value(i int) string { return f.inputs[i].Value() }

func (f *authForm) trimmed(i int) string { return strings.TrimSpace(f.inputs[i].Value()) }

// update handles the keys common to both pages. submit is called on enter
// and returns either a validation message or the command to run.
func (f *authForm) update(msg tea.Msg, submit func() (string, tea.Cmd)) tea.Cmd {
	switch msg := msg.(type) {
	case LoginResult:
		f.submitting = false
		if msg.Err != nil {
			f.errMsg = humanizeError(msg.Err)
		}
		return nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			f.reset()
			return func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case msg.Type == tea.KeyTab, msg.Type == tea.KeyDown:
			f.focus = focusNext(f.inputs, f.focus)
			return nil
		case msg.Type == tea.KeyShiftTab, msg.Type == tea.KeyUp:
			f.focus = focusPrev(f.inputs, f.focus)
			return nil
		case key.Matches(msg, keys.enter):
			if f.submitting {
				return nil
			}
			problem, cmd := submit()
			if problem != "" {
				f.errMsg = problem
				return nil
			}
			f.errMsg, f.submitting = "", true
			return cmd
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *authForm) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[0].Focus()
	f.submitting = false
	f.errMsg = ""
}

func (f *authForm) view() string {
	var b strings.Builder
	for i, label := range f.labels {
		b.WriteString(padRight(label, 9))
		b.WriteString(" │ ")
		b.WriteString(f.inputs[i].View())
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	if f.submitting {
		b.WriteString(warnStyle.Render(f.pending))
	} else {
		b.WriteString("[" + f.action + "]")
	}
	if f.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render("Error: " + f.errMsg))
	}

	return renderPage(f.title, b.String(), "esc: back │ tab: next field │ enter: submit")
}

// authCmd runs one login or registration call off the update loop.
func authCmd(ctx context.Context, call func(context.Context, models.User) (models.LocalSession, error), user models.User) tea.Cmd {
	return func() tea.Msg {
		session, err := call(ctx, user)
		return LoginResult{Err: err, Session: session}
	}
}
