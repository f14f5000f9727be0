package tui

import (
	"github.com/MKhiriev/go-video-notes/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// RootModel drives the sign-in flow. It switches pages on [NavigateTo],
// quits with the session once a [LoginResult] succeeds and toggles the
// about overlay from the menu.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser bool
	session    models.LocalSession
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			r.quitByUser = true
			return r, tea.Quit
		}
		if r.showBuildInfo {
			// the overlay swallows keys until it is closed
			if s := msg.String(); s == "esc" || s == "v" {
				r.showBuildInfo = false
			}
			return r, nil
		}
		if msg.String() == "v" && r.onMenu() {
			r.showBuildInfo = true
			return r, nil
		}
	case NavigateTo:
		return r.navigate(msg)
	case LoginResult:
		if msg.Err == nil {
			r.session = msg.Session
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}
	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}
	r.current, r.showBuildInfo = next, false

	if nav.Payload != nil {
		payload := nav.Payload
		return r, func() tea.Msg { return payload }
	}
	return r, next.Init()
}

func (r RootModel) View() string {
	switch {
	case r.showBuildInfo:
		return renderAbout(r.buildInfo)
	case r.current == nil:
		return renderPage("VIDEO NOTES", "", "")
	default:
		return r.current.View()
	}
}

func (r RootModel) onMenu() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}
