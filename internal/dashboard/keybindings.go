package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeyToggleTheme = "t"
	KeyToggleAll   = "a"
	KeyRefresh     = "r"
	KeySelectPrev  = "up"
	KeySelectPrevK = "k"
	KeySelectNext  = "down"
	KeySelectNextJ = "j"
	KeySelectFirst = "home"
	KeySelectLast  = "end"
	KeyKill        = "x"
	KeyConfirm     = "y"
	KeyCancel      = "n"
	KeyCollapse    = "esc"
	KeyToggleHelp  = "?"
)

// HandleKeyMsg processes keyboard input and returns updated model state and command.
// Returns true if the key was handled, false otherwise.
func (m *Model) HandleKeyMsg(msg tea.KeyMsg) (bool, tea.Cmd) {
	key := msg.String()

	if key == KeyQuitAlt {
		m.quitting = true
		return true, tea.Quit
	}

	// A pending kill confirmation swallows every other key.
	if m.confirming {
		switch key {
		case KeyConfirm:
			m.confirming = false
			m.status = "terminating " + m.target.Name + "..."
			return true, m.killCmd(m.target.PID)
		case KeyCancel, KeyCollapse, KeyQuit:
			m.confirming = false
			return true, nil
		}
		return true, nil
	}

	if key == KeyToggleHelp {
		m.showHelp = !m.showHelp
		return true, nil
	}
	if m.showHelp && key == KeyCollapse {
		m.showHelp = false
		return true, nil
	}

	switch key {
	case KeyQuit:
		m.quitting = true
		return true, tea.Quit

	case KeyToggleTheme:
		m.styles = NewStyles(m.engine.ToggleTheme())
		return true, nil

	case KeyToggleAll:
		m.engine.ToggleShowAll()
		m.clampSelection()
		return true, nil

	case KeyRefresh:
		if m.refreshing {
			return true, nil
		}
		m.refreshing = true
		return true, m.refreshCmd()

	case KeySelectPrev, KeySelectPrevK:
		if m.selected > 0 {
			m.selected--
		}
		return true, nil

	case KeySelectNext, KeySelectNextJ:
		if m.selected < len(m.engine.Processes())-1 {
			m.selected++
		}
		return true, nil

	case KeySelectFirst:
		m.selected = 0
		return true, nil

	case KeySelectLast:
		m.selected = len(m.engine.Processes()) - 1
		m.clampSelection()
		return true, nil

	case KeyKill:
		if proc, ok := m.SelectedProcess(); ok {
			m.target = proc
			m.confirming = true
		}
		return true, nil
	}

	return false, nil
}
