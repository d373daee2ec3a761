package main

import (
	"fmt"
	"sort"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/noisersup/sgl/models"
)

type app struct {
	demo        *demo
	refreshChan chan bool
}

func newApp(d *demo) *app {
	a := &app{demo: d, refreshChan: make(chan bool, 1)}
	d.update = a.refresh
	return a
}

// refresh never blocks the render loop; a pending refresh already covers
// this one.
func (a *app) refresh() {
	select {
	case a.refreshChan <- true:
	default:
	}
}

// waitForRefresh yields RefreshMsg(false) once the render loop has stopped.
func (a *app) waitForRefresh() tea.Cmd {
	return func() tea.Msg { return models.RefreshMsg(<-a.refreshChan) }
}

func (a *app) Init() tea.Cmd {
	return tea.Batch(tea.EnterAltScreen, a.waitForRefresh())
}

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "ctrl+c", "q":
			return a, tea.Quit
		case " ":
			a.demo.paused.Store(!a.demo.paused.Load())
		case "n":
			if a.demo.spin != nil && a.demo.paused.Load() {
				a.demo.spin.Step()
			}
		default:
			if runes := []rune(key); len(runes) == 1 && a.demo.view != nil {
				a.demo.view.HandleKey(runes[0])
			}
		}

	case models.RefreshMsg:
		if !msg {
			return a, tea.Quit
		}
		return a, a.waitForRefresh()
	}
	return a, nil
}

func (a *app) View() string {
	d := a.demo
	str := "DEBUGGER\n\n"
	str += fmt.Sprintf("SCENE: %s\n", d.cfg.Scene)
	str += fmt.Sprintf("MODE: %s\n", d.scene.Mode())
	str += fmt.Sprintf("FRAMES: %d\n", d.frames.Load())
	if d.spin != nil {
		str += fmt.Sprintf("PAUSED: %t\n", d.paused.Load())
	}

	str += "\nUNIFORMS"
	u := d.uniforms()
	names := make([]string, 0, len(u))
	for name := range u {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		str += fmt.Sprintf("\n%-9s= %.3f", name, u[name])
	}

	str += "\n\nATTRIBUTES"
	for _, st := range d.stats {
		str += fmt.Sprintf("\n%-9s itemSize=%d vertices=%d draws=%d indices=%d",
			st.Name, st.ItemSize, st.Vertices, st.DrawCalls, st.Indices)
	}

	str += "\n\n[q] quit"
	if d.spin != nil {
		str += "  [space] pause  [n] step"
	} else {
		str += "  [w a s d] pan  [+ -] zoom"
	}
	return str + "\n"
}
