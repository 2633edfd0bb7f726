package tray

import (
	"testing"
	"time"

	"roundtimer/internal/core/intervals"
	"roundtimer/internal/core/model"
	"roundtimer/resources"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeApp struct {
	menus []*fyne.Menu
	icons []fyne.Resource
}

func (app *fakeApp) SetSystemTrayMenu(menu *fyne.Menu) {
	app.menus = append(app.menus, menu)
}

func (app *fakeApp) SetSystemTrayIcon(icon fyne.Resource) {
	app.icons = append(app.icons, icon)
}

func (app *fakeApp) lastMenu(t *testing.T) *fyne.Menu {
	t.Helper()
	require.NotEmpty(t, app.menus)
	return app.menus[len(app.menus)-1]
}

func TestInitialMenu(t *testing.T) {
	app := &fakeApp{}
	New(app, Callbacks{})

	menu := app.lastMenu(t)
	assert.Equal(t, "Status: ready", menu.Items[0].Label)
	assert.True(t, menu.Items[0].Disabled)
	assert.Equal(t, "Start", menu.Items[2].Label)
	require.Len(t, app.icons, 1)
	assert.Equal(t, resources.MustIcon(resources.IconIdle).Name(), app.icons[0].Name())
}

func TestSetStateTogglesLabelAndIcon(t *testing.T) {
	app := &fakeApp{}
	manager := New(app, Callbacks{})

	manager.SetState(intervals.RunState{Phase: model.PhaseRest, Round: 2, TotalRounds: 3, Remaining: 5 * time.Second, Running: true})
	menu := app.lastMenu(t)
	assert.Equal(t, "Status: Rest 2/3", menu.Items[0].Label)
	assert.Equal(t, "Stop", menu.Items[2].Label)
	require.Len(t, app.icons, 2)
	assert.Equal(t, resources.MustIcon(resources.IconActive).Name(), app.icons[1].Name())

	menus := len(app.menus)
	manager.SetState(intervals.RunState{Phase: model.PhaseRest, Round: 2, TotalRounds: 3, Remaining: 4 * time.Second, Running: true})
	assert.Len(t, app.menus, menus)

	manager.SetState(intervals.RunState{})
	assert.Equal(t, "Start", app.lastMenu(t).Items[2].Label)
	assert.Len(t, app.icons, 3)
}

func TestMenuCallbacks(t *testing.T) {
	app := &fakeApp{}
	var toggled, quit, prefs, shown int
	New(app, Callbacks{
		OnShow:        func() { shown++ },
		OnPreferences: func() { prefs++ },
		OnToggle:      func() { toggled++ },
		OnQuit:        func() { quit++ },
	})

	menu := app.lastMenu(t)
	menu.Items[1].Action()
	menu.Items[2].Action()
	menu.Items[3].Action()
	menu.Items[5].Action()
	assert.Equal(t, 1, shown)
	assert.Equal(t, 1, toggled)
	assert.Equal(t, 1, prefs)
	assert.Equal(t, 1, quit)
}
