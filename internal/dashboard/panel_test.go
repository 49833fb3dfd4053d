package dashboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-records-dashboard/internal/model"
)

type changeRecorder struct {
	states []model.FilterState
	open   []bool
	panel  *Panel
	watch  string
}

func (c *changeRecorder) onChange(_ context.Context, fs model.FilterState) {
	c.states = append(c.states, fs)
	if c.panel != nil && c.watch != "" {
		c.open = append(c.open, c.panel.IsOpen(c.watch))
	}
}

func newTestPanel() (*Panel, *Document, *changeRecorder) {
	doc := NewDocument()
	rec := &changeRecorder{}
	p := NewPanel(doc, rec.onChange)
	rec.panel = p
	p.Mount()
	return p, doc, rec
}

func TestPanel_SelectClosesBeforeNotifying(t *testing.T) {
	p, _, rec := newTestPanel()
	rec.watch = model.FilterTopic

	open, err := p.Toggle(model.FilterTopic)
	require.NoError(t, err)
	require.True(t, open)

	require.NoError(t, p.Select(context.Background(), model.FilterTopic, "oil"))
	require.Len(t, rec.states, 1)
	assert.Equal(t, "oil", rec.states[0].Topic)
	assert.Equal(t, []bool{false}, rec.open)
	assert.False(t, p.IsOpen(model.FilterTopic))
}

func TestPanel_SetTextNotifiesEveryChange(t *testing.T) {
	p, _, rec := newTestPanel()
	ctx := context.Background()

	require.NoError(t, p.SetText(ctx, model.FilterSearch, "o"))
	require.NoError(t, p.SetText(ctx, model.FilterSearch, "oi"))

	require.Len(t, rec.states, 2)
	assert.Equal(t, "oi", rec.states[1].Search)
	assert.Equal(t, "oi", p.Selected().Search)
}

func TestPanel_RejectsWrongFieldKinds(t *testing.T) {
	p, _, rec := newTestPanel()
	ctx := context.Background()

	assert.ErrorIs(t, p.SetText(ctx, model.FilterTopic, "x"), ErrNotTextField)
	assert.ErrorIs(t, p.SetText(ctx, "colour", "x"), model.ErrUnknownFilter)
	assert.ErrorIs(t, p.Select(ctx, model.FilterSearch, "x"), ErrNotDropdown)
	assert.ErrorIs(t, p.Select(ctx, "colour", "x"), model.ErrUnknownFilter)

	_, err := p.Toggle(model.FilterSearch)
	assert.ErrorIs(t, err, ErrNotDropdown)
	assert.Empty(t, rec.states)
}

func TestPanel_ResetNotifiesOnce(t *testing.T) {
	p, _, rec := newTestPanel()
	ctx := context.Background()
	require.NoError(t, p.Select(ctx, model.FilterRegion, "Asia"))
	require.NoError(t, p.SetText(ctx, model.FilterSearch, "oil"))

	p.Reset(ctx)

	require.Len(t, rec.states, 3)
	assert.Equal(t, model.FilterState{}, rec.states[2])
	assert.Equal(t, model.FilterState{}, p.Selected())
}

func TestPanel_OutsidePointerDownClosesDropdowns(t *testing.T) {
	p, doc, _ := newTestPanel()
	_, _ = p.Toggle(model.FilterTopic)
	_, _ = p.Toggle(model.FilterCountry)

	doc.PointerDown(model.FilterTopic)
	assert.True(t, p.IsOpen(model.FilterTopic))
	assert.False(t, p.IsOpen(model.FilterCountry))

	doc.PointerDown("")
	assert.False(t, p.IsOpen(model.FilterTopic))
}

func TestPanel_UnmountDetachesListeners(t *testing.T) {
	p, doc, _ := newTestPanel()
	assert.Equal(t, len(model.DropdownNames), mounted(doc))

	p.Mount()
	assert.Equal(t, len(model.DropdownNames), mounted(doc))

	p.Unmount()
	assert.Zero(t, mounted(doc))

	_, _ = p.Toggle(model.FilterTopic)
	doc.PointerDown("")
	assert.True(t, p.IsOpen(model.FilterTopic))
}

func TestPanel_DropdownsInSidebarOrder(t *testing.T) {
	p, _, _ := newTestPanel()
	p.SetOptions(model.FilterOptions{model.FilterPestle: {"Economic"}})
	require.NoError(t, p.Select(context.Background(), model.FilterPestle, "Economic"))

	views := p.Dropdowns()
	require.Len(t, views, len(model.DropdownNames))
	assert.Equal(t, model.FilterEndYear, views[0].Name)
	assert.Equal(t, "End Year", views[0].Label)
	assert.Equal(t, []string{}, views[0].Options)

	pestle := views[5]
	assert.Equal(t, "PESTLE", pestle.Label)
	assert.Equal(t, "Economic", pestle.Value)
	assert.Equal(t, []string{"Economic"}, pestle.Options)
}

// mounted counts the listeners on doc
func mounted(doc *Document) int {
	doc.mu.Lock()
	defer doc.mu.Unlock()
	return len(doc.listeners)
}
