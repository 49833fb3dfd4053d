package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go-records-dashboard/internal/model"
)

var (
	// ErrNotDropdown is returned when a dropdown operation names a non-dropdown filter
	ErrNotDropdown = errors.New("not a dropdown filter")
	// ErrNotTextField is returned when a text operation names a dropdown
	ErrNotTextField = errors.New("not a text filter")
)

// dropdownLabels are the sidebar captions
var dropdownLabels = map[string]string{
	model.FilterEndYear: "End Year",
	model.FilterTopic:   "Topic",
	model.FilterSector:  "Sector",
	model.FilterRegion:  "Region",
	model.FilterCountry: "Country",
	model.FilterPestle:  "PESTLE",
	model.FilterSource:  "Source",
}

// ------------------- Document -------------------

// Document fans pointer-down events out to mounted listeners
type Document struct {
	mu        sync.Mutex
	listeners map[int]func(target string)
	next      int
}

// NewDocument creates a document with no listeners
func NewDocument() *Document {
	return &Document{listeners: make(map[int]func(string))}
}

// AddPointerDownListener registers fn and returns the func that removes it
func (d *Document) AddPointerDownListener(fn func(target string)) func() {
	d.mu.Lock()
	id := d.next
	d.next++
	d.listeners[id] = fn
	d.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			delete(d.listeners, id)
			d.mu.Unlock()
		})
	}
}

// PointerDown dispatches a pointer-down inside the element named target;
// "" means outside every known element.
func (d *Document) PointerDown(target string) {
	d.mu.Lock()
	fns := make([]func(string), 0, len(d.listeners))
	for _, fn := range d.listeners {
		fns = append(fns, fn)
	}
	d.mu.Unlock()

	for _, fn := range fns {
		fn(target)
	}
}

// ------------------- Dropdown -------------------

type dropdown struct {
	name    string
	open    bool
	unmount func()
}

// DropdownView is the render state of one dropdown
type DropdownView struct {
	Name    string   `json:"name"`
	Label   string   `json:"label"`
	Value   string   `json:"value"`
	Open    bool     `json:"open"`
	Options []string `json:"options"`
}

// ------------------- Panel -------------------

// ChangeFunc receives the full filter state after every change
type ChangeFunc func(ctx context.Context, filters model.FilterState)

// Panel is the sidebar: a search box plus seven dropdowns
type Panel struct {
	mu        sync.Mutex
	doc       *Document
	selected  model.FilterState
	options   model.FilterOptions
	dropdowns map[string]*dropdown
	onChange  ChangeFunc
}

// NewPanel creates an unmounted panel
func NewPanel(doc *Document, onChange ChangeFunc) *Panel {
	p := &Panel{
		doc:       doc,
		options:   model.FilterOptions{}.Normalize(),
		dropdowns: make(map[string]*dropdown, len(model.DropdownNames)),
		onChange:  onChange,
	}
	for _, name := range model.DropdownNames {
		p.dropdowns[name] = &dropdown{name: name}
	}
	return p
}

// Mount attaches each dropdown's outside-click listener to the document
func (p *Panel) Mount() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, dd := range p.dropdowns {
		if dd.unmount != nil {
			continue
		}
		name := dd.name
		dd.unmount = p.doc.AddPointerDownListener(func(target string) {
			if target != name {
				p.close(name)
			}
		})
	}
}

// Unmount detaches every listener
func (p *Panel) Unmount() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, dd := range p.dropdowns {
		if dd.unmount != nil {
			dd.unmount()
			dd.unmount = nil
		}
	}
}

// SetOptions replaces the available dropdown values
func (p *Panel) SetOptions(opts model.FilterOptions) {
	p.mu.Lock()
	p.options = opts.Normalize()
	p.mu.Unlock()
}

// Options returns the available dropdown values
func (p *Panel) Options() model.FilterOptions {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.options
}

// Selected returns the current filter state
func (p *Panel) Selected() model.FilterState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.selected
}

// SetText updates a text field and notifies immediately
func (p *Panel) SetText(ctx context.Context, name, value string) error {
	if name != model.FilterSearch {
		if model.IsFilter(name) {
			return fmt.Errorf("%w: %q", ErrNotTextField, name)
		}
		return fmt.Errorf("%w: %q", model.ErrUnknownFilter, name)
	}
	return p.update(ctx, name, value, false)
}

// Select picks a dropdown value ("" = All), closes that dropdown and notifies
func (p *Panel) Select(ctx context.Context, name, value string) error {
	if !model.IsDropdown(name) {
		if model.IsFilter(name) {
			return fmt.Errorf("%w: %q", ErrNotDropdown, name)
		}
		return fmt.Errorf("%w: %q", model.ErrUnknownFilter, name)
	}
	return p.update(ctx, name, value, true)
}

// Reset clears every field and notifies once
func (p *Panel) Reset(ctx context.Context) {
	p.mu.Lock()
	p.selected = model.FilterState{}
	state := p.selected
	p.mu.Unlock()

	p.notify(ctx, state)
}

// Toggle flips one dropdown open or closed
func (p *Panel) Toggle(name string) (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	dd, ok := p.dropdowns[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrNotDropdown, name)
	}
	dd.open = !dd.open
	return dd.open, nil
}

// IsOpen reports whether a dropdown is open
func (p *Panel) IsOpen(name string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	dd, ok := p.dropdowns[name]
	return ok && dd.open
}

// Dropdowns returns the render state of every dropdown in sidebar order
func (p *Panel) Dropdowns() []DropdownView {
	p.mu.Lock()
	defer p.mu.Unlock()
	views := make([]DropdownView, 0, len(model.DropdownNames))
	for _, name := range model.DropdownNames {
		value, _ := p.selected.Get(name)
		views = append(views, DropdownView{
			Name:    name,
			Label:   dropdownLabels[name],
			Value:   value,
			Open:    p.dropdowns[name].open,
			Options: p.options[name],
		})
	}
	return views
}

func (p *Panel) update(ctx context.Context, name, value string, closeDropdown bool) error {
	p.mu.Lock()
	next, err := p.selected.With(name, value)
	if err != nil {
		p.mu.Unlock()
		return err
	}
	p.selected = next
	if dd, ok := p.dropdowns[name]; ok && closeDropdown {
		dd.open = false
	}
	p.mu.Unlock()

	p.notify(ctx, next)
	return nil
}

func (p *Panel) close(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if dd, ok := p.dropdowns[name]; ok {
		dd.open = false
	}
}

func (p *Panel) notify(ctx context.Context, state model.FilterState) {
	if p.onChange != nil {
		p.onChange(ctx, state)
	}
}
