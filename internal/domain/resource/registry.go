package resource

import (
	"fmt"
	"strings"
)

// Registry holds the descriptors in navigation order.
type Registry struct {
	byName map[string]Descriptor
	order  []string
}

func NewRegistry(descriptors ...Descriptor) (*Registry, error) {
	r := &Registry{byName: make(map[string]Descriptor, len(descriptors))}
	for _, d := range descriptors {
		name := strings.Trim(d.Name, "/")
		if name == "" {
			return nil, fmt.Errorf("descriptor %q has no name", d.Title)
		}
		if _, ok := r.byName[name]; ok {
			return nil, fmt.Errorf("descriptor %q registered twice", name)
		}
		if d.Endpoints.List == nil {
			return nil, fmt.Errorf("descriptor %q has no list endpoint", name)
		}
		d.Name = name
		r.byName[name] = d
		r.order = append(r.order, name)
	}
	return r, nil
}

func (r *Registry) Get(name string) (Descriptor, bool) {
	d, ok := r.byName[strings.Trim(name, "/")]
	return d, ok
}

func (r *Registry) All() []Descriptor {
	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.byName[name])
	}
	return out
}

type Section struct {
	Name  string
	Items []Descriptor
}

// Sections groups the descriptors for the navigation menu, keeping first-seen order.
func (r *Registry) Sections() []Section {
	var sections []Section
	index := map[string]int{}
	for _, d := range r.All() {
		i, ok := index[d.Section]
		if !ok {
			i = len(sections)
			index[d.Section] = i
			sections = append(sections, Section{Name: d.Section})
		}
		sections[i].Items = append(sections[i].Items, d)
	}
	return sections
}
