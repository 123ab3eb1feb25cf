// Package navigation provides the section navigation of the public page.
package navigation

// Item is one entry of the section navigation.
type Item struct {
	ID    string
	Label string
}

// Href is the in-page anchor of the section.
func (i Item) Href() string {
	return "#" + i.ID
}

// PublicItems are the sections of the public page, in display order.
func PublicItems() []Item {
	return []Item{
		{ID: "inicio", Label: "Inicio"},
		{ID: "talleres", Label: "Talleres"},
		{ID: "agendar", Label: "Agendar"},
		{ID: "quienes", Label: "Quiénes"},
		{ID: "marcas", Label: "Marcas"},
		{ID: "contacto", Label: "Contacto"},
	}
}

// Context represents the navigation context for a page.
type Context struct {
	PageTitle     string
	ActiveSection string
	Items         []Item
}

// NewContext creates a new navigation context over the public sections.
func NewContext(pageTitle, activeSection string) *Context {
	return &Context{
		PageTitle:     pageTitle,
		ActiveSection: activeSection,
		Items:         PublicItems(),
	}
}

// Without drops the sections with the given ids, for sections a page does not render.
func (c *Context) Without(ids ...string) *Context {
	items := make([]Item, 0, len(c.Items))

	for _, item := range c.Items {
		keep := true

		for _, id := range ids {
			if item.ID == id {
				keep = false
				break
			}
		}

		if keep {
			items = append(items, item)
		}
	}

	c.Items = items

	return c
}

// IsSectionActive checks if the given section is active.
func (c *Context) IsSectionActive(section string) bool {
	return c.ActiveSection == section
}
