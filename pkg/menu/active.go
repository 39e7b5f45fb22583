package menu

// RootPath never activates an item implicitly.
const RootPath = "/"

// isActive applies the implicit match of url against the current path.
func (c Context) isActive(explicit bool, url string) bool {
	if explicit {
		return true
	}

	if !c.ActivateItems || c.CurrentPath == "" || c.CurrentPath == RootPath {
		return false
	}

	return c.url(url) == c.CurrentPath
}

// resolveActive returns a copy of items with the Active flag computed for every visible item.
// The second result reports whether any returned item is active. Submenus become active through
// their children only when parent activation is enabled.
func (c Context) resolveActive(items []Item) ([]Item, bool) {
	if items == nil {
		return nil, false
	}

	out := make([]Item, len(items))
	anyActive := false

	for i, it := range items {
		out[i] = it

		if !Visible(it) {
			continue
		}

		switch v := it.(type) {
		case Link:
			v.Active = c.isActive(v.Active, v.URL)
			out[i] = v
			anyActive = anyActive || v.Active
		case Submenu:
			children, childActive := c.resolveActive(v.Items)
			v.Items = children
			v.Active = c.isActive(v.Active, v.URL) || (c.ActivateParents && childActive)
			out[i] = v
			anyActive = anyActive || v.Active || childActive
		}
	}

	return out, anyActive
}
