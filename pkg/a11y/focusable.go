package a11y

// IsFocusable reports whether el can currently receive keyboard focus.
// The rules apply in order:
//
//  1. An explicit tab index > 0, or an explicitly set tab index of 0,
//     makes the element focusable.
//  2. A disabled element is never focusable, overriding kind defaults.
//  3. Natively interactive kinds (button, input, select, textarea, link)
//     are focusable.
//  4. Everything else is not.
//
// The predicate is pure; it is used by ActivateTrap to build the focusable
// set and is exported for callers building custom keyboard navigation.
func IsFocusable(el Element) bool {
	if el == nil {
		return false
	}
	if ts, ok := el.(TabStopper); ok {
		if idx, set := ts.TabIndex(); idx > 0 || (idx == 0 && set) {
			return true
		}
	}
	if d, ok := el.(Disableable); ok && d.Disabled() {
		return false
	}
	kind := KindGeneric
	if k, ok := el.(Kinder); ok {
		kind = k.Kind()
	}
	switch kind {
	case KindButton, KindInput, KindSelect, KindTextArea, KindLink:
		return true
	}
	return false
}

// CollectFocusables returns c's focusable elements in container order.
// The result is a snapshot: it reflects the container at call time and is
// not updated if the container's contents change afterwards.
func CollectFocusables(c Container) []Element {
	if c == nil {
		return nil
	}
	var out []Element
	for _, el := range c.Elements() {
		if IsFocusable(el) {
			out = append(out, el)
		}
	}
	return out
}
