// Package teax binds the a11y primitives to Bubble Tea programs: a Group
// that owns tab order and key dispatch for a set of widgets, a LiveRegion
// component that renders screen-reader announcements, a FocusScope that
// composes focus save/trap/restore around dialogs, and ready-made widget
// adapters (Button, Link, Input) implementing a11y.Element.
package teax
