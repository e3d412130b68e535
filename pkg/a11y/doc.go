// Package a11y provides accessibility primitives for terminal applications:
// focus trapping and restoration, screen-reader-style live-region
// announcements, a focusability predicate, and accessible label helpers.
//
// The package treats the host application's widget tree the way a browser
// accessibility layer treats the DOM: widgets implement Element, containers
// expose their elements in visual order, and key events flow through
// registered listeners. Everything here fails soft: a broken accessibility
// helper must never crash the host application, so invalid input is logged
// and turned into a no-op rather than a panic.
//
// # Quick Start
//
//	group := teax.NewGroup(okBtn, cancelBtn)
//
//	// Opening a dialog:
//	restorer := a11y.NewRestorer(group.Active)
//	restorer.Save()
//	trap := a11y.ActivateTrap(dialogGroup)
//
//	// Closing it:
//	trap.Release()
//	restorer.Restore()
//
// The teax package composes this save, trap, release, restore cycle as
// teax.FocusScope.
package a11y
