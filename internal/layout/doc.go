// Package layout turns an application mode and a terminal size into the
// ordered set of panels to draw.
//
// Geometry per panel (R rows, C columns, optW = 40 on the main menu and 30
// elsewhere):
//
//	control  6 x 15              bottom-left
//	status   4 x (C-17)          bottom, one column right of control
//	title    7 x 71              top-left, main menu only
//	menu     25 x 52             row 8, centered left of the options panel, main menu only
//	options  (R-4) x optW        top-right
//	main     (R-6) x (C-optW-1)  top-left, everywhere but the main menu
//	help     15 x 48             centered overlay, help only
//
// A panel that does not fit, or that would overlap one placed before it, is
// left out. Callers see a smaller panel set, not an error.
package layout
