// Package menu renders numbered console menus and dispatches the selected action.
//
// A Menu is built by calling AddOption for each entry and then Run, which blocks
// until the user types q or Q:
//
//	var m menu.Menu
//	m.AddOption("Say hi", func() { fmt.Println("hi") })
//	m.AddOption("Say bye", func() { fmt.Println("bye") })
//	m.Run()
//
// Selections are read one line at a time. Invalid input is reported and the
// user is prompted again; Run never returns an error.
package menu
