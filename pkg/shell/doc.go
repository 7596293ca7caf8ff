// Package shell implements the navigation shell: a fixed route table that maps
// exact paths to view factories, and a per-session location that owns the
// current path and serializes navigation.
//
// A Shell is mounted at an initial path. From then on every navigation event
// delivered through its Navigator unmounts the previous view and mounts the
// view registered for the new path. Paths with no route render nothing.
//
//	table, _ := shell.NewTable(
//	    shell.Route{Pattern: "/", View: newHome},
//	    shell.Route{Pattern: "/about", View: newAbout},
//	)
//
//	s := shell.New(table, logger)
//	_ = s.Mount("/")
//	s.Navigator().Navigate("/about")
//	active := s.Render() // the about view
package shell
