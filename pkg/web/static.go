package web

import (
	"io/fs"
	"net/http"
)

// Static serves files from dir of fsys. Mount it with http.StripPrefix.
func Static(fsys fs.FS, dir string) (http.Handler, error) {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return nil, err
	}
	return http.FileServer(http.FS(sub)), nil
}
