package handler

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// HandleIndex serves the dashboard page. The file is looked up on every
// request so the page can be edited without a restart.
func HandleIndex(webDir string) http.HandlerFunc {
	path := filepath.Join(webDir, IndexFile)
	return func(w http.ResponseWriter, r *http.Request) {
		if !isRegularFile(path) {
			slog.Warn(LogMsgIndexMissing, "path", path)
			respondText(w, http.StatusNotFound, ErrMsgIndexNotFound)
			return
		}
		http.ServeFile(w, r, path)
	}
}

// HandleIcon serves the favicon, or an empty 404 when there is none
func HandleIcon(webDir string) http.HandlerFunc {
	path := filepath.Join(webDir, IconFile)
	return func(w http.ResponseWriter, r *http.Request) {
		if !isRegularFile(path) {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		http.ServeFile(w, r, path)
	}
}

// HandleStatic serves files below webDir under the given URL prefix.
// Directories are reported as missing so nothing gets listed.
func HandleStatic(prefix, webDir string) http.Handler {
	return http.StripPrefix(prefix, http.FileServer(filesOnly{http.Dir(webDir)}))
}

// filesOnly hides directories from http.FileServer
type filesOnly struct {
	fs http.FileSystem
}

func (f filesOnly) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, err
	}
	if info.IsDir() {
		file.Close()
		return nil, os.ErrNotExist
	}
	return file, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
