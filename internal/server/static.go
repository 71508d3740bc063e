package server

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const notFoundPage = "404.html"

// staticSite serves the build output straight from disk so rebuilds are picked
// up without restarting.
type staticSite struct {
	dir string
	log *zap.Logger
}

func (s *staticSite) serve(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		writeError(c, codeNotFound, "no such endpoint")
		return
	}
	if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
		writeError(c, codeMethodNotAllowed, "method not allowed")
		return
	}

	noCache(c)

	urlPath := path.Clean("/" + c.Request.URL.Path)
	target := filepath.Join(s.dir, filepath.FromSlash(urlPath))

	info, err := os.Stat(target)
	if err != nil {
		s.notFound(c)
		return
	}
	if info.IsDir() {
		// Never list directories: only serve one that has an index.html.
		target = filepath.Join(target, "index.html")
		if _, err := os.Stat(target); err != nil {
			s.notFound(c)
			return
		}
	}
	c.File(target)
}

func (s *staticSite) notFound(c *gin.Context) {
	s.log.Debug("Page not found", zap.String("path", c.Request.URL.Path))
	page, err := os.ReadFile(filepath.Join(s.dir, notFoundPage))
	if err != nil {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}
	c.Data(http.StatusNotFound, "text/html; charset=utf-8", page)
}
