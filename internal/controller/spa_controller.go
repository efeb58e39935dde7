package controller

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"learnsphere_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// SPAController serves the pre-built front-end bundle. Unmatched paths fall
// back to index.html so the client-side router owns them.
type SPAController struct {
	StaticDir string
}

func NewSPAController(staticDir string) *SPAController {
	return &SPAController{StaticDir: staticDir}
}

// Serve handles every route no API handler claimed.
func (c *SPAController) Serve(ctx *gin.Context) {
	if ctx.Request.Method != http.MethodGet && ctx.Request.Method != http.MethodHead {
		util.NotFound(ctx, "Resource not found")
		return
	}

	root := filepath.Clean(c.StaticDir)
	rel := strings.TrimPrefix(ctx.Request.URL.Path, "/")
	file := filepath.Join(root, filepath.FromSlash(rel))

	// Join cleans "..", so anything escaping the bundle lands outside root.
	if file != root && !strings.HasPrefix(file, root+string(os.PathSeparator)) {
		util.NotFound(ctx, "Resource not found")
		return
	}

	if info, err := os.Stat(file); err == nil && !info.IsDir() {
		ctx.File(file)
		return
	}

	index := filepath.Join(root, "index.html")
	if _, err := os.Stat(index); err != nil {
		util.NotFound(ctx, "Front-end bundle not found")
		return
	}
	ctx.File(index)
}
