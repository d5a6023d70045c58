package api

import (
	"bufio"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleAsset streams raw artifact bytes from the index, so screenshot and
// export references in the read model resolve.
func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	p, ok := pathParam(r, "*")
	if !ok {
		jsonError(w, "invalid asset path", http.StatusBadRequest)
		return
	}

	idx := s.model.Index()
	size, found := idx.Size(p)
	if !found {
		jsonError(w, "asset not found", http.StatusNotFound)
		return
	}
	rc, err := idx.Open(p)
	if err != nil {
		s.log.Warn("asset unreadable", "path", p, "error", err)
		jsonError(w, "asset not found", http.StatusNotFound)
		return
	}
	defer rc.Close()

	br := bufio.NewReader(rc)
	contentType := mime.TypeByExtension(path.Ext(p))
	if contentType == "" {
		head, _ := br.Peek(512)
		contentType = http.DetectContentType(head)
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Length", strconv.FormatInt(size, 10))
	io.Copy(w, br)
}

// pathParam returns the decoded value of a route parameter. chi matches
// against RawPath when the request carries escapes the default encoding
// would not produce, so the captured value may still be escaped.
func pathParam(r *http.Request, key string) (string, bool) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, true
	}
	unescaped, err := url.PathUnescape(v)
	if err != nil {
		return "", false
	}
	return unescaped, true
}
