package http

import "net/http"

// responseWriter decorates http.ResponseWriter so the logging middleware can
// observe the status code and the number of body bytes after the downstream
// handler returns, without buffering the response.
//
// WriteHeader is forwarded to the underlying writer exactly once; later
// calls are ignored, matching the http.ResponseWriter contract.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implicitly reports 200 when the handler never called WriteHeader,
// like the standard library's writer does.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
