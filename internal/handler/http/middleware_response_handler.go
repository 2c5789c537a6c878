package http

import "net/http"

// responseWriter decorates http.ResponseWriter so middleware can observe the
// status code and body size after the downstream handler returns. It
// forwards WriteHeader to the underlying writer at most once, matching the
// standard library contract.
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

// Write counts bytes written and implies a 200 if WriteHeader was never
// called, same as the standard library writer.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}
