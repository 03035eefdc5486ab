package delivery

import (
	"net/http"

	"voicebank/internal/ports"
)

// httpRequestMeta adapts *http.Request to the narrow ports.RequestMeta the
// ingest core consumes, keeping net/http out of the domain.
type httpRequestMeta struct {
	r *http.Request
}

func NewRequestMeta(r *http.Request) ports.RequestMeta {
	return httpRequestMeta{r: r}
}

func (m httpRequestMeta) Header(name string) string {
	return m.r.Header.Get(name)
}

func (m httpRequestMeta) RemoteAddr() string {
	return m.r.RemoteAddr
}
