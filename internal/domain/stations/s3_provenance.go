package stations

import (
	"encoding/base64"
	"net"
	"strings"

	"voicebank/internal/models"
	"voicebank/internal/ports"
)

// S3Provenance derives submitter identity from the request metadata.
// Every field is best-effort: malformed headers degrade to nil, the station
// never fails and never blocks ingestion.
type S3Provenance struct{}

func NewS3Provenance() *S3Provenance { return &S3Provenance{} }

func (s *S3Provenance) Run(meta ports.RequestMeta) models.SubmissionProvenance {
	var prov models.SubmissionProvenance
	if meta == nil {
		return prov
	}

	prov.IPAddress = resolveIP(meta)
	prov.Username = basicAuthUser(meta.Header("Authorization"))

	if ua := meta.Header("User-Agent"); ua != "" {
		prov.UserAgent = &ua
	}
	return prov
}

// resolveIP trusts the first X-Forwarded-For entry when an upstream proxy set
// one. There is no validation of the proxy itself; this is provenance, not a
// security boundary.
func resolveIP(meta ports.RequestMeta) *string {
	if fwd := meta.Header("X-Forwarded-For"); fwd != "" {
		first := strings.TrimSpace(strings.Split(fwd, ",")[0])
		if first != "" {
			return &first
		}
	}

	addr := meta.RemoteAddr()
	if addr == "" {
		return nil
	}
	if host, _, err := net.SplitHostPort(addr); err == nil {
		addr = host
	}
	return &addr
}

// basicAuthUser pulls the identity half out of a Basic credential header.
func basicAuthUser(header string) *string {
	const prefix = "Basic "
	if !strings.HasPrefix(header, prefix) {
		return nil
	}
	decoded, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return nil
	}
	user, _, ok := strings.Cut(string(decoded), ":")
	if !ok || user == "" {
		return nil
	}
	return &user
}
