package ports

// RequestMeta is the narrow view of an inbound request the ingest core needs:
// case-insensitive header lookup and the transport-level peer address. Any
// transport adapter can implement it without pulling a framework type into
// the domain.
type RequestMeta interface {
	Header(name string) string
	RemoteAddr() string
}
