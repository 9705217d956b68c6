// Package uriref wraps an absolute URI together with a fragment that is
// either a JSON Pointer (starts with "/") or a plain-name identifier,
// centralizing the base/fragment splitting and joining logic that would
// otherwise be duplicated across the schema builder and reference resolver.
package uriref

import (
	"net/url"
	"strconv"
	"strings"
)

// Ref carries an absolute URI and its fragment (the "identifier").
type Ref struct {
	URI        string
	identifier string
}

// Parse splits s at the first "#" into a URI and a percent-decoded fragment.
func Parse(s string) Ref {
	uri, frag, found := strings.Cut(s, "#")
	if !found {
		return Ref{URI: uri}
	}
	if decoded, err := url.PathUnescape(frag); err == nil {
		frag = decoded
	}
	return Ref{URI: uri, identifier: frag}
}

// Identifier returns the raw fragment.
func (r Ref) Identifier() string { return r.identifier }

// HasPointer reports whether the fragment is a JSON Pointer.
func (r Ref) HasPointer() bool {
	return strings.HasPrefix(r.identifier, "/")
}

// HasIdentifier reports whether the fragment is a non-empty plain-name anchor.
func (r Ref) HasIdentifier() bool {
	return r.identifier != "" && !r.HasPointer()
}

// String serializes the ref back to "uri#fragment" form ("uri" alone if the
// fragment is empty).
func (r Ref) String() string {
	if r.identifier == "" {
		return r.URI
	}
	return r.URI + "#" + r.identifier
}

// Resolve returns r's URI resolved against base per RFC 3986, preserving r's
// own identifier rather than replacing it with base's fragment.
func (r Ref) Resolve(base string) Ref {
	baseURL, err := url.Parse(base)
	if err != nil || !baseURL.IsAbs() {
		return r
	}
	relURL, err := url.Parse(r.URI)
	if err != nil {
		return r
	}
	resolved := baseURL.ResolveReference(relURL)
	resolved.Fragment = ""
	return Ref{URI: resolved.String(), identifier: r.identifier}
}

// Append extends the JSON-Pointer fragment with one more token (a field name
// or array index), escaping "~" and "/" per RFC 6901. It is a no-op when the
// receiver carries a plain-name identifier instead of a pointer, since those
// fragments are opaque anchors, not addressable paths.
func (r Ref) Append(step string) Ref {
	if r.HasIdentifier() {
		return r
	}
	return Ref{URI: r.URI, identifier: r.identifier + "/" + escapeToken(step)}
}

// AppendIndex is a convenience wrapper over Append for array indices.
func (r Ref) AppendIndex(i int) Ref {
	return r.Append(strconv.Itoa(i))
}

func escapeToken(token string) string {
	token = strings.ReplaceAll(token, "~", "~0")
	token = strings.ReplaceAll(token, "/", "~1")
	return token
}

// Compare orders two refs lexicographically on their serialized form.
func Compare(a, b Ref) int {
	return strings.Compare(a.String(), b.String())
}
