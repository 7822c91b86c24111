package mediatype

import "strings"

// Registration tree facets, RFC 6838 Section 3.
const (
	FacetVendor       = "vnd"
	FacetPersonal     = "prs"
	FacetExperimental = "x"
)

// HasSuffix checks whether the media type has a structured syntax suffix.
func (mt MediaType) HasSuffix() bool { return mt.suffix != "" }

// IsHTML checks whether the media type is text/html.
// Only the subtype without suffix is matched, so text/html+zip is HTML too.
// The subtype never contains '+', so application/xhtml+xml and
// application/html+xml are not matched.
func (mt MediaType) IsHTML() bool {
	switch mt.typ {
	case "text":
		return mt.subtype == "html"
	case "application":
		return mt.subtype == "xhtml+xml" || mt.subtype == "html+xml"
	default:
		return false
	}
}

// IsXML checks whether the subtype is "xml" or the suffix is "xml".
func (mt MediaType) IsXML() bool { return mt.subtype == "xml" || mt.suffix == "xml" }

// IsJavaScript checks whether the media type is one of the JavaScript media types
// under the application or text tree.
func (mt MediaType) IsJavaScript() bool {
	if mt.typ != "application" && mt.typ != "text" {
		return false
	}
	switch mt.subtype {
	case "javascript", "x-javascript", "ecmascript", "x-ecmascript":
		return true
	default:
		return false
	}
}

// IsVendor checks whether the subtype is in the vendor tree, e.g. application/vnd.api+json.
func (mt MediaType) IsVendor() bool { return mt.firstFacet() == FacetVendor }

// IsPersonal checks whether the subtype is in the personal tree, e.g. text/prs.lines.tag.
func (mt MediaType) IsPersonal() bool { return mt.firstFacet() == FacetPersonal }

// IsExperimental checks whether the subtype is unregistered: the first facet is "x"
// or the subtype starts with "x-".
func (mt MediaType) IsExperimental() bool {
	return mt.firstFacet() == FacetExperimental || strings.HasPrefix(mt.subtype, "x-")
}

func (mt MediaType) firstFacet() string {
	if len(mt.facets) == 0 {
		return ""
	}
	return mt.facets[0]
}
