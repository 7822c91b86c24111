// Package mediatype parses, classifies and canonically renders Internet media types
// (RFC 2045, RFC 6838), the type/subtype;parameters values carried by Content-Type
// and similar headers.
//
// # Parsing
//
// Use [Parse] to parse a media type from string or []byte input:
//
//	mt, err := mediatype.Parse("application/vnd.api+json; charset=utf-8")
//
// [TryParse] reports failure with a boolean and [MustParse] panics, which is handy
// for package level variables.
//
// The whole input is trimmed and lowercased before parsing. This includes
// parameter values, so "text/plain;charset=UTF-8" yields the value "utf-8".
//
// The type must be one of the registered top-level types or the wildcard:
//
//	* application audio font haptics image message model multipart text video
//
// The subtype must be at most 127 characters long and consist of
//
//	a-z 0-9 ! # $ % ^ & * _ - + { } | ' . ` ~
//
// The subtype "example" is reserved (RFC 4735) and always rejected. The wildcard
// type requires the wildcard subtype, so "*/*" and "audio/*" are valid while
// "*/plain" is not.
//
// Any violation of these rules makes [Parse] fail with an [*InvalidMediaTypeError]
// that matches [ErrInvalidMediaType] and carries the original input.
//
// # Suffix and facets
//
// The first '+' of the subtype that is not its last character starts the
// structured syntax suffix: "application/ld+json" has subtype "ld" and suffix "json",
// while "audio/amr-wb+" has subtype "amr-wb+" and no suffix. The subtype without the
// suffix is split on '.' into facets: "vnd.ms-excel" yields ["vnd", "ms-excel"].
// [MediaType.Essence] joins type, subtype and suffix back together.
//
// # Parameters
//
// Parameters are lenient: malformed tokens are skipped instead of failing the
// whole media type. The scanner
//
//   - skips bare tokens without '=' and resumes at the next name=value pair
//   - keeps the first occurrence of a duplicate name
//   - drops names that are not made of a-z, 0-9 and '-'
//   - drops values that contain control characters
//   - takes a quoted value verbatim up to the next '"', without escape processing
//
// [Params] preserves the order in which parameters were found.
//
// # Rendering
//
// [MediaType.String] renders the canonical form: the essence followed by
// ;name=value pairs in order. A value is quoted, with inner '"' escaped by
// a backslash, when it is empty or contains a character other than
// a-z, 0-9, '-' and '\''. The canonical form parses back to the same value,
// except for values holding a '"': the escaping backslash is not removed on
// parsing, so such a value does not survive the round trip.
//
// # Classification
//
// [MediaType.IsHTML], [MediaType.IsXML], [MediaType.IsJavaScript],
// [MediaType.IsVendor], [MediaType.IsPersonal], [MediaType.IsExperimental]
// and [MediaType.HasSuffix] classify a parsed value.
package mediatype

//go:generate go tool errtrace -w .
