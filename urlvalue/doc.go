// Package urlvalue implements a structured URL value for server applications.
//
// A URL is decomposed into the following parts:
//
//	[{scheme}:]//[{user}[:{password}]@]{host}[:{port}]{directory}{path}[.{format}][?{parameters}][#{fragment}]
//
// Compared to RFC 3986 syntax components:
//   - the authority is split into user, password, host and port.
//   - the path is split into directory, path and format.
//   - the query is an ordered set of named parameters rather than a string.
//
// The directory is the prefix relative output is built against, the root
// directory ("/") by default.
//
//	u := urlvalue.New("example.com", "/directory/").
//	    SetScheme("http").
//	    SetPath("path").
//	    SetParameter("key", "value")
//
//	u.Build(true)  // "http://example.com/directory/path?key=value"
//	u.Build(false) // "/directory/path?key=value"
//
// # Formats
//
// SetPath peels a trailing file extension off the last path segment and
// stores it as the format:
//
//	u.SetPath("articles/today.json")
//	u.Path()   // "articles/today"
//	u.Format() // "json", true
//
// # Absolute output
//
// Setting a port, user or password marks the URL as absolute, so Build
// includes the authority even when called with absolute set to false.
//
// A URL is not safe for concurrent use. Each request should own its own
// value; use Clone to derive one from a shared template.
package urlvalue
