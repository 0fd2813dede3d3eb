// Package api holds the wire messages of the tripwiser.v1 Connect services.
//
// Messages are plain Go structs encoded as JSON. Identifiers travel as
// strings and money as decimal strings ("12.50").
package api
