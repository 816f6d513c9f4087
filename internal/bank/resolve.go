// Package bank maps opaque VPA payment handles to human-readable bank
// metadata.
package bank

import "strings"

const (
	// FallbackColor is the generic color used when no table entry matches.
	FallbackColor = "#6B7280"
	// FallbackIFSCPrefix marks an unrecognized handle.
	FallbackIFSCPrefix = "UNKN"
)

// Resolved is the outcome of a handle lookup.
type Resolved struct {
	Name       string
	IFSCPrefix string
	Color      string
	Handle     string
}

// Resolve extracts the handle from a payment address (the part after "@"),
// lowercases it, and returns the first table entry whose alias appears as a
// substring of the handle. A handle with no match synthesizes a fallback
// entry. Pure, never fails.
func Resolve(vpa string) Resolved {
	handle := ""
	if _, after, found := strings.Cut(vpa, "@"); found {
		handle = strings.ToLower(after)
	}

	for _, b := range vpaBankTable {
		for _, alias := range b.Handles {
			if strings.Contains(handle, alias) {
				return Resolved{
					Name:       b.Name,
					IFSCPrefix: b.IFSCPrefix,
					Color:      b.Color,
					Handle:     handle,
				}
			}
		}
	}

	name := "Unknown Bank"
	if handle != "" {
		name = strings.ToUpper(handle) + " Bank"
	}
	return Resolved{
		Name:       name,
		IFSCPrefix: FallbackIFSCPrefix,
		Color:      FallbackColor,
		Handle:     handle,
	}
}
