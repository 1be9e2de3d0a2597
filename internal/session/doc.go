// Package session exposes the paint engine through opaque session
// handles. Front ends and the scripting host create sessions through a
// Manager and address them by ID, keeping engine lifetimes and lookups in
// one place.
package session
