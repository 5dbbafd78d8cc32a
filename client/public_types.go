package client

import "github.com/insanitybit/haveibeenpwnd/client/internal/types"

// Public type aliases so SDK consumers can import only the client package.
type (
	Breach = types.Breach
	Paste  = types.Paste
)
