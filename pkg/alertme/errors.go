package alertme

import "errors"

// Error taxonomy. Parsing errors are never fatal to the engine: they are
// recorded and the frame is discarded. Encoding and catalog errors surface
// synchronously to the caller. Modem errors surface to whichever task
// invoked the send.
var (
	// ErrMalformedPayload indicates a payload too short or with a layout
	// that violates the fixed structure described for its message type.
	ErrMalformedPayload = errors.New("alertme: malformed payload")

	// ErrUnknownProfile indicates an inbound frame's profile ID has no
	// registered handling.
	ErrUnknownProfile = errors.New("alertme: unknown profile")

	// ErrUnknownCluster indicates an inbound ZDP frame's cluster ID has no
	// registered handling.
	ErrUnknownCluster = errors.New("alertme: unknown cluster")

	// ErrUnknownClusterCommand indicates an inbound AlertMe (cluster, cmd)
	// pair has no registered handling.
	ErrUnknownClusterCommand = errors.New("alertme: unknown cluster command")

	// ErrUnknownMessage indicates a message catalog lookup miss.
	ErrUnknownMessage = errors.New("alertme: unknown message")

	// ErrBadParameter indicates an encoder was given a missing or
	// out-of-range field.
	ErrBadParameter = errors.New("alertme: bad parameter")

	// ErrUnknownEnum indicates an encoder was given a symbolic value (e.g.
	// a mode name) outside its known set.
	ErrUnknownEnum = errors.New("alertme: unknown enum value")

	// ErrModem wraps an error returned by the modem collaborator.
	ErrModem = errors.New("alertme: modem error")

	// ErrDiscoveryAlreadyRunning indicates a second discovery pass was
	// requested while one was already in flight.
	ErrDiscoveryAlreadyRunning = errors.New("alertme: discovery already running")

	// ErrNodeNotFound indicates a lookup for a node that is not registered.
	ErrNodeNotFound = errors.New("alertme: node not found")
)
