package domain

// StatusKind tags the message panel state.
type StatusKind int

const (
	StatusNone StatusKind = iota
	StatusError
	StatusInfo
	StatusSuccess
)

func (k StatusKind) String() string {
	switch k {
	case StatusError:
		return "error"
	case StatusInfo:
		return "info"
	case StatusSuccess:
		return "success"
	default:
		return "none"
	}
}

// MarshalText renders the kind as its lower-case name for JSON payloads.
func (k StatusKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText; anything else
// maps to StatusNone.
func (k *StatusKind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "error":
		*k = StatusError
	case "info":
		*k = StatusInfo
	case "success":
		*k = StatusSuccess
	default:
		*k = StatusNone
	}
	return nil
}
