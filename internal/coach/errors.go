package coach

// InputError reports unusable caller input, as opposed to an internal
// failure. Handlers map it to a client error status.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Reason
}

// ErrTextTooShort is returned when the submitted document is too short to
// analyze meaningfully.
var ErrTextTooShort = &InputError{Reason: "resume text is too short or empty for analysis"}
