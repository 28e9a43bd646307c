// Package runtime defines the framework-neutral request/response
// abstraction shared by all platform adapters. Adapters translate a
// platform-specific request into a standard request, invoke the
// framework handler exactly once, and translate the standard response
// back into the platform's output shape.
package runtime

// Mode is the runtime mode the application was built for.
type Mode string

const (
	ModeDevelopment Mode = "development"
	ModeProduction  Mode = "production"
	ModeTest        Mode = "test"
)

func (m Mode) String() string {
	return string(m)
}

// ParseMode parses a mode string. The second return value reports
// whether the string named a known mode.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeDevelopment, ModeProduction, ModeTest:
		return Mode(s), true
	default:
		return "", false
	}
}

// Build is the application build artifact served by the adapters.
// It is loaded once at process start and treated as immutable,
// shared, read-only configuration for the lifetime of the process.
type Build struct {
	// Handler is the framework request handler.
	Handler Handler

	// Mode is the mode the build was created for. Adapters fall
	// back to ModeProduction when empty.
	Mode Mode
}
