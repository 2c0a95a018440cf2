package consoles

type Console interface {
	Printf(format string, a ...any)

	// Prepare returns the text Printf would print, without printing it.
	Prepare(format string, a ...any) string

	PushPrefix(format string, a ...any)
	PopPrefix()
}
