// Package directive turns link requirements into an ordered list of linker
// directives and serializes that list for the build tool. Emitter operations
// only record directives; nothing is written until Render is called, so a
// failing step never leaves half a configuration on stdout.
package directive
