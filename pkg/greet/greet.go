// Package greet provides the demonstration greeting function.
package greet

// Greet returns a greeting for name. The input is used verbatim, so an empty
// name produces "Hello !".
func Greet(name string) string {
	return "Hello " + name + "!"
}
