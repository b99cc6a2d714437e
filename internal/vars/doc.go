// Package vars holds the file-scoped name -> value mapping populated while
// the parser walks a Build File, and resolves "$(X)" references against it.
package vars
