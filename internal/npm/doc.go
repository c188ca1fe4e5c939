// Package npm resolves and invokes the npm installer executable. Resolution
// distinguishes absolute paths, paths relative to the project root and bare
// command names looked up through PATH; invocation runs the installer
// synchronously in a target directory and captures its combined output.
package npm
