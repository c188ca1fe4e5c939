// Package discovery locates the directories of a project that hold a
// package.json manifest. The walk is depth-first and root-first, never
// descends into node_modules, honors configured exclusions and silently
// skips directories it cannot read.
package discovery
