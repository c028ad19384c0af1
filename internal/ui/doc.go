// Package ui provides theme and color support for the application's
// terminal output. It defines color schemes and exposes ANSI escape
// code accessors for consistent styling across the CLI.
//
// This package is a shared dependency for packages that need color
// output, reducing coupling between business logic and presentation.
package ui
