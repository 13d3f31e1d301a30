// Package app wires application dependencies for the converters.
//
// It loads the settings file and abookrc named by Config, builds the file
// stores, the field mapper and the conversion service, and exposes them
// through the Wire struct for the commands to use.
package app
