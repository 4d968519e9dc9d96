// Package main provides the roster CLI, which reports student grades
// from a CSV or Excel roster.
package main

func main() {
	Execute()
}
