package main

// Default command-line flag values
const (
	defaultX         = "0,0,90,100"
	defaultY         = "0,50,0,0"
	defaultTolerance = 1.0
	defaultSplit     = 0.5
)
