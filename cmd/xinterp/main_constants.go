package main

// Default command-line flag values
const (
	defaultMethod = "nearest" // Rounding method for inverse queries
)

// Knot file value types
const (
	typeUint  = "uint"  // uint64 values
	typeInt   = "int"   // int64 values
	typeFloat = "float" // float64 values
)

// Value parsing
const (
	intBase   = 10
	bitSize64 = 64
)
