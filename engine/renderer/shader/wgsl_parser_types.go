package shader

// wgslTypeLayout holds the byte size and alignment of a WGSL type under host-shareable
// layout rules.
type wgslTypeLayout struct {
	size  uint64
	align uint64
}

// parsedField is one member of a WGSL struct.
type parsedField struct {
	name      string
	typeName  string
	isBuiltin bool
}

// parsedStruct is a WGSL struct block.
type parsedStruct struct {
	name   string
	fields []parsedField
}

// Binding describes one resource declaration found in processed WGSL.
type Binding struct {
	Group        int
	Binding      int
	AddressSpace string // "uniform", "storage, read", ...
	Name         string
	Type         string

	// Size is the byte size of the bound type, or 0 when it could not be resolved.
	Size uint64
}
