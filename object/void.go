package object

// VoidType is the type of Void, the value of calls that produce nothing.
type VoidType struct{}

func (v *VoidType) Type() Type {
	return VOID
}

func (v *VoidType) String() string {
	return "()"
}

func (v *VoidType) Inspect() string {
	return "()"
}

func (v *VoidType) Interface() any {
	return nil
}
