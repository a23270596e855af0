package object

type Bool struct {
	value bool
}

func (b *Bool) Type() Type {
	return BOOL
}

func (b *Bool) Value() bool {
	return b.value
}

func (b *Bool) String() string {
	if b.value {
		return "true"
	}
	return "false"
}

func (b *Bool) Inspect() string {
	return b.String()
}

func (b *Bool) Interface() any {
	return b.value
}

// NewBool returns the shared True or False instance.
func NewBool(value bool) *Bool {
	if value {
		return True
	}
	return False
}

func Not(b *Bool) *Bool {
	if b.value {
		return False
	}
	return True
}
