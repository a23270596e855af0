package object

import "strconv"

type String struct {
	value string
}

func (s *String) Type() Type {
	return STRING
}

func (s *String) Value() string {
	return s.value
}

func (s *String) String() string {
	return s.value
}

func (s *String) Inspect() string {
	return strconv.Quote(s.value)
}

func (s *String) Interface() any {
	return s.value
}

func NewString(s string) *String {
	return &String{value: s}
}
