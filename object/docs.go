package object

// FuncSpec documents a builtin function or constant.
type FuncSpec struct {
	Name    string   `json:"name"`
	Doc     string   `json:"doc"`
	Args    []string `json:"args,omitempty"`
	Returns string   `json:"returns,omitempty"`
	Example string   `json:"example,omitempty"`
}
