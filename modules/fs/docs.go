package fs

import "github.com/cloudcmds/imp/object"

// Docs returns documentation for the fs module.
func Docs() []object.FuncSpec {
	return []object.FuncSpec{
		{Name: "read_file", Doc: "Read a file as a string", Args: []string{"path"}, Returns: "string", Example: `read_file("notes.txt") -> text`},
		{Name: "write_file", Doc: "Write a string to a file, replacing it", Args: []string{"path", "content"}, Returns: "()"},
		{Name: "append_file", Doc: "Append a string to a file, creating it if needed", Args: []string{"path", "content"}, Returns: "()"},
		{Name: "exists", Doc: "Report whether a path exists", Args: []string{"path"}, Returns: "bool"},
		{Name: "remove", Doc: "Remove a file or empty directory", Args: []string{"path"}, Returns: "()"},
		{Name: "list_dir", Doc: "List the entries of a directory, sorted by name", Args: []string{"path"}, Returns: "array"},
	}
}
