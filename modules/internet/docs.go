package internet

import "github.com/cloudcmds/imp/object"

// Docs returns documentation for the internet module.
func Docs() []object.FuncSpec {
	return []object.FuncSpec{
		{Name: "http_get", Doc: "Fetch a URL and return the response body", Args: []string{"url"}, Returns: "string", Example: `http_get("https://example.com") -> page`},
		{Name: "http_post", Doc: "POST a body to a URL and return the response body", Args: []string{"url", "body", "content_type?"}, Returns: "string"},
	}
}
