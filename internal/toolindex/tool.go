// Package toolindex discovers tools by their README front matter and renders
// an index table and a task-runner manifest for them.
package toolindex

import (
	"sort"
	"strings"
)

// ReadmeName is the file a tool directory must contain to be indexed.
const ReadmeName = "README.md"

// Tool is one indexed tool.
type Tool struct {
	Name    string `json:"name"`
	Purpose string `json:"purpose"`
	// Link is "./<dir>" relative to the scan root ("." for the root itself).
	Link string `json:"link"`
	// Path is the README the entry came from.
	Path string `json:"path"`
	// Dir is the slash-separated tool directory relative to the scan root.
	Dir string `json:"dir"`
	// Lang is the runtime tag implied by a lock file, "" when none was found.
	Lang string `json:"lang,omitempty"`
}

// Sort orders tools case-insensitively by name, then by directory.
func Sort(tools []Tool) {
	sort.SliceStable(tools, func(i, j int) bool {
		a, b := strings.ToLower(tools[i].Name), strings.ToLower(tools[j].Name)
		if a != b {
			return a < b
		}
		return tools[i].Dir < tools[j].Dir
	})
}
