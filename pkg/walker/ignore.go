package walker

import (
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"
)

// IgnoreFileNames are the per-directory ignore files honoured during a walk.
var IgnoreFileNames = []string{".gitignore", ".ignore"}

// ignoreRules holds the compiled ignore files met so far, keyed by their directory.
// It is only touched by the traversal goroutine.
type ignoreRules struct {
	root  string
	byDir map[string]*ignore.GitIgnore
}

func newIgnoreRules(root string) *ignoreRules {
	return &ignoreRules{root: root, byDir: make(map[string]*ignore.GitIgnore)}
}

// load compiles the ignore files of dir. Both files share one rule set, the
// lines of .ignore coming last so they take precedence.
func (r *ignoreRules) load(dir string) error {
	var lines []string
	for _, name := range IgnoreFileNames {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return err
		}
		lines = append(lines, strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")...)
	}

	if len(lines) > 0 {
		r.byDir[dir] = ignore.CompileIgnoreLines(lines...)
	}
	return nil
}

// ignored reports whether an ignore file of p's ancestors, up to the root, matches p.
func (r *ignoreRules) ignored(p string, isDir bool) bool {
	for dir := filepath.Dir(p); ; dir = filepath.Dir(dir) {
		if rules, ok := r.byDir[dir]; ok {
			rel, err := filepath.Rel(dir, p)
			if err == nil {
				rel = filepath.ToSlash(rel)
				// Patterns with a trailing slash only match directories
				if isDir {
					rel += "/"
				}
				if rules.MatchesPath(rel) {
					return true
				}
			}
		}

		if dir == r.root || dir == filepath.Dir(dir) {
			return false
		}
	}
}
