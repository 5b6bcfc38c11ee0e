package assets

import (
	"bufio"
	"embed"
	"strings"
)

//go:embed animals.txt nature.txt objects.txt random.txt
var FS embed.FS

func readLines(name string) ([]string, error) {
	f, err := FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		s := strings.TrimSpace(sc.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		out = append(out, strings.ToLower(s))
	}
	return out, sc.Err()
}

// ThemeList returns the words stored in <theme>.txt, e.g. ThemeList("animals").
func ThemeList(theme string) ([]string, error) {
	return readLines(strings.ToLower(theme) + ".txt")
}
