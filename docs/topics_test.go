package docs

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

func TestTopics(t *testing.T) {
	// This test ensures that the documentation is in sync with itself.
	// It checks two things:
	// 1. Every topic listed in readme.md can be loaded by GetTopic.
	// 2. Every .md file in the docs directory (excluding readme.md itself)
	//    is listed in readme.md.

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topicsInReadme []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)

	for scanner.Scan() {
		line := scanner.Text()
		matches := topicRegex.FindStringSubmatch(line)
		if len(matches) > 1 {
			topicsInReadme = append(topicsInReadme, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}

	for _, topic := range topicsInReadme {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatalf("failed to glob *.md: %v", err)
	}
	for _, f := range files {
		base := filepath.Base(f)
		if base == "readme.md" {
			continue
		}
		name := strings.TrimSuffix(base, ".md")
		found := false
		for _, topic := range topicsInReadme {
			if topic == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("topic %q is not listed in readme.md", name)
		}
	}
}

func TestGetAllTopicsExpandsStar(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) == 0 {
		t.Fatal("GetAllTopics() returned no topics")
	}
	for _, topic := range all {
		if topic == "readme" {
			t.Error("GetAllTopics() must not include readme")
		}
	}

	merged, err := GetTopic("*")
	if err != nil {
		t.Fatalf("GetTopic(*): %v", err)
	}
	for _, topic := range all {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatalf("GetTopic(%q): %v", topic, err)
		}
		if !strings.Contains(merged, content) {
			t.Errorf("GetTopic(*) is missing the content of topic %q", topic)
		}
	}
}

// TestCodeBlocks lints the fenced code blocks of every topic: each block
// must declare a language, and every bash block that invokes the tool
// must start with the `sw` command.
func TestCodeBlocks(t *testing.T) {
	files, err := filepath.Glob("*.md")
	if err != nil {
		t.Fatal(err)
	}

	for _, file := range files {
		t.Run(file, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatalf("failed to read %s: %v", file, err)
			}

			root := goldmark.DefaultParser().Parse(text.NewReader(content))
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if !entering {
					return ast.WalkContinue, nil
				}
				fcb, ok := n.(*ast.FencedCodeBlock)
				if !ok {
					return ast.WalkContinue, nil
				}
				if fcb.Info == nil {
					t.Errorf("%s: fenced code block without a language", file)
					return ast.WalkContinue, nil
				}
				lang := string(fcb.Info.Segment.Value(content))
				if lang != "bash" {
					return ast.WalkContinue, nil
				}
				for i := 0; i < fcb.Lines().Len(); i++ {
					seg := fcb.Lines().At(i)
					line := strings.TrimSpace(string(seg.Value(content)))
					if line == "" || strings.HasPrefix(line, "#") {
						continue
					}
					if !strings.HasPrefix(line, "sw ") {
						t.Errorf("%s: bash block line %q does not invoke sw", file, line)
					}
				}
				return ast.WalkContinue, nil
			})
		})
	}
}
