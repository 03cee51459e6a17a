// Package docs holds the embedded documentation topics served by
// 'sw topic'.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var topics embed.FS

// GetTopic returns the content of one documentation topic. "*" expands to
// every topic.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		return GetTopics(topic)
	}
	content, err := topics.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics concatenates the requested topics, expanding "*" in place to
// every available topic.
func GetTopics(names ...string) (string, error) {
	var b strings.Builder
	for _, name := range names {
		if name == "*" {
			all, err := GetAllTopics()
			if err != nil {
				return "", err
			}
			for _, topic := range all {
				content, err := GetTopic(topic)
				if err != nil {
					return "", err
				}
				b.WriteString(content)
				b.WriteString("\n")
			}
			continue
		}
		content, err := GetTopic(name)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics lists the available topics, sorted. The readme is the topic
// index itself, not a topic.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(topics, "*.md")
	if err != nil {
		return nil, err
	}
	var names []string
	for _, file := range files {
		name := strings.TrimSuffix(file, ".md")
		if name == "readme" {
			continue
		}
		names = append(names, name)
	}
	slices.Sort(names)
	return names, nil
}
