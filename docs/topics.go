// Package docs embeds the user documentation and serves it by topic.
package docs

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

//go:embed *.md
var docs embed.FS

// GetTopic returns the content of a documentation topic.
func GetTopic(topic string) (string, error) {
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of the named topics concatenated
// together. "*" stands for every topic except the readme.
func GetTopics(topics ...string) (string, error) {
	expanded := make([]string, 0, len(topics))
	for _, topic := range topics {
		if topic != "*" {
			expanded = append(expanded, topic)
			continue
		}
		all, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		expanded = append(expanded, all...)
	}

	var b strings.Builder
	for _, topic := range expanded {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted list of available topics, without
// the readme. The embedded filesystem is flat, every entry is a topic
// file.
func GetAllTopics() ([]string, error) {
	entries, err := docs.ReadDir(".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		name := strings.TrimSuffix(e.Name(), ".md")
		if name == "readme" {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics, nil
}
