package docs

import (
	"bufio"
	"os"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the topic names advertised in readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()
	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		if m := topicRegex.FindStringSubmatch(scanner.Text()); len(m) > 1 {
			topics = append(topics, strings.TrimSpace(m[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}

func TestReadmeListsEveryTopic(t *testing.T) {
	inReadme := readmeTopics(t)
	if len(inReadme) == 0 {
		t.Fatal("no topics advertised in readme.md")
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() = %v", err)
	}

	for _, topic := range inReadme {
		if _, err := GetTopic(topic); err != nil {
			t.Errorf("advertised topic %q cannot be loaded: %v", topic, err)
		}
	}
	for _, topic := range all {
		if !slices.Contains(inReadme, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestUnknownTopic(t *testing.T) {
	if _, err := GetTopic("no-such-topic"); err == nil {
		t.Error("GetTopic accepted an unknown topic")
	}
}

func TestStarExpandsAllTopics(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	expanded, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(*) = %v", err)
	}
	for _, topic := range all {
		content, _ := GetTopic(topic)
		if !strings.Contains(expanded, content) {
			t.Errorf("expansion is missing topic %q", topic)
		}
	}
}

// Every topic must be valid markdown opening with a level-1 heading,
// so concatenated topics render as separate sections.
func TestTopicsStartWithHeading(t *testing.T) {
	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	all = append(all, "readme")

	for _, topic := range all {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			first := root.FirstChild()
			h, ok := first.(*ast.Heading)
			if !ok {
				t.Fatalf("first block is %T, want heading", first)
			}
			if h.Level != 1 {
				t.Errorf("first heading level = %d, want 1", h.Level)
			}
		})
	}
}
