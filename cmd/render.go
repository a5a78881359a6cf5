package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/charmbracelet/glamour"
)

// printMarkdown renders markdown for the terminal. On any rendering
// problem it falls back to printing the raw markdown, the content
// matters more than the styling.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		fmt.Println(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}

// printQuery marshals v to its wire JSON and prints the values selected
// by a jsonpath expression, one per line. Backing the -q flag on the
// list commands.
func printQuery(v any, query string) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var jobj any
	if err := json.Unmarshal(raw, &jobj); err != nil {
		return err
	}
	jval, err := jsonpath.Get(query, jobj)
	if err != nil {
		return fmt.Errorf("query %q: %w", query, err)
	}
	// jsonpath returns either a list of matches or a single value
	if jlist, ok := jval.([]any); ok {
		for _, item := range jlist {
			printQueryValue(item)
		}
		return nil
	}
	printQueryValue(jval)
	return nil
}

func printQueryValue(v any) {
	switch v := v.(type) {
	case string:
		fmt.Println(v)
	case float64:
		fmt.Println(formatQueryNumber(v))
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return
		}
		fmt.Println(string(raw))
	}
}

func formatQueryNumber(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%d", int64(f))
	}
	return fmt.Sprintf("%g", f)
}
