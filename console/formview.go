package console

import "strings"

// view renders the form body. A succeeded form shows only the success
// banner, the way the original pages replaced the form with it while
// the redirect timer ran.
func (f *form) view() string {
	var b strings.Builder
	if f.phase == formSucceeded {
		b.WriteString(banner(f.successMsg, true))
		return b.String()
	}

	b.WriteString(banner(f.errMsg, false))
	for i := range f.fields {
		fld := &f.fields[i]
		style := labelStyle
		if i == f.cursor {
			style = focusedLabelStyle
		}
		b.WriteString(style.Render(fld.label))
		b.WriteString("\n")
		if fld.kind == fieldSelect {
			b.WriteString(renderSelect(fld, i == f.cursor))
		} else {
			b.WriteString(fld.input.View())
		}
		b.WriteString("\n\n")
	}

	if f.phase == formSubmitting {
		b.WriteString(subtitleStyle.Render("Submitting..."))
		b.WriteString("\n")
	}
	return b.String()
}

func renderSelect(fld *field, focused bool) string {
	value := fld.value()
	if value == "" {
		value = "Select " + strings.ToLower(fld.label)
	}
	if focused {
		return "◀ " + value + " ▶"
	}
	return "  " + value
}
