package console

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/avikale/stockdesk"
)

// formPhase is the submission state machine every create/edit page
// shares: editing -> submitting -> succeeded or failed. Failed keeps
// the drafts and returns to editing on the next keystroke; succeeded
// is terminal for the page instance.
type formPhase int

const (
	formEditing formPhase = iota
	formSubmitting
	formSucceeded
	formFailed
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldSelect
	fieldNumeric
	fieldDateTime
)

// field is one input of a form: either a free-text draft backed by a
// textinput, or a fixed option list.
type field struct {
	name    string
	label   string
	kind    fieldKind
	options []string
	option  int // selected option index, -1 for the empty choice
	input   textinput.Model
}

func newTextField(name, label, placeholder string, charLimit int) field {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = charLimit
	ti.Prompt = ""
	return field{name: name, label: label, kind: fieldText, input: ti}
}

// newNumericField builds a price/quantity input. Its draft value is
// filtered on every keystroke: only digits and a single decimal point
// survive.
func newNumericField(name, label, placeholder string) field {
	f := newTextField(name, label, placeholder, 20)
	f.kind = fieldNumeric
	return f
}

// newDateTimeField builds a timestamp input, edited in the picker form
// "YYYY-MM-DDTHH:MM" (seconds optional).
func newDateTimeField(name, label string) field {
	f := newTextField(name, label, "YYYY-MM-DDTHH:MM", 19)
	f.kind = fieldDateTime
	return f
}

// newSelectField builds an option list. selected -1 starts on the
// empty "select one" choice.
func newSelectField(name, label string, options []string, selected int) field {
	return field{name: name, label: label, kind: fieldSelect, options: options, option: selected}
}

func (f *field) editable() bool { return f.kind != fieldSelect }

// value returns the current draft of the field.
func (f *field) value() string {
	if f.kind == fieldSelect {
		if f.option < 0 || f.option >= len(f.options) {
			return ""
		}
		return f.options[f.option]
	}
	return f.input.Value()
}

func (f *field) setValue(v string) {
	if f.kind == fieldSelect {
		f.option = -1
		for i, opt := range f.options {
			if opt == v {
				f.option = i
				break
			}
		}
		return
	}
	f.input.SetValue(v)
}

func (f *field) cycle(delta int) {
	if f.kind != fieldSelect || len(f.options) == 0 {
		return
	}
	f.option += delta
	if f.option < 0 {
		f.option = len(f.options) - 1
	}
	if f.option >= len(f.options) {
		f.option = 0
	}
}

// form is the controller shared by every create/edit page. It owns the
// draft values, the submission phase and the banner copy; the owning
// page supplies validation and the actual backend call.
type form struct {
	fields []field
	cursor int

	phase      formPhase
	errMsg     string
	successMsg string

	gen int
}

func newForm(fields ...field) *form {
	f := &form{fields: fields}
	f.syncFocus()
	return f
}

func (f *form) field(name string) *field {
	for i := range f.fields {
		if f.fields[i].name == name {
			return &f.fields[i]
		}
	}
	return nil
}

// value returns the draft of the named field, "" when absent.
func (f *form) value(name string) string {
	if fld := f.field(name); fld != nil {
		return fld.value()
	}
	return ""
}

// setValue pre-populates a field, used by the edit variants.
func (f *form) setValue(name, v string) {
	if fld := f.field(name); fld != nil {
		fld.setValue(v)
	}
}

func (f *form) syncFocus() {
	for i := range f.fields {
		f.fields[i].input.Blur()
	}
	if f.cursor >= 0 && f.cursor < len(f.fields) && f.fields[f.cursor].editable() {
		f.fields[f.cursor].input.Focus()
	}
}

func (f *form) move(delta int) {
	if len(f.fields) == 0 {
		return
	}
	f.cursor = (f.cursor + delta + len(f.fields)) % len(f.fields)
	f.syncFocus()
}

// capturing reports whether the focused field consumes plain keystrokes.
func (f *form) capturing() bool {
	if f.phase == formSubmitting || f.phase == formSucceeded {
		return false
	}
	return f.cursor >= 0 && f.cursor < len(f.fields) && f.fields[f.cursor].editable()
}

func (f *form) submitting() bool { return f.phase == formSubmitting }
func (f *form) succeeded() bool  { return f.phase == formSucceeded }

// clearNotice drops the banner once the user resumes editing.
func (f *form) clearNotice() {
	f.errMsg = ""
	if f.phase == formFailed {
		f.phase = formEditing
	}
}

// update applies a message to the drafts. submit is true when the user
// requested submission; the page then validates and either rejects or
// begins the call. While a submission is in flight all input is
// ignored, which is the only duplicate-submit protection needed.
func (f *form) update(msg tea.Msg) (submit bool, cmd tea.Cmd) {
	if f.phase == formSubmitting || f.phase == formSucceeded {
		return false, nil
	}

	key, isKey := msg.(tea.KeyMsg)
	if !isKey {
		var cmds []tea.Cmd
		for i := range f.fields {
			var c tea.Cmd
			f.fields[i].input, c = f.fields[i].input.Update(msg)
			cmds = append(cmds, c)
		}
		return false, tea.Batch(cmds...)
	}

	switch key.String() {
	case "enter":
		return true, nil
	case "tab", "down":
		f.move(1)
		return false, nil
	case "shift+tab", "up":
		f.move(-1)
		return false, nil
	}

	if f.cursor < 0 || f.cursor >= len(f.fields) {
		return false, nil
	}
	fld := &f.fields[f.cursor]

	if fld.kind == fieldSelect {
		switch key.String() {
		case "left":
			fld.cycle(-1)
			f.clearNotice()
		case "right", " ":
			fld.cycle(1)
			f.clearNotice()
		}
		return false, nil
	}

	fld.input, cmd = fld.input.Update(key)
	if fld.kind == fieldNumeric {
		// live filter, not just submit-time validation
		filtered := stockdesk.FilterNumeric(fld.input.Value())
		if filtered != fld.input.Value() {
			fld.input.SetValue(filtered)
			fld.input.CursorEnd()
		}
	}
	f.clearNotice()
	return false, cmd
}

// failValidation keeps the form in editing and shows the message; no
// network call was made.
func (f *form) failValidation(msg string) {
	f.errMsg = sentence(msg)
}

// beginSubmit transitions to submitting and returns the generation the
// in-flight call must carry.
func (f *form) beginSubmit() int {
	f.phase = formSubmitting
	f.errMsg = ""
	f.gen++
	return f.gen
}

// resolveSubmit applies the submission outcome. Stale generations are
// dropped (the page instance they belong to is gone). Failure returns
// to editing with the drafts retained; success shows the banner and
// leaves the redirect to the page's success timer.
func (f *form) resolveSubmit(gen int, err error, successMsg string) bool {
	if gen != f.gen {
		return false
	}
	if err != nil {
		f.phase = formFailed
		f.errMsg = sentence(err.Error())
		return true
	}
	f.phase = formSucceeded
	f.successMsg = successMsg
	return true
}

// successTimerMsg fires after successRedirectDelay to trigger the
// post-success navigation.
type successTimerMsg struct{ gen int }

func successTimer(gen int) tea.Cmd {
	return tea.Tick(successRedirectDelay, func(time.Time) tea.Msg {
		return successTimerMsg{gen: gen}
	})
}

// expired reports whether a success timer belongs to the current
// submission.
func (f *form) owns(msg successTimerMsg) bool { return msg.gen == f.gen }
