package session

import "sort"

// Op identifies a logical command.
type Op int

const (
	OpInsertText Op = iota
	OpPaste
	OpMoveCursor
	OpMoveWord
	OpDeleteBack
	OpDeleteFwd
	OpDeleteToStart
	OpDeleteToEnd
	OpDeleteWordBack
	OpSelectUp
	OpSelectDown
	OpSelectLeftCell
	OpSelectRightCell
	OpLeft
	OpRight
	OpPageUp
	OpPageDown
	OpJumpHome
	OpJumpEnd
	OpTabComplete
	OpAccept
	OpAcceptInput
	OpToggleMark
	OpCancel
)

// Command is one logical input event. Text is used by OpInsertText and
// OpPaste, Dir by the motion commands, Mark by OpAccept.
type Command struct {
	Op   Op
	Text string
	Dir  int
	Mark bool
}

func InsertText(s string) Command { return Command{Op: OpInsertText, Text: s} }
func Paste(s string) Command      { return Command{Op: OpPaste, Text: s} }
func MoveCursor(dir int) Command  { return Command{Op: OpMoveCursor, Dir: dir} }
func MoveWord(dir int) Command    { return Command{Op: OpMoveWord, Dir: dir} }
func Accept(mark bool) Command    { return Command{Op: OpAccept, Mark: mark} }
func DeleteBack() Command         { return simple(OpDeleteBack) }
func DeleteFwd() Command          { return simple(OpDeleteFwd) }
func DeleteToStart() Command      { return simple(OpDeleteToStart) }
func DeleteToEnd() Command        { return simple(OpDeleteToEnd) }
func DeleteWordBack() Command     { return simple(OpDeleteWordBack) }
func SelectUp() Command           { return simple(OpSelectUp) }
func SelectDown() Command         { return simple(OpSelectDown) }
func SelectLeftCell() Command     { return simple(OpSelectLeftCell) }
func SelectRightCell() Command    { return simple(OpSelectRightCell) }
func Left() Command               { return simple(OpLeft) }
func Right() Command              { return simple(OpRight) }
func PageUp() Command             { return simple(OpPageUp) }
func PageDown() Command           { return simple(OpPageDown) }
func JumpHome() Command           { return simple(OpJumpHome) }
func JumpEnd() Command            { return simple(OpJumpEnd) }
func TabComplete() Command        { return simple(OpTabComplete) }
func AcceptInput() Command        { return simple(OpAcceptInput) }
func ToggleMark() Command         { return simple(OpToggleMark) }
func Cancel() Command             { return simple(OpCancel) }

func simple(op Op) Command { return Command{Op: op} }

// actions names every command that takes no free-form text, for key binding
// configuration.
var actions = map[string]Command{
	"cursor-left":      MoveCursor(-1),
	"cursor-right":     MoveCursor(+1),
	"word-left":        MoveWord(-1),
	"word-right":       MoveWord(+1),
	"delete-back":      DeleteBack(),
	"delete-forward":   DeleteFwd(),
	"delete-to-start":  DeleteToStart(),
	"delete-to-end":    DeleteToEnd(),
	"delete-word-back": DeleteWordBack(),
	"up":               SelectUp(),
	"down":             SelectDown(),
	"cell-left":        SelectLeftCell(),
	"cell-right":       SelectRightCell(),
	"left":             Left(),
	"right":            Right(),
	"page-up":          PageUp(),
	"page-down":        PageDown(),
	"home":             JumpHome(),
	"end":              JumpEnd(),
	"complete":         TabComplete(),
	"accept":           Accept(false),
	"accept-mark":      Accept(true),
	"accept-input":     AcceptInput(),
	"toggle-mark":      ToggleMark(),
	"cancel":           Cancel(),
}

// Action returns the command bound to an action name.
func Action(name string) (Command, bool) {
	cmd, ok := actions[name]
	return cmd, ok
}

// ActionNames returns every known action name, sorted.
func ActionNames() []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
