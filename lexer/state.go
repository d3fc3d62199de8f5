package lexer

import "github.com/wudi/phpfront/token"

// Mode is one of the tokenizer's lexical modes.
type Mode int

const (
	ModeNormal Mode = iota // ST_INITIAL: outside <?php, emitting InlineHTML
	ModeScripting
	ModeDoubleQuotes
	ModeHeredoc
	ModeNowdoc
	ModeVarOffset
	ModeLookingForProperty
	ModeLookingForVarname
	ModeBackquote
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeScripting:
		return "Scripting"
	case ModeDoubleQuotes:
		return "DoubleQuotes"
	case ModeHeredoc:
		return "Heredoc"
	case ModeNowdoc:
		return "Nowdoc"
	case ModeVarOffset:
		return "VarOffset"
	case ModeLookingForProperty:
		return "LookingForProperty"
	case ModeLookingForVarname:
		return "LookingForVarname"
	case ModeBackquote:
		return "Backquote"
	default:
		return "Unknown"
	}
}

// StringContextKind classifies the kind of quoted construct a
// StringContext belongs to.
type StringContextKind int

const (
	ContextDouble StringContextKind = iota
	ContextHeredoc
	ContextBacktick
)

// StringContext tracks one active interpolated-string construct: its
// kind, how many `{`/`}` nest inside a `{$...}`/`${...}` expression,
// and how deep nested interpolations go (a defensive bound, not a PHP
// requirement, matching the teacher's flat single-level handling with
// room for the spec's explicit nestLevel/interpolationDepth fields).
type StringContext struct {
	Kind              StringContextKind
	NestLevel         int
	InterpolationDepth int
}

// StateStack is a stack of lexer modes with a parallel stack of string
// contexts. The base Normal mode can never be popped.
type StateStack struct {
	modes    []Mode
	contexts []StringContext
}

// NewStateStack returns a stack primed with the base Normal mode.
func NewStateStack() *StateStack {
	s := &StateStack{modes: make([]Mode, 0, 8), contexts: make([]StringContext, 0, 8)}
	s.modes = append(s.modes, ModeNormal)
	return s
}

func (s *StateStack) Push(m Mode) {
	s.modes = append(s.modes, m)
}

func (s *StateStack) PushString(m Mode, ctx StringContext) {
	s.modes = append(s.modes, m)
	s.contexts = append(s.contexts, ctx)
}

// Pop removes and returns the top mode. It refuses to pop the base
// Normal state: popping with only Normal left is a no-op that returns
// Normal, leaving the stack with its single base entry intact.
func (s *StateStack) Pop() Mode {
	if len(s.modes) <= 1 {
		return ModeNormal
	}
	top := s.modes[len(s.modes)-1]
	s.modes = s.modes[:len(s.modes)-1]
	if top != ModeNormal && top != ModeScripting && len(s.contexts) > 0 {
		s.contexts = s.contexts[:len(s.contexts)-1]
	}
	return top
}

func (s *StateStack) Peek() Mode {
	return s.modes[len(s.modes)-1]
}

func (s *StateStack) PeekContext() (StringContext, bool) {
	if len(s.contexts) == 0 {
		return StringContext{}, false
	}
	return s.contexts[len(s.contexts)-1], true
}

func (s *StateStack) IsEmpty() bool {
	return len(s.modes) == 0
}

func (s *StateStack) Size() int {
	return len(s.modes)
}

func (s *StateStack) Reset() {
	s.modes = s.modes[:0]
	s.modes = append(s.modes, ModeNormal)
	s.contexts = s.contexts[:0]
}

// Clone deep-copies the stack, so a caller can look ahead without
// mutating live lexer state.
func (s *StateStack) Clone() *StateStack {
	c := &StateStack{
		modes:    append([]Mode(nil), s.modes...),
		contexts: append([]StringContext(nil), s.contexts...),
	}
	return c
}

// TransitionByToken updates the mode stack in response to a token the
// tokenizer just produced; most token kinds do not drive the state
// stack directly (the tokenizer enters/leaves modes explicitly at scan
// sites instead, matching the teacher's lexer). This entry point
// tracks only string and heredoc nesting: StringEnd pops, StartHeredoc
// pushes ModeHeredoc (a nowdoc is recorded as ModeHeredoc too), and
// EndHeredoc pops. Open and close tags and all other kinds leave the
// stack unchanged.
func (s *StateStack) TransitionByToken(k token.Kind) {
	switch k {
	case token.StringEnd:
		s.Pop()
	case token.StartHeredoc:
		s.Push(ModeHeredoc)
	case token.EndHeredoc:
		s.Pop()
	}
}

// expectedByMode names, for diagnostics and recovery, the token kinds
// that are syntactically meaningful in each mode. This does not affect
// scanning; it is the getExpectedTokens() query the spec's lexer-state
// manager design calls for.
var expectedByMode = map[Mode][]token.Kind{
	ModeNormal:             {token.InlineHTML, token.OpenTag, token.OpenTagEcho},
	ModeScripting:          {token.Identifier, token.Variable, token.Number, token.String, token.CloseTag},
	ModeDoubleQuotes:       {token.EncapsedAndWhitespace, token.Variable, token.StringEnd},
	ModeHeredoc:            {token.EncapsedAndWhitespace, token.EndHeredoc},
	ModeNowdoc:             {token.EncapsedAndWhitespace, token.EndHeredoc},
	ModeVarOffset:          {token.Number, token.Identifier, token.RBracket},
	ModeLookingForProperty: {token.Identifier, token.Arrow},
	ModeLookingForVarname:  {token.Identifier, token.LBrace},
	ModeBackquote:          {token.EncapsedAndWhitespace, token.Variable, token.StringEnd},
}

// GetExpectedTokens returns the kinds valid in the current top mode.
func (s *StateStack) GetExpectedTokens() []token.Kind {
	return expectedByMode[s.Peek()]
}
