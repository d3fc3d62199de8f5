package token

import "fmt"

// Kind is the closed set of token kinds produced by the tokenizer: a
// discriminated tag, never a general-purpose string. Values are grouped
// by category (literals, keywords, operators, delimiters, specials);
// the grouping has no significance beyond readability.
type Kind int

const (
	Unknown Kind = iota
	EOF

	// --- literals ---
	Number
	String
	StringStart
	StringMiddle
	StringEnd
	Variable
	Identifier
	EncapsedAndWhitespace

	// --- specials ---
	OpenTag
	OpenTagEcho
	CloseTag
	InlineHTML
	Comment
	DocComment
	Whitespace
	Newline
	StartHeredoc
	EndHeredoc
	Attribute

	// --- keywords (table-driven, case-insensitive) ---
	KwAbstract
	KwAnd
	KwArray
	KwAs
	KwBreak
	KwCallable
	KwCase
	KwCatch
	KwClass
	KwClone
	KwConst
	KwContinue
	KwDeclare
	KwDefault
	KwDo
	KwEcho
	KwElse
	KwElseif
	KwEmpty
	KwEnddeclare
	KwEndfor
	KwEndforeach
	KwEndif
	KwEndswitch
	KwEndwhile
	KwEnum
	KwEval
	KwExit
	KwExtends
	KwFinal
	KwFinally
	KwFn
	KwFor
	KwForeach
	KwFunction
	KwGlobal
	KwGoto
	KwIf
	KwImplements
	KwInclude
	KwIncludeOnce
	KwInsteadof
	KwInstanceof
	KwInterface
	KwIsset
	KwList
	KwMatch
	KwNamespace
	KwNew
	KwOr
	KwPrint
	KwPrivate
	KwProtected
	KwPublic
	KwReadonly
	KwRequire
	KwRequireOnce
	KwReturn
	KwStatic
	KwSwitch
	KwThrow
	KwTrait
	KwTry
	KwUnset
	KwUse
	KwVar
	KwWhile
	KwXor
	KwYield
	KwYieldFrom
	KwHaltCompiler
	// contextual, PHP 8.4 property-hook keywords
	KwGet
	KwSet

	// magic constants
	KwLine
	KwFile
	KwDir
	KwClassC
	KwTraitC
	KwMethodC
	KwFuncC
	KwNsC
	KwPropertyC

	// literal keywords
	KwTrue
	KwFalse
	KwNull

	// --- operators / punctuation ---
	Plus
	Minus
	Star
	Slash
	Percent
	Pow      // **
	Dot      // .
	Bang     // !
	Tilde    // ~
	At       // @
	Amp      // &
	Pipe     // |
	Caret    // ^
	Lt       // <
	Gt       // >
	Assign   // =
	Question // ?
	Colon    // :
	Dollar   // $
	Backslash
	Comma
	Semicolon
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket

	PlusPlus   // ++
	MinusMinus // --

	PlusEq     // +=
	MinusEq    // -=
	StarEq     // *=
	SlashEq    // /=
	PercentEq  // %=
	DotEq      // .=
	AmpEq      // &=
	PipeEq     // |=
	CaretEq    // ^=
	ShlEq      // <<=
	ShrEq      // >>=
	PowEq      // **=
	CoalesceEq // ??=

	EqEq       // ==
	NotEq      // != or <>
	EqEqEq     // ===
	NotEqEq    // !==
	LtEq       // <=
	GtEq       // >=
	Spaceship  // <=>
	BoolAnd    // &&
	BoolOr     // ||
	Coalesce   // ??
	Shl        // <<
	Shr        // >>
	Arrow      // ->
	NullsafeArrow
	DoubleArrow // =>
	DoubleColon // ::
	Ellipsis    // ...
	NsSeparator // \ (alias of Backslash in identifier position)

	IntCast
	FloatCast
	StringCast
	ArrayCast
	ObjectCast
	BoolCast
	UnsetCast
)

var names = map[Kind]string{
	Unknown:               "Unknown",
	EOF:                   "EOF",
	Number:                "Number",
	String:                "String",
	StringStart:           "StringStart",
	StringMiddle:          "StringMiddle",
	StringEnd:             "StringEnd",
	Variable:              "Variable",
	Identifier:            "Identifier",
	EncapsedAndWhitespace: "EncapsedAndWhitespace",
	OpenTag:               "OpenTag",
	OpenTagEcho:           "OpenTagEcho",
	CloseTag:              "CloseTag",
	InlineHTML:            "InlineHTML",
	Comment:               "Comment",
	DocComment:            "DocComment",
	Whitespace:            "Whitespace",
	Newline:               "Newline",
	StartHeredoc:          "StartHeredoc",
	EndHeredoc:            "EndHeredoc",
	Attribute:             "Attribute",

	KwAbstract: "abstract", KwAnd: "and", KwArray: "array", KwAs: "as",
	KwBreak: "break", KwCallable: "callable", KwCase: "case", KwCatch: "catch",
	KwClass: "class", KwClone: "clone", KwConst: "const", KwContinue: "continue",
	KwDeclare: "declare", KwDefault: "default", KwDo: "do", KwEcho: "echo",
	KwElse: "else", KwElseif: "elseif", KwEmpty: "empty", KwEnddeclare: "enddeclare",
	KwEndfor: "endfor", KwEndforeach: "endforeach", KwEndif: "endif",
	KwEndswitch: "endswitch", KwEndwhile: "endwhile", KwEnum: "enum",
	KwEval: "eval", KwExit: "exit", KwExtends: "extends", KwFinal: "final",
	KwFinally: "finally", KwFn: "fn", KwFor: "for", KwForeach: "foreach",
	KwFunction: "function", KwGlobal: "global", KwGoto: "goto", KwIf: "if",
	KwImplements: "implements", KwInclude: "include", KwIncludeOnce: "include_once",
	KwInsteadof: "insteadof", KwInstanceof: "instanceof", KwInterface: "interface",
	KwIsset: "isset", KwList: "list", KwMatch: "match", KwNamespace: "namespace",
	KwNew: "new", KwOr: "or", KwPrint: "print", KwPrivate: "private",
	KwProtected: "protected", KwPublic: "public", KwReadonly: "readonly",
	KwRequire: "require", KwRequireOnce: "require_once", KwReturn: "return",
	KwStatic: "static", KwSwitch: "switch", KwThrow: "throw", KwTrait: "trait",
	KwTry: "try", KwUnset: "unset", KwUse: "use", KwVar: "var", KwWhile: "while",
	KwXor: "xor", KwYield: "yield", KwYieldFrom: "yield from",
	KwHaltCompiler: "__halt_compiler", KwGet: "get", KwSet: "set",
	KwLine: "__LINE__", KwFile: "__FILE__", KwDir: "__DIR__",
	KwClassC: "__CLASS__", KwTraitC: "__TRAIT__", KwMethodC: "__METHOD__",
	KwFuncC: "__FUNCTION__", KwNsC: "__NAMESPACE__", KwPropertyC: "__PROPERTY__",
	KwTrue: "true", KwFalse: "false", KwNull: "null",

	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%", Pow: "**",
	Dot: ".", Bang: "!", Tilde: "~", At: "@", Amp: "&", Pipe: "|", Caret: "^",
	Lt: "<", Gt: ">", Assign: "=", Question: "?", Colon: ":", Dollar: "$",
	Backslash: `\`, Comma: ",", Semicolon: ";", LParen: "(", RParen: ")",
	LBrace: "{", RBrace: "}", LBracket: "[", RBracket: "]",
	PlusPlus: "++", MinusMinus: "--",
	PlusEq: "+=", MinusEq: "-=", StarEq: "*=", SlashEq: "/=", PercentEq: "%=",
	DotEq: ".=", AmpEq: "&=", PipeEq: "|=", CaretEq: "^=", ShlEq: "<<=",
	ShrEq: ">>=", PowEq: "**=", CoalesceEq: "??=",
	EqEq: "==", NotEq: "!=", EqEqEq: "===", NotEqEq: "!==", LtEq: "<=",
	GtEq: ">=", Spaceship: "<=>", BoolAnd: "&&", BoolOr: "||", Coalesce: "??",
	Shl: "<<", Shr: ">>", Arrow: "->", NullsafeArrow: "?->",
	DoubleArrow: "=>", DoubleColon: "::", Ellipsis: "...", NsSeparator: `\`,
	IntCast: "(int)", FloatCast: "(float)", StringCast: "(string)",
	ArrayCast: "(array)", ObjectCast: "(object)", BoolCast: "(bool)",
	UnsetCast: "(unset)",
}

func (k Kind) String() string {
	if n, ok := names[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// phpNames maps the subset of kinds that correspond to an official PHP
// engine T_* constant name, per spec's wire-compatibility requirement.
// Kinds with no PHP engine counterpart (e.g. single-char punctuation
// PHP represents by its rune value, not a T_* symbol) are absent.
var phpNames = map[Kind]string{
	Number:                "T_LNUMBER", // refined to T_DNUMBER by payload.IsFloat
	String:                "T_CONSTANT_ENCAPSED_STRING",
	Variable:              "T_VARIABLE",
	Identifier:            "T_STRING",
	EncapsedAndWhitespace: "T_ENCAPSED_AND_WHITESPACE",
	InlineHTML:            "T_INLINE_HTML",
	Comment:               "T_COMMENT",
	DocComment:            "T_DOC_COMMENT",
	Whitespace:            "T_WHITESPACE",
	OpenTag:               "T_OPEN_TAG",
	OpenTagEcho:           "T_OPEN_TAG_WITH_ECHO",
	CloseTag:              "T_CLOSE_TAG",
	StartHeredoc:          "T_START_HEREDOC",
	EndHeredoc:            "T_END_HEREDOC",
	Attribute:             "T_ATTRIBUTE",

	KwAbstract: "T_ABSTRACT", KwAnd: "T_LOGICAL_AND", KwArray: "T_ARRAY",
	KwAs: "T_AS", KwBreak: "T_BREAK", KwCallable: "T_CALLABLE",
	KwCase: "T_CASE", KwCatch: "T_CATCH", KwClass: "T_CLASS",
	KwClone: "T_CLONE", KwConst: "T_CONST", KwContinue: "T_CONTINUE",
	KwDeclare: "T_DECLARE", KwDefault: "T_DEFAULT", KwDo: "T_DO",
	KwEcho: "T_ECHO", KwElse: "T_ELSE", KwElseif: "T_ELSEIF",
	KwEmpty: "T_EMPTY", KwEnddeclare: "T_ENDDECLARE", KwEndfor: "T_ENDFOR",
	KwEndforeach: "T_ENDFOREACH", KwEndif: "T_ENDIF", KwEndswitch: "T_ENDSWITCH",
	KwEndwhile: "T_ENDWHILE", KwEnum: "T_ENUM", KwEval: "T_EVAL",
	KwExit: "T_EXIT", KwExtends: "T_EXTENDS", KwFinal: "T_FINAL",
	KwFinally: "T_FINALLY", KwFn: "T_FN", KwFor: "T_FOR", KwForeach: "T_FOREACH",
	KwFunction: "T_FUNCTION", KwGlobal: "T_GLOBAL", KwGoto: "T_GOTO",
	KwIf: "T_IF", KwImplements: "T_IMPLEMENTS", KwInclude: "T_INCLUDE",
	KwIncludeOnce: "T_INCLUDE_ONCE", KwInsteadof: "T_INSTEADOF",
	KwInstanceof: "T_INSTANCEOF", KwInterface: "T_INTERFACE", KwIsset: "T_ISSET",
	KwList: "T_LIST", KwMatch: "T_MATCH", KwNamespace: "T_NAMESPACE",
	KwNew: "T_NEW", KwOr: "T_LOGICAL_OR", KwPrint: "T_PRINT",
	KwPrivate: "T_PRIVATE", KwProtected: "T_PROTECTED", KwPublic: "T_PUBLIC",
	KwReadonly: "T_READONLY", KwRequire: "T_REQUIRE",
	KwRequireOnce: "T_REQUIRE_ONCE", KwReturn: "T_RETURN", KwStatic: "T_STATIC",
	KwSwitch: "T_SWITCH", KwThrow: "T_THROW", KwTrait: "T_TRAIT",
	KwTry: "T_TRY", KwUnset: "T_UNSET", KwUse: "T_USE", KwVar: "T_VAR",
	KwWhile: "T_WHILE", KwXor: "T_LOGICAL_XOR", KwYield: "T_YIELD",
	KwYieldFrom: "T_YIELD_FROM", KwHaltCompiler: "T_HALT_COMPILER",
	KwGet: "T_GET", KwSet: "T_SET",
	KwLine: "T_LINE", KwFile: "T_FILE", KwDir: "T_DIR", KwClassC: "T_CLASS_C",
	KwTraitC: "T_TRAIT_C", KwMethodC: "T_METHOD_C", KwFuncC: "T_FUNC_C",
	KwNsC: "T_NS_C", KwPropertyC: "T_PROPERTY_C",

	DoubleArrow: "T_DOUBLE_ARROW", DoubleColon: "T_PAAMAYIM_NEKUDOTAYIM",
	Ellipsis: "T_ELLIPSIS", NsSeparator: "T_NS_SEPARATOR",
	EqEq: "T_IS_EQUAL", NotEq: "T_IS_NOT_EQUAL", EqEqEq: "T_IS_IDENTICAL",
	NotEqEq: "T_IS_NOT_IDENTICAL", LtEq: "T_IS_SMALLER_OR_EQUAL",
	GtEq: "T_IS_GREATER_OR_EQUAL", Spaceship: "T_SPACESHIP",
	BoolAnd: "T_BOOLEAN_AND", BoolOr: "T_BOOLEAN_OR", Coalesce: "T_COALESCE",
	Shl: "T_SL", Shr: "T_SR", Arrow: "T_OBJECT_OPERATOR",
	NullsafeArrow: "T_NULLSAFE_OBJECT_OPERATOR",
	PlusEq:        "T_PLUS_EQUAL", MinusEq: "T_MINUS_EQUAL", StarEq: "T_MUL_EQUAL",
	SlashEq: "T_DIV_EQUAL", DotEq: "T_CONCAT_EQUAL", PercentEq: "T_MOD_EQUAL",
	AmpEq: "T_AND_EQUAL", PipeEq: "T_OR_EQUAL", CaretEq: "T_XOR_EQUAL",
	ShlEq: "T_SL_EQUAL", ShrEq: "T_SR_EQUAL", PowEq: "T_POW_EQUAL",
	CoalesceEq: "T_COALESCE_EQUAL", PlusPlus: "T_INC", MinusMinus: "T_DEC",
	Pow: "T_POW",
	IntCast: "T_INT_CAST", FloatCast: "T_DOUBLE_CAST", StringCast: "T_STRING_CAST",
	ArrayCast: "T_ARRAY_CAST", ObjectCast: "T_OBJECT_CAST", BoolCast: "T_BOOL_CAST",
	UnsetCast: "T_UNSET_CAST",
}

// PHPName returns the PHP engine T_* constant name this kind maps to,
// or "" if the kind has no engine counterpart (plain single-char
// punctuation, which the engine represents by rune value).
func (k Kind) PHPName() string {
	return phpNames[k]
}

// Keywords is the case-insensitive keyword table: lower-cased source
// text to Kind. "die" and "__halt_compiler" both alias KwExit; the
// tokenizer keeps scanning after either.
var Keywords = map[string]Kind{
	"abstract": KwAbstract, "and": KwAnd, "array": KwArray, "as": KwAs,
	"break": KwBreak, "callable": KwCallable, "case": KwCase, "catch": KwCatch,
	"class": KwClass, "clone": KwClone, "const": KwConst, "continue": KwContinue,
	"declare": KwDeclare, "default": KwDefault, "do": KwDo, "echo": KwEcho,
	"else": KwElse, "elseif": KwElseif, "empty": KwEmpty, "enddeclare": KwEnddeclare,
	"endfor": KwEndfor, "endforeach": KwEndforeach, "endif": KwEndif,
	"endswitch": KwEndswitch, "endwhile": KwEndwhile, "enum": KwEnum,
	"eval": KwEval, "exit": KwExit, "die": KwExit, "extends": KwExtends,
	"final": KwFinal, "finally": KwFinally, "fn": KwFn, "for": KwFor,
	"foreach": KwForeach, "function": KwFunction, "global": KwGlobal,
	"goto": KwGoto, "if": KwIf, "implements": KwImplements, "include": KwInclude,
	"include_once": KwIncludeOnce, "insteadof": KwInsteadof,
	"instanceof": KwInstanceof, "interface": KwInterface, "isset": KwIsset,
	"list": KwList, "match": KwMatch, "namespace": KwNamespace, "new": KwNew,
	"or": KwOr, "print": KwPrint, "private": KwPrivate, "protected": KwProtected,
	"public": KwPublic, "readonly": KwReadonly, "require": KwRequire,
	"require_once": KwRequireOnce, "return": KwReturn, "static": KwStatic,
	"switch": KwSwitch, "throw": KwThrow, "trait": KwTrait, "try": KwTry,
	"unset": KwUnset, "use": KwUse, "var": KwVar, "while": KwWhile,
	"xor": KwXor, "yield": KwYield, "__halt_compiler": KwExit,
	"__line__": KwLine, "__file__": KwFile, "__dir__": KwDir,
	"__class__": KwClassC, "__trait__": KwTraitC, "__method__": KwMethodC,
	"__function__": KwFuncC, "__namespace__": KwNsC, "__property__": KwPropertyC,
	"true": KwTrue, "false": KwFalse, "null": KwNull,
}

// LookupKeyword reports whether the lower-cased identifier text names a
// keyword, and if so its Kind. "get"/"set" are deliberately excluded:
// they are contextual (property hooks) and classified by the parser,
// not the lexer, per the teacher's treatment of T_GET/T_SET.
func LookupKeyword(lowerText string) (Kind, bool) {
	k, ok := Keywords[lowerText]
	return k, ok
}

// IsStatementStarter reports whether k may begin a new statement; used
// by the parser's synchronize() panic-recovery routine.
func IsStatementStarter(k Kind) bool {
	switch k {
	case KwClass, KwFunction, KwVar, KwFor, KwIf, KwWhile, KwPrint, KwReturn:
		return true
	default:
		return false
	}
}
