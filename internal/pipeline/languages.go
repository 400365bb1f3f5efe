package pipeline

import "strings"

// Line comment markers by language family.
const (
	commentSlashes = "//"
	commentHash    = "#"
	commentDashes  = "--"
)

// language describes the lexical rules used to highlight one language.
// Values are built once at package init and never modified.
type language struct {
	blockComments   bool
	lineComment     string
	keywords        map[string]struct{}
	caseInsensitive bool
}

func (l *language) isKeyword(word string) bool {
	if l.caseInsensitive {
		word = strings.ToLower(word)
	}
	_, ok := l.keywords[word]
	return ok
}

func wordSet(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}

func cFamily(keywords string) *language {
	return &language{blockComments: true, lineComment: commentSlashes, keywords: wordSet(keywords)}
}

func hashFamily(keywords string) *language {
	return &language{lineComment: commentHash, keywords: wordSet(keywords)}
}

var (
	langSwift = cFamily(`associatedtype class deinit enum extension fileprivate func import init inout
		internal let open operator private protocol public rethrows static struct subscript typealias var
		break case continue default defer do else fallthrough for guard if in repeat return switch where
		while as catch is super self Self throw throws try async await actor some any mutating override
		final lazy weak unowned convenience required`)

	langJavaScript = cFamily(`break case catch class const continue debugger default delete do else export
		extends finally for function if import in instanceof let new return super switch this throw try
		typeof var void while with yield async await of static get set`)

	langTypeScript = cFamily(`break case catch class const continue debugger default delete do else enum
		export extends finally for function if import in instanceof let new return super switch this throw
		try typeof var void while with yield async await of static get set interface type implements
		namespace declare abstract readonly private protected public keyof as is any unknown never`)

	langJava = cFamily(`abstract assert boolean break byte case catch char class const continue default
		do double else enum extends final finally float for goto if implements import instanceof int
		interface long native new package private protected public return short static strictfp super
		switch synchronized this throw throws transient try var void volatile while record sealed permits`)

	langC = cFamily(`auto break case char const continue default do double else enum extern float for
		goto if inline int long register restrict return short signed sizeof static struct switch typedef
		union unsigned void volatile while`)

	langCPP = cFamily(`alignas alignof auto bool break case catch char class const constexpr const_cast
		continue decltype default delete do double dynamic_cast else enum explicit export extern float for
		friend goto if inline int long mutable namespace new noexcept operator private protected public
		register reinterpret_cast return short signed sizeof static static_assert static_cast struct switch
		template this thread_local throw try typedef typeid typename union unsigned using virtual void
		volatile while override final`)

	langRust = cFamily(`as async await break const continue crate dyn else enum extern fn for if impl in
		let loop match mod move mut pub ref return self Self static struct super trait type unsafe use where
		while`)

	langGo = cFamily(`break case chan const continue default defer else fallthrough for func go goto if
		import interface map package range return select struct switch type var`)

	langKotlin = cFamily(`as break class continue do else for fun if in interface is object package
		return super this throw try typealias typeof val var when while by catch constructor finally get
		import init set where abstract data enum inner internal lateinit open override private protected
		public sealed suspend companion`)

	langPython = hashFamily(`and as assert async await break class continue def del elif else except
		finally for from global if import in is lambda nonlocal not or pass raise return try while with
		yield match case`)

	langRuby = hashFamily(`alias and begin break case class def defined do else elsif end ensure for if
		in module next not or redo rescue retry return self super then undef unless until when while yield
		require attr_accessor attr_reader attr_writer`)

	langYAML = hashFamily(``)

	langShell = hashFamily(`if then else elif fi case esac for select while until do done in function
		time return exit export local readonly declare unset shift source alias echo`)

	langTOML = hashFamily(``)

	langSQL = &language{
		lineComment:     commentDashes,
		caseInsensitive: true,
		keywords: wordSet(`select from where insert into values update set delete create table drop
			alter add column index view join inner left right outer full cross on as and or not in is
			null like between exists group by order having limit offset union all distinct case when then
			else end primary key foreign references default unique check constraint begin commit rollback
			transaction with returning asc desc true false`),
	}

	langJSON = &language{}
)

// languages maps the suffix of a "language-X" class to its rules.
var languages = map[string]*language{
	"swift":      langSwift,
	"javascript": langJavaScript,
	"js":         langJavaScript,
	"jsx":        langJavaScript,
	"typescript": langTypeScript,
	"ts":         langTypeScript,
	"tsx":        langTypeScript,
	"java":       langJava,
	"c":          langC,
	"h":          langC,
	"cpp":        langCPP,
	"c++":        langCPP,
	"cc":         langCPP,
	"hpp":        langCPP,
	"rust":       langRust,
	"rs":         langRust,
	"go":         langGo,
	"golang":     langGo,
	"kotlin":     langKotlin,
	"kt":         langKotlin,
	"python":     langPython,
	"py":         langPython,
	"ruby":       langRuby,
	"rb":         langRuby,
	"yaml":       langYAML,
	"yml":        langYAML,
	"shell":      langShell,
	"bash":       langShell,
	"zsh":        langShell,
	"sh":         langShell,
	"toml":       langTOML,
	"sql":        langSQL,
	"json":       langJSON,
}

// lookupLanguage resolves a class suffix, ignoring case.
func lookupLanguage(name string) (*language, bool) {
	l, ok := languages[strings.ToLower(name)]
	return l, ok
}
