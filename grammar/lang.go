package grammar

import (
	"path"
	"sort"
	"strings"

	"github.com/npillmayer/slogo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// DefaultLanguage is the name of the language used if none is configured.
const DefaultLanguage = "english"

const languageDir = "tables/languages"

// Language is a table of localized aliases for canonical command names.
type Language struct {
	Name     string              `yaml:"name"`
	Tag      string              `yaml:"tag"` // BCP 47 language tag
	Commands map[string][]string `yaml:"commands"`
}

// ParseLanguage reads a language table in YAML format.
func ParseLanguage(data []byte) (*Language, error) {
	lang := &Language{}
	if err := yaml.Unmarshal(data, lang); err != nil {
		return nil, slogo.Errorf(slogo.KindConfiguration, "", "cannot read language table: %v", err)
	}
	if lang.Name == "" {
		return nil, slogo.Errorf(slogo.KindConfiguration, "", "language table without a name")
	}
	return lang, nil
}

// LanguageNames returns the names of the languages shipped with this
// package, sorted.
func LanguageNames() []string {
	entries, err := tables.ReadDir(languageDir)
	if err != nil {
		tracer().Errorf("cannot list languages: %v", err)
		return nil
	}
	var names []string
	for _, e := range entries {
		if name := e.Name(); strings.HasSuffix(name, ".yaml") {
			names = append(names, strings.TrimSuffix(name, ".yaml"))
		}
	}
	sort.Strings(names)
	return names
}

// LoadLanguage loads one of the languages shipped with this package. name
// is either the name of a language table ("spanish") or a BCP 47 language
// tag ("es", "de-AT"), which is matched against the tags of the available
// tables.
func LoadLanguage(name string) (*Language, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultLanguage
	}
	var tags []language.Tag
	var byTag []*Language
	for _, n := range LanguageNames() {
		data, err := tables.ReadFile(path.Join(languageDir, n+".yaml"))
		if err != nil {
			return nil, slogo.Errorf(slogo.KindConfiguration, n, "cannot read language table: %v", err)
		}
		lang, err := ParseLanguage(data)
		if err != nil {
			return nil, err
		}
		if n == name {
			return lang, nil
		}
		if t, err := language.Parse(lang.Tag); err == nil {
			tags = append(tags, t)
			byTag = append(byTag, lang)
		}
	}
	requested, err := language.Parse(name)
	if err != nil || len(tags) == 0 {
		return nil, slogo.Errorf(slogo.KindConfiguration, name, "no such language")
	}
	_, inx, confidence := language.NewMatcher(tags).Match(requested)
	if confidence == language.No {
		return nil, slogo.Errorf(slogo.KindConfiguration, name, "no such language")
	}
	tracer().Infof("language %q matched by table %q", name, byTag[inx].Name)
	return byTag[inx], nil
}

// Resolver maps localized command tokens to canonical command names.
// Matching is case-insensitive.
type Resolver struct {
	lang    *Language
	fold    cases.Caser
	aliases map[string]string // folded alias → canonical name
}

// NewResolver creates a resolver for a language table. An alias claimed by
// two canonical commands is a configuration error.
func NewResolver(lang *Language) (*Resolver, error) {
	r := &Resolver{
		lang:    lang,
		fold:    cases.Fold(),
		aliases: make(map[string]string),
	}
	for canonical, aliases := range lang.Commands {
		for _, a := range aliases {
			key := r.fold.String(a)
			if other, dup := r.aliases[key]; dup && other != canonical {
				return nil, slogo.Errorf(slogo.KindConfiguration, a,
					"alias claimed by %s and %s in language %s", other, canonical, lang.Name)
			}
			r.aliases[key] = canonical
		}
	}
	tracer().Debugf("resolver for %s knows %d aliases", lang.Name, len(r.aliases))
	return r, nil
}

// Resolve returns the canonical name of a command token. If the token is
// not an alias of any command, ok is false.
func (r *Resolver) Resolve(token string) (canonical string, ok bool) {
	canonical, ok = r.aliases[r.fold.String(token)]
	return
}

// Language returns the name of the resolver's language.
func (r *Resolver) Language() string {
	return r.lang.Name
}

// Aliases returns the localized aliases of a canonical command name.
func (r *Resolver) Aliases(canonical string) []string {
	return r.lang.Commands[canonical]
}
