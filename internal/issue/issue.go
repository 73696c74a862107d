// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/slices"

	"github.com/hostkit/hostkit/pkg/enumrange"
	"github.com/hostkit/hostkit/pkg/i18n"
)

// Id identifies an issue. It is a bounded enumeration over
// [IdFirst, IdCount).
type Id int

const (
	ConfigLoadFailedId Id = iota + 1
	CatalogLoadFailedId
	UnknownLocaleId
	AssertionFailedId
	InvalidBuildModeId
	InvalidSizeId
	IdCount

	IdFirst = ConfigLoadFailedId
)

var idNames = [...]string{
	ConfigLoadFailedId:  "config-load-failed",
	CatalogLoadFailedId: "catalog-load-failed",
	UnknownLocaleId:     "unknown-locale",
	AssertionFailedId:   "assertion-failed",
	InvalidBuildModeId:  "invalid-build-mode",
	InvalidSizeId:       "invalid-size",
}

// Bounds implements enumrange.Bounded.
func (Id) Bounds() (first, count Id) { return IdFirst, IdCount }

func (id Id) String() string {
	if !enumrange.IsValid(id) {
		return "unknown"
	}
	return idNames[id]
}

// ParseId accepts an issue name ("unknown-locale") or its number ("3").
func ParseId(s string) (Id, error) {
	if n, err := strconv.Atoi(s); err == nil {
		id := Id(n)
		if err := enumrange.Validate(id); err != nil {
			return 0, err
		}
		return id, nil
	}
	return enumrange.Parse[Id](s)
}

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	title    string      // English heading, translated on render
	mdMsg    MarkdownMsg // English Markdown body, translated on render
	docLinks []HttpLink
	extLinks []HttpLink // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) Title() string {
	return i.title
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) DocLinks() []HttpLink {
	return slices.Clone(i.docLinks)
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Markdown returns the issue as Markdown in the active locale.
func (i *Issue) Markdown() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", i18n.ExpandMessage(i.title))
	sb.WriteString(i18n.ExpandMessage(strings.TrimSpace(string(i.mdMsg))))
	sb.WriteString("\n")

	if len(i.docLinks) > 0 || len(i.extLinks) > 0 {
		fmt.Fprintf(&sb, "\n## %s\n\n", i18n.ExpandMessage("See also"))
		for _, link := range i.docLinks {
			sb.WriteString("- " + string(link) + "\n")
		}
		for _, link := range i.extLinks {
			sb.WriteString("- " + string(link) + "\n")
		}
	}
	return sb.String()
}

// Render renders Markdown with the named glamour style ("dark", "light",
// "notty", ...).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.Markdown(), stylePath)
}

var (
	render = glamour.Render

	issues = map[Id]*Issue{}
)

func register(i *Issue) {
	issues[i.id] = i
}

func init() {
	register(&Issue{
		id:    ConfigLoadFailedId,
		title: i18n.Mark("Configuration could not be loaded"),
		mdMsg: MarkdownMsg(i18n.Mark(`
hostkit read a configuration file that does not match the schema.

## Things you can try
- Show the effective configuration:
~~~
$ hostkit config show
~~~
- Recreate a default file with ` + "`hostkit config init`" + `.
- Check ` + "`HOSTKIT_*`" + ` environment variables for typos.`)),
	})

	register(&Issue{
		id:    CatalogLoadFailedId,
		title: i18n.Mark("Translation catalog could not be loaded"),
		mdMsg: MarkdownMsg(i18n.Mark(`
The catalog named by ` + "`catalog_path`" + ` or ` + "`--catalog`" + ` is missing or invalid.

## Things you can try
- Catalogs are ` + "`.toml`" + ` or ` + "`.cue`" + ` files with a ` + "`locale`" + ` and a ` + "`messages`" + ` table.
- Messages fall back to English until the catalog loads.`)),
		extLinks: []HttpLink{"https://toml.io/en/v1.0.0", "https://cuelang.org/docs/"},
	})

	register(&Issue{
		id:    UnknownLocaleId,
		title: i18n.Mark("Unknown locale"),
		mdMsg: MarkdownMsg(i18n.Mark(`
The locale is not a valid BCP 47 language tag.

## Things you can try
- Use tags such as ` + "`de`" + `, ` + "`de-AT`" + ` or ` + "`pt-BR`" + `.
- Leave the locale empty for English.`)),
		extLinks: []HttpLink{"https://www.rfc-editor.org/info/bcp47"},
	})

	register(&Issue{
		id:    AssertionFailedId,
		title: i18n.Mark("Assertion failed"),
		mdMsg: MarkdownMsg(i18n.Mark(`
An internal consistency check failed. This is a bug in the caller, not in your input.

## Things you can try
- Re-run with ` + "`--verbose`" + ` and report the logged file and line.
- Set ` + "`assert_policy: \"log\"`" + ` to keep running while investigating.`)),
	})

	register(&Issue{
		id:    InvalidBuildModeId,
		title: i18n.Mark("Invalid build mode"),
		mdMsg: MarkdownMsg(i18n.Mark(`
Build modes are ` + "`release`" + `, ` + "`devel`" + ` and ` + "`debug`" + `.

## Things you can try
- Build a devel binary with ` + "`go build -tags hostkit_devel`" + `.
- Build a debug binary with ` + "`go build -tags hostkit_debug`" + `.`)),
	})

	register(&Issue{
		id:    InvalidSizeId,
		title: i18n.Mark("Invalid size"),
		mdMsg: MarkdownMsg(i18n.Mark(`
Sizes are numbers with an optional binary unit.

## Examples
- ` + "`64k`" + `, ` + "`16MiB`" + `, ` + "`1g`")),
	})
}

// Values returns every issue ordered by Id.
func Values() []*Issue {
	out := make([]*Issue, 0, len(issues))
	for id := range enumrange.All[Id]() {
		if i, ok := issues[id]; ok {
			out = append(out, i)
		}
	}
	return out
}

// Get returns the issue for id, or nil.
func Get(id Id) *Issue {
	return issues[id]
}
