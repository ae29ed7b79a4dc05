// query.go serialises structured search requests into Everything's query
// syntax.
//
// Builders are pure string construction with no I/O and no validation:
// malformed filter expressions (a bad date or size range, say) pass through
// verbatim and surface as zero results or a query failure from the engine,
// which owns the syntax.

package everything

import (
	"fmt"
	"strings"
)

// Request is a structured search request that serialises itself into
// Everything's query syntax.
type Request interface {
	// Query returns the request in Everything's query syntax.
	Query() string
}

// Category identifies a preset file-type extension list.
type Category string

const (
	CategoryAudio      Category = "audio"
	CategoryVideo      Category = "video"
	CategoryImage      Category = "image"
	CategoryDocument   Category = "document"
	CategoryCode       Category = "code"
	CategoryArchive    Category = "archive"
	CategoryExecutable Category = "executable"
)

// categoryExtensions holds the semicolon-joined extension list behind each
// category preset.
var categoryExtensions = map[Category]string{
	CategoryAudio:      "mp3;wav;flac;aac;ogg;wma;m4a",
	CategoryVideo:      "mp4;avi;mkv;mov;wmv;flv;webm",
	CategoryImage:      "jpg;jpeg;png;gif;bmp;svg;webp;ico",
	CategoryDocument:   "pdf;doc;docx;xls;xlsx;ppt;pptx;txt;md",
	CategoryCode:       "cs;py;js;ts;java;cpp;c;h;go;rs;rb;php;ps1",
	CategoryArchive:    "zip;rar;7z;tar;gz;bz2;iso",
	CategoryExecutable: "exe;msi;bat;cmd;ps1;sh",
}

// largeTypeExtensions narrows a large-file search to a coarse file type.
// Unrecognised types add no filter.
var largeTypeExtensions = map[string]string{
	"video":   "mp4;avi;mkv;mov",
	"audio":   "mp3;wav;flac",
	"archive": "zip;rar;7z;iso",
}

// Basic searches file and folder names with the raw query text.
type Basic struct {
	Text string
}

func (r Basic) Query() string { return r.Text }

// Extensions searches by a comma-separated extension list, optionally
// AND-combined with keywords. Each entry is trimmed of whitespace and
// leading dots; entries are OR-joined.
type Extensions struct {
	List     string
	Keywords string
}

func (r Extensions) Query() string {
	parts := strings.Split(r.List, ",")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		terms = append(terms, "ext:"+strings.TrimLeft(strings.TrimSpace(p), "."))
	}
	return grouped(strings.Join(terms, " | "), r.Keywords)
}

// ByCategory searches a preset file-type category, optionally narrowed by
// keywords.
type ByCategory struct {
	Category Category
	Keywords string
}

func (r ByCategory) Query() string {
	return withKeywords("ext:"+categoryExtensions[r.Category], r.Keywords)
}

// InFolder scopes a search to a folder subtree.
type InFolder struct {
	Folder string
	Text   string
}

func (r InFolder) Query() string {
	return `"` + r.Folder + `\" ` + r.Text
}

// FoldersOnly restricts matches to folders.
type FoldersOnly struct {
	Text string
}

func (r FoldersOnly) Query() string { return "folder: " + r.Text }

// Recent matches files modified in the last Days days, optionally filtered
// by a single extension.
type Recent struct {
	Days      uint32
	Extension string
}

func (r Recent) Query() string {
	q := fmt.Sprintf("dm:last%ddays", r.Days)
	if r.Extension != "" {
		q += " ext:" + strings.TrimLeft(r.Extension, ".")
	}
	return q
}

// DateCreated filters on creation date. The filter expression passes
// through verbatim (today, yesterday, thisweek, 2024, jan2024-mar2024...).
type DateCreated struct {
	Filter   string
	Keywords string
}

func (r DateCreated) Query() string { return withKeywords("dc:"+r.Filter, r.Keywords) }

// DateModified filters on modification date with a verbatim expression.
type DateModified struct {
	Filter   string
	Keywords string
}

func (r DateModified) Query() string { return withKeywords("dm:"+r.Filter, r.Keywords) }

// Size filters on file size with a verbatim expression (>1gb, 10mb..50mb,
// gigantic...).
type Size struct {
	Filter   string
	Keywords string
}

func (r Size) Query() string { return withKeywords("size:"+r.Filter, r.Keywords) }

// LargeFiles finds files over a minimum size, optionally narrowed to a
// coarse file type. MinSize defaults to 100mb.
type LargeFiles struct {
	MinSize  string
	FileType string
}

func (r LargeFiles) Query() string {
	min := r.MinSize
	if min == "" {
		min = "100mb"
	}
	q := "size:>" + min
	if ext, ok := largeTypeExtensions[strings.ToLower(r.FileType)]; ok {
		q += " ext:" + ext
	}
	return q
}

// Content searches file contents, optionally scoped to a folder and a
// comma-separated extension list. Content is not indexed, so these
// queries are slow.
type Content struct {
	Text       string
	Extensions string
	Folder     string
}

func (r Content) Query() string {
	var b strings.Builder
	if r.Folder != "" {
		b.WriteString(`"` + r.Folder + `\" `)
	}
	if r.Extensions != "" {
		b.WriteString("ext:" + strings.ReplaceAll(r.Extensions, ",", ";") + " ")
	}
	b.WriteString(`content:"` + r.Text + `"`)
	return b.String()
}

// Regex passes the pattern through untouched. The caller must also set
// Options.Regex for the engine to treat it as one.
type Regex struct {
	Pattern string
}

func (r Regex) Query() string { return r.Pattern }

// Duplicates finds files sharing a name.
type Duplicates struct {
	Pattern string
}

func (r Duplicates) Query() string { return "dupe: " + r.Pattern }

// EmptyFolders finds folders with no contents.
type EmptyFolders struct {
	Keywords string
}

func (r EmptyFolders) Query() string {
	if r.Keywords == "" {
		return "empty:"
	}
	return "empty: " + r.Keywords
}

// Hidden finds entries carrying the hidden attribute.
type Hidden struct {
	Keywords string
}

func (r Hidden) Query() string { return withKeywords("attrib:H", r.Keywords) }

// Exclude AND-combines a query with negated comma-separated terms.
type Exclude struct {
	Text  string
	Terms string
}

func (r Exclude) Query() string {
	parts := strings.Split(r.Terms, ",")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		terms = append(terms, "!"+strings.TrimSpace(p))
	}
	return r.Text + " " + strings.Join(terms, " ")
}

// Or matches any of the comma-separated terms, optionally AND-combined
// with a filter that applies to every alternative.
type Or struct {
	Terms  string
	Filter string
}

func (r Or) Query() string {
	parts := strings.Split(r.Terms, ",")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		terms = append(terms, strings.TrimSpace(p))
	}
	return grouped(strings.Join(terms, " | "), r.Filter)
}

// withKeywords appends keywords to base separated by a single space, or
// returns base unchanged when keywords are empty.
func withKeywords(base, keywords string) string {
	if keywords == "" {
		return base
	}
	return base + " " + keywords
}

// grouped parenthesises an OR expression before AND-combining it with a
// filter, so the filter applies to every alternative.
func grouped(or, filter string) string {
	if filter == "" {
		return or
	}
	return "(" + or + ") " + filter
}
