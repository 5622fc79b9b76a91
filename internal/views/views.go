package views

import (
	"embed"
	"html/template"

	"github.com/russross/blackfriday"
)

//go:embed templates/*.html
var templatesFS embed.FS

// 페이지 템플릿 이름
const (
	IndexPage    = "index.html"
	CreatePage   = "create.html"
	EditPage     = "edit.html"
	ManagePage   = "manage.html"
	ReadMorePage = "readmore.html"
)

const (
	markdownHTMLFlags = blackfriday.HTML_SKIP_HTML |
		blackfriday.HTML_SAFELINK |
		blackfriday.HTML_USE_XHTML
	markdownExtensions = blackfriday.EXTENSION_NO_INTRA_EMPHASIS |
		blackfriday.EXTENSION_FENCED_CODE |
		blackfriday.EXTENSION_AUTOLINK |
		blackfriday.EXTENSION_STRIKETHROUGH |
		blackfriday.EXTENSION_HARD_LINE_BREAK
)

// Markdown renders a post body. Raw HTML in the input is dropped.
func Markdown(text string) template.HTML {
	renderer := blackfriday.HtmlRenderer(markdownHTMLFlags, "", "")
	return template.HTML(blackfriday.Markdown([]byte(text), renderer, markdownExtensions))
}

// Load parses every embedded page. The result is handed to gin with SetHTMLTemplate.
func Load() (*template.Template, error) {
	return template.New("").
		Funcs(template.FuncMap{"markdown": Markdown}).
		ParseFS(templatesFS, "templates/*.html")
}
