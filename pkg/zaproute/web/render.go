package web

import (
	"bytes"
	"html/template"
	"io"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdownOnce sync.Once
	markdown     goldmark.Markdown
)

func getMarkdown() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdown
}

// renderMarkdown converts markdown to HTML. Raw HTML in the source is omitted.
func renderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := getMarkdown().Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(buf.String())
}

type pageView struct {
	Lang       string
	Title      string
	Main       []blockView
	Sidebar    []blockView
	ReplaceURL string
}

type blockView struct {
	Kind    string
	Class   string
	Text    string
	HTML    template.HTML
	Label   string
	Key     string
	Value   string
	Query   string
	Options []optionView
	Columns []columnView
}

type optionView struct {
	Value    string
	Selected bool
}

type columnView struct {
	Weight int
	Blocks []blockView
}

func viewBlocks(blocks []block, query string) []blockView {
	views := make([]blockView, 0, len(blocks))
	for _, b := range blocks {
		switch b.kind {
		case blockMarkdown:
			views = append(views, blockView{Kind: "markdown", HTML: renderMarkdown(b.text)})
		case blockInfo:
			views = append(views, blockView{Kind: "notice", Class: "info", Text: b.text})
		case blockWarning:
			views = append(views, blockView{Kind: "notice", Class: "warning", Text: b.text})
		case blockError:
			views = append(views, blockView{Kind: "notice", Class: "error", Text: b.text})
		case blockColumns:
			cols := make([]columnView, len(b.columns))
			for i, col := range b.columns {
				cols[i] = columnView{Weight: max(b.weights[i], 1), Blocks: viewBlocks(col.blocks, query)}
			}
			views = append(views, blockView{Kind: "columns", Columns: cols})
		case blockWidget:
			views = append(views, viewWidget(b.widget, query))
		}
	}
	return views
}

func viewWidget(w *widget, query string) blockView {
	v := blockView{
		Kind:  w.kind.GetName(),
		Label: w.label,
		Key:   w.key,
		Value: w.value,
		Query: query,
	}
	for _, opt := range w.options {
		v.Options = append(v.Options, optionView{Value: opt, Selected: opt == w.value})
	}
	return v
}

func writePage(out io.Writer, page pageView) error {
	return pageTemplate.Execute(out, page)
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="{{.Lang}}">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { margin: 0; display: flex; font-family: sans-serif; min-height: 100vh; }
aside { width: 18rem; padding: 1rem; background: #f0f2f6; }
main { flex: 1; padding: 1rem 3rem; }
.notice { padding: .75rem 1rem; border-radius: .4rem; margin: .5rem 0; }
.notice.info { background: #e8f1fb; }
.notice.warning { background: #fff8e1; }
.notice.error { background: #fdecea; }
.columns { display: flex; gap: 1rem; align-items: flex-end; }
.widget { margin: .5rem 0; }
.widget label { display: block; }
</style>
</head>
<body>
<aside>{{template "blocks" .Sidebar}}</aside>
<main>{{template "blocks" .Main}}</main>
{{if .ReplaceURL}}<script>history.replaceState(null, "", {{.ReplaceURL}});</script>{{end}}
</body>
</html>
{{define "blocks"}}{{range .}}{{template "block" .}}{{end}}{{end}}
{{define "block"}}
{{- if eq .Kind "markdown"}}<div class="markdown">{{.HTML}}</div>
{{- else if eq .Kind "notice"}}<div class="notice {{.Class}}">{{.Text}}</div>
{{- else if eq .Kind "columns"}}<div class="columns">{{range .Columns}}<div class="column" style="flex: {{.Weight}}">{{template "blocks" .Blocks}}</div>{{end}}</div>
{{- else}}<form method="post" action="/" class="widget {{.Kind}}">
<input type="hidden" name="_widget" value="{{.Key}}">
<input type="hidden" name="_query" value="{{.Query}}">
{{- if eq .Kind "button"}}
<button type="submit">{{.Label}}</button>
{{- else if eq .Kind "select"}}
<label>{{.Label}}<select name="_value" onchange="this.form.submit()">
{{- range .Options}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Value}}</option>{{end -}}
</select></label><noscript><button type="submit">OK</button></noscript>
{{- else if eq .Kind "radio"}}
<fieldset><legend>{{.Label}}</legend>
{{- range .Options}}<label><input type="radio" name="_value" value="{{.Value}}"{{if .Selected}} checked{{end}} onchange="this.form.submit()"> {{.Value}}</label>{{end -}}
</fieldset><noscript><button type="submit">OK</button></noscript>
{{- else if eq .Kind "text"}}
<label>{{.Label}}<input type="text" name="_value" value="{{.Value}}"></label>
{{- end}}
</form>
{{- end}}
{{end}}`))
