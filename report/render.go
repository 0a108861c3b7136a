// SPDX-License-Identifier: MIT

package report

import (
	"bufio"
	"html/template"
	"io"
)

// WriteText renders r as plain text:
//
//	Input matrix:
//	 4.00  7.00
//	 2.00  6.00
//	Matrix determinant: 10.0000
//
// Error sections read "Title: text".
func WriteText(w io.Writer, r *Report) error {
	bw := bufio.NewWriter(w)
	for _, s := range r.Sections {
		switch s.Kind {
		case SectionNote:
			bw.WriteString(s.Title)
			bw.WriteByte('\n')
		case SectionMatrix:
			bw.WriteString(s.Title)
			bw.WriteByte('\n')
			bw.WriteString(FormatMatrix(s.Rows))
		case SectionValue:
			bw.WriteString(s.Title)
			bw.WriteByte(' ')
			bw.WriteString(s.Text)
			bw.WriteByte('\n')
		case SectionError:
			bw.WriteString(s.Title)
			bw.WriteString(": ")
			bw.WriteString(s.Text)
			bw.WriteByte('\n')
		}
	}

	return bw.Flush()
}

// The document mirrors the markup of the browser front-end: success, matrix,
// result-value and error blocks.
const document = `<!DOCTYPE html>
<html>
<head>
    <meta charset="utf-8">
    <title>matsolve: {{.Op}}</title>
    <style type="text/css">
        .matrix table { border-collapse: collapse; margin: 4px 0 12px 0; }
        .matrix-cell { padding: 5px; text-align: right; font-family: monospace; }
        .success { color: #2e7d32; }
        .result-value { font-weight: bold; margin: 6px 0; }
        .error { color: #c62828; }
    </style>
</head>
<body>
<div id="results">
{{- range .Sections}}
{{- if eq .Kind kindNote}}
    <div class="success">{{.Title}}</div>
{{- else if eq .Kind kindMatrix}}
    <h3>{{.Title}}</h3>
    <div class="matrix"><table>
    {{- range .Rows}}
        <tr class="matrix-row">{{range .}}<td class="matrix-cell">{{cell .}}</td>{{end}}</tr>
    {{- end}}
    </table></div>
{{- else if eq .Kind kindValue}}
    <div class="result-value">{{.Title}} {{.Text}}</div>
{{- else}}
    <div class="error">{{.Title}}: {{.Text}}</div>
{{- end}}
{{- end}}
</div>
</body>
</html>
`

var tDocument = template.Must(template.New("document").Funcs(template.FuncMap{
	"cell":       FormatCell,
	"kindNote":   func() SectionKind { return SectionNote },
	"kindMatrix": func() SectionKind { return SectionMatrix },
	"kindValue":  func() SectionKind { return SectionValue },
}).Parse(document))

// WriteHTML renders r as a standalone HTML page. Text is escaped by html/template.
func WriteHTML(w io.Writer, r *Report) error {
	return tDocument.Execute(w, r)
}
