package report

import (
	"bytes"
	"html/template"
	"time"

	"enrollment/internal/registry"
)

// Presenter delivers a rendered report to wherever it gets printed.
// In the browser that is a new tab that calls window.print on load;
// tests capture the bytes instead.
type Presenter interface {
	Present(doc []byte) error
}

// Generator renders the registration list into a self-contained
// printable HTML document.
type Generator struct {
	tmpl *template.Template
	now  func() time.Time
}

// New returns a ready generator.
func New() *Generator {
	return &Generator{
		tmpl: template.Must(template.New("report").Parse(reportTemplate)),
		now:  time.Now,
	}
}

// row is one table line with the role-appropriate pair already chosen.
type row struct {
	Index     int
	FullName  string
	RoleLabel string
	Email     string
	Detail    string // grade level or subject
	Ident     string // student or employee ID
	CreatedAt string
}

// Render produces the document. Rows keep the list's display order;
// the generation timestamp is taken now, not from the records.
func (g *Generator) Render(regs []registry.Registration) ([]byte, error) {
	data := struct {
		GeneratedAt string
		Rows        []row
	}{
		GeneratedAt: g.now().Format("1/2/2006, 3:04:05 PM"),
	}
	for i, r := range regs {
		line := row{
			Index:     i + 1,
			FullName:  r.FullName,
			Email:     r.Email,
			CreatedAt: r.CreatedAtDisplay(),
		}
		switch d := r.Details.(type) {
		case registry.StudentDetails:
			line.RoleLabel = "Student"
			line.Detail = d.GradeLevel
			line.Ident = d.StudentID
		case registry.TeacherDetails:
			line.RoleLabel = "Teacher"
			line.Detail = d.Subject
			line.Ident = d.EmployeeID
		}
		data.Rows = append(data.Rows, line)
	}
	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Generate renders the current list and hands the document to the
// presenter. An empty list produces nothing and reports false. A
// presenter that declines (a blocked print window) is an accepted
// soft failure, not an error.
func (g *Generator) Generate(regs []registry.Registration, p Presenter) (bool, error) {
	if len(regs) == 0 {
		return false, nil
	}
	doc, err := g.Render(regs)
	if err != nil {
		return false, err
	}
	_ = p.Present(doc)
	return true, nil
}

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Registration Report</title>
<style>
body { font-family: Arial, Helvetica, sans-serif; margin: 32px; color: #222; }
h1 { margin-bottom: 4px; }
.generated { color: #666; margin-top: 0; }
table { border-collapse: collapse; width: 100%; margin-top: 16px; }
th, td { border: 1px solid #bbb; padding: 6px 10px; text-align: left; font-size: 14px; }
th { background: #f0f0f0; }
</style>
</head>
<body>
<h1>Registration Report</h1>
<p class="generated">Generated: {{.GeneratedAt}}</p>
<table>
<thead>
<tr><th>#</th><th>Full Name</th><th>Role</th><th>Email</th><th>Grade/Subject</th><th>ID</th><th>Registered</th></tr>
</thead>
<tbody>
{{range .Rows}}<tr><td>{{.Index}}</td><td>{{.FullName}}</td><td>{{.RoleLabel}}</td><td>{{.Email}}</td><td>{{.Detail}}</td><td>{{.Ident}}</td><td>{{.CreatedAt}}</td></tr>
{{end}}</tbody>
</table>
<script>window.onload = function () { window.print(); };</script>
</body>
</html>
`
