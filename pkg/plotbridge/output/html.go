package output

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/pkg/browser"
)

// PlotlyJSURL is the plotly.js bundle loaded by generated pages.
const PlotlyJSURL = "https://cdn.plot.ly/plotly-2.34.0.min.js"

var pageTemplate = template.Must(template.New("figure").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<script src="{{.ScriptURL}}"></script>
</head>
<body>
<div id="plot" style="width:100%;height:100vh;"></div>
<script>
var figure = {{.Figure}};
Plotly.newPlot("plot", figure.data || [], figure.layout || {}, figure.config || {responsive: true});
</script>
</body>
</html>
`))

type page struct {
	Title     string
	ScriptURL string
	Figure    template.JS
}

// WriteHTML writes fig as a standalone HTML page titled title.
func WriteHTML(w io.Writer, fig *Figure, title string) error {
	data, err := ToJSON(fig, false)
	if err != nil {
		return fmt.Errorf("encode figure: %w", err)
	}

	p := page{
		Title:     "plotbridge",
		ScriptURL: PlotlyJSURL,
		Figure:    template.JS(data),
	}
	if title != "" {
		p.Title = title
	}
	return pageTemplate.Execute(w, p)
}

// SaveHTML writes fig as a standalone HTML page at path.
func SaveHTML(fig *Figure, title, path string) error {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, fig, title); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}

// openFile is replaced in tests.
var openFile = browser.OpenFile

// Show writes fig to a uniquely named page under dir (os.TempDir() if empty)
// and opens it in the default browser. It returns the page path.
func Show(fig *Figure, title, dir string) (string, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, fmt.Sprintf("plotbridge-%s.html", uuid.NewString()))
	if err := SaveHTML(fig, title, path); err != nil {
		return "", err
	}
	if err := openFile(path); err != nil {
		return path, fmt.Errorf("open %s: %w", path, err)
	}
	return path, nil
}
