package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"text/tabwriter"

	"github.com/ja7ad/divider/pkg/divider"
	"github.com/ja7ad/divider/pkg/types"
)

type row struct {
	Rank     int        `json:"rank"`
	Vin      float64    `json:"vin"`
	V1       float64    `json:"v1"`
	V2       float64    `json:"v2"`
	Deviance float64    `json:"deviance"`
	R1       types.Ohms `json:"r1"`
	R2       types.Ohms `json:"r2"`
	Pow1MW   int        `json:"pow1_mw"`
	Pow2MW   int        `json:"pow2_mw"`
	A2D      int        `json:"a2d"`
}

func toRows(cs []divider.Candidate) []row {
	rows := make([]row, 0, len(cs))
	for i, c := range cs {
		rows = append(rows, row{
			Rank:     i + 1,
			Vin:      c.Display.Vin,
			V1:       c.Display.V1,
			V2:       c.Display.V2,
			Deviance: c.Display.Deviance,
			R1:       c.R1,
			R2:       c.R2,
			Pow1MW:   c.Pow1MW,
			Pow2MW:   c.Pow2MW,
			A2D:      c.A2D,
		})
	}
	return rows
}

var csvHeader = []string{"rank", "vin", "v1", "v2", "deviance", "r1", "r2", "pow1_mw", "pow2_mw", "a2d"}

func (r row) record() []string {
	return []string{
		strconv.Itoa(r.Rank),
		fmtFloat(r.Vin, 2), fmtFloat(r.V1, 2), fmtFloat(r.V2, 2), fmtFloat(r.Deviance, 4),
		strconv.Itoa(int(r.R1)), strconv.Itoa(int(r.R2)),
		strconv.Itoa(r.Pow1MW), strconv.Itoa(r.Pow2MW), strconv.Itoa(r.A2D),
	}
}

func fmtFloat(f float64, prec int) string { return strconv.FormatFloat(f, 'f', prec, 64) }

func writeTable(w io.Writer, cs []divider.Candidate) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tVin (V)\tV1 (V)\tV2 (V)\tDeviance\tR1\tR2\tP1 (mW)\tP2 (mW)\tA2D")
	fmt.Fprintln(tw, "-\t-------\t------\t------\t--------\t--\t--\t-------\t-------\t---")
	for _, r := range toRows(cs) {
		fmt.Fprintf(tw, "%d\t%.2f\t%.2f\t%.2f\t%.4f\t%s\t%s\t%d\t%d\t%d\n",
			r.Rank, r.Vin, r.V1, r.V2, r.Deviance, r.R1.Humanized(), r.R2.Humanized(), r.Pow1MW, r.Pow2MW, r.A2D)
	}
	tw.Flush()
}

func writeCsvLike(w io.Writer, cs []divider.Candidate) {
	fmt.Fprintln(w, "# rank, vin, v1, v2, deviance, r1, r2, pow1_mw, pow2_mw, a2d")
	for _, r := range toRows(cs) {
		fmt.Fprintf(w, "%d, %.2f, %.2f, %.2f, %.4f, %d, %d, %d, %d, %d\n",
			r.Rank, r.Vin, r.V1, r.V2, r.Deviance, r.R1, r.R2, r.Pow1MW, r.Pow2MW, r.A2D)
	}
}

// writeFiles writes the requested --csv, --json and --html reports.
func writeFiles(o opts, report *divider.Report, cs []divider.Candidate) error {
	rows := toRows(cs)

	if o.csvPath != "" {
		if err := writeFile(o.csvPath, func(w io.Writer) error {
			cw := csv.NewWriter(w)
			if err := cw.Write(csvHeader); err != nil {
				return err
			}
			for _, r := range rows {
				if err := cw.Write(r.record()); err != nil {
					return err
				}
			}
			cw.Flush()
			return cw.Error()
		}); err != nil {
			return fmt.Errorf("csv: %w", err)
		}
	}

	if o.jsonPath != "" {
		if err := writeFile(o.jsonPath, func(w io.Writer) error {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		}); err != nil {
			return fmt.Errorf("json: %w", err)
		}
	}

	if o.htmlPath != "" {
		if err := writeFile(o.htmlPath, func(w io.Writer) error {
			return writeHTML(w, report, rows)
		}); err != nil {
			return fmt.Errorf("html: %w", err)
		}
	}
	return nil
}

func writeFile(path string, fn func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := fn(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeHTML(w io.Writer, report *divider.Report, rows []row) error {
	type view struct {
		Source string
		Rating string
		MaxMW  string
		Vin    float64
		V2Lo   float64
		V2Hi   float64
		Status string
		Pairs  int
		Total  int
		Rows   []row
	}

	g := report.Goals
	data := view{
		Source: report.Source,
		Rating: report.Rating.String(),
		MaxMW:  g.MaxMW().Humanized(),
		Vin:    g.Vin(),
		V2Lo:   g.V2Lo(),
		V2Hi:   g.V2Hi(),
		Status: report.Status.String(),
		Pairs:  report.Pairs,
		Total:  len(report.All),
		Rows:   rows,
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return err
	}
	_, err := w.Write(buf.Bytes())
	return err
}

var tpl = template.Must(template.New("rep").Parse(`<!doctype html>
<html lang="en"><meta charset="utf-8">
<title>Divider Report</title>
<style>
body{font-family:system-ui,Segoe UI,Roboto,Helvetica,Arial,sans-serif;margin:20px}
h1,h2{margin:0 0 8px}
table{border-collapse:collapse;width:100%;font-size:14px}
th,td{border:1px solid #ddd;padding:6px 8px;text-align:right}
th:first-child,td:first-child{text-align:left}
ul{margin:6px 0 14px;padding-left:20px}
.small{color:#555}
.best{background:#efe}
</style>

<h1>Divider Report</h1>

<p class="small">
Catalog: {{.Source}} &nbsp;|&nbsp;
Rating: {{.Rating}} ({{.MaxMW}}) &nbsp;|&nbsp;
Status: {{.Status}}
</p>

<h2>Design goals</h2>
<ul>
<li>Vin: {{printf "%.2f" .Vin}} V</li>
<li>V2 band: {{printf "%.2f" .V2Lo}} .. {{printf "%.2f" .V2Hi}} V</li>
<li>Qualified: {{.Total}} of {{.Pairs}} pairs</li>
</ul>

<h2>Choices</h2>
<table>
<thead>
<tr>
<th>#</th><th>Vin (V)</th><th>V1 (V)</th><th>V2 (V)</th><th>Deviance</th>
<th>R1 (Ω)</th><th>R2 (Ω)</th><th>P1 (mW)</th><th>P2 (mW)</th><th>A2D</th>
</tr>
</thead>
<tbody>
{{range .Rows}}
<tr class="{{if eq .Rank 1}}best{{end}}">
<td>{{.Rank}}</td>
<td>{{printf "%.2f" .Vin}}</td>
<td>{{printf "%.2f" .V1}}</td>
<td>{{printf "%.2f" .V2}}</td>
<td>{{printf "%.4f" .Deviance}}</td>
<td>{{.R1}}</td>
<td>{{.R2}}</td>
<td>{{.Pow1MW}}</td>
<td>{{.Pow2MW}}</td>
<td>{{.A2D}}</td>
</tr>
{{end}}
</tbody>
</table>
</html>`))
