package render

import (
	"bytes"
	"html/template"
	"strings"
	"time"

	"github.com/newshield/go-insurance-backend/internal/domain"
)

// Branding carries the broker identity printed on the document cover.
type Branding struct {
	// CompanyName is the legal broker name shown as the cover title.
	CompanyName string
	// Tagline is the cover subtitle.
	Tagline string
}

// printRow is a grid row with its 1-based serial number for the S.No. column.
type printRow struct {
	SNo int
	Row
}

// IsList reports whether the row renders as bullet lists.
func (r printRow) IsList() bool { return r.Kind == RowList }

// IsMoney reports whether the row renders as monetary amounts.
func (r printRow) IsMoney() bool { return r.Kind == RowMoney }

// printView is the template model for the print document.
type printView struct {
	Brand              Branding
	Title              string
	LineLabel          string
	Reference          string
	Date               string
	Generated          string
	CustomerName       string
	Address            string
	BusinessActivity   string
	Location           string
	PropertyLimit      string
	AdvisorComment     string
	InsurerCount       int
	Insurers           []string
	Rows               []printRow
	RecommendedInsurer string
}

var printTmpl = template.Must(template.New("print").Funcs(template.FuncMap{
	"money": FormatAmount,
}).Parse(printDocument))

// RenderPrintDocument produces the self-contained printable HTML report
// for a saved comparison: a branding cover page followed by the comparison
// table. Every free-text field passes through html/template's contextual
// escaping, so markup in customer input renders as literal text.
func RenderPrintDocument(c *domain.Comparison, b Branding) (string, error) {
	rows := Rows(c)
	view := printView{
		Brand:              b,
		Title:              strings.ToUpper(c.ProductLineLabel),
		LineLabel:          c.ProductLineLabel,
		Reference:          c.ReferenceNumber,
		Date:               c.CreatedAt.Format("2006-01-02"),
		Generated:          time.Now().Format("02/01/2006"),
		CustomerName:       c.CustomerName,
		Address:            c.Address,
		BusinessActivity:   c.BusinessActivity,
		Location:           c.Location,
		PropertyLimit:      c.PropertyLimit,
		AdvisorComment:     c.AdvisorComment,
		InsurerCount:       len(c.Quotes),
		Insurers:           insurerNames(c),
		Rows:               make([]printRow, 0, len(rows)),
		RecommendedInsurer: RecommendedInsurer(c),
	}
	for i, r := range rows {
		view.Rows = append(view.Rows, printRow{SNo: i + 1, Row: r})
	}

	var buf bytes.Buffer
	if err := printTmpl.Execute(&buf, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func insurerNames(c *domain.Comparison) []string {
	names := make([]string, len(c.Quotes))
	for i := range c.Quotes {
		names[i] = c.Quotes[i].Insurer
	}
	return names
}

const printDocument = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.LineLabel}} - Insurance Comparison</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 0; padding: 0; }
        .page { width: 100%; min-height: 100vh; page-break-after: always; padding: 20px; box-sizing: border-box; }
        .page:last-child { page-break-after: auto; }

        /* First page: branding */
        .branding-page {
            background: linear-gradient(135deg, #f5f7fa 0%, #c3cfe2 100%);
            display: flex;
            flex-direction: column;
            align-items: center;
            justify-content: center;
            text-align: center;
            min-height: 100vh;
            padding: 40px;
        }
        .branding-title {
            font-size: 36px;
            font-weight: bold;
            color: #2c3e50;
            margin-bottom: 15px;
            text-shadow: 2px 2px 4px rgba(0,0,0,0.1);
        }
        .branding-subtitle {
            font-size: 20px;
            color: #7f8c8d;
            margin-bottom: 30px;
        }
        .branding-footer {
            background: rgba(255,255,255,0.9);
            padding: 20px;
            border-radius: 10px;
            box-shadow: 0 5px 15px rgba(0,0,0,0.1);
        }
        .branding-footer h3 {
            color: #2c3e50;
            margin-top: 0;
            font-size: 24px;
        }
        .branding-footer p {
            color: #34495e;
            margin: 10px 0;
            font-size: 16px;
        }

        /* Second page: comparison data */
        .comparison-page { background: #f8f9fa; }
        .container { max-width: 1200px; margin: 0 auto; background: white; padding: 30px; border-radius: 10px; box-shadow: 0 4px 6px rgba(0,0,0,0.1); }
        .header { text-align: center; background: linear-gradient(135deg, #4472C4, #203864); color: white; padding: 20px; border-radius: 8px; margin-bottom: 30px; }
        .title { font-size: 24px; font-weight: bold; margin-bottom: 10px; }
        .ref-date { display: flex; justify-content: space-between; margin-bottom: 20px; font-weight: bold; }
        .customer-details { background: #f8f9fa; padding: 20px; border-radius: 8px; margin-bottom: 30px; }
        .customer-details h3 { color: #203864; border-bottom: 2px solid #4472C4; padding-bottom: 5px; }
        .details-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 15px; }
        .detail-label { font-weight: bold; color: #555; }
        .detail-value { color: #333; }
        table { width: 100%; border-collapse: collapse; margin-bottom: 30px; }
        th { background: #4472C4; color: white; padding: 15px 10px; text-align: center; border: 1px solid #ddd; font-weight: bold; }
        td { padding: 12px 10px; border: 1px solid #ddd; vertical-align: top; }
        .sno { text-align: center; font-weight: bold; background: #f8f9fa; }
        .particulars { font-weight: bold; background: #f8f9fa; }
        .company-header { background: #D9E1F2; font-weight: bold; text-align: center; }
        .total-row { background: #f0f8ff; font-weight: bold; }
        .recommended { background: #fff3cd; border-left: 4px solid #ffc107; }
        .clause-list { font-size: 12px; line-height: 1.4; }
        .clause-list li { margin-bottom: 3px; }
        .advisor-comment { background: #FFC000; color: #333; padding: 15px; border-radius: 8px; margin-top: 20px; }
        .advisor-comment h4 { margin-top: 0; color: #333; }
        .summary { background: #e8f5e8; padding: 20px; border-radius: 8px; margin-top: 30px; }

        @media print {
            body { margin: 0; }
            .page { margin: 0; padding: 20px; }
            .container { box-shadow: none; }
        }
    </style>
</head>
<body>
    <div class="page branding-page">
        <div class="branding-title">{{.Brand.CompanyName}}</div>
        <div class="branding-subtitle">{{.Brand.Tagline}}</div>

        <div class="branding-footer">
            <h3>Insurance Comparison Report</h3>
            <p><strong>Reference:</strong> {{.Reference}}</p>
            <p><strong>Insurance Line:</strong> {{.LineLabel}}</p>
            <p><strong>Customer:</strong> {{.CustomerName}}</p>
            <p><strong>Generated:</strong> {{.Generated}}</p>
            <p><strong>Companies Compared:</strong> {{.InsurerCount}}</p>
        </div>
    </div>

    <div class="page comparison-page">
        <div class="container">
            <div class="header">
                <div class="title">{{.Title}} - INSURANCE COMPARISON</div>
            </div>

            <div class="ref-date">
                <span>Reference: {{.Reference}}</span>
                <span>Date: {{.Date}}</span>
            </div>

            <div class="customer-details">
                <h3>Customer Information</h3>
                <div class="details-grid">
                    <div class="detail-item">
                        <div class="detail-label">Customer Name:</div>
                        <div class="detail-value">{{.CustomerName}}</div>
                    </div>
                    {{if .Address}}<div class="detail-item">
                        <div class="detail-label">Address:</div>
                        <div class="detail-value">{{.Address}}</div>
                    </div>{{end}}
                    {{if .BusinessActivity}}<div class="detail-item">
                        <div class="detail-label">Business Activity:</div>
                        <div class="detail-value">{{.BusinessActivity}}</div>
                    </div>{{end}}
                    {{if .Location}}<div class="detail-item">
                        <div class="detail-label">Location/Premises:</div>
                        <div class="detail-value">{{.Location}}</div>
                    </div>{{end}}
                    {{if .PropertyLimit}}<div class="detail-item">
                        <div class="detail-label">Property Limit:</div>
                        <div class="detail-value">{{.PropertyLimit}}</div>
                    </div>{{end}}
                </div>
            </div>

            <table>
                <thead>
                    <tr>
                        <th style="width: 80px;">S.No.</th>
                        <th style="width: 200px;">Particulars</th>
                        {{range .Insurers}}<th class="company-header">{{.}}</th>{{end}}
                    </tr>
                </thead>
                <tbody>
                    {{range .Rows}}<tr{{if .IsMoney}}{{if eq .Label "Total (AED)"}} class="total-row"{{end}}{{end}}>
                        <td class="sno">{{.SNo}}</td>
                        <td class="particulars">{{.Label}}</td>
                        {{if .IsList}}{{range .Cells}}<td><ul class="clause-list">{{range .Items}}<li>&bull; {{.}}</li>{{end}}</ul></td>{{end}}{{else if .IsMoney}}{{range .Cells}}<td{{if .Recommended}} class="recommended"{{end}}>AED {{money .Amount}}</td>{{end}}{{else}}{{range .Cells}}<td>{{.Text}}</td>{{end}}{{end}}
                    </tr>
                    {{end}}
                </tbody>
            </table>

            {{if .AdvisorComment}}<div class="advisor-comment">
                <h4>Advisor Comment:</h4>
                <p>{{.AdvisorComment}}</p>
            </div>{{end}}

            <div class="summary">
                <h3>Summary</h3>
                <p><strong>Insurance Line:</strong> {{.LineLabel}}</p>
                <p><strong>Companies Compared:</strong> {{.InsurerCount}}</p>
                <p><strong>Recommended Option:</strong> {{.RecommendedInsurer}}</p>
                <p><strong>Generated:</strong> {{.Generated}} by {{.Brand.CompanyName}} General Insurance Quote System</p>
            </div>
        </div>
    </div>
</body>
</html>
`
