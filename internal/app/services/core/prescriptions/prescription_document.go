package prescriptions

import (
	"bytes"
	"chamber-portal-service/internal/app/models"
	"html/template"
	"time"
)

var prescriptionTemplate = template.Must(template.New("prescription").Funcs(template.FuncMap{
	"inc": func(i int) int { return i + 1 },
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Prescription {{.Prescription.ID}}</title>
<style>
body { font-family: Arial, sans-serif; margin: 32px; color: #222; }
header { border-bottom: 2px solid #0b6e4f; padding-bottom: 12px; margin-bottom: 16px; }
h1 { margin: 0; font-size: 22px; }
table { width: 100%; border-collapse: collapse; margin-top: 8px; }
th, td { border: 1px solid #ccc; padding: 6px 8px; text-align: left; font-size: 13px; }
.meta { display: flex; justify-content: space-between; font-size: 13px; }
footer { margin-top: 32px; font-size: 11px; color: #666; }
@media print { body { margin: 12mm; } }
</style>
</head>
<body>
<header>
<h1>{{.Prescription.Doctor.Name}}</h1>
{{with .Prescription.Doctor.Qualification}}<div>{{.}}</div>{{end}}
{{with .Prescription.Doctor.Specialization}}<div>{{.}}</div>{{end}}
{{with .Prescription.Doctor.BMDCRegistrationNumber}}<div>BMDC Reg. No: {{.}}</div>{{end}}
{{with .Prescription.Doctor.ChamberAddress}}<div>{{.}}</div>{{end}}
</header>
<section class="meta">
<div>Patient: <strong>{{.Prescription.Patient.Name}}</strong></div>
<div>Date: {{.Prescription.IssuedDate}}</div>
</section>
{{with .Prescription.Diagnosis}}<h3>Diagnosis</h3><p>{{.}}</p>{{end}}
<h3>Medicines</h3>
{{if .Prescription.Medicines}}
<table>
<thead><tr><th>#</th><th>Medicine</th><th>Dosage</th><th>Frequency</th><th>Duration</th><th>Instructions</th></tr></thead>
<tbody>
{{range $i, $m := .Prescription.Medicines}}<tr><td>{{inc $i}}</td><td>{{$m.Name}}</td><td>{{$m.Dosage}}</td><td>{{$m.Frequency}}</td><td>{{$m.Duration}}</td><td>{{$m.Instructions}}</td></tr>
{{end}}</tbody>
</table>
{{else}}<p>No medicines prescribed.</p>{{end}}
{{if .Prescription.Tests}}<h3>Tests</h3><ul>{{range .Prescription.Tests}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{with .Prescription.Advice}}<h3>Advice</h3><p>{{.}}</p>{{end}}
{{with .Prescription.FollowUpDate}}<p>Follow-up: {{.}}</p>{{end}}
<footer>Generated {{.GeneratedAt}}</footer>
</body>
</html>
`))

type prescriptionDocument struct {
	Prescription *models.Prescription
	GeneratedAt  string
}

func renderPrescription(prescription *models.Prescription, generatedAt time.Time) ([]byte, error) {
	var buf bytes.Buffer
	err := prescriptionTemplate.Execute(&buf, prescriptionDocument{
		Prescription: prescription,
		GeneratedAt:  generatedAt.Format("2006-01-02 15:04 MST"),
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
