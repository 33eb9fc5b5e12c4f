package letters

import (
	"strings"
	"text/template"

	"github.com/abhisek/finecheck/internal/fines"
	"github.com/abhisek/finecheck/internal/llm"
	"github.com/abhisek/finecheck/internal/verdict"
)

var systemPrompts = map[verdict.Locale]string{
	verdict.LocaleEnglish: `You are a legal assistant specializing in writing effective fine cancellation requests. Your task is to generate professional, persuasive, and legally sound cancellation requests based on the details provided.`,
	verdict.LocaleHebrew:  `אתה עוזר משפטי המתמחה בכתיבת בקשות ביטול קנסות יעילות. תפקידך הוא ליצור בקשות ביטול מקצועיות, משכנעות ומבוססות משפטית על סמך הפרטים שסופקו. התשובה שלך חייבת להיות בעברית.`,
}

var notSpecified = map[verdict.Locale]string{
	verdict.LocaleEnglish: "Not specified",
	verdict.LocaleHebrew:  "לא צוין",
}

type promptData struct {
	fines.Report
	Info string
	Mode Mode
}

var userPrompts = map[verdict.Locale]*template.Template{
	verdict.LocaleEnglish: template.Must(template.New("en").Parse(`Generate a formal letter requesting the cancellation or reduction of the following traffic fine:

Fine Report #{{.ReportNumber}}
Date: {{.Date}}
Location: {{.Location}}
Violation: {{.Violation}}
Amount: {{.Amount}}
Due Date: {{.DueDate}}
Officer Name: {{.OfficerName}}
Badge Number: {{.BadgeNumber}}
{{if .Info}}
Additional Information Provided by the Recipient:
{{.Info}}
{{end}}
{{if eq .Mode "full_letter" -}}
Generate a complete, formal and professional cancellation request letter with all necessary components including address, date, subject line, proper salutation, body paragraphs, closing, and space for signature.
{{- else -}}
Provide bullet points of strong arguments I can use to contest this fine, focusing on technical and procedural aspects rather than personal circumstances.
{{- end}}`)),
	verdict.LocaleHebrew: template.Must(template.New("he").Parse(`צור מכתב רשמי המבקש ביטול או הפחתה של דוח התנועה הבא:

דוח מספר {{.ReportNumber}}
תאריך: {{.Date}}
מיקום: {{.Location}}
עבירה: {{.Violation}}
סכום: {{.Amount}}
תאריך אחרון לתשלום: {{.DueDate}}
שם השוטר: {{.OfficerName}}
מספר תג: {{.BadgeNumber}}
{{if .Info}}
מידע נוסף שסופק על ידי המקבל:
{{.Info}}
{{end}}
{{if eq .Mode "full_letter" -}}
צור מכתב בקשת ביטול מלא, רשמי ומקצועי עם כל המרכיבים הדרושים כולל כתובת, תאריך, שורת נושא, פנייה נאותה, פסקאות גוף, סיום, ומקום לחתימה.
{{- else -}}
ספק נקודות מרכזיות של טיעונים חזקים בהם אני יכול להשתמש כדי לערער על קנס זה, תוך התמקדות בהיבטים טכניים ופרוצדורליים ולא בנסיבות אישיות.
{{- end}}`)),
}

func buildUserMessage(r fines.Report, info string, mode Mode, locale verdict.Locale) (string, error) {
	data := promptData{
		Report: r.Filled(notSpecified[locale]),
		Info:   strings.TrimSpace(info),
		Mode:   mode,
	}
	var b strings.Builder
	if err := userPrompts[locale].Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

// ArgumentsSchema is the structured output of the arguments mode.
var ArgumentsSchema = &llm.Schema{
	Name:        llm.PurposeContestArguments,
	Description: "Arguments the recipient can raise to contest a traffic fine",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"arguments": map[string]any{
				"type":        "array",
				"description": "One argument per item, each a short heading followed by a sentence of explanation",
				"minItems":    1,
				"items": map[string]any{
					"type":      "string",
					"minLength": 1,
				},
			},
		},
		"required":             []any{"arguments"},
		"additionalProperties": false,
	},
}
